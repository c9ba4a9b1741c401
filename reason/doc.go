// Copyright 2019 eBay Inc.
// Primary authors: Simon Fell, Diego Ongaro,
//                  Raymond Kroeker, and Sathish Kandasamy.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

/*
Package reason is the reasoner's front door. An Engine ties the pieces in
the subpackages together over one ontology: the tableaux satisfiability
engine, the classifier, the forward-chaining rule engine, and the verdict
cache that memoizes everything the first three prove.

	o := owl.NewOntology()
	// ... declare classes and axioms ...
	engine := reason.New(o, reason.Options{})
	yes, err := engine.IsSubClassOf(ctx, "gradStudent", "person")

Engines are safe for concurrent use. The cache is cleared automatically
whenever the ontology changes, so answers are never stale; they are merely
recomputed on the next ask. Logical outcomes (not a subclass, inconsistent,
unsatisfiable) are values, not errors. The error returns carry context
cancellation and nothing else.

Every operation opens an opentracing span and feeds a Prometheus summary, so
a deployment can see where reasoning time goes without instrumenting
callers.
*/
package reason
