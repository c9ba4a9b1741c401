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
Package classify answers subsumption questions over an ontology and computes
its class hierarchy.

Subsumption ("is every gradStudent a person?") is decided in two stages. The
declared subclass graph and equivalence groups settle most questions with a
breadth-first walk, which is cheap and complete for anything the ontology
states directly or by chains of direct statements. When the graph is silent
the question goes to the tableaux engine: gradStudent ⊑ person exactly when
gradStudent ⊓ ¬person can have no instance. Graph answers and tableaux
answers both land in the shared result cache, so asking again is free until
the ontology changes.

Classify runs that machinery over every class at once and returns a
Hierarchy: per class, its direct parents and children, the full ancestor and
descendant closures, its equivalence group, and whether it is satisfiable.
owl:Thing sits above everything and owl:Nothing below everything. IsConsistent
is the cheaper cousin that only looks for subclass cycles and unsatisfiable
classes.

The per-class satisfiability pass is embarrassingly parallel, and for
ontologies past the parallel threshold it fans out across workers, each class
assigned to a worker by a hash of its IRI.
*/
package classify
