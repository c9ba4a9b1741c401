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
Package owl holds the data model the reasoner works on: class expressions,
axioms, property declarations, and the Ontology that collects them.

A class expression (Concept) is one of six forms. Given named classes
[student] and [employee] and a property [enrolledIn]:

	student                                    Named
	student and employee                       Intersection
	student or employee                        Union
	not student                                Complement
	enrolledIn some course                     SomeValuesFrom
	enrolledIn only course                     AllValuesFrom

Concepts are immutable and have a canonical key (see cmp.Key). The key of
"student and employee" equals the key of "employee and student": operand
keys are sorted when the enclosing key is built. The rest of the reasoner
relies on that to memoize results by key, so two spellings of the same
expression hit the same cache entry.

An Ontology is append-only. The TBox part is the class and property
declarations plus subClassOf, equivalence, and disjointness axioms; the
ABox part is the class and property assertions about individuals, e.g.

	bob type student
	bob enrolledIn algebra

Reading is concurrent; any mutation bumps the ontology revision and fires
the registered invalidation hooks. Nothing in this package derives
anything: deriving is what the reason packages are for.
*/
package owl
