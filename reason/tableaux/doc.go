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
Package tableaux decides concept satisfiability by building a completion
graph: a model-under-construction where each node stands for a prospective
individual and holds the concepts forced true of it.

Starting from a root node holding the concept under test, expansion rules
run breadth-first until nothing is left to do:

	student and employee    both operands land on the node
	student or employee     one alternative lands; the rest wait on a
	                        choice stack and are tried if this one fails
	enrolledIn some course  a fresh enrolledIn-successor holding course
	enrolledIn only course  every enrolledIn-successor receives course,
	                        including ones created afterwards

A node holding both [x] and [not x] is a clash. A clash makes the engine
backtrack to the newest untried union alternative; when none are left the
concept is unsatisfiable. A drained queue with no clash means a model
exists, so the concept is satisfiable.

Two mechanisms bound the work. Blocking stops expanding a node whose
concept set an ancestor already covers, which is what terminates cyclic
existential chains. The node bound (MaxNodes) is a last-resort valve: a
check that hits it returns Aborted, a verdict distinct from both
satisfiable and unsatisfiable, because giving up proves nothing.

Checks are pure: each owns its graph and writes nothing anywhere else.
Caching verdicts by the concept's canonical key is the caller's job.
*/
package tableaux
