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
Package rules is a forward-chaining production-rule engine for lightweight
RDFS/OWL entailments.

A run renders the ontology's explicit statements as (subject, predicate,
object) facts, then iterates a fixed rule set until nothing new derives.
Given

	student rdfs:subClassOf person
	person  rdfs:subClassOf agent
	bob     rdf:type        student

the run materializes (student ⊑ agent) by subclass transitivity and
(bob type person), (bob type agent) by type inheritance. Every derived fact
carries the name of the rule that produced it, so provenance survives into
the store.

Each iteration matches every rule against the store as it stood at the top
of the iteration, groups the proposals by rule priority, and fires the
highest tier first with a per-tier cap on new facts. The cap bounds fan-out
per cycle; anything it postpones is proposed again next iteration.
Re-deriving a fact already in the store is a no-op and does not count as
progress, so the loop terminates as soon as an iteration inserts nothing.
An iteration bound backstops pathological rule sets; stopping there is
reported on the result, never silently absorbed.

The store itself is monotonic within a run and rebuilt from scratch by the
next run. There is no retraction.
*/
package rules
