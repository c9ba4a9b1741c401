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

package owl

import (
	"sync"
)

// Well-known classes. Thing subsumes every class, Nothing is subsumed by
// every class and has no instances.
const (
	Thing   = "owl:Thing"
	Nothing = "owl:Nothing"
)

// An Ontology holds the declared classes, properties, axioms, and
// assertions. Declarations and axioms are append-only. Reads may run
// concurrently; every mutation bumps the revision and notifies the
// registered invalidation hooks, so derived state (caches, materialized
// facts) can be discarded wholesale.
type Ontology struct {
	lock     sync.RWMutex
	revision uint64

	classOrder []string
	classes    map[string]bool

	propOrder  []string
	properties map[string]*PropertyDecl

	subClassOf   []*SubClassOf
	equivalences []*EquivalentClasses
	disjoints    []*DisjointClasses
	classAsserts []*ClassAssertion
	propAsserts  []*PropertyAssertion

	onChange []func()
}

// NewOntology returns an empty ontology.
func NewOntology() *Ontology {
	return &Ontology{
		classes:    make(map[string]bool),
		properties: make(map[string]*PropertyDecl),
	}
}

// RegisterInvalidation arranges for fn to be called, with no locks held,
// after every mutation of the ontology.
func (o *Ontology) RegisterInvalidation(fn func()) {
	o.lock.Lock()
	o.onChange = append(o.onChange, fn)
	o.lock.Unlock()
}

// Revision returns a counter that increases with every mutation. A result
// computed at one revision is stale once the revision moves.
func (o *Ontology) Revision() uint64 {
	o.lock.RLock()
	defer o.lock.RUnlock()
	return o.revision
}

// AddClass declares a class. Declaring the same IRI again is a no-op and
// does not count as a mutation.
func (o *Ontology) AddClass(iri string) {
	iri = Normalize(iri)
	o.lock.Lock()
	if o.classes[iri] {
		o.lock.Unlock()
		return
	}
	o.classes[iri] = true
	o.classOrder = append(o.classOrder, iri)
	hooks := o.bumpLocked()
	o.lock.Unlock()
	runHooks(hooks)
}

// AddProperty declares an object property. A redeclaration replaces the
// earlier declaration's characteristics, domain, range, and inverse.
func (o *Ontology) AddProperty(decl *PropertyDecl) {
	d := *decl
	d.IRI = Normalize(d.IRI)
	o.lock.Lock()
	if _, ok := o.properties[d.IRI]; !ok {
		o.propOrder = append(o.propOrder, d.IRI)
	}
	o.properties[d.IRI] = &d
	hooks := o.bumpLocked()
	o.lock.Unlock()
	runHooks(hooks)
}

// AddAxiom appends a terminological axiom or an assertion.
func (o *Ontology) AddAxiom(axiom Axiom) {
	o.lock.Lock()
	switch a := axiom.(type) {
	case *SubClassOf:
		o.subClassOf = append(o.subClassOf, a)
	case *EquivalentClasses:
		o.equivalences = append(o.equivalences, a)
	case *DisjointClasses:
		o.disjoints = append(o.disjoints, a)
	case *ClassAssertion:
		o.classAsserts = append(o.classAsserts, a)
	case *PropertyAssertion:
		o.propAsserts = append(o.propAsserts, a)
	}
	hooks := o.bumpLocked()
	o.lock.Unlock()
	runHooks(hooks)
}

// bumpLocked increments the revision and returns the hooks to run once the
// lock is released. Callers must hold the write lock.
func (o *Ontology) bumpLocked() []func() {
	o.revision++
	hooks := make([]func(), len(o.onChange))
	copy(hooks, o.onChange)
	return hooks
}

func runHooks(hooks []func()) {
	for _, fn := range hooks {
		fn()
	}
}

// HasClass reports whether the IRI was declared as a class.
func (o *Ontology) HasClass(iri string) bool {
	o.lock.RLock()
	defer o.lock.RUnlock()
	return o.classes[Normalize(iri)]
}

// Classes returns the declared classes in declaration order.
func (o *Ontology) Classes() []string {
	o.lock.RLock()
	defer o.lock.RUnlock()
	out := make([]string, len(o.classOrder))
	copy(out, o.classOrder)
	return out
}

// Property returns the declaration for the IRI, or nil if undeclared.
func (o *Ontology) Property(iri string) *PropertyDecl {
	o.lock.RLock()
	defer o.lock.RUnlock()
	return o.properties[Normalize(iri)]
}

// Properties returns the declared properties in declaration order.
func (o *Ontology) Properties() []*PropertyDecl {
	o.lock.RLock()
	defer o.lock.RUnlock()
	out := make([]*PropertyDecl, 0, len(o.propOrder))
	for _, iri := range o.propOrder {
		out = append(out, o.properties[iri])
	}
	return out
}

// SubClassAxioms returns the declared subclass axioms in insertion order.
func (o *Ontology) SubClassAxioms() []*SubClassOf {
	o.lock.RLock()
	defer o.lock.RUnlock()
	out := make([]*SubClassOf, len(o.subClassOf))
	copy(out, o.subClassOf)
	return out
}

// EquivalenceGroups returns the declared equivalence axioms in insertion
// order. Groups sharing a member are logically one group; merging them is
// the classifier's job.
func (o *Ontology) EquivalenceGroups() []*EquivalentClasses {
	o.lock.RLock()
	defer o.lock.RUnlock()
	out := make([]*EquivalentClasses, len(o.equivalences))
	copy(out, o.equivalences)
	return out
}

// DisjointGroups returns the declared disjointness axioms in insertion order.
func (o *Ontology) DisjointGroups() []*DisjointClasses {
	o.lock.RLock()
	defer o.lock.RUnlock()
	out := make([]*DisjointClasses, len(o.disjoints))
	copy(out, o.disjoints)
	return out
}

// ClassAssertions returns the individual-type assertions in insertion order.
func (o *Ontology) ClassAssertions() []*ClassAssertion {
	o.lock.RLock()
	defer o.lock.RUnlock()
	out := make([]*ClassAssertion, len(o.classAsserts))
	copy(out, o.classAsserts)
	return out
}

// PropertyAssertions returns the individual-relation assertions in
// insertion order.
func (o *Ontology) PropertyAssertions() []*PropertyAssertion {
	o.lock.RLock()
	defer o.lock.RUnlock()
	out := make([]*PropertyAssertion, len(o.propAsserts))
	copy(out, o.propAsserts)
	return out
}
