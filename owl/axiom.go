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
	"fmt"
	"strings"

	"github.com/ebay/kanaga/util/cmp"
)

// An Axiom is a single terminological or assertional statement. Axioms are
// append-only: once added to an Ontology they are never modified.
type Axiom interface {
	String() string
	cmp.Key
	anAxiom()
}

// SubClassOf states that Sub is subsumed by Sup.
type SubClassOf struct {
	Sub Concept
	Sup Concept
}

// EquivalentClasses states that all member concepts subsume each other.
type EquivalentClasses struct {
	Concepts []Concept
}

// DisjointClasses states that no individual is an instance of more than one
// member concept.
type DisjointClasses struct {
	Concepts []Concept
}

// ClassAssertion states that the individual is an instance of Class.
type ClassAssertion struct {
	Individual string
	Class      Concept
}

// PropertyAssertion states that Subject is related to Object by Property.
type PropertyAssertion struct {
	Subject  string
	Property string
	Object   string
}

func (a *SubClassOf) String() string {
	return fmt.Sprintf("%v subClassOf %v", a.Sub, a.Sup)
}

// Key implements cmp.Key.
func (a *SubClassOf) Key(b *strings.Builder) {
	b.WriteString("subClassOf:(")
	a.Sub.Key(b)
	b.WriteString("),(")
	a.Sup.Key(b)
	b.WriteString(")")
}

func (a *EquivalentClasses) String() string {
	return "equivalent: " + joinOperands(a.Concepts, ", ")
}

// Key implements cmp.Key.
func (a *EquivalentClasses) Key(b *strings.Builder) {
	b.WriteString("equivalent:")
	writeSortedOperandKeys(b, a.Concepts)
}

func (a *DisjointClasses) String() string {
	return "disjoint: " + joinOperands(a.Concepts, ", ")
}

// Key implements cmp.Key.
func (a *DisjointClasses) Key(b *strings.Builder) {
	b.WriteString("disjoint:")
	writeSortedOperandKeys(b, a.Concepts)
}

func (a *ClassAssertion) String() string {
	return fmt.Sprintf("%v type %v", a.Individual, a.Class)
}

// Key implements cmp.Key.
func (a *ClassAssertion) Key(b *strings.Builder) {
	b.WriteString("assert:")
	b.WriteString(a.Individual)
	b.WriteString(":(")
	a.Class.Key(b)
	b.WriteString(")")
}

func (a *PropertyAssertion) String() string {
	return fmt.Sprintf("%v %v %v", a.Subject, a.Property, a.Object)
}

// Key implements cmp.Key.
func (a *PropertyAssertion) Key(b *strings.Builder) {
	b.WriteString("prop:")
	b.WriteString(a.Subject)
	b.WriteString(":")
	b.WriteString(a.Property)
	b.WriteString(":")
	b.WriteString(a.Object)
}

func (a *SubClassOf) anAxiom()        {}
func (a *EquivalentClasses) anAxiom() {}
func (a *DisjointClasses) anAxiom()   {}
func (a *ClassAssertion) anAxiom()    {}
func (a *PropertyAssertion) anAxiom() {}

// ImplementAxiom is a compile-time check of which types implement Axiom.
var ImplementAxiom = []Axiom{
	new(SubClassOf),
	new(EquivalentClasses),
	new(DisjointClasses),
	new(ClassAssertion),
	new(PropertyAssertion),
}

// Characteristic is a bit set of property characteristics.
type Characteristic uint8

const (
	// Transitive: R(x,y) and R(y,z) imply R(x,z).
	Transitive Characteristic = 1 << iota
	// Symmetric: R(x,y) implies R(y,x).
	Symmetric
	// Functional: each subject has at most one R-successor.
	Functional
	// InverseFunctional: each object has at most one R-predecessor.
	InverseFunctional
)

// Has reports whether all characteristics in want are set.
func (c Characteristic) Has(want Characteristic) bool {
	return c&want == want
}

func (c Characteristic) String() string {
	var parts []string
	if c.Has(Transitive) {
		parts = append(parts, "transitive")
	}
	if c.Has(Symmetric) {
		parts = append(parts, "symmetric")
	}
	if c.Has(Functional) {
		parts = append(parts, "functional")
	}
	if c.Has(InverseFunctional) {
		parts = append(parts, "inverseFunctional")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// A PropertyDecl declares an object property together with its
// characteristics and optional domain, range, and inverse.
type PropertyDecl struct {
	IRI             string
	Characteristics Characteristic
	// Domain, if non-empty, is the class every subject of the property
	// belongs to.
	Domain string
	// Range, if non-empty, is the class every object of the property
	// belongs to.
	Range string
	// InverseOf, if non-empty, names the inverse property.
	InverseOf string
}

func (p *PropertyDecl) String() string {
	return fmt.Sprintf("property %v [%v]", p.IRI, p.Characteristics)
}
