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
	"sort"
	"strings"

	"github.com/ebay/kanaga/util/cmp"
)

// A Concept is a class expression. Concepts are immutable once constructed
// and are shared freely across the reasoner.
type Concept interface {
	// String returns a human-readable rendering of the expression in
	// Manchester-like syntax.
	String() string
	// The identity of a Concept is given by its Key() output. Two concepts
	// are the same expression if and only if their keys are equal. Operands
	// of intersections and unions are sorted while building the key, so the
	// key is insensitive to operand order.
	cmp.Key
	aConcept()
}

// Named is an atomic class, identified by its IRI. Unknown IRIs are fine:
// they denote fresh classes nothing else is known about.
type Named struct {
	IRI string
}

// Intersection is the conjunction of its operands.
type Intersection struct {
	Operands []Concept
}

// Union is the disjunction of its operands.
type Union struct {
	Operands []Concept
}

// Complement is the negation of its operand.
type Complement struct {
	Operand Concept
}

// SomeValuesFrom is the existential restriction: some Property-successor
// is an instance of Filler.
type SomeValuesFrom struct {
	Property string
	Filler   Concept
}

// AllValuesFrom is the universal restriction: every Property-successor
// is an instance of Filler.
type AllValuesFrom struct {
	Property string
	Filler   Concept
}

// NewNamed returns the atomic class for the given IRI, normalized.
func NewNamed(iri string) *Named {
	return &Named{IRI: Normalize(iri)}
}

func (c *Named) String() string {
	return c.IRI
}

// Key implements cmp.Key.
func (c *Named) Key(b *strings.Builder) {
	b.WriteString("named:")
	b.WriteString(c.IRI)
}

func (c *Intersection) String() string {
	return joinOperands(c.Operands, " and ")
}

// Key implements cmp.Key.
func (c *Intersection) Key(b *strings.Builder) {
	b.WriteString("intersection:")
	writeSortedOperandKeys(b, c.Operands)
}

func (c *Union) String() string {
	return joinOperands(c.Operands, " or ")
}

// Key implements cmp.Key.
func (c *Union) Key(b *strings.Builder) {
	b.WriteString("union:")
	writeSortedOperandKeys(b, c.Operands)
}

func (c *Complement) String() string {
	return "not " + parenthesize(c.Operand)
}

// Key implements cmp.Key.
func (c *Complement) Key(b *strings.Builder) {
	b.WriteString("complement:(")
	c.Operand.Key(b)
	b.WriteString(")")
}

func (c *SomeValuesFrom) String() string {
	return fmt.Sprintf("%v some %v", c.Property, parenthesize(c.Filler))
}

// Key implements cmp.Key.
func (c *SomeValuesFrom) Key(b *strings.Builder) {
	b.WriteString("some:")
	b.WriteString(c.Property)
	b.WriteString(":(")
	c.Filler.Key(b)
	b.WriteString(")")
}

func (c *AllValuesFrom) String() string {
	return fmt.Sprintf("%v only %v", c.Property, parenthesize(c.Filler))
}

// Key implements cmp.Key.
func (c *AllValuesFrom) Key(b *strings.Builder) {
	b.WriteString("all:")
	b.WriteString(c.Property)
	b.WriteString(":(")
	c.Filler.Key(b)
	b.WriteString(")")
}

func (c *Named) aConcept()          {}
func (c *Intersection) aConcept()   {}
func (c *Union) aConcept()          {}
func (c *Complement) aConcept()     {}
func (c *SomeValuesFrom) aConcept() {}
func (c *AllValuesFrom) aConcept()  {}

// ImplementConcept is a compile-time check of which types implement Concept.
var ImplementConcept = []Concept{
	new(Named),
	new(Intersection),
	new(Union),
	new(Complement),
	new(SomeValuesFrom),
	new(AllValuesFrom),
}

// writeSortedOperandKeys writes the keys of the operands, sorted and
// comma-separated, each in parentheses. Sorting makes the enclosing key
// independent of the order the operands were written in.
func writeSortedOperandKeys(b *strings.Builder, operands []Concept) {
	keys := make([]string, len(operands))
	for i, op := range operands {
		keys[i] = cmp.GetKey(op)
	}
	sort.Strings(keys)
	for i, k := range keys {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString("(")
		b.WriteString(k)
		b.WriteString(")")
	}
}

func joinOperands(operands []Concept, sep string) string {
	parts := make([]string, len(operands))
	for i, op := range operands {
		parts[i] = parenthesize(op)
	}
	return strings.Join(parts, sep)
}

// parenthesize renders op, wrapping compound expressions in parentheses so
// the result reads unambiguously inside a larger expression.
func parenthesize(op Concept) string {
	switch op.(type) {
	case *Named:
		return op.String()
	default:
		return "(" + op.String() + ")"
	}
}

// Complexity returns the number of leaves in the expression tree. The
// tableaux engine's heuristic union ordering prefers simpler disjuncts.
func Complexity(c Concept) int {
	switch c := c.(type) {
	case *Named:
		return 1
	case *Intersection:
		total := 0
		for _, op := range c.Operands {
			total += Complexity(op)
		}
		return total
	case *Union:
		total := 0
		for _, op := range c.Operands {
			total += Complexity(op)
		}
		return total
	case *Complement:
		return Complexity(c.Operand)
	case *SomeValuesFrom:
		return 1 + Complexity(c.Filler)
	case *AllValuesFrom:
		return 1 + Complexity(c.Filler)
	}
	panic(fmt.Sprintf("owl: unexpected concept type %T", c))
}
