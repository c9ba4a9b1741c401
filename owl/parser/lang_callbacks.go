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

package parser

import (
	"fmt"

	"github.com/ebay/kanaga/owl"
	"github.com/vektah/goparsify"
)

// sectionKind discriminates the axiom sections of a Class frame.
type sectionKind int

const (
	sectionSubClassOf sectionKind = iota
	sectionEquivalentTo
	sectionDisjointWith
)

// classSection is one SubClassOf:, EquivalentTo:, or DisjointWith: section.
type classSection struct {
	kind  sectionKind
	exprs []owl.Concept
}

// propertySetting carries one section of an ObjectProperty frame. The frame
// callback merges the settings into a single owl.PropertyDecl.
type propertySetting struct {
	characteristics owl.Characteristic
	domain          string
	rng             string
	inverseOf       string
}

// propertyFact is one "property target" pair from a Facts: section.
type propertyFact struct {
	property string
	object   string
}

// individualSection is one Types: or Facts: section of an Individual frame.
type individualSection struct {
	types []owl.Concept
	facts []propertyFact
}

// child returns a callback that lifts the result of child n.
func child(n int) func(*goparsify.Result) {
	return func(r *goparsify.Result) {
		r.Result = r.Child[n].Result
	}
}

// childConcepts collects the concepts parsed by a repeated expression parser.
func childConcepts(n *goparsify.Result) []owl.Concept {
	out := make([]owl.Concept, len(n.Child))
	for i := range n.Child {
		out[i] = n.Child[i].Result.(owl.Concept)
	}
	return out
}

// intersection joins the "and" operands. A single operand passes through
// unwrapped.
func intersection(n *goparsify.Result) {
	operands := childConcepts(n)
	if len(operands) == 1 {
		n.Result = operands[0]
		return
	}
	n.Result = &owl.Intersection{Operands: operands}
}

// union joins the "or" operands. A single operand passes through unwrapped.
func union(n *goparsify.Result) {
	operands := childConcepts(n)
	if len(operands) == 1 {
		n.Result = operands[0]
		return
	}
	n.Result = &owl.Union{Operands: operands}
}

func complement(n *goparsify.Result) {
	n.Result = &owl.Complement{Operand: n.Child[1].Result.(owl.Concept)}
}

func restriction(n *goparsify.Result) {
	property := n.Child[0].Token
	filler := n.Child[2].Result.(owl.Concept)
	switch n.Child[1].Token {
	case "some":
		n.Result = &owl.SomeValuesFrom{Property: property, Filler: filler}
	case "only":
		n.Result = &owl.AllValuesFrom{Property: property, Filler: filler}
	default:
		panic(fmt.Sprintf("unsupported restriction quantifier: %s", n.Child[1].Token))
	}
}

// classSectionOf returns a callback that tags an expression list with the
// section kind it appeared under.
func classSectionOf(kind sectionKind) func(*goparsify.Result) {
	return func(n *goparsify.Result) {
		n.Result = classSection{kind: kind, exprs: childConcepts(&n.Child[2])}
	}
}

func characteristicSet(n *goparsify.Result) {
	var set owl.Characteristic
	for _, c := range n.Child[2].Child {
		set |= c.Result.(owl.Characteristic)
	}
	n.Result = propertySetting{characteristics: set}
}

func typeList(n *goparsify.Result) {
	n.Result = individualSection{types: childConcepts(&n.Child[2])}
}

func factList(n *goparsify.Result) {
	facts := make([]propertyFact, len(n.Child[2].Child))
	for i, c := range n.Child[2].Child {
		facts[i] = c.Result.(propertyFact)
	}
	n.Result = individualSection{facts: facts}
}

// classFrame turns a Class frame into its declaration and axioms. The frame
// subject joins every EquivalentTo and DisjointWith group as the first
// member.
func classFrame(n *goparsify.Result) {
	subject := owl.NewNamed(n.Child[2].Token)
	frag := fragment{classes: []string{subject.IRI}}
	for _, c := range n.Child[3].Child {
		section := c.Result.(classSection)
		switch section.kind {
		case sectionSubClassOf:
			for _, sup := range section.exprs {
				frag.axioms = append(frag.axioms, &owl.SubClassOf{Sub: subject, Sup: sup})
			}
		case sectionEquivalentTo:
			frag.axioms = append(frag.axioms, &owl.EquivalentClasses{
				Concepts: append([]owl.Concept{subject}, section.exprs...)})
		case sectionDisjointWith:
			frag.axioms = append(frag.axioms, &owl.DisjointClasses{
				Concepts: append([]owl.Concept{subject}, section.exprs...)})
		default:
			panic(fmt.Sprintf("unsupported class section kind: %d", section.kind))
		}
	}
	n.Result = frag
}

// propertyFrame merges the sections of an ObjectProperty frame into one
// declaration. Repeated Domain, Range, or InverseOf sections overwrite;
// Characteristics accumulate.
func propertyFrame(n *goparsify.Result) {
	decl := &owl.PropertyDecl{IRI: n.Child[2].Token}
	for _, c := range n.Child[3].Child {
		setting := c.Result.(propertySetting)
		decl.Characteristics |= setting.characteristics
		if setting.domain != "" {
			decl.Domain = setting.domain
		}
		if setting.rng != "" {
			decl.Range = setting.rng
		}
		if setting.inverseOf != "" {
			decl.InverseOf = setting.inverseOf
		}
	}
	n.Result = fragment{properties: []*owl.PropertyDecl{decl}}
}

// individualFrame turns an Individual frame into class and property
// assertions. Individuals are not declared anywhere: they exist by being
// asserted about.
func individualFrame(n *goparsify.Result) {
	subject := n.Child[2].Token
	var frag fragment
	for _, c := range n.Child[3].Child {
		section := c.Result.(individualSection)
		for _, class := range section.types {
			frag.axioms = append(frag.axioms, &owl.ClassAssertion{Individual: subject, Class: class})
		}
		for _, fact := range section.facts {
			frag.axioms = append(frag.axioms, &owl.PropertyAssertion{
				Subject:  subject,
				Property: fact.property,
				Object:   fact.object,
			})
		}
	}
	n.Result = frag
}

// document merges the frame fragments in the order they were written.
func document(n *goparsify.Result) {
	var doc fragment
	for _, c := range n.Child {
		frag := c.Result.(fragment)
		doc.classes = append(doc.classes, frag.classes...)
		doc.properties = append(doc.properties, frag.properties...)
		doc.axioms = append(doc.axioms, frag.axioms...)
	}
	n.Result = doc
}
