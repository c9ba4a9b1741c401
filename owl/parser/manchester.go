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

// Package parser reads class expressions and whole ontologies written in a
// Manchester-flavored frame syntax.
//
// An ontology document is a sequence of frames:
//
//	# University terminology
//	Class: student
//	    SubClassOf: person
//	    DisjointWith: course
//
//	ObjectProperty: enrolledIn
//	    Domain: student
//	    Range: course
//	    Characteristics: Functional
//
//	Individual: bob
//	    Types: student
//	    Facts: enrolledIn cs101
//
// Class expressions use the keywords and, or, not, some, and only, for
// example "student and enrolledIn some (course or seminar)". Newlines are
// ordinary whitespace and # comments run to the end of the line.
package parser

import (
	"fmt"

	"github.com/ebay/kanaga/owl"
	"github.com/ebay/kanaga/util/unicode"
	"github.com/vektah/goparsify"
)

// ParseConcept parses a single class expression, such as
// "person and not (robot or cyborg)".
func ParseConcept(input string) (owl.Concept, error) {
	input = unicode.Normalize(input)
	result, err := goparsify.Run(conceptRoot, input, manchesterWS)
	if err != nil {
		return nil, fmt.Errorf("parser: %v", err)
	}
	return result.(owl.Concept), nil
}

// ParseOntology parses an ontology document and returns a new Ontology
// holding its declarations, axioms, and assertions. Only Class frames
// declare classes: a name that appears inside an expression but heads no
// frame stays undeclared, and the classifier will not place it in the
// hierarchy.
func ParseOntology(input string) (*owl.Ontology, error) {
	input = unicode.Normalize(input)
	result, err := goparsify.Run(ontologyRoot, input, manchesterWS)
	if err != nil {
		return nil, fmt.Errorf("parser: %v", err)
	}
	ontology := owl.NewOntology()
	result.(fragment).apply(ontology)
	return ontology, nil
}

// fragment accumulates what one frame, or a whole document, contributes to
// an ontology.
type fragment struct {
	classes    []string
	properties []*owl.PropertyDecl
	axioms     []owl.Axiom
}

// apply adds the fragment's contents to the ontology: declarations first,
// then axioms and assertions in document order.
func (f fragment) apply(o *owl.Ontology) {
	for _, iri := range f.classes {
		o.AddClass(iri)
	}
	for _, decl := range f.properties {
		o.AddProperty(decl)
	}
	for _, axiom := range f.axioms {
		o.AddAxiom(axiom)
	}
}
