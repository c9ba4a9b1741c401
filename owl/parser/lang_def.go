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
	"github.com/ebay/kanaga/owl"
	p "github.com/vektah/goparsify"
)

var (
	// conceptRoot is the parser function called by ParseConcept. It extracts
	// a single class expression in its entirety.
	conceptRoot p.Parser
	// ontologyRoot is the parser function called by ParseOntology. It
	// extracts a sequence of Class, ObjectProperty, and Individual frames.
	ontologyRoot p.Parser
)

func init() {
	// If you need to debug what the parser is doing, you can enable goparsify's
	// built in debug support by building with -tags debug. See the docs for
	// more details https://github.com/vektah/goparsify#debugging-parsers
	//
	// The parser_debug.go file will setup sending the parser debug output to
	// stdout when the debug tag is used.

	// Class expressions. Binding order, tightest first: not and the some/only
	// restrictions, then and, then or.
	var expression, unary p.Parser

	named := name().Map(func(n *p.Result) { // person || ex:Person
		n.Result = owl.NewNamed(n.Token)
	})
	grouped := p.Seq("(", p.Cut(), &expression, ")").Map(child(2))
	negation := p.Seq(keyword("not"), &unary).Map(complement)
	restriction := p.Seq(name(), p.Any(keyword("some"), keyword("only")), &unary).Map(restriction)
	unary = p.Any(negation, restriction, grouped, named)
	conjunction := repeatOneOrMore(unary, keyword("and")).Map(intersection)
	expression = repeatOneOrMore(conjunction, keyword("or")).Map(union)

	conceptRoot = expression

	// Class frames.
	exprList := repeatOneOrMore(expression, ",")
	subClassOf := p.Seq("SubClassOf:", p.Cut(), exprList).Map(classSectionOf(sectionSubClassOf))
	equivalentTo := p.Seq("EquivalentTo:", p.Cut(), exprList).Map(classSectionOf(sectionEquivalentTo))
	disjointWith := p.Seq("DisjointWith:", p.Cut(), exprList).Map(classSectionOf(sectionDisjointWith))
	class := p.Seq("Class:", p.Cut(), name(),
		repeatZeroOrMore(p.Any(subClassOf, equivalentTo, disjointWith))).Map(classFrame)

	// ObjectProperty frames.
	domain := p.Seq("Domain:", p.Cut(), name()).Map(func(n *p.Result) {
		n.Result = propertySetting{domain: n.Child[2].Token}
	})
	rng := p.Seq("Range:", p.Cut(), name()).Map(func(n *p.Result) {
		n.Result = propertySetting{rng: n.Child[2].Token}
	})
	inverseOf := p.Seq("InverseOf:", p.Cut(), name()).Map(func(n *p.Result) {
		n.Result = propertySetting{inverseOf: n.Child[2].Token}
	})
	characteristics := p.Seq("Characteristics:", p.Cut(),
		repeatOneOrMore(characteristic(), ",")).Map(characteristicSet)
	property := p.Seq("ObjectProperty:", p.Cut(), name(),
		repeatZeroOrMore(p.Any(characteristics, domain, rng, inverseOf))).Map(propertyFrame)

	// Individual frames.
	types := p.Seq("Types:", p.Cut(), exprList).Map(typeList)
	fact := p.Seq(name(), name()).Map(func(n *p.Result) { // enrolledIn cs101
		n.Result = propertyFact{property: n.Child[0].Token, object: n.Child[1].Token}
	})
	facts := p.Seq("Facts:", p.Cut(), repeatOneOrMore(fact, ",")).Map(factList)
	individual := p.Seq("Individual:", p.Cut(), name(),
		repeatZeroOrMore(p.Any(types, facts))).Map(individualFrame)

	ontologyRoot = repeatZeroOrMore(p.Any(class, property, individual)).Map(document)
}
