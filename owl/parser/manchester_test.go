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
	"strings"
	"testing"

	"github.com/ebay/kanaga/owl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ParseConcept(t *testing.T) {
	// want is the canonical rendering from Concept.String, which
	// parenthesizes every compound operand.
	tests := []struct {
		in   string
		want string
	}{
		{"person", "person"},
		{"ex:Person", "ex:Person"},
		{"cs101", "cs101"},
		{"person and robot", "person and robot"},
		{"a and b and c", "a and b and c"},
		{"a or b and c", "a or (b and c)"},
		{"(a or b) and c", "(a or b) and c"},
		{"not person", "not person"},
		{"not not person", "not (not person)"},
		{"not (a and b)", "not (a and b)"},
		{"enrolledIn some course", "enrolledIn some course"},
		{"advises only gradStudent", "advises only gradStudent"},
		{"ex:enrolledIn some ex:course", "ex:enrolledIn some ex:course"},
		{"enrolledIn some (course or seminar)", "enrolledIn some (course or seminar)"},
		{"student and enrolledIn some course", "student and (enrolledIn some course)"},
		{"not enrolledIn some course", "not (enrolledIn some course)"},
		{"teaches some enrolledIn some course", "teaches some (enrolledIn some course)"},
		{"  person \t and\n robot  ", "person and robot"},
		{"person # humans\n and robot", "person and robot"},
		{" ( a ) ", "a"},
	}
	for _, test := range tests {
		concept, err := ParseConcept(test.in)
		if assert.NoError(t, err, "input: %s", test.in) {
			assert.Equal(t, test.want, concept.String(), "input: %s", test.in)
		}
	}
}

func Test_ParseConceptTree(t *testing.T) {
	assert := assert.New(t)
	concept, err := ParseConcept("student and enrolledIn some course")
	require.NoError(t, err)
	assert.Equal(&owl.Intersection{Operands: []owl.Concept{
		owl.NewNamed("student"),
		&owl.SomeValuesFrom{Property: "enrolledIn", Filler: owl.NewNamed("course")},
	}}, concept)

	concept, err = ParseConcept("not (a or b)")
	require.NoError(t, err)
	assert.Equal(&owl.Complement{Operand: &owl.Union{Operands: []owl.Concept{
		owl.NewNamed("a"),
		owl.NewNamed("b"),
	}}}, concept)
}

func Test_ParseConceptErrors(t *testing.T) {
	tests := []string{
		"",
		"and",
		"some course",
		"person robot",
		"(person",
		"person and (robot or",
		"SubClassOf: a",
	}
	for _, in := range tests {
		concept, err := ParseConcept(in)
		assert.Nil(t, concept, "input: %s", in)
		if assert.Error(t, err, "input: %s", in) {
			assert.True(t, strings.HasPrefix(err.Error(), "parser: "), "input: %s error: %v", in, err)
		}
	}
}

func Test_ParseOntology(t *testing.T) {
	assert := assert.New(t)
	o, err := ParseOntology(`# University terminology
Class: student
    SubClassOf: person
    SubClassOf: enrolledIn some course

Class: gradStudent
    SubClassOf: student
    EquivalentTo: graduate
    DisjointWith: professor, course

Class: professor

ObjectProperty: enrolledIn
    Domain: student
    Range: course
    Characteristics: Functional

ObjectProperty: knows
    Characteristics: Transitive, Symmetric
    InverseOf: knownBy

Individual: bob
    Types: gradStudent, not professor
    Facts: enrolledIn cs101, knows alice
`)
	require.NoError(t, err)

	assert.Equal([]string{"student", "gradStudent", "professor"}, o.Classes())
	// person heads no Class frame, so it stays undeclared.
	assert.False(o.HasClass("person"))
	assert.Equal(uint64(14), o.Revision())

	subs := o.SubClassAxioms()
	require.Len(t, subs, 3)
	assert.Equal("student subClassOf person", subs[0].String())
	assert.Equal("student subClassOf enrolledIn some course", subs[1].String())
	assert.Equal("gradStudent subClassOf student", subs[2].String())

	equivs := o.EquivalenceGroups()
	require.Len(t, equivs, 1)
	assert.Equal("equivalent: gradStudent, graduate", equivs[0].String())

	disjoints := o.DisjointGroups()
	require.Len(t, disjoints, 1)
	assert.Equal("disjoint: gradStudent, professor, course", disjoints[0].String())

	props := o.Properties()
	require.Len(t, props, 2)
	assert.Equal(&owl.PropertyDecl{
		IRI:             "enrolledIn",
		Characteristics: owl.Functional,
		Domain:          "student",
		Range:           "course",
	}, props[0])
	assert.Equal(&owl.PropertyDecl{
		IRI:             "knows",
		Characteristics: owl.Transitive | owl.Symmetric,
		InverseOf:       "knownBy",
	}, props[1])

	classAsserts := o.ClassAssertions()
	require.Len(t, classAsserts, 2)
	assert.Equal("bob type gradStudent", classAsserts[0].String())
	assert.Equal("bob type not professor", classAsserts[1].String())

	propAsserts := o.PropertyAssertions()
	require.Len(t, propAsserts, 2)
	assert.Equal("bob enrolledIn cs101", propAsserts[0].String())
	assert.Equal("bob knows alice", propAsserts[1].String())
}

func Test_ParseOntologyEmpty(t *testing.T) {
	assert := assert.New(t)
	for _, in := range []string{"", "   \n\t\n", "# nothing but notes\n# more notes\n"} {
		o, err := ParseOntology(in)
		if assert.NoError(err, "input: %q", in) {
			assert.Empty(o.Classes(), "input: %q", in)
			assert.Equal(uint64(0), o.Revision(), "input: %q", in)
		}
	}
}

func Test_ParseOntologyRepeatedSections(t *testing.T) {
	assert := assert.New(t)
	o, err := ParseOntology(`
ObjectProperty: p
    Characteristics: Transitive
    Characteristics: Symmetric
    Domain: a
    Domain: b
`)
	require.NoError(t, err)
	assert.Equal(&owl.PropertyDecl{
		IRI:             "p",
		Characteristics: owl.Transitive | owl.Symmetric,
		Domain:          "b",
	}, o.Property("p"))
}

func Test_ParseOntologyErrors(t *testing.T) {
	tests := []string{
		"student",
		"Class:",
		"Class: a\n    SubClassOf:",
		"Class: a\n    DisjointWith: and",
		"Individual: bob\n    Facts: knows",
	}
	for _, in := range tests {
		o, err := ParseOntology(in)
		assert.Nil(t, o, "input: %s", in)
		if assert.Error(t, err, "input: %s", in) {
			assert.True(t, strings.HasPrefix(err.Error(), "parser: "), "input: %s error: %v", in, err)
		}
	}

	_, err := ParseOntology("ObjectProperty: p\n    Characteristics: Reflexive")
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "Functional, InverseFunctional, Symmetric, Transitive")
	}
}

func Benchmark_ParseConcept(t *testing.B) {
	for i := 0; i < t.N; i++ {
		_, err := ParseConcept("student and enrolledIn some (course or seminar)")
		if err != nil {
			t.Fatal(err)
		}
	}
}
