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
	"testing"

	"github.com/ebay/kanaga/util/cmp"
	"github.com/stretchr/testify/assert"
)

func Test_ConceptKeys(t *testing.T) {
	student := NewNamed("student")
	employee := NewNamed("employee")
	type tc struct {
		concept Concept
		key     string
	}
	tests := []tc{
		{student, "named:student"},
		{&Intersection{Operands: []Concept{employee, student}},
			"intersection:(named:employee),(named:student)"},
		{&Union{Operands: []Concept{student, employee}},
			"union:(named:employee),(named:student)"},
		{&Complement{Operand: student},
			"complement:(named:student)"},
		{&SomeValuesFrom{Property: "enrolledIn", Filler: student},
			"some:enrolledIn:(named:student)"},
		{&AllValuesFrom{Property: "enrolledIn", Filler: student},
			"all:enrolledIn:(named:student)"},
	}
	for _, test := range tests {
		assert.Equal(t, test.key, cmp.GetKey(test.concept))
	}
}

// Operand order must not change the key of an intersection or union.
func Test_ConceptKeyOperandOrder(t *testing.T) {
	assert := assert.New(t)
	a, b, c := NewNamed("a"), NewNamed("b"), NewNamed("c")
	left := &Intersection{Operands: []Concept{a, b, c}}
	right := &Intersection{Operands: []Concept{c, a, b}}
	assert.Equal(cmp.GetKey(left), cmp.GetKey(right))

	lu := &Union{Operands: []Concept{b, &Complement{Operand: a}}}
	ru := &Union{Operands: []Concept{&Complement{Operand: a}, b}}
	assert.Equal(cmp.GetKey(lu), cmp.GetKey(ru))

	// Different expressions keep different keys.
	other := &Intersection{Operands: []Concept{a, b}}
	assert.NotEqual(cmp.GetKey(left), cmp.GetKey(other))
	assert.NotEqual(cmp.GetKey(left), cmp.GetKey(lu))
}

func Test_ConceptString(t *testing.T) {
	student := NewNamed("student")
	employee := NewNamed("employee")
	type tc struct {
		concept Concept
		str     string
	}
	tests := []tc{
		{&Intersection{Operands: []Concept{student, employee}}, "student and employee"},
		{&Union{Operands: []Concept{student, employee}}, "student or employee"},
		{&Complement{Operand: student}, "not student"},
		{&Complement{Operand: &Union{Operands: []Concept{student, employee}}},
			"not (student or employee)"},
		{&SomeValuesFrom{Property: "enrolledIn", Filler: student}, "enrolledIn some student"},
		{&AllValuesFrom{Property: "advises", Filler: &Complement{Operand: student}},
			"advises only (not student)"},
	}
	for _, test := range tests {
		assert.Equal(t, test.str, test.concept.String())
	}
}

func Test_Complexity(t *testing.T) {
	a, b := NewNamed("a"), NewNamed("b")
	assert.Equal(t, 1, Complexity(a))
	assert.Equal(t, 2, Complexity(&Intersection{Operands: []Concept{a, b}}))
	assert.Equal(t, 1, Complexity(&Complement{Operand: b}))
	assert.Equal(t, 2, Complexity(&SomeValuesFrom{Property: "p", Filler: a}))
	assert.Equal(t, 4, Complexity(&Union{Operands: []Concept{
		&AllValuesFrom{Property: "p", Filler: a},
		&Intersection{Operands: []Concept{a, b}},
	}}))
}

// NewNamed normalizes the IRI, so composed and decomposed spellings of the
// same class produce the same key.
func Test_NamedNormalization(t *testing.T) {
	composed := NewNamed("café")
	decomposed := NewNamed("café")
	assert.Equal(t, cmp.GetKey(composed), cmp.GetKey(decomposed))
	assert.Equal(t, "café", decomposed.IRI)
}
