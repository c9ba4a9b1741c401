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

package reason

import (
	"context"
	"testing"

	"github.com/ebay/kanaga/owl"
	"github.com/ebay/kanaga/reason/tableaux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addSub(o *owl.Ontology, sub, sup string) {
	o.AddAxiom(&owl.SubClassOf{Sub: owl.NewNamed(sub), Sup: owl.NewNamed(sup)})
}

func academic() *owl.Ontology {
	o := owl.NewOntology()
	for _, c := range []string{"person", "student", "gradStudent", "robot"} {
		o.AddClass(c)
	}
	addSub(o, "student", "person")
	addSub(o, "gradStudent", "student")
	return o
}

func Test_EngineSubsumption(t *testing.T) {
	assert := assert.New(t)
	e := New(academic(), Options{})
	ctx := context.Background()

	for _, tc := range []struct {
		sub, sup string
		want     bool
	}{
		{"gradStudent", "student", true},
		{"gradStudent", "person", true},
		{"student", "person", true},
		{"gradStudent", owl.Thing, true},
		{"person", "gradStudent", false},
		{"robot", "person", false},
		{"person", "person", true},
		{"alien", "alien", true},
		{"alien", "person", false},
	} {
		got, err := e.IsSubClassOf(ctx, tc.sub, tc.sup)
		require.NoError(t, err)
		assert.Equal(tc.want, got, "%v subClassOf %v", tc.sub, tc.sup)
	}
}

func Test_EngineEquivalentAndDisjoint(t *testing.T) {
	assert := assert.New(t)
	o := academic()
	o.AddAxiom(&owl.EquivalentClasses{Concepts: []owl.Concept{
		owl.NewNamed("human"), owl.NewNamed("person"),
	}})
	o.AddAxiom(&owl.DisjointClasses{Concepts: []owl.Concept{
		owl.NewNamed("robot"), owl.NewNamed("person"),
	}})
	e := New(o, Options{})
	ctx := context.Background()

	eq, err := e.Equivalent(ctx, "human", "person")
	require.NoError(t, err)
	assert.True(eq)
	eq, err = e.Equivalent(ctx, "student", "person")
	require.NoError(t, err)
	assert.False(eq)

	dis, err := e.Disjoint(ctx, "robot", "person")
	require.NoError(t, err)
	assert.True(dis)
	dis, err = e.Disjoint(ctx, "student", "person")
	require.NoError(t, err)
	assert.False(dis)
}

func Test_EngineSatisfiable(t *testing.T) {
	assert := assert.New(t)
	e := New(academic(), Options{})
	ctx := context.Background()

	res, err := e.IsClassSatisfiable(ctx, "person")
	require.NoError(t, err)
	assert.Equal(tableaux.Satisfiable, res)

	res, err = e.CheckSatisfiable(ctx, &owl.Intersection{Operands: []owl.Concept{
		owl.NewNamed("person"),
		&owl.Complement{Operand: owl.NewNamed("person")},
	}})
	require.NoError(t, err)
	assert.Equal(tableaux.Unsatisfiable, res)
}

func Test_EngineConsistency(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	res, err := New(academic(), Options{}).IsConsistent(ctx)
	require.NoError(t, err)
	assert.True(res.Consistent)

	o := owl.NewOntology()
	addSub(o, "a", "b")
	addSub(o, "b", "c")
	addSub(o, "c", "a")
	res, err = New(o, Options{}).IsConsistent(ctx)
	require.NoError(t, err)
	assert.False(res.Consistent)
	assert.ElementsMatch([]string{"a", "b", "c"}, res.Cycle)
}

func Test_EngineClassify(t *testing.T) {
	assert := assert.New(t)
	e := New(academic(), Options{})
	h, err := e.Classify(context.Background())
	require.NoError(t, err)
	assert.Equal(6, h.Len())
	assert.Equal([]string{owl.Thing, "person", "student"}, h.Ancestors("gradStudent"))
	info := h.Info("person")
	require.NotNil(t, info)
	assert.True(info.Satisfiable)
}

func Test_EngineInstances(t *testing.T) {
	assert := assert.New(t)
	o := academic()
	o.AddAxiom(&owl.ClassAssertion{Individual: "bob", Class: owl.NewNamed("gradStudent")})
	o.AddAxiom(&owl.ClassAssertion{Individual: "alice", Class: owl.NewNamed("person")})
	o.AddAxiom(&owl.ClassAssertion{Individual: "rob", Class: owl.NewNamed("robot")})
	e := New(o, Options{})
	got, err := e.InstancesOf(context.Background(), "person")
	require.NoError(t, err)
	assert.Equal([]string{"alice", "bob"}, got)
}

func Test_EngineForwardChaining(t *testing.T) {
	assert := assert.New(t)
	o := owl.NewOntology()
	addSub(o, "student", "person")
	addSub(o, "person", "agent")
	o.AddAxiom(&owl.ClassAssertion{Individual: "bob", Class: owl.NewNamed("student")})
	e := New(o, Options{})

	facts, fresh := e.MaterializedFacts()
	assert.Empty(facts)
	assert.False(fresh)
	assert.Nil(e.Stats().Chaining)

	applied, err := e.RunForwardChaining(context.Background())
	require.NoError(t, err)
	assert.Equal(6, applied.Facts)
	assert.False(applied.Exhausted)

	facts, fresh = e.MaterializedFacts()
	assert.Len(facts, 6)
	assert.True(fresh)
	assert.Equal(applied, e.Stats().Chaining)

	// A mutation leaves the store readable but stale.
	o.AddClass("extra")
	facts, fresh = e.MaterializedFacts()
	assert.Len(facts, 6)
	assert.False(fresh)
}

func Test_EngineCacheLifecycle(t *testing.T) {
	assert := assert.New(t)
	o := academic()
	e := New(o, Options{})
	ctx := context.Background()

	got, err := e.IsSubClassOf(ctx, "gradStudent", "person")
	require.NoError(t, err)
	assert.True(got)
	before := e.Stats()
	assert.Equal(1, before.Cache.Entries)

	got, err = e.IsSubClassOf(ctx, "gradStudent", "person")
	require.NoError(t, err)
	assert.True(got)
	after := e.Stats()
	assert.Equal(before.Cache.Hits+1, after.Cache.Hits)
	assert.Equal(1, after.Cache.Entries)
	assert.Greater(after.CacheHitRate, 0.0)

	// Any ontology mutation drops every cached verdict.
	o.AddClass("android")
	cleared := e.Stats()
	assert.Equal(0, cleared.Cache.Entries)
	assert.Equal(uint64(1), cleared.Cache.Clears)
	assert.Equal(o.Revision(), cleared.Revision)
}

func Test_EngineContextCancelled(t *testing.T) {
	assert := assert.New(t)
	e := New(academic(), Options{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.IsSubClassOf(ctx, "gradStudent", "person")
	assert.Equal(context.Canceled, err)
	_, err = e.IsConsistent(ctx)
	assert.Equal(context.Canceled, err)
	_, err = e.Classify(ctx)
	assert.Equal(context.Canceled, err)
	_, err = e.InstancesOf(ctx, "person")
	assert.Equal(context.Canceled, err)
	_, err = e.RunForwardChaining(ctx)
	assert.Equal(context.Canceled, err)
	res, err := e.CheckSatisfiable(ctx, owl.NewNamed("person"))
	assert.Equal(context.Canceled, err)
	assert.Equal(tableaux.Aborted, res)
}
