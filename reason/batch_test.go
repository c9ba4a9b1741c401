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
	"fmt"
	"testing"

	"github.com/ebay/kanaga/owl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_BatchIsSubClassOf(t *testing.T) {
	assert := assert.New(t)
	e := New(academic(), Options{})
	got, err := e.BatchIsSubClassOf(context.Background(), []SubClassQuery{
		{Sub: "gradStudent", Sup: "person"},
		{Sub: "person", Sup: "gradStudent"},
		{Sub: "robot", Sup: "person"},
		{Sub: "student", Sup: owl.Thing},
		{Sub: "gradStudent", Sup: "person"},
	})
	require.NoError(t, err)
	assert.Equal([]bool{true, false, false, true, true}, got)
}

func Test_BatchEmpty(t *testing.T) {
	got, err := New(academic(), Options{}).BatchIsSubClassOf(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func Test_BatchParallelMatchesSequential(t *testing.T) {
	assert := assert.New(t)
	o := owl.NewOntology()
	for i := 0; i < 10; i++ {
		o.AddClass(fmt.Sprintf("c%02d", i))
	}
	for i := 0; i < 9; i++ {
		addSub(o, fmt.Sprintf("c%02d", i), fmt.Sprintf("c%02d", i+1))
	}
	var queries []SubClassQuery
	for i := 0; i < 10; i++ {
		for j := 0; j < 10; j++ {
			queries = append(queries, SubClassQuery{
				Sub: fmt.Sprintf("c%02d", i),
				Sup: fmt.Sprintf("c%02d", j),
			})
		}
	}

	fanned := New(o, Options{ParallelThreshold: 1, Workers: 4})
	serial := New(o, Options{ParallelThreshold: len(queries) + 1})
	fGot, err := fanned.BatchIsSubClassOf(context.Background(), queries)
	require.NoError(t, err)
	sGot, err := serial.BatchIsSubClassOf(context.Background(), queries)
	require.NoError(t, err)
	assert.Equal(sGot, fGot)

	for i := 0; i < 10; i++ {
		for j := 0; j < 10; j++ {
			assert.Equal(i <= j, fGot[i*10+j], "c%02d subClassOf c%02d", i, j)
		}
	}
}

func Test_BatchCancelled(t *testing.T) {
	assert := assert.New(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	got, err := New(academic(), Options{}).BatchIsSubClassOf(ctx, []SubClassQuery{
		{Sub: "a", Sup: "b"},
	})
	assert.Nil(got)
	assert.Equal(context.Canceled, err)
}
