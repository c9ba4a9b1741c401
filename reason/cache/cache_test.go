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

package cache

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_SatisfiableRoundTrip(t *testing.T) {
	assert := assert.New(t)
	c := New(Options{})

	_, ok := c.Satisfiable("named:student")
	assert.False(ok)

	c.AddSatisfiable("named:student", true)
	verdict, ok := c.Satisfiable("named:student")
	assert.True(ok)
	assert.True(verdict)

	stats := c.Stats()
	assert.Equal(uint64(1), stats.Hits)
	assert.Equal(uint64(1), stats.Misses)
	assert.Equal(1, stats.Entries)
}

func Test_SubClassOfPairKeys(t *testing.T) {
	assert := assert.New(t)
	c := New(Options{})
	c.AddSubClassOf("student", "person", true)

	verdict, ok := c.SubClassOf("student", "person")
	assert.True(ok)
	assert.True(verdict)

	// The reversed pair is a different key.
	_, ok = c.SubClassOf("person", "student")
	assert.False(ok)
}

// Verdicts are written once per ontology revision; a second add for the
// same key must not replace the first.
func Test_AddIsWriteOnce(t *testing.T) {
	assert := assert.New(t)
	c := New(Options{})
	c.AddSatisfiable("k", true)
	c.AddSatisfiable("k", false)
	verdict, ok := c.Satisfiable("k")
	assert.True(ok)
	assert.True(verdict)

	c.AddSubClassOf("a", "b", false)
	c.AddSubClassOf("a", "b", true)
	verdict, ok = c.SubClassOf("a", "b")
	assert.True(ok)
	assert.False(verdict)
}

// Repeating a query hits the cache: the second lookup increases the hit
// count and leaves the miss count alone.
func Test_HitCountIncreases(t *testing.T) {
	assert := assert.New(t)
	c := New(Options{})
	c.AddSatisfiable("k", true)

	c.Satisfiable("k")
	first := c.Stats()
	c.Satisfiable("k")
	second := c.Stats()

	assert.Equal(first.Hits+1, second.Hits)
	assert.Equal(first.Misses, second.Misses)
}

func Test_Clear(t *testing.T) {
	assert := assert.New(t)
	c := New(Options{})
	c.AddSatisfiable("k", true)
	c.AddSubClassOf("a", "b", true)
	assert.Equal(2, c.Stats().Entries)

	c.Clear()
	assert.Equal(0, c.Stats().Entries)
	_, ok := c.Satisfiable("k")
	assert.False(ok)
	assert.Equal(uint64(1), c.Stats().Clears)

	// Counters survive a clear.
	assert.True(c.Stats().Misses > 0)
}

func Test_EvictionOldestFirst(t *testing.T) {
	assert := assert.New(t)
	c := New(Options{MaxEntries: 3})
	for i := 0; i < 5; i++ {
		c.AddSatisfiable(fmt.Sprintf("k%d", i), true)
	}
	stats := c.Stats()
	assert.Equal(3, stats.Entries)
	assert.Equal(uint64(2), stats.Evictions)

	// The oldest two are gone, the newest three remain.
	_, ok := c.Satisfiable("k0")
	assert.False(ok)
	_, ok = c.Satisfiable("k1")
	assert.False(ok)
	for i := 2; i < 5; i++ {
		_, ok = c.Satisfiable(fmt.Sprintf("k%d", i))
		assert.True(ok)
	}
}

// Re-adding a key after its eviction must not be deleted by the stale
// queue record left over from the first insert.
func Test_EvictionAfterReinsert(t *testing.T) {
	assert := assert.New(t)
	c := New(Options{MaxEntries: 2})
	c.AddSatisfiable("a", true)
	c.AddSatisfiable("b", true)
	c.AddSatisfiable("c", true) // evicts a
	c.AddSatisfiable("a", true) // evicts b, re-adds a

	_, ok := c.Satisfiable("a")
	assert.True(ok)
	_, ok = c.Satisfiable("b")
	assert.False(ok)
	_, ok = c.Satisfiable("c")
	assert.True(ok)
}

func Test_HitRate(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(float64(0), Stats{}.HitRate())
	assert.Equal(0.75, Stats{Hits: 3, Misses: 1}.HitRate())
}

func Test_ConcurrentAccess(t *testing.T) {
	c := New(Options{})
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				key := fmt.Sprintf("k%d", i%17)
				c.AddSatisfiable(key, true)
				c.Satisfiable(key)
				c.AddSubClassOf(key, "person", i%2 == 0)
				c.SubClassOf(key, "person")
			}
		}(w)
	}
	wg.Wait()
	stats := c.Stats()
	assert.Equal(t, 17*2, stats.Entries)
	assert.True(t, stats.Hits+stats.Misses >= 8*200*2)
}

func Benchmark_SubClassOfHit(t *testing.B) {
	c := New(Options{})
	c.AddSubClassOf("gradStudent", "person", true)
	for i := 0; i < t.N; i++ {
		c.SubClassOf("gradStudent", "person")
	}
}

func Benchmark_AddWithEviction(t *testing.B) {
	c := New(Options{MaxEntries: 64})
	keys := make([]string, 256)
	for i := range keys {
		keys[i] = fmt.Sprintf("k%d", i)
	}
	t.ResetTimer()
	for i := 0; i < t.N; i++ {
		c.AddSatisfiable(keys[i%len(keys)], true)
	}
}
