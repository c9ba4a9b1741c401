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

// Package cache memoizes reasoning verdicts. Satisfiability verdicts are
// keyed by the concept's canonical key, subsumption verdicts by the
// (sub, sup) class pair. Verdicts are pure functions of the ontology, so
// entries are written once and the whole cache is dropped when the
// ontology changes.
package cache

import (
	"sync"
	"sync/atomic"
)

// Design notes
// The cache is deliberately dumb: no per-entry invalidation, no TTLs. The
// ontology revision owns correctness; Clear is wired to its mutation hooks.
// The size bound exists for long-running servers that evaluate unbounded
// streams of distinct queries. Eviction is oldest-entry-first and can only
// cost extra work later, never a wrong answer.

// ResultCache remembers reasoning verdicts between calls. Implementations
// are safe for concurrent use.
type ResultCache interface {
	// Satisfiable returns the cached verdict for the canonical concept key.
	// The second return is false if there is no entry.
	Satisfiable(key string) (verdict bool, ok bool)

	// AddSatisfiable offers the cache a satisfiability verdict to remember.
	// An existing entry for the key is left alone: verdicts never change
	// within one ontology revision.
	AddSatisfiable(key string, verdict bool)

	// SubClassOf returns the cached verdict for the (sub, sup) pair.
	SubClassOf(sub, sup string) (verdict bool, ok bool)

	// AddSubClassOf offers the cache a subsumption verdict to remember.
	AddSubClassOf(sub, sup string, verdict bool)

	// Clear drops every entry. The hit/miss counters are not reset; they
	// count over the lifetime of the cache.
	Clear()

	// Stats returns a snapshot of the counters. Reading does not reset.
	Stats() Stats
}

// Stats is a point-in-time snapshot of the cache counters.
type Stats struct {
	Hits      uint64 `json:"hits"`
	Misses    uint64 `json:"misses"`
	Evictions uint64 `json:"evictions"`
	Clears    uint64 `json:"clears"`
	// Entries is the number of verdicts currently held.
	Entries int `json:"entries"`
}

// HitRate returns hits/(hits+misses), or 0 before any lookup.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// Options configures a cache.
type Options struct {
	// MaxEntries bounds the total number of verdicts held; once full, the
	// oldest entry is evicted per insert. Zero means DefaultMaxEntries.
	MaxEntries int
}

// DefaultMaxEntries bounds the cache when Options.MaxEntries is zero.
const DefaultMaxEntries = 100_000

// New returns a new, empty ResultCache.
func New(opts Options) ResultCache {
	max := opts.MaxEntries
	if max <= 0 {
		max = DefaultMaxEntries
	}
	return &memo{
		max:  max,
		sats: make(map[string]entry),
		subs: make(map[pairKey]entry),
	}
}

// pairKey is the compound map key for subsumption verdicts. A struct key
// keeps distinct pairs distinct by construction; no string joining, no
// separator to collide with.
type pairKey struct {
	sub string
	sup string
}

// entry is a stored verdict. seq identifies the insert that wrote it, so
// eviction can tell a live entry from a stale queue record.
type entry struct {
	verdict bool
	seq     uint64
}

const (
	kindSat = iota
	kindSub
)

// queued is one record in the insertion-order queue used for eviction.
type queued struct {
	kind int
	sat  string
	sub  pairKey
	seq  uint64
}

type memo struct {
	hits      uint64
	misses    uint64
	evictions uint64
	clears    uint64

	lock  sync.RWMutex
	max   int
	seq   uint64
	order []queued
	sats  map[string]entry
	subs  map[pairKey]entry
}

func (c *memo) Satisfiable(key string) (bool, bool) {
	c.lock.RLock()
	e, ok := c.sats[key]
	c.lock.RUnlock()
	c.count(ok)
	return e.verdict, ok
}

func (c *memo) AddSatisfiable(key string, verdict bool) {
	c.lock.Lock()
	defer c.lock.Unlock()
	if _, exists := c.sats[key]; exists {
		return
	}
	c.seq++
	c.sats[key] = entry{verdict: verdict, seq: c.seq}
	c.order = append(c.order, queued{kind: kindSat, sat: key, seq: c.seq})
	c.evictLocked()
}

func (c *memo) SubClassOf(sub, sup string) (bool, bool) {
	k := pairKey{sub, sup}
	c.lock.RLock()
	e, ok := c.subs[k]
	c.lock.RUnlock()
	c.count(ok)
	return e.verdict, ok
}

func (c *memo) AddSubClassOf(sub, sup string, verdict bool) {
	k := pairKey{sub, sup}
	c.lock.Lock()
	defer c.lock.Unlock()
	if _, exists := c.subs[k]; exists {
		return
	}
	c.seq++
	c.subs[k] = entry{verdict: verdict, seq: c.seq}
	c.order = append(c.order, queued{kind: kindSub, sub: k, seq: c.seq})
	c.evictLocked()
}

// evictLocked drops oldest entries until the bound holds. Queue records
// whose seq no longer matches the live entry are leftovers from an earlier
// eviction cycle and are skipped. Callers must hold the write lock.
func (c *memo) evictLocked() {
	for len(c.sats)+len(c.subs) > c.max && len(c.order) > 0 {
		q := c.order[0]
		c.order = c.order[1:]
		switch q.kind {
		case kindSat:
			if e, ok := c.sats[q.sat]; ok && e.seq == q.seq {
				delete(c.sats, q.sat)
				atomic.AddUint64(&c.evictions, 1)
				metrics.evictions.Inc()
			}
		case kindSub:
			if e, ok := c.subs[q.sub]; ok && e.seq == q.seq {
				delete(c.subs, q.sub)
				atomic.AddUint64(&c.evictions, 1)
				metrics.evictions.Inc()
			}
		}
	}
}

func (c *memo) Clear() {
	c.lock.Lock()
	c.sats = make(map[string]entry)
	c.subs = make(map[pairKey]entry)
	c.order = nil
	c.lock.Unlock()
	atomic.AddUint64(&c.clears, 1)
	metrics.clears.Inc()
}

func (c *memo) Stats() Stats {
	c.lock.RLock()
	entries := len(c.sats) + len(c.subs)
	c.lock.RUnlock()
	return Stats{
		Hits:      atomic.LoadUint64(&c.hits),
		Misses:    atomic.LoadUint64(&c.misses),
		Evictions: atomic.LoadUint64(&c.evictions),
		Clears:    atomic.LoadUint64(&c.clears),
		Entries:   entries,
	}
}

func (c *memo) count(hit bool) {
	if hit {
		atomic.AddUint64(&c.hits, 1)
		metrics.hits.Inc()
	} else {
		atomic.AddUint64(&c.misses, 1)
		metrics.misses.Inc()
	}
}
