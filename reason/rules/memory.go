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

package rules

import (
	"fmt"
	"sync"

	"github.com/google/btree"
)

// wildcard is the subject-index bucket holding every fact, for matchers
// whose pattern leaves the subject variable.
const wildcard = "*"

// Fact is one (subject, predicate, object) triple in working memory.
type Fact struct {
	Subject   string `json:"subject"`
	Predicate string `json:"predicate"`
	Object    string `json:"object"`
	// Inferred marks facts derived by a rule rather than seeded from the
	// ontology.
	Inferred bool `json:"inferred,omitempty"`
	// Rule names the deriving rule. Empty for seeded facts.
	Rule string `json:"rule,omitempty"`
}

func (f Fact) String() string {
	return fmt.Sprintf("(%v %v %v)", f.Subject, f.Predicate, f.Object)
}

// Less orders facts by subject, then predicate, then object. Provenance
// fields are not part of a fact's identity, so a derived copy of a seeded
// fact is a duplicate, not a new fact.
func (f Fact) Less(than btree.Item) bool {
	o := than.(Fact)
	if f.Subject != o.Subject {
		return f.Subject < o.Subject
	}
	if f.Predicate != o.Predicate {
		return f.Predicate < o.Predicate
	}
	return f.Object < o.Object
}

// memory is the working-fact store for one forward-chaining run: a btree
// ordered by (subject, predicate, object) for deduplication and ordered
// scans, plus a subject index for the matchers. Inserts are monotonic;
// the store is rebuilt from scratch on each run rather than retracting.
type memory struct {
	lock  sync.RWMutex
	facts *btree.BTree
	// index buckets facts by subject. The wildcard bucket repeats every
	// fact so variable-subject patterns scan one slice.
	index map[string][]Fact
}

func newMemory() *memory {
	return &memory{
		facts: btree.New(16),
		index: make(map[string][]Fact),
	}
}

// insert adds the fact unless an identical triple is already present. It
// reports whether the store changed.
func (m *memory) insert(f Fact) bool {
	m.lock.Lock()
	defer m.lock.Unlock()
	if m.facts.Has(Fact{Subject: f.Subject, Predicate: f.Predicate, Object: f.Object}) {
		return false
	}
	m.facts.ReplaceOrInsert(f)
	m.index[f.Subject] = append(m.index[f.Subject], f)
	m.index[wildcard] = append(m.index[wildcard], f)
	return true
}

// withSubject returns the facts whose subject is s, or every fact when s is
// the wildcard. The returned slice is shared; callers must not mutate it.
func (m *memory) withSubject(s string) []Fact {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.index[s]
}

// has reports whether the triple is present, ignoring provenance.
func (m *memory) has(subject, predicate, object string) bool {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.facts.Has(Fact{Subject: subject, Predicate: predicate, Object: object})
}

// all returns every fact in (subject, predicate, object) order.
func (m *memory) all() []Fact {
	m.lock.RLock()
	defer m.lock.RUnlock()
	out := make([]Fact, 0, m.facts.Len())
	m.facts.Ascend(func(item btree.Item) bool {
		out = append(out, item.(Fact))
		return true
	})
	return out
}

func (m *memory) size() int {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.facts.Len()
}
