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
	"context"
	"sort"
	"sync"
	"time"

	"github.com/ebay/kanaga/owl"
	"github.com/ebay/kanaga/util/clocks"
	log "github.com/sirupsen/logrus"
)

const (
	// DefaultMaxIterations bounds the fixed-point loop. Most ontologies
	// converge in a handful of iterations; hitting this bound is reported,
	// never masked.
	DefaultMaxIterations = 100
	// DefaultTierCap bounds the facts derived per priority tier per
	// iteration. It spreads derivation across iterations so one prolific
	// rule cannot starve the rest of its tier forever.
	DefaultTierCap = 5
)

// Options configures a forward-chaining engine.
type Options struct {
	// MaxIterations bounds the fixed-point loop. Zero means
	// DefaultMaxIterations.
	MaxIterations int
	// TierCap bounds derivations per priority tier per iteration. Zero
	// means DefaultTierCap.
	TierCap int
	// Rules replaces the built-in rule set. Mostly for tests.
	Rules []Rule
	// Clock is the time source for run durations. nil means the wall
	// clock.
	Clock clocks.Source
}

// Firing records one rule application, in the order it happened.
type Firing struct {
	Rule string `json:"rule"`
	Fact Fact   `json:"fact"`
}

// Applied is the outcome of one forward-chaining run.
type Applied struct {
	// Firings lists every derivation in insertion order.
	Firings []Firing `json:"firings"`
	// Iterations is the number of match/fire cycles run.
	Iterations int `json:"iterations"`
	// Facts is the working-memory size after the run, seeds included.
	Facts int `json:"facts"`
	// Exhausted is true when the run stopped at the iteration bound rather
	// than at a confirmed fixed point.
	Exhausted bool          `json:"exhausted"`
	Duration  time.Duration `json:"duration"`
}

// Engine materializes RDFS/OWL-lite entailments from an ontology into a
// working-fact store. Each Run rebuilds the store from the ontology's
// current triples; the previous run's store stays readable until the new
// one is swapped in.
type Engine struct {
	ontology *owl.Ontology
	opts     Options
	rules    []Rule

	lock sync.RWMutex
	mem  *memory
	// revision the current store was seeded from. ran is false until the
	// first Run completes.
	revision uint64
	ran      bool
}

// New returns an Engine over the ontology. The zero Options value gives the
// built-in rules, wall clock, and default bounds.
func New(ontology *owl.Ontology, opts Options) *Engine {
	if opts.MaxIterations == 0 {
		opts.MaxIterations = DefaultMaxIterations
	}
	if opts.TierCap == 0 {
		opts.TierCap = DefaultTierCap
	}
	if opts.Clock == nil {
		opts.Clock = clocks.Wall
	}
	rules := opts.Rules
	if rules == nil {
		rules = builtins()
	}
	rules = append([]Rule{}, rules...)
	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].Priority() > rules[j].Priority()
	})
	return &Engine{
		ontology: ontology,
		opts:     opts,
		rules:    rules,
		mem:      newMemory(),
	}
}

// Run seeds working memory from the ontology's triples and iterates the
// rules to a fixed point. Derived facts carry the deriving rule's name.
// Running twice against an unchanged ontology produces identical stores;
// derivation is deterministic and duplicates are never inserted.
func (e *Engine) Run(ctx context.Context) (*Applied, error) {
	start := e.opts.Clock.Now()
	revision := e.ontology.Revision()
	mem := newMemory()
	e.seed(mem)

	applied := &Applied{}
	fired := 0
	for applied.Iterations < e.opts.MaxIterations {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		fired = e.iterate(mem, applied)
		applied.Iterations++
		if fired == 0 {
			break
		}
	}
	if fired > 0 {
		applied.Exhausted = true
		log.WithFields(log.Fields{
			"iterations": applied.Iterations,
			"facts":      mem.size(),
		}).Warn("Forward chaining stopped at the iteration bound before reaching a fixed point")
	}
	applied.Facts = mem.size()
	applied.Duration = e.opts.Clock.Now().Sub(start)

	e.lock.Lock()
	e.mem = mem
	e.revision = revision
	e.ran = true
	e.lock.Unlock()

	observe(applied)
	return applied, nil
}

// iterate runs one match/resolve/fire cycle and returns the number of new
// facts inserted. All rules match against the store as it stood at the top
// of the cycle; insertions land between cycles, highest priority tier
// first, at most TierCap new facts per tier.
func (e *Engine) iterate(mem *memory, applied *Applied) int {
	type proposal struct {
		rule Rule
		fact Fact
	}
	var tiers []int
	grouped := make(map[int][]proposal)
	for _, r := range e.rules {
		matches := r.Match(mem)
		if len(matches) == 0 {
			continue
		}
		tier := r.Priority()
		if _, ok := grouped[tier]; !ok {
			tiers = append(tiers, tier)
		}
		for _, f := range matches {
			grouped[tier] = append(grouped[tier], proposal{rule: r, fact: f})
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(tiers)))

	inserted := 0
	for _, tier := range tiers {
		fired := 0
		for _, p := range grouped[tier] {
			if fired >= e.opts.TierCap {
				break
			}
			f := p.fact
			f.Inferred = true
			f.Rule = p.rule.ID()
			if !mem.insert(f) {
				continue
			}
			applied.Firings = append(applied.Firings, Firing{Rule: f.Rule, Fact: f})
			fired++
			inserted++
		}
	}
	return inserted
}

// seed renders the ontology's explicit statements as triples. Axioms over
// compound class expressions have no triple form and are skipped; the
// tableaux engine owns those.
func (e *Engine) seed(mem *memory) {
	o := e.ontology
	for _, ax := range o.SubClassAxioms() {
		sub, okSub := ax.Sub.(*owl.Named)
		sup, okSup := ax.Sup.(*owl.Named)
		if okSub && okSup {
			mem.insert(Fact{Subject: sub.IRI, Predicate: PredSubClassOf, Object: sup.IRI})
		}
	}
	for _, a := range o.ClassAssertions() {
		if class, ok := a.Class.(*owl.Named); ok {
			mem.insert(Fact{Subject: a.Individual, Predicate: PredType, Object: class.IRI})
		}
	}
	for _, p := range o.Properties() {
		if p.Domain != "" {
			mem.insert(Fact{Subject: p.IRI, Predicate: PredDomain, Object: p.Domain})
		}
		if p.Range != "" {
			mem.insert(Fact{Subject: p.IRI, Predicate: PredRange, Object: p.Range})
		}
		if p.InverseOf != "" {
			mem.insert(Fact{Subject: p.IRI, Predicate: PredInverseOf, Object: p.InverseOf})
		}
		if p.Characteristics.Has(owl.Transitive) {
			mem.insert(Fact{Subject: p.IRI, Predicate: PredType, Object: ClassTransitive})
		}
		if p.Characteristics.Has(owl.Symmetric) {
			mem.insert(Fact{Subject: p.IRI, Predicate: PredType, Object: ClassSymmetric})
		}
	}
	for _, a := range o.PropertyAssertions() {
		mem.insert(Fact{Subject: a.Subject, Predicate: a.Property, Object: a.Object})
	}
}

// Facts returns the materialized store from the last completed run, in
// (subject, predicate, object) order. Empty before the first run.
func (e *Engine) Facts() []Fact {
	e.lock.RLock()
	defer e.lock.RUnlock()
	return e.mem.all()
}

// FactsAbout returns the materialized facts with the given subject.
func (e *Engine) FactsAbout(subject string) []Fact {
	e.lock.RLock()
	defer e.lock.RUnlock()
	return append([]Fact{}, e.mem.withSubject(subject)...)
}

// Has reports whether the triple is in the materialized store.
func (e *Engine) Has(subject, predicate, object string) bool {
	e.lock.RLock()
	defer e.lock.RUnlock()
	return e.mem.has(subject, predicate, object)
}

// MaterializedAt returns the ontology revision the store was seeded from.
// The second return is false until a Run has completed; callers comparing
// against the ontology's current revision can tell whether the store is
// stale.
func (e *Engine) MaterializedAt() (uint64, bool) {
	e.lock.RLock()
	defer e.lock.RUnlock()
	return e.revision, e.ran
}
