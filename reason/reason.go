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
	"runtime"
	"sync"
	"time"

	"github.com/ebay/kanaga/owl"
	"github.com/ebay/kanaga/reason/cache"
	"github.com/ebay/kanaga/reason/classify"
	"github.com/ebay/kanaga/reason/rules"
	"github.com/ebay/kanaga/reason/tableaux"
	"github.com/ebay/kanaga/util/clocks"
	opentracing "github.com/opentracing/opentracing-go"
	"github.com/prometheus/client_golang/prometheus"
)

// Options configures an Engine. The zero value gives default bounds, the
// built-in rules, a wall clock, and runtime.NumCPU() workers.
type Options struct {
	// Tableaux bounds every satisfiability check.
	Tableaux tableaux.Options
	// Cache configures the verdict cache. The Engine clears the cache
	// whenever the ontology changes.
	Cache cache.Options
	// Rules configures forward chaining.
	Rules rules.Options
	// ParallelThreshold is the batch size at which BatchIsSubClassOf and
	// classification's satisfiability pass fan out across workers. Zero
	// means classify.DefaultParallelThreshold.
	ParallelThreshold int
	// Workers is the fan-out width. Zero means runtime.NumCPU().
	Workers int
	// Clock is the time source for reported durations. nil means the wall
	// clock.
	Clock clocks.Source
}

// ConsistencyResult describes a consistency check's outcome.
type ConsistencyResult = classify.ConsistencyResult

// Engine answers reasoning questions over one ontology. Safe for concurrent
// use.
type Engine struct {
	ontology   *owl.Ontology
	results    cache.ResultCache
	classifier *classify.Classifier
	chainer    *rules.Engine
	opts       Options

	lock         sync.Mutex
	lastChaining *rules.Applied
	lastClassify time.Duration
}

// New returns an Engine over the ontology. The ontology stays mutable;
// mutating it invalidates the Engine's cached verdicts but not the Engine
// itself.
func New(ontology *owl.Ontology, opts Options) *Engine {
	if opts.ParallelThreshold == 0 {
		opts.ParallelThreshold = classify.DefaultParallelThreshold
	}
	if opts.Workers == 0 {
		opts.Workers = runtime.NumCPU()
	}
	if opts.Clock == nil {
		opts.Clock = clocks.Wall
	}
	ropts := opts.Rules
	if ropts.Clock == nil {
		ropts.Clock = opts.Clock
	}
	results := cache.New(opts.Cache)
	ontology.RegisterInvalidation(results.Clear)
	return &Engine{
		ontology: ontology,
		results:  results,
		classifier: classify.New(ontology, results, classify.Options{
			Tableaux:          opts.Tableaux,
			ParallelThreshold: opts.ParallelThreshold,
			Workers:           opts.Workers,
		}),
		chainer: rules.New(ontology, ropts),
		opts:    opts,
	}
}

// IsConsistent checks the subclass graph for cycles and every class for
// satisfiability. Inconsistency is reported on the result, not as an error.
func (e *Engine) IsConsistent(ctx context.Context) (ConsistencyResult, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "reason.consistent")
	defer span.Finish()
	defer e.observe(metrics.consistentDurationSeconds, e.opts.Clock.Now())
	res := e.classifier.IsConsistent(ctx)
	if err := ctx.Err(); err != nil {
		return ConsistencyResult{}, err
	}
	span.SetTag("consistent", res.Consistent)
	return res, nil
}

// IsSubClassOf reports whether every instance of sub must be an instance of
// sup. Unknown names are fresh classes related only to themselves and
// owl:Thing.
func (e *Engine) IsSubClassOf(ctx context.Context, sub, sup string) (bool, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "reason.subclassof")
	defer span.Finish()
	defer e.observe(metrics.subsumptionDurationSeconds, e.opts.Clock.Now())
	res := e.classifier.IsSubClassOf(ctx, sub, sup)
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return res, nil
}

// Equivalent reports whether a and b subsume each other.
func (e *Engine) Equivalent(ctx context.Context, a, b string) (bool, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "reason.equivalent")
	defer span.Finish()
	res := e.classifier.Equivalent(ctx, a, b)
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return res, nil
}

// Disjoint reports whether a and b can share no instance.
func (e *Engine) Disjoint(ctx context.Context, a, b string) (bool, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "reason.disjoint")
	defer span.Finish()
	res := e.classifier.Disjoint(ctx, a, b)
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return res, nil
}

// IsClassSatisfiable checks the named class for satisfiability.
func (e *Engine) IsClassSatisfiable(ctx context.Context, iri string) (tableaux.Result, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "reason.class_satisfiable")
	defer span.Finish()
	span.SetTag("class", iri)
	return e.checkSatisfiable(ctx, owl.NewNamed(iri))
}

// CheckSatisfiable checks an arbitrary class expression for satisfiability.
// Aborted means the check outgrew the configured tableaux bounds and proves
// nothing.
func (e *Engine) CheckSatisfiable(ctx context.Context, concept owl.Concept) (tableaux.Result, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "reason.satisfiable")
	defer span.Finish()
	span.SetTag("complexity", owl.Complexity(concept))
	return e.checkSatisfiable(ctx, concept)
}

func (e *Engine) checkSatisfiable(ctx context.Context, concept owl.Concept) (tableaux.Result, error) {
	defer e.observe(metrics.satisfiableDurationSeconds, e.opts.Clock.Now())
	res := e.classifier.Satisfiable(ctx, concept)
	if err := ctx.Err(); err != nil {
		return tableaux.Aborted, err
	}
	return res, nil
}

// Classify computes the complete class hierarchy.
func (e *Engine) Classify(ctx context.Context) (*classify.Hierarchy, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "reason.classify")
	defer span.Finish()
	start := e.opts.Clock.Now()
	h, err := e.classifier.Classify(ctx)
	elapsed := e.opts.Clock.Now().Sub(start)
	metrics.classifyDurationSeconds.Observe(elapsed.Seconds())
	if err != nil {
		return nil, err
	}
	e.lock.Lock()
	e.lastClassify = elapsed
	e.lock.Unlock()
	span.SetTag("classes", h.Len())
	return h, nil
}

// InstancesOf returns the individuals that provably belong to the class,
// sorted. Membership follows subclass and equivalence reasoning, not just
// direct assertion.
func (e *Engine) InstancesOf(ctx context.Context, class string) ([]string, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "reason.instances")
	defer span.Finish()
	span.SetTag("class", class)
	defer e.observe(metrics.instancesDurationSeconds, e.opts.Clock.Now())
	out := e.classifier.InstancesOf(ctx, class)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// RunForwardChaining materializes rule entailments from the ontology's
// triples and returns what fired. The materialized store is readable through
// MaterializedFacts until the next run replaces it.
func (e *Engine) RunForwardChaining(ctx context.Context) (*rules.Applied, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "reason.forward_chaining")
	defer span.Finish()
	applied, err := e.chainer.Run(ctx)
	if err != nil {
		return nil, err
	}
	span.SetTag("facts", applied.Facts)
	span.SetTag("iterations", applied.Iterations)
	e.lock.Lock()
	e.lastChaining = applied
	e.lock.Unlock()
	return applied, nil
}

// MaterializedFacts returns the forward-chaining store from the last
// completed run, and whether that store still matches the ontology's current
// revision. Empty and false before the first run.
func (e *Engine) MaterializedFacts() ([]rules.Fact, bool) {
	rev, ran := e.chainer.MaterializedAt()
	return e.chainer.Facts(), ran && rev == e.ontology.Revision()
}

// EngineStats is a point-in-time snapshot of the engine's counters.
type EngineStats struct {
	// Revision is the ontology revision the snapshot was taken at.
	Revision uint64      `json:"revision"`
	Cache    cache.Stats `json:"cache"`
	// CacheHitRate repeats Cache.HitRate() for consumers of the marshaled
	// form.
	CacheHitRate float64         `json:"cacheHitRate"`
	Tableaux     classify.Totals `json:"tableaux"`
	// Chaining is the most recent forward-chaining outcome, nil before the
	// first run.
	Chaining *rules.Applied `json:"chaining,omitempty"`
	// ClassifyDuration is how long the most recent Classify took, zero
	// before the first.
	ClassifyDuration time.Duration `json:"classifyDuration"`
}

// Stats returns the engine's counters. Reading does not reset them.
func (e *Engine) Stats() EngineStats {
	e.lock.Lock()
	chaining := e.lastChaining
	classifyDur := e.lastClassify
	e.lock.Unlock()
	stats := e.results.Stats()
	return EngineStats{
		Revision:         e.ontology.Revision(),
		Cache:            stats,
		CacheHitRate:     stats.HitRate(),
		Tableaux:         e.classifier.Totals(),
		Chaining:         chaining,
		ClassifyDuration: classifyDur,
	}
}

func (e *Engine) observe(s prometheus.Summary, start clocks.Time) {
	s.Observe(e.opts.Clock.Now().Sub(start).Seconds())
}
