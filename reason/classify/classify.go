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

package classify

import (
	"context"
	"runtime"
	"sort"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
	"github.com/ebay/kanaga/owl"
	"github.com/ebay/kanaga/reason/cache"
	"github.com/ebay/kanaga/reason/tableaux"
	"github.com/ebay/kanaga/util/cmp"
	"github.com/ebay/kanaga/util/parallel"
	log "github.com/sirupsen/logrus"
)

// DefaultParallelThreshold is the smallest number of classes for which the
// per-class satisfiability pass fans out to multiple goroutines. Below it the
// pass runs inline; the fixed cost of spinning up workers outweighs the win
// for small ontologies.
const DefaultParallelThreshold = 100

// Options configures a Classifier.
type Options struct {
	// Tableaux is passed through to every satisfiability check.
	Tableaux tableaux.Options
	// ParallelThreshold is the minimum class count for the parallel
	// satisfiability pass. Zero means DefaultParallelThreshold.
	ParallelThreshold int
	// Workers is the goroutine count for the parallel pass. Zero means
	// runtime.NumCPU().
	Workers int
}

// Totals counts tableaux work done through this Classifier since it was
// built. Cache hits don't run the tableaux engine and so don't move these.
type Totals struct {
	Checks       uint64 `json:"checks"`
	NodesCreated uint64 `json:"nodesCreated"`
	RulesApplied uint64 `json:"rulesApplied"`
	Backtracks   uint64 `json:"backtracks"`
}

// Classifier answers subsumption and consistency questions over one ontology.
// Structural answers come from the declared class graph; anything the graph
// can't settle falls through to the tableaux engine. Verdicts are memoized in
// the shared result cache, so repeated questions over an unchanged ontology
// are map lookups.
type Classifier struct {
	ontology *owl.Ontology
	results  cache.ResultCache
	opts     Options
	totals   Totals
}

// New returns a Classifier over 'ontology'. Verdicts are read from and
// written to 'results'; the caller is responsible for clearing that cache
// when the ontology changes (owl.Ontology.RegisterInvalidation makes that a
// one-liner).
func New(ontology *owl.Ontology, results cache.ResultCache, opts Options) *Classifier {
	if opts.ParallelThreshold == 0 {
		opts.ParallelThreshold = DefaultParallelThreshold
	}
	if opts.Workers == 0 {
		opts.Workers = runtime.NumCPU()
	}
	return &Classifier{
		ontology: ontology,
		results:  results,
		opts:     opts,
	}
}

// Totals returns the accumulated tableaux counters. Safe to call
// concurrently with checks in flight.
func (c *Classifier) Totals() Totals {
	return Totals{
		Checks:       atomic.LoadUint64(&c.totals.Checks),
		NodesCreated: atomic.LoadUint64(&c.totals.NodesCreated),
		RulesApplied: atomic.LoadUint64(&c.totals.RulesApplied),
		Backtracks:   atomic.LoadUint64(&c.totals.Backtracks),
	}
}

// view is a read snapshot of the ontology's class-level structure. Each
// public operation builds one up front so that concurrent ontology mutations
// can't produce a half-old half-new answer.
type view struct {
	classes []string
	// sups holds the declared direct superclasses, named classes only.
	// Axioms involving compound class expressions are invisible to the
	// graph walk and settled by the tableaux fallback instead.
	sups map[string][]string
	// group maps a class to the other members of its (transitively merged)
	// equivalence group.
	group map[string][]string
}

func (c *Classifier) snapshot() *view {
	v := &view{
		classes: c.ontology.Classes(),
		sups:    make(map[string][]string),
		group:   make(map[string][]string),
	}
	for _, ax := range c.ontology.SubClassAxioms() {
		sub, okSub := ax.Sub.(*owl.Named)
		sup, okSup := ax.Sup.(*owl.Named)
		if !okSub || !okSup || sub.IRI == sup.IRI {
			continue
		}
		v.sups[sub.IRI] = append(v.sups[sub.IRI], sup.IRI)
	}

	// Merge equivalence groups that share a member. equivalent(A,B) and
	// equivalent(B,C) put A, B, C in one group.
	parent := make(map[string]string)
	var find func(x string) string
	find = func(x string) string {
		p, ok := parent[x]
		if !ok || p == x {
			return x
		}
		root := find(p)
		parent[x] = root
		return root
	}
	var all []string
	for _, g := range c.ontology.EquivalenceGroups() {
		var names []string
		for _, m := range g.Concepts {
			if n, ok := m.(*owl.Named); ok {
				names = append(names, n.IRI)
			}
		}
		if len(names) == 0 {
			continue
		}
		all = append(all, names...)
		for _, n := range names[1:] {
			parent[find(n)] = find(names[0])
		}
	}
	members := make(map[string][]string)
	added := make(map[string]bool)
	for _, x := range all {
		if added[x] {
			continue
		}
		added[x] = true
		root := find(x)
		members[root] = append(members[root], x)
	}
	for _, group := range members {
		sort.Strings(group)
		for _, x := range group {
			for _, y := range group {
				if x != y {
					v.group[x] = append(v.group[x], y)
				}
			}
		}
	}
	return v
}

// reaches reports whether 'from' can reach any class in 'targets' by walking
// declared superclass edges, stepping freely within equivalence groups.
func (v *view) reaches(from string, targets map[string]bool) bool {
	visited := map[string]bool{from: true}
	queue := []string{from}
	for len(queue) > 0 {
		x := queue[0]
		queue = queue[1:]
		for _, next := range v.neighbors(x) {
			if targets[next] {
				return true
			}
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}
	return false
}

func (v *view) neighbors(x string) []string {
	sups, group := v.sups[x], v.group[x]
	out := make([]string, 0, len(sups)+len(group))
	out = append(out, sups...)
	out = append(out, group...)
	return out
}

// mentioned returns, sorted, every class name that appears in a subclass or
// equivalence axiom.
func (v *view) mentioned() []string {
	seen := make(map[string]bool)
	var out []string
	add := func(n string) {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	for sub, sups := range v.sups {
		add(sub)
		for _, sup := range sups {
			add(sup)
		}
	}
	for n := range v.group {
		add(n)
	}
	sort.Strings(out)
	return out
}

// closure returns every class reachable from 'from', excluding 'from' itself.
func (v *view) closure(from string) []string {
	visited := map[string]bool{from: true}
	queue := []string{from}
	var out []string
	for len(queue) > 0 {
		x := queue[0]
		queue = queue[1:]
		for _, next := range v.neighbors(x) {
			if !visited[next] {
				visited[next] = true
				out = append(out, next)
				queue = append(queue, next)
			}
		}
	}
	return out
}

// IsSubClassOf reports whether every instance of 'sub' is necessarily an
// instance of 'sup'. Identity, owl:Thing as superclass, and owl:Nothing as
// subclass hold without looking at the ontology. Declared subclass chains and
// equivalences are walked next; if the declarations are silent, the tableaux
// engine decides by testing whether sub ⊓ ¬sup can have an instance. An
// aborted tableaux run counts as not proven, so the answer is false.
func (c *Classifier) IsSubClassOf(ctx context.Context, sub, sup string) bool {
	metrics.subsumptionChecks.Inc()
	sub, sup = owl.Normalize(sub), owl.Normalize(sup)
	if sub == sup || sup == owl.Thing || sub == owl.Nothing {
		return true
	}
	if verdict, ok := c.results.SubClassOf(sub, sup); ok {
		return verdict
	}
	verdict, decisive := c.decide(ctx, c.snapshot(), sub, sup)
	if decisive {
		c.results.AddSubClassOf(sub, sup, verdict)
	}
	return verdict
}

// decide settles sub ⊑ sup, graph first, tableaux second. The second return
// is false when the tableaux run aborted; such a verdict must not be cached,
// or a retry with a larger work bound could never improve on it.
func (c *Classifier) decide(ctx context.Context, v *view, sub, sup string) (bool, bool) {
	targets := map[string]bool{sup: true}
	for _, eq := range v.group[sup] {
		targets[eq] = true
	}
	if targets[sub] {
		return true, true
	}
	if v.reaches(sub, targets) {
		return true, true
	}
	metrics.subsumptionFallbacks.Inc()
	subsumes := &owl.Intersection{Operands: []owl.Concept{
		&owl.Named{IRI: sub},
		&owl.Complement{Operand: &owl.Named{IRI: sup}},
	}}
	switch c.checkSatisfiable(ctx, subsumes) {
	case tableaux.Unsatisfiable:
		return true, true
	case tableaux.Satisfiable:
		return false, true
	}
	log.WithFields(log.Fields{
		"sub": sub,
		"sup": sup,
	}).Warn("Subsumption check hit the tableaux work bound, treating as not proven")
	return false, false
}

// Equivalent reports whether 'a' and 'b' subsume each other.
func (c *Classifier) Equivalent(ctx context.Context, a, b string) bool {
	a, b = owl.Normalize(a), owl.Normalize(b)
	if a == b {
		return true
	}
	for _, eq := range c.snapshot().group[a] {
		if eq == b {
			return true
		}
	}
	return c.IsSubClassOf(ctx, a, b) && c.IsSubClassOf(ctx, b, a)
}

// Disjoint reports whether 'a' and 'b' can have no common instance. A
// declared disjointness between the two names answers immediately; otherwise
// the tableaux engine tests whether a ⊓ b is satisfiable. Aborted counts as
// not proven.
func (c *Classifier) Disjoint(ctx context.Context, a, b string) bool {
	a, b = owl.Normalize(a), owl.Normalize(b)
	if a != b {
		for _, g := range c.ontology.DisjointGroups() {
			var hasA, hasB bool
			for _, m := range g.Concepts {
				if n, ok := m.(*owl.Named); ok {
					hasA = hasA || n.IRI == a
					hasB = hasB || n.IRI == b
				}
			}
			if hasA && hasB {
				return true
			}
		}
	}
	both := &owl.Intersection{Operands: []owl.Concept{
		&owl.Named{IRI: a},
		&owl.Named{IRI: b},
	}}
	return c.checkSatisfiable(ctx, both) == tableaux.Unsatisfiable
}

// Satisfiable runs a cache-backed satisfiability check on an arbitrary class
// expression. Aborted results are returned to the caller but never cached; a
// later call with a larger work bound should get its chance to finish.
func (c *Classifier) Satisfiable(ctx context.Context, concept owl.Concept) tableaux.Result {
	return c.checkSatisfiable(ctx, concept)
}

func (c *Classifier) checkSatisfiable(ctx context.Context, concept owl.Concept) tableaux.Result {
	key := cmp.GetKey(concept)
	if verdict, ok := c.results.Satisfiable(key); ok {
		if verdict {
			return tableaux.Satisfiable
		}
		return tableaux.Unsatisfiable
	}
	res, stats := tableaux.Check(ctx, concept, c.opts.Tableaux)
	atomic.AddUint64(&c.totals.Checks, 1)
	atomic.AddUint64(&c.totals.NodesCreated, uint64(stats.NodesCreated))
	atomic.AddUint64(&c.totals.RulesApplied, uint64(stats.RulesApplied))
	atomic.AddUint64(&c.totals.Backtracks, uint64(stats.Backtracks))
	if res != tableaux.Aborted {
		c.results.AddSatisfiable(key, res == tableaux.Satisfiable)
	}
	return res
}

// ConsistencyResult reports whether an ontology is consistent, and if not,
// one witness of the problem. Cycle holds the classes of a subclass cycle;
// Unsatisfiable names a declared class that can have no instances.
type ConsistencyResult struct {
	Consistent    bool     `json:"consistent"`
	Cycle         []string `json:"cycle,omitempty"`
	Unsatisfiable string   `json:"unsatisfiable,omitempty"`
}

// IsConsistent checks the ontology for subclass cycles and for declared
// classes that cannot have instances. The cycle check runs first and is pure
// graph work; only when it passes does the per-class satisfiability pass run,
// in parallel for large ontologies. A class whose check aborts is not
// reported as unsatisfiable.
func (c *Classifier) IsConsistent(ctx context.Context) ConsistencyResult {
	v := c.snapshot()
	nodes := v.classes
	seen := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		seen[n] = true
	}
	var extra []string
	for n := range v.sups {
		if !seen[n] {
			extra = append(extra, n)
		}
	}
	sort.Strings(extra)
	nodes = append(append([]string{}, nodes...), extra...)
	if cycle := findCycle(v.sups, nodes); cycle != nil {
		metrics.inconsistencies.Inc()
		log.WithFields(log.Fields{
			"cycle": cycle,
		}).Warn("Ontology has a subclass cycle")
		return ConsistencyResult{Cycle: cycle}
	}
	results := c.satisfiabilityPass(ctx, v.classes)
	for i, class := range v.classes {
		if results[i] == tableaux.Unsatisfiable {
			metrics.inconsistencies.Inc()
			return ConsistencyResult{Unsatisfiable: class}
		}
	}
	return ConsistencyResult{Consistent: true}
}

// satisfiabilityPass checks each class for satisfiability and returns the
// results in input order. Classes are spread across workers by hashing the
// IRI, so a given class always lands on the same worker and the output slice
// is written without contention.
func (c *Classifier) satisfiabilityPass(ctx context.Context, classes []string) []tableaux.Result {
	out := make([]tableaux.Result, len(classes))
	workers := c.opts.Workers
	if len(classes) < c.opts.ParallelThreshold || workers <= 1 {
		for i, iri := range classes {
			out[i] = c.checkSatisfiable(ctx, &owl.Named{IRI: iri})
		}
		return out
	}
	parallel.InvokeN(ctx, workers, func(ctx context.Context, w int) error {
		for i, iri := range classes {
			if xxhash.Sum64String(iri)%uint64(workers) == uint64(w) {
				out[i] = c.checkSatisfiable(ctx, &owl.Named{IRI: iri})
			}
		}
		return nil
	})
	return out
}

// Classify computes the full class hierarchy: for every class its direct
// parents and children, full ancestor and descendant sets, equivalence group,
// and satisfiability flag. owl:Thing always appears as the ancestor of every
// other class, and owl:Nothing as the descendant of every other class. The
// result depends only on the ontology's contents, not on the order its axioms
// were added.
func (c *Classifier) Classify(ctx context.Context) (*Hierarchy, error) {
	metrics.classifications.Inc()
	v := c.snapshot()
	h := &Hierarchy{info: make(map[string]*ClassInfo)}
	for _, class := range v.classes {
		h.ensure(class)
	}
	h.ensure(owl.Thing)
	h.ensure(owl.Nothing).Satisfiable = false
	// Axioms may mention classes that were never declared. They get
	// entries too.
	for _, class := range v.mentioned() {
		h.ensure(class)
	}

	sat := c.satisfiabilityPass(ctx, v.classes)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for i, class := range v.classes {
		if class != owl.Nothing {
			h.info[class].Satisfiable = sat[i] != tableaux.Unsatisfiable
		}
	}
	for _, class := range h.order {
		info := h.info[class]
		info.Parents = dedup(v.sups[class])
		info.Equivalents = append([]string{}, v.group[class]...)
		info.Ancestors = v.closure(class)
		if class != owl.Thing && !contains(info.Ancestors, owl.Thing) {
			info.Ancestors = append(info.Ancestors, owl.Thing)
		}
	}
	for _, class := range h.order {
		info := h.info[class]
		for _, p := range info.Parents {
			h.info[p].Children = append(h.info[p].Children, class)
		}
		for _, a := range info.Ancestors {
			h.info[a].Descendants = append(h.info[a].Descendants, class)
		}
	}
	// owl:Nothing sits below everything.
	nothing := h.info[owl.Nothing]
	for _, class := range h.order {
		if class == owl.Nothing {
			continue
		}
		info := h.info[class]
		if !contains(info.Children, owl.Nothing) {
			info.Children = append(info.Children, owl.Nothing)
		}
		if !contains(info.Descendants, owl.Nothing) {
			info.Descendants = append(info.Descendants, owl.Nothing)
		}
		if !contains(nothing.Parents, class) {
			nothing.Parents = append(nothing.Parents, class)
		}
		if !contains(nothing.Ancestors, class) {
			nothing.Ancestors = append(nothing.Ancestors, class)
		}
	}
	h.sortAll()
	return h, nil
}

// InstancesOf returns the individuals asserted to belong to 'class', to one
// of its subclasses, or to an equivalent class. The result is sorted and
// free of duplicates.
func (c *Classifier) InstancesOf(ctx context.Context, class string) []string {
	class = owl.Normalize(class)
	seen := make(map[string]bool)
	var out []string
	for _, a := range c.ontology.ClassAssertions() {
		named, ok := a.Class.(*owl.Named)
		if !ok {
			continue
		}
		if !c.IsSubClassOf(ctx, named.IRI, class) {
			continue
		}
		if !seen[a.Individual] {
			seen[a.Individual] = true
			out = append(out, a.Individual)
		}
	}
	sort.Strings(out)
	return out
}

func dedup(in []string) []string {
	seen := make(map[string]bool, len(in))
	var out []string
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}
