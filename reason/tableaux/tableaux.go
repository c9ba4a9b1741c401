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

package tableaux

import (
	"context"
	"sort"
	"time"

	"github.com/ebay/kanaga/owl"
	"github.com/ebay/kanaga/util/clocks"
	"github.com/ebay/kanaga/util/cmp"
)

// Result is the three-valued verdict of a satisfiability check. Aborted
// means the check gave up (depth guard or context cancellation) and proves
// nothing in either direction.
type Result int

const (
	// Aborted is the zero value on purpose: a Result that was never
	// decided claims nothing.
	Aborted Result = iota
	Unsatisfiable
	Satisfiable
)

func (r Result) String() string {
	switch r {
	case Satisfiable:
		return "satisfiable"
	case Unsatisfiable:
		return "unsatisfiable"
	case Aborted:
		return "aborted"
	}
	return "invalid"
}

// DefaultMaxNodes bounds the completion graph when Options.MaxNodes is
// zero. The bound is a safety valve against runaway expansion, not a
// soundness mechanism; it is set generously so ordinary checks never
// come near it.
const DefaultMaxNodes = 1000

// Options configures a satisfiability check.
type Options struct {
	// MaxNodes aborts the check once the completion graph grows past this
	// many nodes. Zero means DefaultMaxNodes.
	MaxNodes int
	// DisableBlocking turns off the ancestor-subsumption check. Without
	// blocking, cyclic existential chains only terminate by hitting
	// MaxNodes, so this is for experiments only.
	DisableBlocking bool
	// HeuristicUnionOrder tries union alternatives simplest-first instead
	// of in declaration order. This can shrink the search space; it never
	// changes the verdict.
	HeuristicUnionOrder bool
	// Clock is the time source for Stats.Duration. Nil means clocks.Wall.
	Clock clocks.Source
}

// Stats counts the work one check did.
type Stats struct {
	NodesCreated int
	RulesApplied int
	Backtracks   int
	// MaxDepth is the deepest node created, root = 0.
	MaxDepth int
	Duration time.Duration
}

// Check decides whether the concept is satisfiable: whether some
// individual could be an instance of it given nothing but the expression
// itself. Unknown class and property names are fine; they constrain
// nothing. The check owns a fresh completion graph and leaves no state
// behind; memoizing the verdict is the caller's business.
func Check(ctx context.Context, concept owl.Concept, opts Options) (Result, Stats) {
	if opts.MaxNodes <= 0 {
		opts.MaxNodes = DefaultMaxNodes
	}
	if opts.Clock == nil {
		opts.Clock = clocks.Wall
	}
	start := opts.Clock.Now()

	c := &checker{opts: opts, graph: newGraph()}
	root := c.graph.newNode(none, "")
	c.stats.NodesCreated = 1
	c.graph.add(root.id, concept)
	c.queue = []int{root.id}

	result := c.run(ctx)

	c.stats.Duration = opts.Clock.Now().Sub(start)
	observe(result, c.stats)
	return result, c.stats
}

// A choice is one un-explored union decision: the state of the check just
// before an alternative was committed, plus the alternatives not yet
// tried. Backtracking restores the snapshot and tries the next one.
type choice struct {
	graph     *graph
	queue     []int
	node      int
	remaining []owl.Concept
}

type checker struct {
	opts    Options
	graph   *graph
	queue   []int
	choices []choice
	stats   Stats
}

func (c *checker) run(ctx context.Context) Result {
	for {
		if ctx.Err() != nil {
			return Aborted
		}
		if c.graph.clashAt != none {
			if !c.backtrack() {
				return Unsatisfiable
			}
			continue
		}
		if len(c.queue) == 0 {
			return Satisfiable
		}
		if c.stats.NodesCreated > c.opts.MaxNodes {
			return Aborted
		}
		id := c.queue[0]
		c.queue = c.queue[1:]
		c.expand(id)
	}
}

// expand fires the expansion rules for every not-yet-expanded concept on
// the node. The node's concept list can grow while this runs; the index
// loop picks up additions in the same pass.
func (c *checker) expand(id int) {
	n := c.graph.nodes[id]
	if !c.opts.DisableBlocking {
		n.blockedBy = c.graph.blockedBy(id)
		if n.blockedBy != none {
			return
		}
	}
	for i := 0; i < len(n.order); i++ {
		key := n.order[i]
		if n.expanded[key] {
			continue
		}
		n.expanded[key] = true
		c.apply(id, n.concepts[key])
		if c.graph.clashAt != none {
			return
		}
	}
}

func (c *checker) apply(id int, concept owl.Concept) {
	switch concept := concept.(type) {
	case *owl.Named, *owl.Complement:
		// Atomic for expansion purposes; these only matter to the clash
		// check, which add already performed.

	case *owl.Intersection:
		c.stats.RulesApplied++
		for _, op := range concept.Operands {
			c.graph.add(id, op)
			if c.graph.clashAt != none {
				return
			}
		}

	case *owl.Union:
		n := c.graph.nodes[id]
		for _, op := range concept.Operands {
			if _, ok := n.concepts[cmp.GetKey(op)]; ok {
				// Some alternative already holds; the choice is made.
				return
			}
		}
		c.stats.RulesApplied++
		if len(concept.Operands) == 0 {
			// A union of nothing has no way to be true.
			c.graph.clashAt = id
			return
		}
		alts := c.orderAlternatives(concept.Operands)
		if len(alts) > 1 {
			c.choices = append(c.choices, choice{
				graph:     c.graph.clone(),
				queue:     append([]int(nil), c.queue...),
				node:      id,
				remaining: alts[1:],
			})
		}
		c.graph.add(id, alts[0])

	case *owl.SomeValuesFrom:
		c.stats.RulesApplied++
		succ := c.graph.newNode(id, concept.Property)
		c.stats.NodesCreated++
		if succ.depth > c.stats.MaxDepth {
			c.stats.MaxDepth = succ.depth
		}
		c.graph.add(succ.id, concept.Filler)
		if c.graph.clashAt != none {
			return
		}
		// Universal obligations already seen at this node apply to the
		// new successor too.
		for _, filler := range c.graph.nodes[id].univ[concept.Property] {
			c.graph.add(succ.id, filler)
			if c.graph.clashAt != none {
				return
			}
		}
		c.queue = append(c.queue, succ.id)

	case *owl.AllValuesFrom:
		c.stats.RulesApplied++
		n := c.graph.nodes[id]
		if n.univ == nil {
			n.univ = make(map[string][]owl.Concept)
		}
		n.univ[concept.Property] = append(n.univ[concept.Property], concept.Filler)
		for _, succ := range c.graph.successors(id, concept.Property) {
			if c.graph.add(succ, concept.Filler) {
				c.requeue(succ)
			}
			if c.graph.clashAt != none {
				return
			}
		}
	}
}

// orderAlternatives returns the union's alternatives in the order they
// will be tried.
func (c *checker) orderAlternatives(operands []owl.Concept) []owl.Concept {
	alts := append([]owl.Concept(nil), operands...)
	if c.opts.HeuristicUnionOrder {
		sort.SliceStable(alts, func(i, j int) bool {
			return owl.Complexity(alts[i]) < owl.Complexity(alts[j])
		})
	}
	return alts
}

// backtrack unwinds to the most recent choice with an untried
// alternative, restores its snapshot, and commits that alternative. It
// returns false when no choices remain, which makes the clash final.
func (c *checker) backtrack() bool {
	for len(c.choices) > 0 {
		top := &c.choices[len(c.choices)-1]
		if len(top.remaining) == 0 {
			c.choices = c.choices[:len(c.choices)-1]
			continue
		}
		alt := top.remaining[0]
		top.remaining = top.remaining[1:]
		c.stats.Backtracks++

		// Clone the stored snapshot rather than adopting it; the frame
		// may need to serve further alternatives.
		c.graph = top.graph.clone()
		c.queue = append([]int(nil), top.queue...)
		c.graph.add(top.node, alt)
		c.requeue(top.node)
		if c.graph.clashAt == none {
			return true
		}
		// The alternative clashed on arrival; try the next one.
	}
	return false
}

// requeue schedules the node for another expansion pass unless it is
// already pending.
func (c *checker) requeue(id int) {
	for _, queued := range c.queue {
		if queued == id {
			return
		}
	}
	c.queue = append(c.queue, id)
}
