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
	"fmt"
	"strings"

	"github.com/ebay/kanaga/owl"
	"github.com/ebay/kanaga/util/cmp"
)

// none marks an absent node reference (no parent, not blocked).
const none = -1

// An edge links a node to a successor created for a property.
type edge struct {
	property string
	to       int
}

// A node is one element of the completion graph: the set of concepts that
// must hold for one prospective individual.
type node struct {
	id     int
	parent int
	depth  int
	// blockedBy is the ancestor whose concept set subsumes this node's, or
	// none. A blocked node is never expanded.
	blockedBy int
	// order holds the concept keys in insertion order; concepts maps each
	// key to its expression. The key set doubles as the blocking label set.
	order    []string
	concepts map[string]owl.Concept
	// expanded records the concept keys whose expansion rule already fired
	// on this node, so re-visiting a node never re-fires a rule.
	expanded map[string]bool
	edges    []edge
	// univ records AllValuesFrom obligations seen at this node, keyed by
	// property. Successors created later receive these fillers at birth.
	univ map[string][]owl.Concept
}

// A graph is the completion graph for one satisfiability check. It is
// owned by that check and discarded when the check returns.
type graph struct {
	nodes []*node
	// clashAt is the node where a contradiction was found, or none.
	clashAt int
}

func newGraph() *graph {
	return &graph{clashAt: none}
}

// newNode appends a fresh node. parent is none for the root; otherwise an
// edge labeled property is added from parent to the new node. The caller
// is responsible for the parent's universal obligations.
func (g *graph) newNode(parent int, property string) *node {
	n := &node{
		id:        len(g.nodes),
		parent:    parent,
		blockedBy: none,
		concepts:  make(map[string]owl.Concept),
		expanded:  make(map[string]bool),
	}
	g.nodes = append(g.nodes, n)
	if parent != none {
		p := g.nodes[parent]
		n.depth = p.depth + 1
		p.edges = append(p.edges, edge{property: property, to: n.id})
	}
	return n
}

// add places the concept on the node. It returns true if the concept was
// not already present. Adding the second half of a Named/Complement pair
// records the clash on the graph.
func (g *graph) add(id int, concept owl.Concept) bool {
	n := g.nodes[id]
	key := cmp.GetKey(concept)
	if _, present := n.concepts[key]; present {
		return false
	}
	n.concepts[key] = concept
	n.order = append(n.order, key)
	if g.clashAt == none && n.contradicts(concept) {
		g.clashAt = id
	}
	return true
}

// contradicts reports whether the concept's negation is already on the
// node. Only the Named vs Complement(Named) pattern is a clash.
func (n *node) contradicts(concept owl.Concept) bool {
	switch c := concept.(type) {
	case *owl.Named:
		_, ok := n.concepts[cmp.GetKey(&owl.Complement{Operand: c})]
		return ok
	case *owl.Complement:
		if named, isNamed := c.Operand.(*owl.Named); isNamed {
			_, ok := n.concepts[cmp.GetKey(named)]
			return ok
		}
	}
	return false
}

// hasClash re-checks the node's concept set pairwise. add tracks clashes
// as they appear; this exists as the ground truth for tests.
func (n *node) hasClash() bool {
	for _, key := range n.order {
		named, ok := n.concepts[key].(*owl.Named)
		if !ok {
			continue
		}
		if _, ok := n.concepts[cmp.GetKey(&owl.Complement{Operand: named})]; ok {
			return true
		}
	}
	return false
}

// successors returns the ids of the node's property-successors.
func (g *graph) successors(id int, property string) []int {
	var out []int
	for _, e := range g.nodes[id].edges {
		if e.property == property {
			out = append(out, e.to)
		}
	}
	return out
}

// blockedBy walks the node's ancestor chain looking for a node whose
// concept set is a superset of this node's. Such an ancestor already
// satisfies every obligation the node carries, so expanding the node
// cannot uncover anything new and expansion stops there.
func (g *graph) blockedBy(id int) int {
	n := g.nodes[id]
	for a := n.parent; a != none; a = g.nodes[a].parent {
		if g.nodes[a].supersetOf(n) {
			return a
		}
	}
	return none
}

func (n *node) supersetOf(other *node) bool {
	if len(n.order) < len(other.order) {
		return false
	}
	for _, key := range other.order {
		if _, ok := n.concepts[key]; !ok {
			return false
		}
	}
	return true
}

// clone deep-copies the graph. Snapshots taken at union choice points are
// restored on backtracking.
func (g *graph) clone() *graph {
	out := &graph{
		nodes:   make([]*node, len(g.nodes)),
		clashAt: g.clashAt,
	}
	for i, n := range g.nodes {
		cp := &node{
			id:        n.id,
			parent:    n.parent,
			depth:     n.depth,
			blockedBy: n.blockedBy,
			order:     append([]string(nil), n.order...),
			concepts:  make(map[string]owl.Concept, len(n.concepts)),
			expanded:  make(map[string]bool, len(n.expanded)),
			edges:     append([]edge(nil), n.edges...),
		}
		for k, v := range n.concepts {
			cp.concepts[k] = v
		}
		for k := range n.expanded {
			cp.expanded[k] = true
		}
		if n.univ != nil {
			cp.univ = make(map[string][]owl.Concept, len(n.univ))
			for p, fillers := range n.univ {
				cp.univ[p] = append([]owl.Concept(nil), fillers...)
			}
		}
		out.nodes[i] = cp
	}
	return out
}

// String renders the graph one node per line, for debugging and test
// failure messages.
func (g *graph) String() string {
	var b strings.Builder
	for _, n := range g.nodes {
		fmt.Fprintf(&b, "n%d depth=%d parent=%d", n.id, n.depth, n.parent)
		if n.blockedBy != none {
			fmt.Fprintf(&b, " blockedBy=n%d", n.blockedBy)
		}
		b.WriteString(" {")
		for i, key := range n.order {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(n.concepts[key].String())
		}
		b.WriteString("}")
		for _, e := range n.edges {
			fmt.Fprintf(&b, " -%s->n%d", e.property, e.to)
		}
		b.WriteString("\n")
	}
	return b.String()
}
