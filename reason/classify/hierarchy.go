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
	"sort"
)

// A Hierarchy is the result of classification: for every class, its full
// sets of ancestors, descendants, and equivalents. Hierarchies are
// immutable once built.
type Hierarchy struct {
	order []string
	info  map[string]*ClassInfo
}

// ClassInfo describes one class's place in the hierarchy. All slices are
// sorted and never include the class itself. owl:Thing and owl:Nothing
// carry synthetic edges placing them above and below every other class.
type ClassInfo struct {
	IRI string `json:"iri"`
	// Parents are the directly declared superclasses.
	Parents []string `json:"parents,omitempty"`
	// Children are the declared direct subclasses, plus owl:Nothing.
	Children []string `json:"children,omitempty"`
	// Ancestors holds every class provably above this one: the closure
	// of declared superclasses and equivalents, plus owl:Thing.
	Ancestors []string `json:"ancestors,omitempty"`
	// Descendants holds every class provably below this one.
	Descendants []string `json:"descendants,omitempty"`
	// Equivalents are the classes declared equivalent to this one,
	// directly or through a shared group.
	Equivalents []string `json:"equivalents,omitempty"`
	// Satisfiable is false only when the class was proven to have no
	// possible instances.
	Satisfiable bool `json:"satisfiable"`
}

// Classes returns every classified class: declared classes in declaration
// order, then owl:Thing and owl:Nothing if they were not declared, then
// classes that appear only inside axioms.
func (h *Hierarchy) Classes() []string {
	out := make([]string, len(h.order))
	copy(out, h.order)
	return out
}

// Info returns the entry for the class, or nil if the class was not part
// of the classified ontology.
func (h *Hierarchy) Info(iri string) *ClassInfo {
	return h.info[iri]
}

// Ancestors returns the class's full ancestor set, or nil for an unknown
// class.
func (h *Hierarchy) Ancestors(iri string) []string {
	if info := h.info[iri]; info != nil {
		return info.Ancestors
	}
	return nil
}

// Descendants returns the class's full descendant set, or nil for an
// unknown class.
func (h *Hierarchy) Descendants(iri string) []string {
	if info := h.info[iri]; info != nil {
		return info.Descendants
	}
	return nil
}

// Len returns the number of classified classes.
func (h *Hierarchy) Len() int {
	return len(h.order)
}

// ensure returns the entry for the class, creating it if needed.
func (h *Hierarchy) ensure(iri string) *ClassInfo {
	if info, ok := h.info[iri]; ok {
		return info
	}
	info := &ClassInfo{IRI: iri, Satisfiable: true}
	h.info[iri] = info
	h.order = append(h.order, iri)
	return info
}

// sortAll sorts every slice in every entry, giving the hierarchy one
// canonical form regardless of the order classification visited classes.
func (h *Hierarchy) sortAll() {
	for _, info := range h.info {
		sort.Strings(info.Parents)
		sort.Strings(info.Children)
		sort.Strings(info.Ancestors)
		sort.Strings(info.Descendants)
		sort.Strings(info.Equivalents)
	}
}

// findCycle looks for a cycle in the declared subclass graph. It returns
// the classes forming the first cycle found, or nil. The search is a
// depth-first walk keeping an explicit recursion stack; an edge back into
// the stack closes a cycle. Self-edges (a class declared under itself)
// are vacuous, not cycles.
func findCycle(sups map[string][]string, nodes []string) []string {
	visited := make(map[string]bool)
	onStack := make(map[string]bool)
	var stack []string

	var walk func(string) []string
	walk = func(class string) []string {
		visited[class] = true
		onStack[class] = true
		stack = append(stack, class)
		for _, sup := range sups[class] {
			if sup == class {
				continue
			}
			if onStack[sup] {
				// Found a back-edge; the cycle is the stack from sup on.
				for i, member := range stack {
					if member == sup {
						return append([]string(nil), stack[i:]...)
					}
				}
			}
			if !visited[sup] {
				if cycle := walk(sup); cycle != nil {
					return cycle
				}
			}
		}
		stack = stack[:len(stack)-1]
		onStack[class] = false
		return nil
	}

	for _, class := range nodes {
		if !visited[class] {
			if cycle := walk(class); cycle != nil {
				return cycle
			}
		}
	}
	return nil
}
