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

// Predicates and marker classes used in working-memory facts.
const (
	PredSubClassOf = "rdfs:subClassOf"
	PredType       = "rdf:type"
	PredDomain     = "rdfs:domain"
	PredRange      = "rdfs:range"
	PredInverseOf  = "owl:inverseOf"

	ClassTransitive = "owl:TransitiveProperty"
	ClassSymmetric  = "owl:SymmetricObjectProperty"
)

// Rule is one production rule. Match proposes the facts the rule would
// derive from the current store; the engine stamps provenance on and
// inserts whichever proposals survive conflict resolution.
//
// Rule is a closed union: the implementations below are the only ones.
type Rule interface {
	// ID names the rule in provenance and logs.
	ID() string
	// Priority groups rules into conflict-resolution tiers. Higher fires
	// first.
	Priority() int
	// Match returns candidate derivations. Proposing an already-present
	// fact is harmless; the engine deduplicates on insert.
	Match(m *memory) []Fact
	aRule()
}

// ImplementRule is a compile-time check that each rule type implements the
// Rule interface.
var ImplementRule = []Rule{
	subClassTransitivity{},
	typeInheritance{},
	transitiveProperty{},
	domainInference{},
	rangeInference{},
	symmetricProperty{},
	inverseProperty{},
}

// builtins returns the standard rule set, highest priority first.
func builtins() []Rule {
	return []Rule{
		subClassTransitivity{},
		typeInheritance{},
		transitiveProperty{},
		domainInference{},
		rangeInference{},
		symmetricProperty{},
		inverseProperty{},
	}
}

// subClassTransitivity: (a ⊑ b), (b ⊑ c) ⊢ (a ⊑ c).
type subClassTransitivity struct{}

func (subClassTransitivity) ID() string    { return "subclass-transitivity" }
func (subClassTransitivity) Priority() int { return 3 }
func (subClassTransitivity) aRule()        {}

func (subClassTransitivity) Match(m *memory) []Fact {
	var out []Fact
	for _, f := range m.withSubject(wildcard) {
		if f.Predicate != PredSubClassOf {
			continue
		}
		for _, g := range m.withSubject(f.Object) {
			if g.Predicate != PredSubClassOf || g.Object == f.Subject {
				continue
			}
			out = append(out, Fact{
				Subject:   f.Subject,
				Predicate: PredSubClassOf,
				Object:    g.Object,
			})
		}
	}
	return out
}

// typeInheritance: (x type c), (c ⊑ d) ⊢ (x type d). This is what carries
// an individual's type up the class chain.
type typeInheritance struct{}

func (typeInheritance) ID() string    { return "type-inheritance" }
func (typeInheritance) Priority() int { return 3 }
func (typeInheritance) aRule()        {}

func (typeInheritance) Match(m *memory) []Fact {
	var out []Fact
	for _, f := range m.withSubject(wildcard) {
		if f.Predicate != PredType {
			continue
		}
		for _, g := range m.withSubject(f.Object) {
			if g.Predicate != PredSubClassOf {
				continue
			}
			out = append(out, Fact{
				Subject:   f.Subject,
				Predicate: PredType,
				Object:    g.Object,
			})
		}
	}
	return out
}

// transitiveProperty: (p type TransitiveProperty), (x p y), (y p z) ⊢ (x p z).
type transitiveProperty struct{}

func (transitiveProperty) ID() string    { return "transitive-property" }
func (transitiveProperty) Priority() int { return 2 }
func (transitiveProperty) aRule()        {}

func (transitiveProperty) Match(m *memory) []Fact {
	var out []Fact
	for _, t := range m.withSubject(wildcard) {
		if t.Predicate != PredType || t.Object != ClassTransitive {
			continue
		}
		p := t.Subject
		for _, f := range m.withSubject(wildcard) {
			if f.Predicate != p {
				continue
			}
			for _, g := range m.withSubject(f.Object) {
				if g.Predicate != p || g.Object == f.Subject {
					continue
				}
				out = append(out, Fact{
					Subject:   f.Subject,
					Predicate: p,
					Object:    g.Object,
				})
			}
		}
	}
	return out
}

// domainInference: (p domain d), (x p y) ⊢ (x type d).
type domainInference struct{}

func (domainInference) ID() string    { return "domain-inference" }
func (domainInference) Priority() int { return 1 }
func (domainInference) aRule()        {}

func (domainInference) Match(m *memory) []Fact {
	var out []Fact
	for _, d := range m.withSubject(wildcard) {
		if d.Predicate != PredDomain {
			continue
		}
		for _, f := range m.withSubject(wildcard) {
			if f.Predicate != d.Subject {
				continue
			}
			out = append(out, Fact{
				Subject:   f.Subject,
				Predicate: PredType,
				Object:    d.Object,
			})
		}
	}
	return out
}

// rangeInference: (p range r), (x p y) ⊢ (y type r).
type rangeInference struct{}

func (rangeInference) ID() string    { return "range-inference" }
func (rangeInference) Priority() int { return 1 }
func (rangeInference) aRule()        {}

func (rangeInference) Match(m *memory) []Fact {
	var out []Fact
	for _, r := range m.withSubject(wildcard) {
		if r.Predicate != PredRange {
			continue
		}
		for _, f := range m.withSubject(wildcard) {
			if f.Predicate != r.Subject {
				continue
			}
			out = append(out, Fact{
				Subject:   f.Object,
				Predicate: PredType,
				Object:    r.Object,
			})
		}
	}
	return out
}

// symmetricProperty: (p type SymmetricProperty), (x p y) ⊢ (y p x).
type symmetricProperty struct{}

func (symmetricProperty) ID() string    { return "symmetric-property" }
func (symmetricProperty) Priority() int { return 0 }
func (symmetricProperty) aRule()        {}

func (symmetricProperty) Match(m *memory) []Fact {
	var out []Fact
	for _, t := range m.withSubject(wildcard) {
		if t.Predicate != PredType || t.Object != ClassSymmetric {
			continue
		}
		for _, f := range m.withSubject(wildcard) {
			if f.Predicate != t.Subject || f.Subject == f.Object {
				continue
			}
			out = append(out, Fact{
				Subject:   f.Object,
				Predicate: f.Predicate,
				Object:    f.Subject,
			})
		}
	}
	return out
}

// inverseProperty: (p inverseOf q), (x p y) ⊢ (y q x), and the mirror
// (x q y) ⊢ (y p x), since inversion is itself symmetric.
type inverseProperty struct{}

func (inverseProperty) ID() string    { return "inverse-property" }
func (inverseProperty) Priority() int { return 0 }
func (inverseProperty) aRule()        {}

func (inverseProperty) Match(m *memory) []Fact {
	var out []Fact
	for _, inv := range m.withSubject(wildcard) {
		if inv.Predicate != PredInverseOf {
			continue
		}
		p, q := inv.Subject, inv.Object
		for _, f := range m.withSubject(wildcard) {
			switch f.Predicate {
			case p:
				out = append(out, Fact{Subject: f.Object, Predicate: q, Object: f.Subject})
			case q:
				out = append(out, Fact{Subject: f.Object, Predicate: p, Object: f.Subject})
			}
		}
	}
	return out
}
