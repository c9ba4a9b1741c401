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

package parser

import (
	"sort"
	"strings"

	"github.com/ebay/kanaga/owl"
	"github.com/vektah/goparsify"
)

// repeatZeroOrMore matches zero or more parsers and returns the values as
// .Child[n]. An optional separator can be provided and that value will be
// consumed but not returned. Only one separator can be provided.
//
// This and repeatOneOrMore exist because the difference between Some & Many is
// not obvious from the name.
func repeatZeroOrMore(p goparsify.Parserish, sep ...goparsify.Parserish) goparsify.Parser {
	return goparsify.Some(p, sep...)
}

// repeatOneOrMore matches one or more parsers and returns the values as
// .Child[n]. An optional separator can be provided and that value will be
// consumed but not returned. Only one separator can be provided.
func repeatOneOrMore(p goparsify.Parserish, sep ...goparsify.Parserish) goparsify.Parser {
	return goparsify.Many(p, sep...)
}

// reserved are the expression keywords. They cannot be used as class,
// property, or individual names.
var reserved = map[string]bool{
	"and":  true,
	"or":   true,
	"not":  true,
	"some": true,
	"only": true,
}

// isNameByte reports whether c can appear in a name.
func isNameByte(c byte) bool {
	return c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' ||
		c == '_' || c == '-' || c == '.' || c == ':'
}

// name parses a class, property, or individual name: an unbroken sequence of
// ASCII letters, digits, and _ - . : characters. A name must not end in a
// colon, which keeps frame and section keywords like "SubClassOf:" out of
// name positions, and must not be an expression keyword.
// TODO: Once the parser accepts Unicode names, do Unicode normalization here
// instead of on the whole input.
func name() goparsify.Parser {
	return goparsify.NewParser("name", func(ps *goparsify.State, node *goparsify.Result) {
		ps.WS(ps)
		maxPos := ps.Pos
		for maxPos < len(ps.Input) && isNameByte(ps.Input[maxPos]) {
			maxPos++
		}
		token := ps.Input[ps.Pos:maxPos]
		if token == "" || strings.HasSuffix(token, ":") || reserved[token] {
			ps.ErrorHere("name")
			return
		}
		node.Token = token
		ps.Pos = maxPos
	})
}

// keyword matches word exactly, requiring a non-name character or the end of
// the input after it, so that a name like "android" never matches "and".
func keyword(word string) goparsify.Parser {
	return goparsify.NewParser(word, func(ps *goparsify.State, node *goparsify.Result) {
		ps.WS(ps)
		in := ps.Get()
		if !strings.HasPrefix(in, word) ||
			(len(in) > len(word) && isNameByte(in[len(word)])) {
			ps.ErrorHere(word)
			return
		}
		ps.Advance(len(word))
		node.Token = word
	})
}

// characteristic parses a single property characteristic. Its primary job
// over a plain keyword match is to generate better error messages.
func characteristic() goparsify.Parser {
	valid := map[string]owl.Characteristic{
		"Transitive":        owl.Transitive,
		"Symmetric":         owl.Symmetric,
		"Functional":        owl.Functional,
		"InverseFunctional": owl.InverseFunctional,
	}
	names := make([]string, 0, len(valid))
	for c := range valid {
		names = append(names, c)
	}
	sort.Strings(names)
	// goparsify will put "expected " at the start of the final error message
	errMsg := strings.Join(names, ", ")

	return goparsify.NewParser("characteristic", func(ps *goparsify.State, node *goparsify.Result) {
		ps.WS(ps)
		in := ps.Get()
		for c, val := range valid {
			if !strings.HasPrefix(in, c) {
				continue
			}
			if len(in) > len(c) && isNameByte(in[len(c)]) {
				continue
			}
			node.Token = c
			node.Result = val
			ps.Advance(len(c))
			return
		}
		ps.ErrorHere(errMsg)
	})
}

// manchesterWS is a goparsify whitespace parser for the ontology text format.
// Whitespace chars are ' ' \t \r \n. # starts a comment which runs to the
// end of the line. Newlines carry no structure: frames and sections are
// recognized by their keywords alone.
func manchesterWS(s *goparsify.State) {
	for s.Pos < len(s.Input) {
		switch s.Input[s.Pos] {
		case ' ', '\t', '\r', '\n':
			s.Pos++

		case '#':
			s.Pos++
			// consume the rest of the line
			for s.Pos < len(s.Input) {
				c := s.Input[s.Pos]
				s.Pos++
				if c == '\n' || c == '\r' {
					break
				}
			}
		default:
			return
		}
	}
}
