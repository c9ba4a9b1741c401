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

package perfbenchmarks

import (
	"fmt"
	"strings"
	"testing"
)

// The verdict cache keys subsumption pairs with a two-field struct. These
// compare that shape against joining the pair into one string.

type pair struct {
	sub string
	sup string
}

var (
	subs = []string{"gradStudent", "student", "person", "course"}
	sups = []string{"person", "agent", "owl:Thing", "unit"}
)

func Benchmark_map_structKey(b *testing.B) {
	m := make(map[pair]bool)
	for i := range subs {
		m[pair{subs[i], sups[i]}] = true
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if m[pair{subs[i%4], sups[i%4]}] {
			Dummy++
		}
	}
}

func Benchmark_map_joinedKey(b *testing.B) {
	m := make(map[string]bool)
	for i := range subs {
		m[subs[i]+"\x00"+sups[i]] = true
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if m[subs[i%4]+"\x00"+sups[i%4]] {
			Dummy++
		}
	}
}

// Concept keys are appended into a strings.Builder. These compare the
// builder against Sprintf and plain concatenation for a two-part key.

func Benchmark_key_Builder(b *testing.B) {
	for i := 0; i < b.N; i++ {
		var sb strings.Builder
		sb.WriteString("named:")
		sb.WriteString(subs[i%4])
		Dummy += uint64(len(sb.String()))
	}
}

func Benchmark_key_Sprintf(b *testing.B) {
	for i := 0; i < b.N; i++ {
		s := fmt.Sprintf("named:%s", subs[i%4])
		Dummy += uint64(len(s))
	}
}

func Benchmark_key_concat(b *testing.B) {
	for i := 0; i < b.N; i++ {
		s := "named:" + subs[i%4]
		Dummy += uint64(len(s))
	}
}
