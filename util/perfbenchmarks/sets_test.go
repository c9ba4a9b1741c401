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
	"strconv"
	"testing"
)

// Ancestor sets in the classifier are small slices scanned linearly. These
// measure the crossover against a map at a few sizes.

func sliceOfSize(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = "class" + strconv.Itoa(i)
	}
	return out
}

func benchSliceContains(b *testing.B, n int) {
	set := sliceOfSize(n)
	needle := set[n-1]
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, s := range set {
			if s == needle {
				Dummy++
				break
			}
		}
	}
}

func benchMapContains(b *testing.B, n int) {
	set := make(map[string]bool, n)
	for _, s := range sliceOfSize(n) {
		set[s] = true
	}
	needle := "class" + strconv.Itoa(n-1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if set[needle] {
			Dummy++
		}
	}
}

func Benchmark_sliceContains_4(b *testing.B)  { benchSliceContains(b, 4) }
func Benchmark_sliceContains_64(b *testing.B) { benchSliceContains(b, 64) }
func Benchmark_mapContains_4(b *testing.B)    { benchMapContains(b, 4) }
func Benchmark_mapContains_64(b *testing.B)   { benchMapContains(b, 64) }
