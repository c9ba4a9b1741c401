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

package cmp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Int64(t *testing.T) {
	ints := []int64{-1, 0, 1, 1234, math.MaxInt64 - 1, math.MaxInt64}
	testint64Values(t, ints)
}

func Test_UInt64(t *testing.T) {
	ints := []uint64{0, 1, 1234, math.MaxInt64 - 1, math.MaxInt64, math.MaxUint64 - 1, math.MaxUint64}
	testuint64Values(t, ints)
}

func Test_Int32(t *testing.T) {
	ints := []int32{-1, 0, 1, 1234, math.MaxInt32 - 1, math.MaxInt32}
	testint32Values(t, ints)
}
func Test_UInt32(t *testing.T) {
	ints := []uint32{0, 1, 1234, math.MaxInt32 - 1, math.MaxInt32}
	testuint32Values(t, ints)
}

func Test_Int(t *testing.T) {
	ints := []int{-1, 0, 1, 1234, math.MaxInt32 - 1, math.MaxInt32}
	testintValues(t, ints)
}

func Test_String(t *testing.T) {
	s := []string{"", "a", "abba", "alice", "bob", "eve", "zebra", "zzzzzz"}
	teststringValues(t, s)
}

// The helpers below check Min/Max over every pair of the supplied values,
// including each value paired with itself.

func testint64Values(t *testing.T, values []int64) {
	for _, a := range values {
		for _, b := range values {
			min, max := a, b
			if b < a {
				min, max = b, a
			}
			assert.Equal(t, min, MinInt64(a, b))
			assert.Equal(t, max, MaxInt64(a, b))
		}
	}
}

func testuint64Values(t *testing.T, values []uint64) {
	for _, a := range values {
		for _, b := range values {
			min, max := a, b
			if b < a {
				min, max = b, a
			}
			assert.Equal(t, min, MinUInt64(a, b))
			assert.Equal(t, max, MaxUInt64(a, b))
		}
	}
}

func testint32Values(t *testing.T, values []int32) {
	for _, a := range values {
		for _, b := range values {
			min, max := a, b
			if b < a {
				min, max = b, a
			}
			assert.Equal(t, min, MinInt32(a, b))
			assert.Equal(t, max, MaxInt32(a, b))
		}
	}
}

func testuint32Values(t *testing.T, values []uint32) {
	for _, a := range values {
		for _, b := range values {
			min, max := a, b
			if b < a {
				min, max = b, a
			}
			assert.Equal(t, min, MinUInt32(a, b))
			assert.Equal(t, max, MaxUInt32(a, b))
		}
	}
}

func testintValues(t *testing.T, values []int) {
	for _, a := range values {
		for _, b := range values {
			min, max := a, b
			if b < a {
				min, max = b, a
			}
			assert.Equal(t, min, MinInt(a, b))
			assert.Equal(t, max, MaxInt(a, b))
		}
	}
}

func teststringValues(t *testing.T, values []string) {
	for _, a := range values {
		for _, b := range values {
			min, max := a, b
			if b < a {
				min, max = b, a
			}
			assert.Equal(t, min, MinString(a, b))
			assert.Equal(t, max, MaxString(a, b))
		}
	}
}
