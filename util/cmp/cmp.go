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

// Package cmp contains utilities for comparing things.
package cmp

// MinInt64 returns the smaller of a or b.
func MinInt64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

// MaxInt64 returns the larger of a or b.
func MaxInt64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

// MinUInt64 returns the smaller of a or b.
func MinUInt64(a, b uint64) uint64 {
	if a < b {
		return a
	}
	return b
}

// MaxUInt64 returns the larger of a or b.
func MaxUInt64(a, b uint64) uint64 {
	if a > b {
		return a
	}
	return b
}

// MinInt32 returns the smaller of a or b.
func MinInt32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

// MaxInt32 returns the larger of a or b.
func MaxInt32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

// MinUInt32 returns the smaller of a or b.
func MinUInt32(a, b uint32) uint32 {
	if a < b {
		return a
	}
	return b
}

// MaxUInt32 returns the larger of a or b.
func MaxUInt32(a, b uint32) uint32 {
	if a > b {
		return a
	}
	return b
}

// MinInt returns the smaller of a or b.
func MinInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// MaxInt returns the larger of a or b.
func MaxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// MinString returns the smaller of a or b.
func MinString(a, b string) string {
	if a < b {
		return a
	}
	return b
}

// MaxString returns the larger of a or b.
func MaxString(a, b string) string {
	if a > b {
		return a
	}
	return b
}
