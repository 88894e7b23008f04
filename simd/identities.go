// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package simd

import (
	"math"
	"unsafe"
)

// Pad values for the reductions. Each one is a no-op under its operation, so
// padded lanes never change a result:
//
//	sum      0            x + 0 = x
//	product  1            x * 1 = x
//	min      MinIdentity  min(x, max value) = x
//	max      MaxIdentity  max(x, min value) = x
//	and      AllOnes      x & ^0 = x
//	or, xor  0            x | 0 = x ^ 0 = x

// isFloat reports whether T is a floating-point type.
func isFloat[T Lanes]() bool {
	half := 0.5
	return T(half) != 0
}

// isSigned reports whether T can hold negative values.
func isSigned[T Lanes]() bool {
	var zero T
	return zero-1 < 0
}

func bitSize[T Lanes]() uint {
	var zero T
	return uint(unsafe.Sizeof(zero)) * 8
}

// MinIdentity returns the pad value for min reductions: the largest value
// of T, or +Inf for floating-point types.
func MinIdentity[T Lanes]() T {
	inf := math.Inf(1)
	switch {
	case isFloat[T]():
		return T(inf)
	case isSigned[T]():
		return T(int64(math.MaxInt64) >> (64 - bitSize[T]()))
	default:
		return onesBits[T]()
	}
}

// MaxIdentity returns the pad value for max reductions: the smallest value
// of T, or -Inf for floating-point types.
func MaxIdentity[T Lanes]() T {
	inf := math.Inf(-1)
	switch {
	case isFloat[T]():
		return T(inf)
	case isSigned[T]():
		return T(int64(math.MinInt64) >> (64 - bitSize[T]()))
	default:
		return 0
	}
}

// AllOnes returns the pad value for AND reductions: every bit set.
func AllOnes[T Integers]() T {
	return ^T(0)
}
