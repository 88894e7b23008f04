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

// Package simd provides lane-parallel reductions over flat slices of scalars.
//
// A slice is split into an aligned body of full-width vectors plus ragged
// prefix and postfix remainders. The remainders are materialized as padded
// vectors whose out-of-range lanes hold an operation-specific identity, so
// every reduction shares one iteration path:
//
//	import "github.com/ajroetker/go-simditer/simd"
//
//	total := simd.Sum(data)                       // default width (16 lanes)
//	total8 := simd.SumN[simd.Vec8[float32]](data) // explicit width
//	lo, ok := simd.Min(data)                      // ok is false for empty input
//
// The lane width is a type argument chosen by the caller. Integer and
// bitwise results equal the sequential fold exactly. Floating-point sums and
// products are reassociated and only agree with the sequential fold within
// RelativeTolerance.
package simd

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types, including int.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int
}

// UnsignedInts is a constraint for unsigned integer types, including the
// pointer-width uint and uintptr.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in vector lanes.
type Lanes interface {
	Floats | Integers
}

// MaxLanes is the widest vector provided by this package (Vec64).
const MaxLanes = 64

// DefaultLanes is the lane width used by the entry points that do not take
// an explicit vector type.
const DefaultLanes = 16
