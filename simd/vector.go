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

//go:generate go run ../cmd/vecgen -output vec_gen.go -widths 1,2,4,8,16,32,64

// Vector is the fixed-width group abstraction: a value holding exactly
// Lanes() elements of T. V is the implementing type itself, which lets
// generic code construct and combine vectors without boxing.
//
// Implementations are value types; no method mutates its receiver.
type Vector[T Lanes, V any] interface {
	// Lanes returns the number of elements per vector. It is constant for V
	// and may be called on the zero value.
	Lanes() int

	// Load builds a vector from the first Lanes() elements of src.
	// It panics if src is shorter than Lanes().
	Load(src []T) V

	// Splat builds a vector with every lane set to x.
	Splat(x T) V

	// Store writes the lanes to dst, truncated to len(dst).
	Store(dst []T)

	// Lane returns lane i.
	Lane(i int) T

	// Less reports, per lane, whether the receiver is less than o.
	Less(o V) Mask

	// Greater reports, per lane, whether the receiver is greater than o.
	Greater(o V) Mask

	// Select keeps the receiver's lanes where m is set and takes the lanes
	// of no elsewhere.
	Select(m Mask, no V) V
}

// NumVector is a Vector with lane-wise arithmetic and ordering plus the
// matching horizontal reductions.
type NumVector[T Lanes, V any] interface {
	Vector[T, V]

	Add(o V) V
	Mul(o V) V
	Min(o V) V
	Max(o V) V

	ReduceSum() T
	ReduceProduct() T
	ReduceMin() T
	ReduceMax() T
}

// BitVector is a Vector with lane-wise bitwise operations plus the matching
// horizontal reductions. The operations act on the bit pattern of each lane.
type BitVector[T Lanes, V any] interface {
	Vector[T, V]

	And(o V) V
	Or(o V) V
	Xor(o V) V

	ReduceAnd() T
	ReduceOr() T
	ReduceXor() T
}

// IntVector combines the numeric and bitwise capabilities. Reductions that
// need bitwise operations additionally constrain the element to Integers.
type IntVector[T Lanes, V any] interface {
	NumVector[T, V]
	BitVector[T, V]
}
