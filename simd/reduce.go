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

// Slice entry points. The unsuffixed functions use DefaultLanes lanes; the
// N-suffixed ones take the vector type as their first type argument and
// infer the element type:
//
//	simd.Sum(xs)                     // Vec16
//	simd.SumN[simd.Vec4[int32]](xs)  // Vec4

// Sum returns the sum of data, or 0 if data is empty.
//
//	simd.Sum([]float64{1, 2, 3, 4, 5}) // 15
func Sum[T Lanes](data []T) T {
	return SumN[Vec16[T]](data)
}

// Product returns the product of data, or 1 if data is empty.
//
//	simd.Product([]float64{1, 2, 3, 4, 5}) // 120
func Product[T Lanes](data []T) T {
	return ProductN[Vec16[T]](data)
}

// Min returns the minimum of data. It reports false if data is empty.
//
//	simd.Min([]int{-1, 1, -2, 3, -7, 5}) // -7, true
func Min[T Lanes](data []T) (T, bool) {
	return MinN[Vec16[T]](data)
}

// Max returns the maximum of data. It reports false if data is empty.
//
//	simd.Max([]int{-1, 1, -2, 3, -7, 5}) // 5, true
func Max[T Lanes](data []T) (T, bool) {
	return MaxN[Vec16[T]](data)
}

// ReduceAnd returns the bitwise AND of data. It reports false if data is
// empty.
//
//	simd.ReduceAnd([]uint8{0b111, 0b110, 0b101}) // 0b100, true
func ReduceAnd[T Integers](data []T) (T, bool) {
	return ReduceAndN[Vec16[T]](data)
}

// ReduceOr returns the bitwise OR of data. It reports false if data is
// empty.
//
//	simd.ReduceOr([]uint8{0b000, 0b110, 0b100}) // 0b110, true
func ReduceOr[T Integers](data []T) (T, bool) {
	return ReduceOrN[Vec16[T]](data)
}

// ReduceXor returns the bitwise XOR of data. It reports false if data is
// empty.
//
//	simd.ReduceXor([]uint8{0b111, 0b110, 0b101}) // 0b100, true
func ReduceXor[T Integers](data []T) (T, bool) {
	return ReduceXorN[Vec16[T]](data)
}

// SumN is Sum with an explicit vector type.
func SumN[V NumVector[T, V], T Lanes](data []T) T {
	return NewIter[V](data).Sum()
}

// ProductN is Product with an explicit vector type.
func ProductN[V NumVector[T, V], T Lanes](data []T) T {
	return NewIter[V](data).Product()
}

// MinN is Min with an explicit vector type.
func MinN[V NumVector[T, V], T Lanes](data []T) (T, bool) {
	return NewIter[V](data).Min()
}

// MaxN is Max with an explicit vector type.
func MaxN[V NumVector[T, V], T Lanes](data []T) (T, bool) {
	return NewIter[V](data).Max()
}

// ReduceAndN is ReduceAnd with an explicit vector type.
func ReduceAndN[V IntVector[T, V], T Integers](data []T) (T, bool) {
	return AndIter(NewIter[V](data))
}

// ReduceOrN is ReduceOr with an explicit vector type.
func ReduceOrN[V IntVector[T, V], T Integers](data []T) (T, bool) {
	return OrIter(NewIter[V](data))
}

// ReduceXorN is ReduceXor with an explicit vector type.
func ReduceXorN[V IntVector[T, V], T Integers](data []T) (T, bool) {
	return XorIter(NewIter[V](data))
}
