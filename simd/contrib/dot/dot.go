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

// Package dot computes dot products by zipping two lane-parallel iterators
// with a lane-wise multiply and folding the result with a sum.
package dot

import "github.com/ajroetker/go-simditer/simd"

// Dot computes the dot product of a and b with the default vector width.
// The longer input is truncated to the length of the shorter.
func Dot[T simd.Lanes](a, b []T) T {
	return DotN[simd.Vec16[T]](a, b)
}

// DotN computes the dot product of a and b with the lane width of V:
//
//	dot.DotN[simd.Vec8[float32]](a, b)
//
// Both inputs are split with simd.NewPartitionUnaligned so their groups line
// up lane for lane. Remainders are padded with 0, which contributes nothing
// to the sum.
func DotN[V simd.NumVector[T, V], T simd.Lanes](a, b []T) T {
	n := min(len(a), len(b))
	pa := simd.NewPartitionUnaligned[V](a[:n])
	pb := simd.NewPartitionUnaligned[V](b[:n])

	prod := simd.ZipWith(pa.Iter().Padded(0), pb.Iter().Padded(0), mul[T, V])
	return simd.SumOf[T, V](prod)
}

func mul[T simd.Lanes, V simd.NumVector[T, V]](x, y V) V {
	return x.Mul(y)
}

// DotBatch computes the dot product of each pair queries[i], keys[i] with
// the default vector width. The result has min(len(queries), len(keys))
// entries.
func DotBatch[T simd.Lanes](queries, keys [][]T) []T {
	n := min(len(queries), len(keys))
	results := make([]T, n)

	for i := 0; i < n; i++ {
		results[i] = Dot(queries[i], keys[i])
	}

	return results
}
