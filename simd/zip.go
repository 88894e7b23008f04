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

// Zipped pairs the vectors of two sources and combines each pair with a
// lane-wise function. It ends as soon as either source ends.
type Zipped[V any] struct {
	a, b Source[V]
	fn   func(x, y V) V
}

// ZipWith combines two vector sources pair by pair. Composed with a fold it
// expresses vectorized kernels; a dot product is
//
//	mul := func(x, y simd.Vec8[float32]) simd.Vec8[float32] { return x.Mul(y) }
//	simd.SumOf[float32, simd.Vec8[float32]](simd.ZipWith(pa.Iter().Padded(0), pb.Iter().Padded(0), mul))
//
// The sources must be split identically for lanes to line up; see
// NewPartitionUnaligned.
func ZipWith[V any](a, b Source[V], fn func(x, y V) V) *Zipped[V] {
	return &Zipped[V]{a: a, b: b, fn: fn}
}

// Next returns the combination of the next pair.
func (z *Zipped[V]) Next() (V, bool) {
	x, ok := z.a.Next()
	if !ok {
		return x, false
	}
	y, ok := z.b.Next()
	if !ok {
		return y, false
	}
	return z.fn(x, y), true
}
