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
	"math/rand/v2"
	"testing"
)

// widths lists the lane counts exercised by the table tests.
var widths = []int{1, 2, 4, 8, 16, 32, 64}

func newRand(t testing.TB) *rand.Rand {
	t.Helper()
	return rand.New(rand.NewPCG(42, uint64(len(t.Name()))))
}

func randomInts[T Integers](r *rand.Rand, n int) []T {
	data := make([]T, n)
	for i := range data {
		data[i] = T(r.Uint64())
	}
	return data
}

// randomFloats returns values in [0.5, 1.5) so long products neither
// underflow nor overflow.
func randomFloats[T Floats](r *rand.Rand, n int) []T {
	data := make([]T, n)
	for i := range data {
		data[i] = T(0.5 + r.Float64())
	}
	return data
}

// flatten concatenates the prefix, every body vector and the postfix of p.
func flatten[V NumVector[T, V], T Lanes](p Partition[T, V]) []T {
	out := append([]T{}, p.Prefix()...)
	buf := make([]T, p.Lanes())
	for i := range p.NumVectors() {
		p.Vector(i).Store(buf)
		out = append(out, buf...)
	}
	return append(out, p.Postfix()...)
}

// results collects every reduction over one input.
type results[T Integers] struct {
	Sum, Product       T
	Min, Max           T
	And, Or, Xor       T
	MinOK, MaxOK       bool
	AndOK, OrOK, XorOK bool
}

func reduceWith[V IntVector[T, V], T Integers](data []T) results[T] {
	var r results[T]
	r.Sum = SumN[V](data)
	r.Product = ProductN[V](data)
	r.Min, r.MinOK = MinN[V](data)
	r.Max, r.MaxOK = MaxN[V](data)
	r.And, r.AndOK = ReduceAndN[V](data)
	r.Or, r.OrOK = ReduceOrN[V](data)
	r.Xor, r.XorOK = ReduceXorN[V](data)
	return r
}

// reduceAllWidths runs reduceWith for every generated vector width, in the
// order of widths.
func reduceAllWidths[T Integers](data []T) []results[T] {
	return []results[T]{
		reduceWith[Vec1[T]](data),
		reduceWith[Vec2[T]](data),
		reduceWith[Vec4[T]](data),
		reduceWith[Vec8[T]](data),
		reduceWith[Vec16[T]](data),
		reduceWith[Vec32[T]](data),
		reduceWith[Vec64[T]](data),
	}
}
