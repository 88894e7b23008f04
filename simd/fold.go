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

// This file holds the fold engine. Every reduction pulls vectors from a
// Source, combines them left to right with a lane-wise operation, then
// reduces the last vector horizontally. The fold functions take the source
// as is: padding, if any, is the caller's job (the slice entry points and
// the Iter methods choose the pad for their operation).
//
// The type arguments can't be inferred from a Source alone, so callers spell
// them out:
//
//	simd.SumOf[float32, simd.Vec8[float32]](src)

// fold combines all vectors of src left to right. It reports false if src
// produced nothing.
func fold[V any](src Source[V], combine func(a, b V) V) (V, bool) {
	acc, ok := src.Next()
	if !ok {
		return acc, false
	}
	for v, ok := src.Next(); ok; v, ok = src.Next() {
		acc = combine(acc, v)
	}
	return acc, true
}

// SumOf returns the sum of all lanes of all vectors of src, or 0 if src is
// empty.
func SumOf[T Lanes, V NumVector[T, V]](src Source[V]) T {
	acc, ok := fold(src, func(a, b V) V { return a.Add(b) })
	if !ok {
		return 0
	}
	return acc.ReduceSum()
}

// ProductOf returns the product of all lanes of all vectors of src, or 1 if
// src is empty.
func ProductOf[T Lanes, V NumVector[T, V]](src Source[V]) T {
	acc, ok := fold(src, func(a, b V) V { return a.Mul(b) })
	if !ok {
		return 1
	}
	return acc.ReduceProduct()
}

// MinOf returns the minimum over all lanes of all vectors of src. It
// reports false if src is empty.
func MinOf[T Lanes, V NumVector[T, V]](src Source[V]) (T, bool) {
	acc, ok := fold(src, func(a, b V) V { return a.Min(b) })
	if !ok {
		return 0, false
	}
	return acc.ReduceMin(), true
}

// MaxOf returns the maximum over all lanes of all vectors of src. It
// reports false if src is empty.
func MaxOf[T Lanes, V NumVector[T, V]](src Source[V]) (T, bool) {
	acc, ok := fold(src, func(a, b V) V { return a.Max(b) })
	if !ok {
		return 0, false
	}
	return acc.ReduceMax(), true
}

// AndOf returns the bitwise AND over all lanes of all vectors of src. It
// reports false if src is empty.
func AndOf[T Integers, V IntVector[T, V]](src Source[V]) (T, bool) {
	acc, ok := fold(src, func(a, b V) V { return a.And(b) })
	if !ok {
		return 0, false
	}
	return acc.ReduceAnd(), true
}

// OrOf returns the bitwise OR over all lanes of all vectors of src. It
// reports false if src is empty.
func OrOf[T Integers, V IntVector[T, V]](src Source[V]) (T, bool) {
	acc, ok := fold(src, func(a, b V) V { return a.Or(b) })
	if !ok {
		return 0, false
	}
	return acc.ReduceOr(), true
}

// XorOf returns the bitwise XOR over all lanes of all vectors of src. It
// reports false if src is empty.
func XorOf[T Integers, V IntVector[T, V]](src Source[V]) (T, bool) {
	acc, ok := fold(src, func(a, b V) V { return a.Xor(b) })
	if !ok {
		return 0, false
	}
	return acc.ReduceXor(), true
}
