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

import "iter"

// Source is a pull-based sequence of vectors. Iter, PaddedIter and Zipped
// implement it, and the fold functions (SumOf, MinOf, ...) consume it.
type Source[V any] interface {
	// Next returns the next vector, or false once the sequence is exhausted.
	Next() (V, bool)
}

// Iter is a lazy, exact-length sequence over the body vectors of a
// Partition. It only ever moves forward; to iterate again, call
// Partition.Iter for a fresh one.
//
// The ragged prefix and postfix are not produced by Next. They are carried
// along so Padded and the reduction methods can fold them in.
type Iter[T Lanes, V NumVector[T, V]] struct {
	prefix  []T
	body    []T
	postfix []T
	pos     int // index of the next vector
}

// NewIter partitions data with aligned body vectors and returns an iterator
// over them.
//
//	it := simd.NewIter[simd.Vec8[float64]](xs)
func NewIter[V NumVector[T, V], T Lanes](data []T) *Iter[T, V] {
	return NewPartition[V](data).Iter()
}

// Prefix returns the ragged head that Next does not produce.
func (it *Iter[T, V]) Prefix() []T {
	return it.prefix
}

// Postfix returns the ragged tail that Next does not produce.
func (it *Iter[T, V]) Postfix() []T {
	return it.postfix
}

func (it *Iter[T, V]) lanes() int {
	var zero V
	return zero.Lanes()
}

// Len returns the exact number of vectors Next will still produce.
func (it *Iter[T, V]) Len() int {
	return len(it.body)/it.lanes() - it.pos
}

// Next loads and returns the next body vector.
func (it *Iter[T, V]) Next() (V, bool) {
	var v V
	if it.Len() <= 0 {
		return v, false
	}
	v = v.Load(it.body[it.pos*it.lanes():])
	it.pos++
	return v, true
}

// Skip advances past the next k vectors in constant time, stopping at the
// end if fewer than k remain. Negative k is ignored.
func (it *Iter[T, V]) Skip(k int) {
	if k <= 0 {
		return
	}
	it.pos += min(k, it.Len())
}

// Nth skips k vectors and returns the one after them, like k calls to Next
// followed by one more. Past the end it exhausts the iterator and returns
// false.
func (it *Iter[T, V]) Nth(k int) (V, bool) {
	it.Skip(k)
	return it.Next()
}

// All returns the remaining vectors as a range-over-func sequence. Ranging
// over it advances the iterator.
func (it *Iter[T, V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Padded wraps the iterator so the prefix and postfix are produced as full
// vectors whose missing lanes hold pad.
func (it *Iter[T, V]) Padded(pad T) *PaddedIter[T, V] {
	return &PaddedIter[T, V]{inner: it, pad: pad}
}

// Sum returns the sum of all scalars, prefix and postfix included.
//
//	simd.NewIter[simd.Vec4[float64]]([]float64{1, 2, 3, 4, 5}).Sum() // 15
func (it *Iter[T, V]) Sum() T {
	return SumOf[T, V](it.Padded(0))
}

// Product returns the product of all scalars, prefix and postfix included.
func (it *Iter[T, V]) Product() T {
	return ProductOf[T, V](it.Padded(1))
}

// Min returns the minimum of all scalars, prefix and postfix included, or
// false if there are none.
func (it *Iter[T, V]) Min() (T, bool) {
	return MinOf[T, V](it.Padded(MinIdentity[T]()))
}

// Max returns the maximum of all scalars, prefix and postfix included, or
// false if there are none.
func (it *Iter[T, V]) Max() (T, bool) {
	return MaxOf[T, V](it.Padded(MaxIdentity[T]()))
}

// AndIter returns the bitwise AND of all scalars of it, prefix and postfix
// included, or false if there are none.
func AndIter[T Integers, V IntVector[T, V]](it *Iter[T, V]) (T, bool) {
	return AndOf[T, V](it.Padded(AllOnes[T]()))
}

// OrIter returns the bitwise OR of all scalars of it, prefix and postfix
// included, or false if there are none.
func OrIter[T Integers, V IntVector[T, V]](it *Iter[T, V]) (T, bool) {
	return OrOf[T, V](it.Padded(0))
}

// XorIter returns the bitwise XOR of all scalars of it, prefix and postfix
// included, or false if there are none.
func XorIter[T Integers, V IntVector[T, V]](it *Iter[T, V]) (T, bool) {
	return XorOf[T, V](it.Padded(0))
}
