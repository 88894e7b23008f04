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

import "unsafe"

// maxAlign caps the body alignment at one cache line, which is also the
// widest register width (AVX-512). Wider groups gain nothing from stricter
// alignment.
const maxAlign = 64

// Partition is a view of a slice split into a ragged prefix, a body of full
// vectors and a ragged postfix. It borrows the caller's storage and never
// copies it.
//
// Invariants, with N = V.Lanes():
//
//	len(Prefix()) < N
//	len(Postfix()) < N
//	len(Prefix()) + N*NumVectors() + len(Postfix()) == len(data)
//
// Concatenating Prefix, Body and Postfix reproduces the input.
type Partition[T Lanes, V NumVector[T, V]] struct {
	prefix  []T
	body    []T
	postfix []T
}

// NewPartition splits data so that the body starts at an address aligned to
// the vector size (capped at 64 bytes), when such a boundary is reachable on
// an element boundary. The prefix absorbs the unaligned head and the postfix
// the tail. If no full vector fits, every element goes to the prefix.
//
// The vector type comes first so the element type can be inferred:
//
//	p := simd.NewPartition[simd.Vec8[float32]](data)
func NewPartition[V NumVector[T, V], T Lanes](data []T) Partition[T, V] {
	var zero V
	return split[T, V](data, alignedHead(data, zero.Lanes()))
}

// NewPartitionUnaligned splits data with the body starting at index 0. Two
// slices of equal length partitioned this way line up vector for vector,
// which is what zipped sources need.
func NewPartitionUnaligned[V NumVector[T, V], T Lanes](data []T) Partition[T, V] {
	return split[T, V](data, 0)
}

// alignedHead returns the number of leading elements before the first
// address aligned to the vector size, or 0 if that boundary cannot be
// reached on an element boundary.
func alignedHead[T Lanes](data []T, lanes int) int {
	if len(data) == 0 {
		return 0
	}
	size := int(unsafe.Sizeof(data[0]))
	align := min(lanes*size, maxAlign)
	if align <= size || align&(align-1) != 0 {
		return 0
	}
	addr := int(uintptr(unsafe.Pointer(unsafe.SliceData(data))) & uintptr(align-1))
	if addr == 0 {
		return 0
	}
	gap := align - addr
	if gap%size != 0 {
		return 0
	}
	return gap / size
}

// split builds the partition with head elements in the prefix. A head that
// leaves no room for a full vector is dropped so the prefix stays shorter
// than one vector.
func split[T Lanes, V NumVector[T, V]](data []T, head int) Partition[T, V] {
	var zero V
	lanes := zero.Lanes()
	n := len(data)

	if n < lanes {
		return Partition[T, V]{prefix: data[:n:n]}
	}
	if head >= lanes || n-head < lanes {
		head = 0
	}

	vectors := (n - head) / lanes
	end := head + vectors*lanes
	return Partition[T, V]{
		prefix:  data[:head:head],
		body:    data[head:end:end],
		postfix: data[end:n:n],
	}
}

// Lanes returns the vector width of the partition.
func (p Partition[T, V]) Lanes() int {
	var zero V
	return zero.Lanes()
}

// Prefix returns the ragged head, shorter than one vector.
func (p Partition[T, V]) Prefix() []T {
	return p.prefix
}

// Body returns the region covered by full vectors.
func (p Partition[T, V]) Body() []T {
	return p.body
}

// Postfix returns the ragged tail, shorter than one vector.
func (p Partition[T, V]) Postfix() []T {
	return p.postfix
}

// NumVectors returns the number of full vectors in the body.
func (p Partition[T, V]) NumVectors() int {
	return len(p.body) / p.Lanes()
}

// Vector loads body vector i.
func (p Partition[T, V]) Vector(i int) V {
	var zero V
	lanes := zero.Lanes()
	return zero.Load(p.body[i*lanes:])
}

// Iter returns a fresh iterator over the partition. Each call starts from
// the first vector.
func (p Partition[T, V]) Iter() *Iter[T, V] {
	return &Iter[T, V]{
		prefix:  p.prefix,
		body:    p.body,
		postfix: p.postfix,
	}
}
