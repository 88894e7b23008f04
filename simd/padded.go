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

// PaddedIter produces the vectors of an Iter with its ragged prefix and
// postfix materialized as full vectors: the padded prefix first (if any),
// then every body vector unchanged, then the padded postfix (if any). Lanes
// beyond a remainder hold exactly the pad value.
type PaddedIter[T Lanes, V NumVector[T, V]] struct {
	inner       *Iter[T, V]
	pad         T
	prefixDone  bool
	postfixDone bool
}

// Pad returns the pad value.
func (p *PaddedIter[T, V]) Pad() T {
	return p.pad
}

// Len returns the exact number of vectors Next will still produce.
func (p *PaddedIter[T, V]) Len() int {
	n := p.inner.Len()
	if !p.prefixDone && len(p.inner.prefix) > 0 {
		n++
	}
	if !p.postfixDone && len(p.inner.postfix) > 0 {
		n++
	}
	return n
}

// Next returns the next vector.
func (p *PaddedIter[T, V]) Next() (V, bool) {
	if !p.prefixDone {
		p.prefixDone = true
		if len(p.inner.prefix) > 0 {
			return padRemainder[T, V](p.inner.prefix, p.pad), true
		}
	}
	if v, ok := p.inner.Next(); ok {
		return v, true
	}
	if !p.postfixDone {
		p.postfixDone = true
		if len(p.inner.postfix) > 0 {
			return padRemainder[T, V](p.inner.postfix, p.pad), true
		}
	}
	var zero V
	return zero, false
}

// All returns the remaining vectors as a range-over-func sequence.
func (p *PaddedIter[T, V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		for {
			v, ok := p.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// padRemainder materializes a remainder of fewer than Lanes() elements as a
// full vector. The remainder is staged into a zeroed buffer so the load never
// reads past the caller's slice; the lanes past the remainder are then
// replaced with pad under a FirstN mask.
func padRemainder[T Lanes, V NumVector[T, V]](rem []T, pad T) V {
	var zero V
	lanes := zero.Lanes()

	var stage [MaxLanes]T
	n := copy(stage[:lanes], rem)
	loaded := zero.Load(stage[:lanes])
	return loaded.Select(FirstN(lanes, n), zero.Splat(pad))
}
