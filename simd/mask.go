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

import "math/bits"

// Mask represents the result of a per-lane comparison for vectors of up to
// MaxLanes lanes. Bit i is set if lane i is active.
//
// Mask values are produced by FirstN, Vector.Less and Vector.Greater, and
// consumed by Vector.Select.
type Mask struct {
	bits  uint64
	lanes int
}

// FirstN returns a mask over lanes lanes with the first count lanes active.
// count is clamped to [0, lanes]. This is the lane mask used to materialize
// a ragged remainder of count elements.
func FirstN(lanes, count int) Mask {
	lanes = min(max(lanes, 0), MaxLanes)
	count = min(max(count, 0), lanes)
	return Mask{bits: lowBits(count), lanes: lanes}
}

func lowBits(n int) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}
	return uint64(1)<<uint(n) - 1
}

// NumLanes returns the number of lanes in this mask.
func (m Mask) NumLanes() int {
	return m.lanes
}

// AllTrue returns true if all lanes in the mask are active.
func (m Mask) AllTrue() bool {
	return m.bits == lowBits(m.lanes)
}

// AnyTrue returns true if at least one lane in the mask is active.
func (m Mask) AnyTrue() bool {
	return m.bits != 0
}

// CountTrue returns the number of active lanes in the mask.
func (m Mask) CountTrue() int {
	return bits.OnesCount64(m.bits)
}

// GetBit returns whether lane i is active.
func (m Mask) GetBit(i int) bool {
	if i < 0 || i >= m.lanes {
		return false
	}
	return m.bits&(1<<uint(i)) != 0
}

func (m Mask) set(i int) Mask {
	m.bits |= 1 << uint(i)
	return m
}
