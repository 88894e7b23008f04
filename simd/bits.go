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

// The helpers below apply bitwise operators to the bit pattern of any lane
// type, so fixed-width vectors can offer And/Or/Xor for float lanes too
// (as masks on sign or exponent bits). Reductions that expose bitwise
// results restrict themselves to Integers.

func andBits[T Lanes](a, b T) T {
	p, q := unsafe.Pointer(&a), unsafe.Pointer(&b)
	switch unsafe.Sizeof(a) {
	case 1:
		*(*uint8)(p) &= *(*uint8)(q)
	case 2:
		*(*uint16)(p) &= *(*uint16)(q)
	case 4:
		*(*uint32)(p) &= *(*uint32)(q)
	case 8:
		*(*uint64)(p) &= *(*uint64)(q)
	}
	return a
}

func orBits[T Lanes](a, b T) T {
	p, q := unsafe.Pointer(&a), unsafe.Pointer(&b)
	switch unsafe.Sizeof(a) {
	case 1:
		*(*uint8)(p) |= *(*uint8)(q)
	case 2:
		*(*uint16)(p) |= *(*uint16)(q)
	case 4:
		*(*uint32)(p) |= *(*uint32)(q)
	case 8:
		*(*uint64)(p) |= *(*uint64)(q)
	}
	return a
}

func xorBits[T Lanes](a, b T) T {
	p, q := unsafe.Pointer(&a), unsafe.Pointer(&b)
	switch unsafe.Sizeof(a) {
	case 1:
		*(*uint8)(p) ^= *(*uint8)(q)
	case 2:
		*(*uint16)(p) ^= *(*uint16)(q)
	case 4:
		*(*uint32)(p) ^= *(*uint32)(q)
	case 8:
		*(*uint64)(p) ^= *(*uint64)(q)
	}
	return a
}

// onesBits returns a value of T with every bit set.
func onesBits[T Lanes]() T {
	var a T
	p := unsafe.Pointer(&a)
	switch unsafe.Sizeof(a) {
	case 1:
		*(*uint8)(p) = ^uint8(0)
	case 2:
		*(*uint16)(p) = ^uint16(0)
	case 4:
		*(*uint32)(p) = ^uint32(0)
	case 8:
		*(*uint64)(p) = ^uint64(0)
	}
	return a
}
