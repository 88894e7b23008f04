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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func iota32(n int) []int32 {
	data := make([]int32, n)
	for i := range data {
		data[i] = int32(i + 1)
	}
	return data
}

// fixed returns a Vec4 iterator over 1..13 with a head of 3, so the prefix
// is [1 2 3], the body holds two vectors and the postfix is [12 13].
func fixed() *Iter[int32, Vec4[int32]] {
	return split[int32, Vec4[int32]](iota32(13), 3).Iter()
}

func TestIterNext(t *testing.T) {
	it := fixed()
	if diff := cmp.Diff([]int32{1, 2, 3}, it.Prefix()); diff != "" {
		t.Errorf("Prefix (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int32{12, 13}, it.Postfix()); diff != "" {
		t.Errorf("Postfix (-want +got):\n%s", diff)
	}

	want := []Vec4[int32]{{4, 5, 6, 7}, {8, 9, 10, 11}}
	for i, w := range want {
		if got := it.Len(); got != len(want)-i {
			t.Errorf("Len() before vector %d = %d, want %d", i, got, len(want)-i)
		}
		v, ok := it.Next()
		if !ok || v != w {
			t.Errorf("Next() #%d = (%v, %v), want (%v, true)", i, v, ok, w)
		}
	}
	if it.Len() != 0 {
		t.Errorf("Len() after exhaustion = %d, want 0", it.Len())
	}
	if _, ok := it.Next(); ok {
		t.Error("Next() after exhaustion reported true")
	}
}

func TestIterSkip(t *testing.T) {
	data := iota32(40)
	tests := []struct {
		name    string
		skip    int
		wantLen int
		first   int32 // first lane of the following Next, 0 if exhausted
	}{
		{name: "zero", skip: 0, wantLen: 10, first: 1},
		{name: "negative", skip: -3, wantLen: 10, first: 1},
		{name: "some", skip: 4, wantLen: 6, first: 17},
		{name: "all", skip: 10, wantLen: 0},
		{name: "past the end", skip: 1000, wantLen: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := NewPartitionUnaligned[Vec4[int32]](data).Iter()
			it.Skip(tt.skip)
			if it.Len() != tt.wantLen {
				t.Errorf("Len() after Skip(%d) = %d, want %d", tt.skip, it.Len(), tt.wantLen)
			}
			v, ok := it.Next()
			if ok != (tt.first != 0) || v[0] != tt.first {
				t.Errorf("Next() after Skip(%d) = (%v, %v), want first lane %d", tt.skip, v, ok, tt.first)
			}
		})
	}
}

func TestIterNth(t *testing.T) {
	data := iota32(32)
	it := NewPartitionUnaligned[Vec8[int32]](data).Iter()

	v, ok := it.Nth(0)
	if !ok || v[0] != 1 {
		t.Errorf("Nth(0) = (%v, %v), want first lane 1", v, ok)
	}
	v, ok = it.Nth(1)
	if !ok || v[0] != 17 {
		t.Errorf("Nth(1) = (%v, %v), want first lane 17", v, ok)
	}
	if it.Len() != 1 {
		t.Errorf("Len() after Nth(0), Nth(1) = %d, want 1", it.Len())
	}
	if _, ok := it.Nth(5); ok {
		t.Error("Nth(5) past the end reported true")
	}
	if it.Len() != 0 {
		t.Errorf("Len() after Nth past the end = %d, want 0", it.Len())
	}
}

func TestIterAll(t *testing.T) {
	data := iota32(100)
	p := NewPartition[Vec8[int32]](data)

	var got []int32
	buf := make([]int32, 8)
	for v := range p.Iter().All() {
		v.Store(buf)
		got = append(got, buf...)
	}
	if diff := cmp.Diff(p.Body(), got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("All() (-body +got):\n%s", diff)
	}

	// Breaking out leaves the rest for Next.
	it := p.Iter()
	for range it.All() {
		break
	}
	if it.Len() != p.NumVectors()-1 {
		t.Errorf("Len() after one ranged vector = %d, want %d", it.Len(), p.NumVectors()-1)
	}
}

func TestIterRestart(t *testing.T) {
	p := NewPartition[Vec4[int32]](iota32(50))
	first := p.Iter()
	for range first.All() {
	}
	if second := p.Iter(); second.Len() != p.NumVectors() {
		t.Errorf("fresh Iter().Len() = %d, want %d", second.Len(), p.NumVectors())
	}
}

func TestPaddedIter(t *testing.T) {
	pit := fixed().Padded(-1)
	if pit.Pad() != -1 {
		t.Errorf("Pad() = %d, want -1", pit.Pad())
	}

	want := []Vec4[int32]{
		{1, 2, 3, -1},
		{4, 5, 6, 7},
		{8, 9, 10, 11},
		{12, 13, -1, -1},
	}
	for i, w := range want {
		if got := pit.Len(); got != len(want)-i {
			t.Errorf("Len() before vector %d = %d, want %d", i, got, len(want)-i)
		}
		v, ok := pit.Next()
		if !ok || v != w {
			t.Errorf("Next() #%d = (%v, %v), want (%v, true)", i, v, ok, w)
		}
	}
	if pit.Len() != 0 {
		t.Errorf("Len() after exhaustion = %d, want 0", pit.Len())
	}
	if _, ok := pit.Next(); ok {
		t.Error("Next() after exhaustion reported true")
	}
}

func TestPaddedIterShapes(t *testing.T) {
	tests := []struct {
		name    string
		n, head int
		want    int
	}{
		{name: "empty", n: 0, want: 0},
		{name: "prefix only", n: 3, want: 1},
		{name: "body only", n: 8, want: 2},
		{name: "body and postfix", n: 9, want: 3},
		{name: "all three", n: 13, head: 3, want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pit := split[int32, Vec4[int32]](iota32(tt.n), tt.head).Iter().Padded(0)
			if pit.Len() != tt.want {
				t.Errorf("Len() = %d, want %d", pit.Len(), tt.want)
			}
			count := 0
			for range pit.All() {
				count++
			}
			if count != tt.want {
				t.Errorf("produced %d vectors, want %d", count, tt.want)
			}
		})
	}
}

func TestPaddedIterAllWidths(t *testing.T) {
	const pad = 99
	for n := range 70 {
		data := iota32(n)
		checkPadLanes[Vec1[int32]](t, data, pad)
		checkPadLanes[Vec4[int32]](t, data, pad)
		checkPadLanes[Vec16[int32]](t, data, pad)
		checkPadLanes[Vec64[int32]](t, data, pad)
	}
}

// checkPadLanes verifies that the padded vectors hold the input in order
// followed only by pad lanes at the remainders.
func checkPadLanes[V NumVector[int32, V]](t *testing.T, data []int32, pad int32) {
	t.Helper()
	p := NewPartition[V](data)
	lanes := p.Lanes()
	buf := make([]int32, lanes)

	var got []int32
	var pads int
	for v := range p.Iter().Padded(pad).All() {
		v.Store(buf)
		for _, x := range buf {
			if x == pad {
				pads++
				continue
			}
			got = append(got, x)
		}
	}
	if diff := cmp.Diff(data, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("len %d, width %d: unpadded lanes (-want +got):\n%s", len(data), lanes, diff)
	}
	wantPads := 0
	if r := len(p.Prefix()); r > 0 {
		wantPads += lanes - r
	}
	if r := len(p.Postfix()); r > 0 {
		wantPads += lanes - r
	}
	if pads != wantPads {
		t.Errorf("len %d, width %d: %d pad lanes, want %d", len(data), lanes, pads, wantPads)
	}
}

func TestPadRemainderStaysInBounds(t *testing.T) {
	// The lanes past the remainder must come from the pad, never from the
	// memory that follows it.
	backing := []int32{1, 2, 77, 77, 77, 77, 77, 77}
	v := padRemainder[int32, Vec8[int32]](backing[:2], -5)
	if want := (Vec8[int32]{1, 2, -5, -5, -5, -5, -5, -5}); v != want {
		t.Errorf("padRemainder = %v, want %v", v, want)
	}
}

func TestIterReductions(t *testing.T) {
	if got := fixed().Sum(); got != 91 {
		t.Errorf("Sum() = %d, want 91", got)
	}
	if got := split[int32, Vec4[int32]](iota32(10), 2).Iter().Product(); got != 3628800 {
		t.Errorf("Product() = %d, want 3628800", got)
	}
	if got, ok := fixed().Min(); !ok || got != 1 {
		t.Errorf("Min() = (%d, %v), want (1, true)", got, ok)
	}
	if got, ok := fixed().Max(); !ok || got != 13 {
		t.Errorf("Max() = (%d, %v), want (13, true)", got, ok)
	}
	if got, ok := AndIter(fixed()); !ok || got != 0 {
		t.Errorf("AndIter() = (%d, %v), want (0, true)", got, ok)
	}
	if got, ok := OrIter(fixed()); !ok || got != 15 {
		t.Errorf("OrIter() = (%d, %v), want (15, true)", got, ok)
	}
	if got, ok := XorIter(fixed()); !ok || got != 1 {
		t.Errorf("XorIter() = (%d, %v), want (1, true)", got, ok)
	}

	empty := NewIter[Vec4[int32]]([]int32{})
	if _, ok := empty.Min(); ok {
		t.Error("Min() of empty iterator reported true")
	}
	if _, ok := AndIter(NewIter[Vec4[int32]]([]int32{})); ok {
		t.Error("AndIter() of empty iterator reported true")
	}
}
