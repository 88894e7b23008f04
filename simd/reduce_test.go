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
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/samber/lo"
)

// naive computes every reduction with a sequential left-to-right fold.
func naive[T Integers](data []T) results[T] {
	var r results[T]
	r.Sum = lo.Sum(data)
	r.Product = lo.Reduce(data, func(acc T, x T, _ int) T { return acc * x }, 1)
	if len(data) == 0 {
		return r
	}
	r.Min, r.MinOK = lo.Min(data), true
	r.Max, r.MaxOK = lo.Max(data), true
	rest := data[1:]
	r.And, r.AndOK = lo.Reduce(rest, func(acc T, x T, _ int) T { return acc & x }, data[0]), true
	r.Or, r.OrOK = lo.Reduce(rest, func(acc T, x T, _ int) T { return acc | x }, data[0]), true
	r.Xor, r.XorOK = lo.Reduce(rest, func(acc T, x T, _ int) T { return acc ^ x }, data[0]), true
	return r
}

func TestLiteralScenarios(t *testing.T) {
	if got := Sum([]int32{1, 2, 3, 4, 5}); got != 15 {
		t.Errorf("Sum: got %v, want 15", got)
	}
	if got := Product([]int32{1, 2, 3, 4, 5}); got != 120 {
		t.Errorf("Product: got %v, want 120", got)
	}
	if got := Sum([]float64{1, 2, 3, 4, 5}); got != 15 {
		t.Errorf("Sum float64: got %v, want 15", got)
	}
	if got := Product([]float64{1, 2, 3, 4, 5}); got != 120 {
		t.Errorf("Product float64: got %v, want 120", got)
	}

	signed := []int{-1, 1, -2, 3, -7, 5}
	if got, ok := Min(signed); !ok || got != -7 {
		t.Errorf("Min: got (%v, %v), want (-7, true)", got, ok)
	}
	if got, ok := Max(signed); !ok || got != 5 {
		t.Errorf("Max: got (%v, %v), want (5, true)", got, ok)
	}

	if got, ok := ReduceAnd([]uint8{0b111, 0b110, 0b101}); !ok || got != 0b100 {
		t.Errorf("ReduceAnd: got (%b, %v), want (100, true)", got, ok)
	}
	if got, ok := ReduceOr([]uint8{0b000, 0b110, 0b100}); !ok || got != 0b110 {
		t.Errorf("ReduceOr: got (%b, %v), want (110, true)", got, ok)
	}
	if got, ok := ReduceXor([]uint8{0b111, 0b110, 0b101}); !ok || got != 0b100 {
		t.Errorf("ReduceXor: got (%b, %v), want (100, true)", got, ok)
	}
}

// TestLiteralScenariosAllWidths checks that the ragged groups of widths that
// do not divide the input length leave the results unchanged.
func TestLiteralScenariosAllWidths(t *testing.T) {
	sumData := []int16{1, 2, 3, 4, 5}
	signed := []int16{-1, 1, -2, 3, -7, 5}
	andData := []int16{0b111, 0b110, 0b101}
	orData := []int16{0b000, 0b110, 0b100}

	sums := reduceAllWidths(sumData)
	mins := reduceAllWidths(signed)
	ands := reduceAllWidths(andData)
	ors := reduceAllWidths(orData)

	for i, w := range widths {
		if sums[i].Sum != 15 || sums[i].Product != 120 {
			t.Errorf("width %d: sum/product = %d/%d, want 15/120", w, sums[i].Sum, sums[i].Product)
		}
		if mins[i].Min != -7 || mins[i].Max != 5 {
			t.Errorf("width %d: min/max = %d/%d, want -7/5", w, mins[i].Min, mins[i].Max)
		}
		if ands[i].And != 0b100 || ands[i].Xor != 0b100 {
			t.Errorf("width %d: and/xor = %b/%b, want 100/100", w, ands[i].And, ands[i].Xor)
		}
		if ors[i].Or != 0b110 {
			t.Errorf("width %d: or = %b, want 110", w, ors[i].Or)
		}
	}
}

func TestEmptyInput(t *testing.T) {
	var empty []int64
	if got := Sum(empty); got != 0 {
		t.Errorf("Sum(empty) = %v, want 0", got)
	}
	if got := Product(empty); got != 1 {
		t.Errorf("Product(empty) = %v, want 1", got)
	}
	if _, ok := Min(empty); ok {
		t.Error("Min(empty) reported a value")
	}
	if _, ok := Max(empty); ok {
		t.Error("Max(empty) reported a value")
	}
	if _, ok := ReduceAnd(empty); ok {
		t.Error("ReduceAnd(empty) reported a value")
	}
	if _, ok := ReduceOr(empty); ok {
		t.Error("ReduceOr(empty) reported a value")
	}
	if _, ok := ReduceXor(empty); ok {
		t.Error("ReduceXor(empty) reported a value")
	}

	if got := Sum([]float32{}); got != 0 {
		t.Errorf("Sum(empty float32) = %v, want 0", got)
	}
	if got := Product([]float64(nil)); got != 1 {
		t.Errorf("Product(nil float64) = %v, want 1", got)
	}
	if _, ok := Min([]float64{}); ok {
		t.Error("Min(empty float64) reported a value")
	}
}

func testIntEquivalence[T Integers](t *testing.T) {
	r := newRand(t)
	for n := 0; n <= 150; n++ {
		data := randomInts[T](r, n)
		want := naive(data)
		for i, got := range reduceAllWidths(data) {
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("len %d, width %d: mismatch (-naive +vector):\n%s", n, widths[i], diff)
			}
		}
	}
}

func TestIntEquivalence(t *testing.T) {
	t.Run("int8", testIntEquivalence[int8])
	t.Run("int16", testIntEquivalence[int16])
	t.Run("int32", testIntEquivalence[int32])
	t.Run("int64", testIntEquivalence[int64])
	t.Run("int", testIntEquivalence[int])
	t.Run("uint8", testIntEquivalence[uint8])
	t.Run("uint16", testIntEquivalence[uint16])
	t.Run("uint32", testIntEquivalence[uint32])
	t.Run("uint64", testIntEquivalence[uint64])
	t.Run("uint", testIntEquivalence[uint])
	t.Run("uintptr", testIntEquivalence[uintptr])
}

type celsius int32

func TestNamedElementType(t *testing.T) {
	data := []celsius{12, -4, 30, 7, 0, -15, 22}
	if got, ok := Min(data); !ok || got != -15 {
		t.Errorf("Min: got (%v, %v), want (-15, true)", got, ok)
	}
	if got, ok := Max(data); !ok || got != 30 {
		t.Errorf("Max: got (%v, %v), want (30, true)", got, ok)
	}
	if got := SumN[Vec4[celsius]](data); got != 52 {
		t.Errorf("Sum: got %v, want 52", got)
	}
}

func testFloatEquivalence[T Floats](t *testing.T) {
	r := newRand(t)
	for n := 0; n <= 100; n++ {
		data := randomFloats[T](r, n)

		wantSum := lo.Sum(data)
		wantProduct := lo.Reduce(data, func(acc T, x T, _ int) T { return acc * x }, 1)
		wantMin, wantMax := lo.Min(data), lo.Max(data)

		check := func(name string, sum, product, minV, maxV T, minOK, maxOK bool) {
			t.Helper()
			if !ApproxEqual(wantSum, sum, RelativeTolerance) {
				t.Errorf("len %d, %s: Sum = %v, want %v", n, name, sum, wantSum)
			}
			if !ApproxEqual(wantProduct, product, RelativeTolerance) {
				t.Errorf("len %d, %s: Product = %v, want %v", n, name, product, wantProduct)
			}
			if minOK != (n > 0) || maxOK != (n > 0) {
				t.Errorf("len %d, %s: presence = (%v, %v), want %v", n, name, minOK, maxOK, n > 0)
			}
			if n > 0 && (minV != wantMin || maxV != wantMax) {
				t.Errorf("len %d, %s: Min/Max = %v/%v, want %v/%v", n, name, minV, maxV, wantMin, wantMax)
			}
		}

		minV, minOK := MinN[Vec4[T]](data)
		maxV, maxOK := MaxN[Vec4[T]](data)
		check("Vec4", SumN[Vec4[T]](data), ProductN[Vec4[T]](data), minV, maxV, minOK, maxOK)

		minV, minOK = MinN[Vec8[T]](data)
		maxV, maxOK = MaxN[Vec8[T]](data)
		check("Vec8", SumN[Vec8[T]](data), ProductN[Vec8[T]](data), minV, maxV, minOK, maxOK)

		minV, minOK = Min(data)
		maxV, maxOK = Max(data)
		check("Vec16", Sum(data), Product(data), minV, maxV, minOK, maxOK)

		minV, minOK = MinN[Vec64[T]](data)
		maxV, maxOK = MaxN[Vec64[T]](data)
		check("Vec64", SumN[Vec64[T]](data), ProductN[Vec64[T]](data), minV, maxV, minOK, maxOK)
	}
}

func TestFloatEquivalence(t *testing.T) {
	t.Run("float32", testFloatEquivalence[float32])
	t.Run("float64", testFloatEquivalence[float64])
}

func TestFloatInfinitePads(t *testing.T) {
	// Inputs containing the pad values themselves must still reduce correctly.
	inf := float32(MinIdentity[float32]())
	data := []float32{inf, 3, -inf, 2, 1}
	if got, ok := MinN[Vec4[float32]](data); !ok || got != -inf {
		t.Errorf("Min: got (%v, %v), want (-Inf, true)", got, ok)
	}
	if got, ok := MaxN[Vec4[float32]](data); !ok || got != inf {
		t.Errorf("Max: got (%v, %v), want (+Inf, true)", got, ok)
	}
	if got, ok := MinN[Vec8[float32]]([]float32{inf}); !ok || got != inf {
		t.Errorf("Min of +Inf: got (%v, %v), want (+Inf, true)", got, ok)
	}
}

func TestExtremeIntegers(t *testing.T) {
	data := []int8{127, -128, 127, -128, 0}
	if got, ok := MinN[Vec8[int8]](data); !ok || got != -128 {
		t.Errorf("Min: got (%v, %v), want (-128, true)", got, ok)
	}
	if got, ok := MaxN[Vec8[int8]](data); !ok || got != 127 {
		t.Errorf("Max: got (%v, %v), want (127, true)", got, ok)
	}
	if got, ok := MinN[Vec2[uint16]]([]uint16{65535, 65535, 65535}); !ok || got != 65535 {
		t.Errorf("Min of max values: got (%v, %v), want (65535, true)", got, ok)
	}
	if got, ok := ReduceAndN[Vec4[uint32]]([]uint32{^uint32(0)}); !ok || got != ^uint32(0) {
		t.Errorf("ReduceAnd of all-ones: got (%x, %v), want (ffffffff, true)", got, ok)
	}
}

func FuzzInt8Reductions(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0b111, 0b110, 0b101})
	f.Add([]byte{0x80, 0x7f, 0xff, 0x00, 0x01, 0x55, 0xaa, 0x33, 0xcc})
	f.Fuzz(func(t *testing.T, raw []byte) {
		data := make([]int8, len(raw))
		for i, b := range raw {
			data[i] = int8(b)
		}
		want := naive(data)
		for i, got := range reduceAllWidths(data) {
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("width %d: mismatch (-naive +vector):\n%s", widths[i], diff)
			}
		}
	})
}

func FuzzUint64Reductions(f *testing.F) {
	f.Add(uint64(1), 0)
	f.Add(uint64(0xdeadbeef), 37)
	f.Add(^uint64(0), 129)
	f.Fuzz(func(t *testing.T, seed uint64, n int) {
		n = min(max(n, 0), 512)
		data := make([]uint64, n)
		x := seed
		for i := range data {
			x = x*6364136223846793005 + 1442695040888963407
			data[i] = x
		}
		want := naive(data)
		for i, got := range reduceAllWidths(data) {
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("width %d: mismatch (-naive +vector):\n%s", widths[i], diff)
			}
		}
	})
}

func BenchmarkSum(b *testing.B) {
	sizes := []int{16, 256, 4096, 1 << 16}

	for _, size := range sizes {
		data := randomFloats[float64](newRand(b), size)

		b.Run(fmt.Sprintf("naive/size_%d", size), func(b *testing.B) {
			b.ReportAllocs()
			var result float64
			for i := 0; i < b.N; i++ {
				result = lo.Sum(data)
			}
			_ = result
		})

		b.Run(fmt.Sprintf("vec16/size_%d", size), func(b *testing.B) {
			b.ReportAllocs()
			var result float64
			for i := 0; i < b.N; i++ {
				result = Sum(data)
			}
			_ = result
		})

		b.Run(fmt.Sprintf("vec4/size_%d", size), func(b *testing.B) {
			b.ReportAllocs()
			var result float64
			for i := 0; i < b.N; i++ {
				result = SumN[Vec4[float64]](data)
			}
			_ = result
		})
	}
}

func BenchmarkMin(b *testing.B) {
	data := randomInts[int32](newRand(b), 1<<16)
	b.ReportAllocs()
	var result int32
	for i := 0; i < b.N; i++ {
		result, _ = Min(data)
	}
	_ = result
}
