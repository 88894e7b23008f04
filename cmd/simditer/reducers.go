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

package main

import (
	"errors"
	"fmt"

	"github.com/samber/lo"

	"github.com/ajroetker/go-simditer/simd"
)

// reducer folds a slice to one scalar. The bool is false when the result is
// absent (min, max and the bitwise reductions of an empty slice).
type reducer[T simd.Lanes] func(data []T) (T, bool)

var (
	numericOps = []string{"sum", "product", "min", "max"}
	bitwiseOps = []string{"and", "or", "xor"}
	widthList  = []int{1, 2, 4, 8, 16, 32, 64}

	errUnknownOp = errors.New("unknown op")
)

func numReducer[V simd.NumVector[T, V], T simd.Lanes](op string) (reducer[T], error) {
	switch op {
	case "sum":
		return func(data []T) (T, bool) { return simd.SumN[V](data), true }, nil
	case "product":
		return func(data []T) (T, bool) { return simd.ProductN[V](data), true }, nil
	case "min":
		return simd.MinN[V, T], nil
	case "max":
		return simd.MaxN[V, T], nil
	}
	return nil, fmt.Errorf("%w %q", errUnknownOp, op)
}

func intReducer[V simd.IntVector[T, V], T simd.Integers](op string) (reducer[T], error) {
	switch op {
	case "and":
		return simd.ReduceAndN[V, T], nil
	case "or":
		return simd.ReduceOrN[V, T], nil
	case "xor":
		return simd.ReduceXorN[V, T], nil
	}
	return numReducer[V, T](op)
}

// floatReducerFor picks the vector type for width. Bitwise ops are not
// defined for floating-point elements.
func floatReducerFor[T simd.Floats](width int, op string) (reducer[T], error) {
	if lo.Contains(bitwiseOps, op) {
		return nil, fmt.Errorf("op %q is not defined for floating-point elements", op)
	}
	switch width {
	case 1:
		return numReducer[simd.Vec1[T], T](op)
	case 2:
		return numReducer[simd.Vec2[T], T](op)
	case 4:
		return numReducer[simd.Vec4[T], T](op)
	case 8:
		return numReducer[simd.Vec8[T], T](op)
	case 16:
		return numReducer[simd.Vec16[T], T](op)
	case 32:
		return numReducer[simd.Vec32[T], T](op)
	case 64:
		return numReducer[simd.Vec64[T], T](op)
	}
	return nil, fmt.Errorf("unsupported width %d (want one of %v)", width, widthList)
}

func intReducerFor[T simd.Integers](width int, op string) (reducer[T], error) {
	switch width {
	case 1:
		return intReducer[simd.Vec1[T], T](op)
	case 2:
		return intReducer[simd.Vec2[T], T](op)
	case 4:
		return intReducer[simd.Vec4[T], T](op)
	case 8:
		return intReducer[simd.Vec8[T], T](op)
	case 16:
		return intReducer[simd.Vec16[T], T](op)
	case 32:
		return intReducer[simd.Vec32[T], T](op)
	case 64:
		return intReducer[simd.Vec64[T], T](op)
	}
	return nil, fmt.Errorf("unsupported width %d (want one of %v)", width, widthList)
}

// naiveNum is the sequential left-to-right reference for the numeric ops.
func naiveNum[T simd.Lanes](op string) (reducer[T], error) {
	switch op {
	case "sum":
		return func(data []T) (T, bool) { return lo.Sum(data), true }, nil
	case "product":
		return func(data []T) (T, bool) {
			return lo.Reduce(data, func(acc T, x T, _ int) T { return acc * x }, 1), true
		}, nil
	case "min":
		return func(data []T) (T, bool) { return lo.Min(data), len(data) > 0 }, nil
	case "max":
		return func(data []T) (T, bool) { return lo.Max(data), len(data) > 0 }, nil
	}
	return nil, fmt.Errorf("%w %q", errUnknownOp, op)
}

// naiveFloat is naiveNum with the sum and product accumulated in float64, so
// the reference stays accurate on long float32 inputs.
func naiveFloat[T simd.Floats](op string) (reducer[T], error) {
	switch op {
	case "sum":
		return func(data []T) (T, bool) {
			return T(lo.SumBy(data, func(x T) float64 { return float64(x) })), true
		}, nil
	case "product":
		return func(data []T) (T, bool) {
			return T(lo.Reduce(data, func(acc float64, x T, _ int) float64 { return acc * float64(x) }, 1)), true
		}, nil
	}
	return naiveNum[T](op)
}

// naiveInt extends naiveNum with the bitwise ops.
func naiveInt[T simd.Integers](op string) (reducer[T], error) {
	var combine func(a, b T) T
	switch op {
	case "and":
		combine = func(a, b T) T { return a & b }
	case "or":
		combine = func(a, b T) T { return a | b }
	case "xor":
		combine = func(a, b T) T { return a ^ b }
	default:
		return naiveNum[T](op)
	}
	return func(data []T) (T, bool) {
		if len(data) == 0 {
			return 0, false
		}
		return lo.Reduce(data[1:], func(acc T, x T, _ int) T { return combine(acc, x) }, data[0]), true
	}, nil
}
