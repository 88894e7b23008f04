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
	"math"
	"unsafe"
)

// RelativeTolerance is the relative error within which floating-point Sum
// and Product agree with a sequential left-to-right fold. The reductions
// reassociate additions and multiplications, so bit-exact agreement is not
// guaranteed. Integer, bitwise, Min and Max results are exact.
const RelativeTolerance = 1e-5

// ApproxEqual reports whether a and b agree within the relative tolerance
// rel, or within one machine epsilon of T when both are near zero.
func ApproxEqual[T Floats](a, b T, rel float64) bool {
	x, y := float64(a), float64(b)
	if x == y {
		return true
	}
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return false
	}
	diff := math.Abs(x - y)
	if diff <= machineEpsilon[T]() {
		return true
	}
	return diff <= rel*max(math.Abs(x), math.Abs(y))
}

func machineEpsilon[T Floats]() float64 {
	var zero T
	if unsafe.Sizeof(zero) == 4 {
		return 0x1p-23
	}
	return 0x1p-52
}
