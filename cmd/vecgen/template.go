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

// vecTemplate renders one fixed-width vector type per entry of Widths. Every
// type is an array of T so values stay on the stack and copy by value.
const vecTemplate = `// Code generated by vecgen. DO NOT EDIT.

package {{.Package}}
{{range .Widths}}
// {{.Name}} is a vector of {{.N}} lanes of T.
type {{.Name}}[T Lanes] [{{.N}}]T

// Lanes returns {{.N}}.
func ({{.Name}}[T]) Lanes() int { return {{.N}} }

// Load builds a {{.Name}} from the first {{.N}} elements of src.
func ({{.Name}}[T]) Load(src []T) {{.Name}}[T] {
	var v {{.Name}}[T]
	copy(v[:], src[:{{.N}}])
	return v
}

// Splat builds a {{.Name}} with every lane set to x.
func ({{.Name}}[T]) Splat(x T) {{.Name}}[T] {
	var v {{.Name}}[T]
	for i := range v {
		v[i] = x
	}
	return v
}

// Store writes the lanes to dst, truncated to len(dst).
func (v {{.Name}}[T]) Store(dst []T) {
	copy(dst, v[:])
}

// Lane returns lane i.
func (v {{.Name}}[T]) Lane(i int) T {
	return v[i]
}

func (v {{.Name}}[T]) Less(o {{.Name}}[T]) Mask {
	m := Mask{lanes: {{.N}}}
	for i := range v {
		if v[i] < o[i] {
			m = m.set(i)
		}
	}
	return m
}

func (v {{.Name}}[T]) Greater(o {{.Name}}[T]) Mask {
	m := Mask{lanes: {{.N}}}
	for i := range v {
		if v[i] > o[i] {
			m = m.set(i)
		}
	}
	return m
}

// Select keeps the lanes of v where m is set and takes the lanes of no elsewhere.
func (v {{.Name}}[T]) Select(m Mask, no {{.Name}}[T]) {{.Name}}[T] {
	for i := range v {
		if m.bits&(1<<uint(i)) == 0 {
			v[i] = no[i]
		}
	}
	return v
}

func (v {{.Name}}[T]) Add(o {{.Name}}[T]) {{.Name}}[T] {
	for i := range v {
		v[i] += o[i]
	}
	return v
}

func (v {{.Name}}[T]) Mul(o {{.Name}}[T]) {{.Name}}[T] {
	for i := range v {
		v[i] *= o[i]
	}
	return v
}

// Min returns the lane-wise minimum. A lane of v is kept only if it compares
// less than the lane of o.
func (v {{.Name}}[T]) Min(o {{.Name}}[T]) {{.Name}}[T] {
	for i := range v {
		if !(v[i] < o[i]) {
			v[i] = o[i]
		}
	}
	return v
}

// Max returns the lane-wise maximum. A lane of v is kept only if it compares
// greater than the lane of o.
func (v {{.Name}}[T]) Max(o {{.Name}}[T]) {{.Name}}[T] {
	for i := range v {
		if !(v[i] > o[i]) {
			v[i] = o[i]
		}
	}
	return v
}

func (v {{.Name}}[T]) And(o {{.Name}}[T]) {{.Name}}[T] {
	for i := range v {
		v[i] = andBits(v[i], o[i])
	}
	return v
}

func (v {{.Name}}[T]) Or(o {{.Name}}[T]) {{.Name}}[T] {
	for i := range v {
		v[i] = orBits(v[i], o[i])
	}
	return v
}

func (v {{.Name}}[T]) Xor(o {{.Name}}[T]) {{.Name}}[T] {
	for i := range v {
		v[i] = xorBits(v[i], o[i])
	}
	return v
}

// ReduceSum sums all lanes.
func (v {{.Name}}[T]) ReduceSum() T {
	r := v[0]
	for _, x := range v[1:] {
		r += x
	}
	return r
}

// ReduceProduct multiplies all lanes.
func (v {{.Name}}[T]) ReduceProduct() T {
	r := v[0]
	for _, x := range v[1:] {
		r *= x
	}
	return r
}

// ReduceMin returns the minimum value across all lanes.
func (v {{.Name}}[T]) ReduceMin() T {
	r := v[0]
	for _, x := range v[1:] {
		if x < r {
			r = x
		}
	}
	return r
}

// ReduceMax returns the maximum value across all lanes.
func (v {{.Name}}[T]) ReduceMax() T {
	r := v[0]
	for _, x := range v[1:] {
		if x > r {
			r = x
		}
	}
	return r
}

// ReduceAnd returns the bitwise AND of all lanes.
func (v {{.Name}}[T]) ReduceAnd() T {
	r := v[0]
	for _, x := range v[1:] {
		r = andBits(r, x)
	}
	return r
}

// ReduceOr returns the bitwise OR of all lanes.
func (v {{.Name}}[T]) ReduceOr() T {
	r := v[0]
	for _, x := range v[1:] {
		r = orBits(r, x)
	}
	return r
}

// ReduceXor returns the bitwise XOR of all lanes.
func (v {{.Name}}[T]) ReduceXor() T {
	r := v[0]
	for _, x := range v[1:] {
		r = xorBits(r, x)
	}
	return r
}
{{end}}`
