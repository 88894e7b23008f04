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
	"bytes"
	"fmt"
	"math/bits"
	"os"
	"slices"
	"strconv"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"
)

// maxWidth matches the 64-bit lane mask of the simd package.
const maxWidth = 64

// Width describes one generated vector type: the type name and its lane
// count, as used by vecTemplate.
type Width struct {
	Name string // "Vec8"
	N    int    // 8
}

// Generator renders vecTemplate for a set of lane widths.
type Generator struct {
	OutputFile string // Output Go source file
	Package    string // Output package name
	Widths     []int  // Lane widths, sorted and deduplicated
}

// Run renders the template and writes the formatted source to OutputFile.
func (g *Generator) Run() error {
	src, err := g.Render()
	if err != nil {
		return err
	}
	if err := os.WriteFile(g.OutputFile, src, 0644); err != nil {
		return fmt.Errorf("write %s: %w", g.OutputFile, err)
	}
	return nil
}

// Render returns the formatted generated source.
func (g *Generator) Render() ([]byte, error) {
	if g.Package == "" {
		return nil, fmt.Errorf("package name is required")
	}
	if len(g.Widths) == 0 {
		return nil, fmt.Errorf("no widths specified")
	}

	tmpl, err := template.New("vec").Parse(vecTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse template: %w", err)
	}

	data := struct {
		Package string
		Widths  []Width
	}{Package: g.Package}
	for _, n := range g.Widths {
		data.Widths = append(data.Widths, Width{Name: "Vec" + strconv.Itoa(n), N: n})
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}

	formatted, err := imports.Process(g.OutputFile, buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("format generated code: %w", err)
	}
	return formatted, nil
}

// parseWidths parses a comma-separated width list. Widths must be powers of
// two in [1, maxWidth] so aligned partitions stay reachable.
func parseWidths(s string) ([]int, error) {
	var result []int
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid width %q: %w", p, err)
		}
		if n < 1 || n > maxWidth || bits.OnesCount(uint(n)) != 1 {
			return nil, fmt.Errorf("invalid width %d: must be a power of two in [1, %d]", n, maxWidth)
		}
		result = append(result, n)
	}
	if len(result) == 0 {
		return nil, fmt.Errorf("no valid widths specified")
	}
	slices.Sort(result)
	return slices.Compact(result), nil
}
