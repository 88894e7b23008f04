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

// Command vecgen generates the fixed-width vector types of the simd package.
//
// Usage:
//
//	vecgen -output vec_gen.go -widths 1,2,4,8,16,32,64
//
// Or via go:generate:
//
//	//go:generate go run ../cmd/vecgen -output vec_gen.go -widths 1,2,4,8,16,32,64
//
// Each width N produces a type VecN[T Lanes] [N]T implementing the Vector,
// NumVector and BitVector interfaces.
package main

import (
	"flag"
	"fmt"
	"os"
)

var (
	outputFile = flag.String("output", "vec_gen.go", "Output Go source file")
	packageOut = flag.String("pkg", "simd", "Output package name")
	widths     = flag.String("widths", "1,2,4,8,16,32,64", "Comma-separated lane widths (powers of two, at most 64)")
)

func main() {
	flag.Parse()

	widthList, err := parseWidths(*widths)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		flag.Usage()
		os.Exit(1)
	}

	gen := &Generator{
		OutputFile: *outputFile,
		Package:    *packageOut,
		Widths:     widthList,
	}

	if err := gen.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully generated %s (%d vector types)\n", *outputFile, len(widthList))
}
