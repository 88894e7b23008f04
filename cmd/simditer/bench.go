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
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"slices"
	"strconv"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-simditer/simd"
)

// Environment variables that override the default --width and --len.
const (
	envWidth = "SIMDITER_WIDTH"
	envLen   = "SIMDITER_LEN"
)

var elementTypes = []string{"f32", "f64", "i8", "i16", "i32", "i64", "u8", "u16", "u32", "u64"}

type benchConfig struct {
	Type  string
	Op    string
	Len   int
	Width int
	Iters int
	Seed  uint64
}

func (c benchConfig) validate() error {
	if !lo.Contains(elementTypes, c.Type) {
		return fmt.Errorf("unknown type %q (want one of %v)", c.Type, elementTypes)
	}
	if !lo.Contains(numericOps, c.Op) && !lo.Contains(bitwiseOps, c.Op) {
		return fmt.Errorf("%w %q (want one of %v)", errUnknownOp, c.Op, slices.Concat(numericOps, bitwiseOps))
	}
	if !lo.Contains(widthList, c.Width) {
		return fmt.Errorf("unsupported width %d (want one of %v)", c.Width, widthList)
	}
	if c.Len < 0 {
		return fmt.Errorf("length must not be negative, got %d", c.Len)
	}
	if c.Iters < 1 {
		return fmt.Errorf("iterations must be positive, got %d", c.Iters)
	}
	return nil
}

// envInt returns the integer value of the environment variable name, or def
// when it is unset.
func envInt(name string, def int) (int, error) {
	val := os.Getenv(name)
	if val == "" {
		return def, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return def, fmt.Errorf("parse %s: %w", name, err)
	}
	return n, nil
}

func newBenchCmd(a *app) *cobra.Command {
	cfg := benchConfig{
		Type:  "f64",
		Op:    "sum",
		Len:   1 << 16,
		Width: simd.DefaultLanes,
		Iters: 20,
		Seed:  1,
	}
	width, widthErr := envInt(envWidth, cfg.Width)
	length, lenErr := envInt(envLen, cfg.Len)
	cfg.Width, cfg.Len = width, length

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Compare a naive scalar fold with the lane-parallel reduction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if widthErr != nil && !cmd.Flags().Changed("width") {
				return widthErr
			}
			if lenErr != nil && !cmd.Flags().Changed("len") {
				return lenErr
			}
			if err := cfg.validate(); err != nil {
				return err
			}
			a.logger.Debug("starting benchmark",
				"type", cfg.Type, "op", cfg.Op, "len", cfg.Len,
				"width", cfg.Width, "iters", cfg.Iters, "seed", cfg.Seed)

			rep, err := runBench(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			rep.write(cmd.OutOrStdout())
			if !rep.Match {
				return fmt.Errorf("result mismatch: naive %s, vector %s", rep.NaiveResult, rep.VectorResult)
			}
			a.logger.Info("benchmark finished", "speedup", fmt.Sprintf("%.2fx", rep.speedup()))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&cfg.Type, "type", cfg.Type, fmt.Sprintf("Element type, one of %v", elementTypes))
	f.StringVar(&cfg.Op, "op", cfg.Op, "Reduction: sum, product, min, max, and, or, xor")
	f.IntVar(&cfg.Len, "len", cfg.Len, "Number of elements (default from "+envLen+")")
	f.IntVar(&cfg.Width, "width", cfg.Width, "Lanes per vector, a power of two up to 64 (default from "+envWidth+")")
	f.IntVar(&cfg.Iters, "iters", cfg.Iters, "Timed iterations per implementation")
	f.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed for the input data")
	return cmd
}

// report is the outcome of one benchmark run.
type report struct {
	Config       benchConfig
	Naive        time.Duration // per iteration
	Vector       time.Duration // per iteration
	NaiveResult  string
	VectorResult string
	Match        bool
}

func (r report) speedup() float64 {
	if r.Vector <= 0 {
		return 0
	}
	return float64(r.Naive) / float64(r.Vector)
}

func (r report) write(w io.Writer) {
	c := r.Config
	fmt.Fprintf(w, "type=%s op=%s len=%d width=%d iters=%d\n", c.Type, c.Op, c.Len, c.Width, c.Iters)
	fmt.Fprintf(w, "naive   %12v/op  result=%s\n", r.Naive, r.NaiveResult)
	fmt.Fprintf(w, "vector  %12v/op  result=%s\n", r.Vector, r.VectorResult)
	fmt.Fprintf(w, "speedup %.2fx  match=%t\n", r.speedup(), r.Match)
}

func runBench(ctx context.Context, cfg benchConfig) (report, error) {
	r := rand.New(rand.NewPCG(cfg.Seed, uint64(cfg.Len)))
	switch cfg.Type {
	case "f32":
		return benchFloat(ctx, cfg, randomFloats[float32](r, cfg.Len))
	case "f64":
		return benchFloat(ctx, cfg, randomFloats[float64](r, cfg.Len))
	case "i8":
		return benchInt(ctx, cfg, randomInts[int8](r, cfg.Len))
	case "i16":
		return benchInt(ctx, cfg, randomInts[int16](r, cfg.Len))
	case "i32":
		return benchInt(ctx, cfg, randomInts[int32](r, cfg.Len))
	case "i64":
		return benchInt(ctx, cfg, randomInts[int64](r, cfg.Len))
	case "u8":
		return benchInt(ctx, cfg, randomInts[uint8](r, cfg.Len))
	case "u16":
		return benchInt(ctx, cfg, randomInts[uint16](r, cfg.Len))
	case "u32":
		return benchInt(ctx, cfg, randomInts[uint32](r, cfg.Len))
	case "u64":
		return benchInt(ctx, cfg, randomInts[uint64](r, cfg.Len))
	}
	return report{}, fmt.Errorf("unknown type %q", cfg.Type)
}

func benchFloat[T simd.Floats](ctx context.Context, cfg benchConfig, data []T) (report, error) {
	vec, err := floatReducerFor[T](cfg.Width, cfg.Op)
	if err != nil {
		return report{}, err
	}
	naive, err := naiveFloat[T](cfg.Op)
	if err != nil {
		return report{}, err
	}
	// Sum and product reassociate; min and max are exact.
	equal := func(a, b T) bool { return a == b }
	if cfg.Op == "sum" || cfg.Op == "product" {
		equal = func(a, b T) bool { return simd.ApproxEqual(a, b, simd.RelativeTolerance) }
	}
	return compare(ctx, cfg, data, naive, vec, equal)
}

func benchInt[T simd.Integers](ctx context.Context, cfg benchConfig, data []T) (report, error) {
	vec, err := intReducerFor[T](cfg.Width, cfg.Op)
	if err != nil {
		return report{}, err
	}
	naive, err := naiveInt[T](cfg.Op)
	if err != nil {
		return report{}, err
	}
	return compare(ctx, cfg, data, naive, vec, func(a, b T) bool { return a == b })
}

// compare times both reducers over data and checks that they agree.
func compare[T simd.Lanes](ctx context.Context, cfg benchConfig, data []T, naive, vec reducer[T], equal func(a, b T) bool) (report, error) {
	nv, nok, nd, err := measure(ctx, cfg.Iters, data, naive)
	if err != nil {
		return report{}, err
	}
	vv, vok, vd, err := measure(ctx, cfg.Iters, data, vec)
	if err != nil {
		return report{}, err
	}
	return report{
		Config:       cfg,
		Naive:        nd,
		Vector:       vd,
		NaiveResult:  formatResult(nv, nok),
		VectorResult: formatResult(vv, vok),
		Match:        nok == vok && (!nok || equal(nv, vv)),
	}, nil
}

// measure runs f iters times and returns its last result and the mean time
// per call. It stops early if ctx is canceled.
func measure[T simd.Lanes](ctx context.Context, iters int, data []T, f reducer[T]) (T, bool, time.Duration, error) {
	var (
		v  T
		ok bool
	)
	start := time.Now()
	for range iters {
		if err := ctx.Err(); err != nil {
			return v, ok, 0, err
		}
		v, ok = f(data)
	}
	return v, ok, time.Since(start) / time.Duration(iters), nil
}

func formatResult[T simd.Lanes](v T, ok bool) string {
	if !ok {
		return "none"
	}
	return fmt.Sprint(v)
}

// randomFloats returns values in [0.5, 1.5) so long products stay finite.
func randomFloats[T simd.Floats](r *rand.Rand, n int) []T {
	data := make([]T, n)
	for i := range data {
		data[i] = T(0.5 + r.Float64())
	}
	return data
}

func randomInts[T simd.Integers](r *rand.Rand, n int) []T {
	data := make([]T, n)
	for i := range data {
		data[i] = T(r.Uint64())
	}
	return data
}
