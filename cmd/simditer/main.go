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

// Command simditer reports the SIMD capabilities of the running CPU and
// benchmarks the lane-parallel reductions of the simd package against a
// sequential scalar fold.
//
// Usage:
//
//	simditer info
//	simditer bench --type i32 --op xor --len 1000000 --width 16
//
// The bench defaults for --width and --len can be set with SIMDITER_WIDTH
// and SIMDITER_LEN.
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
