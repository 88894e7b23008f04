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
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-simditer/simd"
)

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the detected SIMD level and the lane widths that fill one register",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.logger.Debug("detected target",
				"level", simd.CurrentName(),
				"width_bytes", simd.CurrentWidth(),
				"no_simd_env", simd.NoSimdEnv())
			return printInfo(cmd.OutOrStdout())
		},
	}
}

func printInfo(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "level:         %s\nregister:      %d bytes\ndefault lanes: %d\nmax lanes:     %d\n",
		simd.CurrentName(), simd.CurrentWidth(), simd.DefaultLanes, simd.MaxLanes); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "native lanes:"); err != nil {
		return err
	}
	for _, row := range nativeLanes() {
		if _, err := fmt.Fprintf(w, "  %-4s %d\n", row.name, row.lanes); err != nil {
			return err
		}
	}
	return nil
}

type laneRow struct {
	name  string
	lanes int
}

func nativeLanes() []laneRow {
	return []laneRow{
		{"f32", simd.NativeLanes[float32]()},
		{"f64", simd.NativeLanes[float64]()},
		{"i8", simd.NativeLanes[int8]()},
		{"i16", simd.NativeLanes[int16]()},
		{"i32", simd.NativeLanes[int32]()},
		{"i64", simd.NativeLanes[int64]()},
	}
}
