// Copyright (C) 2025 Algorand, Inc.
// This file is part of go-rational
//
// go-rational is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// go-rational is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with go-rational.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"github.com/spf13/cobra"

	"github.com/algorand/go-rational"
)

var betweenMaxDepth uint64

func init() {
	betweenCmd.Flags().Uint64Var(&betweenMaxDepth, "max-depth", rational.DefaultMaxDepth, "Give up after this many search steps")
}

var betweenCmd = &cobra.Command{
	Use:   "between LO HI",
	Short: "Find the simplest fraction strictly between two others",
	Long: `Find the simplest fraction strictly between LO and HI.

Either bound may be -inf or +inf to leave that side open. The result is
always in lowest terms.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		lo := parseBoundArg(args[0])
		hi := parseBoundArg(args[1])
		res, err := rational.IntermediateDepth(lo, hi, betweenMaxDepth)
		if err != nil {
			reportErrorf("%v", err)
		}
		reportInfoln(res)
	},
}
