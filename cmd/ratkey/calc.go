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
	"strconv"

	"github.com/spf13/cobra"

	"github.com/algorand/go-rational"
)

var calcCmd = &cobra.Command{
	Use:   "calc {add|sub|mul|div|cmp} X Y  |  calc {reduce|float} X  |  calc {approx|exact} F",
	Short: "Exact arithmetic on fractions",
	Long: `Exact arithmetic on fractions written as <numerator>/<denominator>.

Binary operations take two fractions; reduce and float take one.
approx finds the best fraction for a decimal number, exact requires the
number to be exactly representable.`,
	Args: cobra.RangeArgs(2, 3),
	Run: func(cmd *cobra.Command, args []string) {
		op := args[0]
		switch op {
		case "add", "sub", "mul", "div", "cmp":
			if len(args) != 3 {
				reportErrorf("%s takes two fractions", op)
			}
			x := parseRatArg(args[1])
			y := parseRatArg(args[2])
			if op == "cmp" {
				reportInfof("%d", x.Cmp(y))
				return
			}
			var res rational.Rat
			var err error
			switch op {
			case "add":
				res, err = x.Add(y)
			case "sub":
				res, err = x.Sub(y)
			case "mul":
				res, err = x.Mul(y)
			case "div":
				res, err = x.Div(y)
			}
			if err != nil {
				reportErrorf("%v", err)
			}
			reportInfoln(res)

		case "reduce":
			if len(args) != 2 {
				reportErrorf("reduce takes one fraction")
			}
			reportInfoln(parseRatArg(args[1]).Reduce())

		case "float":
			if len(args) != 2 {
				reportErrorf("float takes one fraction")
			}
			reportInfof("%s", strconv.FormatFloat(parseRatArg(args[1]).Float64(), 'g', -1, 64))

		case "approx", "exact":
			if len(args) != 2 {
				reportErrorf("%s takes one number", op)
			}
			f, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				reportErrorf("%s: %v", args[1], err)
			}
			var res rational.Rat
			if op == "approx" {
				res, err = rational.ApproxFloat64(f)
			} else {
				res, err = rational.FromFloat64(f)
			}
			if err != nil {
				reportErrorf("%v", err)
			}
			reportInfoln(res)

		default:
			reportErrorf("unknown operation %s", op)
		}
	},
}
