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

package rational

import (
	"fmt"
	"math"
)

// DefaultMaxDepth bounds the number of mediant steps Intermediate takes
// before giving up. Denominators grow Fibonacci-fast on alternating
// descents and run out of 32 bits within about 90 steps; the budget
// matters for the slow linear walks along integer runs, and 1<<16 of
// those stay well under a millisecond.
const DefaultMaxDepth = 1 << 16

// Intermediate finds the fraction with the smallest denominator strictly
// between lo and hi, by descending the Stern-Brocot tree along repeated
// mediants. The result is always in lowest terms; that is a property of
// the tree, not an extra reduction.
//
// Either bound may be NoBound, which opens that side of the interval.
// When both bounds are present lo must be strictly below hi, otherwise
// ErrInvalidInput. A walk that steps outside 32-bit components reports
// ErrOverflow, and one that exhausts DefaultMaxDepth mediant steps
// reports ErrSearchDepthExceeded.
func Intermediate(lo, hi Rat) (Rat, error) {
	return IntermediateDepth(lo, hi, DefaultMaxDepth)
}

// IntermediateDepth is Intermediate with an explicit mediant-step budget.
func IntermediateDepth(lo, hi Rat, maxDepth uint64) (Rat, error) {
	if (lo.IsBound() && !lo.IsValid()) || (hi.IsBound() && !hi.IsValid()) {
		return Rat{}, fmt.Errorf("intermediate bounds %v, %v: %w", lo, hi, ErrInvalidInput)
	}
	if lo.IsBound() && hi.IsBound() && lo.Cmp(hi) >= 0 {
		return Rat{}, fmt.Errorf("intermediate bounds %v >= %v: %w", lo, hi, ErrInvalidInput)
	}

	// The tree covering all rationals is bracketed by the formal
	// extremes -1/0 and 1/0. An unbounded side simply keeps its extreme
	// forever. The extremes have no mediant of their own, so the walk
	// starts at the root fraction 0/1.
	ln, ld := int64(-1), int64(0)
	rn, rd := int64(1), int64(0)
	mn, md := int64(0), int64(1)

	lon, lod := int64(lo.Num), int64(lo.Den)
	hin, hid := int64(hi.Num), int64(hi.Den)

	for depth := uint64(0); depth < maxDepth; depth++ {
		switch {
		case lo.IsBound() && mn*lod <= lon*md:
			// mediant <= lo: descend right
			ln, ld = mn, md
		case hi.IsBound() && mn*hid >= hin*md:
			// mediant >= hi: descend left
			rn, rd = mn, md
		default:
			return Rat{Num: int32(mn), Den: int32(md)}, nil
		}
		mn, md = ln+rn, ld+rd
		if mn < math.MinInt32 || mn > math.MaxInt32 || md > math.MaxInt32 {
			// components only grow along a descent, so no later
			// mediant can fit either
			return Rat{}, fmt.Errorf("intermediate(%v, %v): %w", lo, hi, ErrOverflow)
		}
	}
	return Rat{}, fmt.Errorf("intermediate(%v, %v) spent %d mediant steps: %w", lo, hi, maxDepth, ErrSearchDepthExceeded)
}
