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
	"golang.org/x/exp/constraints"
)

// OverflowTracker is used to track when an operation causes an overflow.
type OverflowTracker struct {
	Overflowed bool
}

// OAddS adds 2 signed values with overflow detection.
func OAddS[T constraints.Signed](a, b T) (res T, overflowed bool) {
	res = a + b
	overflowed = (b > 0 && res < a) || (b < 0 && res > a)
	return
}

// OSubS subtracts b from a with overflow detection.
func OSubS[T constraints.Signed](a, b T) (res T, overflowed bool) {
	res = a - b
	overflowed = (b < 0 && res < a) || (b > 0 && res > a)
	return
}

// OMulS multiplies 2 signed values with overflow detection.
func OMulS[T constraints.Signed](a, b T) (res T, overflowed bool) {
	if b == 0 {
		return 0, false
	}
	if b == -1 && a != 0 && -a == a {
		// the minimum value has no representable negation, which the
		// division check below cannot see
		return 0, true
	}
	c := a * b
	if c/b != a {
		return 0, true
	}
	return c, false
}

// ONegS negates a signed value with overflow detection. Only the minimum
// value of the width overflows.
func ONegS[T constraints.Signed](a T) (res T, overflowed bool) {
	if a != 0 && -a == a {
		return 0, true
	}
	return -a, false
}

// AddS adds 2 int32 values with overflow tracking.
func (t *OverflowTracker) AddS(a, b int32) int32 {
	res, overflowed := OAddS(a, b)
	if overflowed {
		t.Overflowed = true
	}
	return res
}

// SubS subtracts b from a with overflow tracking.
func (t *OverflowTracker) SubS(a, b int32) int32 {
	res, overflowed := OSubS(a, b)
	if overflowed {
		t.Overflowed = true
	}
	return res
}

// MulS multiplies 2 int32 values with overflow tracking.
func (t *OverflowTracker) MulS(a, b int32) int32 {
	res, overflowed := OMulS(a, b)
	if overflowed {
		t.Overflowed = true
	}
	return res
}

// NegS negates an int32 value with overflow tracking.
func (t *OverflowTracker) NegS(a int32) int32 {
	res, overflowed := ONegS(a)
	if overflowed {
		t.Overflowed = true
	}
	return res
}
