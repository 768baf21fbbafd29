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
)

// Add returns r + other without reducing the result. If a cross term
// overflows 32 bits, both operands are reduced and the addition retried
// once; a second overflow is returned as ErrOverflow rather than wrapped
// or saturated.
func (r Rat) Add(other Rat) (Rat, error) {
	if res, ok := addParts(r, other); ok {
		return res, nil
	}
	res, ok := addParts(r.Reduce(), other.Reduce())
	if !ok {
		return Rat{}, fmt.Errorf("%v + %v: %w", r, other, ErrOverflow)
	}
	return res, nil
}

// Sub returns r - other, under the same overflow-then-reduce-and-retry
// policy as Add.
func (r Rat) Sub(other Rat) (Rat, error) {
	if res, ok := subParts(r, other); ok {
		return res, nil
	}
	res, ok := subParts(r.Reduce(), other.Reduce())
	if !ok {
		return Rat{}, fmt.Errorf("%v - %v: %w", r, other, ErrOverflow)
	}
	return res, nil
}

// Mul returns r * other without reducing the result. On overflow the
// operands are reduced, factors shared between each numerator and the
// opposite denominator are cancelled, and the multiply retried once.
func (r Rat) Mul(other Rat) (Rat, error) {
	if res, ok := mulParts(r, other); ok {
		return res, nil
	}
	res, ok := mulParts(crossReduce(r.Reduce(), other.Reduce()))
	if !ok {
		return Rat{}, fmt.Errorf("%v * %v: %w", r, other, ErrOverflow)
	}
	return res, nil
}

// Div returns r / other, computed as multiplication by the reciprocal.
// Dividing by the zero fraction is ErrDivisionByZero before any overflow
// consideration.
func (r Rat) Div(other Rat) (Rat, error) {
	if other.IsZero() {
		return Rat{}, fmt.Errorf("%v / %v: %w", r, other, ErrDivisionByZero)
	}
	if inv, ok := invert(other); ok {
		if res, ok := mulParts(r, inv); ok {
			return res, nil
		}
	}
	inv, ok := invert(other.Reduce())
	if !ok {
		return Rat{}, fmt.Errorf("%v / %v: %w", r, other, ErrOverflow)
	}
	res, ok := mulParts(crossReduce(r.Reduce(), inv))
	if !ok {
		return Rat{}, fmt.Errorf("%v / %v: %w", r, other, ErrOverflow)
	}
	return res, nil
}

// Neg returns -r. The only negation without a 32-bit representation is a
// minimum-value numerator that reduction cannot shrink; that is
// ErrOverflow.
func (r Rat) Neg() (Rat, error) {
	if num, overflowed := ONegS(r.Num); !overflowed {
		return Rat{Num: num, Den: r.Den}, nil
	}
	red := r.Reduce()
	num, overflowed := ONegS(red.Num)
	if overflowed {
		return Rat{}, fmt.Errorf("-(%v): %w", r, ErrOverflow)
	}
	return Rat{Num: num, Den: red.Den}, nil
}

// addParts computes a + b over a common denominator, reporting whether all
// three checked steps fit.
func addParts(a, b Rat) (Rat, bool) {
	var t OverflowTracker
	num := t.AddS(t.MulS(a.Num, b.Den), t.MulS(b.Num, a.Den))
	den := t.MulS(a.Den, b.Den)
	if t.Overflowed {
		return Rat{}, false
	}
	return Rat{Num: num, Den: den}, true
}

func subParts(a, b Rat) (Rat, bool) {
	var t OverflowTracker
	num := t.SubS(t.MulS(a.Num, b.Den), t.MulS(b.Num, a.Den))
	den := t.MulS(a.Den, b.Den)
	if t.Overflowed {
		return Rat{}, false
	}
	return Rat{Num: num, Den: den}, true
}

func mulParts(a, b Rat) (Rat, bool) {
	var t OverflowTracker
	num := t.MulS(a.Num, b.Num)
	den := t.MulS(a.Den, b.Den)
	if t.Overflowed {
		return Rat{}, false
	}
	return Rat{Num: num, Den: den}, true
}

// crossReduce cancels factors shared between each numerator and the other
// value's denominator. For reduced inputs this reproduces the lowest-terms
// product, the strongest preparation a retried multiply can get.
func crossReduce(a, b Rat) (Rat, Rat) {
	if g := gcd(magnitude(a.Num), uint32(b.Den)); g > 1 {
		a.Num /= int32(g)
		b.Den /= int32(g)
	}
	if g := gcd(magnitude(b.Num), uint32(a.Den)); g > 1 {
		b.Num /= int32(g)
		a.Den /= int32(g)
	}
	return a, b
}

// invert flips num/den keeping the denominator positive. It fails only
// for a minimum-value numerator, whose magnitude cannot serve as a
// denominator. The receiver must be nonzero.
func invert(r Rat) (Rat, bool) {
	if r.Num < 0 {
		den, overflowed := ONegS(r.Num)
		if overflowed {
			return Rat{}, false
		}
		return Rat{Num: -r.Den, Den: den}, true
	}
	return Rat{Num: r.Den, Den: r.Num}, true
}
