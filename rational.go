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

// Package rational implements fixed-width rational numbers: an int32
// numerator and denominator packed into 64 bits, with overflow-checked
// arithmetic, deferred reduction to lowest terms, a total order, and a
// Stern-Brocot search for the simplest fraction strictly between two
// values.
//
// Every operation is a pure function over immutable values. Nothing here
// wraps, saturates, or rounds: an exact result that does not fit 32 bits
// comes back as ErrOverflow.
package rational

import (
	"errors"
	"fmt"
)

// Error kinds returned by this package. Operations wrap them with context,
// so match with errors.Is rather than equality.
var (
	// ErrOverflow reports that an exact result cannot be represented in
	// 32 bits, even after reducing the operands and retrying.
	ErrOverflow = errors.New("overflow of 32-bit rational")

	// ErrDivisionByZero reports division by the zero fraction.
	ErrDivisionByZero = errors.New("rational division by zero")

	// ErrInvalidInput reports malformed text, a zero denominator supplied
	// directly, or an empty Intermediate interval.
	ErrInvalidInput = errors.New("invalid rational input")

	// ErrSearchDepthExceeded reports that Intermediate ran out of mediant
	// steps before its bounds separated.
	ErrSearchDepthExceeded = errors.New("intermediate search too deep")
)

// A Rat is a rational number with 32-bit numerator and denominator.
//
// The denominator of every valid Rat is positive; the sign lives in the
// numerator. A Rat is not required to be in lowest terms: arithmetic keeps
// whatever common factors a result is born with, and Reduce pays the gcd
// cost only when asked, or internally when retrying an operation that
// would otherwise overflow. Equal compares values, not representations,
// so 1/2 and 2/4 are equal.
//
// The zero value of Rat is not a number. It is the NoBound sentinel
// accepted by Intermediate, and is rejected everywhere a value is
// expected.
type Rat struct {
	Num int32
	Den int32
}

// NoBound marks one side of an Intermediate interval as unbounded.
var NoBound = Rat{}

// FromInt32 returns n as a fraction over 1.
//
// There is deliberately no int64 variant: a wider integer can exceed the
// numerator width, so callers holding one must narrow explicitly.
func FromInt32(n int32) Rat {
	return Rat{Num: n, Den: 1}
}

// MakeRat builds num/den with the sign normalized into the numerator. The
// result is not reduced. A zero denominator is ErrInvalidInput; a
// normalization that would negate the minimum int32 is ErrOverflow.
func MakeRat(num, den int32) (Rat, error) {
	if den == 0 {
		return Rat{}, fmt.Errorf("rational %d/%d: %w", num, den, ErrInvalidInput)
	}
	if den < 0 {
		n, numOver := ONegS(num)
		d, denOver := ONegS(den)
		if numOver || denOver {
			return Rat{}, fmt.Errorf("rational %d/%d: %w", num, den, ErrOverflow)
		}
		num, den = n, d
	}
	return Rat{Num: num, Den: den}, nil
}

// IsBound reports whether r is a bound rather than the NoBound sentinel.
func (r Rat) IsBound() bool {
	return r != NoBound
}

// IsValid reports whether r satisfies the representation invariant.
// Values built by this package are always valid; the check exists for
// values arriving from outside, such as decoded bytes.
func (r Rat) IsValid() bool {
	return r.Den > 0
}

// IsZero reports whether r equals 0.
func (r Rat) IsZero() bool {
	return r.Num == 0
}

// Sign returns -1 if r < 0, 0 if r == 0, and 1 if r > 0.
func (r Rat) Sign() int {
	switch {
	case r.Num < 0:
		return -1
	case r.Num > 0:
		return 1
	}
	return 0
}
