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
	"math/bits"
)

// Float64 returns the fraction as a float, with ordinary rounding.
func (r Rat) Float64() float64 {
	return float64(r.Num) / float64(r.Den)
}

// FromFloat64 converts the exact binary value of f. The float is split
// into mantissa and exponent, trailing mantissa zeros are stripped, and
// the result is mantissa*2^e or mantissa/2^-e. That form is already in
// lowest terms: an odd mantissa shares nothing with a power of two.
//
// Most decimal-looking floats are actually 52-bit-denominator binary
// fractions and fail here with ErrOverflow; see ApproxFloat64 for the
// forgiving conversion. NaN and infinities are ErrInvalidInput.
func FromFloat64(f float64) (Rat, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Rat{}, fmt.Errorf("float %v: %w", f, ErrInvalidInput)
	}
	if f == 0 {
		return Rat{Num: 0, Den: 1}, nil
	}

	frac, exp := math.Frexp(f)
	neg := false
	if frac < 0 {
		neg = true
		frac = -frac
	}
	mant := int64(frac * 0x1p53) // exact: [2^52, 2^53)
	exp -= 53
	tz := bits.TrailingZeros64(uint64(mant))
	mant >>= uint(tz)
	exp += tz

	if exp >= 0 {
		// an integer: mant * 2^exp
		limit := int64(math.MaxInt32)
		if neg {
			limit = -int64(math.MinInt32)
		}
		if exp > 31 || mant > limit>>uint(exp) {
			return Rat{}, fmt.Errorf("float %v: %w", f, ErrOverflow)
		}
		num := mant << uint(exp)
		if neg {
			num = -num
		}
		return Rat{Num: int32(num), Den: 1}, nil
	}

	// mant / 2^-exp, with both parts required to fit
	if exp < -30 || mant > math.MaxInt32 {
		return Rat{}, fmt.Errorf("float %v: %w", f, ErrOverflow)
	}
	num := mant
	if neg {
		num = -num
	}
	return Rat{Num: int32(num), Den: 1 << uint(-exp)}, nil
}

// ApproxFloat64 returns the best 32-bit rational approximation of f by
// walking the convergents of its continued fraction and keeping the last
// one whose terms fit. A float within rounding error of a small fraction
// lands exactly on it: 0.263157894737 comes back as 5/19. NaN and
// infinities are ErrInvalidInput, and |f| at or beyond 2^31 is
// ErrOverflow.
func ApproxFloat64(f float64) (Rat, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Rat{}, fmt.Errorf("float %v: %w", f, ErrInvalidInput)
	}
	neg := f < 0
	if neg {
		f = -f
	}

	// convergents h1/k1, with h2/k2 one step behind
	var h1, k1 = int64(1), int64(0)
	var h2, k2 = int64(0), int64(1)

	// A float64 runs out of continued-fraction terms long before 64
	// rounds; the bound only backstops pathological term sequences.
	x := f
	for i := 0; i < 64; i++ {
		a := math.Floor(x)
		if a > math.MaxInt32 {
			break
		}
		h := int64(a)*h1 + h2
		k := int64(a)*k1 + k2
		if h > math.MaxInt32 || k > math.MaxInt32 {
			break
		}
		h2, k2, h1, k1 = h1, k1, h, k
		rem := x - a
		if rem <= 0 {
			break
		}
		x = 1 / rem
	}
	if k1 == 0 {
		return Rat{}, fmt.Errorf("float %v: %w", f, ErrOverflow)
	}
	num := h1
	if neg {
		num = -num
	}
	return Rat{Num: int32(num), Den: int32(k1)}, nil
}
