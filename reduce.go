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

// gcd returns the greatest common divisor of a and b by Euclid's
// algorithm, with gcd(0, b) = b and gcd(a, 0) = a.
func gcd(a, b uint32) uint32 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// magnitude returns |n| in uint32 space, which unlike int32 holds the
// magnitude of the minimum value.
func magnitude(n int32) uint32 {
	if n < 0 {
		return -uint32(n)
	}
	return uint32(n)
}

// Reduce returns r in lowest terms. Any zero reduces to 0/1.
//
// Reduction itself cannot overflow: quotients are bounded by their inputs,
// and the minimum numerator either loses a factor of two or comes back
// verbatim, so the intermediate magnitudes stay in uint32 space. The
// receiver must be a valid Rat.
func (r Rat) Reduce() Rat {
	if r.Num == 0 {
		return Rat{Num: 0, Den: 1}
	}
	num := magnitude(r.Num)
	den := uint32(r.Den)
	g := gcd(num, den)
	num /= g
	den /= g
	if r.Num < 0 {
		return Rat{Num: -int32(num), Den: int32(den)}
	}
	return Rat{Num: int32(num), Den: int32(den)}
}
