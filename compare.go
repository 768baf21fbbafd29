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

// Cmp compares two fractions by widened cross-multiplication, returning
// -1 if r < other, 0 if they are equal, and 1 if r > other. With 32-bit
// components the cross products fit comfortably in 64 bits, so the order
// is total and comparison never fails.
func (r Rat) Cmp(other Rat) int {
	left := int64(r.Num) * int64(other.Den)
	right := int64(other.Num) * int64(r.Den)
	switch {
	case left < right:
		return -1
	case left > right:
		return 1
	}
	return 0
}

// Equal reports cross-multiplication equality: 1/2 equals 2/4.
func (r Rat) Equal(other Rat) bool {
	return r.Cmp(other) == 0
}

// Less reports whether r is strictly below other, in the order Cmp
// induces. It is the comparison to hand to sort.Slice.
func (r Rat) Less(other Rat) bool {
	return r.Cmp(other) < 0
}
