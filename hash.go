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
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Hash returns a 64-bit digest of the value, not the representation: the
// reduced form is what gets hashed, so fractions that Equal each other
// always collide on purpose. 1/2 and 2/4 share a digest.
func (r Rat) Hash() uint64 {
	red := r.Reduce()
	var buf [RatBinarySize]byte
	binary.BigEndian.PutUint32(buf[:4], uint32(red.Num))
	binary.BigEndian.PutUint32(buf[4:], uint32(red.Den))
	return xxhash.Sum64(buf[:])
}
