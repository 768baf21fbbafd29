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
	"fmt"
	"strconv"
	"strings"
)

// RatBinarySize is the length of the binary encoding of a Rat: two
// big-endian 32-bit words, numerator first.
const RatBinarySize = 8

// ParseRat parses the "<numerator>/<denominator>" text form. Both parts
// are decimal int32s and the denominator is mandatory; its sign, if any,
// is normalized into the numerator. The parsed representation is kept as
// written, so "2/4" does not come back reduced.
func ParseRat(s string) (Rat, error) {
	numPart, denPart, found := strings.Cut(s, "/")
	if !found {
		return Rat{}, fmt.Errorf("rational %q: missing '/': %w", s, ErrInvalidInput)
	}
	num, err := strconv.ParseInt(numPart, 10, 32)
	if err != nil {
		return Rat{}, fmt.Errorf("rational %q: bad numerator: %w", s, ErrInvalidInput)
	}
	den, err := strconv.ParseInt(denPart, 10, 32)
	if err != nil {
		return Rat{}, fmt.Errorf("rational %q: bad denominator: %w", s, ErrInvalidInput)
	}
	return MakeRat(int32(num), int32(den))
}

// String renders the stored form: "3/6" stays "3/6" until the caller asks
// for Reduce().String().
func (r Rat) String() string {
	return fmt.Sprintf("%d/%d", r.Num, r.Den)
}

// MarshalBinary encodes r as RatBinarySize big-endian bytes, numerator
// word first. The stored representation is encoded as is.
func (r Rat) MarshalBinary() ([]byte, error) {
	buf := make([]byte, RatBinarySize)
	binary.BigEndian.PutUint32(buf[:4], uint32(r.Num))
	binary.BigEndian.PutUint32(buf[4:], uint32(r.Den))
	return buf, nil
}

// UnmarshalBinary decodes the MarshalBinary layout. A payload of the
// wrong length or one carrying a non-positive denominator is
// ErrInvalidInput.
func (r *Rat) UnmarshalBinary(data []byte) error {
	if len(data) != RatBinarySize {
		return fmt.Errorf("rational encoding is %d bytes, want %d: %w", len(data), RatBinarySize, ErrInvalidInput)
	}
	num := int32(binary.BigEndian.Uint32(data[:4]))
	den := int32(binary.BigEndian.Uint32(data[4:]))
	if den <= 0 {
		return fmt.Errorf("rational encoding has denominator %d: %w", den, ErrInvalidInput)
	}
	r.Num, r.Den = num, den
	return nil
}

// MarshalJSON renders the quoted text form.
func (r Rat) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(r.String())), nil
}

// UnmarshalJSON parses the quoted text form.
func (r *Rat) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("rational JSON %s: %w", data, ErrInvalidInput)
	}
	parsed, err := ParseRat(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
