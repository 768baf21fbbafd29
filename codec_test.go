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
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/algorand/go-rational/test/partitiontest"
)

func TestParseRat(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	res, err := ParseRat("1/2")
	require.NoError(t, err)
	require.Equal(t, Rat{Num: 1, Den: 2}, res)

	res, err = ParseRat("-1/2")
	require.NoError(t, err)
	require.Equal(t, Rat{Num: -1, Den: 2}, res)

	// a negative denominator normalizes into the numerator
	res, err = ParseRat("1/-2")
	require.NoError(t, err)
	require.Equal(t, Rat{Num: -1, Den: 2}, res)

	res, err = ParseRat("-1/-2")
	require.NoError(t, err)
	require.Equal(t, Rat{Num: 1, Den: 2}, res)

	// representation is preserved, not reduced
	res, err = ParseRat("2/4")
	require.NoError(t, err)
	require.Equal(t, Rat{Num: 2, Den: 4}, res)

	res, err = ParseRat("2147483647/2147483647")
	require.NoError(t, err)
	require.Equal(t, Rat{Num: math.MaxInt32, Den: math.MaxInt32}, res)

	res, err = ParseRat("-2147483648/1")
	require.NoError(t, err)
	require.Equal(t, Rat{Num: math.MinInt32, Den: 1}, res)
}

func TestParseRatRejects(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	for _, s := range []string{
		"",
		"1",
		"/",
		"1/",
		"/2",
		"1/0",
		"0/0",
		"a/b",
		"1.5/2",
		"1 /2",
		"1/ 2",
		"1/2/3",
		"2147483648/1",  // numerator one past int32
		"1/2147483648",  // denominator one past int32
		"1/-2147483648", // normalization cannot negate the minimum
	} {
		_, err := ParseRat(s)
		require.Error(t, err, "input %q", s)
	}

	_, err := ParseRat("1/0")
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = ParseRat("2147483648/1")
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = ParseRat("-2147483648/-1")
	require.ErrorIs(t, err, ErrOverflow)
}

func TestStringRendering(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	require.Equal(t, "1/2", Rat{Num: 1, Den: 2}.String())
	require.Equal(t, "-1/2", Rat{Num: -1, Den: 2}.String())
	require.Equal(t, "0/1", Rat{Num: 0, Den: 1}.String())
	require.Equal(t, "3/6", Rat{Num: 3, Den: 6}.String())
	require.Equal(t, "1/2", Rat{Num: 3, Den: 6}.Reduce().String())
	require.Equal(t, "-2147483648/1", Rat{Num: math.MinInt32, Den: 1}.String())
}

func TestTextRoundTrip(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		r := Rat{
			Num: rapid.Int32().Draw(t, "num"),
			Den: rapid.Int32Range(1, math.MaxInt32).Draw(t, "den"),
		}
		back, err := ParseRat(r.String())
		require.NoError(t, err)
		require.Equal(t, r, back)
	})
}

func TestBinaryRoundTrip(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	r := Rat{Num: -7, Den: 22}
	buf, err := r.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, buf, RatBinarySize)

	// numerator occupies the first big-endian word
	require.Equal(t, []byte{0xff, 0xff, 0xff, 0xf9, 0x00, 0x00, 0x00, 0x16}, buf)

	var back Rat
	require.NoError(t, back.UnmarshalBinary(buf))
	require.Equal(t, r, back)

	rapid.Check(t, func(t *rapid.T) {
		r := Rat{
			Num: rapid.Int32().Draw(t, "num"),
			Den: rapid.Int32Range(1, math.MaxInt32).Draw(t, "den"),
		}
		buf, err := r.MarshalBinary()
		require.NoError(t, err)
		var back Rat
		require.NoError(t, back.UnmarshalBinary(buf))
		require.Equal(t, r, back)
	})
}

func TestUnmarshalBinaryRejects(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	var r Rat
	require.ErrorIs(t, r.UnmarshalBinary(nil), ErrInvalidInput)
	require.ErrorIs(t, r.UnmarshalBinary([]byte{1, 2, 3}), ErrInvalidInput)
	require.ErrorIs(t, r.UnmarshalBinary(make([]byte, 9)), ErrInvalidInput)

	// zero denominator on the wire
	require.ErrorIs(t, r.UnmarshalBinary(make([]byte, 8)), ErrInvalidInput)

	// negative denominator on the wire
	bad := []byte{0x00, 0x00, 0x00, 0x01, 0xff, 0xff, 0xff, 0xfe}
	require.ErrorIs(t, r.UnmarshalBinary(bad), ErrInvalidInput)

	// a failed decode leaves the receiver alone
	r = Rat{Num: 5, Den: 6}
	require.Error(t, r.UnmarshalBinary(make([]byte, 8)))
	require.Equal(t, Rat{Num: 5, Den: 6}, r)
}

func TestJSONRoundTrip(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	blob, err := json.Marshal(Rat{Num: -3, Den: 7})
	require.NoError(t, err)
	require.Equal(t, `"-3/7"`, string(blob))

	var back Rat
	require.NoError(t, json.Unmarshal(blob, &back))
	require.Equal(t, Rat{Num: -3, Den: 7}, back)

	require.Error(t, json.Unmarshal([]byte(`"1/0"`), &back))
	require.Error(t, json.Unmarshal([]byte(`12`), &back))

	// struct fields round-trip the same way
	type holder struct {
		Key Rat `json:"key"`
	}
	blob, err = json.Marshal(holder{Key: Rat{Num: 3, Den: 2}})
	require.NoError(t, err)
	require.Equal(t, `{"key":"3/2"}`, string(blob))
	var h holder
	require.NoError(t, json.Unmarshal(blob, &h))
	require.Equal(t, Rat{Num: 3, Den: 2}, h.Key)
}
