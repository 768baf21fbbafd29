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
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/algorand/go-rational/test/partitiontest"
)

func TestGCD(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	require.Equal(t, uint32(6), gcd(54, 24))
	require.Equal(t, uint32(6), gcd(24, 54))
	require.Equal(t, uint32(1), gcd(17, 13))
	require.Equal(t, uint32(7), gcd(7, 0))
	require.Equal(t, uint32(7), gcd(0, 7))
	require.Equal(t, uint32(0), gcd(0, 0))
	require.Equal(t, uint32(1<<31), gcd(1<<31, 1<<31))
}

func TestMagnitude(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	require.Equal(t, uint32(5), magnitude(5))
	require.Equal(t, uint32(5), magnitude(-5))
	require.Equal(t, uint32(0), magnitude(0))
	require.Equal(t, uint32(math.MaxInt32), magnitude(math.MaxInt32))
	require.Equal(t, uint32(1<<31), magnitude(math.MinInt32))
}

func TestReduce(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	require.Equal(t, Rat{Num: 1, Den: 2}, Rat{Num: 2, Den: 4}.Reduce())
	require.Equal(t, Rat{Num: -1, Den: 2}, Rat{Num: -2, Den: 4}.Reduce())
	require.Equal(t, Rat{Num: 1, Den: 2}, Rat{Num: 1, Den: 2}.Reduce())
	require.Equal(t, Rat{Num: 0, Den: 1}, Rat{Num: 0, Den: 1000}.Reduce())
	require.Equal(t, Rat{Num: 9, Den: 1}, Rat{Num: 54, Den: 6}.Reduce())
	require.Equal(t, Rat{Num: math.MaxInt32, Den: 1}, Rat{Num: math.MaxInt32, Den: 1}.Reduce())

	// the minimum numerator either loses twos or survives verbatim
	require.Equal(t, Rat{Num: math.MinInt32, Den: 7}, Rat{Num: math.MinInt32, Den: 7}.Reduce())
	require.Equal(t, Rat{Num: -1 << 30, Den: 1}, Rat{Num: math.MinInt32, Den: 2}.Reduce())
	require.Equal(t, Rat{Num: -2, Den: 1}, Rat{Num: math.MinInt32, Den: 1 << 30}.Reduce())
}

// TestReduceAgainstBig checks lowest terms against big.Rat, which always
// normalizes.
func TestReduceAgainstBig(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		num := rapid.Int32().Draw(t, "num")
		den := rapid.Int32Range(1, math.MaxInt32).Draw(t, "den")

		red := Rat{Num: num, Den: den}.Reduce()
		want := new(big.Rat).SetFrac64(int64(num), int64(den))
		require.Equal(t, want.Num().Int64(), int64(red.Num))
		require.Equal(t, want.Denom().Int64(), int64(red.Den))

		// reduction is idempotent and preserves value
		require.Equal(t, red, red.Reduce())
		require.True(t, red.Equal(Rat{Num: num, Den: den}))
	})
}
