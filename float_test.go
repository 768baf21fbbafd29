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
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/algorand/go-rational/test/partitiontest"
)

func TestFloat64(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	require.Equal(t, 0.5, Rat{Num: 1, Den: 2}.Float64())
	require.Equal(t, -0.5, Rat{Num: -1, Den: 2}.Float64())
	require.Equal(t, 0.0, Rat{Num: 0, Den: 9}.Float64())
	require.InDelta(t, 1.0/3.0, Rat{Num: 1, Den: 3}.Float64(), 1e-15)
}

func TestFromFloat64Exact(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	res, err := FromFloat64(0)
	require.NoError(t, err)
	require.Equal(t, Rat{Num: 0, Den: 1}, res)

	res, err = FromFloat64(0.5)
	require.NoError(t, err)
	require.Equal(t, Rat{Num: 1, Den: 2}, res)

	res, err = FromFloat64(-0.5)
	require.NoError(t, err)
	require.Equal(t, Rat{Num: -1, Den: 2}, res)

	res, err = FromFloat64(3)
	require.NoError(t, err)
	require.Equal(t, Rat{Num: 3, Den: 1}, res)

	res, err = FromFloat64(-0.375)
	require.NoError(t, err)
	require.Equal(t, Rat{Num: -3, Den: 8}, res)

	res, err = FromFloat64(12.25)
	require.NoError(t, err)
	require.Equal(t, Rat{Num: 49, Den: 4}, res)

	// extremes of the integer range
	res, err = FromFloat64(float64(math.MaxInt32))
	require.NoError(t, err)
	require.Equal(t, Rat{Num: math.MaxInt32, Den: 1}, res)

	res, err = FromFloat64(float64(math.MinInt32))
	require.NoError(t, err)
	require.Equal(t, Rat{Num: math.MinInt32, Den: 1}, res)

	// the deepest representable dyadic
	res, err = FromFloat64(1.0 / float64(1<<30))
	require.NoError(t, err)
	require.Equal(t, Rat{Num: 1, Den: 1 << 30}, res)
}

func TestFromFloat64Rejects(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	_, err := FromFloat64(math.NaN())
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = FromFloat64(math.Inf(1))
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = FromFloat64(math.Inf(-1))
	require.ErrorIs(t, err, ErrInvalidInput)

	// 0.1 is a 55-bit binary fraction, not a tenth
	_, err = FromFloat64(0.1)
	require.ErrorIs(t, err, ErrOverflow)

	_, err = FromFloat64(0.263157894737)
	require.ErrorIs(t, err, ErrOverflow)

	_, err = FromFloat64(float64(math.MaxInt32) + 1)
	require.ErrorIs(t, err, ErrOverflow)

	_, err = FromFloat64(float64(math.MinInt32) - 1)
	require.ErrorIs(t, err, ErrOverflow)

	_, err = FromFloat64(1.0 / float64(1<<31))
	require.ErrorIs(t, err, ErrOverflow)

	_, err = FromFloat64(math.SmallestNonzeroFloat64)
	require.ErrorIs(t, err, ErrOverflow)
}

func TestFromFloat64RoundTrip(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	// every value a Rat can take converts back exactly when the float
	// itself is exact
	rapid.Check(t, func(t *rapid.T) {
		num := rapid.Int32Range(-1<<24, 1<<24).Draw(t, "num")
		shift := rapid.IntRange(0, 24).Draw(t, "shift")
		r := Rat{Num: num, Den: 1 << uint(shift)}

		back, err := FromFloat64(r.Float64())
		require.NoError(t, err)
		require.True(t, back.Equal(r))
	})
}

func TestApproxFloat64(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	res, err := ApproxFloat64(0.263157894737)
	require.NoError(t, err)
	require.Equal(t, Rat{Num: 5, Den: 19}, res)

	res, err = ApproxFloat64(-0.263157894737)
	require.NoError(t, err)
	require.Equal(t, Rat{Num: -5, Den: 19}, res)

	res, err = ApproxFloat64(1.0 / 3.0)
	require.NoError(t, err)
	require.Equal(t, Rat{Num: 1, Den: 3}, res)

	res, err = ApproxFloat64(0.5)
	require.NoError(t, err)
	require.Equal(t, Rat{Num: 1, Den: 2}, res)

	res, err = ApproxFloat64(-7)
	require.NoError(t, err)
	require.Equal(t, Rat{Num: -7, Den: 1}, res)

	res, err = ApproxFloat64(0)
	require.NoError(t, err)
	require.Equal(t, Rat{Num: 0, Den: 1}, res)

	res, err = ApproxFloat64(math.Pi)
	require.NoError(t, err)
	require.InDelta(t, math.Pi, res.Float64(), 1e-9)

	_, err = ApproxFloat64(math.NaN())
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = ApproxFloat64(2147483648.0)
	require.ErrorIs(t, err, ErrOverflow)
}

func TestApproxFloat64RoundTrip(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	// a float produced from modest terms walks back to the same value
	rapid.Check(t, func(t *rapid.T) {
		num := rapid.Int32Range(-100000, 100000).Draw(t, "num")
		den := rapid.Int32Range(1, 100000).Draw(t, "den")
		r := Rat{Num: num, Den: den}

		back, err := ApproxFloat64(r.Float64())
		require.NoError(t, err)
		require.True(t, back.Equal(r), "%v came back as %v", r, back)
	})
}
