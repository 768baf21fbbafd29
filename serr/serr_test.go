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

package serr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/algorand/go-rational/test/partitiontest"
)

func TestMessageOnly(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	e := New("key store closed")
	assert.Equal(t, "key store closed", e.Error())
	assert.Empty(t, e.Attrs)
}

func TestAttributeRendering(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	e := New("minting failed", "den", 7, "raw", []byte{3, 4})
	assert.Equal(t, "minting failed", e.Error())
	assert.Equal(t, 7, e.Attrs["den"])
	assert.Equal(t, []byte{3, 4}, e.Attrs["raw"])

	// a blank message falls back to the attributes alone
	e.Msg = ""
	assert.ErrorContains(t, e, `den=7`)
	assert.ErrorContains(t, e, `raw="\x03\x04"`)

	// %A splices them into a message
	e.Msg = "minting failed: %A"
	assert.Equal(t, "minting failed: ", e.Error()[:16])
	assert.ErrorContains(t, e, ` den=7`)
	assert.ErrorContains(t, e, ` raw="\x03\x04"`)
}

func TestAnnotateInPlace(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	e := New("compare failed", "lo", "1/3")
	Annotate(e, "hi", "1/2", "lo", "2/5")
	assert.Equal(t, "1/2", e.Attrs["hi"])
	assert.Equal(t, "2/5", e.Attrs["lo"])
}

func TestAnnotatePlainError(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	assert.Nil(t, Annotate(nil, "unused", 1))

	err := Annotate(errors.New("disk gone"), "path", "k.sqlite")
	assert.Equal(t, "disk gone", err.Error())
	assert.Equal(t, "k.sqlite", Attributes(err)["path"])
}

func TestAnnotateThroughChain(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	inner := New("row missing", "id", 41)
	err := fmt.Errorf("loading snapshot: %w", inner)
	Annotate(err, "list", "primary")

	// the annotation landed on the embedded Error, so it is visible both
	// through the chain and directly
	assert.Equal(t, "primary", Attributes(err)["list"])
	assert.Equal(t, 41, Attributes(err)["id"])
	assert.Equal(t, "primary", inner.Attrs["list"])
}

func TestWrapPlainError(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	err := Wrap(errors.New("no such table"), "init failed", "cause")
	assert.Equal(t, "init failed", err.Error())

	attrs := Attributes(err)
	assert.Equal(t, "no such table", attrs["cause-msg"])
	assert.Nil(t, attrs["cause-attrs"])

	assert.Equal(t, "no such table", errors.Unwrap(err).Error())
}

func TestWrapStructured(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	inner := New("overflow", "num", 1, "den", 2)
	err := Wrap(inner, "insert rejected", "cause", "list", "primary")

	attrs := Attributes(err)
	assert.Equal(t, "overflow", attrs["cause-msg"])
	assert.Equal(t, "primary", attrs["list"])

	// the inner attributes moved down a level
	assert.Nil(t, attrs["num"])
	inherited := attrs["cause-attrs"].(map[string]any)
	assert.Equal(t, 1, inherited["num"])
	assert.Equal(t, 2, inherited["den"])

	// wrapping again pushes everything down once more
	outer := Wrap(err, "command failed", "why")
	oattrs := Attributes(outer)
	assert.Nil(t, oattrs["cause-msg"])
	assert.Equal(t, "insert rejected", oattrs["why-msg"])
}
