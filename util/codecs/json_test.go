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

package codecs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/algorand/go-rational/test/partitiontest"
)

type testValue struct {
	Bool   bool
	String string
	Int    int
}

func TestSameAsDefault(t *testing.T) {
	partitiontest.PartitionTest(t)

	a := require.New(t)

	values := fieldValues(testValue{Bool: true, String: "default", Int: 1})
	defaults := fieldValues(testValue{Bool: true, String: "default", Int: 2})

	a.True(sameAsDefault("Bool", values, defaults))
	a.True(sameAsDefault("String", values, defaults))
	a.False(sameAsDefault("Int", values, defaults))
	a.True(sameAsDefault("Missing", values, defaults))
}

func TestSaveNonDefaultValues(t *testing.T) {
	partitiontest.PartitionTest(t)

	v := testValue{Bool: true, String: "x<y", Int: 2}
	def := testValue{Bool: true, String: "default", Int: 2}

	filename := filepath.Join(t.TempDir(), "out.json")
	err := SaveNonDefaultValuesToFile(filename, v, def, []string{"Int"})
	require.NoError(t, err)

	content, err := os.ReadFile(filename)
	require.NoError(t, err)
	require.Contains(t, string(content), "String")
	require.Contains(t, string(content), "x<y")
	require.Contains(t, string(content), "Int")
	require.NotContains(t, string(content), "Bool")

	// the written overrides merge back over the defaults
	loaded := def
	require.NoError(t, json.Unmarshal(content, &loaded))
	require.Equal(t, v, loaded)
}
