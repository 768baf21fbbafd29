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

package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/algorand/go-rational/test/partitiontest"
)

func TestSaveThenLoad(t *testing.T) {
	partitiontest.PartitionTest(t)

	c1 := GetDefaultLocal()
	c1.MaxIntermediateSearchDepth = 99

	testdir := t.TempDir()
	require.NoError(t, c1.SaveToDisk(testdir))

	c2, err := LoadConfigFromDisk(testdir)
	require.NoError(t, err)

	var b1, b2 bytes.Buffer
	require.NoError(t, json.NewEncoder(&b1).Encode(c1))
	require.NoError(t, json.NewEncoder(&b2).Encode(c2))
	require.Equal(t, b1.String(), b2.String())
}

func TestLoadMissing(t *testing.T) {
	partitiontest.PartitionTest(t)

	testdir := filepath.Join(t.TempDir(), "nonexistent")
	c, err := LoadConfigFromDisk(testdir)
	require.True(t, os.IsNotExist(err))

	// the defaults come back even when the file is absent
	require.Equal(t, GetDefaultLocal().MaxIntermediateSearchDepth, c.MaxIntermediateSearchDepth)
}

func TestMergeConfig(t *testing.T) {
	partitiontest.PartitionTest(t)

	testdir := t.TempDir()

	c1 := struct {
		MaxIntermediateSearchDepth uint64
		KeyStoreFilename           string
		ShouldNotExist             int // Ensure we don't panic when config has members we've removed
	}{
		MaxIntermediateSearchDepth: 123,
		KeyStoreFilename:           "testing123.sqlite",
	}

	// write a settings file knowing only some of the fields
	blob, err := json.Marshal(c1)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(testdir, ConfigFilename), blob, 0600))

	// Take defaults and merge with the saved custom settings.
	// This should result in c2 being the same as the defaults except for the value(s) in our custom c1
	c2, err := mergeConfigFromDir(testdir, GetDefaultLocal())
	require.NoError(t, err)

	require.Equal(t, c1.MaxIntermediateSearchDepth, c2.MaxIntermediateSearchDepth)
	require.Equal(t, c1.KeyStoreFilename, c2.KeyStoreFilename)
	require.Equal(t, GetDefaultLocal().BaseLoggerDebugLevel, c2.BaseLoggerDebugLevel)
	require.Equal(t, GetDefaultLocal().RebalanceOnExhaustion, c2.RebalanceOnExhaustion)
}

func TestSaveOnlyNonDefaults(t *testing.T) {
	partitiontest.PartitionTest(t)

	testdir := t.TempDir()

	cfg := GetDefaultLocal()
	cfg.RebalanceOnExhaustion = false
	require.NoError(t, cfg.SaveToDisk(testdir))

	content, err := os.ReadFile(filepath.Join(testdir, ConfigFilename))
	require.NoError(t, err)
	require.Contains(t, string(content), "RebalanceOnExhaustion")
	require.Contains(t, string(content), "Version")
	require.NotContains(t, string(content), "KeyStoreFilename")
}

func TestConfigPaths(t *testing.T) {
	partitiontest.PartitionTest(t)

	cfg := GetDefaultLocal()
	require.Equal(t, filepath.Join("data", "rowkey.sqlite"), cfg.KeyStorePath("data"))

	live, archive := cfg.ResolveLogPaths("data")
	require.Equal(t, filepath.Join("data", "ratkey.log"), live)
	require.Equal(t, filepath.Join("data", "ratkey.archive.log"), archive)
}

func TestGlobalConfigRoot(t *testing.T) {
	partitiontest.PartitionTest(t)

	testdir := t.TempDir()
	oldRoot := SetGlobalConfigFileRoot(testdir)
	defer SetGlobalConfigFileRoot(oldRoot)

	path, err := GetConfigFilePath("something.json")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(testdir, "something.json"), path)
}
