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
	"os"
	"path/filepath"

	"github.com/algorand/go-rational/util/codecs"
)

// Local holds the per-instance configuration settings.
//
// The version tags on these fields are append-only history: once committed
// they must never change, because migrate relies on them to recognize stored
// values that were tracking an old default. A new field gets tagged with the
// version that introduces it.
type Local struct {
	// Version records which generation of defaults this file was written
	// against. The field itself gains a tag every time a version is added.
	Version uint32 `version[0]:"0" version[1]:"1"`

	// BaseLoggerDebugLevel sets how chatty the log is, from 0 (panic only)
	// to 5 (debug). The default 4 keeps Info and above.
	BaseLoggerDebugLevel uint32 `version[0]:"4"`

	// MaxIntermediateSearchDepth bounds the number of mediant steps an
	// intermediate-key search may take before giving up. The version 0 default
	// proved too small for indexes that only ever append at one end, where the
	// search walks integers one step at a time.
	MaxIntermediateSearchDepth uint64 `version[0]:"4096" version[1]:"65536"`

	// KeyStoreFilename is the name of the sqlite file holding the ordered key
	// index, resolved relative to the data directory.
	KeyStoreFilename string `version[0]:"rowkey.sqlite"`

	// RebalanceOnExhaustion renumbers an entire list back to whole-number keys
	// when an insertion cannot find a representable key between its neighbors.
	// When disabled such insertions fail instead.
	RebalanceOnExhaustion bool `version[0]:"true"`

	// LogSizeLimit caps the size of the live log file in bytes. Zero leaves
	// entries on stderr instead of a file.
	LogSizeLimit uint64 `version[0]:"1073741824"`

	// LogArchiveName is the file within the data directory that a full log
	// rotates into.
	LogArchiveName string `version[0]:"ratkey.archive.log"`
}

// defaultLocal is assembled from the latest version tag on every field.
var defaultLocal = GetVersionedDefaultLocalConfig(getLatestConfigVersion())

// SaveToDisk writes the settings that differ from the defaults into
// root/ConfigFilename.
func (cfg Local) SaveToDisk(root string) error {
	return cfg.SaveToFile(os.ExpandEnv(filepath.Join(root, ConfigFilename)))
}

// SaveAllToDisk writes every setting, defaults included, into
// root/ConfigFilename.
func (cfg Local) SaveAllToDisk(root string) error {
	return codecs.SaveObjectToFile(os.ExpandEnv(filepath.Join(root, ConfigFilename)), cfg, true)
}

// SaveToFile writes the non-default settings to an explicit path. Version is
// always included, so the file records which defaults its omissions refer to.
func (cfg Local) SaveToFile(filename string) error {
	return codecs.SaveNonDefaultValuesToFile(filename, cfg, defaultLocal, []string{"Version"})
}

// ResolveLogPaths returns the full paths of the live log and its archive
// within the supplied data directory.
func (cfg Local) ResolveLogPaths(dataDir string) (liveLog, archive string) {
	liveLog = filepath.Join(dataDir, "ratkey.log")
	archive = filepath.Join(dataDir, cfg.LogArchiveName)
	return
}

// KeyStorePath returns the full path of the key store database within the
// supplied data directory.
func (cfg Local) KeyStorePath(dataDir string) string {
	return filepath.Join(dataDir, cfg.KeyStoreFilename)
}
