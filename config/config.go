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

// Package config reads and writes the per-instance settings file, migrating
// older files forward as defaults change.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"os/user"
	"path/filepath"
)

// ConfigFilename names the settings file kept in a data directory.
const ConfigFilename = "config.json"

// LoadConfigFromDisk reads dir's settings file, merges it over the defaults,
// and migrates the result up to the current version. When the file cannot be
// read, the defaults come back along with the error, so a caller may treat a
// missing file as "use the defaults".
func LoadConfigFromDisk(dir string) (Local, error) {
	base := defaultLocal
	base.Version = 0 // take the version from the file; absent means 0
	c, err := mergeConfigFromDir(dir, base)
	if err != nil {
		return c, err
	}
	// bring values still sitting at an older version's default up to date
	return migrate(c)
}

// GetDefaultLocal returns a copy of the built-in settings.
func GetDefaultLocal() Local {
	return defaultLocal
}

// mergeConfigFromDir overlays dir's settings file onto source. The source
// comes back untouched when the file cannot be opened.
func mergeConfigFromDir(dir string, source Local) (Local, error) {
	f, err := os.Open(filepath.Join(dir, ConfigFilename))
	if err != nil {
		return source, err
	}
	defer f.Close()

	err = json.NewDecoder(f).Decode(&source)
	return source, err
}

// globalConfigFileRoot caches the directory for settings that belong to the
// user rather than to one data directory.
var globalConfigFileRoot string

// GetConfigFilePath returns the full path for a user-global configuration
// file.
func GetConfigFilePath(file string) (string, error) {
	root, err := GetGlobalConfigFileRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, file), nil
}

// GetGlobalConfigFileRoot returns the directory for user-global
// configuration files, creating it on first use.
func GetGlobalConfigFileRoot() (string, error) {
	if globalConfigFileRoot != "" {
		return globalConfigFileRoot, nil
	}
	root, err := GetDefaultConfigFilePath()
	if err != nil {
		return "", err
	}
	if err := os.Mkdir(root, os.ModePerm); err != nil && !os.IsExist(err) {
		return "", err
	}
	globalConfigFileRoot = root
	return globalConfigFileRoot, nil
}

// SetGlobalConfigFileRoot overrides where user-global configuration files
// live and returns the previous root so tests can restore it.
func SetGlobalConfigFileRoot(rootPath string) string {
	current := globalConfigFileRoot
	globalConfigFileRoot = rootPath
	return current
}

// GetDefaultConfigFilePath returns where user-global configuration files
// live when no override is set: ~/.ratkey.
func GetDefaultConfigFilePath() (string, error) {
	currentUser, err := user.Current()
	if err != nil {
		return "", err
	}
	if currentUser.HomeDir == "" {
		return "", errors.New("current user has no home directory")
	}
	return filepath.Join(currentUser.HomeDir, ".ratkey"), nil
}
