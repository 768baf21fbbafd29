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
	"fmt"
	"strconv"
)

// Version numbering follows semver: the major number moves on breaking
// changes, the minor on backwards-compatible additions, and the build
// number is stamped in by the build tools.

// VersionMajor is the major semantic version number.
const VersionMajor = 1

// VersionMinor is the minor semantic version number.
const VersionMinor = 0

// Version holds the full version identity of a build.
type Version struct {
	Major       int
	Minor       int
	BuildNumber int
	CommitHash  string
	Branch      string
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.BuildNumber)
}

// AsUInt64 packs the numeric components into one comparable integer, the
// major number in the top bits.
func (v Version) AsUInt64() uint64 {
	return uint64(v.Major)<<40 | uint64(v.Minor)<<24 | uint64(v.BuildNumber)
}

// parseBuildNumber tolerates the empty string a dev build leaves behind.
func parseBuildNumber(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

var currentVersion = Version{
	Major:       VersionMajor,
	Minor:       VersionMinor,
	BuildNumber: parseBuildNumber(BuildNumber),
	CommitHash:  CommitHash,
	Branch:      Branch,
}

// GetCurrentVersion returns the version stamped into this build.
func GetCurrentVersion() Version {
	return currentVersion
}

// FormatVersionAndLicense renders what `ratkey version` prints.
func FormatVersionAndLicense() string {
	v := GetCurrentVersion()
	return fmt.Sprintf("%d\n%s [%s] (commit #%s)\n%s", v.AsUInt64(), v,
		v.Branch, v.CommitHash, GetLicenseInfo())
}

// GetLicenseInfo names the license and where the source lives.
func GetLicenseInfo() string {
	return "go-rational is licensed with AGPLv3.0\nsource code available at https://github.com/algorand/go-rational"
}
