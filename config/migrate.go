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
	"reflect"
	"strconv"
)

// migrate walks cfg forward one version at a time. A field moves to the next
// version's default only while it still holds the default of the version the
// file was written at, so deliberate overrides survive. The Version field
// itself carries a tag per version, which is what advances the loop.
func migrate(cfg Local) (Local, error) {
	latest := getLatestConfigVersion()
	if cfg.Version > latest {
		return cfg, fmt.Errorf("unexpected config version: %d", cfg.Version)
	}

	localType := reflect.TypeOf((*Local)(nil)).Elem()
	for cfg.Version < latest {
		defaults := GetVersionedDefaultLocalConfig(cfg.Version)
		next := cfg.Version + 1
		for i := 0; i < localType.NumField(); i++ {
			field := localType.Field(i)
			raw, ok := field.Tag.Lookup(fmt.Sprintf("version[%d]", next))
			if !ok || raw == "" {
				continue
			}
			cur := reflect.ValueOf(&cfg).Elem().Field(i)
			old := reflect.ValueOf(&defaults).Elem().Field(i)
			if cur.Equal(old) {
				setFromTag(cur, field.Name, raw)
			}
		}
	}
	return cfg, nil
}

// getLatestConfigVersion finds the highest n for which the Version field
// carries a version[n] tag.
func getLatestConfigVersion() uint32 {
	field, ok := reflect.TypeOf((*Local)(nil)).Elem().FieldByName("Version")
	if !ok {
		return 0
	}
	var latest uint32
	for {
		if _, ok := field.Tag.Lookup(fmt.Sprintf("version[%d]", latest+1)); !ok {
			return latest
		}
		latest++
	}
}

// GetVersionedDefaultLocalConfig assembles the defaults as they stood at the
// given version by replaying version tags from 0 upward.
func GetVersionedDefaultLocalConfig(version uint32) (local Local) {
	if version > 0 {
		local = GetVersionedDefaultLocalConfig(version - 1)
	}
	localType := reflect.TypeOf((*Local)(nil)).Elem()
	for i := 0; i < localType.NumField(); i++ {
		field := localType.Field(i)
		raw, ok := field.Tag.Lookup(fmt.Sprintf("version[%d]", version))
		if !ok || raw == "" {
			continue
		}
		setFromTag(reflect.ValueOf(&local).Elem().Field(i), field.Name, raw)
	}
	return
}

// setFromTag parses raw according to v's kind and stores it. The tags are
// written by hand, so a value that does not parse is a programming error.
func setFromTag(v reflect.Value, name, raw string) {
	switch v.Kind() {
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			panic(fmt.Sprintf("config.Local field %s: %v", name, err))
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, v.Type().Bits())
		if err != nil {
			panic(fmt.Sprintf("config.Local field %s: %v", name, err))
		}
		v.SetInt(n)
	case reflect.Uint, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(raw, 10, v.Type().Bits())
		if err != nil {
			panic(fmt.Sprintf("config.Local field %s: %v", name, err))
		}
		v.SetUint(n)
	case reflect.String:
		v.SetString(raw)
	default:
		panic(fmt.Sprintf("config.Local field %s has unsupported kind %s", name, v.Kind()))
	}
}

// checkTag verifies that an entire struct tag is a series of space separated
// key:"value" pairs. reflect.StructTag.Lookup silently misses anything
// malformed, which would make a version tag vanish instead of fail.
func checkTag(tag string) error {
	for tag != "" {
		i := 0
		for i < len(tag) && tag[i] == ' ' {
			i++
		}
		tag = tag[i:]
		if tag == "" {
			break
		}

		// scan the key, which runs up to a colon and may not contain
		// spaces, quotes or control characters
		i = 0
		for i < len(tag) && tag[i] > ' ' && tag[i] != ':' && tag[i] != '"' && tag[i] != 0x7f {
			i++
		}
		if i == 0 || i+1 >= len(tag) || tag[i] != ':' || tag[i+1] != '"' {
			return fmt.Errorf("invalid tag key syntax in %q", tag)
		}
		name := tag[:i]
		tag = tag[i+1:]

		// scan the quoted value
		i = 1
		for i < len(tag) && tag[i] != '"' {
			if tag[i] == '\\' {
				i++
			}
			i++
		}
		if i >= len(tag) {
			return fmt.Errorf("unterminated tag value for key %q", name)
		}
		tag = tag[i+1:]
	}
	return nil
}

// checkLocalTags runs checkTag on every field of the Local struct.
func checkLocalTags() error {
	localType := reflect.TypeOf((*Local)(nil)).Elem()
	for fieldNum := 0; fieldNum < localType.NumField(); fieldNum++ {
		field := localType.Field(fieldNum)
		if err := checkTag(string(field.Tag)); err != nil {
			return fmt.Errorf("field %s: %w", field.Name, err)
		}
	}
	return nil
}
