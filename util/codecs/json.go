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

// Package codecs writes configuration objects to disk as JSON.
package codecs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"reflect"
	"slices"
	"strings"
)

// SaveObjectToFile writes object to filename as JSON, tab-indented when
// prettyFormat is set.
func SaveObjectToFile(filename string, object interface{}, prettyFormat bool) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	if prettyFormat {
		enc.SetIndent("", "\t")
		enc.SetEscapeHTML(false)
	}
	return enc.Encode(object)
}

// SaveNonDefaultValuesToFile writes object to filename as JSON, keeping
// only the fields whose values differ from defaultObject, plus any field
// named in include. The object must be flat: the filter works line by
// line on the indented encoding, and nested values are rejected.
func SaveNonDefaultValuesToFile(filename string, object, defaultObject interface{}, include []string) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "\t")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(object); err != nil {
		return err
	}

	values := fieldValues(object)
	defaults := fieldValues(defaultObject)

	var kept []string
	inObject := false
	for _, line := range strings.Split(buf.String(), "\n") {
		if line == "" {
			continue
		}
		name := fieldName(line)
		if name == "" {
			// an object brace; anything else means nesting, which the
			// line filter cannot handle
			switch {
			case !inObject && strings.Contains(line, "{"):
				inObject = true
			case inObject && strings.Contains(line, "}"):
				inObject = false
			default:
				return fmt.Errorf("cannot save nested value %q", line)
			}
			kept = append(kept, line)
			continue
		}
		if !inObject {
			return fmt.Errorf("unexpected value %q after the object", line)
		}
		if slices.Contains(include, name) || !sameAsDefault(name, values, defaults) {
			kept = append(kept, line)
		}
	}

	// dropping the last field can leave a dangling comma before the
	// closing brace
	if n := len(kept); n > 2 {
		kept[n-2] = strings.TrimSuffix(kept[n-2], ",")
	}
	return os.WriteFile(filename, []byte(strings.Join(kept, "\n")), 0666)
}

// fieldName extracts the key from an indented `"key": value` line, or ""
// for lines that carry no key.
func fieldName(line string) string {
	open := strings.Index(line, `"`)
	end := strings.Index(line, `":`)
	if open < 0 || end <= open {
		return ""
	}
	return line[open+1 : end]
}

// fieldValues flattens a struct into field name -> value.
func fieldValues(object interface{}) map[string]interface{} {
	v := reflect.Indirect(reflect.ValueOf(object))
	t := v.Type()
	values := make(map[string]interface{}, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		values[t.Field(i).Name] = v.Field(i).Interface()
	}
	return values
}

// sameAsDefault reports whether the named field carries its default. A
// field present in neither map counts as default.
func sameAsDefault(name string, values, defaults map[string]interface{}) bool {
	value, ok := values[name]
	def, defOk := defaults[name]
	if ok != defOk {
		return false
	}
	return reflect.DeepEqual(value, def)
}
