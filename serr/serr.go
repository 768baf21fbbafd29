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

// Package serr implements errors that carry structured attributes, so a
// failure can be logged with the same key=value fields it was raised with.
package serr

import (
	"errors"
	"maps"
	"strings"

	"golang.org/x/exp/slog"
)

// An Error pairs a message with a free-form attribute map. Writing "%A" in
// the message marks where the attributes should be printed; the substitution
// happens each time Error runs, so attributes added after construction still
// appear.
type Error struct {
	Msg     string
	Attrs   map[string]any
	Wrapped error
}

// New builds an Error from a message and alternating key/value pairs.
func New(msg string, pairs ...any) *Error {
	e := &Error{Msg: msg, Attrs: make(map[string]any, len(pairs)/2)}
	e.set(pairs)
	return e
}

// set records alternating key/value pairs into the attribute map.
func (e *Error) set(pairs []any) {
	for i := 0; i < len(pairs); i += 2 {
		e.Attrs[pairs[i].(string)] = pairs[i+1]
	}
}

// Error renders the message, substituting the serialized attributes for
// "%A". A blank message renders as the attributes alone.
func (e *Error) Error() string {
	if e.Msg == "" {
		return e.AttributesAsString()
	}
	// a literal "%A" cannot be escaped
	if strings.Contains(e.Msg, "%A") {
		return strings.ReplaceAll(e.Msg, "%A", e.AttributesAsString())
	}
	return e.Msg
}

// Unwrap returns the error this one was built around, if any.
func (e *Error) Unwrap() error {
	return e.Wrapped
}

// AttributesAsString serializes the attributes, in no guaranteed order,
// exactly as slog's text handler would emit them in a log line.
func (e *Error) AttributesAsString() string {
	args := make([]any, 0, 2*len(e.Attrs))
	for key, val := range e.Attrs {
		args = append(args, key, val)
	}
	var line strings.Builder
	slog.New(slog.NewTextHandler(&line, nil)).Info("", args...)
	// drop the time, level, and msg fields that precede the attributes
	return strings.TrimSuffix(strings.SplitN(line.String(), " ", 4)[3], "\n")
}

// Annotate attaches more attributes to err, finding the Error anywhere in
// its chain. A nil err stays nil. An err with no Error in its chain is
// wrapped in one that reuses its message. Callers should re-assign the
// result, as with append: err = serr.Annotate(err, "key", val).
func Annotate(err error, pairs ...any) error {
	if err == nil {
		return nil
	}
	var se *Error
	if errors.As(err, &se) {
		se.set(pairs)
		return err
	}
	se = New(err.Error(), pairs...)
	se.Wrapped = err
	return se
}

// Wrap demotes err to a pair of attributes on a fresh Error: its message
// becomes $field-msg and, when err itself is structured, a copy of its
// attributes becomes $field-attrs.
func Wrap(err error, msg string, field string, pairs ...any) error {
	se := New(msg, field+"-msg", err.Error())
	se.set(pairs)
	se.Wrapped = err

	var inner *Error
	if errors.As(err, &inner) {
		se.Attrs[field+"-attrs"] = maps.Clone(inner.Attrs)
	}
	return se
}

// Attributes returns the attribute map of the first Error in err's chain,
// or nil when there is none.
func Attributes(err error) map[string]any {
	var se *Error
	if errors.As(err, &se) {
		return se.Attrs
	}
	return nil
}
