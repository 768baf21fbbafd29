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

package rowkey

import (
	"database/sql"
	"errors"

	"github.com/algorand/go-rational"
	"github.com/algorand/go-rational/serr"
)

// ErrRowNotFound is returned when the named row is not in the list.
var ErrRowNotFound = errors.New("row not found")

// ErrRowExists is returned when inserting a row whose id is already in the list.
var ErrRowExists = errors.New("row already exists")

// Append adds a row at the end of the list. The first key of a list is 1/1
// and appending strides by whole numbers after that.
func (s *Store) Append(list, id string) (key rational.Rat, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	err = s.dbs.Wdb.Atomic(func(tx *sql.Tx) error {
		entries, err := selectEntries(tx, list)
		if err != nil {
			return err
		}
		key, err = s.place(tx, list, id, entries, len(entries)-1, len(entries))
		return err
	})
	err = serr.Annotate(err, "list", list, "id", id)
	return
}

// Prepend adds a row at the front of the list, striding a whole number
// below the first key.
func (s *Store) Prepend(list, id string) (key rational.Rat, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	err = s.dbs.Wdb.Atomic(func(tx *sql.Tx) error {
		entries, err := selectEntries(tx, list)
		if err != nil {
			return err
		}
		key, err = s.place(tx, list, id, entries, -1, 0)
		return err
	})
	err = serr.Annotate(err, "list", list, "id", id)
	return
}

// InsertBefore adds a row immediately before ref.
func (s *Store) InsertBefore(list, id, ref string) (key rational.Rat, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	err = s.dbs.Wdb.Atomic(func(tx *sql.Tx) error {
		entries, err := selectEntries(tx, list)
		if err != nil {
			return err
		}
		refIdx := indexOf(entries, ref)
		if refIdx < 0 {
			return serr.Annotate(ErrRowNotFound, "ref", ref)
		}
		key, err = s.place(tx, list, id, entries, refIdx-1, refIdx)
		return err
	})
	err = serr.Annotate(err, "list", list, "id", id)
	return
}

// InsertAfter adds a row immediately after ref.
func (s *Store) InsertAfter(list, id, ref string) (key rational.Rat, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	err = s.dbs.Wdb.Atomic(func(tx *sql.Tx) error {
		entries, err := selectEntries(tx, list)
		if err != nil {
			return err
		}
		refIdx := indexOf(entries, ref)
		if refIdx < 0 {
			return serr.Annotate(ErrRowNotFound, "ref", ref)
		}
		key, err = s.place(tx, list, id, entries, refIdx, refIdx+1)
		return err
	})
	err = serr.Annotate(err, "list", list, "id", id)
	return
}

// InsertBetween adds a row keyed strictly between lo and hi, which need not
// correspond to rows of the list. Either bound may be NoBound. Unlike the
// neighbor-relative inserts this never renumbers the list, since the caller's
// bounds would not survive renumbering.
func (s *Store) InsertBetween(list, id string, lo, hi rational.Rat) (key rational.Rat, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	err = s.dbs.Wdb.Atomic(func(tx *sql.Tx) error {
		entries, err := selectEntries(tx, list)
		if err != nil {
			return err
		}
		if indexOf(entries, id) >= 0 {
			return ErrRowExists
		}
		key, err = rational.IntermediateDepth(lo, hi, s.maxDepth)
		if err != nil {
			return err
		}
		return insertRow(tx, list, id, key)
	})
	err = serr.Annotate(err, "list", list, "id", id, "lo", lo, "hi", hi)
	return
}

// Move reorders an existing row to sit immediately before beforeID, or to
// the end of the list when beforeID is empty.
func (s *Store) Move(list, id, beforeID string) (key rational.Rat, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	err = s.dbs.Wdb.Atomic(func(tx *sql.Tx) error {
		entries, err := selectEntries(tx, list)
		if err != nil {
			return err
		}
		idx := indexOf(entries, id)
		if idx < 0 {
			return ErrRowNotFound
		}
		if id == beforeID {
			key = entries[idx].Key
			return nil
		}

		if _, err := tx.Exec("DELETE FROM rowkeys WHERE list = ? AND id = ?", list, id); err != nil {
			return err
		}
		entries = append(entries[:idx], entries[idx+1:]...)

		if beforeID == "" {
			key, err = s.place(tx, list, id, entries, len(entries)-1, len(entries))
			return err
		}
		refIdx := indexOf(entries, beforeID)
		if refIdx < 0 {
			return serr.Annotate(ErrRowNotFound, "ref", beforeID)
		}
		key, err = s.place(tx, list, id, entries, refIdx-1, refIdx)
		return err
	})
	err = serr.Annotate(err, "list", list, "id", id)
	return
}

// Remove deletes a row from the list. The surviving keys are untouched.
func (s *Store) Remove(list, id string) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	err = s.dbs.Wdb.Atomic(func(tx *sql.Tx) error {
		res, err := tx.Exec("DELETE FROM rowkeys WHERE list = ? AND id = ?", list, id)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrRowNotFound
		}
		return nil
	})
	return serr.Annotate(err, "list", list, "id", id)
}

// place mints a key for id between the entries at prevIdx and nextIdx
// (either index may be out of range, meaning the list boundary) and inserts
// the row. When minting exhausts the key space and rebalancing is enabled,
// the list is renumbered to whole-number keys and the mint retried once.
// The indices stay valid across renumbering, which is why place works in
// positions rather than keys.
func (s *Store) place(tx *sql.Tx, list, id string, entries []Entry, prevIdx, nextIdx int) (rational.Rat, error) {
	if indexOf(entries, id) >= 0 {
		return rational.Rat{}, ErrRowExists
	}

	key, err := s.mint(entries, prevIdx, nextIdx)
	if err != nil {
		if !s.rebalance || !exhausted(err) {
			return rational.Rat{}, err
		}
		s.log.With("list", list).Warnf("renumbering %d keys: %v", len(entries), err)
		entries, err = renumber(tx, list, entries)
		if err != nil {
			return rational.Rat{}, err
		}
		key, err = s.mint(entries, prevIdx, nextIdx)
		if err != nil {
			return rational.Rat{}, err
		}
	}

	if err := insertRow(tx, list, id, key); err != nil {
		return rational.Rat{}, err
	}
	return key, nil
}

// mint picks the key for a row between two positions: whole-number strides
// at the boundaries, the simplest in-between fraction otherwise.
func (s *Store) mint(entries []Entry, prevIdx, nextIdx int) (rational.Rat, error) {
	one := rational.FromInt32(1)
	switch {
	case prevIdx < 0 && nextIdx >= len(entries):
		return one, nil
	case nextIdx >= len(entries):
		return entries[prevIdx].Key.Add(one)
	case prevIdx < 0:
		return entries[nextIdx].Key.Sub(one)
	default:
		return rational.IntermediateDepth(entries[prevIdx].Key, entries[nextIdx].Key, s.maxDepth)
	}
}

func exhausted(err error) bool {
	return errors.Is(err, rational.ErrSearchDepthExceeded) || errors.Is(err, rational.ErrOverflow)
}

// renumber rewrites a list with keys 1/1 .. n/1, preserving order. Rows are
// deleted and reinserted rather than updated in place, so the position index
// never sees a transient collision between an old key and a new one.
func renumber(tx *sql.Tx, list string, entries []Entry) ([]Entry, error) {
	if _, err := tx.Exec("DELETE FROM rowkeys WHERE list = ?", list); err != nil {
		return nil, err
	}
	for i := range entries {
		entries[i].Key = rational.FromInt32(int32(i + 1))
		if err := insertRow(tx, list, entries[i].ID, entries[i].Key); err != nil {
			return nil, err
		}
	}
	return entries, nil
}

func insertRow(tx *sql.Tx, list, id string, key rational.Rat) error {
	_, err := tx.Exec("INSERT INTO rowkeys (list, id, num, den) VALUES (?, ?, ?, ?)",
		list, id, key.Num, key.Den)
	return err
}
