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

	"github.com/algorand/go-codec/codec"

	"github.com/algorand/go-rational"
	"github.com/algorand/go-rational/serr"
)

// snapshotHandle is used to instantiate msgpack encoders and decoders with
// our settings (canonical, paranoid about decoding errors).
var snapshotHandle *codec.MsgpackHandle

func init() {
	snapshotHandle = new(codec.MsgpackHandle)
	snapshotHandle.ErrorIfNoField = true
	snapshotHandle.ErrorIfNoArrayExpand = true
	snapshotHandle.Canonical = true
	snapshotHandle.PositiveIntUnsigned = true
}

// A Snapshot is the portable form of one list: its name and its rows in
// key order, keys spelled out as numerator/denominator pairs.
type Snapshot struct {
	List    string          `codec:"list"`
	Entries []SnapshotEntry `codec:"entries"`
}

// A SnapshotEntry is one row of a snapshot.
type SnapshotEntry struct {
	ID  string `codec:"id"`
	Num int32  `codec:"num"`
	Den int32  `codec:"den"`
}

// ExportSnapshot serializes a list to canonical msgpack.
func (s *Store) ExportSnapshot(list string) ([]byte, error) {
	entries, err := s.Entries(list)
	if err != nil {
		return nil, err
	}

	snap := Snapshot{List: list, Entries: make([]SnapshotEntry, 0, len(entries))}
	for _, e := range entries {
		snap.Entries = append(snap.Entries, SnapshotEntry{ID: e.ID, Num: e.Key.Num, Den: e.Key.Den})
	}

	var buf []byte
	enc := codec.NewEncoderBytes(&buf, snapshotHandle)
	if err := enc.Encode(snap); err != nil {
		return nil, err
	}
	return buf, nil
}

// ImportSnapshot decodes a snapshot and replaces the contents of its list.
// Every key is validated before the store is touched, so a bad snapshot
// leaves the list as it was. Returns the list name and row count.
func (s *Store) ImportSnapshot(data []byte) (string, int, error) {
	var snap Snapshot
	dec := codec.NewDecoderBytes(data, snapshotHandle)
	if err := dec.Decode(&snap); err != nil {
		return "", 0, serr.Wrap(err, "snapshot decode failed", "decode")
	}
	if snap.List == "" {
		return "", 0, serr.New("snapshot has no list name")
	}

	keys := make([]rational.Rat, len(snap.Entries))
	seen := make(map[string]bool, len(snap.Entries))
	for i, e := range snap.Entries {
		key, err := rational.MakeRat(e.Num, e.Den)
		if err != nil {
			return "", 0, serr.Annotate(err, "list", snap.List, "id", e.ID)
		}
		if seen[e.ID] {
			return "", 0, serr.Annotate(ErrRowExists, "list", snap.List, "id", e.ID)
		}
		seen[e.ID] = true
		keys[i] = key
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.dbs.Wdb.Atomic(func(tx *sql.Tx) error {
		if _, err := tx.Exec("DELETE FROM rowkeys WHERE list = ?", snap.List); err != nil {
			return err
		}
		for i, e := range snap.Entries {
			if err := insertRow(tx, snap.List, e.ID, keys[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return "", 0, serr.Annotate(err, "list", snap.List)
	}
	return snap.List, len(snap.Entries), nil
}
