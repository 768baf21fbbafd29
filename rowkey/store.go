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

// Package rowkey keeps user-ordered rows in sqlite, keyed by rationals.
// Every row of a list carries a fraction, and the list order is the
// fraction order. Inserting between two rows mints a key strictly between
// their keys, so a reorder touches one row instead of renumbering the
// list. When the key space between two neighbors is exhausted the engine
// renumbers the whole list back to whole numbers and retries once.
package rowkey

import (
	"context"
	"database/sql"
	"math"
	"sort"

	"github.com/algorand/go-deadlock"

	"github.com/algorand/go-rational"
	"github.com/algorand/go-rational/config"
	"github.com/algorand/go-rational/logging"
	"github.com/algorand/go-rational/serr"
	"github.com/algorand/go-rational/util/db"
)

// storeSchemaVersion is kept in the sqlite user_version pragma.
const storeSchemaVersion = 1

// A Store holds any number of named lists in a single sqlite database.
// Reorder operations are serialized by the store mutex; reads go through
// a separate read-only connection.
type Store struct {
	mu  deadlock.Mutex
	dbs db.Pair
	log logging.Logger

	maxDepth  uint64
	rebalance bool
}

// An Entry is one row of a list: its identifier and its ordering key.
type Entry struct {
	ID  string
	Key rational.Rat
}

// MakeStore opens (creating if necessary) the key store at dbfile.
func MakeStore(dbfile string, memory bool, cfg config.Local, log logging.Logger) (*Store, error) {
	dbs, err := db.OpenPair(dbfile, memory)
	if err != nil {
		return nil, err
	}

	s := &Store{
		dbs:       dbs,
		log:       log,
		maxDepth:  cfg.MaxIntermediateSearchDepth,
		rebalance: cfg.RebalanceOnExhaustion,
	}

	err = s.dbs.Wdb.Atomic(s.initialize)
	if err != nil {
		dbs.Close()
		return nil, err
	}

	return s, nil
}

// Close closes both database connections.
func (s *Store) Close() {
	s.dbs.Close()
}

func (s *Store) initialize(tx *sql.Tx) error {
	ctx := context.Background()
	ver, err := db.GetUserVersion(ctx, tx)
	if err != nil {
		return err
	}
	if ver == storeSchemaVersion {
		return nil
	}
	if ver > storeSchemaVersion {
		return serr.New("key store schema is too new", "version", ver, "supported", storeSchemaVersion)
	}

	_, err = tx.Exec(`CREATE TABLE IF NOT EXISTS rowkeys (
		list TEXT NOT NULL,
		id   TEXT NOT NULL,
		num  INTEGER NOT NULL,
		den  INTEGER NOT NULL,
		PRIMARY KEY (list, id))`)
	if err != nil {
		return err
	}

	_, err = tx.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS rowkeys_position ON rowkeys (list, num, den)`)
	if err != nil {
		return err
	}

	_, err = db.SetUserVersion(ctx, tx, storeSchemaVersion)
	return err
}

// Entries returns the rows of a list in key order. A list that does not
// exist is empty, not an error.
func (s *Store) Entries(list string) (entries []Entry, err error) {
	err = s.dbs.Rdb.Atomic(func(tx *sql.Tx) (err error) {
		entries, err = selectEntries(tx, list)
		return
	})
	return
}

// Lists returns the names of all lists in the store.
func (s *Store) Lists() (lists []string, err error) {
	err = s.dbs.Rdb.Atomic(func(tx *sql.Tx) error {
		rows, err := tx.Query("SELECT DISTINCT list FROM rowkeys ORDER BY list")
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var list string
			if err := rows.Scan(&list); err != nil {
				return err
			}
			lists = append(lists, list)
		}
		return rows.Err()
	})
	return
}

func selectEntries(tx *sql.Tx, list string) ([]Entry, error) {
	rows, err := tx.Query("SELECT id, num, den FROM rowkeys WHERE list = ?", list)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var num, den int64
		if err := rows.Scan(&e.ID, &num, &den); err != nil {
			return nil, err
		}
		if num < math.MinInt32 || num > math.MaxInt32 || den < 1 || den > math.MaxInt32 {
			return nil, serr.New("corrupt key in store", "list", list, "id", e.ID, "num", num, "den", den)
		}
		e.Key = rational.Rat{Num: int32(num), Den: int32(den)}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Key.Less(entries[j].Key)
	})
	return entries, nil
}

func indexOf(entries []Entry, id string) int {
	for i := range entries {
		if entries[i].ID == id {
			return i
		}
	}
	return -1
}
