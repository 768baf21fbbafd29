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

// Package db wraps the sqlite handles a key store reads and writes through.
// Nothing in here is expected to work against other databases.
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mattn/go-sqlite3"

	"github.com/algorand/go-rational/logging"
)

// busy is how long, in milliseconds, sqlite waits on a file lock held by
// another process before failing with SQLITE_BUSY. Contention between
// connections of the same process surfaces as SQLITE_LOCKED instead, which
// the timeout does not cover; building go-sqlite3 with the
// sqlite_unlock_notify tag makes those block until the shared cache lock
// frees up.
const busy = 1000

// An Accessor owns one database handle, opened read-only or read-write.
type Accessor struct {
	Handle   *sql.DB
	readOnly bool
}

// An idemFn runs inside a transaction. It must be idempotent: Atomic calls
// it again whenever lock contention rolls the transaction back.
type idemFn func(tx *sql.Tx) error

const (
	warnTxRetries = 1
	maxTxRetries  = 1000
)

// MakeAccessor opens the named sqlite database, creating it if necessary.
func MakeAccessor(dbfilename string, readOnly bool, inMemory bool) (Accessor, error) {
	handle, err := sql.Open("sqlite3", URI(dbfilename, readOnly, inMemory)+"&_journal_mode=wal")
	if err != nil {
		return Accessor{}, err
	}
	return Accessor{Handle: handle, readOnly: readOnly}, nil
}

// Close releases the underlying handle.
func (db Accessor) Close() {
	db.Handle.Close()
}

// Atomic runs fn inside a serializable transaction, retrying for as long as
// sqlite reports the database busy or locked. A write transaction is durable
// once Atomic returns without error.
func (db Accessor) Atomic(fn idemFn) (err error) {
	mode := "w"
	if db.readOnly {
		mode = "r"
	}

	defer func(start time.Time) {
		if d := time.Since(start); d > time.Second {
			logging.Base().Warnf("dbatomic(%s): tx took %v", mode, d)
		} else if d > time.Millisecond {
			logging.Base().Debugf("dbatomic(%s): tx took %v", mode, d)
		}
	}(time.Now())

	// pin one connection so every BeginTx attempt lands on it
	ctx := context.Background()
	conn, err := db.Handle.Conn(ctx)
	if err != nil {
		return
	}
	defer conn.Close()

	for attempt := 0; ; attempt++ {
		if attempt > 0 && attempt%warnTxRetries == 0 {
			if attempt >= maxTxRetries {
				logging.Base().Errorf("dbatomic(%s): gave up after %d retries: %v", mode, attempt, err)
				return
			}
			logging.Base().Warnf("dbatomic(%s): %d retries so far: %v", mode, attempt, err)
		}

		var tx *sql.Tx
		tx, err = conn.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable, ReadOnly: db.readOnly})
		if dbretry(err) {
			continue
		} else if err != nil {
			return
		}

		err = runProtected(fn, tx)
		if err != nil {
			tx.Rollback()
			if dbretry(err) {
				continue
			}
			return
		}

		err = tx.Commit()
		if err == nil || !dbretry(err) {
			return
		}
	}
}

// runProtected invokes fn and converts a panic into a returned error, since
// database/sql swallows panics raised inside an open transaction.
func runProtected(fn idemFn, tx *sql.Tx) (err error) {
	defer func() {
		if r := recover(); r != nil {
			var ok bool
			if err, ok = r.(error); !ok {
				err = fmt.Errorf("%v", r)
			}
		}
	}()
	return fn(tx)
}

// URI assembles the sqlite connection string for filename.
func URI(filename string, readOnly bool, memory bool) string {
	uri := fmt.Sprintf("file:%s?_busy_timeout=%d&_synchronous=full", filename, busy)
	if !readOnly {
		uri += "&_txlock=immediate"
	}
	if memory {
		uri += "&mode=memory&cache=shared"
	}
	return uri
}

// dbretry reports whether err is a transient sqlite failure worth another
// attempt.
func dbretry(err error) bool {
	var serr sqlite3.Error
	if !errors.As(err, &serr) {
		return false
	}
	return serr.Code == sqlite3.ErrLocked || serr.Code == sqlite3.ErrBusy
}
