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

package db

// A Pair bundles the two accessors a store keeps open on one database:
// Rdb for reads that may run alongside a writer, Wdb for the serialized
// read-modify-write transactions.
type Pair struct {
	Rdb Accessor
	Wdb Accessor
}

// OpenPair opens filename twice, read-only and writable.
func OpenPair(filename string, memory bool) (Pair, error) {
	rdb, err := MakeAccessor(filename, true, memory)
	if err != nil {
		return Pair{}, err
	}
	wdb, err := MakeAccessor(filename, false, memory)
	if err != nil {
		rdb.Close()
		return Pair{}, err
	}
	return Pair{Rdb: rdb, Wdb: wdb}, nil
}

// Close closes whichever accessors are open. Closing a partially opened
// Pair is fine.
func (p Pair) Close() {
	if p.Rdb.Handle != nil {
		p.Rdb.Close()
	}
	if p.Wdb.Handle != nil {
		p.Wdb.Close()
	}
}
