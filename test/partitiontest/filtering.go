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

// Package partitiontest lets CI run a deterministic slice of the test
// suite: with PARTITION_TOTAL and PARTITION_ID set, every test hashes into
// exactly one partition and skips everywhere else.
package partitiontest

import (
	"hash/fnv"
	"os"
	"runtime"
	"strconv"
	"testing"
)

// PartitionTest skips t unless it hashes into the partition this process
// was assigned. Without the environment variables it does nothing.
func PartitionTest(t *testing.T) {
	total, err := strconv.Atoi(os.Getenv("PARTITION_TOTAL"))
	if err != nil || total <= 0 {
		return
	}
	id, err := strconv.Atoi(os.Getenv("PARTITION_ID"))
	if err != nil {
		return
	}

	// hashing the caller's file along with the name keeps identically
	// named tests in different packages apart
	_, file, _, _ := runtime.Caller(1)
	h := fnv.New64a()
	h.Write([]byte(file + ":" + t.Name()))
	if bucket := h.Sum64() % uint64(total); bucket != uint64(id) {
		t.Skipf("skipping: assigned to partition %d", bucket)
	}
}
