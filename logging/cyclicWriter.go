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

package logging

import (
	"fmt"
	"os"

	"github.com/algorand/go-deadlock"
)

// A CyclicFileWriter is an io.Writer that caps the size of a log file. When
// the next write would push the file past the limit, the file moves to the
// archive path and a fresh one is started.
type CyclicFileWriter struct {
	mu      deadlock.Mutex
	file    *os.File
	liveLog string
	archive string
	written uint64
	limit   uint64
}

// MakeCyclicFileWriter opens liveLogFilePath for appending, counting the
// size it already has toward the limit. Rotation renames the file to
// archiveFilePath, replacing any previous archive.
func MakeCyclicFileWriter(liveLogFilePath string, archiveFilePath string, sizeLimitBytes uint64) *CyclicFileWriter {
	cyclic := &CyclicFileWriter{liveLog: liveLogFilePath, archive: archiveFilePath, limit: sizeLimitBytes}

	if fs, err := os.Stat(liveLogFilePath); err == nil {
		cyclic.written = uint64(fs.Size())
	}

	file, err := os.OpenFile(liveLogFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		panic(fmt.Sprintf("CyclicFileWriter: cannot open log file %v", err))
	}
	cyclic.file = file
	return cyclic
}

// Write appends p to the live log, rotating first when p would not fit.
func (cyclic *CyclicFileWriter) Write(p []byte) (int, error) {
	cyclic.mu.Lock()
	defer cyclic.mu.Unlock()

	if uint64(len(p)) > cyclic.limit {
		// no amount of rotation makes room for this entry
		return 0, fmt.Errorf("CyclicFileWriter: entry of %d bytes exceeds the file size limit", len(p))
	}
	if cyclic.written+uint64(len(p)) > cyclic.limit {
		cyclic.rotate()
	}

	n, err := cyclic.file.Write(p)
	cyclic.written += uint64(n)
	return n, err
}

// rotate closes the live log, renames it to the archive path, and opens a
// fresh live log. Either step failing leaves us nowhere to log, so both
// panic.
func (cyclic *CyclicFileWriter) rotate() {
	cyclic.file.Close()
	if err := os.Rename(cyclic.liveLog, cyclic.archive); err != nil {
		panic(fmt.Sprintf("CyclicFileWriter: cannot archive full log %v", err))
	}
	file, err := os.OpenFile(cyclic.liveLog, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
	if err != nil {
		panic(fmt.Sprintf("CyclicFileWriter: cannot open log file %v", err))
	}
	cyclic.file = file
	cyclic.written = 0
}
