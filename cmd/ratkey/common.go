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

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/algorand/go-rational"
)

const (
	stdoutFilenameValue = "-"
	stdinFileNameValue  = "-"
)

func reportInfoln(args ...interface{}) {
	fmt.Println(args...)
}

func reportInfof(format string, args ...interface{}) {
	fmt.Printf(format+"\n", args...)
}

func reportErrorf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

// parseRatArg bails out of the command on anything ParseRat rejects.
func parseRatArg(arg string) rational.Rat {
	r, err := rational.ParseRat(arg)
	if err != nil {
		reportErrorf("%s: %v", arg, err)
	}
	return r
}

// parseBoundArg is parseRatArg plus the infinity spellings accepted by the
// between command.
func parseBoundArg(arg string) rational.Rat {
	switch arg {
	case "-inf", "+inf", "inf":
		return rational.NoBound
	}
	return parseRatArg(arg)
}

// writeFile is os.WriteFile plus "-" for stdout.
func writeFile(filename string, data []byte, perm os.FileMode) error {
	if filename == stdoutFilenameValue {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(filename, data, perm)
}

// readFile is os.ReadFile plus "-" for stdin.
func readFile(filename string) ([]byte, error) {
	if filename == stdinFileNameValue {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(filename)
}
