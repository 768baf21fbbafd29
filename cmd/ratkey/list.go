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
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/algorand/go-rational"
	"github.com/algorand/go-rational/config"
	"github.com/algorand/go-rational/logging"
	"github.com/algorand/go-rational/rowkey"
)

const yellow = color.FgYellow

var (
	dataDir      string
	insertBefore string
	insertAfter  string
)

func init() {
	listCmd.AddCommand(initCmd)
	listCmd.AddCommand(appendCmd)
	listCmd.AddCommand(prependCmd)
	listCmd.AddCommand(insertCmd)
	listCmd.AddCommand(moveCmd)
	listCmd.AddCommand(removeCmd)
	listCmd.AddCommand(showCmd)
	listCmd.AddCommand(exportCmd)
	listCmd.AddCommand(importCmd)
	listCmd.AddCommand(listsCmd)

	listCmd.PersistentFlags().StringVarP(&dataDir, "datadir", "d", "", "Data directory for the key store (overrides RATKEY_DATA)")
	insertCmd.Flags().StringVar(&insertBefore, "before", "", "Insert just before this row")
	insertCmd.Flags().StringVar(&insertAfter, "after", "", "Insert just after this row")
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Manage ordered lists of row keys",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.HelpFunc()(cmd, args)
	},
}

// resolveDataDir figures out what data directory to use.
// If not specified on cmdline with '-d', look for default in environment.
func resolveDataDir() string {
	dir := dataDir
	if dir == "" {
		dir = os.Getenv("RATKEY_DATA")
	}
	if dir == "" {
		dir = "."
	}
	return dir
}

func openStore() *rowkey.Store {
	dir := resolveDataDir()
	cfg, err := config.LoadConfigFromDisk(dir)
	if err != nil && !os.IsNotExist(err) {
		reportErrorf("cannot load config from %s: %v", dir, err)
	}

	log := logging.Base()
	log.SetLevel(logging.Level(cfg.BaseLoggerDebugLevel))
	if cfg.LogSizeLimit > 0 {
		liveLog, archive := cfg.ResolveLogPaths(dir)
		log.SetOutput(logging.MakeCyclicFileWriter(liveLog, archive, cfg.LogSizeLimit))
	}

	store, err := rowkey.MakeStore(cfg.KeyStorePath(dir), false, cfg, log)
	if err != nil {
		reportErrorf("cannot open key store in %s: %v", dir, err)
	}
	return store
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a data directory for ratkey",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		dir := resolveDataDir()
		if err := os.MkdirAll(dir, 0700); err != nil {
			reportErrorf("cannot create %s: %v", dir, err)
		}
		cfg, err := config.LoadConfigFromDisk(dir)
		if err != nil {
			if !os.IsNotExist(err) {
				reportErrorf("cannot load config from %s: %v", dir, err)
			}
			if err = cfg.SaveToDisk(dir); err != nil {
				reportErrorf("cannot write config to %s: %v", dir, err)
			}
		}
		store, err := rowkey.MakeStore(cfg.KeyStorePath(dir), false, cfg, logging.Base())
		if err != nil {
			reportErrorf("cannot create key store in %s: %v", dir, err)
		}
		store.Close()
		reportInfof("initialized %s", dir)
	},
}

var appendCmd = &cobra.Command{
	Use:   "append LIST ID",
	Short: "Add a row at the end of a list",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		store := openStore()
		defer store.Close()
		key, err := store.Append(args[0], args[1])
		if err != nil {
			reportErrorf("%v", err)
		}
		reportInfoln(key)
	},
}

var prependCmd = &cobra.Command{
	Use:   "prepend LIST ID",
	Short: "Add a row at the start of a list",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		store := openStore()
		defer store.Close()
		key, err := store.Prepend(args[0], args[1])
		if err != nil {
			reportErrorf("%v", err)
		}
		reportInfoln(key)
	},
}

var insertCmd = &cobra.Command{
	Use:   "insert LIST ID (--before REF | --after REF)",
	Short: "Add a row next to an existing one",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if (insertBefore == "") == (insertAfter == "") {
			reportErrorf("specify exactly one of --before and --after")
		}
		store := openStore()
		defer store.Close()
		var key rational.Rat
		var err error
		if insertBefore != "" {
			key, err = store.InsertBefore(args[0], args[1], insertBefore)
		} else {
			key, err = store.InsertAfter(args[0], args[1], insertAfter)
		}
		if err != nil {
			reportErrorf("%v", err)
		}
		reportInfoln(key)
	},
}

var moveCmd = &cobra.Command{
	Use:   "move LIST ID [BEFORE]",
	Short: "Move a row just before another row, or to the end",
	Args:  cobra.RangeArgs(2, 3),
	Run: func(cmd *cobra.Command, args []string) {
		beforeID := ""
		if len(args) == 3 {
			beforeID = args[2]
		}
		store := openStore()
		defer store.Close()
		key, err := store.Move(args[0], args[1], beforeID)
		if err != nil {
			reportErrorf("%v", err)
		}
		reportInfoln(key)
	},
}

var removeCmd = &cobra.Command{
	Use:   "remove LIST ID",
	Short: "Remove a row from a list",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		store := openStore()
		defer store.Close()
		if err := store.Remove(args[0], args[1]); err != nil {
			reportErrorf("%v", err)
		}
	},
}

var showCmd = &cobra.Command{
	Use:   "show LIST",
	Short: "Print the rows of a list in order",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store := openStore()
		defer store.Close()
		entries, err := store.Entries(args[0])
		if err != nil {
			reportErrorf("%v", err)
		}
		for i, e := range entries {
			key := fmt.Sprintf("%-12s", e.Key)
			if e.Key.Den == 1 {
				key = color.New(yellow).Sprint(key)
			}
			fmt.Printf("%3d  %s %s\n", i, key, e.ID)
		}
	},
}

var exportCmd = &cobra.Command{
	Use:   "export LIST FILE",
	Short: "Write a snapshot of a list (use - for stdout)",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		store := openStore()
		defer store.Close()
		data, err := store.ExportSnapshot(args[0])
		if err != nil {
			reportErrorf("%v", err)
		}
		if err = writeFile(args[1], data, 0600); err != nil {
			reportErrorf("cannot write %s: %v", args[1], err)
		}
	},
}

var importCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Replace a list from a snapshot (use - for stdin)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		data, err := readFile(args[0])
		if err != nil {
			reportErrorf("cannot read %s: %v", args[0], err)
		}
		store := openStore()
		defer store.Close()
		list, n, err := store.ImportSnapshot(data)
		if err != nil {
			reportErrorf("%v", err)
		}
		reportInfof("imported %d rows into %s", n, list)
	},
}

var listsCmd = &cobra.Command{
	Use:   "lists",
	Short: "Print the names of all lists in the store",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		store := openStore()
		defer store.Close()
		lists, err := store.Lists()
		if err != nil {
			reportErrorf("%v", err)
		}
		for _, name := range lists {
			fmt.Println(name)
		}
	},
}
