// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
)

// ParseFlags parses the command-line options in args.
//
// Flags:
//
//	-c/-config settings file path
//	-anchor    base directory for relative path settings
//	-log-file  file to append logs to (stderr when empty)
//
// Unset flags are left empty so that they never override environment values.
func ParseFlags(args []string) (*Options, error) {
	var configPath, anchorDir, logFile string

	fs := flag.NewFlagSet("vidsweep", flag.ContinueOnError)
	fs.StringVar(&configPath, "c", "", "JSON settings file path")
	fs.StringVar(&configPath, "config", "", "JSON settings file path (alias)")
	fs.StringVar(&anchorDir, "anchor", "", "Base directory for relative path settings")
	fs.StringVar(&logFile, "log-file", "", "Append logs to this file instead of stderr")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &Options{
		ConfigPath: configPath,
		AnchorDir:  anchorDir,
		LogFile:    logFile,
	}, nil
}
