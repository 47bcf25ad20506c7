// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// DefaultConfigPath is the settings file looked up when neither the
// environment nor the flags name one.
const DefaultConfigPath = "appsettings.json"

// Options holds the process-level knobs that decide where settings and logs
// live. It is populated by merging defaults, environment variables and
// command-line flags.
//
// Struct tags:
//   - env: environment variable name read by caarlos0/env.
type Options struct {
	// ConfigPath is the path of the JSON settings file handed to [Load].
	// Env: VIDSWEEP_CONFIG
	ConfigPath string `env:"VIDSWEEP_CONFIG"`

	// AnchorDir is the base directory that relative path settings are
	// resolved against. Empty means [DefaultAnchorDir].
	// Env: VIDSWEEP_ANCHOR_DIR
	AnchorDir string `env:"VIDSWEEP_ANCHOR_DIR"`

	// LogFile is the file log entries are appended to. Empty means stderr.
	// Env: VIDSWEEP_LOG_FILE
	LogFile string `env:"VIDSWEEP_LOG_FILE"`
}

func defaultOptions() *Options {
	return &Options{
		ConfigPath: DefaultConfigPath,
	}
}

// GetOptions loads, merges, and validates the process options from all
// available sources in the following priority order (last source wins for
// non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags parsed from args (without the program name)
//
// The returned error wraps [flag.ErrHelp] when args ask for usage.
func GetOptions(args []string) (*Options, error) {
	return newOptionsBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		build()
}
