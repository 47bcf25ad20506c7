// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"slices"
)

// resolver turns a decoded settings document into [Settings]. Relative path
// settings are joined to anchor, which is always absolute.
type resolver struct {
	anchor string
}

// DefaultAnchorDir returns the directory two levels above the one holding
// the running executable. It falls back to the working directory when the
// executable cannot be located.
func DefaultAnchorDir() string {
	exe, err := os.Executable()
	if err != nil {
		if wd, wdErr := os.Getwd(); wdErr == nil {
			return wd
		}
		return string(filepath.Separator)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}

	return filepath.Clean(filepath.Join(filepath.Dir(exe), "..", ".."))
}

func newResolver(anchorDir string) (*resolver, error) {
	if anchorDir == "" {
		anchorDir = DefaultAnchorDir()
	}

	abs, err := filepath.Abs(anchorDir)
	if err != nil {
		return nil, err
	}

	return &resolver{anchor: abs}, nil
}

// resolve never fails: every field that does not match its rule falls back to
// its default without a trace.
func (r *resolver) resolve(doc map[string]any) *Settings {
	return &Settings{
		sourceDirectory: r.directory(lookup(doc, KeySourceDirectory), DefaultSourceDirectory),
		failureFolder:   r.directory(lookup(doc, KeyFailureFolder), DefaultFailureFolder),
		videoExtensions: stringList(lookup(doc, KeyVideoExtensions), DefaultVideoExtensions()),
		deleteProcessed: boolean(lookup(doc, KeyDeleteProcessed), DefaultDeleteProcessed),
		retryLimit:      integer(lookup(doc, KeyRetryLimit), DefaultRetryLimit, MinRetryLimit, MaxRetryLimit),
		retryWaitMs:     integer(lookup(doc, KeyRetryWaitMs), DefaultRetryWaitMs, MinRetryWaitMs, MaxRetryWaitMs),
		logLevel:        enum(lookup(doc, KeyLogLevel), DefaultLogLevel, ValidLogLevels()),
	}
}

// directory returns an absolute configured path verbatim; relative paths,
// including the default, are joined to the anchor and cleaned.
func (r *resolver) directory(v value, def string) string {
	if v.kind == kindString {
		if filepath.IsAbs(v.str) {
			return v.str
		}
		return filepath.Join(r.anchor, v.str)
	}

	return filepath.Join(r.anchor, def)
}

// stringList accepts only a list whose every element is a string. An empty
// list qualifies.
func stringList(v value, def []string) []string {
	if v.kind != kindList {
		return def
	}

	out := make([]string, 0, len(v.list))
	for _, elem := range v.list {
		if elem.kind != kindString {
			return def
		}
		out = append(out, elem.str)
	}

	return out
}

func boolean(v value, def bool) bool {
	if v.kind != kindBool {
		return def
	}
	return v.b
}

// integer accepts only integer literals and clamps them into [lo, hi].
func integer(v value, def, lo, hi int) int {
	if v.kind != kindInt {
		return def
	}
	return int(clamp(int64(lo), v.i, int64(hi)))
}

func enum(v value, def string, valid []string) string {
	if v.kind == kindString && slices.Contains(valid, v.str) {
		return v.str
	}
	return def
}

// clamp returns the median of {lo, v, hi}. With lo <= hi that is v limited
// to the closed range.
func clamp(lo, v, hi int64) int64 {
	vals := []int64{lo, v, hi}
	slices.Sort(vals)
	return vals[1]
}
