// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package finder

import (
	"path/filepath"
	"strings"
)

// Matcher decides whether a file path is selected.
type Matcher interface {
	Match(path string) bool
}

// MatcherFunc adapts an ordinary function to [Matcher].
type MatcherFunc func(path string) bool

// Match calls f(path).
func (f MatcherFunc) Match(path string) bool { return f(path) }

// Extensions matches paths whose extension is one of exts. Comparison is
// case-insensitive and a leading dot in exts is optional, so "mp4", ".mp4"
// and "MP4" are equivalent.
func Extensions(exts ...string) Matcher {
	set := make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		ext = normalizeExt(ext)
		if ext == "" {
			continue
		}
		set[ext] = struct{}{}
	}

	return MatcherFunc(func(path string) bool {
		_, ok := set[normalizeExt(filepath.Ext(path))]
		return ok
	})
}

// And matches paths selected by both a and b.
func And(a, b Matcher) Matcher {
	return MatcherFunc(func(path string) bool {
		return a.Match(path) && b.Match(path)
	})
}

// Or matches paths selected by a, b or both.
func Or(a, b Matcher) Matcher {
	return MatcherFunc(func(path string) bool {
		return a.Match(path) || b.Match(path)
	})
}

// Xor matches paths selected by exactly one of a and b.
func Xor(a, b Matcher) Matcher {
	return MatcherFunc(func(path string) bool {
		return a.Match(path) != b.Match(path)
	})
}

// Filter returns the paths in files selected by m, preserving their order.
func Filter(files []string, m Matcher) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		if m.Match(f) {
			out = append(out, f)
		}
	}
	return out
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
}
