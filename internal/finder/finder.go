// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package finder lists the files below a directory and narrows them down
// with composable [Matcher] values.
package finder

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/MKhiriev/vidsweep/internal/logger"
)

// ErrNotADirectory is returned by [Finder.FindAll] when the search path is
// missing or is not a directory.
var ErrNotADirectory = errors.New("not a directory")

// Finder accumulates the regular files found by successive [Finder.FindAll]
// calls. It is not safe for concurrent use.
type Finder struct {
	log   *logger.Logger
	files []string
}

// New returns an empty *Finder that logs through log.
func New(log *logger.Logger) *Finder {
	return &Finder{log: log}
}

// FindAll walks dir recursively and records the path of every regular file
// below it. Paths already recorded by earlier calls are kept.
//
// A symlinked dir is walked through its target, and recorded paths stay
// under dir. Symlinks to regular files are recorded; symlinked
// subdirectories are not descended into. Subdirectories that cannot be read
// are logged and skipped.
//
// The walk stops early with ctx.Err() when ctx is cancelled; files seen up to
// that point stay recorded.
func (f *Finder) FindAll(ctx context.Context, dir string) (*Finder, error) {
	f.log.Info().Str("dir", dir).Msg("compiling list of all files in directory")

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		f.log.Info().Str("dir", dir).Msg("directory does not exist")
		return f, fmt.Errorf("%w: %q", ErrNotADirectory, dir)
	}

	root, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return f, fmt.Errorf("error resolving %q: %w", dir, err)
	}

	found := 0
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if d != nil && d.IsDir() && path != root {
				f.log.Info().Err(walkErr).Str("dir", path).Msg("skipping unreadable directory")
				return filepath.SkipDir
			}
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if !isRegularFile(path, d) {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		path = filepath.Join(dir, rel)

		f.files = append(f.files, path)
		found++
		f.log.Trace().Str("file", path).Msg("file found")
		return nil
	})
	if err != nil {
		return f, fmt.Errorf("error walking %q: %w", dir, err)
	}

	f.log.Debug().Str("dir", dir).Int("files", found).Msg("directory listed")
	return f, nil
}

// isRegularFile reports whether d is a regular file or a symlink to one.
func isRegularFile(path string, d fs.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Files returns every recorded path in lexical order.
func (f *Finder) Files() []string {
	files := slices.Clone(f.files)
	slices.Sort(files)
	return files
}

// FilesWithExtensions returns the recorded paths whose extension is one of
// exts, in lexical order. See [Extensions] for the comparison rules.
func (f *Finder) FilesWithExtensions(exts []string) []string {
	return f.FilesMatching(Extensions(exts...))
}

// FilesMatching returns the recorded paths selected by m, in lexical order.
func (f *Finder) FilesMatching(m Matcher) []string {
	return Filter(f.Files(), m)
}
