// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package jsonfile reads a JSON document from disk into generic Go values.
//
// Numbers are decoded as json.Number rather than float64 so that callers can
// still tell integer literals from fractional ones.
package jsonfile

//go:generate mockgen -source=jsonfile.go -destination=../mock/file_loader_mock.go -package=mock

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// FileLoader loads and decodes a JSON file.
type FileLoader interface {
	// Load returns the decoded top-level JSON value stored at path.
	Load(path string) (any, error)
}

// Loader is the file-system backed [FileLoader].
type Loader struct{}

// NewLoader returns a ready to use *Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load implements [FileLoader] by calling the package level [Load].
func (l *Loader) Load(path string) (any, error) {
	return Load(path)
}

// Load opens path and decodes exactly one JSON value from it.
//
// Errors are classified as [ErrNotFound], [ErrPermissionDenied] or [ErrParse]
// and joined with the original cause.
func Load(path string) (any, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, classifyOpenError(err)
	}
	if !info.Mode().IsRegular() {
		return nil, errors.Join(ErrNotFound, fmt.Errorf("%q is not a regular file", path))
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, classifyOpenError(err)
	}
	defer file.Close()

	return decode(file)
}

func decode(r io.Reader) (any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			return nil, errors.Join(ErrPermissionDenied, err)
		}
		return nil, errors.Join(ErrParse, err)
	}

	// a second value (or garbage) after the document is malformed input
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("unexpected data after top-level value")
		}
		return nil, errors.Join(ErrParse, err)
	}

	return v, nil
}

func classifyOpenError(err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return errors.Join(ErrNotFound, err)
	default:
		return errors.Join(ErrPermissionDenied, err)
	}
}
