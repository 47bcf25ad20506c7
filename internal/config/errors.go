// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/vidsweep/internal/jsonfile"
)

// Fatal settings-file failures. A [*LoadError] caused by the settings file
// itself matches exactly one of them with errors.Is. A failure to resolve the
// anchor directory matches none, and its [LoadError.Kind] is nil.
var (
	// ErrNotFound indicates that the settings file does not exist.
	ErrNotFound = jsonfile.ErrNotFound
	// ErrPermissionDenied indicates that the settings file could not be read.
	ErrPermissionDenied = jsonfile.ErrPermissionDenied
	// ErrParse indicates that the settings file is not a JSON object.
	ErrParse = jsonfile.ErrParse
)

// Validation errors returned by [Options.validate].
var (
	// ErrEmptyConfigPath indicates that no settings file path survived the
	// merge of defaults, environment and flags.
	ErrEmptyConfigPath = errors.New("settings file path is empty")
)

// LoadError is returned by [Load] when the settings file cannot be used.
// Its message tells the operator what to fix; the wrapped error carries the
// failure kind together with the original cause.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	switch {
	case errors.Is(e.Err, ErrNotFound):
		return fmt.Sprintf("the settings file could not be found at '%s'. "+
			"Please resolve the problem and attempt to run the program again", e.Path)
	case errors.Is(e.Err, ErrPermissionDenied):
		return fmt.Sprintf("the program could not access its settings file at '%s' due to a permissions issue. "+
			"Please resolve the problem and attempt to run the program again", e.Path)
	case errors.Is(e.Err, ErrParse):
		return fmt.Sprintf("the settings file at '%s' could not be parsed as a JSON object: %v. "+
			"Please fix the file and attempt to run the program again", e.Path, e.cause())
	default:
		return fmt.Sprintf("the settings file at '%s' could not be loaded: %v", e.Path, e.Err)
	}
}

func (e *LoadError) Unwrap() error { return e.Err }

// cause returns e.Err without its failure kind, joining what is left with
// "; " so that the message stays on one line.
func (e *LoadError) cause() string {
	joined, ok := e.Err.(interface{ Unwrap() []error })
	if !ok {
		return e.Err.Error()
	}

	parts := make([]string, 0, len(joined.Unwrap()))
	for _, err := range joined.Unwrap() {
		if err == ErrNotFound || err == ErrPermissionDenied || err == ErrParse {
			continue
		}
		parts = append(parts, err.Error())
	}
	if len(parts) == 0 {
		return e.Err.Error()
	}
	return strings.Join(parts, "; ")
}

// Kind returns the failure kind carried by e, or nil if it has none.
func (e *LoadError) Kind() error {
	for _, kind := range []error{ErrNotFound, ErrPermissionDenied, ErrParse} {
		if errors.Is(e.Err, kind) {
			return kind
		}
	}
	return nil
}
