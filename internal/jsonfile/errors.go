// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package jsonfile

import "errors"

// Failure kinds returned by [Load]. Each returned error joins one of these
// with the underlying cause, so both can be matched with errors.Is.
var (
	// ErrNotFound indicates that the path does not exist or is not a regular file.
	ErrNotFound = errors.New("json file not found")
	// ErrPermissionDenied indicates that the file exists but could not be read.
	ErrPermissionDenied = errors.New("json file access denied")
	// ErrParse indicates that the file content is not a single valid JSON value.
	ErrParse = errors.New("json file could not be parsed")
)
