// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import "github.com/google/uuid"

// newRunID returns a time-ordered UUIDv7, falling back to a random UUIDv4
// when the v7 generator fails.
func newRunID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
