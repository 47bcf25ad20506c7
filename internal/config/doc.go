// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config resolves the application settings of vidsweep.
//
// Two layers live here:
//
//   - [Options] tells the process where its settings live. It is assembled
//     from built-in defaults, environment variables and command-line flags,
//     in that priority order (later sources override earlier non-zero fields).
//     See [GetOptions].
//   - [Settings] is the validated, immutable snapshot read from the JSON
//     settings file. Every recognized key is checked against the kind of its
//     default; a missing or mistyped value silently falls back to the default,
//     integers are clamped into their range and the log level is whitelisted.
//     See [Load].
//
// Only the three file-level failures ([ErrNotFound], [ErrPermissionDenied],
// [ErrParse]) abort loading.
package config
