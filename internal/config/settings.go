// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// Keys recognized in the JSON settings file. Any other key is ignored.
const (
	KeySourceDirectory = "SourceDirectory"
	KeyFailureFolder   = "FailureFolder"
	KeyVideoExtensions = "VideoFileExtensions"
	KeyDeleteProcessed = "DeletedProcessed"
	KeyRetryLimit      = "RetryLimit"
	KeyRetryWaitMs     = "RetryWaitMs"
	KeyLogLevel        = "LogLevel"
)

// Log levels accepted by the LogLevel setting.
const (
	LevelTrace = "TRACE"
	LevelDebug = "DEBUG"
	LevelInfo  = "INFO"
	LevelWarn  = "WARN"
	LevelError = "ERROR"
)

// Defaults and bounds applied while resolving settings.
const (
	DefaultSourceDirectory = "."
	DefaultFailureFolder   = "./failure"
	DefaultDeleteProcessed = false

	DefaultRetryLimit = 5
	MinRetryLimit     = 0
	MaxRetryLimit     = 100

	DefaultRetryWaitMs = 60000
	MinRetryWaitMs     = 0
	MaxRetryWaitMs     = 600000

	DefaultLogLevel = LevelInfo
)

// DefaultVideoExtensions returns the extensions used when the settings file
// does not provide a valid list.
func DefaultVideoExtensions() []string {
	return []string{"avi", "wmv", "mp4", "mkv"}
}

// ValidLogLevels returns the whitelist for the LogLevel setting, from the
// most to the least verbose.
func ValidLogLevels() []string {
	return []string{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError}
}

// Settings is the resolved, validated configuration snapshot. A Settings
// value is never modified after [Load] builds it; accessors hand out copies
// of reference-typed fields.
type Settings struct {
	sourceDirectory string
	failureFolder   string
	videoExtensions []string
	deleteProcessed bool
	retryLimit      int
	retryWaitMs     int
	logLevel        string
}

// SourceDirectory is the absolute directory scanned for video files.
func (s *Settings) SourceDirectory() string { return s.sourceDirectory }

// FailureFolder is the directory that files failing processing are moved to.
func (s *Settings) FailureFolder() string { return s.failureFolder }

// VideoExtensions lists the file extensions, without a leading dot, treated
// as videos.
func (s *Settings) VideoExtensions() []string { return slices.Clone(s.videoExtensions) }

// DeleteProcessed reports whether successfully processed files are removed.
func (s *Settings) DeleteProcessed() bool { return s.deleteProcessed }

// RetryLimit is the number of attempts made for a failing file, in [0,100].
func (s *Settings) RetryLimit() int { return s.retryLimit }

// RetryWaitMs is the pause between attempts in milliseconds, in [0,600000].
func (s *Settings) RetryWaitMs() int { return s.retryWaitMs }

// RetryWait is RetryWaitMs as a time.Duration.
func (s *Settings) RetryWait() time.Duration {
	return time.Duration(s.retryWaitMs) * time.Millisecond
}

// LogLevel is one of the values returned by [ValidLogLevels].
func (s *Settings) LogLevel() string { return s.logLevel }

const settingsBorder = "------------------------------"

// String renders a bordered, human-readable dump of every setting. The
// format is decorative and not meant to be parsed back.
func (s *Settings) String() string {
	lines := []string{
		settingsBorder,
		"ConfigValues",
		settingsBorder,
		fmt.Sprintf("%s: '%s'", KeySourceDirectory, s.sourceDirectory),
		fmt.Sprintf("%s: '%s'", KeyFailureFolder, s.failureFolder),
		fmt.Sprintf("%s: '[%s]'", KeyVideoExtensions, strings.Join(s.videoExtensions, ", ")),
		fmt.Sprintf("%s: '%t'", KeyDeleteProcessed, s.deleteProcessed),
		fmt.Sprintf("%s: '%d'", KeyRetryLimit, s.retryLimit),
		fmt.Sprintf("%s: '%d'", KeyRetryWaitMs, s.retryWaitMs),
		fmt.Sprintf("%s: '%s'", KeyLogLevel, s.logLevel),
	}

	return strings.Join(lines, "\n")
}
