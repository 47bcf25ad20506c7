// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/vidsweep/internal/config"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
}

func resetSettings(t *testing.T) {
	t.Helper()
	config.ResetForTests()
	t.Cleanup(config.ResetForTests)
}

func TestRun_ListsVideosFromRelativeSourceDirectory(t *testing.T) {
	// Arrange
	resetSettings(t)
	anchor := t.TempDir()
	for _, name := range []string{"b.mkv", "a.mp4", "notes.txt", "season1/c.avi"} {
		writeFile(t, filepath.Join(anchor, "videos", name), "x")
	}
	cfg := filepath.Join(t.TempDir(), "appsettings.json")
	writeFile(t, cfg, `{"SourceDirectory": "./videos", "VideoFileExtensions": ["mp4", "mkv", "avi"], "LogLevel": "DEBUG"}`)
	logFile := filepath.Join(t.TempDir(), "vidsweep.log")

	var stdout, stderr bytes.Buffer

	// Act
	err := run(context.Background(), []string{"-c", cfg, "-anchor", anchor, "-log-file", logFile}, &stdout, &stderr)

	// Assert
	require.NoError(t, err)

	out := stdout.String()
	assert.Contains(t, out, "100.0% Completed")
	assert.True(t, strings.HasSuffix(out, strings.Join([]string{
		filepath.Join(anchor, "videos", "a.mp4"),
		filepath.Join(anchor, "videos", "b.mkv"),
		filepath.Join(anchor, "videos", "season1", "c.avi"),
	}, "\n")+"\n"), "unexpected output: %q", out)
	assert.Empty(t, stderr.String())

	logs, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(logs), "settings loaded")
	assert.Contains(t, string(logs), "video file listed")
}

func TestRun_LogsEachVideoAtInfo(t *testing.T) {
	resetSettings(t)
	anchor := t.TempDir()
	writeFile(t, filepath.Join(anchor, "in", "clip.mp4"), "x")
	cfg := filepath.Join(t.TempDir(), "appsettings.json")
	writeFile(t, cfg, `{"SourceDirectory": "in", "VideoFileExtensions": ["mp4"], "LogLevel": "INFO"}`)

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"-c", cfg, "-anchor", anchor}, &stdout, &stderr)

	require.NoError(t, err)
	logs := stderr.String()
	assert.Contains(t, logs, "video file listed")
	assert.Contains(t, logs, `"level":"info"`)
	assert.Contains(t, logs, filepath.Join(anchor, "in", "clip.mp4"))
}

func TestRun_LogLevelFromSettings(t *testing.T) {
	resetSettings(t)
	anchor := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(anchor, "in"), 0o755))
	cfg := filepath.Join(t.TempDir(), "appsettings.json")
	writeFile(t, cfg, `{"SourceDirectory": "in", "LogLevel": "ERROR"}`)

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"-config", cfg, "-anchor", anchor}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Empty(t, stderr.String())
	assert.Contains(t, stdout.String(), "100.0% Completed")
}

func TestRun_MissingSettingsFile(t *testing.T) {
	resetSettings(t)
	cfg := filepath.Join(t.TempDir(), "absent.json")

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"-c", cfg}, &stdout, &stderr)

	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrNotFound)
	assert.Contains(t, stderr.String(), "error loading settings")
	assert.Nil(t, config.Instance())
}

func TestRun_MissingSourceDirectory(t *testing.T) {
	resetSettings(t)
	anchor := t.TempDir()
	cfg := filepath.Join(t.TempDir(), "appsettings.json")
	writeFile(t, cfg, `{"SourceDirectory": "does-not-exist"}`)

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"-c", cfg, "-anchor", anchor}, &stdout, &stderr)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}

func TestRun_BadFlag(t *testing.T) {
	resetSettings(t)

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"-bogus"}, &stdout, &stderr)

	require.Error(t, err)
	assert.Nil(t, config.Instance())
}
