// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/vidsweep/internal/jsonfile"
)

// instance is the process-wide Settings. It is written once by the first
// successful Load and only read afterwards.
//
// The first write is not synchronized: goroutines racing the very first Load
// may each build their own Settings and the last one stored wins. Callers are
// expected to load settings once during startup, before spawning goroutines.
var instance *Settings

// LoadOption customizes how [Load] reads and resolves the settings file.
type LoadOption func(*loadOptions)

type loadOptions struct {
	loader    jsonfile.FileLoader
	anchorDir string
}

// WithLoader replaces the file-system JSON loader.
func WithLoader(loader jsonfile.FileLoader) LoadOption {
	return func(o *loadOptions) {
		o.loader = loader
	}
}

// WithAnchorDir sets the directory relative path settings are resolved
// against. An empty dir keeps [DefaultAnchorDir].
func WithAnchorDir(dir string) LoadOption {
	return func(o *loadOptions) {
		o.anchorDir = dir
	}
}

// Load returns the process-wide [Settings], reading them from the JSON file
// at path on the first successful call. Once settings exist, later calls
// return the same instance and ignore their arguments.
//
// A failed load leaves no instance behind, so the next call tries again.
// Errors are always of type [*LoadError].
func Load(path string, opts ...LoadOption) (*Settings, error) {
	if instance != nil {
		return instance, nil
	}

	s, err := newSettings(path, opts...)
	if err != nil {
		return nil, err
	}

	instance = s
	return instance, nil
}

// LoadFromOptions calls [Load] with the settings path and anchor directory
// carried by o.
func LoadFromOptions(o *Options, opts ...LoadOption) (*Settings, error) {
	return Load(o.ConfigPath, append([]LoadOption{WithAnchorDir(o.AnchorDir)}, opts...)...)
}

// Instance returns the settings built by [Load], or nil before the first
// successful call.
func Instance() *Settings {
	return instance
}

// ResetForTests drops the process-wide settings so the next [Load] reads its
// file again. It exists for test isolation only.
func ResetForTests() {
	instance = nil
}

func newSettings(path string, opts ...LoadOption) (*Settings, error) {
	o := loadOptions{loader: jsonfile.NewLoader()}
	for _, opt := range opts {
		opt(&o)
	}

	raw, err := o.loader.Load(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	doc, ok := raw.(map[string]any)
	if !ok {
		return nil, &LoadError{
			Path: path,
			Err:  errors.Join(ErrParse, fmt.Errorf("top-level value is %s, want object", toValue(raw).kind)),
		}
	}

	r, err := newResolver(o.anchorDir)
	if err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("error resolving anchor directory: %w", err)}
	}

	return r.resolve(doc), nil
}
