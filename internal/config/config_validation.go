// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the merged [Options] can be used to locate settings.
func (o *Options) validate() error {
	if strings.TrimSpace(o.ConfigPath) == "" {
		return ErrEmptyConfigPath
	}

	return nil
}
