// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates opts from environment variables using the caarlos0/env
// library. Fields are mapped via the `env` tags declared on [Options].
// Unset variables leave their fields at the zero value so the merge in
// [optionsBuilder.build] keeps lower-priority values.
func parseEnv(opts *Options) error {
	if err := env.Parse(opts); err != nil {
		return fmt.Errorf("error getting env options: %w", err)
	}

	return nil
}
