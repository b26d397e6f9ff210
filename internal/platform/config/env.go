// SPDX-License-Identifier: MIT
// Package: genling/internal/platform/config
//
// env.go — GENLING_* environment parsing into tagged structs.

// Package config holds process-level configuration helpers shared by the
// command entry points.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ParseEnv loads configuration from GENLING_* environment variables into
// target, a pointer to a struct with env tags.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
