// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// defaultDotEnvPath is tried when no .env file is configured explicitly.
const defaultDotEnvPath = ".env"

// parseEnv populates cfg from the `env` and `envPrefix` tags of
// [StructuredConfig] and its groups.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// loadDotEnv copies the variables of the .env file at path into the process
// environment. Variables already set in the environment keep their value.
//
// An empty path falls back to ./.env, which may be absent; a configured path
// that cannot be read is an error.
func loadDotEnv(path string) error {
	explicit := path != ""
	if !explicit {
		path = defaultDotEnvPath
	}

	err := godotenv.Load(path)
	if err == nil || (!explicit && errors.Is(err, fs.ErrNotExist)) {
		return nil
	}

	return fmt.Errorf("error loading .env file %q: %w", path, err)
}
