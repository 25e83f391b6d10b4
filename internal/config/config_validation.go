// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] can start the
// application.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.App.Title) == "" {
		return ErrInvalidAppConfigs
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	return cfg.Storage.validate()
}

func (s Storage) validate() error {
	if s.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive", ErrInvalidStorageConfigs)
	}

	switch s.Backend {
	case BackendMemory:
		return nil
	case BackendFile:
		if s.Files.StateFile == "" {
			return fmt.Errorf("%w: state file is required for the file backend", ErrInvalidStorageConfigs)
		}
	case BackendSQLite:
		// an in-memory database dies with the process, same as the memory backend
		if s.DB.DSN == "" || strings.Contains(s.DB.DSN, "memory") {
			return fmt.Errorf("%w: sqlite backend needs a file DSN", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidStorageConfigs, s.Backend)
	}

	return nil
}
