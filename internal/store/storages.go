// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notes/internal/config"
	"github.com/MKhiriev/go-notes/internal/logger"
)

// NewStateStore builds the [StateStore] selected by cfg.Backend:
//   - "memory": [NewMemoryStateStore];
//   - "file": [NewFileStateStore] at cfg.Files.StateFile;
//   - "sqlite": opens cfg.DB.DSN, runs migrations and returns
//     [NewSQLiteStateStore].
func NewStateStore(ctx context.Context, cfg config.Storage, log *logger.Logger) (StateStore, error) {
	log.Info().Str("backend", cfg.Backend).Msg("creating saved state store...")

	switch cfg.Backend {
	case config.BackendMemory:
		return NewMemoryStateStore(), nil
	case config.BackendFile:
		return NewFileStateStore(cfg.Files.StateFile, log), nil
	case config.BackendSQLite:
		db, err := NewConnectSQLite(ctx, cfg.DB, log)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
		if err = db.Migrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		return NewSQLiteStateStore(db, log), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}
