// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/models"
)

// fileStateStore keeps the bundle as a JSON document at path. The file is
// written to a temporary sibling and renamed into place, so a reader never
// sees a half-written bundle.
type fileStateStore struct {
	path   string
	logger *logger.Logger

	mu sync.Mutex
}

// NewFileStateStore returns a [StateStore] backed by the JSON file at path.
// The file and its directory are created on the first Save.
func NewFileStateStore(path string, log *logger.Logger) StateStore {
	return &fileStateStore{path: path, logger: log}
}

func (s *fileStateStore) Save(ctx context.Context, snapshot models.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create saved state dir: %w", err)
	}

	payload, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("encode saved state: %w", err)
	}

	tmp := s.path + ".tmp"
	if err = os.WriteFile(tmp, payload, 0o600); err != nil {
		return fmt.Errorf("write saved state file: %w", err)
	}
	if err = os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace saved state file: %w", err)
	}

	s.logger.Debug().Str("path", s.path).Int("notes", len(snapshot.Notes)).Msg("saved state written")
	return nil
}

func (s *fileStateStore) Load(ctx context.Context) (models.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return models.Snapshot{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return models.Snapshot{}, ErrNoSavedState
		}
		return models.Snapshot{}, fmt.Errorf("read saved state file: %w", err)
	}

	var snapshot models.Snapshot
	if err = json.Unmarshal(data, &snapshot); err != nil {
		return models.Snapshot{}, fmt.Errorf("decode saved state file: %w", err)
	}

	return snapshot, nil
}

func (s *fileStateStore) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove saved state file: %w", err)
	}
	return nil
}

func (s *fileStateStore) Close() error {
	return nil
}
