// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/store"
	"github.com/MKhiriev/go-notes/models"
)

type savedStateService struct {
	store   store.StateStore
	timeout time.Duration
	logger  *logger.Logger
}

// NewSavedStateService returns a [SavedStateService] over stateStore. Every
// store call is bounded by timeout.
func NewSavedStateService(stateStore store.StateStore, timeout time.Duration, log *logger.Logger) SavedStateService {
	return &savedStateService{
		store:   stateStore,
		timeout: timeout,
		logger:  log,
	}
}

func (s *savedStateService) Restore(ctx context.Context) (models.Snapshot, bool, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	snapshot, err := s.store.Load(ctx)
	if errors.Is(err, store.ErrNoSavedState) {
		s.logger.Debug().Msg("no saved state, starting fresh")
		return models.Snapshot{}, false, nil
	}
	if err != nil {
		s.logger.Err(err).Str("func", "savedStateService.Restore").Msg("failed to load saved state")
		return models.Snapshot{}, false, fmt.Errorf("load saved state: %w", err)
	}

	// a bundle is delivered once; the next teardown saves a fresh one
	if err = s.store.Clear(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("failed to consume saved state")
	}

	s.logger.Info().Int("notes", len(snapshot.Notes)).Msg("saved state restored")
	return snapshot, true, nil
}

func (s *savedStateService) Save(ctx context.Context, snapshot models.Snapshot) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.store.Save(ctx, snapshot); err != nil {
		s.logger.Err(err).Str("func", "savedStateService.Save").Msg("failed to save state")
		return fmt.Errorf("save state: %w", err)
	}

	s.logger.Info().Int("notes", len(snapshot.Notes)).Msg("state saved")
	return nil
}

func (s *savedStateService) Discard(ctx context.Context) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.store.Clear(ctx); err != nil {
		s.logger.Err(err).Str("func", "savedStateService.Discard").Msg("failed to discard saved state")
		return fmt.Errorf("discard saved state: %w", err)
	}

	s.logger.Debug().Msg("saved state discarded")
	return nil
}

func (s *savedStateService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}
