// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-notes/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// StateStore keeps the saved state bundle of the notes screen between a
// teardown and the following recreation. It holds at most one bundle.
type StateStore interface {
	// Save replaces the stored bundle with snapshot.
	Save(ctx context.Context, snapshot models.Snapshot) error
	// Load returns the stored bundle or [ErrNoSavedState].
	Load(ctx context.Context) (models.Snapshot, error)
	// Clear removes the stored bundle. Clearing an empty store is not an error.
	Clear(ctx context.Context) error
	// Close releases the resources held by the store.
	Close() error
}
