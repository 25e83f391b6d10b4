// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-notes/internal/tui"
	"github.com/MKhiriev/go-notes/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

// Screen shows the notes screen once. restored is nil for a fresh screen.
// Cancelling ctx must tear the screen down and still return its result.
type Screen interface {
	Run(ctx context.Context, restored *models.Snapshot) (tui.Result, error)
}
