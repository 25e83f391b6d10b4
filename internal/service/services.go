package service

import (
	"github.com/MKhiriev/go-notes/internal/config"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/store"
)

// Services groups the services the client runtime depends on.
type Services struct {
	SavedStateService SavedStateService
}

// NewServices wires services over stateStore.
func NewServices(stateStore store.StateStore, cfg config.Storage, logger *logger.Logger) *Services {
	return &Services{
		SavedStateService: NewSavedStateService(stateStore, cfg.Timeout, logger),
	}
}
