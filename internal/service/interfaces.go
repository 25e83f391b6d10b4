package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-notes/models"
)

// SavedStateService is the host side of the screen's save/restore
// contract: it keeps the snapshot taken before a teardown and hands it back
// on the next recreation.
type SavedStateService interface {
	// Restore returns the bundle saved by the previous teardown and
	// consumes it. ok is false when there was none, which is the normal
	// first-launch case.
	Restore(ctx context.Context) (snapshot models.Snapshot, ok bool, err error)
	// Save stores snapshot for the next recreation.
	Save(ctx context.Context, snapshot models.Snapshot) error
	// Discard drops any saved bundle; used when the screen is closed for good.
	Discard(ctx context.Context) error
}
