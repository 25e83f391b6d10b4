package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/service"
	"github.com/MKhiriev/go-notes/internal/tui"
	"github.com/MKhiriev/go-notes/models"
)

var ErrNilScreen = errors.New("screen is nil")

type App struct {
	services *service.Services
	screen   Screen
	logger   *logger.Logger
	signals  []os.Signal
}

func NewApp(services *service.Services, screen Screen, log *logger.Logger) (*App, error) {
	if screen == nil {
		return nil, ErrNilScreen
	}
	return &App{
		services: services,
		screen:   screen,
		logger:   log,
		signals:  []os.Signal{os.Interrupt, syscall.SIGTERM, syscall.SIGHUP},
	}, nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), a.signals...)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	// ctx is cancelled by teardown, the bundle store must still be reachable.
	storeCtx := context.WithoutCancel(ctx)

	restored := a.restore(storeCtx)
	for {
		res, err := a.screen.Run(ctx, restored)
		if err != nil {
			return fmt.Errorf("notes screen: %w", err)
		}
		a.logger.Info().
			Stringer("exit", res.Exit).
			Int("notes", len(res.Snapshot.Notes)).
			Msg("notes screen finished")

		switch res.Exit {
		case tui.ExitRecreate:
			restored = a.recreate(storeCtx, res.Snapshot)
		case tui.ExitClosed:
			if err = a.services.SavedStateService.Discard(storeCtx); err != nil {
				return fmt.Errorf("discard saved state: %w", err)
			}
			return nil
		default:
			if err = a.services.SavedStateService.Save(storeCtx, res.Snapshot); err != nil {
				return fmt.Errorf("save state on teardown: %w", err)
			}
			return nil
		}
	}
}

// recreate passes snapshot through the bundle store, the same path a
// teardown and relaunch take. If the store fails the snapshot is handed over
// directly.
func (a *App) recreate(ctx context.Context, snapshot models.Snapshot) *models.Snapshot {
	if err := a.services.SavedStateService.Save(ctx, snapshot); err != nil {
		a.logger.Warn().Err(err).Msg("save state before recreation failed")
		return &snapshot
	}
	if restored := a.restore(ctx); restored != nil {
		return restored
	}
	return &snapshot
}

func (a *App) restore(ctx context.Context) *models.Snapshot {
	snapshot, ok, err := a.services.SavedStateService.Restore(ctx)
	if err != nil {
		a.logger.Warn().Err(err).Msg("restore saved state failed, starting fresh")
		return nil
	}
	if !ok {
		return nil
	}
	return &snapshot
}
