package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-notes/internal/client"
	"github.com/MKhiriev/go-notes/internal/config"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/service"
	"github.com/MKhiriev/go-notes/internal/store"
	"github.com/MKhiriev/go-notes/internal/tui"
	"github.com/MKhiriev/go-notes/internal/utils"
	"github.com/MKhiriev/go-notes/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(2)
	}

	log := logger.NewClientLogger("go-notes", cfg.Log.File, cfg.Log.Level)
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	log.Info().
		Str("version", buildInfo.BuildVersion()).
		Str("date", buildInfo.BuildDate()).
		Str("commit", buildInfo.BuildCommit()).
		Str("backend", cfg.Storage.Backend).
		Msg("starting")

	stateStore, err := store.NewStateStore(context.Background(), cfg.Storage, log)
	if err != nil {
		fatal(log, err, "create saved state store")
	}

	services := service.NewServices(stateStore, cfg.Storage, log)

	ui, err := tui.New(cfg.App, utils.NewNoteIDGenerator(), buildInfo, log)
	if err != nil {
		fatal(log, err, "error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		fatal(log, err, "init client app error")
	}

	runErr := app.Run()
	if err = stateStore.Close(); err != nil {
		log.Err(err).Msg("close saved state store")
	}
	if runErr != nil {
		fatal(log, runErr, "client run error")
	}
	log.Info().Msg("stopped")
	_ = log.Close()
}

// fatal logs err and also prints it, since the log file is not on screen.
func fatal(log *logger.Logger, err error, msg string) {
	log.Error().Err(err).Msg(msg)
	_ = log.Close()
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	os.Exit(1)
}
