package tui

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notes/internal/config"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/notes"
	"github.com/MKhiriev/go-notes/models"
	tea "github.com/charmbracelet/bubbletea"
)

// ExitReason tells the host what to do with the screen state after Run.
type ExitReason int

const (
	// ExitTeardown means the screen was destroyed by the host. The snapshot
	// must be saved so the next screen can restore it.
	ExitTeardown ExitReason = iota
	// ExitClosed means the user closed the screen for good.
	ExitClosed
	// ExitRecreate means the user asked to rebuild the screen in place.
	ExitRecreate
)

func (r ExitReason) String() string {
	switch r {
	case ExitTeardown:
		return "teardown"
	case ExitClosed:
		return "closed"
	case ExitRecreate:
		return "recreate"
	default:
		return fmt.Sprintf("ExitReason(%d)", int(r))
	}
}

// Result is what a finished screen hands back to the host.
type Result struct {
	Exit     ExitReason
	Snapshot models.Snapshot
}

type TUI struct {
	title     string
	ids       notes.IDGenerator
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	programOptions []tea.ProgramOption
}

func New(cfg config.App, ids notes.IDGenerator, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	if ids == nil {
		return nil, ErrNilIDGenerator
	}
	return &TUI{
		title:     cfg.Title,
		ids:       ids,
		buildInfo: buildInfo,
		logger:    log,
		programOptions: []tea.ProgramOption{
			tea.WithAltScreen(),
			tea.WithMouseCellMotion(),
			tea.WithoutSignalHandler(),
		},
	}, nil
}

// Run shows a notes screen until it is closed, recreated or torn down.
// A non-nil restored snapshot rebuilds the previous screen state; otherwise
// the screen starts empty. Cancelling ctx tears the screen down.
func (t *TUI) Run(ctx context.Context, restored *models.Snapshot) (Result, error) {
	var state *notes.State
	if restored != nil {
		state = notes.Restore(*restored, t.ids, t.logger)
	} else {
		state = notes.New(t.ids, t.logger)
	}

	screen := newNotesScreen(state, t.title, t.buildInfo, t.logger)
	p := tea.NewProgram(screen, t.programOptions...)

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			p.Send(TeardownMsg{})
		case <-done:
		}
	}()

	finalModel, err := p.Run()
	if err != nil {
		return Result{}, fmt.Errorf("run notes screen: %w", err)
	}

	result, ok := finalModel.(*NotesScreen)
	if !ok {
		return Result{}, ErrUnexpectedModel
	}
	return result.Result(), nil
}
