package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/notes"
	"github.com/MKhiriev/go-notes/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const statusTTL = 3 * time.Second

// NotesScreen is the single screen of the application. It owns the notes
// state and maps input field edits, list actions and mouse clicks onto it.
type NotesScreen struct {
	state     *notes.State
	title     string
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	input inputField
	list  noteList
	help  help.Model

	copyToClipboard func(string) error

	width         int
	height        int
	showBuildInfo bool
	status        string
	statusSeq     int
	exit          ExitReason
}

func newNotesScreen(state *notes.State, title string, buildInfo models.AppBuildInfo, log *logger.Logger) *NotesScreen {
	m := &NotesScreen{
		state:           state,
		title:           title,
		buildInfo:       buildInfo,
		logger:          log,
		help:            help.New(),
		copyToClipboard: clipboard.WriteAll,
		exit:            ExitTeardown,
	}
	m.input = newInputField(state.InputText(), m.onTextChanged, m.onAddRequested)
	m.input.setWidth(m.viewWidth())
	m.list.setNotes(state.Notes(), m.onDeleteRequested)
	return m
}

func (m *NotesScreen) Init() tea.Cmd {
	return textinput.Blink
}

func (m *NotesScreen) onTextChanged(newText string) {
	m.state.SetInputText(newText)
}

func (m *NotesScreen) onAddRequested() {
	m.state.Add()
	m.refresh()
	m.list.cursor = len(m.list.rows) - 1
}

func (m *NotesScreen) onDeleteRequested(id string) {
	m.state.Delete(id)
	m.refresh()
}

// refresh pushes the state back into the views.
func (m *NotesScreen) refresh() {
	m.input.setValue(m.state.InputText())
	m.list.setNotes(m.state.Notes(), m.onDeleteRequested)
}

func (m *NotesScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.setWidth(m.viewWidth())
		m.list.scrollTo(m.listHeight())
		return m, nil

	case TeardownMsg:
		m.exit = ExitTeardown
		return m, tea.Quit

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *NotesScreen) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showBuildInfo {
		switch {
		case key.Matches(msg, keys.back), key.Matches(msg, keys.buildInfo):
			m.showBuildInfo = false
			return m, nil
		case msg.Type == tea.KeyCtrlC:
			m.exit = ExitClosed
			return m, tea.Quit
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.quit):
		m.exit = ExitClosed
		return m, tea.Quit
	case key.Matches(msg, keys.recreate):
		m.exit = ExitRecreate
		return m, tea.Quit
	case key.Matches(msg, keys.buildInfo):
		m.showBuildInfo = true
		return m, nil
	case key.Matches(msg, keys.up):
		m.list.moveUp()
		m.list.scrollTo(m.listHeight())
		return m, nil
	case key.Matches(msg, keys.down):
		m.list.moveDown()
		m.list.scrollTo(m.listHeight())
		return m, nil
	case key.Matches(msg, keys.delete):
		if row, ok := m.list.selected(); ok {
			row.onIconDeleteClick()
		}
		m.list.scrollTo(m.listHeight())
		return m, nil
	case key.Matches(msg, keys.copy):
		return m, m.copySelected()
	case key.Matches(msg, keys.add):
		m.input.submit()
		m.list.scrollTo(m.listHeight())
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *NotesScreen) handleMouse(msg tea.MouseMsg) {
	if m.showBuildInfo {
		return
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.list.moveUp()
		m.list.scrollTo(m.listHeight())
		return
	case tea.MouseButtonWheelDown:
		m.list.moveDown()
		m.list.scrollTo(m.listHeight())
		return
	}

	if msg.Button != tea.MouseButtonLeft || msg.Action != tea.MouseActionPress {
		return
	}

	width := m.viewWidth()
	buttonY, listTop := m.layout()

	if msg.Y == buttonY {
		if from, to := addButtonBounds(width); msg.X >= from && msg.X < to {
			m.input.submit()
			m.list.scrollTo(m.listHeight())
		}
		return
	}

	row, ok := m.list.rowAt(msg.Y - listTop)
	if !ok {
		return
	}
	if msg.X >= width-lipgloss.Width(deleteIcon) && msg.X < width {
		row.onIconDeleteClick()
		m.list.scrollTo(m.listHeight())
		return
	}
	m.list.cursor = m.list.offset + msg.Y - listTop
}

func (m *NotesScreen) copySelected() tea.Cmd {
	row, ok := m.list.selected()
	if !ok {
		return m.setStatus("Nothing to copy")
	}
	if err := m.copyToClipboard(row.note.Text); err != nil {
		m.logger.Err(err).Msg("copy note to clipboard failed")
		return m.setStatus(fmt.Sprintf("Copy failed: %v", err))
	}
	return m.setStatus("Copied to clipboard")
}

func (m *NotesScreen) setStatus(s string) tea.Cmd {
	m.status = s
	m.statusSeq++
	seq := m.statusSeq
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

// Result reports why the screen ended together with its snapshot.
func (m *NotesScreen) Result() Result {
	return Result{
		Exit:     m.exit,
		Snapshot: notes.Snapshot(m.state),
	}
}

func (m *NotesScreen) viewWidth() int {
	if m.width <= 0 {
		return defaultWidth
	}
	return m.width
}

// layout returns the row of the add button and the first row of the list.
func (m *NotesScreen) layout() (buttonY, listTop int) {
	width := m.viewWidth()
	headerHeight := lipgloss.Height(renderHeader(m.title, width))
	boxHeight := lipgloss.Height(m.input.View(width)) - 1
	buttonY = headerHeight + boxHeight
	return buttonY, buttonY + 2
}

func (m *NotesScreen) listHeight() int {
	if m.height <= 0 {
		return 0
	}
	_, listTop := m.layout()
	h := m.height - listTop - 1 - lipgloss.Height(m.footer())
	return max(h, 1)
}

func (m *NotesScreen) footer() string {
	helpView := m.help.View(keys)
	if m.status == "" {
		return helpView
	}
	return statusStyle.Render(m.status) + "\n" + helpView
}

func (m *NotesScreen) View() string {
	width := m.viewWidth()

	if m.showBuildInfo {
		box := renderBuildInfoWindow(m.title, m.buildInfo)
		if m.height > 0 {
			return lipgloss.Place(width, m.height, lipgloss.Center, lipgloss.Center, box)
		}
		return box
	}

	var b strings.Builder
	b.WriteString(renderHeader(m.title, width))
	b.WriteString("\n")
	b.WriteString(m.input.View(width))
	b.WriteString("\n\n")
	b.WriteString(m.list.View(width, m.listHeight()))
	b.WriteString("\n\n")
	b.WriteString(m.footer())
	return b.String()
}
