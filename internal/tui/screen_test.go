package tui

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/notes"
	"github.com/MKhiriev/go-notes/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type seqIDs struct {
	n int
}

func (g *seqIDs) Generate() string {
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

func newTestScreen(t *testing.T, texts ...string) *NotesScreen {
	t.Helper()

	state := notes.New(&seqIDs{}, logger.Nop())
	for _, text := range texts {
		state.SetInputText(text)
		state.Add()
	}
	m := newNotesScreen(state, "Notes", models.NewAppBuildInfo("1.0.0", "2026-01-01", "abc123"), logger.Nop())
	m.copyToClipboard = func(string) error { return nil }
	m.Update(tea.WindowSizeMsg{Width: 40, Height: 30})
	return m
}

func typeText(m *NotesScreen, text string) {
	for _, r := range text {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func press(m *NotesScreen, k tea.KeyType) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: k})
	return cmd
}

func click(m *NotesScreen, x, y int) {
	m.Update(tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
}

func TestNotesScreen_TypingUpdatesState(t *testing.T) {
	m := newTestScreen(t)

	typeText(m, "hello")

	assert.Equal(t, "hello", m.state.InputText())
	assert.Empty(t, m.state.Texts())
}

func TestNotesScreen_EnterAddsNoteAndClearsInput(t *testing.T) {
	m := newTestScreen(t)

	typeText(m, "Buy milk")
	press(m, tea.KeyEnter)

	assert.Equal(t, []string{"Buy milk"}, m.state.Texts())
	assert.Equal(t, "", m.state.InputText())
	assert.Equal(t, "", m.input.textInput.Value())
}

func TestNotesScreen_EnterWithEmptyInputAddsEmptyNote(t *testing.T) {
	m := newTestScreen(t)

	press(m, tea.KeyEnter)
	typeText(m, "x")
	press(m, tea.KeyEnter)

	assert.Equal(t, []string{"", "x"}, m.state.Texts())
}

func TestNotesScreen_AddSelectsNewNote(t *testing.T) {
	m := newTestScreen(t, "a", "b")

	typeText(m, "c")
	press(m, tea.KeyEnter)

	row, ok := m.list.selected()
	require.True(t, ok)
	assert.Equal(t, "c", row.note.Text)
}

func TestNotesScreen_DeleteSelected(t *testing.T) {
	m := newTestScreen(t, "a", "b", "c")
	m.list.cursor = 0

	press(m, tea.KeyDown)
	press(m, tea.KeyCtrlX)

	assert.Equal(t, []string{"a", "c"}, m.state.Texts())
	row, ok := m.list.selected()
	require.True(t, ok)
	assert.Equal(t, "c", row.note.Text)
}

func TestNotesScreen_DeleteLastClampsCursor(t *testing.T) {
	m := newTestScreen(t, "a", "b")
	press(m, tea.KeyDown)

	press(m, tea.KeyCtrlX)

	assert.Equal(t, []string{"a"}, m.state.Texts())
	assert.Equal(t, 0, m.list.cursor)
}

func TestNotesScreen_DeleteOnEmptyListIsNoop(t *testing.T) {
	m := newTestScreen(t)

	press(m, tea.KeyCtrlX)

	assert.Empty(t, m.state.Texts())
}

func TestNotesScreen_StaleDeleteControlRemovesItsOwnNote(t *testing.T) {
	m := newTestScreen(t, "A", "B", "C")
	rowB, ok := m.list.rowAt(1)
	require.True(t, ok)

	first, ok := m.list.rowAt(0)
	require.True(t, ok)
	first.onIconDeleteClick()
	rowB.onIconDeleteClick()

	assert.Equal(t, []string{"C"}, m.state.Texts())
}

func TestNotesScreen_ClickDeleteIcon(t *testing.T) {
	m := newTestScreen(t, "a", "b", "c")
	_, listTop := m.layout()

	click(m, 39, listTop+1)

	assert.Equal(t, []string{"a", "c"}, m.state.Texts())
}

func TestNotesScreen_ClickRowTextSelectsIt(t *testing.T) {
	m := newTestScreen(t, "a", "b", "c")
	_, listTop := m.layout()

	click(m, 5, listTop+2)

	assert.Equal(t, []string{"a", "b", "c"}, m.state.Texts())
	assert.Equal(t, 2, m.list.cursor)
}

func TestNotesScreen_ClickAddButton(t *testing.T) {
	m := newTestScreen(t)
	typeText(m, "from mouse")
	buttonY, _ := m.layout()

	click(m, 39, buttonY)

	assert.Equal(t, []string{"from mouse"}, m.state.Texts())
	assert.Equal(t, "", m.state.InputText())
}

func TestNotesScreen_ClickOutsideControlsIsIgnored(t *testing.T) {
	m := newTestScreen(t, "a")

	click(m, 0, 0)
	click(m, 39, 29)

	assert.Equal(t, []string{"a"}, m.state.Texts())
}

func TestNotesScreen_Recreate(t *testing.T) {
	m := newTestScreen(t, "a", "b")
	typeText(m, "draft")

	cmd := press(m, tea.KeyCtrlR)

	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	res := m.Result()
	assert.Equal(t, ExitRecreate, res.Exit)
	assert.Equal(t, models.Snapshot{Notes: []string{"a", "b"}, InputText: "draft"}, res.Snapshot)
}

func TestNotesScreen_EscClosesScreen(t *testing.T) {
	m := newTestScreen(t, "a")

	cmd := press(m, tea.KeyEsc)

	require.NotNil(t, cmd)
	assert.Equal(t, ExitClosed, m.Result().Exit)
}

func TestNotesScreen_CtrlCClosesScreen(t *testing.T) {
	m := newTestScreen(t)

	press(m, tea.KeyCtrlC)

	assert.Equal(t, ExitClosed, m.Result().Exit)
}

func TestNotesScreen_Teardown(t *testing.T) {
	m := newTestScreen(t)

	_, cmd := m.Update(TeardownMsg{})

	require.NotNil(t, cmd)
	res := m.Result()
	assert.Equal(t, ExitTeardown, res.Exit)
	assert.Equal(t, []string{""}, res.Snapshot.Notes)
}

func TestNotesScreen_BuildInfoOverlay(t *testing.T) {
	m := newTestScreen(t, "a")

	press(m, tea.KeyF1)
	assert.True(t, m.showBuildInfo)
	assert.Contains(t, m.View(), "1.0.0")

	typeText(m, "ignored")
	assert.Equal(t, "", m.state.InputText())

	cmd := press(m, tea.KeyEsc)
	assert.Nil(t, cmd)
	assert.False(t, m.showBuildInfo)
	assert.NotEqual(t, ExitClosed, m.Result().Exit)
}

func TestNotesScreen_CopySelected(t *testing.T) {
	m := newTestScreen(t, "a", "b")
	var copied string
	m.copyToClipboard = func(s string) error {
		copied = s
		return nil
	}
	press(m, tea.KeyDown)

	cmd := press(m, tea.KeyCtrlY)

	require.NotNil(t, cmd)
	assert.Equal(t, "b", copied)
	assert.Equal(t, "Copied to clipboard", m.status)
}

func TestNotesScreen_CopyFailureShowsStatus(t *testing.T) {
	m := newTestScreen(t, "a")
	m.copyToClipboard = func(string) error { return errors.New("no clipboard") }

	press(m, tea.KeyCtrlY)

	assert.Contains(t, m.status, "no clipboard")
}

func TestNotesScreen_StatusClearedOnlyByLatestTick(t *testing.T) {
	m := newTestScreen(t, "a")

	press(m, tea.KeyCtrlY)
	first := m.statusSeq
	press(m, tea.KeyCtrlY)

	m.Update(clearStatusMsg{seq: first})
	assert.NotEmpty(t, m.status)

	m.Update(clearStatusMsg{seq: m.statusSeq})
	assert.Empty(t, m.status)
}

func TestNotesScreen_View(t *testing.T) {
	m := newTestScreen(t, "first note", "a very long note that will never fit into forty columns")

	view := m.View()

	assert.Contains(t, view, "Notes")
	assert.Contains(t, view, "first note")
	assert.Contains(t, view, deleteIcon)
	assert.Contains(t, view, "Add note")
	assert.Contains(t, view, "…")
	assert.NotContains(t, view, "forty columns")
}

func TestNotesScreen_ViewEmptyList(t *testing.T) {
	m := newTestScreen(t)

	assert.Contains(t, m.View(), "No notes yet")
}

func TestNotesScreen_ScrollKeepsCursorVisible(t *testing.T) {
	texts := make([]string, 50)
	for i := range texts {
		texts[i] = fmt.Sprintf("note %d", i)
	}
	m := newTestScreen(t, texts...)
	h := m.listHeight()
	require.Less(t, h, len(texts))

	for range texts {
		press(m, tea.KeyDown)
	}
	assert.Equal(t, len(texts)-1, m.list.cursor)
	assert.Equal(t, len(texts)-h, m.list.offset)
	assert.Contains(t, m.View(), "note 49")
	assert.NotContains(t, m.View(), "note 0 ")

	for range texts {
		press(m, tea.KeyUp)
	}
	assert.Equal(t, 0, m.list.cursor)
	assert.Equal(t, 0, m.list.offset)
	assert.Contains(t, m.View(), "note 0")
}

func TestNotesScreen_MutationsLoggedOnce(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewLogger("screen-test", &buf)
	state := notes.New(&seqIDs{}, log)
	m := newNotesScreen(state, "Notes", models.AppBuildInfo{}, log)

	typeText(m, "a")
	press(m, tea.KeyEnter)
	press(m, tea.KeyCtrlX)

	assert.Equal(t, 1, strings.Count(buf.String(), "note added"))
	assert.Equal(t, 1, strings.Count(buf.String(), "note deleted"))
}
