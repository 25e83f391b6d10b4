package tui

import (
	"strings"

	"github.com/MKhiriev/go-notes/models"
	"github.com/charmbracelet/lipgloss"
)

const (
	deleteIcon   = "[x]"
	cursorMarker = "> "
	noCursor     = "  "
)

// noteView is one row of the list. onIconDeleteClick is bound to the note's
// ID when the row is built, so a click always targets the note it shows.
type noteView struct {
	note              models.Note
	onIconDeleteClick func()
}

type noteList struct {
	rows   []noteView
	cursor int
	offset int
}

func (l *noteList) setNotes(notes []models.Note, onDelete func(id string)) {
	rows := make([]noteView, 0, len(notes))
	for _, n := range notes {
		id := n.ID
		rows = append(rows, noteView{
			note:              n,
			onIconDeleteClick: func() { onDelete(id) },
		})
	}
	l.rows = rows
	l.clamp()
}

func (l *noteList) clamp() {
	if l.cursor >= len(l.rows) {
		l.cursor = len(l.rows) - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
	if l.offset > l.cursor {
		l.offset = l.cursor
	}
}

func (l *noteList) moveUp() {
	if l.cursor > 0 {
		l.cursor--
	}
	l.clamp()
}

func (l *noteList) moveDown() {
	if l.cursor < len(l.rows)-1 {
		l.cursor++
	}
}

func (l noteList) selected() (noteView, bool) {
	if l.cursor < 0 || l.cursor >= len(l.rows) {
		return noteView{}, false
	}
	return l.rows[l.cursor], true
}

// scrollTo keeps the cursor inside a window of height rows.
func (l *noteList) scrollTo(height int) {
	if height <= 0 {
		l.offset = 0
		return
	}
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	if l.cursor >= l.offset+height {
		l.offset = l.cursor - height + 1
	}
	if maxOffset := len(l.rows) - height; l.offset > maxOffset {
		l.offset = max(maxOffset, 0)
	}
}

// rowAt returns the row shown on the given visible line.
func (l noteList) rowAt(line int) (noteView, bool) {
	i := l.offset + line
	if line < 0 || i >= len(l.rows) {
		return noteView{}, false
	}
	return l.rows[i], true
}

func (l noteList) View(width, height int) string {
	if len(l.rows) == 0 {
		return placeholderStyle.Render("No notes yet. Type one above and press enter.")
	}

	end := len(l.rows)
	if height > 0 && l.offset+height < end {
		end = l.offset + height
	}

	textWidth := width - lipgloss.Width(cursorMarker) - 1 - lipgloss.Width(deleteIcon)

	lines := make([]string, 0, end-l.offset)
	for i := l.offset; i < end; i++ {
		lines = append(lines, renderNoteRow(l.rows[i].note, i == l.cursor, textWidth))
	}
	return strings.Join(lines, "\n")
}

func renderNoteRow(n models.Note, selected bool, textWidth int) string {
	marker := noCursor
	if selected {
		marker = cursorMarker
	}

	var text string
	switch {
	case n.Text == "":
		text = emptyNoteStyle.Render(fitText("(empty)", textWidth))
	case selected:
		text = selectedNoteStyle.Render(fitText(n.Text, textWidth))
	default:
		text = fitText(n.Text, textWidth)
	}

	return marker + text + " " + deleteIconStyle.Render(deleteIcon)
}
