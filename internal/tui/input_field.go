package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const addButtonLabel = " + Add note "

// inputField is a controlled view: the screen passes the current text in and
// gets every edit back through onValueChanged.
type inputField struct {
	textInput        textinput.Model
	onValueChanged   func(newText string)
	onAddButtonClick func()
}

func newInputField(value string, onValueChanged func(string), onAddButtonClick func()) inputField {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Type a note"
	ti.SetValue(value)
	ti.Focus()

	return inputField{
		textInput:        ti,
		onValueChanged:   onValueChanged,
		onAddButtonClick: onAddButtonClick,
	}
}

func (f inputField) Update(msg tea.Msg) (inputField, tea.Cmd) {
	before := f.textInput.Value()

	var cmd tea.Cmd
	f.textInput, cmd = f.textInput.Update(msg)

	if after := f.textInput.Value(); after != before && f.onValueChanged != nil {
		f.onValueChanged(after)
	}
	return f, cmd
}

func (f inputField) submit() {
	if f.onAddButtonClick != nil {
		f.onAddButtonClick()
	}
}

// setValue writes the authoritative text back into the field.
func (f *inputField) setValue(v string) {
	if f.textInput.Value() != v {
		f.textInput.SetValue(v)
	}
}

func (f *inputField) setWidth(width int) {
	inner := width - inputBoxStyle.GetHorizontalFrameSize() - lipgloss.Width(f.textInput.Prompt) - 1
	if inner < 1 {
		inner = 1
	}
	f.textInput.Width = inner
}

func (f inputField) View(width int) string {
	box := inputBoxStyle.Width(width - inputBoxStyle.GetHorizontalBorderSize()).Render(f.textInput.View())
	button := lipgloss.PlaceHorizontal(width, lipgloss.Right, addButtonStyle.Render(addButtonLabel))
	return lipgloss.JoinVertical(lipgloss.Left, box, button)
}

// addButtonBounds reports the columns [from, to) the add button occupies on
// its row.
func addButtonBounds(width int) (from, to int) {
	w := lipgloss.Width(addButtonLabel)
	return width - w, width
}
