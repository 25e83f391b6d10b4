// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notes

import (
	"bytes"
	"strconv"
	"testing"

	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type seqIDs struct {
	next int
}

func (g *seqIDs) Generate() string {
	g.next++
	return "n" + strconv.Itoa(g.next)
}

func newTestState(t *testing.T, texts ...string) *State {
	t.Helper()
	s := New(&seqIDs{}, logger.Nop())
	for _, text := range texts {
		s.SetInputText(text)
		s.Add()
	}
	return s
}

func TestNew_Empty(t *testing.T) {
	s := New(&seqIDs{}, nil)
	assert.Equal(t, "", s.InputText())
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Texts())
}

func TestState_Add_KeepsOrder(t *testing.T) {
	inputs := []string{"Buy milk", "", "call mom", "Buy milk", "  "}
	s := newTestState(t, inputs...)

	assert.Equal(t, inputs, s.Texts())
	assert.Equal(t, len(inputs), s.Len())
}

func TestState_Add_ClearsInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "text", input: "Buy milk"},
		{name: "empty", input: ""},
		{name: "whitespace", input: "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestState(t)
			s.SetInputText(tt.input)

			note := s.Add()

			assert.Equal(t, tt.input, note.Text)
			assert.Equal(t, "", s.InputText())
		})
	}
}

func TestState_Add_AssignsDistinctIDs(t *testing.T) {
	s := New(utils.NewNoteIDGenerator(), logger.Nop())
	first := s.Add()
	second := s.Add()

	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
}

// Scenario: Add "Buy milk" → ["Buy milk"], input cleared.
func TestState_Scenario_AddSingle(t *testing.T) {
	s := newTestState(t)
	s.SetInputText("Buy milk")
	s.Add()

	assert.Equal(t, []string{"Buy milk"}, s.Texts())
	assert.Equal(t, "", s.InputText())
}

// Scenario: Add "", Add "A" → ["", "A"].
func TestState_Scenario_AddEmptyThenText(t *testing.T) {
	s := newTestState(t, "", "A")
	assert.Equal(t, []string{"", "A"}, s.Texts())
}

func TestState_DeleteAt(t *testing.T) {
	tests := []struct {
		name    string
		notes   []string
		index   int
		want    []string
		removed bool
	}{
		{name: "middle", notes: []string{"A", "B", "C"}, index: 1, want: []string{"A", "C"}, removed: true},
		{name: "first", notes: []string{"A", "B", "C"}, index: 0, want: []string{"B", "C"}, removed: true},
		{name: "last", notes: []string{"A", "B", "C"}, index: 2, want: []string{"A", "B"}, removed: true},
		{name: "only", notes: []string{"A"}, index: 0, want: []string{}, removed: true},
		{name: "out of range", notes: []string{"A"}, index: 5, want: []string{"A"}, removed: false},
		{name: "negative", notes: []string{"A"}, index: -1, want: []string{"A"}, removed: false},
		{name: "empty list", notes: nil, index: 0, want: []string{}, removed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestState(t, tt.notes...)
			before := s.Len()

			removed := s.DeleteAt(tt.index)

			assert.Equal(t, tt.removed, removed)
			assert.Equal(t, tt.want, s.Texts())
			if removed {
				assert.Equal(t, before-1, s.Len())
			} else {
				assert.Equal(t, before, s.Len())
			}
		})
	}
}

func TestState_DeleteAt_ShiftsEveryPosition(t *testing.T) {
	texts := []string{"a", "b", "c", "d", "e"}
	for i := range texts {
		s := newTestState(t, texts...)
		require.True(t, s.DeleteAt(i))

		want := append(append([]string{}, texts[:i]...), texts[i+1:]...)
		assert.Equal(t, want, s.Texts(), "delete at %d", i)
	}
}

func TestState_DeleteAt_OutOfRangeLogsWarning(t *testing.T) {
	var buf bytes.Buffer
	s := New(&seqIDs{}, logger.NewLogger("test", &buf))
	s.SetInputText("A")
	s.Add()

	assert.False(t, s.DeleteAt(5))
	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), "out of range")
}

func TestState_Delete_ByID(t *testing.T) {
	s := newTestState(t, "A", "B", "C")
	notes := s.Notes()

	require.True(t, s.Delete(notes[1].ID))
	assert.Equal(t, []string{"A", "C"}, s.Texts())
}

// Two delete requests captured against the same rendering: the second one
// must still remove the note it was created for, not whatever slid into
// its old position.
func TestState_Delete_StaleRequestsRemoveIntendedNotes(t *testing.T) {
	s := newTestState(t, "A", "B", "C", "D")
	rendered := s.Notes()

	require.True(t, s.Delete(rendered[1].ID))
	require.True(t, s.Delete(rendered[2].ID))

	assert.Equal(t, []string{"A", "D"}, s.Texts())
}

func TestState_Delete_UnknownIDIsNoop(t *testing.T) {
	s := newTestState(t, "A")
	note, ok := s.At(0)
	require.True(t, ok)
	require.True(t, s.Delete(note.ID))

	assert.False(t, s.Delete(note.ID))
	assert.False(t, s.Delete("missing"))
	assert.Equal(t, 0, s.Len())
}

func TestState_LenTracksAddsMinusDeletes(t *testing.T) {
	s := newTestState(t)
	adds, deletes := 0, 0
	for i := 0; i < 20; i++ {
		s.SetInputText(strconv.Itoa(i))
		s.Add()
		adds++
		if i%3 == 0 && s.DeleteAt(0) {
			deletes++
		}
		s.DeleteAt(100)
	}

	assert.Equal(t, adds-deletes, s.Len())
}

func TestState_NotesReturnsCopy(t *testing.T) {
	s := newTestState(t, "A")
	notes := s.Notes()
	notes[0].Text = "changed"

	assert.Equal(t, []string{"A"}, s.Texts())
}

func TestState_At(t *testing.T) {
	s := newTestState(t, "A", "B")

	note, ok := s.At(1)
	require.True(t, ok)
	assert.Equal(t, "B", note.Text)

	_, ok = s.At(2)
	assert.False(t, ok)
	_, ok = s.At(-1)
	assert.False(t, ok)
}
