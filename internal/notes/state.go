// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notes

import (
	"slices"

	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/models"
)

// IDGenerator mints note identifiers.
type IDGenerator interface {
	Generate() string
}

// State is the screen-owned notes state.
type State struct {
	inputText string
	notes     []models.Note

	ids    IDGenerator
	logger *logger.Logger
}

// New returns an empty State: no notes and an empty input.
func New(ids IDGenerator, log *logger.Logger) *State {
	if log == nil {
		log = logger.Nop()
	}
	return &State{
		notes:  make([]models.Note, 0),
		ids:    ids,
		logger: log,
	}
}

// InputText returns the current content of the input field.
func (s *State) InputText() string {
	return s.inputText
}

// SetInputText replaces the input text with newText.
func (s *State) SetInputText(newText string) {
	s.inputText = newText
}

// Notes returns a copy of the notes in insertion order.
func (s *State) Notes() []models.Note {
	return slices.Clone(s.notes)
}

// Texts returns the note texts in insertion order.
func (s *State) Texts() []string {
	return models.NoteTexts(s.notes)
}

// Len returns the number of notes.
func (s *State) Len() int {
	return len(s.notes)
}

// At returns the note at index.
func (s *State) At(index int) (models.Note, bool) {
	if index < 0 || index >= len(s.notes) {
		return models.Note{}, false
	}
	return s.notes[index], true
}

// IndexOf returns the current position of the note with the given id, or -1.
func (s *State) IndexOf(id string) int {
	return slices.IndexFunc(s.notes, func(n models.Note) bool { return n.ID == id })
}

// Add appends the current input text as a new note, verbatim and even when
// empty, then clears the input. It returns the added note.
func (s *State) Add() models.Note {
	note := models.Note{ID: s.ids.Generate(), Text: s.inputText}
	s.notes = append(s.notes, note)
	s.inputText = ""

	s.logger.Debug().Str("note_id", note.ID).Int("count", len(s.notes)).Msg("note added")
	return note
}

// Delete removes the note with the given id, resolving its position at the
// time of the call. Unknown ids leave the list unchanged.
func (s *State) Delete(id string) bool {
	index := s.IndexOf(id)
	if index < 0 {
		s.logger.Warn().Str("note_id", id).Msg("delete requested for unknown note, ignoring")
		return false
	}
	s.removeAt(index)
	return true
}

// DeleteAt removes exactly one note at index and shifts later notes down by
// one. An out-of-range index leaves the list unchanged.
func (s *State) DeleteAt(index int) bool {
	if index < 0 || index >= len(s.notes) {
		s.logger.Warn().Int("index", index).Int("count", len(s.notes)).Msg("delete index out of range, ignoring")
		return false
	}
	s.removeAt(index)
	return true
}

func (s *State) removeAt(index int) {
	id := s.notes[index].ID
	s.notes = slices.Delete(s.notes, index, index+1)
	s.logger.Debug().Str("note_id", id).Int("index", index).Int("count", len(s.notes)).Msg("note deleted")
}
