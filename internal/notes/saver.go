// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notes

import (
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/models"
)

// Snapshot captures s for the host's saved state bundle.
//
// An empty note list is saved as a single empty string, never as an empty
// list. Restoring such a snapshot yields one empty note.
func Snapshot(s *State) models.Snapshot {
	texts := s.Texts()
	if len(texts) == 0 {
		texts = []string{""}
	}
	return models.Snapshot{Notes: texts, InputText: s.inputText}
}

// Restore rebuilds a State from a saved bundle. Each restored note gets a
// fresh id. An empty saved list restores as a single empty note.
func Restore(saved models.Snapshot, ids IDGenerator, log *logger.Logger) *State {
	s := New(ids, log)
	s.inputText = saved.InputText

	texts := saved.Notes
	if len(texts) == 0 {
		texts = []string{""}
	}
	for _, text := range texts {
		s.notes = append(s.notes, models.Note{ID: ids.Generate(), Text: text})
	}

	s.logger.Debug().Int("count", len(s.notes)).Msg("notes state restored")
	return s
}
