// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Snapshot is the saved state bundle the host keeps between tearing a
// screen down and recreating it.
//
// Notes is never empty once produced by a snapshot: an empty list is
// stored as a single empty string.
type Snapshot struct {
	Notes     []string `json:"notes"`
	InputText string   `json:"input_text"`
}

// Clone returns a copy that shares no memory with s.
func (s Snapshot) Clone() Snapshot {
	notes := make([]string, len(s.Notes))
	copy(notes, s.Notes)
	return Snapshot{Notes: notes, InputText: s.InputText}
}
