// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Note is a single line of user text shown on the notes screen.
type Note struct {
	// ID is generated when the note is added and stays stable while the
	// note is on screen. Delete requests are keyed by it.
	ID string

	// Text is stored verbatim. Empty and duplicate texts are allowed.
	Text string
}

// NoteTexts returns the texts of notes in order.
func NoteTexts(notes []Note) []string {
	texts := make([]string, len(notes))
	for i, n := range notes {
		texts[i] = n.Text
	}
	return texts
}
