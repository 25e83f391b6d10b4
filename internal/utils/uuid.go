// Package utils provides small helpers shared across the application.
package utils

import "github.com/google/uuid"

// NoteIDGenerator mints note identifiers. IDs are time-ordered UUIDv7, so
// sorting them reproduces insertion order; a random UUIDv4 is used if the
// v7 generator fails.
type NoteIDGenerator struct{}

// NewNoteIDGenerator returns a ready to use generator.
func NewNoteIDGenerator() *NoteIDGenerator {
	return &NoteIDGenerator{}
}

// Generate returns a new identifier string.
func (NoteIDGenerator) Generate() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}
