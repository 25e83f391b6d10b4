package tui

import "errors"

// ErrUnexpectedModel is returned by [TUI.Run] when the program finishes with
// a model other than the notes screen.
var ErrUnexpectedModel = errors.New("unexpected final model")

// ErrNilIDGenerator is returned by [New] when no note ID generator is given.
var ErrNilIDGenerator = errors.New("note id generator is nil")
