// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"time"
)

// Saved state backends accepted in [Storage.Backend].
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// StructuredConfig is the top-level configuration container for the
// go-notes application. It is populated by merging built-in defaults, an
// optional JSON file, environment variables and command-line flags.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds settings of the notes screen itself.
	App App `envPrefix:"APP_"`

	// Log controls where and how verbosely the client logs.
	Log Log `envPrefix:"LOG_"`

	// Storage selects and configures the saved state bundle store.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds screen level settings.
type App struct {
	// Title is the text shown in the header banner.
	// Env: APP_TITLE
	Title string `env:"TITLE"`
}

// Log holds logger settings.
type Log struct {
	// File is the path of the JSON log file. Empty means next to the
	// executable.
	// Env: LOG_FILE
	File string `env:"FILE"`

	// Level is a zerolog level name ("debug", "info", "warn", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Storage holds the saved state bundle settings.
type Storage struct {
	// Backend is one of "memory", "file" or "sqlite".
	// Env: STORAGE_BACKEND
	Backend string `env:"BACKEND"`

	// Timeout bounds every save, load and clear call.
	// Env: STORAGE_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`

	// Files configures the "file" backend.
	Files Files `envPrefix:"FILES_"`

	// DB configures the "sqlite" backend.
	DB DB `envPrefix:"DB_"`
}

// Files holds the JSON bundle file location.
type Files struct {
	// StateFile is the path of the JSON bundle.
	// Env: STORAGE_FILES_STATE_FILE
	StateFile string `env:"STATE_FILE"`
}

// DB holds the SQLite bundle database location.
type DB struct {
	// DSN is the sqlite3 data source name, usually a file path.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// defaultConfig returns the values used when no source sets a field.
func defaultConfig() *StructuredConfig {
	stateDir := filepath.Join(os.TempDir(), "go-notes")

	return &StructuredConfig{
		App: App{Title: "Notes"},
		Log: Log{Level: "info"},
		Storage: Storage{
			Backend: BackendMemory,
			Timeout: 5 * time.Second,
			Files:   Files{StateFile: filepath.Join(stateDir, "state.json")},
			DB:      DB{DSN: filepath.Join(stateDir, "state.db")},
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration. Sources in ascending priority (a later non-zero field wins):
//  1. Built-in defaults
//  2. JSON file (path taken from CONFIG or -c / -config)
//  3. Environment variables
//  4. Command-line flags parsed from args (without the program name)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
