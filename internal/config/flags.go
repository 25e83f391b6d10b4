package config

import (
	"flag"
	"fmt"
	"time"
)

// parseFlags parses command-line flags from args.
//
// Flags:
//
//	-c/-config json file path with configs
//	-title header title
//	-log-file log file path
//	-log-level log level (debug, info, warn, error)
//	-state-backend saved state backend (memory, file, sqlite)
//	-state-file JSON bundle path for the file backend
//	-d sqlite DSN for the sqlite backend
//	-state-timeout timeout of saved state operations (e.g. "5s")
func parseFlags(args []string) (*StructuredConfig, error) {
	var jsonConfigPath string
	var title string
	var logFile, logLevel string
	var backend, stateFile, dsn string
	var timeout time.Duration

	fs := flag.NewFlagSet("notes", flag.ContinueOnError)
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&title, "title", "", "Header title")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&backend, "state-backend", "", "Saved state backend (memory, file, sqlite)")
	fs.StringVar(&stateFile, "state-file", "", "Saved state JSON file")
	fs.StringVar(&dsn, "d", "", "Saved state SQLite DSN")
	fs.DurationVar(&timeout, "state-timeout", 0, "Saved state operation timeout (e.g., 5s)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{Title: title},
		Log: Log{File: logFile, Level: logLevel},
		Storage: Storage{
			Backend: backend,
			Timeout: timeout,
			Files:   Files{StateFile: stateFile},
			DB:      DB{DSN: dsn},
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
