// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"bytes"
	"database/sql"
	"io/fs"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/MKhiriev/go-notes/internal/logger"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	_ = mock // no expectations: goose's first query must fail

	err = Migrate(db, logger.Nop())
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db, nil)
	if err == nil {
		t.Fatal("expected error when db is nil, got nil")
	}

	if !strings.Contains(err.Error(), "db is nil") {
		t.Errorf("expected 'db is nil' error, got: %v", err)
	}
}

func TestEmbeddedMigrations(t *testing.T) {
	files, err := fs.Glob(embedMigrations, "*.sql")
	if err != nil {
		t.Fatalf("glob embedded migrations: %v", err)
	}
	if len(files) == 0 {
		t.Fatal("expected embedded migrations")
	}

	data, err := fs.ReadFile(embedMigrations, files[0])
	if err != nil {
		t.Fatalf("read %s: %v", files[0], err)
	}
	for _, table := range []string{"saved_notes", "saved_input"} {
		if !strings.Contains(string(data), table) {
			t.Errorf("expected %s to create table %s", files[0], table)
		}
	}
}

func TestGooseLogger_WritesToAppLog(t *testing.T) {
	var buf bytes.Buffer
	l := gooseLogger{log: logger.NewLogger("migrations-test", &buf)}

	l.Printf("OK   %s (%s)\n", "00001_create_saved_state.sql", "1ms")

	out := buf.String()
	if !strings.Contains(out, "OK   00001_create_saved_state.sql (1ms)") {
		t.Errorf("expected goose message in app log, got: %s", out)
	}
	if !strings.Contains(out, `"component":"goose"`) {
		t.Errorf("expected goose component field, got: %s", out)
	}
}
