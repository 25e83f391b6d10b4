// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/models"
)

// sqliteStateStore keeps the bundle in two tables: saved_notes, one row per
// note ordered by position, and saved_input, a single row with the input
// text. Save and Clear rewrite both tables in one transaction.
type sqliteStateStore struct {
	db     *DB
	logger *logger.Logger
}

// NewSQLiteStateStore returns a [StateStore] over an already migrated db.
func NewSQLiteStateStore(db *DB, log *logger.Logger) StateStore {
	return &sqliteStateStore{db: db, logger: log}
}

func (s *sqliteStateStore) Save(ctx context.Context, snapshot models.Snapshot) error {
	return s.inTx(ctx, "sqliteStateStore.Save", func(tx *sql.Tx) error {
		if err := s.clear(ctx, tx); err != nil {
			return err
		}

		for start := 0; start < len(snapshot.Notes); start += insertNotesBatchSize {
			end := min(start+insertNotesBatchSize, len(snapshot.Notes))
			query, args, err := insertNotesQuery(start, snapshot.Notes[start:end])
			if err != nil {
				return fmt.Errorf("build insert notes query: %w", err)
			}
			if _, err = tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("insert saved notes: %w", err)
			}
		}

		query, args, err := insertInputQuery(snapshot.InputText)
		if err != nil {
			return fmt.Errorf("build insert input query: %w", err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert saved input: %w", err)
		}
		return nil
	})
}

func (s *sqliteStateStore) Load(ctx context.Context) (models.Snapshot, error) {
	query, args, err := selectInputQuery()
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("build select input query: %w", err)
	}

	var snapshot models.Snapshot
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&snapshot.InputText)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Snapshot{}, ErrNoSavedState
	}
	if err != nil {
		s.logger.Err(err).Str("func", "sqliteStateStore.Load").Msg("failed to query saved input")
		return models.Snapshot{}, fmt.Errorf("query saved input: %w", err)
	}

	query, args, err = selectNotesQuery()
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("build select notes query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		s.logger.Err(err).Str("func", "sqliteStateStore.Load").Msg("failed to query saved notes")
		return models.Snapshot{}, fmt.Errorf("query saved notes: %w", err)
	}
	defer rows.Close()

	snapshot.Notes = make([]string, 0)
	for rows.Next() {
		var text string
		if err = rows.Scan(&text); err != nil {
			return models.Snapshot{}, fmt.Errorf("scan saved note: %w", err)
		}
		snapshot.Notes = append(snapshot.Notes, text)
	}
	if err = rows.Err(); err != nil {
		return models.Snapshot{}, fmt.Errorf("iterate saved notes: %w", err)
	}

	return snapshot, nil
}

func (s *sqliteStateStore) Clear(ctx context.Context) error {
	return s.inTx(ctx, "sqliteStateStore.Clear", func(tx *sql.Tx) error {
		return s.clear(ctx, tx)
	})
}

func (s *sqliteStateStore) Close() error {
	return s.db.Close()
}

func (s *sqliteStateStore) clear(ctx context.Context, tx *sql.Tx) error {
	for _, build := range []func() (string, []any, error){clearNotesQuery, clearInputQuery} {
		query, args, err := build()
		if err != nil {
			return fmt.Errorf("build clear query: %w", err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("clear saved state: %w", err)
		}
	}
	return nil
}

func (s *sqliteStateStore) inTx(ctx context.Context, funcName string, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Err(err).Str("func", funcName).Msg("failed to begin transaction")
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err = fn(tx); err != nil {
		s.logger.Err(err).Str("func", funcName).Msg("rolling back saved state transaction")
		if rbErr := tx.Rollback(); rbErr != nil {
			return errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		s.logger.Err(err).Str("func", funcName).Msg("failed to commit transaction")
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
