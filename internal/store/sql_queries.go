package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	savedNotesTable = "saved_notes"
	savedInputTable = "saved_input"

	// saved_input holds exactly one row; its presence marks a saved bundle.
	savedInputRowID = 1

	// insertNotesBatchSize keeps one INSERT at 2*500 bind variables, well
	// under SQLite's per-statement limit.
	insertNotesBatchSize = 500
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func clearNotesQuery() (string, []any, error) {
	return psql.Delete(savedNotesTable).ToSql()
}

func clearInputQuery() (string, []any, error) {
	return psql.Delete(savedInputTable).ToSql()
}

// insertNotesQuery builds a multi-row INSERT for one batch of notes. first
// is the position of notes[0] in the whole list.
func insertNotesQuery(first int, notes []string) (string, []any, error) {
	builder := psql.Insert(savedNotesTable).Columns("position", "text")
	for i, text := range notes {
		builder = builder.Values(first+i, text)
	}
	return builder.ToSql()
}

func insertInputQuery(inputText string) (string, []any, error) {
	return psql.Insert(savedInputTable).
		Columns("id", "text").
		Values(savedInputRowID, inputText).
		ToSql()
}

func selectInputQuery() (string, []any, error) {
	return psql.Select("text").
		From(savedInputTable).
		Where(sq.Eq{"id": savedInputRowID}).
		ToSql()
}

func selectNotesQuery() (string, []any, error) {
	return psql.Select("text").
		From(savedNotesTable).
		OrderBy("position").
		ToSql()
}
