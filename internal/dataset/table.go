// Package dataset loads question banks and image maps from disk. Every
// dataset exists in two encodings: a parquet file, read first, and an xlsx
// spreadsheet used when the parquet file is missing or unreadable.
package dataset

import (
	"strings"

	"github.com/nautiquiz/backend/internal/domain/history"
	"github.com/nautiquiz/backend/internal/domain/questionbank"
)

// Column names used by the question datasets.
const (
	ColumnID          = "ID Progressivo"
	ColumnTopic       = "Argomento"
	ColumnSubtopic    = "Sottoargomento"
	ColumnQuestion    = "Domanda"
	ColumnAnswerA     = "Risposta A"
	ColumnAnswerB     = "Risposta B"
	ColumnAnswerC     = "Risposta C"
	ColumnCorrect     = "Risposta Esatta"
	ColumnExplanation = "Spiegazione"
)

// Table is a column-named grid of text cells.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Empty reports whether the table has no rows.
func (t *Table) Empty() bool {
	return t == nil || len(t.Rows) == 0
}

// Index returns the position of column name, or -1.
func (t *Table) Index(name string) int {
	if t == nil {
		return -1
	}
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Has reports whether the table has column name.
func (t *Table) Has(name string) bool {
	return t.Index(name) >= 0
}

// Value returns the cell of row at column name, or "" when either is missing.
func (t *Table) Value(row int, name string) string {
	i := t.Index(name)
	if i < 0 || row < 0 || row >= len(t.Rows) || i >= len(t.Rows[row]) {
		return ""
	}
	return t.Rows[row][i]
}

// normalize applies the cleanup shared by both encodings: trimmed column
// names, canonical identifiers and a topic column that always exists.
func (t *Table) normalize() {
	for i, c := range t.Columns {
		t.Columns[i] = strings.TrimSpace(c)
	}
	for i, row := range t.Rows {
		if len(row) < len(t.Columns) {
			padded := make([]string, len(t.Columns))
			copy(padded, row)
			t.Rows[i] = padded
		}
	}
	if id := t.Index(ColumnID); id >= 0 {
		for _, row := range t.Rows {
			row[id] = history.NormalizeID(row[id])
		}
	}
	t.ensureColumn(ColumnTopic, questionbank.DefaultTopic)
}

// ensureColumn appends column name filled with value when it is absent.
func (t *Table) ensureColumn(name, value string) {
	if t.Has(name) {
		return
	}
	t.Columns = append(t.Columns, name)
	for i := range t.Rows {
		t.Rows[i] = append(t.Rows[i], value)
	}
}

// blankCell maps textual missing-value markers to the empty string.
func blankCell(v string) string {
	switch strings.TrimSpace(v) {
	case "nan", "NaN", "NAN", "None", "<NA>":
		return ""
	}
	return v
}
