package dataset

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/parquet-go/parquet-go"
	"github.com/xuri/excelize/v2"

	"github.com/nautiquiz/backend/internal/domain/questionbank"
)

// ErrNoData is returned when no encoding of a dataset could be read.
var ErrNoData = errors.New("dataset: no data available")

// Loader reads datasets, logging every source it had to skip.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a Loader.
func NewLoader(logger *slog.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the parquet file at primaryPath, falling back to the xlsx file
// at fallbackPath. It never fails: when neither source can be read the
// returned table is empty.
func (l *Loader) Load(primaryPath, fallbackPath string) *Table {
	t, err := l.load(primaryPath, fallbackPath)
	if err != nil {
		l.logger.Warn("dataset unavailable", "parquet", primaryPath, "xlsx", fallbackPath, "error", err)
		return &Table{}
	}
	t.normalize()
	return t
}

func (l *Loader) load(primaryPath, fallbackPath string) (*Table, error) {
	if primaryPath != "" {
		t, err := readParquet(primaryPath)
		if err == nil {
			return t, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			l.logger.Warn("parquet read failed, trying spreadsheet", "path", primaryPath, "error", err)
		}
	}
	if fallbackPath != "" {
		t, err := readSpreadsheet(fallbackPath)
		if err == nil {
			return t, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read %s: %w", fallbackPath, err)
		}
	}
	return nil, ErrNoData
}

// LoadBank loads a question dataset and converts it to a bank.
func (l *Loader) LoadBank(license questionbank.License, primaryPath, fallbackPath string) *questionbank.Bank {
	t := l.Load(primaryPath, fallbackPath)
	bank := BankFromTable(license, t)
	if dropped := len(t.Rows) - bank.Len(); dropped > 0 {
		l.logger.Warn("dataset has rows without a usable identifier or duplicated identifiers",
			"license", license, "dropped", dropped)
	}
	return bank
}

// BankFromTable maps table rows to questions. A table lacking a topic
// column gets DefaultTopic for every row.
func BankFromTable(license questionbank.License, t *Table) *questionbank.Bank {
	if t.Empty() || !t.Has(ColumnID) {
		return questionbank.New(license, nil, t.Has(ColumnTopic))
	}
	t.ensureColumn(ColumnTopic, questionbank.DefaultTopic)

	questions := make([]questionbank.Question, 0, len(t.Rows))
	for i := range t.Rows {
		id := t.Value(i, ColumnID)
		if id == "" {
			continue
		}
		topic := t.Value(i, ColumnTopic)
		if topic == "" {
			topic = questionbank.DefaultTopic
		}
		questions = append(questions, questionbank.Question{
			ID:          id,
			Topic:       topic,
			Subtopic:    t.Value(i, ColumnSubtopic),
			Text:        t.Value(i, ColumnQuestion),
			AnswerA:     t.Value(i, ColumnAnswerA),
			AnswerB:     t.Value(i, ColumnAnswerB),
			AnswerC:     t.Value(i, ColumnAnswerC),
			Correct:     t.Value(i, ColumnCorrect),
			Explanation: t.Value(i, ColumnExplanation),
		})
	}
	return questionbank.New(license, questions, true)
}

// readSpreadsheet reads the first sheet of an xlsx file. The first row holds
// the column names. Cells are kept as text with missing markers blanked.
func readSpreadsheet(path string) (*Table, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open spreadsheet: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("spreadsheet %s has no sheets", path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) == 0 {
		return &Table{}, nil
	}

	t := &Table{Columns: rows[0]}
	for _, r := range rows[1:] {
		row := make([]string, len(t.Columns))
		for i := 0; i < len(row) && i < len(r); i++ {
			row[i] = blankCell(r[i])
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// readParquet reads every row group of a flat parquet file into a table.
func readParquet(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, err
	}
	pf, err := parquet.OpenFile(file, info.Size())
	if err != nil {
		return nil, fmt.Errorf("open parquet: %w", err)
	}

	fields := pf.Schema().Fields()
	t := &Table{Columns: make([]string, len(fields))}
	for i, f := range fields {
		t.Columns[i] = f.Name()
	}

	buf := make([]parquet.Row, 128)
	for _, rg := range pf.RowGroups() {
		if err := readRowGroup(rg, buf, t); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func readRowGroup(rg parquet.RowGroup, buf []parquet.Row, t *Table) error {
	rows := rg.Rows()
	defer rows.Close()

	for {
		n, err := rows.ReadRows(buf)
		for _, r := range buf[:n] {
			row := make([]string, len(t.Columns))
			for _, v := range r {
				if c := v.Column(); c >= 0 && c < len(row) {
					row[c] = valueText(v)
				}
			}
			t.Rows = append(t.Rows, row)
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read parquet rows: %w", err)
		}
		if n == 0 {
			return nil
		}
	}
}

func valueText(v parquet.Value) string {
	if v.IsNull() {
		return ""
	}
	switch v.Kind() {
	case parquet.Boolean:
		return strconv.FormatBool(v.Boolean())
	case parquet.Int32:
		return strconv.FormatInt(int64(v.Int32()), 10)
	case parquet.Int64:
		return strconv.FormatInt(v.Int64(), 10)
	case parquet.Float:
		return strconv.FormatFloat(float64(v.Float()), 'f', -1, 32)
	case parquet.Double:
		return strconv.FormatFloat(v.Double(), 'f', -1, 64)
	case parquet.ByteArray, parquet.FixedLenByteArray:
		return blankCell(string(v.ByteArray()))
	}
	return ""
}
