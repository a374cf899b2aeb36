// internal/store/sqlite.go
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/nautiquiz/backend/internal/domain/history"
)

const schema = `
CREATE TABLE IF NOT EXISTS history (
    user_id TEXT NOT NULL,
    question_id TEXT NOT NULL,
    score INTEGER NOT NULL,
    timestamp TEXT NOT NULL,
    PRIMARY KEY (user_id, question_id)
);

CREATE TABLE IF NOT EXISTS reports (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id TEXT NOT NULL,
    question_id TEXT NOT NULL,
    message TEXT NOT NULL,
    created_at TEXT NOT NULL
);
`

type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

func NewSQLite(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	// sqlite allows a single writer at a time.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// ============================================================================
// History
// ============================================================================

func (s *SQLiteStore) FetchHistory(ctx context.Context, userID string) (history.History, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT question_id, score, timestamp FROM history WHERE user_id = ?",
		NormalizeUser(userID))
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	h := history.History{}
	for rows.Next() {
		var qid string
		var e history.Entry
		if err := rows.Scan(&qid, &e.Score, &e.Date); err != nil {
			return nil, err
		}
		h[qid] = e
	}
	return h, rows.Err()
}

func (s *SQLiteStore) UpsertAnswer(ctx context.Context, userID, questionID string, entry history.Entry) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO history (user_id, question_id, score, timestamp)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (user_id, question_id)
		DO UPDATE SET score = excluded.score, timestamp = excluded.timestamp
	`, NormalizeUser(userID), history.NormalizeID(questionID), entry.Score, entry.Date)
	if err != nil {
		return fmt.Errorf("upsert answer: %w", err)
	}
	return nil
}

func (s *SQLiteStore) ListUsers(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT DISTINCT user_id FROM history ORDER BY user_id")
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	var users []string
	for rows.Next() {
		var u string
		if err := rows.Scan(&u); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return plausibleUsers(users), nil
}

// ============================================================================
// Reports
// ============================================================================

func (s *SQLiteStore) SaveReport(ctx context.Context, userID, questionID, message string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO reports (user_id, question_id, message, created_at) VALUES (?, ?, ?, ?)",
		NormalizeUser(userID), history.NormalizeID(questionID), message,
		time.Now().Format(history.DateLayout))
	if err != nil {
		return fmt.Errorf("save report: %w", err)
	}
	return nil
}
