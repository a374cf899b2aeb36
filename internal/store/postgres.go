package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/nautiquiz/backend/internal/domain/history"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS history (
    user_id TEXT NOT NULL,
    question_id TEXT NOT NULL,
    score INTEGER NOT NULL,
    "timestamp" TEXT NOT NULL,
    PRIMARY KEY (user_id, question_id)
);

CREATE TABLE IF NOT EXISTS reports (
    id BIGSERIAL PRIMARY KEY,
    user_id TEXT NOT NULL,
    question_id TEXT NOT NULL,
    message TEXT NOT NULL,
    created_at TEXT NOT NULL
);
`

// PostgresStore keeps history in a hosted Postgres database, the same
// history/reports layout as the sqlite store.
type PostgresStore struct {
	db  *sql.DB
	now func() time.Time
}

var _ Store = (*PostgresStore)(nil)

// NewPostgres connects with the pgx driver and creates the tables.
func NewPostgres(ctx context.Context, dsn string) (*PostgresStore, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: ping postgres: %v", ErrUnavailable, err)
	}
	s := NewPostgresFromDB(db)
	if err := s.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// NewPostgresFromDB wraps an already opened database.
func NewPostgresFromDB(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db, now: time.Now}
}

// Migrate creates the tables when missing.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, postgresSchema); err != nil {
		return fmt.Errorf("migrate postgres: %w", err)
	}
	return nil
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}

func (s *PostgresStore) FetchHistory(ctx context.Context, userID string) (history.History, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT question_id, score, "timestamp" FROM history WHERE user_id = $1`,
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

func (s *PostgresStore) UpsertAnswer(ctx context.Context, userID, questionID string, entry history.Entry) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO history (user_id, question_id, score, "timestamp") VALUES ($1, $2, $3, $4) `+
			`ON CONFLICT (user_id, question_id) DO UPDATE SET score = EXCLUDED.score, "timestamp" = EXCLUDED."timestamp"`,
		NormalizeUser(userID), history.NormalizeID(questionID), entry.Score, entry.Date)
	if err != nil {
		return fmt.Errorf("upsert answer: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListUsers(ctx context.Context) ([]string, error) {
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

func (s *PostgresStore) SaveReport(ctx context.Context, userID, questionID, message string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO reports (user_id, question_id, message, created_at) VALUES ($1, $2, $3, $4)",
		NormalizeUser(userID), history.NormalizeID(questionID), message,
		s.now().Format(history.DateLayout))
	if err != nil {
		return fmt.Errorf("save report: %w", err)
	}
	return nil
}
