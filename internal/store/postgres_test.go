package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nautiquiz/backend/internal/domain/history"
)

func newMockPostgres(t *testing.T) (*PostgresStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	s := NewPostgresFromDB(db)
	s.now = func() time.Time { return time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC) }
	return s, mock
}

func TestPostgres_FetchHistory(t *testing.T) {
	s, mock := newMockPostgres(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT question_id, score, "timestamp" FROM history WHERE user_id = $1`)).
		WithArgs("mario").
		WillReturnRows(sqlmock.NewRows([]string{"question_id", "score", "timestamp"}).
			AddRow("12", 2, "2026-10-01 10:00:00").
			AddRow("13", -1, "2026-10-02 10:00:00"))

	h, err := s.FetchHistory(context.Background(), " Mario")
	require.NoError(t, err)
	assert.Equal(t, history.History{
		"12": {Score: 2, Date: "2026-10-01 10:00:00"},
		"13": {Score: -1, Date: "2026-10-02 10:00:00"},
	}, h)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_FetchHistoryError(t *testing.T) {
	s, mock := newMockPostgres(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT question_id")).WillReturnError(errors.New("connection reset"))

	_, err := s.FetchHistory(context.Background(), "mario")
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_UpsertAnswer(t *testing.T) {
	s, mock := newMockPostgres(t)

	mock.ExpectExec(regexp.QuoteMeta(`ON CONFLICT (user_id, question_id) DO UPDATE`)).
		WithArgs("mario", "12", 3, "2026-10-15 09:00:00").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := s.UpsertAnswer(context.Background(), "MARIO", "12.0", history.Entry{Score: 3, Date: "2026-10-15 09:00:00"})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_ListUsers(t *testing.T) {
	s, mock := newMockPostgres(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT user_id FROM history ORDER BY user_id")).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow("al").AddRow("anna").AddRow("bob"))

	users, err := s.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"anna", "bob"}, users)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_SaveReport(t *testing.T) {
	s, mock := newMockPostgres(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO reports")).
		WithArgs("anna", "7", "typo in answer C", "2026-10-15 09:00:00").
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, s.SaveReport(context.Background(), "Anna", "7.0", "typo in answer C"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_Migrate(t *testing.T) {
	s, mock := newMockPostgres(t)
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS history")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, s.Migrate(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
