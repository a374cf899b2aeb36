package store_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nautiquiz/backend/internal/domain/history"
	"github.com/nautiquiz/backend/internal/store"
)

func newSQLite(t *testing.T) *store.SQLiteStore {
	t.Helper()
	s, err := store.NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLite_UpsertAndFetch(t *testing.T) {
	ctx := context.Background()
	s := newSQLite(t)

	e1 := history.Entry{Score: 1, Date: "2026-10-01 10:00:00"}
	require.NoError(t, s.UpsertAnswer(ctx, " Mario ", "12.0", e1))

	h, err := s.FetchHistory(ctx, "mario")
	require.NoError(t, err)
	assert.Equal(t, history.History{"12": e1}, h)

	// Same key again: last write wins, no duplicate rows.
	e2 := history.Entry{Score: -1, Date: "2026-10-02 11:00:00"}
	require.NoError(t, s.UpsertAnswer(ctx, "MARIO", "12", e2))
	require.NoError(t, s.UpsertAnswer(ctx, "mario", "12", e2))

	h, err = s.FetchHistory(ctx, "Mario")
	require.NoError(t, err)
	assert.Equal(t, history.History{"12": e2}, h)
}

func TestSQLite_FetchUnknownUser(t *testing.T) {
	h, err := newSQLite(t).FetchHistory(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, h)
}

func TestSQLite_UsersAreIsolated(t *testing.T) {
	ctx := context.Background()
	s := newSQLite(t)
	require.NoError(t, s.UpsertAnswer(ctx, "anna", "1", history.Entry{Score: 1, Date: "2026-10-01 10:00:00"}))
	require.NoError(t, s.UpsertAnswer(ctx, "bruno", "2", history.Entry{Score: 2, Date: "2026-10-01 10:00:00"}))

	h, err := s.FetchHistory(ctx, "anna")
	require.NoError(t, err)
	assert.Len(t, h, 1)
	assert.Contains(t, h, "1")
}

func TestSQLite_ListUsers(t *testing.T) {
	ctx := context.Background()
	s := newSQLite(t)
	e := history.Entry{Score: 1, Date: "2026-10-01 10:00:00"}
	for _, u := range []string{"zeno", "al", "Anna", "anna", "bob"} {
		require.NoError(t, s.UpsertAnswer(ctx, u, "1", e))
	}

	users, err := s.ListUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"anna", "bob", "zeno"}, users)
}

func TestSQLite_SaveReport(t *testing.T) {
	s := newSQLite(t)
	assert.NoError(t, s.SaveReport(context.Background(), "anna", "12.0", "answer B is also correct"))
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := store.Open(context.Background(), store.Options{Driver: "mongo"})
	assert.Error(t, err)
}

func TestOpen_SQLite(t *testing.T) {
	s, err := store.Open(context.Background(), store.Options{
		Driver:     store.DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "open.db"),
	})
	require.NoError(t, err)
	assert.NoError(t, s.Close())
}

func TestUnavailable(t *testing.T) {
	var s store.Store = store.Unavailable{}
	_, err := s.FetchHistory(context.Background(), "anna")
	assert.ErrorIs(t, err, store.ErrUnavailable)
	assert.ErrorIs(t, s.UpsertAnswer(context.Background(), "anna", "1", history.Entry{}), store.ErrUnavailable)
}
