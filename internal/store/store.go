package store

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/nautiquiz/backend/internal/domain/history"
)

var (
	ErrNotFound    = errors.New("not found")
	ErrUnavailable = errors.New("history store unavailable")
)

// Store persists answer history and question reports.
//
// UpsertAnswer is keyed by (user, question) and overwrites any previous
// entry, so repeating a write is harmless.
type Store interface {
	FetchHistory(ctx context.Context, userID string) (history.History, error)
	UpsertAnswer(ctx context.Context, userID, questionID string, entry history.Entry) error
	ListUsers(ctx context.Context) ([]string, error)
	SaveReport(ctx context.Context, userID, questionID, message string) error
	Close() error
}

// NormalizeUser canonicalizes a free-text user name.
func NormalizeUser(userID string) string {
	return strings.ToLower(strings.TrimSpace(userID))
}

// minUserLength filters out accidental one- and two-letter user names.
const minUserLength = 3

// plausibleUsers keeps the names that look like real users. The input is
// expected to be sorted and unique.
func plausibleUsers(users []string) []string {
	out := make([]string, 0, len(users))
	for _, u := range users {
		if utf8.RuneCountInString(u) >= minUserLength {
			out = append(out, u)
		}
	}
	return out
}
