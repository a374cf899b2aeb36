// Package history models a user's per-question answer record and the
// spaced-repetition schedule derived from it.
package history

import (
	"strings"
	"time"
)

// DateLayout is the timestamp format used by the history store.
const DateLayout = "2006-01-02 15:04:05"

// Score values with a special meaning.
const (
	ScoreWrong = -1 // most recent answer was wrong
)

// Entry is the record for one (user, question) pair.
//
// Score is -1 after a wrong answer, otherwise the length of the current
// streak of correct answers.
type Entry struct {
	Score int    `json:"score"`
	Date  string `json:"date"`
}

// Mastered reports whether the question has a positive correct streak.
func (e Entry) Mastered() bool { return e.Score > 0 }

// History maps question IDs to entries for a single user.
type History map[string]Entry

// NormalizeID canonicalizes a question identifier: surrounding whitespace and
// any trailing ".0" left over from numeric-to-text coercion are removed.
// NormalizeID(NormalizeID(s)) == NormalizeID(s).
func NormalizeID(id string) string {
	for {
		trimmed := strings.TrimSpace(id)
		trimmed = strings.TrimSuffix(trimmed, ".0")
		if trimmed == id {
			return id
		}
		id = trimmed
	}
}

// Normalize returns a copy of raw with every key passed through NormalizeID.
// When two raw keys collide the entry with the later date wins.
func Normalize(raw History) History {
	out := make(History, len(raw))
	for k, v := range raw {
		id := NormalizeID(k)
		if prev, ok := out[id]; ok && !newer(v, prev) {
			continue
		}
		out[id] = v
	}
	return out
}

// Merge returns the normalized base with recent laid over it. A base entry
// survives only when its date is later than the recent one.
func Merge(base, recent History) History {
	out := Normalize(base)
	for k, v := range recent {
		id := NormalizeID(k)
		if prev, ok := out[id]; ok && prev.Date > v.Date {
			continue
		}
		out[id] = v
	}
	return out
}

func newer(a, b Entry) bool {
	if a.Date != b.Date {
		return a.Date > b.Date
	}
	return a.Score > b.Score
}

// NextScore computes the score after answering a question whose previous
// entry is prev (ok is false for a question never answered before).
// A wrong answer always resets to -1; a correct one extends a positive
// streak or restarts it at 1.
func NextScore(prev Entry, ok bool, correct bool) int {
	switch {
	case !correct:
		return ScoreWrong
	case ok && prev.Score > 0:
		return prev.Score + 1
	default:
		return 1
	}
}

// Record applies an answer to h, overwriting the previous entry for the
// question, and returns the new entry.
func (h History) Record(questionID string, correct bool, at time.Time) Entry {
	id := NormalizeID(questionID)
	prev, ok := h[id]
	e := Entry{
		Score: NextScore(prev, ok, correct),
		Date:  at.Format(DateLayout),
	}
	h[id] = e
	return e
}

// MasteredCount returns how many entries have a positive streak.
func (h History) MasteredCount() int {
	n := 0
	for _, e := range h {
		if e.Mastered() {
			n++
		}
	}
	return n
}
