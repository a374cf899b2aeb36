package history_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nautiquiz/backend/internal/domain/history"
)

func fixedScheduler(now time.Time) history.Scheduler {
	return history.Scheduler{Now: func() time.Time { return now }}
}

func daysAgo(now time.Time, n int) string {
	return now.AddDate(0, 0, -n).Format(history.DateLayout)
}

func TestIsDue(t *testing.T) {
	now := time.Date(2026, 10, 15, 18, 0, 0, 0, time.UTC)
	s := fixedScheduler(now)

	tests := []struct {
		name  string
		entry history.Entry
		want  bool
	}{
		{"wrong answer is due", history.Entry{Score: -1, Date: daysAgo(now, 0)}, true},
		{"zero score is due", history.Entry{Score: 0, Date: daysAgo(now, 0)}, true},
		{"streak 1 answered today", history.Entry{Score: 1, Date: daysAgo(now, 0)}, false},
		{"streak 1 after 2 days", history.Entry{Score: 1, Date: daysAgo(now, 2)}, false},
		{"streak 1 after 3 days", history.Entry{Score: 1, Date: daysAgo(now, 3)}, true},
		{"streak 2 after 6 days", history.Entry{Score: 2, Date: daysAgo(now, 6)}, false},
		{"streak 2 after 7 days", history.Entry{Score: 2, Date: daysAgo(now, 7)}, true},
		{"streak 5 after 14 days", history.Entry{Score: 5, Date: daysAgo(now, 14)}, false},
		{"streak 5 after 15 days", history.Entry{Score: 5, Date: daysAgo(now, 15)}, true},
		{"date only", history.Entry{Score: 3, Date: now.AddDate(0, 0, -15).Format("2006-01-02")}, true},
		{"unparseable date", history.Entry{Score: 3, Date: "yesterday"}, true},
		{"empty date", history.Entry{Score: 3}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.IsDue(tt.entry))
		})
	}
}

func TestIsDue_CalendarDays(t *testing.T) {
	// Answered late in the evening, checked early three days later.
	now := time.Date(2026, 10, 15, 0, 5, 0, 0, time.UTC)
	e := history.Entry{Score: 1, Date: "2026-10-12 23:55:00"}
	assert.True(t, fixedScheduler(now).IsDue(e))
}

func TestIntervalFor(t *testing.T) {
	assert.Equal(t, 0, history.IntervalFor(0))
	assert.Equal(t, 3, history.IntervalFor(1))
	assert.Equal(t, 7, history.IntervalFor(2))
	assert.Equal(t, 15, history.IntervalFor(3))
	assert.Equal(t, 15, history.IntervalFor(42))
}

func TestDaysSince(t *testing.T) {
	now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, history.DaysSince("2026-10-15 01:00:00", now))
	assert.Equal(t, 10, history.DaysSince("2026-10-05", now))
	assert.Equal(t, history.UnknownAge, history.DaysSince("", now))
	assert.Equal(t, history.UnknownAge, history.DaysSince("15/10/2026", now))
}

func TestNewScheduler_WallClock(t *testing.T) {
	today := time.Now().Format("2006-01-02 15:04:05")
	s := history.NewScheduler()
	assert.False(t, s.IsDue(history.Entry{Score: 2, Date: today}))
	assert.True(t, history.Scheduler{}.IsDue(history.Entry{Score: 0, Date: today}))
}
