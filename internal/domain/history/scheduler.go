package history

import (
	"strings"
	"time"
)

// Intervals holds the review interval in days for streak lengths 0..3.
// Longer streaks use the last rung.
var Intervals = [...]int{0, 3, 7, 15}

// UnknownAge is the age in days assumed for an entry whose date cannot be
// read. It is larger than any interval, so such entries are always due.
const UnknownAge = 9999

// Scheduler decides when a question should be shown again.
type Scheduler struct {
	Now func() time.Time
}

// NewScheduler returns a scheduler using the wall clock.
func NewScheduler() Scheduler {
	return Scheduler{Now: time.Now}
}

func (s Scheduler) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

// IsDue reports whether the question behind e should be reviewed today.
func (s Scheduler) IsDue(e Entry) bool {
	if e.Score <= 0 {
		return true
	}
	return DaysSince(e.Date, s.now()) >= IntervalFor(e.Score)
}

// IntervalFor returns the review interval for a positive streak length.
func IntervalFor(score int) int {
	if score < 0 {
		score = 0
	}
	if score >= len(Intervals) {
		score = len(Intervals) - 1
	}
	return Intervals[score]
}

// DaysSince returns the number of calendar days between the date part of a
// stored timestamp and now. Both "2006-01-02" and "2006-01-02 15:04:05" are
// accepted; anything else yields UnknownAge.
func DaysSince(date string, now time.Time) int {
	fields := strings.Fields(date)
	if len(fields) == 0 {
		return UnknownAge
	}
	last, err := time.Parse("2006-01-02", fields[0])
	if err != nil {
		return UnknownAge
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return int(today.Sub(last).Hours() / 24)
}
