package questionbank

import (
	"math"
	"sort"

	"github.com/nautiquiz/backend/internal/domain/history"
)

// TopicStat summarizes a user's progress on one topic of a bank.
type TopicStat struct {
	Topic         string  `json:"topic"`
	Total         int     `json:"total"`
	Answered      int     `json:"answered"`
	Correct       int     `json:"correct"` // current score > 0
	Wrong         int     `json:"wrong"`
	CompletionPct float64 `json:"completion_pct"` // answered / total
	AccuracyPct   float64 `json:"accuracy_pct"`   // correct / answered
}

// Aggregate groups the bank by topic and rolls up the user's history for
// each group. Topics are returned in name order. A bank without topics
// yields no stats.
func Aggregate(bank *Bank, h history.History) []TopicStat {
	if bank.Len() == 0 || !bank.HasTopics {
		return []TopicStat{}
	}
	h = history.Normalize(h)

	byTopic := make(map[string]*TopicStat)
	for _, q := range bank.Questions {
		st, ok := byTopic[q.Topic]
		if !ok {
			st = &TopicStat{Topic: q.Topic}
			byTopic[q.Topic] = st
		}
		st.Total++
		e, answered := h[history.NormalizeID(q.ID)]
		if !answered {
			continue
		}
		st.Answered++
		if e.Mastered() {
			st.Correct++
		}
	}

	stats := make([]TopicStat, 0, len(byTopic))
	for _, st := range byTopic {
		st.Wrong = st.Answered - st.Correct
		st.CompletionPct = percent(st.Answered, st.Total)
		st.AccuracyPct = percent(st.Correct, st.Answered)
		stats = append(stats, *st)
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Topic < stats[j].Topic })
	return stats
}

// SortByCompletion orders stats by completion percentage, highest first.
func SortByCompletion(stats []TopicStat) {
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].CompletionPct > stats[j].CompletionPct
	})
}

// percent returns 100*part/whole rounded to one decimal, 0 for an empty whole.
func percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return math.Round(float64(part)*1000/float64(whole)) / 10
}

// Summary is the headline progress for a user on one bank.
type Summary struct {
	Mastered   int    `json:"mastered"`
	Errors     int    `json:"errors"` // questions of this bank whose last answer was wrong
	Rank       string `json:"rank"`
	NextRankAt int    `json:"next_rank_at"`
}

// Summarize computes the headline progress. Mastered counts every positive
// entry of the user; Errors only those belonging to bank.
func Summarize(bank *Bank, h history.History) Summary {
	h = history.Normalize(h)
	s := Summary{Mastered: h.MasteredCount()}
	for id, e := range h {
		if e.Score == history.ScoreWrong && bank.Contains(id) {
			s.Errors++
		}
	}
	s.Rank, s.NextRankAt = Rank(s.Mastered)
	return s
}

var ranks = []struct {
	below int
	title string
}{
	{100, "Mozzo"},
	{300, "Marinaio"},
	{500, "Nostromo"},
	{700, "Comandante"},
}

// Rank maps a mastered-question count onto a nautical rank and the count
// needed for the next one.
func Rank(mastered int) (string, int) {
	for _, r := range ranks {
		if mastered < r.below {
			return r.title, r.below
		}
	}
	return "Lupo di Mare", 1000
}
