package questionbank_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nautiquiz/backend/internal/domain/history"
	"github.com/nautiquiz/backend/internal/domain/questionbank"
)

func makeQuestions(topic string, from, n int) []questionbank.Question {
	qs := make([]questionbank.Question, n)
	for i := range qs {
		qs[i] = questionbank.Question{
			ID:      fmt.Sprint(from + i),
			Topic:   topic,
			Text:    fmt.Sprintf("Question %d", from+i),
			AnswerA: "a", AnswerB: "b", AnswerC: "c",
			Correct: "B",
		}
	}
	return qs
}

func TestNew_DropsDuplicateIDs(t *testing.T) {
	qs := makeQuestions("Navigazione", 1, 3)
	dup := qs[0]
	dup.Text = "duplicate"
	bank := questionbank.New(questionbank.LicenseBase, append(qs, dup), true)

	assert.Equal(t, 3, bank.Len())
	q, ok := bank.Lookup("1")
	require.True(t, ok)
	assert.Equal(t, "Question 1", q.Text)
	assert.Equal(t, []string{"1", "2", "3"}, bank.IDs())
}

func TestNilBank(t *testing.T) {
	var bank *questionbank.Bank
	assert.Equal(t, 0, bank.Len())
	assert.Nil(t, bank.IDs())
	assert.False(t, bank.Contains("1"))
}

func TestParseLicense(t *testing.T) {
	for in, want := range map[string]questionbank.License{
		"":      questionbank.LicenseBase,
		"Base":  questionbank.LicenseBase,
		"sail":  questionbank.LicenseSail,
		" VELA": questionbank.LicenseSail,
	} {
		got, err := questionbank.ParseLicense(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := questionbank.ParseLicense("yacht")
	assert.Error(t, err)
}

func TestOptions_Base(t *testing.T) {
	q := questionbank.Question{ID: "1", AnswerA: "left", AnswerB: "right", AnswerC: " ", Correct: " b "}
	opts := q.Options(questionbank.LicenseBase, rand.New(rand.NewSource(1)))

	require.Len(t, opts, 2)
	correct := 0
	for _, o := range opts {
		if o.Correct {
			correct++
			assert.Equal(t, "B", o.Key)
		}
	}
	assert.Equal(t, 1, correct)
}

func TestOptions_Sail(t *testing.T) {
	for _, token := range []string{"A", "v", "Vero", "TRUE"} {
		q := questionbank.Question{ID: "1", Correct: token}
		opts := q.Options(questionbank.LicenseSail, nil)
		require.Len(t, opts, 2)
		assert.True(t, opts[0].Correct, token)
		assert.False(t, opts[1].Correct, token)
	}

	q := questionbank.Question{ID: "2", Correct: "F"}
	opts := q.Options(questionbank.LicenseSail, nil)
	assert.False(t, opts[0].Correct)
	assert.True(t, opts[1].Correct)
}

func TestCheckAnswer(t *testing.T) {
	q := questionbank.Question{ID: "1", AnswerA: "a", AnswerB: "b", AnswerC: "c", Correct: "C"}
	ok, key := q.CheckAnswer(questionbank.LicenseBase, "c")
	assert.True(t, ok)
	assert.Equal(t, "C", key)

	ok, _ = q.CheckAnswer(questionbank.LicenseBase, "A")
	assert.False(t, ok)

	sail := questionbank.Question{ID: "2", Correct: "FALSO"}
	ok, key = sail.CheckAnswer(questionbank.LicenseSail, questionbank.KeyFalse)
	assert.True(t, ok)
	assert.Equal(t, questionbank.KeyFalse, key)
}

func TestAggregate(t *testing.T) {
	qs := makeQuestions("Navigazione", 1, 10)
	bank := questionbank.New(questionbank.LicenseBase, qs, true)

	h := history.History{
		"1": {Score: 1}, "2": {Score: 2}, "3.0": {Score: 3}, " 4": {Score: 1},
		"5": {Score: -1}, "6": {Score: -1},
		"999": {Score: 4}, // not in the bank
	}
	stats := questionbank.Aggregate(bank, h)

	require.Len(t, stats, 1)
	st := stats[0]
	assert.Equal(t, "Navigazione", st.Topic)
	assert.Equal(t, 10, st.Total)
	assert.Equal(t, 6, st.Answered)
	assert.Equal(t, 4, st.Correct)
	assert.Equal(t, 2, st.Wrong)
	assert.Equal(t, 60.0, st.CompletionPct)
	assert.InDelta(t, 66.7, st.AccuracyPct, 0.01)
}

func TestAggregate_MultipleTopicsAndEmptyHistory(t *testing.T) {
	qs := append(makeQuestions("Meteorologia", 1, 4), makeQuestions("Colreg", 5, 2)...)
	bank := questionbank.New(questionbank.LicenseBase, qs, true)

	stats := questionbank.Aggregate(bank, history.History{"5": {Score: 1}})
	require.Len(t, stats, 2)
	assert.Equal(t, "Colreg", stats[0].Topic)
	assert.Equal(t, 50.0, stats[0].CompletionPct)
	assert.Equal(t, 100.0, stats[0].AccuracyPct)
	assert.Equal(t, 0.0, stats[1].CompletionPct)
	assert.Equal(t, 0.0, stats[1].AccuracyPct)

	questionbank.SortByCompletion(stats)
	assert.Equal(t, "Colreg", stats[0].Topic)
}

func TestAggregate_NoTopics(t *testing.T) {
	bank := questionbank.New(questionbank.LicenseBase, makeQuestions("", 1, 3), false)
	stats := questionbank.Aggregate(bank, history.History{"1": {Score: 1}})
	assert.NotNil(t, stats)
	assert.Empty(t, stats)
}

func TestSummarize(t *testing.T) {
	bank := questionbank.New(questionbank.LicenseBase, makeQuestions("Scafo", 1, 5), true)
	h := history.History{
		"1": {Score: 2}, "2.0": {Score: -1}, "77": {Score: -1}, "78": {Score: 1},
	}
	s := questionbank.Summarize(bank, h)
	assert.Equal(t, 2, s.Mastered)
	assert.Equal(t, 1, s.Errors)
	assert.Equal(t, "Mozzo", s.Rank)
	assert.Equal(t, 100, s.NextRankAt)
}

func TestRank(t *testing.T) {
	tests := []struct {
		mastered int
		title    string
		next     int
	}{
		{0, "Mozzo", 100},
		{100, "Marinaio", 300},
		{499, "Nostromo", 500},
		{650, "Comandante", 700},
		{700, "Lupo di Mare", 1000},
		{5000, "Lupo di Mare", 1000},
	}
	for _, tt := range tests {
		title, next := questionbank.Rank(tt.mastered)
		assert.Equal(t, tt.title, title)
		assert.Equal(t, tt.next, next)
	}
}
