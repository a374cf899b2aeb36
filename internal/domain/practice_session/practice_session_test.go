package practicesession_test

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nautiquiz/backend/internal/domain/history"
	practicesession "github.com/nautiquiz/backend/internal/domain/practice_session"
	"github.com/nautiquiz/backend/internal/domain/questionbank"
)

var now = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

func scheduler() history.Scheduler {
	return history.Scheduler{Now: func() time.Time { return now }}
}

func newRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

func createBank(n int) *questionbank.Bank {
	qs := make([]questionbank.Question, n)
	for i := range qs {
		qs[i] = questionbank.Question{ID: fmt.Sprint(i + 1), Topic: "Navigazione", Text: fmt.Sprintf("Q%d", i+1)}
	}
	return questionbank.New(questionbank.LicenseBase, qs, true)
}

func ids(questions []questionbank.Question) []string {
	out := make([]string, len(questions))
	for i, q := range questions {
		out[i] = q.ID
	}
	return out
}

func assertUnique(t *testing.T, questions []questionbank.Question) {
	t.Helper()
	seen := make(map[string]bool)
	for _, q := range questions {
		assert.False(t, seen[q.ID], "duplicate question %s", q.ID)
		seen[q.ID] = true
	}
}

func at(daysAgo int) string {
	return now.AddDate(0, 0, -daysAgo).Format(history.DateLayout)
}

func TestClassify(t *testing.T) {
	bank := createBank(6)
	h := history.History{
		"1":   {Score: -1, Date: at(0)},
		"2.0": {Score: 1, Date: at(5)}, // due
		"3":   {Score: 1, Date: at(1)}, // mastered, not due
		"4":   {Score: 3, Date: "garbage"},
	}
	b := practicesession.Classify(bank, h, scheduler())

	assert.Equal(t, []string{"1"}, b.Errors)
	assert.ElementsMatch(t, []string{"2", "4"}, b.Due)
	assert.Equal(t, []string{"5", "6"}, b.New)
}

func TestSelectTraining_EmptyHistory(t *testing.T) {
	for _, n := range []int{5, 20, 50} {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			bank := createBank(n)
			batch := practicesession.SelectTraining(bank, history.History{}, practicesession.DefaultConfig(), scheduler(), newRand())

			want := n
			if want > 20 {
				want = 20
			}
			assert.Equal(t, practicesession.KindTraining, batch.Kind)
			assert.Len(t, batch.Questions, want)
			assertUnique(t, batch.Questions)
			for _, q := range batch.Questions {
				assert.True(t, bank.Contains(q.ID))
			}
		})
	}
}

func TestSelectTraining_ReviewShare(t *testing.T) {
	bank := createBank(100)
	h := history.History{}
	for i := 1; i <= 40; i++ {
		h[fmt.Sprint(i)] = history.Entry{Score: 1, Date: at(10)} // all due
	}

	batch := practicesession.SelectTraining(bank, h, practicesession.DefaultConfig(), scheduler(), newRand())
	require.Len(t, batch.Questions, 20)
	assertUnique(t, batch.Questions)

	review := 0
	for _, q := range batch.Questions {
		if _, ok := h[q.ID]; ok {
			review++
		}
	}
	assert.Equal(t, 6, review)
}

func TestSelectTraining_DefaultTargetKeepsReviewShare(t *testing.T) {
	bank := createBank(100)
	h := history.History{}
	for i := 1; i <= 40; i++ {
		h[fmt.Sprint(i)] = history.Entry{Score: 1, Date: at(10)}
	}

	cfg := practicesession.SessionConfig{ReviewPercent: 30}
	batch := practicesession.SelectTraining(bank, h, cfg, scheduler(), newRand())
	require.Len(t, batch.Questions, 20)

	review := 0
	for _, q := range batch.Questions {
		if _, ok := h[q.ID]; ok {
			review++
		}
	}
	assert.Equal(t, 6, review)
}

func TestSelectTraining_FewNewQuestions(t *testing.T) {
	bank := createBank(30)
	h := history.History{}
	for i := 1; i <= 27; i++ {
		h[fmt.Sprint(i)] = history.Entry{Score: 2, Date: at(0)} // mastered, not due
	}

	batch := practicesession.SelectTraining(bank, h, practicesession.DefaultConfig(), scheduler(), newRand())
	require.Len(t, batch.Questions, 20)
	assertUnique(t, batch.Questions)
	got := ids(batch.Questions)
	for _, id := range []string{"28", "29", "30"} {
		assert.Contains(t, got, id)
	}
}

func TestSelectTraining_CustomTarget(t *testing.T) {
	bank := createBank(50)
	cfg := practicesession.SessionConfig{TargetCount: 10, ReviewPercent: 30}
	batch := practicesession.SelectTraining(bank, history.History{}, cfg, scheduler(), newRand())
	assert.Len(t, batch.Questions, 10)
}

func TestSelectTraining_Randomized(t *testing.T) {
	bank := createBank(40)
	rng := newRand()
	first := ids(practicesession.SelectTraining(bank, history.History{}, practicesession.DefaultConfig(), scheduler(), rng).Questions)

	different := false
	for i := 0; i < 10 && !different; i++ {
		next := ids(practicesession.SelectTraining(bank, history.History{}, practicesession.DefaultConfig(), scheduler(), rng).Questions)
		different = strings.Join(first, ",") != strings.Join(next, ",")
	}
	assert.True(t, different, "expected training batches to vary")
}

func TestSelectReview_NothingToReview(t *testing.T) {
	bank := createBank(10)
	batch := practicesession.SelectReview(bank, history.History{}, scheduler(), newRand())

	assert.Equal(t, practicesession.StatusNothingToReview, batch.Status)
	assert.Empty(t, batch.Questions)

	training := practicesession.SelectTraining(bank, history.History{}, practicesession.DefaultConfig(), scheduler(), newRand())
	assert.Equal(t, practicesession.StatusReady, training.Status)
}

func TestSelectReview_ErrorsAndDue(t *testing.T) {
	bank := createBank(10)
	h := history.History{
		"1": {Score: -1, Date: at(0)},
		"2": {Score: -1, Date: at(3)},
		"3": {Score: 2, Date: at(8)},
		"4": {Score: 2, Date: at(1)},
	}
	batch := practicesession.SelectReview(bank, h, scheduler(), newRand())

	assert.Equal(t, practicesession.StatusReady, batch.Status)
	assert.ElementsMatch(t, []string{"1", "2", "3"}, ids(batch.Questions))
}

func TestSelectReview_NoTruncation(t *testing.T) {
	bank := createBank(60)
	h := history.History{}
	for i := 1; i <= 45; i++ {
		h[fmt.Sprint(i)] = history.Entry{Score: -1, Date: at(0)}
	}
	batch := practicesession.SelectReview(bank, h, scheduler(), newRand())
	assert.Len(t, batch.Questions, 45)
	assertUnique(t, batch.Questions)
}
