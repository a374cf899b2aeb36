package practicesession

import (
	"math/rand"

	"github.com/nautiquiz/backend/internal/domain/history"
	"github.com/nautiquiz/backend/internal/domain/questionbank"
)

// Kind is the purpose of a batch.
type Kind string

const (
	KindTraining Kind = "training"
	KindReview   Kind = "review"
	KindExam     Kind = "exam"
)

// Status tells a ready batch apart from a review run with nothing to do.
type Status string

const (
	StatusReady           Status = "ready"
	StatusNothingToReview Status = "nothing_to_review"
)

// Batch is the ordered list of questions for one run.
type Batch struct {
	Kind      Kind
	Status    Status
	Questions []questionbank.Question
}

// Buckets is the classification of a bank against a user's history.
// Mastered questions that are not yet due appear in none of them.
type Buckets struct {
	New    []string
	Due    []string
	Errors []string
}

// Classify walks every question ID of the bank once and sorts it into the
// new, due and errors buckets.
func Classify(bank *questionbank.Bank, h history.History, sched history.Scheduler) Buckets {
	h = history.Normalize(h)
	var b Buckets
	for _, id := range bank.IDs() {
		e, ok := h[history.NormalizeID(id)]
		switch {
		case !ok:
			b.New = append(b.New, id)
		case e.Score < 0:
			b.Errors = append(b.Errors, id)
		case sched.IsDue(e):
			b.Due = append(b.Due, id)
		}
	}
	return b
}

// SelectReview returns every errored or due question in random order.
// When there is nothing to review the batch is empty with
// StatusNothingToReview.
func SelectReview(bank *questionbank.Bank, h history.History, sched history.Scheduler, rng *rand.Rand) Batch {
	b := Classify(bank, h, sched)

	pool := make(map[string]struct{}, len(b.Errors)+len(b.Due))
	for _, id := range b.Errors {
		pool[id] = struct{}{}
	}
	for _, id := range b.Due {
		pool[id] = struct{}{}
	}
	if len(pool) == 0 {
		return Batch{Kind: KindReview, Status: StatusNothingToReview, Questions: []questionbank.Question{}}
	}

	questions := bank.Select(pool)
	shuffleQuestions(questions, rng)
	return Batch{Kind: KindReview, Status: StatusReady, Questions: questions}
}

// SelectTraining builds a mixed batch: up to the review quota from due
// questions, the rest from never-seen ones, then random backfill from the
// whole bank when both run dry.
func SelectTraining(bank *questionbank.Bank, h history.History, cfg SessionConfig, sched history.Scheduler, rng *rand.Rand) Batch {
	if cfg.TargetCount <= 0 {
		cfg.TargetCount = DefaultConfig().TargetCount
	}
	target := cfg.TargetCount
	b := Classify(bank, h, sched)

	chosen := make(map[string]struct{}, target)
	pick := func(ids []string) {
		for _, id := range ids {
			chosen[id] = struct{}{}
		}
	}

	pick(sample(b.Due, cfg.reviewQuota(), rng))
	pick(sample(b.New, target-len(chosen), rng))
	if len(chosen) < target {
		pick(sample(exclude(bank.IDs(), chosen), target-len(chosen), rng))
	}

	questions := bank.Select(chosen)
	shuffleQuestions(questions, rng)
	if len(questions) > target {
		questions = questions[:target]
	}
	return Batch{Kind: KindTraining, Status: StatusReady, Questions: questions}
}

// sample draws up to n distinct elements of ids without replacement.
func sample(ids []string, n int, rng *rand.Rand) []string {
	if n <= 0 || len(ids) == 0 {
		return nil
	}
	if n > len(ids) {
		n = len(ids)
	}
	pool := make([]string, len(ids))
	copy(pool, ids)
	for i := 0; i < n; i++ {
		j := i + intn(rng, len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n]
}

func exclude(ids []string, taken map[string]struct{}) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := taken[id]; !ok {
			out = append(out, id)
		}
	}
	return out
}

// shuffleQuestions puts questions in random order in place.
func shuffleQuestions(questions []questionbank.Question, rng *rand.Rand) {
	swap := func(i, j int) { questions[i], questions[j] = questions[j], questions[i] }
	if rng == nil {
		rand.Shuffle(len(questions), swap)
		return
	}
	rng.Shuffle(len(questions), swap)
}

func intn(rng *rand.Rand, n int) int {
	if rng == nil {
		return rand.Intn(n)
	}
	return rng.Intn(n)
}
