package questionbank

import (
	"math/rand"
	"strings"
)

// Option is one selectable answer as shown to the user.
type Option struct {
	Key     string `json:"key"`
	Text    string `json:"text"`
	Correct bool   `json:"-"`
}

// True/false option keys used by the sail bank.
const (
	KeyTrue  = "V"
	KeyFalse = "F"
)

// IsTrueStatement reports whether a sail question's designator marks the
// statement as true.
func (q Question) IsTrueStatement() bool {
	switch strings.ToUpper(strings.TrimSpace(q.Correct)) {
	case "A", "V", "VERO", "TRUE":
		return true
	}
	return false
}

// Options returns the answers to present for q. Sail questions always get the
// fixed true/false pair; base questions get their non-empty A/B/C answers in
// random order.
func (q Question) Options(license License, rng *rand.Rand) []Option {
	if license == LicenseSail {
		isTrue := q.IsTrueStatement()
		return []Option{
			{Key: KeyTrue, Text: "VERO", Correct: isTrue},
			{Key: KeyFalse, Text: "FALSO", Correct: !isTrue},
		}
	}

	correct := strings.ToUpper(strings.TrimSpace(q.Correct))
	candidates := []Option{
		{Key: "A", Text: q.AnswerA, Correct: correct == "A"},
		{Key: "B", Text: q.AnswerB, Correct: correct == "B"},
		{Key: "C", Text: q.AnswerC, Correct: correct == "C"},
	}
	opts := candidates[:0]
	for _, o := range candidates {
		if strings.TrimSpace(o.Text) != "" {
			opts = append(opts, o)
		}
	}
	if rng != nil {
		rng.Shuffle(len(opts), func(i, j int) { opts[i], opts[j] = opts[j], opts[i] })
	}
	return opts
}

// CheckAnswer reports whether the option key picked by the user is correct,
// along with the key of the correct option.
func (q Question) CheckAnswer(license License, key string) (bool, string) {
	key = strings.ToUpper(strings.TrimSpace(key))
	var correctKey string
	for _, o := range q.Options(license, nil) {
		if o.Correct {
			correctKey = o.Key
			break
		}
	}
	return correctKey != "" && key == correctKey, correctKey
}
