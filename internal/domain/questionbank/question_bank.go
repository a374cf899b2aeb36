package questionbank

import (
	"fmt"
	"strings"
)

// License selects which question bank a session draws from.
type License string

const (
	LicenseBase License = "base" // motor boats, multiple choice A/B/C
	LicenseSail License = "sail" // sailing extension, true/false
)

// DefaultTopic is assigned to questions whose dataset carries no topic column.
const DefaultTopic = "Generale"

// ParseLicense maps a free-form license name onto a License.
func ParseLicense(s string) (License, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "base":
		return LicenseBase, nil
	case "sail", "vela":
		return LicenseSail, nil
	}
	return "", fmt.Errorf("unknown license %q", s)
}

// Question is one row of the question bank.
type Question struct {
	ID          string `json:"id"`
	Topic       string `json:"topic"`
	Subtopic    string `json:"subtopic,omitempty"`
	Text        string `json:"text"`
	AnswerA     string `json:"answer_a,omitempty"`
	AnswerB     string `json:"answer_b,omitempty"`
	AnswerC     string `json:"answer_c,omitempty"`
	Correct     string `json:"-"` // letter code, or a truthy token for true/false
	Explanation string `json:"explanation,omitempty"`
}

// Bank is an in-memory question table. IDs are unique within a bank.
type Bank struct {
	License   License
	Questions []Question
	HasTopics bool

	index map[string]int
}

// New builds a bank from the given rows. Rows repeating an already seen ID
// are dropped, the first occurrence wins.
func New(license License, questions []Question, hasTopics bool) *Bank {
	b := &Bank{
		License:   license,
		Questions: make([]Question, 0, len(questions)),
		HasTopics: hasTopics,
		index:     make(map[string]int, len(questions)),
	}
	for _, q := range questions {
		if _, dup := b.index[q.ID]; dup {
			continue
		}
		b.index[q.ID] = len(b.Questions)
		b.Questions = append(b.Questions, q)
	}
	return b
}

// Len returns the number of questions in the bank. A nil bank is empty.
func (b *Bank) Len() int {
	if b == nil {
		return 0
	}
	return len(b.Questions)
}

// IDs returns the question identifiers in table order.
func (b *Bank) IDs() []string {
	if b == nil {
		return nil
	}
	ids := make([]string, len(b.Questions))
	for i, q := range b.Questions {
		ids[i] = q.ID
	}
	return ids
}

// Lookup returns the question with the given identifier.
func (b *Bank) Lookup(id string) (Question, bool) {
	if b == nil {
		return Question{}, false
	}
	i, ok := b.index[id]
	if !ok {
		return Question{}, false
	}
	return b.Questions[i], true
}

// Contains reports whether id belongs to the bank.
func (b *Bank) Contains(id string) bool {
	_, ok := b.Lookup(id)
	return ok
}

// Select returns the rows whose ID is in ids, in table order.
func (b *Bank) Select(ids map[string]struct{}) []Question {
	if b == nil {
		return nil
	}
	out := make([]Question, 0, len(ids))
	for _, q := range b.Questions {
		if _, ok := ids[q.ID]; ok {
			out = append(out, q)
		}
	}
	return out
}
