package practicesession

import (
	"math/rand"
	"strings"
	"time"

	"github.com/nautiquiz/backend/internal/domain/questionbank"
)

// Quota is the number of exam questions required from topics matching Keyword.
type Quota struct {
	Keyword string
	Count   int
}

// BaseQuotas is the ministerial distribution for the base license exam.
// Keywords are matched case-insensitively as substrings of the topic.
var BaseQuotas = []Quota{
	{"Scafo", 1},
	{"Motori", 1},
	{"Sicurezza", 3},
	{"Manovra", 4},
	{"Colreg", 2},
	{"Meteorologia", 2},
	{"Navigazione", 4},
	{"Normativa", 3},
}

// ExamRules describes one exam simulation.
type ExamRules struct {
	Questions int
	Duration  time.Duration
	MaxErrors int
}

// RulesFor returns the exam rules of a license.
func RulesFor(license questionbank.License) ExamRules {
	if license == questionbank.LicenseSail {
		return ExamRules{Questions: 5, Duration: 15 * time.Minute, MaxErrors: 1}
	}
	return ExamRules{Questions: 30, Duration: 30 * time.Minute, MaxErrors: 4}
}

// Passed reports whether an exam with the given number of errors is passed.
func (r ExamRules) Passed(errors int) bool {
	return errors <= r.MaxErrors
}

// fallbackExamSize is drawn when the bank carries no topics.
const fallbackExamSize = 30

// ComposeExam assembles an exam simulation. Base exams satisfy BaseQuotas
// first, then backfill at random up to the exam size, then shuffle. Sail
// exams are a plain random draw.
func ComposeExam(bank *questionbank.Bank, license questionbank.License, rng *rand.Rand) Batch {
	if bank.Len() == 0 {
		return Batch{Kind: KindExam, Status: StatusReady, Questions: []questionbank.Question{}}
	}
	if !bank.HasTopics {
		return randomExam(bank, fallbackExamSize, rng)
	}
	rules := RulesFor(license)
	if license == questionbank.LicenseSail {
		return randomExam(bank, rules.Questions, rng)
	}

	chosen := make(map[string]struct{}, rules.Questions)
	var order []string
	take := func(ids []string) {
		for _, id := range ids {
			chosen[id] = struct{}{}
			order = append(order, id)
		}
	}

	for _, quota := range BaseQuotas {
		take(sample(exclude(topicIDs(bank, quota.Keyword), chosen), quota.Count, rng))
	}
	if len(order) < rules.Questions {
		take(sample(exclude(bank.IDs(), chosen), rules.Questions-len(order), rng))
	}

	questions := make([]questionbank.Question, 0, len(order))
	for _, id := range order {
		q, _ := bank.Lookup(id)
		questions = append(questions, q)
	}
	shuffleQuestions(questions, rng)
	return Batch{Kind: KindExam, Status: StatusReady, Questions: questions}
}

// topicIDs returns the IDs of questions whose topic contains keyword,
// ignoring case.
func topicIDs(bank *questionbank.Bank, keyword string) []string {
	keyword = strings.ToLower(keyword)
	var ids []string
	for _, q := range bank.Questions {
		if strings.Contains(strings.ToLower(q.Topic), keyword) {
			ids = append(ids, q.ID)
		}
	}
	return ids
}

func randomExam(bank *questionbank.Bank, n int, rng *rand.Rand) Batch {
	ids := sample(bank.IDs(), n, rng)
	questions := make([]questionbank.Question, 0, len(ids))
	for _, id := range ids {
		q, _ := bank.Lookup(id)
		questions = append(questions, q)
	}
	return Batch{Kind: KindExam, Status: StatusReady, Questions: questions}
}
