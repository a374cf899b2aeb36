package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nautiquiz/backend/internal/domain/history"
	"github.com/nautiquiz/backend/internal/domain/questionbank"
	"github.com/nautiquiz/backend/internal/store"
)

// StatsView is a user's progress on one license.
type StatsView struct {
	User    string                   `json:"user"`
	License questionbank.License     `json:"license"`
	Topics  []questionbank.TopicStat `json:"topics"`
	Summary questionbank.Summary     `json:"summary"`
}

// ProgressService answers the read-only questions about users and their
// history, and files question reports.
type ProgressService struct {
	store    store.Store
	catalog  Catalog
	recorder *AnswerRecorder
	logger   *slog.Logger
}

func NewProgressService(s store.Store, c Catalog, rec *AnswerRecorder, logger *slog.Logger) *ProgressService {
	return &ProgressService{store: s, catalog: c, recorder: rec, logger: logger}
}

// Users lists the known users. An unreachable store yields an empty list.
func (p *ProgressService) Users(ctx context.Context) []string {
	users, err := p.store.ListUsers(ctx)
	if err != nil {
		p.logger.Warn("user list unavailable", "error", err)
		return []string{}
	}
	return users
}

// History returns the normalized history of user.
func (p *ProgressService) History(ctx context.Context, user string) history.History {
	return p.recorder.LoadHistory(ctx, store.NormalizeUser(user))
}

// Stats rolls up a user's history against the bank of license, topics
// ordered by completion.
func (p *ProgressService) Stats(ctx context.Context, user string, license questionbank.License) (StatsView, error) {
	bank, err := p.catalog.Bank(license)
	if err != nil {
		return StatsView{}, err
	}
	user = store.NormalizeUser(user)
	h := p.recorder.LoadHistory(ctx, user)

	topics := questionbank.Aggregate(bank, h)
	questionbank.SortByCompletion(topics)
	return StatsView{
		User:    user,
		License: license,
		Topics:  topics,
		Summary: questionbank.Summarize(bank, h),
	}, nil
}

// Report files a user's note about a faulty question.
func (p *ProgressService) Report(ctx context.Context, user, questionID, message string) error {
	if err := p.store.SaveReport(ctx, user, questionID, message); err != nil {
		return fmt.Errorf("save report: %w", err)
	}
	p.logger.Info("question reported", "user", store.NormalizeUser(user), "question_id", history.NormalizeID(questionID))
	return nil
}
