// internal/service/sessions.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/nautiquiz/backend/internal/domain/history"
	practicesession "github.com/nautiquiz/backend/internal/domain/practice_session"
	"github.com/nautiquiz/backend/internal/domain/questionbank"
	"github.com/nautiquiz/backend/internal/id"
	"github.com/nautiquiz/backend/internal/store"
)

var (
	ErrSessionNotFound      = errors.New("session not found")
	ErrSessionFinished      = errors.New("session already finished")
	ErrQuestionNotInSession = errors.New("question is not the current one")
	ErrLastQuestion         = errors.New("cannot skip the last question")
	ErrUnknownMode          = errors.New("unknown session mode")
)

// Catalog provides the loaded question banks and their images.
type Catalog interface {
	Bank(license questionbank.License) (*questionbank.Bank, error)
	Image(questionID string) (string, bool)
}

const (
	// examGrace is tolerated past an exam deadline before it is closed.
	examGrace  = 2 * time.Second
	sessionTTL = 12 * time.Hour
)

// StartRequest describes the session a user asks for.
type StartRequest struct {
	User    string
	License questionbank.License
	Mode    practicesession.Kind
	Count   int // training only; 0 uses the configured size
}

// QuestionView is a question as shown to the user: no correct designator.
type QuestionView struct {
	ID       string                `json:"id"`
	Topic    string                `json:"topic"`
	Subtopic string                `json:"subtopic,omitempty"`
	Text     string                `json:"text"`
	Options  []questionbank.Option `json:"options"`
	HasImage bool                  `json:"has_image"`
}

// SessionView is the client-facing state of a session.
type SessionView struct {
	ID        string                 `json:"id,omitempty"`
	User      string                 `json:"user"`
	License   questionbank.License   `json:"license"`
	Mode      practicesession.Kind   `json:"mode"`
	Status    practicesession.Status `json:"status"`
	Total     int                    `json:"total"`
	Answered  int                    `json:"answered"`
	Correct   int                    `json:"correct"`
	Wrong     int                    `json:"wrong"`
	Remaining int                    `json:"remaining"`
	Current   *QuestionView          `json:"current,omitempty"`
	Deadline  *time.Time             `json:"deadline,omitempty"`
	MaxErrors *int                   `json:"max_errors,omitempty"`
	Finished  bool                   `json:"finished"`
	Passed    *bool                  `json:"passed,omitempty"`
}

// AnswerResult is the feedback for one answer.
type AnswerResult struct {
	Correct       bool        `json:"correct"`
	CorrectOption string      `json:"correct_option"`
	Explanation   string      `json:"explanation,omitempty"`
	Score         int         `json:"score"`
	Session       SessionView `json:"session"`
}

type session struct {
	id       string
	user     string
	license  questionbank.License
	kind     practicesession.Kind
	total    int
	queue    []questionbank.Question
	options  map[string][]questionbank.Option
	images   map[string]bool
	history  history.History
	correct  int
	wrong    int
	started  time.Time
	deadline time.Time
	finished bool
	passed   *bool
}

// SessionService keeps running sessions in memory. Sessions are lost on
// restart; answers are not, since every answer goes through the recorder.
type SessionService struct {
	catalog  Catalog
	recorder *AnswerRecorder
	logger   *slog.Logger
	training practicesession.SessionConfig
	sched    history.Scheduler

	mu       sync.Mutex
	rng      *rand.Rand
	now      func() time.Time
	sessions map[string]*session
}

// NewSessionService creates a SessionService. training sets the default
// training batch.
func NewSessionService(c Catalog, rec *AnswerRecorder, logger *slog.Logger, training practicesession.SessionConfig) *SessionService {
	s := &SessionService{
		catalog:  c,
		recorder: rec,
		logger:   logger,
		training: training,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		now:      time.Now,
		sessions: make(map[string]*session),
	}
	s.sched = history.Scheduler{Now: func() time.Time { return s.now() }}
	return s
}

// Start selects a batch for the user and opens a session on it. A review
// with nothing due returns a view with StatusNothingToReview and no ID.
func (s *SessionService) Start(ctx context.Context, req StartRequest) (SessionView, error) {
	if req.Mode == "" {
		req.Mode = practicesession.KindTraining
	}
	switch req.Mode {
	case practicesession.KindTraining, practicesession.KindReview, practicesession.KindExam:
	default:
		return SessionView{}, fmt.Errorf("%w: %q", ErrUnknownMode, req.Mode)
	}

	bank, err := s.catalog.Bank(req.License)
	if err != nil {
		return SessionView{}, err
	}
	user := store.NormalizeUser(req.User)
	h := s.recorder.LoadHistory(ctx, user)

	s.mu.Lock()
	now := s.now()
	s.prune(now)
	batch := s.selectBatch(req, bank, h)
	options := make(map[string][]questionbank.Option, len(batch.Questions))
	for _, q := range batch.Questions {
		options[q.ID] = q.Options(req.License, s.rng)
	}
	s.mu.Unlock()

	if batch.Status == practicesession.StatusNothingToReview {
		return SessionView{
			User:     user,
			License:  req.License,
			Mode:     batch.Kind,
			Status:   batch.Status,
			Finished: true,
		}, nil
	}

	images := make(map[string]bool, len(batch.Questions))
	for _, q := range batch.Questions {
		_, images[q.ID] = s.catalog.Image(q.ID)
	}

	sess := &session{
		id:      id.NewSessionID(),
		user:    user,
		license: req.License,
		kind:    batch.Kind,
		total:   len(batch.Questions),
		queue:   batch.Questions,
		options: options,
		images:  images,
		history: h,
		started: now,
	}
	if sess.kind == practicesession.KindExam {
		sess.deadline = now.Add(practicesession.RulesFor(req.License).Duration)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if len(sess.queue) == 0 {
		s.finish(sess)
	}
	s.sessions[sess.id] = sess

	s.logger.Info("session started",
		"session_id", sess.id,
		"user", user,
		"license", req.License,
		"mode", sess.kind,
		"questions", sess.total,
	)
	return s.view(sess), nil
}

// selectBatch draws the questions of a new session. Callers hold s.mu.
func (s *SessionService) selectBatch(req StartRequest, bank *questionbank.Bank, h history.History) practicesession.Batch {
	switch req.Mode {
	case practicesession.KindReview:
		return practicesession.SelectReview(bank, h, s.sched, s.rng)
	case practicesession.KindExam:
		return practicesession.ComposeExam(bank, req.License, s.rng)
	default:
		cfg := s.training
		if req.Count > 0 {
			cfg.TargetCount = req.Count
		}
		return practicesession.SelectTraining(bank, h, cfg, s.sched, s.rng)
	}
}

// Get returns the current state of a session.
func (s *SessionService) Get(sessionID string) (SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return SessionView{}, ErrSessionNotFound
	}
	s.expire(sess)
	return s.view(sess), nil
}

// Answer grades option for the current question, records the result in
// the user's history and moves on. The history write is queued after the
// session lock is released.
func (s *SessionService) Answer(sessionID, questionID, option string) (AnswerResult, error) {
	res, user, entry, err := s.grade(sessionID, questionID, option)
	if err != nil {
		return AnswerResult{}, err
	}
	s.recorder.Persist(user, questionID, entry)
	return res, nil
}

func (s *SessionService) grade(sessionID, questionID, option string) (AnswerResult, string, history.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.active(sessionID)
	if err != nil {
		return AnswerResult{}, "", history.Entry{}, err
	}
	current := sess.queue[0]
	if history.NormalizeID(questionID) != history.NormalizeID(current.ID) {
		return AnswerResult{}, "", history.Entry{}, ErrQuestionNotInSession
	}

	correct, correctKey := current.CheckAnswer(sess.license, option)
	entry := s.recorder.Apply(sess.user, sess.history, current.ID, correct)
	if correct {
		sess.correct++
	} else {
		sess.wrong++
	}
	sess.queue = sess.queue[1:]
	if len(sess.queue) == 0 {
		s.finish(sess)
	}

	return AnswerResult{
		Correct:       correct,
		CorrectOption: correctKey,
		Explanation:   current.Explanation,
		Score:         entry.Score,
		Session:       s.view(sess),
	}, sess.user, entry, nil
}

// Skip moves the current question to the end of the queue.
func (s *SessionService) Skip(sessionID string) (SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.active(sessionID)
	if err != nil {
		return SessionView{}, err
	}
	if len(sess.queue) <= 1 {
		return SessionView{}, ErrLastQuestion
	}
	queue := make([]questionbank.Question, 0, len(sess.queue))
	queue = append(queue, sess.queue[1:]...)
	sess.queue = append(queue, sess.queue[0])
	return s.view(sess), nil
}

// Complete closes a session. Completing a finished session returns its
// final state again.
func (s *SessionService) Complete(sessionID string) (SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return SessionView{}, ErrSessionNotFound
	}
	if !sess.finished {
		s.finish(sess)
	}
	return s.view(sess), nil
}

// active returns an open session, closing exams that ran out of time.
func (s *SessionService) active(sessionID string) (*session, error) {
	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	s.expire(sess)
	if sess.finished {
		return nil, ErrSessionFinished
	}
	return sess, nil
}

func (s *SessionService) expire(sess *session) {
	if sess.finished || sess.deadline.IsZero() {
		return
	}
	if s.now().After(sess.deadline.Add(examGrace)) {
		s.logger.Info("exam time is up", "session_id", sess.id)
		s.finish(sess)
	}
}

// finish closes sess. Exam questions left unanswered count as errors.
func (s *SessionService) finish(sess *session) {
	sess.finished = true
	if sess.kind != practicesession.KindExam {
		return
	}
	errs := sess.wrong + len(sess.queue)
	passed := practicesession.RulesFor(sess.license).Passed(errs)
	sess.passed = &passed
	s.logger.Info("exam finished",
		"session_id", sess.id,
		"user", sess.user,
		"errors", errs,
		"passed", passed,
	)
}

func (s *SessionService) prune(now time.Time) {
	for sid, sess := range s.sessions {
		if now.Sub(sess.started) > sessionTTL {
			delete(s.sessions, sid)
		}
	}
}

func (s *SessionService) view(sess *session) SessionView {
	v := SessionView{
		ID:        sess.id,
		User:      sess.user,
		License:   sess.license,
		Mode:      sess.kind,
		Status:    practicesession.StatusReady,
		Total:     sess.total,
		Answered:  sess.correct + sess.wrong,
		Correct:   sess.correct,
		Wrong:     sess.wrong,
		Remaining: len(sess.queue),
		Finished:  sess.finished,
		Passed:    sess.passed,
	}
	if sess.kind == practicesession.KindExam {
		deadline := sess.deadline
		maxErrors := practicesession.RulesFor(sess.license).MaxErrors
		v.Deadline = &deadline
		v.MaxErrors = &maxErrors
	}
	if !sess.finished && len(sess.queue) > 0 {
		q := sess.queue[0]
		v.Current = &QuestionView{
			ID:       q.ID,
			Topic:    q.Topic,
			Subtopic: q.Subtopic,
			Text:     q.Text,
			Options:  sess.options[q.ID],
			HasImage: sess.images[q.ID],
		}
	}
	return v
}
