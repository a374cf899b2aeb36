// internal/service/answers.go
package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/avast/retry-go"

	"github.com/nautiquiz/backend/internal/domain/history"
	"github.com/nautiquiz/backend/internal/store"
	"github.com/nautiquiz/backend/internal/worker"
)

// RecorderOptions tunes the background history writer.
type RecorderOptions struct {
	Workers  int
	Buffer   int
	Attempts uint
	Delay    time.Duration
	Timeout  time.Duration
}

// DefaultRecorderOptions matches the defaults of the server configuration.
func DefaultRecorderOptions() RecorderOptions {
	return RecorderOptions{
		Workers:  2,
		Buffer:   64,
		Attempts: 3,
		Delay:    200 * time.Millisecond,
		Timeout:  10 * time.Second,
	}
}

// AnswerRecorder applies answers to a user's history and persists the new
// entries in the background. The caller never waits for the store: a write
// that still fails after the last retry, or finds the queue full, is logged
// and dropped. Entries not yet confirmed by the store stay in memory and are
// laid over every history this process loads.
type AnswerRecorder struct {
	store  store.Store
	pool   *worker.Pool[error]
	logger *slog.Logger
	opts   RecorderOptions
	now    func() time.Time

	mu      sync.Mutex
	pending map[string]history.History // by normalized user
}

// NewAnswerRecorder creates an AnswerRecorder and starts its writers.
func NewAnswerRecorder(s store.Store, logger *slog.Logger, opts RecorderOptions) *AnswerRecorder {
	if opts.Attempts == 0 {
		opts.Attempts = 1
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultRecorderOptions().Timeout
	}
	r := &AnswerRecorder{
		store:   s,
		logger:  logger,
		opts:    opts,
		now:     time.Now,
		pending: make(map[string]history.History),
	}
	r.pool = worker.NewPool[error](opts.Workers, opts.Buffer, func(res worker.Result[error]) {
		if res.Output != nil {
			r.logger.Error("history write failed", "job", res.JobID, "error", res.Output)
		}
	})
	return r
}

// LoadHistory returns the normalized history of user with the answers of
// this process that the store has not confirmed yet. A store failure is
// logged and yields only those answers.
func (r *AnswerRecorder) LoadHistory(ctx context.Context, user string) history.History {
	raw, err := r.store.FetchHistory(ctx, user)
	if err != nil {
		r.logger.Warn("history unavailable, using unsaved answers only", "user", user, "error", err)
		raw = nil
	}
	return history.Merge(raw, r.unsaved(user))
}

// Record applies the answer to h and queues its upsert.
// h must not be shared between goroutines.
func (r *AnswerRecorder) Record(user string, h history.History, questionID string, correct bool) history.Entry {
	entry := r.Apply(user, h, questionID, correct)
	r.Persist(user, questionID, entry)
	return entry
}

// Apply updates h with the answer to questionID and keeps the new entry in
// memory until the store confirms it. It does not touch the store.
func (r *AnswerRecorder) Apply(user string, h history.History, questionID string, correct bool) history.Entry {
	entry := h.Record(questionID, correct, r.now())

	r.mu.Lock()
	defer r.mu.Unlock()
	key := store.NormalizeUser(user)
	if r.pending[key] == nil {
		r.pending[key] = history.History{}
	}
	r.pending[key][history.NormalizeID(questionID)] = entry
	return entry
}

// Persist queues the upsert of entry without waiting for room in the queue.
func (r *AnswerRecorder) Persist(user, questionID string, entry history.Entry) {
	qid := history.NormalizeID(questionID)
	err := r.pool.TrySubmit(user+"/"+qid, func() error {
		if err := r.upsert(user, qid, entry); err != nil {
			return err
		}
		r.saved(user, qid, entry)
		return nil
	})
	if err != nil {
		r.logger.Error("history write not queued", "user", user, "question_id", qid, "error", err)
	}
}

func (r *AnswerRecorder) unsaved(user string) history.History {
	r.mu.Lock()
	defer r.mu.Unlock()
	entries := r.pending[store.NormalizeUser(user)]
	out := make(history.History, len(entries))
	for k, v := range entries {
		out[k] = v
	}
	return out
}

// saved drops entry from memory unless a newer answer replaced it.
func (r *AnswerRecorder) saved(user, questionID string, entry history.Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := store.NormalizeUser(user)
	if r.pending[key][questionID] != entry {
		return
	}
	delete(r.pending[key], questionID)
	if len(r.pending[key]) == 0 {
		delete(r.pending, key)
	}
}

// upsert writes one entry with retries. It runs on a background context so
// a finished HTTP request does not cancel it.
func (r *AnswerRecorder) upsert(user, questionID string, entry history.Entry) error {
	ctx, cancel := context.WithTimeout(context.Background(), r.opts.Timeout)
	defer cancel()

	return retry.Do(
		func() error {
			return r.store.UpsertAnswer(ctx, user, questionID, entry)
		},
		retry.Context(ctx),
		retry.Attempts(r.opts.Attempts),
		retry.Delay(r.opts.Delay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return !errors.Is(err, store.ErrUnavailable)
		}),
		retry.OnRetry(func(n uint, err error) {
			r.logger.Warn("retrying history write",
				"user", user,
				"question_id", questionID,
				"attempt", n+1,
				"error", err,
			)
		}),
	)
}

// Close waits for queued writes to finish.
func (r *AnswerRecorder) Close() {
	r.pool.Close()
}
