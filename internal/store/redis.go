package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/nautiquiz/backend/internal/domain/history"
)

// Redis key layout:
//
//	<prefix>:history:<user>  hash, question ID -> JSON entry
//	<prefix>:users           set of user IDs
//	<prefix>:reports         list of JSON reports
const defaultRedisPrefix = "nautiquiz"

// RedisStore keeps history in Redis hashes. HSET on the (user, question)
// field is a natural last-write-wins upsert.
type RedisStore struct {
	rdb    *goredis.Client
	prefix string
	now    func() time.Time
}

var _ Store = (*RedisStore)(nil)

type redisReport struct {
	UserID     string `json:"user_id"`
	QuestionID string `json:"question_id"`
	Message    string `json:"message"`
	CreatedAt  string `json:"created_at"`
}

// NewRedis connects to addr and checks the connection.
func NewRedis(ctx context.Context, addr string) (*RedisStore, error) {
	if addr == "" {
		return nil, fmt.Errorf("%w: missing redis address", ErrUnavailable)
	}
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("%w: redis ping: %v", ErrUnavailable, err)
	}
	return NewRedisFromClient(rdb, defaultRedisPrefix), nil
}

// NewRedisFromClient wraps an existing client; keys are namespaced by prefix.
func NewRedisFromClient(rdb *goredis.Client, prefix string) *RedisStore {
	return &RedisStore{rdb: rdb, prefix: prefix, now: time.Now}
}

func (s *RedisStore) historyKey(userID string) string {
	return s.prefix + ":history:" + NormalizeUser(userID)
}

func (s *RedisStore) Close() error {
	return s.rdb.Close()
}

func (s *RedisStore) FetchHistory(ctx context.Context, userID string) (history.History, error) {
	raw, err := s.rdb.HGetAll(ctx, s.historyKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("redis hgetall: %w", err)
	}
	h := make(history.History, len(raw))
	for qid, v := range raw {
		var e history.Entry
		if err := json.Unmarshal([]byte(v), &e); err != nil {
			return nil, fmt.Errorf("decode entry %s: %w", qid, err)
		}
		h[qid] = e
	}
	return h, nil
}

func (s *RedisStore) UpsertAnswer(ctx context.Context, userID, questionID string, entry history.Entry) error {
	raw, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	user := NormalizeUser(userID)
	_, err = s.rdb.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.HSet(ctx, s.historyKey(user), history.NormalizeID(questionID), raw)
		pipe.SAdd(ctx, s.prefix+":users", user)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis upsert: %w", err)
	}
	return nil
}

func (s *RedisStore) ListUsers(ctx context.Context) ([]string, error) {
	users, err := s.rdb.SMembers(ctx, s.prefix+":users").Result()
	if err != nil {
		return nil, fmt.Errorf("redis smembers: %w", err)
	}
	sort.Strings(users)
	return plausibleUsers(users), nil
}

func (s *RedisStore) SaveReport(ctx context.Context, userID, questionID, message string) error {
	raw, err := json.Marshal(redisReport{
		UserID:     NormalizeUser(userID),
		QuestionID: history.NormalizeID(questionID),
		Message:    message,
		CreatedAt:  s.now().Format(history.DateLayout),
	})
	if err != nil {
		return err
	}
	if err := s.rdb.RPush(ctx, s.prefix+":reports", raw).Err(); err != nil {
		return fmt.Errorf("redis rpush: %w", err)
	}
	return nil
}
