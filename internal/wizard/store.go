// Package wizard persists in-progress wizard answers between page loads.
// Each session is one JSON blob keyed by a server-minted id; writes are
// last-write-wins since only the active client touches its session.
package wizard

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"quote-simulator/internal/common/database"
	stderrors "quote-simulator/internal/common/errors"
	"quote-simulator/internal/common/metrics"
	"quote-simulator/internal/pricing"
)

const keyPrefix = "wizard:answers:"

// Session is the stored state of one wizard run.
type Session struct {
	ID        string          `json:"id"`
	Answers   pricing.Answers `json:"answers"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// Store reads and writes wizard sessions in Redis.
type Store struct {
	redis *database.RedisClient
	ttl   time.Duration
}

func NewStore(redisClient *database.RedisClient, ttl time.Duration) *Store {
	return &Store{redis: redisClient, ttl: ttl}
}

// Create mints a new empty session and persists it.
func (s *Store) Create(ctx context.Context) (*Session, *stderrors.StandardError) {
	session := &Session{
		ID:        uuid.NewString(),
		Answers:   pricing.Answers{},
		UpdatedAt: time.Now().UTC(),
	}
	if stdErr := s.write(ctx, session); stdErr != nil {
		return nil, stdErr
	}
	return session, nil
}

// Save overwrites the answers of an existing session id. The session does
// not need to exist beforehand: an expired id is silently revived, which
// keeps a long-idle client working at the cost of a fresh TTL.
func (s *Store) Save(ctx context.Context, id string, answers pricing.Answers) (*Session, *stderrors.StandardError) {
	if answers == nil {
		answers = pricing.Answers{}
	}
	session := &Session{
		ID:        id,
		Answers:   answers,
		UpdatedAt: time.Now().UTC(),
	}
	if stdErr := s.write(ctx, session); stdErr != nil {
		return nil, stdErr
	}
	return session, nil
}

// Load fetches a session by id.
func (s *Store) Load(ctx context.Context, id string) (*Session, *stderrors.StandardError) {
	raw, err := s.redis.Get(ctx, keyPrefix+id)
	if errors.Is(err, redis.Nil) {
		return nil, stderrors.NewSessionNotFoundError(id)
	}
	if err != nil {
		return nil, stderrors.NewSessionStoreFailedError(err)
	}

	var session Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return nil, stderrors.NewSessionStoreFailedError(err)
	}
	return &session, nil
}

// Delete removes a session. Deleting an absent session is not an error.
func (s *Store) Delete(ctx context.Context, id string) *stderrors.StandardError {
	if err := s.redis.Del(ctx, keyPrefix+id); err != nil {
		return stderrors.NewSessionStoreFailedError(err)
	}
	return nil
}

func (s *Store) write(ctx context.Context, session *Session) *stderrors.StandardError {
	raw, err := json.Marshal(session)
	if err != nil {
		metrics.WizardSessionsSaved.WithLabelValues("error").Inc()
		return stderrors.NewSessionStoreFailedError(err)
	}
	if err := s.redis.Set(ctx, keyPrefix+session.ID, raw, s.ttl); err != nil {
		metrics.WizardSessionsSaved.WithLabelValues("error").Inc()
		return stderrors.NewSessionStoreFailedError(err)
	}
	metrics.WizardSessionsSaved.WithLabelValues("ok").Inc()
	return nil
}
