package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/lexbridge/legal-assistant/internal/core/domain"
)

const DefaultSessionTTL = 7 * 24 * time.Hour

// SessionStore keeps sessions in Redis.
// Key format: session:<id>, value: user id, expiry: the store TTL.
type SessionStore struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
func NewSessionStore(client redis.Cmdable, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionStore{client: client, ttl: ttl}
}

// Create stores a session under a fresh random id.
func (s *SessionStore) Create(ctx context.Context, userID string) (*domain.Session, error) {
	for attempt := 0; attempt < 3; attempt++ {
		id := uuid.NewString()
		ok, err := s.client.SetNX(ctx, s.key(id), userID, s.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("create session: %w", err)
		}
		if ok {
			return &domain.Session{ID: id, UserID: userID, ExpiresAt: time.Now().Add(s.ttl).UTC()}, nil
		}
	}
	return nil, errors.New("create session: id collision")
}

// Get returns domain.ErrSessionNotFound for unknown or expired ids.
func (s *SessionStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	pipe := s.client.Pipeline()
	getCmd := pipe.Get(ctx, s.key(id))
	ttlCmd := pipe.PTTL(ctx, s.key(id))
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("get session: %w", err)
	}

	userID, err := getCmd.Result()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	expires := time.Now().Add(s.ttl)
	if ttl, err := ttlCmd.Result(); err == nil && ttl > 0 {
		expires = time.Now().Add(ttl)
	}
	return &domain.Session{ID: id, UserID: userID, ExpiresAt: expires.UTC()}, nil
}

// Touch resets the session expiry to the full TTL.
func (s *SessionStore) Touch(ctx context.Context, id string) error {
	ok, err := s.client.Expire(ctx, s.key(id), s.ttl).Result()
	if err != nil {
		return fmt.Errorf("touch session: %w", err)
	}
	if !ok {
		return domain.ErrSessionNotFound
	}
	return nil
}

func (s *SessionStore) Destroy(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, s.key(id)).Err(); err != nil {
		return fmt.Errorf("destroy session: %w", err)
	}
	return nil
}

func (s *SessionStore) key(id string) string {
	return "session:" + id
}
