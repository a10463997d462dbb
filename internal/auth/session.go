// AngelaMos | 2026
// session.go

package auth

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/b2bmarket/backend/internal/core"
)

const sessionKeyPrefix = "session:"

// SessionStore persists the cookie-backed login channel. Sessions map
// an opaque id to a user id and expire after the configured TTL.
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (int64, error)
	Set(ctx context.Context, sessionID string, userID int64, ttl time.Duration) error
	Destroy(ctx context.Context, sessionID string) error
	Prune(ctx context.Context) (int, error)
}

func NewSessionID() string {
	return uuid.New().String()
}

// RedisSessionStore keeps sessions in Redis with per-key TTLs, so
// expiry is enforced server-side without a sweeper.
type RedisSessionStore struct {
	client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (int64, error) {
	val, err := s.client.Get(ctx, sessionKeyPrefix+sessionID).Result()
	if err != nil {
		if err == redis.Nil {
			return 0, core.ErrNotFound
		}
		return 0, fmt.Errorf("getting session: %w", err)
	}

	userID, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing session user id: %w", err)
	}

	return userID, nil
}

func (s *RedisSessionStore) Set(ctx context.Context, sessionID string, userID int64, ttl time.Duration) error {
	err := s.client.Set(ctx, sessionKeyPrefix+sessionID, strconv.FormatInt(userID, 10), ttl).Err()
	if err != nil {
		return fmt.Errorf("storing session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Destroy(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, sessionKeyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("destroying session: %w", err)
	}
	return nil
}

// Prune removes session keys that somehow lost their TTL. Redis
// expires sessions on its own, so this normally deletes nothing.
func (s *RedisSessionStore) Prune(ctx context.Context) (int, error) {
	var pruned int

	iter := s.client.Scan(ctx, 0, sessionKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()

		ttl, err := s.client.TTL(ctx, key).Result()
		if err != nil {
			return pruned, fmt.Errorf("checking session TTL: %w", err)
		}

		if ttl == -1 {
			if err := s.client.Del(ctx, key).Err(); err != nil {
				return pruned, fmt.Errorf("pruning session: %w", err)
			}
			pruned++
		}
	}
	if err := iter.Err(); err != nil {
		return pruned, fmt.Errorf("scanning sessions: %w", err)
	}

	return pruned, nil
}

// MemorySessionStore is an in-process store for tests and single-node
// development runs.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]memorySession
}

type memorySession struct {
	userID    int64
	expiresAt time.Time
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]memorySession)}
}

func (s *MemorySessionStore) Get(_ context.Context, sessionID string) (int64, error) {
	s.mu.RLock()
	sess, ok := s.sessions[sessionID]
	s.mu.RUnlock()

	if !ok || time.Now().After(sess.expiresAt) {
		return 0, core.ErrNotFound
	}

	return sess.userID, nil
}

func (s *MemorySessionStore) Set(_ context.Context, sessionID string, userID int64, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[sessionID] = memorySession{
		userID:    userID,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}

func (s *MemorySessionStore) Destroy(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sessionID)
	return nil
}

func (s *MemorySessionStore) Prune(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	var pruned int
	for id, sess := range s.sessions {
		if now.After(sess.expiresAt) {
			delete(s.sessions, id)
			pruned++
		}
	}

	return pruned, nil
}
