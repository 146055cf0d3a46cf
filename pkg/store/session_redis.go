package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"pacifisai/internal/util"
	"pacifisai/pkg/domain"
)

// RedisSessionStore keeps token -> identity mappings in Redis with TTL.
// Unlike the kv-backed store it supports any number of concurrent sessions.
type RedisSessionStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisSessionStore builds a Redis-backed session store.
func NewRedisSessionStore(addr, password string, ttl time.Duration) *RedisSessionStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisSessionStore{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
		}),
		prefix: "pacifisai:session:",
		ttl:    ttl,
	}
}

// NewSession writes a token -> identity mapping with TTL.
func (s *RedisSessionStore) NewSession(identity domain.Identity) (string, error) {
	token := util.NewID()
	payload, err := json.Marshal(identity)
	if err != nil {
		return "", fmt.Errorf("encode identity: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := s.client.Set(ctx, s.prefix+token, payload, s.ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

// GetIdentityByToken resolves a token to its identity. A mapping that no
// longer parses is deleted and reported as absence.
func (s *RedisSessionStore) GetIdentityByToken(token string) (domain.Identity, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	raw, err := s.client.Get(ctx, s.prefix+token).Result()
	if err == redis.Nil {
		return domain.Identity{}, false, nil
	}
	if err != nil {
		return domain.Identity{}, false, err
	}
	var identity domain.Identity
	if err := json.Unmarshal([]byte(raw), &identity); err != nil || identity.ID == "" {
		_ = s.DeleteSession(token)
		return domain.Identity{}, false, nil
	}
	return identity, true, nil
}

// DeleteSession removes a token mapping. Idempotent.
func (s *RedisSessionStore) DeleteSession(token string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := s.client.Del(ctx, s.prefix+token).Err(); err != nil && err != redis.Nil {
		return err
	}
	return nil
}
