package store

import (
	"encoding/json"
	"fmt"

	"pacifisai/internal/util"
	"pacifisai/pkg/domain"
	"pacifisai/pkg/kv"
)

// KVSessionStore persists at most one session at a time under the
// well-known token and identity keys, matching the original single-user
// storage layout. Establishing a new session replaces the previous one.
type KVSessionStore struct {
	kv kv.KV
}

// NewKVSessionStore wraps a key-value backend as a session store.
func NewKVSessionStore(backend kv.KV) *KVSessionStore {
	return &KVSessionStore{kv: backend}
}

// NewSession mints an opaque token and persists token + identity.
func (s *KVSessionStore) NewSession(identity domain.Identity) (string, error) {
	token := util.NewID()
	payload, err := json.Marshal(identity)
	if err != nil {
		return "", fmt.Errorf("encode identity: %w", err)
	}
	if err := s.kv.Set(kv.KeyToken, token); err != nil {
		return "", fmt.Errorf("write session token: %w", err)
	}
	if err := s.kv.Set(kv.KeyIdentity, string(payload)); err != nil {
		return "", fmt.Errorf("write session identity: %w", err)
	}
	return token, nil
}

// GetIdentityByToken resolves the persisted session. A stale token or a
// malformed identity record is cleared and reported as absence, so a
// damaged session never wedges startup.
func (s *KVSessionStore) GetIdentityByToken(token string) (domain.Identity, bool, error) {
	stored, ok, err := s.kv.Get(kv.KeyToken)
	if err != nil {
		return domain.Identity{}, false, fmt.Errorf("read session token: %w", err)
	}
	if !ok || stored != token {
		return domain.Identity{}, false, nil
	}
	raw, ok, err := s.kv.Get(kv.KeyIdentity)
	if err != nil {
		return domain.Identity{}, false, fmt.Errorf("read session identity: %w", err)
	}
	if !ok {
		return domain.Identity{}, false, nil
	}
	var identity domain.Identity
	if err := json.Unmarshal([]byte(raw), &identity); err != nil || identity.ID == "" {
		_ = s.clear()
		return domain.Identity{}, false, nil
	}
	return identity, true, nil
}

// DeleteSession clears the persisted session. Idempotent.
func (s *KVSessionStore) DeleteSession(token string) error {
	stored, ok, err := s.kv.Get(kv.KeyToken)
	if err != nil {
		return fmt.Errorf("read session token: %w", err)
	}
	if ok && token != "" && stored != token {
		return nil
	}
	return s.clear()
}

func (s *KVSessionStore) clear() error {
	if err := s.kv.Delete(kv.KeyToken); err != nil {
		return fmt.Errorf("clear session token: %w", err)
	}
	if err := s.kv.Delete(kv.KeyIdentity); err != nil {
		return fmt.Errorf("clear session identity: %w", err)
	}
	return nil
}
