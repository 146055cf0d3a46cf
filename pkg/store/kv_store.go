package store

import (
	"encoding/json"
	"fmt"
	"time"

	"pacifisai/pkg/domain"
	"pacifisai/pkg/kv"
)

// registryRecord is the persisted shape of one registry entry. Unlike
// domain.Account it serializes the password hash, since the registry key
// is the system of record.
type registryRecord struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt,omitempty"`
}

// KVStore keeps the account registry as a JSON array under the well-known
// registry key. Every successful operation writes through; concurrent
// writers are last-write-wins by design.
type KVStore struct {
	kv kv.KV
}

// NewKVStore wraps a key-value backend as a registry store.
func NewKVStore(backend kv.KV) *KVStore {
	return &KVStore{kv: backend}
}

// SaveAccount appends the account to the persisted registry.
func (s *KVStore) SaveAccount(a domain.Account) error {
	records, err := s.load()
	if err != nil {
		return err
	}
	replaced := false
	for i, rec := range records {
		if rec.ID == a.ID {
			records[i] = toRecord(a)
			replaced = true
			break
		}
	}
	if !replaced {
		records = append(records, toRecord(a))
	}
	return s.save(records)
}

// HasAccountEmail checks for an exact email match in the registry.
func (s *KVStore) HasAccountEmail(email string) (bool, error) {
	records, err := s.load()
	if err != nil {
		return false, err
	}
	for _, rec := range records {
		if rec.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// GetAccountByEmail scans the registry for an exact email match.
func (s *KVStore) GetAccountByEmail(email string) (domain.Account, bool, error) {
	records, err := s.load()
	if err != nil {
		return domain.Account{}, false, err
	}
	for _, rec := range records {
		if rec.Email == email {
			return fromRecord(rec), true, nil
		}
	}
	return domain.Account{}, false, nil
}

// GetAccountByID scans the registry for an ID match.
func (s *KVStore) GetAccountByID(id string) (domain.Account, bool, error) {
	records, err := s.load()
	if err != nil {
		return domain.Account{}, false, err
	}
	for _, rec := range records {
		if rec.ID == id {
			return fromRecord(rec), true, nil
		}
	}
	return domain.Account{}, false, nil
}

// ListAccounts returns the registry in stored order.
func (s *KVStore) ListAccounts() ([]domain.Account, error) {
	records, err := s.load()
	if err != nil {
		return nil, err
	}
	res := make([]domain.Account, 0, len(records))
	for _, rec := range records {
		res = append(res, fromRecord(rec))
	}
	return res, nil
}

// AccountCount returns the registry size.
func (s *KVStore) AccountCount() (int, error) {
	records, err := s.load()
	if err != nil {
		return 0, err
	}
	return len(records), nil
}

// load reads the registry key. Malformed persisted JSON is treated as an
// empty registry, not as an error: the next write replaces it.
func (s *KVStore) load() ([]registryRecord, error) {
	raw, ok, err := s.kv.Get(kv.KeyRegistry)
	if err != nil {
		return nil, fmt.Errorf("read registry: %w", err)
	}
	if !ok || raw == "" {
		return nil, nil
	}
	var records []registryRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, nil
	}
	return records, nil
}

func (s *KVStore) save(records []registryRecord) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode registry: %w", err)
	}
	if err := s.kv.Set(kv.KeyRegistry, string(data)); err != nil {
		return fmt.Errorf("write registry: %w", err)
	}
	return nil
}

func toRecord(a domain.Account) registryRecord {
	return registryRecord{
		ID:           a.ID,
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
		CreatedAt:    a.CreatedAt,
	}
}

func fromRecord(rec registryRecord) domain.Account {
	return domain.Account{
		ID:           rec.ID,
		Email:        rec.Email,
		PasswordHash: rec.PasswordHash,
		CreatedAt:    rec.CreatedAt,
	}
}
