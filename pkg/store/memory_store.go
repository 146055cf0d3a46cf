package store

import (
	"sync"
	"time"

	"pacifisai/internal/util"
	"pacifisai/pkg/domain"
)

// MemoryStore keeps the registry and transcripts in-process. It backs tests
// and single-instance demo runs.
type MemoryStore struct {
	mu       sync.RWMutex
	accounts map[string]domain.Account // key: account ID
	email    map[string]string         // email -> account ID
	order    []string                  // account IDs in insertion order
	convs    map[string]domain.Conversation
	byUser   map[string][]string // user ID -> conversation IDs
	msgs     map[string][]domain.Message
	sess     map[string]domain.Identity // token -> identity
}

// NewMemoryStore initializes an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		accounts: make(map[string]domain.Account),
		email:    make(map[string]string),
		convs:    make(map[string]domain.Conversation),
		byUser:   make(map[string][]string),
		msgs:     make(map[string][]domain.Message),
		sess:     make(map[string]domain.Identity),
	}
}

// SaveAccount appends a new account to the registry.
func (m *MemoryStore) SaveAccount(a domain.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.accounts[a.ID]; !exists {
		m.order = append(m.order, a.ID)
	}
	m.accounts[a.ID] = a
	m.email[a.Email] = a.ID
	return nil
}

// HasAccountEmail checks if an email exists (exact match).
func (m *MemoryStore) HasAccountEmail(email string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.email[email]
	return ok, nil
}

// GetAccountByEmail looks up an account by email.
func (m *MemoryStore) GetAccountByEmail(email string) (domain.Account, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if id, ok := m.email[email]; ok {
		a, exists := m.accounts[id]
		return a, exists, nil
	}
	return domain.Account{}, false, nil
}

// GetAccountByID returns an account by ID.
func (m *MemoryStore) GetAccountByID(id string) (domain.Account, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.accounts[id]
	return a, ok, nil
}

// ListAccounts returns all accounts in insertion order.
func (m *MemoryStore) ListAccounts() ([]domain.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	res := make([]domain.Account, 0, len(m.order))
	for _, id := range m.order {
		if a, ok := m.accounts[id]; ok {
			res = append(res, a)
		}
	}
	return res, nil
}

// AccountCount returns the registry size.
func (m *MemoryStore) AccountCount() (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.accounts), nil
}

// CreateConversation records a new conversation.
func (m *MemoryStore) CreateConversation(c domain.Conversation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.convs[c.ID] = c
	m.byUser[c.UserID] = append(m.byUser[c.UserID], c.ID)
	return nil
}

// GetConversation returns one conversation by ID.
func (m *MemoryStore) GetConversation(id string) (domain.Conversation, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.convs[id]
	return c, ok, nil
}

// ListConversationsByUser returns a user's conversations, most recent
// first, so a limited query keeps the newest ones.
func (m *MemoryStore) ListConversationsByUser(userID string, limit int) ([]domain.Conversation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := m.byUser[userID]
	if limit > 0 && len(ids) > limit {
		ids = ids[len(ids)-limit:]
	}
	res := make([]domain.Conversation, 0, len(ids))
	for i := len(ids) - 1; i >= 0; i-- {
		if c, ok := m.convs[ids[i]]; ok {
			res = append(res, c)
		}
	}
	return res, nil
}

// TouchConversation refreshes the last-message timestamp.
func (m *MemoryStore) TouchConversation(id string, lastMessageAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.convs[id]
	if !ok {
		return nil
	}
	c.LastMessageAt = lastMessageAt
	m.convs[id] = c
	return nil
}

// AppendMessage records a transcript turn. Messages are never mutated.
func (m *MemoryStore) AppendMessage(conversationID string, msg domain.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.msgs[conversationID] = append(m.msgs[conversationID], msg)
	return nil
}

// ListMessages returns the transcript in append order.
func (m *MemoryStore) ListMessages(conversationID string, limit int) ([]domain.Message, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	msgs := m.msgs[conversationID]
	if limit > 0 && len(msgs) > limit {
		msgs = msgs[len(msgs)-limit:]
	}
	res := make([]domain.Message, len(msgs))
	copy(res, msgs)
	return res, nil
}

// NewSession creates a session token bound to an identity.
func (m *MemoryStore) NewSession(identity domain.Identity) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	token := util.NewID()
	m.sess[token] = identity
	return token, nil
}

// GetIdentityByToken resolves a token to its identity.
func (m *MemoryStore) GetIdentityByToken(token string) (domain.Identity, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	identity, ok := m.sess[token]
	return identity, ok, nil
}

// DeleteSession removes a token mapping. Unknown tokens are a no-op.
func (m *MemoryStore) DeleteSession(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sess, token)
	return nil
}
