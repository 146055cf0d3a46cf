package store

import (
	"time"

	"pacifisai/pkg/domain"
)

// Store defines persistence for the account registry. The registry grows
// monotonically: there is no delete or update operation.
type Store interface {
	SaveAccount(domain.Account) error
	HasAccountEmail(email string) (bool, error)
	GetAccountByEmail(email string) (domain.Account, bool, error)
	GetAccountByID(id string) (domain.Account, bool, error)
	ListAccounts() ([]domain.Account, error)
	AccountCount() (int, error)
}

// TranscriptStore persists conversations and their append-only transcripts.
type TranscriptStore interface {
	CreateConversation(domain.Conversation) error
	GetConversation(id string) (domain.Conversation, bool, error)
	ListConversationsByUser(userID string, limit int) ([]domain.Conversation, error)
	TouchConversation(id string, lastMessageAt time.Time) error
	AppendMessage(conversationID string, msg domain.Message) error
	ListMessages(conversationID string, limit int) ([]domain.Message, error)
}

// SessionStore persists session tokens and the identity behind them.
type SessionStore interface {
	NewSession(identity domain.Identity) (string, error)
	GetIdentityByToken(token string) (domain.Identity, bool, error)
	DeleteSession(token string) error
}
