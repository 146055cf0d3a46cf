package domain

import "time"

// Sentiment labels attached to assistant replies.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// Author identifies which side of a conversation produced a message.
type Author string

const (
	AuthorUser      Author = "user"
	AuthorAssistant Author = "assistant"
)

// Account is a registry record. The password hash never leaves the server.
type Account struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Identity is the public subset of an account exposed after authentication.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Identity returns the public view of the account.
func (a Account) Identity() Identity {
	return Identity{ID: a.ID, Email: a.Email}
}

// Conversation groups an ordered transcript of messages.
type Conversation struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	Title         string    `json:"title"`
	LastMessageAt time.Time `json:"lastMessageAt"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Message is one transcript turn. Sentiment and LatencySeconds are set on
// assistant turns only.
type Message struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversationId"`
	Author         Author    `json:"author"`
	Text           string    `json:"text"`
	Sentiment      Sentiment `json:"sentiment,omitempty"`
	LatencySeconds float64   `json:"latencySeconds,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}
