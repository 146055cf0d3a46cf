package app

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"pacifisai/internal/util"
	"pacifisai/pkg/domain"
	"pacifisai/pkg/events"
	"pacifisai/pkg/store"
	"pacifisai/services/agent/internal/matcher"
)

// TranscriptArchive stores exported transcripts. Satisfied by
// *storage.ObjectStore.
type TranscriptArchive interface {
	PutTranscript(ctx context.Context, conversationID string, payload []byte) (string, error)
	RemoveTranscript(ctx context.Context, conversationID string) error
}

// Config holds runtime configuration for the agent application.
type Config struct {
	DatabaseURL string
	Store       store.TranscriptStore
	Publisher   events.Publisher
	Archive     TranscriptArchive
	// DelayFactor scales the simulated thinking delay. Zero means 1.0.
	DelayFactor float64
}

// App owns conversations and their append-only transcripts.
type App struct {
	store       store.TranscriptStore
	publisher   events.Publisher
	archive     TranscriptArchive
	delayFactor float64
}

// New constructs the agent application.
func New(cfg Config) (*App, error) {
	dataStore := cfg.Store
	if dataStore == nil {
		if strings.TrimSpace(cfg.DatabaseURL) == "" {
			return nil, fmt.Errorf("databaseURL required")
		}
		gormStore, err := store.NewGormStore(cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("init postgres store: %w", err)
		}
		dataStore = gormStore
	}
	delayFactor := cfg.DelayFactor
	if delayFactor == 0 {
		delayFactor = 1.0
	}
	return &App{
		store:       dataStore,
		publisher:   cfg.Publisher,
		archive:     cfg.Archive,
		delayFactor: delayFactor,
	}, nil
}

// OpenConversation starts a conversation for the user, seeded with the
// assistant greeting.
func (a *App) OpenConversation(ctx context.Context, userID, title string) (domain.Conversation, domain.Message, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return domain.Conversation{}, domain.Message{}, fmt.Errorf("userId required")
	}
	if strings.TrimSpace(title) == "" {
		title = "Support conversation"
	}
	now := time.Now().UTC()
	conversation := domain.Conversation{
		ID:            uuid.NewString(),
		UserID:        userID,
		Title:         title,
		LastMessageAt: now,
		CreatedAt:     now,
	}
	if err := a.store.CreateConversation(conversation); err != nil {
		return domain.Conversation{}, domain.Message{}, fmt.Errorf("create conversation: %w", err)
	}
	greeting := domain.Message{
		ID:             uuid.NewString(),
		ConversationID: conversation.ID,
		Author:         domain.AuthorAssistant,
		Text:           matcher.Greeting.Reply,
		Sentiment:      matcher.Greeting.Sentiment,
		LatencySeconds: matcher.Greeting.LatencySeconds,
		CreatedAt:      now,
	}
	if err := a.store.AppendMessage(conversation.ID, greeting); err != nil {
		return domain.Conversation{}, domain.Message{}, fmt.Errorf("append greeting: %w", err)
	}
	return conversation, greeting, nil
}

// SendMessage records the user turn, matches a reply, waits out the simulated
// thinking delay, and records the assistant turn. Cancelling ctx during the
// delay discards the pending reply; the user turn stays in the transcript.
func (a *App) SendMessage(ctx context.Context, conversationID, text string) (domain.Message, domain.Message, error) {
	if strings.TrimSpace(text) == "" {
		return domain.Message{}, domain.Message{}, ErrEmptyMessage
	}
	if _, ok, err := a.store.GetConversation(conversationID); err != nil {
		return domain.Message{}, domain.Message{}, fmt.Errorf("fetch conversation: %w", err)
	} else if !ok {
		return domain.Message{}, domain.Message{}, ErrConversationNotFound
	}

	userMsg := domain.Message{
		ID:             uuid.NewString(),
		ConversationID: conversationID,
		Author:         domain.AuthorUser,
		Text:           text,
		CreatedAt:      time.Now().UTC(),
	}
	if err := a.store.AppendMessage(conversationID, userMsg); err != nil {
		return domain.Message{}, domain.Message{}, fmt.Errorf("append message: %w", err)
	}

	response := matcher.Match(text)
	if err := a.waitReplyDelay(ctx, response.LatencySeconds); err != nil {
		return userMsg, domain.Message{}, err
	}

	reply := domain.Message{
		ID:             uuid.NewString(),
		ConversationID: conversationID,
		Author:         domain.AuthorAssistant,
		Text:           response.Reply,
		Sentiment:      response.Sentiment,
		LatencySeconds: response.LatencySeconds,
		CreatedAt:      time.Now().UTC(),
	}
	if err := a.store.AppendMessage(conversationID, reply); err != nil {
		return userMsg, domain.Message{}, fmt.Errorf("append reply: %w", err)
	}
	if err := a.store.TouchConversation(conversationID, reply.CreatedAt); err != nil {
		return userMsg, domain.Message{}, fmt.Errorf("touch conversation: %w", err)
	}

	if a.publisher != nil {
		event := events.MessageRecorded{
			ConversationID: conversationID,
			MessageID:      reply.ID,
			Sentiment:      reply.Sentiment,
			LatencySeconds: reply.LatencySeconds,
			RecordedAt:     reply.CreatedAt,
		}
		if err := a.publisher.PublishMessageRecorded(ctx, event); err != nil {
			// Event delivery is best effort; the transcript is the source of truth.
			util.LoggerFromContext(ctx).Warn("publish message.recorded", "err", err)
		}
	}
	return userMsg, reply, nil
}

// ListConversations returns the user's conversations, most recent first.
func (a *App) ListConversations(userID string, limit int) ([]domain.Conversation, error) {
	conversations, err := a.store.ListConversationsByUser(userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	return conversations, nil
}

// ListMessages returns the conversation transcript in insertion order.
func (a *App) ListMessages(conversationID string, limit int) ([]domain.Message, error) {
	if _, ok, err := a.store.GetConversation(conversationID); err != nil {
		return nil, fmt.Errorf("fetch conversation: %w", err)
	} else if !ok {
		return nil, ErrConversationNotFound
	}
	messages, err := a.store.ListMessages(conversationID, limit)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return messages, nil
}

// ExportTranscript archives the full transcript as JSON and returns the
// object key.
func (a *App) ExportTranscript(ctx context.Context, conversationID string) (string, error) {
	if a.archive == nil {
		return "", ErrArchiveNotConfigured
	}
	conversation, ok, err := a.store.GetConversation(conversationID)
	if err != nil {
		return "", fmt.Errorf("fetch conversation: %w", err)
	}
	if !ok {
		return "", ErrConversationNotFound
	}
	messages, err := a.store.ListMessages(conversationID, 0)
	if err != nil {
		return "", fmt.Errorf("list messages: %w", err)
	}
	payload, err := json.Marshal(struct {
		Conversation domain.Conversation `json:"conversation"`
		Messages     []domain.Message    `json:"messages"`
	}{conversation, messages})
	if err != nil {
		return "", fmt.Errorf("encode transcript: %w", err)
	}
	key, err := a.archive.PutTranscript(ctx, conversationID, payload)
	if err != nil {
		return "", fmt.Errorf("archive transcript: %w", err)
	}
	return key, nil
}

// DeleteTranscriptExport removes a previously archived transcript. Deleting
// an export that was never made is a no-op at the archive level.
func (a *App) DeleteTranscriptExport(ctx context.Context, conversationID string) error {
	if a.archive == nil {
		return ErrArchiveNotConfigured
	}
	if _, ok, err := a.store.GetConversation(conversationID); err != nil {
		return fmt.Errorf("fetch conversation: %w", err)
	} else if !ok {
		return ErrConversationNotFound
	}
	if err := a.archive.RemoveTranscript(ctx, conversationID); err != nil {
		return fmt.Errorf("remove archived transcript: %w", err)
	}
	return nil
}

func (a *App) waitReplyDelay(ctx context.Context, seconds float64) error {
	delay := time.Duration(seconds * a.delayFactor * float64(time.Second))
	if delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
