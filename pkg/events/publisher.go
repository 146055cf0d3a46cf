// Package events publishes agent activity to a message broker so the
// dashboard side can aggregate it without polling the agent service.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"pacifisai/pkg/domain"
)

// MessageRecorded is emitted once per assistant turn.
type MessageRecorded struct {
	ConversationID string           `json:"conversationId"`
	MessageID      string           `json:"messageId"`
	Sentiment      domain.Sentiment `json:"sentiment"`
	LatencySeconds float64          `json:"latencySeconds"`
	RecordedAt     time.Time        `json:"recordedAt"`
}

// Publisher emits events to the broker. A nil *RabbitPublisher is a valid
// no-op publisher so the agent runs without a broker configured.
type Publisher interface {
	PublishMessageRecorded(ctx context.Context, event MessageRecorded) error
}

// RabbitConfig configures the broker connection.
type RabbitConfig struct {
	URL      string
	Exchange string
}

// RabbitPublisher publishes events to a RabbitMQ topic exchange.
type RabbitPublisher struct {
	url      string
	exchange string

	mu      sync.Mutex
	conn    *amqp.Connection
	channel *amqp.Channel
}

// NewRabbitPublisher validates config; the connection is established lazily
// on first publish so startup does not depend on broker availability.
func NewRabbitPublisher(cfg RabbitConfig) (*RabbitPublisher, error) {
	url := strings.TrimSpace(cfg.URL)
	if url == "" {
		return nil, errors.New("rabbitmq url required")
	}
	exchange := strings.TrimSpace(cfg.Exchange)
	if exchange == "" {
		exchange = "pacifisai.events"
	}
	return &RabbitPublisher{url: url, exchange: exchange}, nil
}

// PublishMessageRecorded emits a message.recorded event.
func (p *RabbitPublisher) PublishMessageRecorded(ctx context.Context, event MessageRecorded) error {
	if p == nil {
		return nil
	}
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}
	channel, err := p.ensureChannel()
	if err != nil {
		return err
	}
	err = channel.PublishWithContext(ctx, p.exchange, "message.recorded", false, false, amqp.Publishing{
		ContentType: "application/json",
		Timestamp:   event.RecordedAt,
		Body:        body,
	})
	if err != nil {
		p.reset()
		return fmt.Errorf("publish event: %w", err)
	}
	return nil
}

// Close shuts down the broker connection.
func (p *RabbitPublisher) Close() error {
	if p == nil {
		return nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.channel != nil {
		_ = p.channel.Close()
		p.channel = nil
	}
	if p.conn != nil {
		err := p.conn.Close()
		p.conn = nil
		return err
	}
	return nil
}

func (p *RabbitPublisher) ensureChannel() (*amqp.Channel, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.channel != nil && !p.channel.IsClosed() {
		return p.channel, nil
	}
	// A dead channel may leave the old connection alive; drop it before
	// redialing so stale connections do not accumulate.
	if p.channel != nil {
		_ = p.channel.Close()
		p.channel = nil
	}
	if p.conn != nil {
		_ = p.conn.Close()
		p.conn = nil
	}
	conn, err := amqp.Dial(p.url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := channel.ExchangeDeclare(p.exchange, "topic", true, false, false, false, nil); err != nil {
		_ = channel.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}
	p.conn = conn
	p.channel = channel
	return channel, nil
}

func (p *RabbitPublisher) reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.channel != nil {
		_ = p.channel.Close()
		p.channel = nil
	}
	if p.conn != nil {
		_ = p.conn.Close()
		p.conn = nil
	}
}
