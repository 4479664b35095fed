package service

import (
	"context"
	"encoding/json"
	"time"
)

// EventType names a domain event as "<aggregate>.<action>".
type EventType string

const (
	EventAccountCreated  EventType = "account.created"
	EventAccountUpdated  EventType = "account.updated"
	EventAccountDeleted  EventType = "account.deleted"
	EventNovelistCreated EventType = "novelist.created"
	EventNovelistUpdated EventType = "novelist.updated"
	EventNovelistDeleted EventType = "novelist.deleted"
	EventBookCreated     EventType = "book.created"
	EventBookUpdated     EventType = "book.updated"
	EventBookDeleted     EventType = "book.deleted"
)

// DomainEvent records a committed change to an account or a catalog entry.
type DomainEvent struct {
	RequestID   string          `json:"request_id,omitempty"` // For distributed tracing
	Type        EventType       `json:"type"`
	AggregateID string          `json:"aggregate_id"`
	OccurredAt  time.Time       `json:"occurred_at"`
	Payload     json.RawMessage `json:"payload,omitempty"`
}

// EventPublisher defines the interface for publishing domain events to a message broker
type EventPublisher interface {
	Publish(ctx context.Context, event *DomainEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
