package service

import (
	"context"
	"time"
)

// Account lifecycle event types.
const (
	EventAccountRegistered = "account.registered"
	EventAccountCreated    = "account.created"
	EventAccountUpdated    = "account.updated"
	EventAccountDeleted    = "account.deleted"
)

// AccountEvent is emitted after an account change has been committed.
type AccountEvent struct {
	Type       string    `json:"type"`
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	AccountID  string    `json:"account_id"`
	Email      string    `json:"email,omitempty"`
	Role       string    `json:"role,omitempty"`
	ActorID    string    `json:"actor_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher publishes account events to an external stream.
// Delivery is best effort; callers never roll back on a publish failure.
type EventPublisher interface {
	PublishAccountEvent(ctx context.Context, event *AccountEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
