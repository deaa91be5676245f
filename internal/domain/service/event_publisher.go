package service

import (
	"context"
	"time"
)

// Connection event kinds published to downstream consumers, typically
// the message router that binds pages to their bots.
const (
	ConnectionLinked  = "connection.linked"
	ConnectionRemoved = "connection.removed"
)

// ConnectionEvent announces a change to a user's social connections.
// Tokens never ride in events; consumers that need one read the table.
type ConnectionEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	EventID    string    `json:"event_id"`
	Kind       string    `json:"kind"`
	UserID     string    `json:"user_id"`
	Platform   string    `json:"platform"`
	PageID     string    `json:"page_id,omitempty"`
	PageName   string    `json:"page_name,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishConnectionEvent publishes a connection change for async processing
	PublishConnectionEvent(ctx context.Context, event *ConnectionEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
