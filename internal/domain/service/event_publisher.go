package service

import (
	"context"
)

// OrderEventType distinguishes the two notification triggers.
type OrderEventType string

const (
	OrderEventCreated       OrderEventType = "order_created"
	OrderEventStatusChanged OrderEventType = "order_status_changed"
)

// OrderEvent is emitted after an order write commits and consumed by the notification dispatcher
type OrderEvent struct {
	RequestID   string         `json:"request_id,omitempty"` // For distributed tracing
	Type        OrderEventType `json:"type"`
	OrderID     string         `json:"order_id"`
	OrderNumber int64          `json:"order_number"`
	Status      string         `json:"status,omitempty"`
}

// EventPublisher defines the interface for publishing order events
type EventPublisher interface {
	// PublishOrderEvent hands the event to the dispatcher transport
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

// OrderEventHandler consumes order events on the receiving side of the publisher
type OrderEventHandler interface {
	HandleOrderEvent(ctx context.Context, event *OrderEvent) error
}
