package service

import (
	"context"
	"time"
)

// StoreEventKind names the type of a StoreEvent.
type StoreEventKind string

const (
	// EventContactAdded is emitted for every number newly added to the contact directory.
	EventContactAdded StoreEventKind = "contact.added"
	// EventStockLow is emitted when a sale leaves a product at or under the low-stock threshold.
	EventStockLow StoreEventKind = "stock.low"
)

// ContactAddedPayload describes a new WhatsApp contact.
type ContactAddedPayload struct {
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	Role       string    `json:"role"`
	TenantName string    `json:"tenant_name"`
	CreatedAt  time.Time `json:"created_at"`
}

// StockLowPayload describes a product running out.
type StockLowPayload struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Stock       float64 `json:"stock"`
	Threshold   float64 `json:"threshold"`
}

// StoreEvent is published for asynchronous processing by the notifier worker.
type StoreEvent struct {
	ID         string               `json:"id"`
	RequestID  string               `json:"request_id,omitempty"` // For distributed tracing
	Kind       StoreEventKind       `json:"kind"`
	TenantID   string               `json:"tenant_id"`
	OccurredAt time.Time            `json:"occurred_at"`
	Contact    *ContactAddedPayload `json:"contact,omitempty"`
	Stock      *StockLowPayload     `json:"stock,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// Publish sends an event for async processing
	Publish(ctx context.Context, event *StoreEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
