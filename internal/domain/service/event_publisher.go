package service

import (
	"context"

	"sos/internal/domain/entity"
)

// EventPublisher defines the interface for publishing alert change events to a message queue
type EventPublisher interface {
	// PublishAlertEvent publishes an alert change event for async processing
	PublishAlertEvent(ctx context.Context, event *entity.AlertEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
