package repository

import (
	"context"

	"sos/internal/domain/entity"

	"github.com/google/uuid"
)

// DeliveryLogRepository persists the SMS tracking log.
type DeliveryLogRepository interface {
	// CreateDeliveryLog persists a single delivery log entry.
	CreateDeliveryLog(ctx context.Context, log *entity.DeliveryLog) error

	// FindDeliveryLogsByAlert retrieves the delivery log of one alert, oldest first.
	FindDeliveryLogsByAlert(ctx context.Context, alertID uuid.UUID) ([]*entity.DeliveryLog, error)
}
