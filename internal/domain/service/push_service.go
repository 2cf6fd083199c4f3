package service

import (
	"context"

	"sos/internal/domain/entity"
)

// PushService pushes alert updates to the owner's signed-in devices.
type PushService interface {
	// SendAlertUpdate pushes a summary of the event to every device subscribed for the owner.
	SendAlertUpdate(ctx context.Context, event *entity.AlertEvent) (messageID string, err error)
}
