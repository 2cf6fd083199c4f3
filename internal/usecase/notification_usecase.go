package usecase

import (
	"context"

	"sos/internal/domain/entity"
)

// NotificationUsecase sends the emergency SMS to a single contact.
type NotificationUsecase interface {
	// Send never returns an error; every failure is described by the outcome.
	Send(ctx context.Context, contact entity.ContactInfo, message, locationText string) *entity.SendOutcome

	// NormalizePhone converts a contact number to E.164.
	NormalizePhone(raw string) (string, error)
}
