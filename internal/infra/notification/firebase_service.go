// Package notification pushes alert updates to the owner's devices through Firebase Cloud Messaging.
package notification

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"sos/internal/domain/constants"
	"sos/internal/domain/entity"
	"sos/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// messageSender is the subset of the FCM client used here.
type messageSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type firebaseService struct {
	client messageSender
}

// NewFirebaseService creates a push service from an initialised Firebase app.
func NewFirebaseService(ctx context.Context, app *firebase.App) (service.PushService, error) {
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{client: client}, nil
}

// TopicForOwner is the FCM topic an owner's devices subscribe to.
func TopicForOwner(ownerID string) string {
	return constants.PushTopicPrefix + ownerID
}

// SendAlertUpdate sends a high priority topic message describing the change.
func (s *firebaseService) SendAlertUpdate(ctx context.Context, event *entity.AlertEvent) (string, error) {
	title, body := pushContent(event)

	messageID, err := s.client.Send(ctx, &messaging.Message{
		Topic: TopicForOwner(event.OwnerID),
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: map[string]string{
			"alert_id":    event.AlertID,
			"change":      string(event.Change),
			"status":      string(event.Status),
			"sent_count":  strconv.Itoa(event.SentCount),
			"total_count": strconv.Itoa(event.TotalCount),
		},
		Android: &messaging.AndroidConfig{Priority: "high"},
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to send push notification")
	}

	return messageID, nil
}

// IsRetryable reports whether a push failure is worth redelivering.
func IsRetryable(err error) bool {
	return messaging.IsInternal(err) ||
		messaging.IsUnavailable(err) ||
		messaging.IsQuotaExceeded(err)
}

func pushContent(event *entity.AlertEvent) (title, body string) {
	switch {
	case event.Status == entity.AlertStatusCancelled:
		return "SOS cancelled", "Your SOS alert was cancelled."
	case event.Status == entity.AlertStatusResolved:
		return "SOS resolved", "Your SOS alert was marked as resolved."
	case event.Change == entity.AlertChangeCreated || event.Change == entity.AlertChangeReplaced:
		return "SOS alert active", fmt.Sprintf("Notifying %d emergency contacts.", event.TotalCount)
	default:
		return "SOS alert update", fmt.Sprintf("%d of %d contacts notified.", event.SentCount, event.TotalCount)
	}
}

// noopPushService is used when Firebase is not configured.
type noopPushService struct {
	logger *slog.Logger
}

func (s *noopPushService) SendAlertUpdate(_ context.Context, event *entity.AlertEvent) (string, error) {
	s.logger.Debug("[NoopPush] Push disabled, skipping",
		slog.String("alert_id", event.AlertID),
	)

	return "", nil
}

// Params holds dependencies for the push service, injected by Fx
type Params struct {
	fx.In

	Ctx         context.Context
	Logger      *slog.Logger
	FirebaseApp *firebase.App `optional:"true"`
}

// NewPushService creates the FCM push service, or a no-op when Firebase is not configured.
func NewPushService(params Params) (service.PushService, error) {
	if params.FirebaseApp == nil {
		params.Logger.Info("Firebase not configured, push notifications disabled")

		return &noopPushService{logger: params.Logger}, nil
	}

	return NewFirebaseService(params.Ctx, params.FirebaseApp)
}

// Module provides the push notification FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewPushService),
)
