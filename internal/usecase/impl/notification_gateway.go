package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	_ "time/tzdata" // alert timestamps are rendered in a named zone even on minimal images

	"sos/config"
	deliverycontext "sos/internal/delivery/context"
	"sos/internal/domain/entity"
	domainerrors "sos/internal/domain/errors"
	"sos/internal/domain/service"
	"sos/internal/errors"
	"sos/internal/usecase"

	"go.uber.org/fx"
)

const (
	emergencyTemplate = "🚨 EMERGENCY SOS ALERT 🚨\n\n%s\n\n📍 Location: %s\n⏰ Time: %s\n\n" +
		"This is an automated emergency alert from %s.\n" +
		"For emergency assistance, contact local authorities immediately.\n\n" +
		"- %s Emergency System\n" +
		"- This is a transactional message"
	unknownLocation = "Unknown location"
	timestampLayout = "2/1/2006, 3:04:05 pm"
)

// notificationGateway implements the NotificationUsecase interface.
type notificationGateway struct {
	providers   []service.SMSProvider
	normalizer  *phoneNormalizer
	location    *time.Location
	senderName  string
	sendTimeout time.Duration
	clock       service.Clock
	logger      *slog.Logger
}

// NotificationGatewayParams holds dependencies for the notification gateway, injected by Fx.
type NotificationGatewayParams struct {
	fx.In

	Config    *config.Config
	Providers []service.SMSProvider
	Clock     service.Clock
	Logger    *slog.Logger
}

// NewNotificationGateway is the constructor for notificationGateway.
// Providers are tried in order until one succeeds or fails fatally.
func NewNotificationGateway(params NotificationGatewayParams) (usecase.NotificationUsecase, error) {
	params.Config.ApplyDefaults()
	cfg := params.Config.Notification

	location, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		return nil, errors.Wrapf(err, "load time zone %q", cfg.TimeZone)
	}

	return &notificationGateway{
		providers:   params.Providers,
		normalizer:  newPhoneNormalizer(cfg.DefaultCountryCode),
		location:    location,
		senderName:  cfg.SenderName,
		sendTimeout: cfg.SendTimeout,
		clock:       params.Clock,
		logger:      params.Logger,
	}, nil
}

// NormalizePhone converts a contact number to E.164.
func (g *notificationGateway) NormalizePhone(raw string) (string, error) {
	return g.normalizer.Normalize(raw)
}

// Send delivers the emergency message to one contact, falling back along the provider chain.
func (g *notificationGateway) Send(ctx context.Context, contact entity.ContactInfo, message, locationText string) *entity.SendOutcome {
	logger := deliverycontext.GetLoggerOrDefault(ctx, g.logger)

	phone, err := g.normalizer.Normalize(contact.Phone)
	if err != nil {
		logger.Warn("Contact phone cannot be normalised",
			slog.String("contact", contact.Name),
			slog.Any("error", err),
		)

		return &entity.SendOutcome{
			Reason:         err.Error(),
			Classification: entity.FailureFatal,
			Phone:          contact.Phone,
		}
	}

	if len(g.providers) == 0 {
		return &entity.SendOutcome{
			Reason:         "no SMS provider configured",
			Classification: entity.FailureFatal,
			Phone:          phone,
		}
	}

	body := g.composeMessage(message, locationText)
	outcome := &entity.SendOutcome{Phone: phone}

	for idx, provider := range g.providers {
		outcome.Attempts++
		outcome.Provider = provider.Name()

		messageID, err := g.sendWith(ctx, provider, phone, body)
		if err == nil {
			outcome.Sent = true
			outcome.MessageID = messageID
			outcome.Reason = ""
			outcome.Classification = ""

			logger.Info("Emergency SMS sent",
				slog.String("provider", provider.Name()),
				slog.String("message_id", messageID),
				slog.Int("attempts", outcome.Attempts),
			)

			return outcome
		}

		class := domainerrors.ClassifyNotificationError(err)
		outcome.Reason = err.Error()
		outcome.Classification = class

		logger.Warn("SMS provider failed",
			slog.String("provider", provider.Name()),
			slog.String("classification", string(class)),
			slog.Any("error", err),
		)

		if !class.AllowsFallback() || ctx.Err() != nil {
			return outcome
		}
		if idx+1 < len(g.providers) {
			logger.Info("Falling back to next SMS provider", slog.String("next", g.providers[idx+1].Name()))
		}
	}

	return outcome
}

func (g *notificationGateway) sendWith(ctx context.Context, provider service.SMSProvider, phone, body string) (string, error) {
	sendCtx, cancel := context.WithTimeout(ctx, g.sendTimeout)
	defer cancel()

	messageID, err := provider.SendSMS(sendCtx, phone, body)
	if err == nil {
		return messageID, nil
	}

	var notifErr *domainerrors.NotificationError
	if !errors.As(err, &notifErr) && errors.IsTimeout(err) {
		return "", domainerrors.NewNotificationError(entity.FailureRetryable, provider.Name(), "send timed out", err)
	}

	return "", err
}

func (g *notificationGateway) composeMessage(message, locationText string) string {
	location := strings.TrimSpace(locationText)
	if location == "" {
		location = unknownLocation
	}
	timestamp := g.clock.Now().In(g.location).Format(timestampLayout)

	return fmt.Sprintf(emergencyTemplate, message, location, timestamp, g.senderName, g.senderName)
}
