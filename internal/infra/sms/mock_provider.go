package sms

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"sos/internal/domain/constants"
	"sos/internal/domain/service"
)

// mockProvider accepts every message without sending it. It is the development stand-in for SNS.
type mockProvider struct {
	latency time.Duration
	clock   service.Clock
	sleep   service.Sleeper
	logger  *slog.Logger
}

// NewMockProvider creates a provider that reports success after the given latency.
func NewMockProvider(latency time.Duration, clock service.Clock, logger *slog.Logger) service.SMSProvider {
	return &mockProvider{
		latency: latency,
		clock:   clock,
		sleep:   service.Sleep,
		logger:  logger,
	}
}

func (p *mockProvider) Name() string {
	return constants.SMSProviderMock
}

func (p *mockProvider) SendSMS(ctx context.Context, phone, body string) (string, error) {
	if err := p.sleep(ctx, p.latency); err != nil {
		return "", err
	}

	messageID := fmt.Sprintf("MOCK-%d", p.clock.Now().UnixMilli())
	p.logger.Info("[MockSMS] Message accepted",
		slog.String("phone", phone),
		slog.String("message_id", messageID),
		slog.Int("length", len(body)),
	)

	return messageID, nil
}
