package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"sos/config"
	deliverycontext "sos/internal/delivery/context"
	"sos/internal/domain/constants"
	"sos/internal/domain/entity"
	"sos/internal/infra/pubsub"
	mockSvc "sos/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestPushHandler(t *testing.T, env string, provider string) (*PushHandler, *mockSvc.MockPushService) {
	t.Helper()

	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: provider}}
	cfg.Env.Env = env

	pushSvc := mockSvc.NewMockPushService(t)
	h := NewPushHandler(PushHandlerParams{
		Config:  cfg,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		PushSvc: pushSvc,
	})

	return h, pushSvc
}

func newAlertEvent() *entity.AlertEvent {
	return &entity.AlertEvent{
		RequestID:  "req-42",
		OwnerID:    "owner-1",
		AlertID:    "0190a8f0-0000-7000-8000-000000000001",
		Change:     entity.AlertChangeContactStatus,
		Status:     entity.AlertStatusActive,
		SentCount:  1,
		TotalCount: 3,
		OccurredAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
}

func pushBody(t *testing.T, event *entity.AlertEvent) string {
	t.Helper()

	msg, err := pubsub.NewPushMessage(event)
	require.NoError(t, err)
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PushHandler, body string, header http.Header) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for key, values := range header {
		req.Header[key] = values
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_DeliversAlertUpdate(t *testing.T) {
	h, pushSvc := newTestPushHandler(t, constants.EnvDevelop, constants.PubSubProviderLocal)
	event := newAlertEvent()

	pushSvc.EXPECT().
		SendAlertUpdate(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, got *entity.AlertEvent) (string, error) {
			assert.Equal(t, event.AlertID, got.AlertID)
			assert.Equal(t, event.OwnerID, got.OwnerID)
			assert.Equal(t, event.Change, got.Change)
			assert.Equal(t, 1, got.SentCount)
			assert.Equal(t, "req-42", deliverycontext.GetRequestIDFromContext(ctx))

			return "projects/sos/messages/1", nil
		}).
		Once()

	rec := servePush(h, pushBody(t, event), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_FailureClassification(t *testing.T) {
	tests := []struct {
		name      string
		retryable bool
		wantCode  int
	}{
		{name: "retryable failure asks for redelivery", retryable: true, wantCode: http.StatusServiceUnavailable},
		{name: "permanent failure is acknowledged", retryable: false, wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, pushSvc := newTestPushHandler(t, constants.EnvDevelop, constants.PubSubProviderLocal)
			h.isRetryable = func(error) bool { return tt.retryable }

			pushSvc.EXPECT().SendAlertUpdate(mock.Anything, mock.Anything).Return("", errors.New("fcm failed")).Once()

			rec := servePush(h, pushBody(t, newAlertEvent()), nil)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestPushHandler_RejectsMalformedMessages(t *testing.T) {
	tests := []struct {
		name string
		body string
		code int
	}{
		{name: "not json", body: "{", code: http.StatusBadRequest},
		{name: "data not base64", body: `{"message":{"data":"%%%"}}`, code: http.StatusBadRequest},
		{name: "data not an event", body: `{"message":{"data":"bm90IGpzb24="}}`, code: http.StatusBadRequest},
		{name: "event without owner", body: `{"message":{"data":"eyJhbGVydF9pZCI6IngifQ=="}}`, code: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, pushSvc := newTestPushHandler(t, constants.EnvDevelop, constants.PubSubProviderLocal)

			rec := servePush(h, tt.body, nil)

			assert.Equal(t, tt.code, rec.Code)
			pushSvc.AssertNotCalled(t, "SendAlertUpdate", mock.Anything, mock.Anything)
		})
	}
}

func TestPushHandler_VerifiesGoogleToken(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		payload  *idtoken.Payload
		err      error
		wantCode int
	}{
		{name: "missing header", wantCode: http.StatusUnauthorized},
		{name: "not bearer", header: "Basic abc", wantCode: http.StatusUnauthorized},
		{name: "invalid token", header: "Bearer bad", err: errors.New("expired"), wantCode: http.StatusUnauthorized},
		{
			name:     "wrong issuer",
			header:   "Bearer token",
			payload:  &idtoken.Payload{Issuer: "https://evil.example"},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "unverified email",
			header:   "Bearer token",
			payload:  &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": false}},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "valid token",
			header:   "Bearer token",
			payload:  &idtoken.Payload{Issuer: "accounts.google.com", Claims: map[string]any{"email_verified": true}},
			wantCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, pushSvc := newTestPushHandler(t, constants.EnvProduction, constants.PubSubProviderGoogle)
			require.True(t, h.verifyPushAuth)

			h.validateToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
				assert.Equal(t, "http://example.com/push", audience)
				if tt.err != nil {
					return nil, tt.err
				}

				return tt.payload, nil
			}
			pushSvc.EXPECT().SendAlertUpdate(mock.Anything, mock.Anything).Return("msg-1", nil).Maybe()

			header := http.Header{}
			if tt.header != "" {
				header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := servePush(h, pushBody(t, newAlertEvent()), header)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestNewPushHandler_SkipsVerificationInDevelopment(t *testing.T) {
	h, _ := newTestPushHandler(t, constants.EnvDevelop, constants.PubSubProviderGoogle)
	assert.False(t, h.verifyPushAuth)

	h, _ = newTestPushHandler(t, constants.EnvProduction, constants.PubSubProviderLocal)
	assert.False(t, h.verifyPushAuth)
}
