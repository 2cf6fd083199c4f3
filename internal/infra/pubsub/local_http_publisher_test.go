package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sos/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newEvent() *entity.AlertEvent {
	return &entity.AlertEvent{
		RequestID:  "req-1",
		OwnerID:    "user-1",
		AlertID:    "5b0c6f3e-6d0e-4f57-9a43-1f5f0b0f6a11",
		Change:     entity.AlertChangeContactStatus,
		Status:     entity.AlertStatusActive,
		SentCount:  1,
		TotalCount: 3,
		OccurredAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_PublishAlertEvent(t *testing.T) {
	var received PushMessage
	var requestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, newTestLogger())
	require.NoError(t, publisher.PublishAlertEvent(context.Background(), newEvent()))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "user-1", received.Message.OrderingKey)
	assert.Equal(t, "contact_status", received.Message.Attributes["change"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var event entity.AlertEvent
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, newEvent(), &event)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	err := NewLocalHTTPPublisher(srv.URL, newTestLogger()).PublishAlertEvent(context.Background(), newEvent())
	assert.Error(t, err)
}

func TestNoopPublisher(t *testing.T) {
	p := &noopPublisher{logger: newTestLogger()}

	assert.NoError(t, p.PublishAlertEvent(context.Background(), newEvent()))
	assert.NoError(t, p.Close())
}
