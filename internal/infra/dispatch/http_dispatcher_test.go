package dispatch

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sos/internal/domain/entity"
	"sos/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newRequest() *service.DispatchRequest {
	return &service.DispatchRequest{
		EmergencyType: "medical",
		Priority:      "high",
		Source:        "SHEILD_APP",
		Language:      "en",
		Position:      entity.Position{Latitude: 19.076, Longitude: 72.8777, Address: "Mumbai"},
		Caller:        entity.Caller{OwnerID: "user-1", DisplayName: "Asha"},
		Timestamp:     time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestHTTPDispatcher_PostsEmergencyPayload(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"dispatch_id":"IN-ES-42"}`))
	}))
	defer srv.Close()

	d := NewHTTPDispatcher(srv.URL, newTestLogger())

	id, err := d.Dispatch(context.Background(), newRequest())
	require.NoError(t, err)
	assert.Equal(t, "IN-ES-42", id)

	assert.Equal(t, "medical", got["emergency_type"])
	assert.Equal(t, "high", got["priority"])
	assert.Equal(t, "SHEILD_APP", got["source"])
	assert.Equal(t, "2024-05-01T10:00:00Z", got["timestamp"])
	caller := got["caller"].(map[string]any)
	assert.Equal(t, "Asha", caller["name"])
	assert.Equal(t, "Unknown", caller["phone"])
	assert.Equal(t, "en", caller["language"])
	location := got["location"].(map[string]any)
	assert.Equal(t, 19.076, location["latitude"])
}

func TestHTTPDispatcher_RegionEndpointOverride(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"id":"R-1"}`))
	}))
	defer srv.Close()

	d := NewHTTPDispatcher("http://127.0.0.1:1/unused", newTestLogger())
	req := newRequest()
	req.Endpoint = srv.URL

	id, err := d.Dispatch(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "R-1", id)
}

func TestHTTPDispatcher_Failures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := NewHTTPDispatcher(srv.URL, newTestLogger()).Dispatch(context.Background(), newRequest())
	assert.Error(t, err)

	_, err = NewHTTPDispatcher("", newTestLogger()).Dispatch(context.Background(), newRequest())
	assert.Error(t, err)
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func TestMockDispatcher(t *testing.T) {
	d := NewMockDispatcher(0, fixedClock{now: time.UnixMilli(1714557600000)}, newTestLogger())

	id, err := d.Dispatch(context.Background(), newRequest())
	require.NoError(t, err)
	assert.Equal(t, "ES-1714557600000", id)
}
