package handler

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"sos/internal/delivery/http/middleware"
	"sos/internal/delivery/http/validator"
	"sos/internal/domain/entity"
	domainerrors "sos/internal/domain/errors"
	"sos/internal/domain/service"
	"sos/internal/infra/device"
	mockSvc "sos/internal/mocks/service"
	mockUsecase "sos/internal/mocks/usecase"
	"sos/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testToken = "valid-token"

var testCaller = &entity.Caller{OwnerID: "owner-1", DisplayName: "Priya", Phone: "+919800000000"}

type alertHandlerFixture struct {
	echo    *echo.Echo
	alertUC *mockUsecase.MockAlertUsecase
}

func newAlertHandlerFixture(t *testing.T) *alertHandlerFixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	alertUC := mockUsecase.NewMockAlertUsecase(t)
	verifier := mockSvc.NewMockIdentityVerifier(t)
	verifier.EXPECT().VerifyToken(testToken).Return(testCaller, nil).Maybe()
	verifier.EXPECT().VerifyToken(mock.Anything).Return(nil, errors.New("bad signature")).Maybe()

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	h := NewAlertHandler(AlertHandlerParams{AlertUC: alertUC, Logger: logger})
	h.heartbeat = 50 * time.Millisecond

	auth := middleware.NewAuthMiddleware(verifier, logger)
	group := e.Group("/sos/alerts", auth.Authenticate)
	group.POST("", h.TriggerAlert)
	group.GET("/current", h.GetCurrentAlert)
	group.GET("/current/stream", h.StreamCurrentAlert)
	group.GET("/current/deliveries", h.ListDeliveries)
	group.POST("/current/cancel", h.CancelAlert)
	group.POST("/current/resolve", h.ResolveAlert)

	return &alertHandlerFixture{echo: e, alertUC: alertUC}
}

func (f *alertHandlerFixture) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+testToken)
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   *struct {
		Code    string `json:"code"`
		Details string `json:"details"`
	} `json:"error"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func TestAlertHandler_TriggerAlert(t *testing.T) {
	f := newAlertHandlerFixture(t)
	alertID := uuid.Must(uuid.NewV7())

	f.alertUC.EXPECT().
		Trigger(mock.Anything, mock.MatchedBy(func(input *usecase.TriggerInput) bool {
			return input.Caller == *testCaller &&
				input.Message == "Help me" &&
				len(input.Contacts) == 2 &&
				input.Contacts[1] == entity.ContactInfo{Name: "Ravi", Phone: "+919876543211"} &&
				input.ReplaceActive &&
				input.LocationBudget == 30*time.Second
		})).
		RunAndReturn(func(ctx context.Context, _ *usecase.TriggerInput) (*entity.AlertSummary, error) {
			locator := device.NewContextLocator()

			permission, err := locator.Permission(ctx)
			require.NoError(t, err)
			assert.Equal(t, service.PermissionGranted, permission)

			position, err := locator.Locate(ctx, service.FixRequest{})
			require.NoError(t, err)
			assert.InDelta(t, 12.97, position.Latitude, 1e-9)

			return &entity.AlertSummary{AlertID: alertID, State: entity.TriggerStateCompleted, SentCount: 2, TotalCount: 2}, nil
		}).
		Once()

	rec := f.do(http.MethodPost, "/sos/alerts", `{
		"message": "Help me",
		"contacts": [{"name": "Asha", "phone": "98765 43210"}, {"name": "Ravi", "phone": "+919876543211"}],
		"replace_active": true,
		"location_budget_seconds": 30,
		"device": {"permission": "granted", "position": {"latitude": 12.97, "longitude": 77.59, "accuracy": 12}}
	}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	env := decode(t, rec)
	assert.True(t, env.Success)

	var summary entity.AlertSummary
	require.NoError(t, json.Unmarshal(env.Data, &summary))
	assert.Equal(t, alertID, summary.AlertID)
	assert.Equal(t, 2, summary.SentCount)
}

func TestAlertHandler_TriggerAlert_RejectsInvalidBody(t *testing.T) {
	tests := []struct {
		name string
		body string
		code int
	}{
		{name: "malformed json", body: `{"message":`, code: http.StatusBadRequest},
		{name: "no contacts", body: `{"message":"help","contacts":[]}`, code: http.StatusBadRequest},
		{name: "contact without phone", body: `{"message":"help","contacts":[{"name":"A"}]}`, code: http.StatusBadRequest},
		{name: "missing message", body: `{"contacts":[{"phone":"+919876543210"}]}`, code: http.StatusBadRequest},
		{name: "bad permission", body: `{"message":"help","contacts":[{"phone":"+919876543210"}],"device":{"permission":"maybe"}}`, code: http.StatusBadRequest},
		{name: "latitude out of range", body: `{"message":"help","contacts":[{"phone":"+919876543210"}],"device":{"position":{"latitude":123,"longitude":0}}}`, code: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAlertHandlerFixture(t)

			rec := f.do(http.MethodPost, "/sos/alerts", tt.body)

			assert.Equal(t, tt.code, rec.Code)
			f.alertUC.AssertNotCalled(t, "Trigger", mock.Anything, mock.Anything)
		})
	}
}

func TestAlertHandler_TriggerAlert_MapsDomainErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantErr  string
	}{
		{name: "active alert", err: errors.WithStack(domainerrors.ErrActiveAlertExists), wantCode: http.StatusConflict, wantErr: "ACTIVE_ALERT_EXISTS"},
		{name: "configuration", err: domainerrors.NewConfigurationError("message must not be blank"), wantCode: http.StatusBadRequest, wantErr: "CONFIGURATION_ERROR"},
		{name: "location", err: domainerrors.NewLocationError(domainerrors.LocationPermissionDenied, nil), wantCode: http.StatusUnprocessableEntity, wantErr: "LOCATION_PERMISSION_DENIED"},
		{name: "store", err: domainerrors.NewStoreError(errors.New("firestore down"), "create alert"), wantCode: http.StatusInternalServerError, wantErr: "STORE_FAILED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAlertHandlerFixture(t)
			f.alertUC.EXPECT().Trigger(mock.Anything, mock.Anything).Return(nil, tt.err).Once()

			rec := f.do(http.MethodPost, "/sos/alerts", `{"message":"help","contacts":[{"phone":"+919876543210"}]}`)

			assert.Equal(t, tt.wantCode, rec.Code)
			env := decode(t, rec)
			assert.False(t, env.Success)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantErr, env.Error.Code)
		})
	}
}

func TestAlertHandler_RequiresBearerToken(t *testing.T) {
	f := newAlertHandlerFixture(t)

	for _, header := range []string{"", "Token abc", "Bearer wrong"} {
		req := httptest.NewRequest(http.MethodGet, "/sos/alerts/current", nil)
		if header != "" {
			req.Header.Set(echo.HeaderAuthorization, header)
		}
		rec := httptest.NewRecorder()
		f.echo.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, header)
	}

	f.alertUC.AssertNotCalled(t, "GetAlert", mock.Anything, mock.Anything)
}

func TestAlertHandler_GetCurrentAlert(t *testing.T) {
	t.Run("returns the alert", func(t *testing.T) {
		f := newAlertHandlerFixture(t)
		alert := &entity.Alert{ID: uuid.Must(uuid.NewV7()), OwnerID: "owner-1", Status: entity.AlertStatusActive}
		f.alertUC.EXPECT().TriggerState("owner-1").Return(entity.TriggerStateIdle, false).Once()
		f.alertUC.EXPECT().GetAlert(mock.Anything, "owner-1").Return(alert, nil).Once()

		rec := f.do(http.MethodGet, "/sos/alerts/current", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var resp CurrentAlertResponse
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &resp))
		assert.Equal(t, alert.ID, resp.Alert.ID)
		assert.Empty(t, resp.TriggerState)
	})

	t.Run("not found", func(t *testing.T) {
		f := newAlertHandlerFixture(t)
		f.alertUC.EXPECT().TriggerState("owner-1").Return(entity.TriggerStateIdle, false).Once()
		f.alertUC.EXPECT().GetAlert(mock.Anything, "owner-1").Return(nil, errors.WithStack(domainerrors.ErrAlertNotFound)).Once()

		rec := f.do(http.MethodGet, "/sos/alerts/current", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("trigger still locating", func(t *testing.T) {
		f := newAlertHandlerFixture(t)
		f.alertUC.EXPECT().TriggerState("owner-1").Return(entity.TriggerStateLocating, true).Once()
		f.alertUC.EXPECT().GetAlert(mock.Anything, "owner-1").Return(nil, errors.WithStack(domainerrors.ErrAlertNotFound)).Once()

		rec := f.do(http.MethodGet, "/sos/alerts/current", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var resp CurrentAlertResponse
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &resp))
		assert.Nil(t, resp.Alert)
		assert.Equal(t, entity.TriggerStateLocating, resp.TriggerState)
	})
}

func TestAlertHandler_CancelAndResolve(t *testing.T) {
	f := newAlertHandlerFixture(t)
	f.alertUC.EXPECT().Cancel(mock.Anything, "owner-1").Return(nil).Once()
	f.alertUC.EXPECT().Resolve(mock.Anything, "owner-1").Return(errors.WithStack(domainerrors.ErrAlertTerminal)).Once()

	rec := f.do(http.MethodPost, "/sos/alerts/current/cancel", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var ack AlertActionResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &ack))
	assert.Equal(t, AlertActionResponse{OwnerID: "owner-1", Action: "cancelled"}, ack)

	rec = f.do(http.MethodPost, "/sos/alerts/current/resolve", "")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "ALERT_TERMINAL", decode(t, rec).Error.Code)
}

func TestAlertHandler_ListDeliveries(t *testing.T) {
	t.Run("returns the tracking log", func(t *testing.T) {
		f := newAlertHandlerFixture(t)
		alertID := uuid.Must(uuid.NewV7())
		logs := []*entity.DeliveryLog{
			{AlertID: alertID, OwnerID: "owner-1", ContactPhone: "+919876543201", Status: "sent", Provider: "sns", MessageID: "sns-1"},
			{AlertID: alertID, OwnerID: "owner-1", ContactPhone: "+919876543202", Status: "failed", Provider: "mock", RetryCount: 1},
		}
		f.alertUC.EXPECT().ListDeliveries(mock.Anything, "owner-1").Return(logs, nil).Once()

		rec := f.do(http.MethodGet, "/sos/alerts/current/deliveries", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var got DeliveriesResponse
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &got))
		require.Len(t, got.Deliveries, 2)
		assert.Equal(t, "sns-1", got.Deliveries[0].MessageID)
		assert.Equal(t, 1, got.Deliveries[1].RetryCount)
	})

	t.Run("no alert", func(t *testing.T) {
		f := newAlertHandlerFixture(t)
		f.alertUC.EXPECT().ListDeliveries(mock.Anything, "owner-1").Return(nil, errors.WithStack(domainerrors.ErrAlertNotFound)).Once()

		rec := f.do(http.MethodGet, "/sos/alerts/current/deliveries", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "ALERT_NOT_FOUND", decode(t, rec).Error.Code)
	})
}

func TestAlertHandler_StreamCurrentAlert(t *testing.T) {
	f := newAlertHandlerFixture(t)
	alert := &entity.Alert{ID: uuid.Must(uuid.NewV7()), OwnerID: "owner-1", Status: entity.AlertStatusActive}
	unsubscribed := make(chan struct{})

	f.alertUC.EXPECT().
		Subscribe(mock.Anything, "owner-1", mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, onChange usecase.AlertChangeFunc) (func(), error) {
			onChange(nil)
			onChange(alert)

			return func() { close(unsubscribed) }, nil
		}).
		Once()

	srv := httptest.NewServer(f.echo)
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/sos/alerts/current/stream", nil)
	require.NoError(t, err)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+testToken)

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get(echo.HeaderContentType))

	reader := bufio.NewReader(resp.Body)
	var data []string
	for len(data) < 2 {
		line, err := reader.ReadString('\n')
		require.NoError(t, err)
		if payload, ok := strings.CutPrefix(line, "data: "); ok {
			data = append(data, strings.TrimSpace(payload))
		}
	}

	assert.Equal(t, "null", data[0])
	var streamed entity.Alert
	require.NoError(t, json.Unmarshal([]byte(data[1]), &streamed))
	assert.Equal(t, alert.ID, streamed.ID)

	cancel()

	select {
	case <-unsubscribed:
	case <-time.After(2 * time.Second):
		t.Fatal("stream did not unsubscribe after the client left")
	}
}
