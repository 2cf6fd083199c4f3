package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "sos/internal/delivery/context"
	"sos/internal/delivery/http/middleware"
	"sos/internal/delivery/http/response"
	"sos/internal/domain/entity"
	domainerrors "sos/internal/domain/errors"
	"sos/internal/domain/service"
	"sos/internal/infra/device"
	"sos/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	streamHeartbeat = 15 * time.Second
	streamBuffer    = 16
)

// AlertHandlerParams holds dependencies for AlertHandler, injected by Fx.
type AlertHandlerParams struct {
	fx.In

	AlertUC usecase.AlertUsecase
	Logger  *slog.Logger
}

// AlertHandler serves the SOS alert endpoints for the signed-in caller.
type AlertHandler struct {
	alertUC   usecase.AlertUsecase
	logger    *slog.Logger
	heartbeat time.Duration
}

// NewAlertHandler is the constructor for AlertHandler
func NewAlertHandler(params AlertHandlerParams) *AlertHandler {
	return &AlertHandler{
		alertUC:   params.AlertUC,
		logger:    params.Logger,
		heartbeat: streamHeartbeat,
	}
}

// TriggerAlertRequest represents the request body for raising an SOS alert
type TriggerAlertRequest struct {
	Message               string               `json:"message" validate:"required,max=1000"`
	Contacts              []ContactRequest     `json:"contacts" validate:"required,min=1,max=20,dive"`
	ReplaceActive         bool                 `json:"replace_active"`
	LocationBudgetSeconds int                  `json:"location_budget_seconds" validate:"omitempty,min=1,max=300"`
	Device                *DeviceReportRequest `json:"device"`
}

// ContactRequest is one emergency contact in a trigger request
type ContactRequest struct {
	Name  string `json:"name" validate:"max=100"`
	Phone string `json:"phone" validate:"required,max=32"`
}

// DeviceReportRequest is what the client app knows about its location.
// Position and Error describe a single attempt; Fixes replays several in order.
type DeviceReportRequest struct {
	Permission string           `json:"permission" validate:"omitempty,oneof=granted prompt denied unknown"`
	Position   *PositionRequest `json:"position"`
	Error      string           `json:"error" validate:"max=64"`
	Fixes      []FixRequest     `json:"fixes" validate:"max=10,dive"`
}

// FixRequest is one location attempt reported by the device
type FixRequest struct {
	Position *PositionRequest `json:"position"`
	Error    string           `json:"error" validate:"max=64"`
}

// PositionRequest is a position reported by the device
type PositionRequest struct {
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
	Accuracy  float64 `json:"accuracy" validate:"gte=0"`
	Address   string  `json:"address" validate:"max=500"`
}

// CurrentAlertResponse is the caller's alert together with any in-flight trigger
type CurrentAlertResponse struct {
	Alert        *entity.Alert       `json:"alert"`
	TriggerState entity.TriggerState `json:"trigger_state,omitempty"`
}

// DeliveriesResponse lists the SMS tracking log of the current alert.
type DeliveriesResponse struct {
	Deliveries []*entity.DeliveryLog `json:"deliveries"`
}

// AlertActionResponse acknowledges a cancel or resolve request
type AlertActionResponse struct {
	OwnerID string `json:"owner_id"`
	Action  string `json:"action"`
}

// TriggerAlert runs an SOS trigger to completion and returns its summary.
func (h *AlertHandler) TriggerAlert(c echo.Context) error {
	caller, err := h.getCaller(c)
	if err != nil {
		return err
	}

	var req TriggerAlertRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid SOS trigger input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "SOS trigger input failed validation", err.Error())
	}

	input := &usecase.TriggerInput{
		Caller:         *caller,
		Message:        req.Message,
		Contacts:       make([]entity.ContactInfo, len(req.Contacts)),
		ReplaceActive:  req.ReplaceActive,
		LocationBudget: time.Duration(req.LocationBudgetSeconds) * time.Second,
	}
	for idx, contact := range req.Contacts {
		input.Contacts[idx] = entity.ContactInfo{Name: contact.Name, Phone: contact.Phone}
	}

	// A dropped connection must not abort an SOS already in progress.
	ctx := context.WithoutCancel(c.Request().Context())
	if req.Device != nil {
		ctx = device.WithReport(ctx, req.Device.toReport())
	}

	summary, err := h.alertUC.Trigger(ctx, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, summary)
}

// GetCurrentAlert returns the caller's most recent alert.
func (h *AlertHandler) GetCurrentAlert(c echo.Context) error {
	caller, err := h.getCaller(c)
	if err != nil {
		return err
	}

	resp := CurrentAlertResponse{}
	if state, inFlight := h.alertUC.TriggerState(caller.OwnerID); inFlight {
		resp.TriggerState = state
	}

	alert, err := h.alertUC.GetAlert(c.Request().Context(), caller.OwnerID)
	if err != nil {
		if !errors.Is(err, domainerrors.ErrAlertNotFound) || resp.TriggerState == "" {
			return response.HandleAppError(c, err)
		}
	}
	resp.Alert = alert

	return response.Success(c, http.StatusOK, resp)
}

// ListDeliveries returns one row per SMS send outcome of the caller's current alert.
func (h *AlertHandler) ListDeliveries(c echo.Context) error {
	caller, err := h.getCaller(c)
	if err != nil {
		return err
	}

	deliveries, err := h.alertUC.ListDeliveries(c.Request().Context(), caller.OwnerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, DeliveriesResponse{Deliveries: deliveries})
}

// StreamCurrentAlert streams the caller's alert as Server-Sent Events:
// the current snapshot first, then one event per change.
func (h *AlertHandler) StreamCurrentAlert(c echo.Context) error {
	caller, err := h.getCaller(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	updates := make(chan *entity.Alert, streamBuffer)
	unsubscribe, err := h.alertUC.Subscribe(ctx, caller.OwnerID, func(alert *entity.Alert) {
		select {
		case updates <- alert:
		case <-ctx.Done():
		}
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer unsubscribe()

	res := c.Response()
	if err := http.NewResponseController(res).SetWriteDeadline(time.Time{}); err != nil {
		logger.Debug("Cannot lift write deadline for event stream", slog.Any("error", err))
	}

	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set(echo.HeaderCacheControl, "no-cache")
	res.Header().Set(echo.HeaderConnection, "keep-alive")
	res.Header().Set("X-Accel-Buffering", "no")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	heartbeat := time.NewTicker(h.heartbeat)
	defer heartbeat.Stop()

	for seq := 1; ; {
		select {
		case <-ctx.Done():
			return nil
		case <-heartbeat.C:
			if _, err := fmt.Fprint(res, ": ping\n\n"); err != nil {
				return nil
			}
			res.Flush()
		case alert := <-updates:
			if err := writeAlertEvent(c, seq, alert); err != nil {
				logger.Debug("Event stream closed", slog.Any("error", err))

				return nil
			}
			res.Flush()
			seq++
		}
	}
}

// CancelAlert cancels the caller's alert, or aborts a trigger that has not created it yet.
func (h *AlertHandler) CancelAlert(c echo.Context) error {
	caller, err := h.getCaller(c)
	if err != nil {
		return err
	}

	if err := h.alertUC.Cancel(c.Request().Context(), caller.OwnerID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, AlertActionResponse{OwnerID: caller.OwnerID, Action: "cancelled"})
}

// ResolveAlert marks the caller's alert resolved.
func (h *AlertHandler) ResolveAlert(c echo.Context) error {
	caller, err := h.getCaller(c)
	if err != nil {
		return err
	}

	if err := h.alertUC.Resolve(c.Request().Context(), caller.OwnerID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, AlertActionResponse{OwnerID: caller.OwnerID, Action: "resolved"})
}

// getCaller extracts the authenticated caller from the context
func (h *AlertHandler) getCaller(c echo.Context) (*entity.Caller, error) {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return nil, response.Unauthorized(c, "INVALID_TOKEN", "Caller missing from token")
	}

	return caller, nil
}

func writeAlertEvent(c echo.Context, seq int, alert *entity.Alert) error {
	if _, err := fmt.Fprintf(c.Response(), "id: %d\nevent: alert\ndata: ", seq); err != nil {
		return errors.WithStack(err)
	}
	// The serializer terminates the data line; the blank line ends the event.
	if err := c.Echo().JSONSerializer.Serialize(c, alert, ""); err != nil {
		return errors.WithStack(err)
	}
	_, err := fmt.Fprint(c.Response(), "\n")

	return errors.WithStack(err)
}

func (r *DeviceReportRequest) toReport() *device.Report {
	report := &device.Report{Permission: service.PermissionState(r.Permission)}
	if r.Position != nil || r.Error != "" {
		report.Fixes = append(report.Fixes, device.Fix{Position: r.Position.toPosition(), Error: r.Error})
	}
	for _, fix := range r.Fixes {
		report.Fixes = append(report.Fixes, device.Fix{Position: fix.Position.toPosition(), Error: fix.Error})
	}

	return report
}

func (p *PositionRequest) toPosition() *entity.Position {
	if p == nil {
		return nil
	}

	return &entity.Position{
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
		Accuracy:  p.Accuracy,
		Address:   p.Address,
	}
}
