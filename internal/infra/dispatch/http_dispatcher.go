package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"sos/internal/domain/constants"
	"sos/internal/domain/service"

	"github.com/pkg/errors"
)

const unknownPhone = "Unknown"

// emergencyPayload is the JSON body posted to the dispatch endpoint.
type emergencyPayload struct {
	EmergencyType string          `json:"emergency_type"`
	Location      payloadLocation `json:"location"`
	Caller        payloadCaller   `json:"caller"`
	Timestamp     string          `json:"timestamp"`
	Priority      string          `json:"priority"`
	Source        string          `json:"source"`
	Region        string          `json:"region,omitempty"`
}

type payloadLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address,omitempty"`
}

type payloadCaller struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Language string `json:"language"`
}

// dispatchResponse accepts either "dispatch_id" or "id" as the reference field.
type dispatchResponse struct {
	DispatchID string `json:"dispatch_id"`
	ID         string `json:"id"`
}

// httpDispatcher posts the emergency payload to a dispatch endpoint.
type httpDispatcher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPDispatcher creates a dispatcher posting JSON to endpoint. Request deadlines come from the caller's context.
func NewHTTPDispatcher(endpoint string, logger *slog.Logger) service.DispatchService {
	return &httpDispatcher{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}
}

func (d *httpDispatcher) Name() string {
	return constants.DispatchProviderHTTP
}

func (d *httpDispatcher) Dispatch(ctx context.Context, req *service.DispatchRequest) (string, error) {
	endpoint := d.endpoint
	if req.Endpoint != "" {
		endpoint = req.Endpoint
	}
	if endpoint == "" {
		return "", errors.New("dispatch endpoint is not configured")
	}

	body, err := json.Marshal(newEmergencyPayload(req))
	if err != nil {
		return "", errors.WithStack(err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", errors.WithStack(err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	d.logger.Info("[HTTPDispatch] Notifying emergency services",
		slog.String("endpoint", endpoint),
		slog.String("region", req.Region),
	)

	resp, err := d.httpClient.Do(httpReq)
	if err != nil {
		return "", errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", errors.Errorf("dispatch endpoint returned non-success status: %d", resp.StatusCode)
	}

	var out dispatchResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&out); err != nil {
		return "", errors.Wrap(err, "failed to decode dispatch response")
	}

	if out.DispatchID != "" {
		return out.DispatchID, nil
	}
	if out.ID != "" {
		return out.ID, nil
	}

	return "", errors.New("dispatch response carried no reference")
}

func newEmergencyPayload(req *service.DispatchRequest) *emergencyPayload {
	phone := req.Caller.Phone
	if phone == "" {
		phone = unknownPhone
	}

	return &emergencyPayload{
		EmergencyType: req.EmergencyType,
		Location: payloadLocation{
			Latitude:  req.Position.Latitude,
			Longitude: req.Position.Longitude,
			Address:   req.Position.Address,
		},
		Caller: payloadCaller{
			Name:     req.Caller.DisplayName,
			Phone:    phone,
			Language: req.Language,
		},
		Timestamp: req.Timestamp.UTC().Format(time.RFC3339Nano),
		Priority:  req.Priority,
		Source:    req.Source,
		Region:    req.Region,
	}
}
