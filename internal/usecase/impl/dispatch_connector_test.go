package impl

import (
	"context"
	"testing"

	"sos/config"
	"sos/internal/domain/entity"
	"sos/internal/domain/service"
	mockSvc "sos/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDispatchConnector_Success(t *testing.T) {
	dispatcher := mockSvc.NewMockDispatchService(t)
	clock := newFakeClock()
	connector := NewDispatchConnector(DispatchConnectorParams{
		Config:  newTestConfig(),
		Service: dispatcher,
		Clock:   clock,
		Logger:  newTestLogger(),
	})

	caller := entity.Caller{OwnerID: "owner-1", DisplayName: "Priya"}
	position := entity.Position{Latitude: 12.97, Longitude: 77.59}

	dispatcher.EXPECT().Name().Return("mock").Maybe()
	dispatcher.EXPECT().
		Dispatch(mock.Anything, mock.MatchedBy(func(req *service.DispatchRequest) bool {
			return req.EmergencyType == "medical" &&
				req.Priority == "high" &&
				req.Source == "SHEILD_APP" &&
				req.Caller == caller &&
				req.Position == position &&
				req.Timestamp.Equal(clock.Now()) &&
				req.Region == ""
		})).
		Return("ES-1714557600000", nil).
		Once()

	result := connector.Notify(context.Background(), position, caller)

	assert.True(t, result.Success)
	assert.Equal(t, "ES-1714557600000", result.DispatchID)
	assert.Empty(t, result.Error)
}

func TestDispatchConnector_FailureIsRecorded(t *testing.T) {
	dispatcher := mockSvc.NewMockDispatchService(t)
	connector := NewDispatchConnector(DispatchConnectorParams{
		Config:  newTestConfig(),
		Service: dispatcher,
		Clock:   newFakeClock(),
		Logger:  newTestLogger(),
	})

	dispatcher.EXPECT().Name().Return("http").Maybe()
	dispatcher.EXPECT().Dispatch(mock.Anything, mock.Anything).Return("", errors.New("502 bad gateway")).Once()

	result := connector.Notify(context.Background(), entity.Position{}, entity.Caller{OwnerID: "owner-1"})

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "dispatch via http failed")
	assert.Contains(t, result.Error, "502 bad gateway")
}

func TestDispatchConnector_RoutesToNearestRegion(t *testing.T) {
	cfg := newTestConfig()
	cfg.Dispatch.Regions = []config.DispatchRegion{
		{Name: "mumbai", Latitude: 19.076, Longitude: 72.8777, Endpoint: "https://mumbai.example/dispatch"},
		{Name: "bengaluru", Latitude: 12.9716, Longitude: 77.5946, Endpoint: "https://blr.example/dispatch"},
		{Name: "delhi", Latitude: 28.7041, Longitude: 77.1025, Endpoint: "https://delhi.example/dispatch"},
	}

	dispatcher := mockSvc.NewMockDispatchService(t)
	connector := NewDispatchConnector(DispatchConnectorParams{
		Config:  cfg,
		Service: dispatcher,
		Clock:   newFakeClock(),
		Logger:  newTestLogger(),
	})

	dispatcher.EXPECT().Name().Return("http").Maybe()
	dispatcher.EXPECT().
		Dispatch(mock.Anything, mock.MatchedBy(func(req *service.DispatchRequest) bool {
			return req.Region == "bengaluru" && req.Endpoint == "https://blr.example/dispatch"
		})).
		Return("D-7", nil).
		Once()

	// Mysuru is closest to Bengaluru.
	result := connector.Notify(context.Background(), entity.Position{Latitude: 12.2958, Longitude: 76.6394}, entity.Caller{OwnerID: "owner-1"})

	assert.True(t, result.Success)
	assert.Equal(t, "bengaluru", result.Region)
}

func TestNearestRegion_Empty(t *testing.T) {
	_, ok := nearestRegion(nil, entity.Position{})

	assert.False(t, ok)
}
