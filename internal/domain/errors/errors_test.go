package errors

import (
	"context"
	stderrors "errors"
	"net/http"
	"testing"

	"sos/internal/domain/entity"
	"sos/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsStillMatches(t *testing.T) {
	err := ErrActiveAlertExists.WithDetails("owner u-1")

	assert.True(t, errors.Is(err, ErrActiveAlertExists))
	assert.False(t, errors.Is(err, ErrAlertNotFound))
	assert.Equal(t, "An SOS alert is already active for this user: owner u-1", err.Error())

	wrapped := errors.Wrap(err, "create alert")
	assert.True(t, errors.Is(wrapped, ErrActiveAlertExists))
}

func TestLocationError(t *testing.T) {
	err := errors.Wrap(NewLocationError(LocationPermissionDenied, nil), "resolve")

	assert.True(t, IsLocationError(err))
	assert.True(t, IsLocationError(err, LocationTimeout, LocationPermissionDenied))
	assert.False(t, IsLocationError(err, LocationTimeout))
	assert.False(t, IsLocationError(stderrors.New("boom")))

	var appErr AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.HTTPCode())
	assert.Equal(t, "LOCATION_PERMISSION_DENIED", appErr.ErrorCode())
}

func TestLocationError_UnwrapsCause(t *testing.T) {
	err := NewLocationError(LocationTimeout, context.DeadlineExceeded)

	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Contains(t, err.Error(), "TIMEOUT")
}

func TestStoreError(t *testing.T) {
	cause := stderrors.New("connection reset")
	err := NewStoreError(cause, "create alert")

	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "connection reset")
	assert.Equal(t, "STORE_FAILED", err.ErrorCode())
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
}

func TestClassifyNotificationError(t *testing.T) {
	quota := NewNotificationError(entity.FailureQuotaExceeded, "sns", "no quota left", nil)

	assert.Equal(t, entity.FailureQuotaExceeded, ClassifyNotificationError(errors.Wrap(quota, "send")))
	assert.Equal(t, entity.FailureRetryable, ClassifyNotificationError(stderrors.New("socket closed")))
	assert.Equal(t, "sns provider quota_exceeded failure: no quota left", quota.Error())
}
