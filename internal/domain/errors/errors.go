package errors

import (
	"fmt"
	"net/http"

	"sos/internal/domain/entity"
	"sos/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches any BaseError carrying the same business code, so errors.Is works
// for copies produced by WithDetails.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// ErrConfiguration is returned for bad trigger input; no side effect has happened yet.
	ErrConfiguration = NewBaseError(
		http.StatusBadRequest,
		"CONFIGURATION_ERROR",
		"SOS alert is not configured correctly",
		"",
	)

	// Alert store errors
	ErrActiveAlertExists = NewBaseError(
		http.StatusConflict,
		"ACTIVE_ALERT_EXISTS",
		"An SOS alert is already active for this user",
		"",
	)

	ErrAlertNotFound = NewBaseError(
		http.StatusNotFound,
		"ALERT_NOT_FOUND",
		"No SOS alert found",
		"",
	)

	ErrAlertTerminal = NewBaseError(
		http.StatusConflict,
		"ALERT_TERMINAL",
		"The SOS alert has already ended",
		"",
	)

	ErrInvalidAlertStatus = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ALERT_STATUS",
		"Unknown alert status",
		"",
	)

	// Orchestration errors
	ErrTriggerAborted = NewBaseError(
		http.StatusConflict,
		"TRIGGER_ABORTED",
		"The SOS alert was cancelled before it was created",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Authentication required",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// NewConfigurationError reports invalid trigger input.
func NewConfigurationError(details string) error {
	return ErrConfiguration.WithDetails(details)
}

// LocationErrorKind classifies why a position could not be obtained.
type LocationErrorKind string

const (
	LocationPermissionDenied LocationErrorKind = "PERMISSION_DENIED"
	LocationUnavailable      LocationErrorKind = "POSITION_UNAVAILABLE"
	LocationTimeout          LocationErrorKind = "TIMEOUT"
	LocationUnsupported      LocationErrorKind = "UNSUPPORTED"
)

// LocationError is returned when no position could be resolved.
type LocationError struct {
	Kind LocationErrorKind
	err  error
}

// NewLocationError creates a location error of the given kind, optionally wrapping a cause.
func NewLocationError(kind LocationErrorKind, cause error) *LocationError {
	return &LocationError{Kind: kind, err: cause}
}

// Error implements the error interface
func (e *LocationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("location %s: %v", e.Kind, e.err)
	}

	return fmt.Sprintf("location %s", e.Kind)
}

// Unwrap returns the underlying cause
func (e *LocationError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *LocationError) HTTPCode() int {
	return http.StatusUnprocessableEntity
}

// ErrorCode returns the business error code
func (e *LocationError) ErrorCode() string {
	return "LOCATION_" + string(e.Kind)
}

// Message returns the user-friendly error message
func (e *LocationError) Message() string {
	switch e.Kind {
	case LocationPermissionDenied:
		return "Location permission denied. Enable location access and try again"
	case LocationTimeout:
		return "Timed out while getting your location"
	case LocationUnsupported:
		return "Location is not supported on this device"
	default:
		return "Your location is currently unavailable"
	}
}

// Details returns detailed error information
func (e *LocationError) Details() string {
	if e.err != nil {
		return e.err.Error()
	}

	return ""
}

// IsLocationError reports whether err is a LocationError, optionally of one of the given kinds.
func IsLocationError(err error, kinds ...LocationErrorKind) bool {
	var locErr *LocationError
	if !errors.As(err, &locErr) {
		return false
	}
	if len(kinds) == 0 {
		return true
	}
	for _, kind := range kinds {
		if locErr.Kind == kind {
			return true
		}
	}

	return false
}

// NotificationError is returned by SMS providers. It never escapes a trigger call.
type NotificationError struct {
	Class    entity.FailureClass
	Provider string
	Reason   string
	err      error
}

// NewNotificationError creates a classified provider error.
func NewNotificationError(class entity.FailureClass, provider, reason string, cause error) *NotificationError {
	return &NotificationError{Class: class, Provider: provider, Reason: reason, err: cause}
}

// Error implements the error interface
func (e *NotificationError) Error() string {
	return fmt.Sprintf("%s provider %s failure: %s", e.Provider, e.Class, e.Reason)
}

// Unwrap returns the underlying cause
func (e *NotificationError) Unwrap() error {
	return e.err
}

// StoreError wraps a persistence-layer failure, implementing the AppError interface
type StoreError struct {
	err     error
	details string
}

// NewStoreError creates a store-related error
func NewStoreError(err error, details string) *StoreError {
	return &StoreError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *StoreError) Error() string {
	return errors.Wrap(e.err, "alert store failed: "+e.details).Error()
}

// Unwrap returns the underlying cause
func (e *StoreError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *StoreError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *StoreError) ErrorCode() string {
	return "STORE_FAILED"
}

// Message returns the user-friendly error message
func (e *StoreError) Message() string {
	return "Failed to save the SOS alert"
}

// Details returns detailed error information
func (e *StoreError) Details() string {
	return e.details
}

// DispatchError records a failed emergency-services notification. It is reported, never raised.
type DispatchError struct {
	Provider string
	err      error
}

// NewDispatchError creates a dispatch error
func NewDispatchError(provider string, err error) *DispatchError {
	return &DispatchError{Provider: provider, err: err}
}

// Error implements the error interface
func (e *DispatchError) Error() string {
	return fmt.Sprintf("dispatch via %s failed: %v", e.Provider, e.err)
}

// Unwrap returns the underlying cause
func (e *DispatchError) Unwrap() error {
	return e.err
}

// ClassifyNotificationError extracts the failure class of a provider error.
// Errors that were not classified by a provider are treated as retryable.
func ClassifyNotificationError(err error) entity.FailureClass {
	var notifErr *NotificationError
	if errors.As(err, &notifErr) {
		return notifErr.Class
	}

	return entity.FailureRetryable
}
