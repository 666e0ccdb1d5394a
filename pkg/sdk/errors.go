package sdk

import "errors"

// Sentinel errors mapped from service response codes.
// Use errors.Is() to check.
var (
	// ErrInvalidRequest indicates the service rejected the request.
	ErrInvalidRequest = errors.New("immich-search: invalid request")
	// ErrRecognizerUnavailable indicates the entity recognizer behind the
	// service is down.
	ErrRecognizerUnavailable = errors.New("immich-search: recognizer unavailable")
	// ErrServiceError indicates an unexpected service-side failure.
	ErrServiceError = errors.New("immich-search: service error")
)
