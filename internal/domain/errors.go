package domain

import "errors"

var (
	// ErrRecognizerUnavailable signals an entity recognizer failure.
	// This is the one fatal pipeline condition: without span candidates the
	// interpreter would produce a confidently wrong result, so the failure
	// is surfaced instead of degraded.
	ErrRecognizerUnavailable = errors.New("recognizer unavailable")
)

// KeyPrefix namespaces all keys this service writes to its cache store.
const KeyPrefix = "immich_search:"
