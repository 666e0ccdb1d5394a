package health

import "context"

// CachePinger checks span cache store availability.
type CachePinger interface {
	Ping(ctx context.Context) error
}

// RecognizerChecker checks entity recognizer availability.
type RecognizerChecker interface {
	HealthCheck(ctx context.Context) error
}
