// Package spancache caches recognizer output keyed by query text, so
// repeated queries skip the recognizer entirely.
package spancache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/syntax922/immich-search/internal/db"
	"github.com/syntax922/immich-search/internal/domain"
	"github.com/syntax922/immich-search/internal/metrics"
)

const keyPrefix = domain.KeyPrefix + "span_cache:"

// Recognizer is the upstream recognizer being decorated.
type Recognizer interface {
	Recognize(ctx context.Context, text string) ([]domain.Span, error)
}

// Store is the subset of the KV store the cache needs.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Cache decorates a Recognizer with read-through caching. Cache failures
// are logged and treated as misses; they never fail a request.
type Cache struct {
	next   Recognizer
	store  Store
	ttl    time.Duration
	logger *zap.Logger
}

// New creates a caching recognizer around next.
func New(next Recognizer, store Store, ttl time.Duration, logger *zap.Logger) *Cache {
	return &Cache{
		next:   next,
		store:  store,
		ttl:    ttl,
		logger: logger,
	}
}

// Recognize returns cached spans for text when present, otherwise calls
// the upstream recognizer and stores its result.
func (c *Cache) Recognize(ctx context.Context, text string) ([]domain.Span, error) {
	key := cacheKey(text)

	raw, err := c.store.Get(ctx, key)
	switch {
	case err == nil:
		var spans []domain.Span
		if jsonErr := json.Unmarshal(raw, &spans); jsonErr == nil {
			metrics.SpanCacheTotal.WithLabelValues("hit").Inc()
			return spans, nil
		}
		c.logger.Warn("span cache entry corrupt, refetching", zap.String("key", key))
	case errors.Is(err, db.ErrKeyNotFound):
		// miss
	default:
		c.logger.Warn("span cache read failed", zap.Error(err))
	}

	metrics.SpanCacheTotal.WithLabelValues("miss").Inc()

	spans, err := c.next.Recognize(ctx, text)
	if err != nil {
		return nil, err
	}

	encoded, err := json.Marshal(spans)
	if err != nil {
		return spans, nil
	}
	if err := c.store.SetWithTTL(ctx, key, encoded, c.ttl); err != nil {
		c.logger.Warn("span cache write failed", zap.Error(err))
	}

	return spans, nil
}

func cacheKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return fmt.Sprintf("%s%s", keyPrefix, hex.EncodeToString(sum[:]))
}
