package spancache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/syntax922/immich-search/internal/db"
	"github.com/syntax922/immich-search/internal/domain"
)

type mockRecognizer struct {
	calls int
	spans []domain.Span
	err   error
}

func (m *mockRecognizer) Recognize(_ context.Context, _ string) ([]domain.Span, error) {
	m.calls++
	return m.spans, m.err
}

type mockStore struct {
	data     map[string][]byte
	getErr   error
	setErr   error
	setCalls int
}

func newMockStore() *mockStore {
	return &mockStore{data: make(map[string][]byte)}
}

func (m *mockStore) Get(_ context.Context, key string) ([]byte, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	v, ok := m.data[key]
	if !ok {
		return nil, db.ErrKeyNotFound
	}
	return v, nil
}

func (m *mockStore) SetWithTTL(_ context.Context, key string, value []byte, _ time.Duration) error {
	m.setCalls++
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = value
	return nil
}

func TestRecognize_MissThenHit(t *testing.T) {
	rec := &mockRecognizer{spans: []domain.Span{
		{Text: "Seattle", Kind: domain.SpanLocation, Start: 0, End: 7},
	}}
	store := newMockStore()
	cache := New(rec, store, time.Hour, zap.NewNop())

	spans, err := cache.Recognize(context.Background(), "Seattle photos")
	if err != nil {
		t.Fatalf("first Recognize: %v", err)
	}
	if len(spans) != 1 || rec.calls != 1 {
		t.Fatalf("miss path: spans=%d calls=%d", len(spans), rec.calls)
	}
	if store.setCalls != 1 {
		t.Errorf("expected one cache write, got %d", store.setCalls)
	}

	spans, err = cache.Recognize(context.Background(), "Seattle photos")
	if err != nil {
		t.Fatalf("second Recognize: %v", err)
	}
	if rec.calls != 1 {
		t.Errorf("upstream called on hit: calls=%d", rec.calls)
	}
	if len(spans) != 1 || spans[0].Text != "Seattle" {
		t.Errorf("hit returned wrong spans: %+v", spans)
	}
}

func TestRecognize_DistinctKeysPerQuery(t *testing.T) {
	rec := &mockRecognizer{}
	store := newMockStore()
	cache := New(rec, store, time.Hour, zap.NewNop())

	if _, err := cache.Recognize(context.Background(), "query one"); err != nil {
		t.Fatal(err)
	}
	if _, err := cache.Recognize(context.Background(), "query two"); err != nil {
		t.Fatal(err)
	}
	if len(store.data) != 2 {
		t.Errorf("expected 2 cache entries, got %d", len(store.data))
	}
	for key := range store.data {
		if len(key) != len(keyPrefix)+64 {
			t.Errorf("unexpected key shape: %q", key)
		}
	}
}

func TestRecognize_StoreErrorsAreMisses(t *testing.T) {
	rec := &mockRecognizer{spans: []domain.Span{{Text: "Tokyo", Kind: domain.SpanLocation, Start: 0, End: 5}}}
	store := newMockStore()
	store.getErr = errors.New("connection reset")
	store.setErr = errors.New("connection reset")
	cache := New(rec, store, time.Hour, zap.NewNop())

	spans, err := cache.Recognize(context.Background(), "Tokyo")
	if err != nil {
		t.Fatalf("Recognize should not surface store errors: %v", err)
	}
	if len(spans) != 1 || rec.calls != 1 {
		t.Errorf("expected upstream fallback: spans=%d calls=%d", len(spans), rec.calls)
	}
}

func TestRecognize_CorruptEntryRefetches(t *testing.T) {
	rec := &mockRecognizer{spans: []domain.Span{{Text: "Paris", Kind: domain.SpanLocation, Start: 0, End: 5}}}
	store := newMockStore()
	store.data[cacheKey("Paris")] = []byte("{not json")
	cache := New(rec, store, time.Hour, zap.NewNop())

	spans, err := cache.Recognize(context.Background(), "Paris")
	if err != nil {
		t.Fatalf("Recognize: %v", err)
	}
	if rec.calls != 1 {
		t.Errorf("expected refetch on corrupt entry, calls=%d", rec.calls)
	}
	if len(spans) != 1 {
		t.Errorf("got %d spans, want 1", len(spans))
	}

	// The corrupt entry was overwritten with valid JSON.
	var stored []domain.Span
	if err := json.Unmarshal(store.data[cacheKey("Paris")], &stored); err != nil {
		t.Errorf("cache entry not repaired: %v", err)
	}
}

func TestRecognize_UpstreamErrorNotCached(t *testing.T) {
	rec := &mockRecognizer{err: domain.ErrRecognizerUnavailable}
	store := newMockStore()
	cache := New(rec, store, time.Hour, zap.NewNop())

	if _, err := cache.Recognize(context.Background(), "anything"); !errors.Is(err, domain.ErrRecognizerUnavailable) {
		t.Fatalf("expected upstream error, got %v", err)
	}
	if len(store.data) != 0 {
		t.Errorf("errors must not be cached, got %d entries", len(store.data))
	}
}
