// Package interpret turns raw photo-search text into a structured FilterSet.
// It orchestrates entity recognition, date range resolution, gazetteer
// lookup, and flag/camera detection, then applies the conflict-resolution
// rules that decide what remains as residual free text.
package interpret

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/syntax922/immich-search/internal/detect"
	"github.com/syntax922/immich-search/internal/domain"
	"github.com/syntax922/immich-search/internal/gazetteer"
	"github.com/syntax922/immich-search/internal/logger"
	"github.com/syntax922/immich-search/internal/metrics"
)

// Service is the query interpreter. Stateless apart from the read-only
// reference tables, so one instance serves all requests concurrently.
type Service struct {
	recognizer Recognizer
	gaz        *gazetteer.Gazetteer
	detector   *detect.Detector
	now        func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the reference clock used to resolve relative date
// phrases. Tests pin it for determinism.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// New creates a query interpreter.
func New(rec Recognizer, gaz *gazetteer.Gazetteer, det *detect.Detector, opts ...Option) *Service {
	s := &Service{
		recognizer: rec,
		gaz:        gaz,
		detector:   det,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// segment is a half-open [start, end) byte range of the query consumed by a
// successful extraction.
type segment struct {
	start int
	end   int
}

// Interpret parses text into a FilterSet. Extraction failures degrade to
// absent fields; the only error surfaced is recognizer unavailability, which
// wraps domain.ErrRecognizerUnavailable.
func (s *Service) Interpret(ctx context.Context, text string) (domain.FilterSet, error) {
	fs := domain.FilterSet{Raw: text}

	if strings.TrimSpace(text) == "" {
		fs.Residual = text
		return fs, nil
	}

	spans, err := s.recognizer.Recognize(ctx, text)
	if err != nil {
		return domain.FilterSet{}, fmt.Errorf("recognize query: %w", err)
	}
	spans = domain.SanitizeSpans(text, spans)

	var consumed []segment

	if dr, segs := s.resolveDateRange(text, spans); dr != nil {
		fs.DateRange = dr
		consumed = append(consumed, segs...)
		metrics.FiltersExtractedTotal.WithLabelValues("date_range").Inc()
	}

	loc, locSegs := s.resolveLocation(text, spans)
	consumed = append(consumed, locSegs...)
	if loc != nil {
		fs.Location = loc
		metrics.FiltersExtractedTotal.WithLabelValues("location").Inc()
	}

	det := s.detector.Detect(text)
	fs.Flags = det.Flags
	if det.Flags.Any() {
		metrics.FiltersExtractedTotal.WithLabelValues("flags").Inc()
	}
	if !det.Camera.IsZero() {
		camera := det.Camera
		fs.Camera = &camera
		metrics.FiltersExtractedTotal.WithLabelValues("camera").Inc()
	}

	// A query that matched nothing keeps its full text as the search term;
	// otherwise consumed date/location segments are cut out. Flag and camera
	// matches stay in the residual on purpose.
	if fs.HasStructured() {
		fs.Residual = residualText(text, consumed)
	} else {
		fs.Residual = text
	}

	logger.FromContext(ctx).Debug("query interpreted",
		zap.Int("spans", len(spans)),
		zap.Bool("date_range", fs.DateRange != nil),
		zap.Bool("location", fs.Location != nil),
		zap.Bool("camera", fs.Camera != nil),
		zap.String("residual", fs.Residual),
	)

	return fs, nil
}
