package domain

import "sort"

// SpanKind classifies a recognized span.
type SpanKind string

// Span kinds produced by entity recognizers.
const (
	SpanLocation SpanKind = "location"
	SpanDate     SpanKind = "date"
	SpanOther    SpanKind = "other"
)

// Span is a candidate entity produced by an entity recognizer:
// a substring of the query with byte offsets [Start, End).
type Span struct {
	Text  string   `json:"text"`
	Kind  SpanKind `json:"kind"`
	Start int      `json:"start"`
	End   int      `json:"end"`
}

// Valid reports whether the span's offsets are well-formed for a query of
// the given byte length.
func (s Span) Valid(textLen int) bool {
	return s.Start >= 0 && s.Start < s.End && s.End <= textLen
}

// SanitizeSpans drops malformed recognizer output and returns the surviving
// spans ordered by start offset. A span is dropped when its offsets are out
// of bounds, its text does not match the query at those offsets, or it
// overlaps an earlier (already accepted) span. Recognizers are probabilistic
// services and their output is never trusted as-is.
func SanitizeSpans(text string, spans []Span) []Span {
	sorted := make([]Span, 0, len(spans))
	for _, sp := range spans {
		if !sp.Valid(len(text)) {
			continue
		}
		if text[sp.Start:sp.End] != sp.Text {
			continue
		}
		sorted = append(sorted, sp)
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		// Longer span first so the shorter overlap gets dropped below.
		return sorted[i].End > sorted[j].End
	})

	out := sorted[:0]
	lastEnd := 0
	for _, sp := range sorted {
		if sp.Start < lastEnd {
			continue
		}
		out = append(out, sp)
		lastEnd = sp.End
	}
	return out
}
