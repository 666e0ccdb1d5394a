package domain

import "testing"

func TestSanitizeSpans_DropsOutOfBounds(t *testing.T) {
	text := "photos in Seattle"
	spans := []Span{
		{Text: "Seattle", Kind: SpanLocation, Start: 10, End: 17},
		{Text: "nowhere", Kind: SpanLocation, Start: 15, End: 99},
		{Text: "bad", Kind: SpanOther, Start: -1, End: 2},
	}

	got := SanitizeSpans(text, spans)
	if len(got) != 1 {
		t.Fatalf("expected 1 span, got %d", len(got))
	}
	if got[0].Text != "Seattle" {
		t.Errorf("expected Seattle, got %q", got[0].Text)
	}
}

func TestSanitizeSpans_DropsTextMismatch(t *testing.T) {
	text := "photos in Seattle"
	spans := []Span{
		{Text: "Portland", Kind: SpanLocation, Start: 10, End: 17},
	}

	if got := SanitizeSpans(text, spans); len(got) != 0 {
		t.Fatalf("expected mismatched span to be dropped, got %v", got)
	}
}

func TestSanitizeSpans_DropsOverlapsAndSorts(t *testing.T) {
	text := "Jan 2024 to July 2024"
	spans := []Span{
		{Text: "July 2024", Kind: SpanDate, Start: 12, End: 21},
		{Text: "Jan 2024", Kind: SpanDate, Start: 0, End: 8},
		{Text: "Jan", Kind: SpanDate, Start: 0, End: 3},
	}

	got := SanitizeSpans(text, spans)
	if len(got) != 2 {
		t.Fatalf("expected 2 spans, got %d: %v", len(got), got)
	}
	if got[0].Text != "Jan 2024" || got[1].Text != "July 2024" {
		t.Errorf("unexpected spans: %v", got)
	}
}

func TestSanitizeSpans_Empty(t *testing.T) {
	if got := SanitizeSpans("", nil); len(got) != 0 {
		t.Fatalf("expected no spans, got %v", got)
	}
}
