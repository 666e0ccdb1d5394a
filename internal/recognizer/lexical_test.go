package recognizer

import (
	"context"
	"testing"

	"github.com/syntax922/immich-search/internal/domain"
	"github.com/syntax922/immich-search/internal/gazetteer"
)

func newLexical(t *testing.T) *Lexical {
	t.Helper()
	return NewLexical(gazetteer.New())
}

func recognize(t *testing.T, text string) []domain.Span {
	t.Helper()
	spans, err := newLexical(t).Recognize(context.Background(), text)
	if err != nil {
		t.Fatalf("Recognize(%q): %v", text, err)
	}
	return spans
}

func spanTexts(spans []domain.Span, kind domain.SpanKind) []string {
	var out []string
	for _, sp := range spans {
		if sp.Kind == kind {
			out = append(out, sp.Text)
		}
	}
	return out
}

func TestRecognize_DateSpans(t *testing.T) {
	cases := []struct {
		text string
		want []string
	}{
		{"photos from Jan 2024 to July 2024", []string{"Jan 2024", "July 2024"}},
		{"taken on January 14, 2024", []string{"January 14, 2024"}},
		{"dogs in 2022", []string{"2022"}},
		{"pictures from 2023-06-15", []string{"2023-06-15"}},
		{"shots from last month", []string{"last month"}},
		{"yesterday at the park", []string{"yesterday"}},
		{"no dates here", nil},
	}

	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			got := spanTexts(recognize(t, tc.text), domain.SpanDate)
			assertStrings(t, got, tc.want)
		})
	}
}

func TestRecognize_LongestDateWins(t *testing.T) {
	spans := recognize(t, "taken Jan 14 2024 at noon")
	got := spanTexts(spans, domain.SpanDate)
	assertStrings(t, got, []string{"Jan 14 2024"})
}

func TestRecognize_LocationSpans(t *testing.T) {
	cases := []struct {
		text string
		want []string
	}{
		{"photos in Seattle, WA from last year", []string{"Seattle, WA"}},
		{"photos in Seattle Washington", []string{"Seattle Washington"}},
		{"trips to Paris and Tokyo", []string{"Paris", "Tokyo"}},
		{"walking around New York", []string{"New York"}},
		{"no places here", nil},
	}

	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			got := spanTexts(recognize(t, tc.text), domain.SpanLocation)
			assertStrings(t, got, tc.want)
		})
	}
}

func TestRecognize_LowercaseAbbreviationsIgnored(t *testing.T) {
	// "in", "or", "me" collide with state abbreviations but must not be
	// tagged unless written in uppercase.
	spans := recognize(t, "show me photos in the park or the garden")
	if locs := spanTexts(spans, domain.SpanLocation); locs != nil {
		t.Errorf("expected no location spans, got %v", locs)
	}
}

func TestRecognize_OffsetsMatchText(t *testing.T) {
	text := "archived favorites in Seattle, WA from Jan 2024 to July 2024"
	for _, sp := range recognize(t, text) {
		if text[sp.Start:sp.End] != sp.Text {
			t.Errorf("span %q offsets [%d,%d) cover %q", sp.Text, sp.Start, sp.End, text[sp.Start:sp.End])
		}
	}
}

func TestRecognize_Empty(t *testing.T) {
	if spans := recognize(t, ""); len(spans) != 0 {
		t.Errorf("expected no spans for empty text, got %v", spans)
	}
}

func assertStrings(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("span %d = %q, want %q", i, got[i], want[i])
		}
	}
}
