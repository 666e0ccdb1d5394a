package openai

import (
	"errors"
	"testing"

	openai "github.com/sashabaranov/go-openai"

	"github.com/syntax922/immich-search/internal/domain"
)

func TestSpansFromContent(t *testing.T) {
	text := "photos in Seattle, WA from Jan 2024"
	content := `{"entities":[
		{"text":"Seattle, WA","type":"LOCATION"},
		{"text":"Jan 2024","type":"DATE"}
	]}`

	spans, err := spansFromContent(text, content)
	if err != nil {
		t.Fatalf("spansFromContent: %v", err)
	}
	if len(spans) != 2 {
		t.Fatalf("got %d spans, want 2", len(spans))
	}

	if spans[0].Kind != domain.SpanLocation || spans[0].Text != "Seattle, WA" {
		t.Errorf("span[0] = %+v", spans[0])
	}
	if spans[1].Kind != domain.SpanDate || spans[1].Text != "Jan 2024" {
		t.Errorf("span[1] = %+v", spans[1])
	}

	for _, s := range spans {
		if text[s.Start:s.End] != s.Text {
			t.Errorf("offsets do not match text: %+v", s)
		}
	}
}

func TestSpansFromContent_CaseInsensitiveLookup(t *testing.T) {
	text := "Trip to PARIS last year"
	content := `{"entities":[{"text":"Paris","type":"GPE"},{"text":"last year","type":"DATE"}]}`

	spans, err := spansFromContent(text, content)
	if err != nil {
		t.Fatalf("spansFromContent: %v", err)
	}
	if len(spans) != 2 {
		t.Fatalf("got %d spans, want 2", len(spans))
	}
	// Span text is taken from the source, not the model's casing.
	if spans[0].Text != "PARIS" {
		t.Errorf("span[0].Text = %q, want source casing", spans[0].Text)
	}
}

func TestSpansFromContent_MultibyteCaseFold(t *testing.T) {
	// U+0130 lowers to a 1-byte 'i', so offsets computed against a lowered
	// copy of the text would drift for every span after it. Matching must
	// run over the original bytes.
	text := "İstanbul photos from June 2024"
	content := `{"entities":[{"text":"istanbul","type":"LOCATION"},{"text":"June 2024","type":"DATE"}]}`

	spans, err := spansFromContent(text, content)
	if err != nil {
		t.Fatalf("spansFromContent: %v", err)
	}
	if len(spans) != 2 {
		t.Fatalf("got %d spans, want 2", len(spans))
	}

	if spans[0].Text != "İstanbul" {
		t.Errorf("span[0].Text = %q, want source casing", spans[0].Text)
	}
	if spans[1].Text != "June 2024" {
		t.Errorf("span[1].Text = %q", spans[1].Text)
	}
	for _, s := range spans {
		if text[s.Start:s.End] != s.Text {
			t.Errorf("offsets do not match text: %+v", s)
		}
	}
}

func TestSpansFromContent_DropsHallucinatedMentions(t *testing.T) {
	text := "beach photos"
	content := `{"entities":[{"text":"Honolulu","type":"LOCATION"}]}`

	spans, err := spansFromContent(text, content)
	if err != nil {
		t.Fatalf("spansFromContent: %v", err)
	}
	if len(spans) != 0 {
		t.Fatalf("got %d spans, want 0", len(spans))
	}
}

func TestSpansFromContent_RepeatedMentions(t *testing.T) {
	text := "Paris and then Paris again"
	content := `{"entities":[{"text":"Paris","type":"LOCATION"},{"text":"Paris","type":"LOCATION"}]}`

	spans, err := spansFromContent(text, content)
	if err != nil {
		t.Fatalf("spansFromContent: %v", err)
	}
	if len(spans) != 2 {
		t.Fatalf("got %d spans, want 2", len(spans))
	}
	if spans[0].Start == spans[1].Start {
		t.Error("expected distinct occurrences, got identical offsets")
	}
	if spans[1].Start <= spans[0].End {
		t.Errorf("second occurrence should follow the first: %+v", spans)
	}
}

func TestSpansFromContent_InvalidJSON(t *testing.T) {
	if _, err := spansFromContent("text", "not json"); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestParseAPIError(t *testing.T) {
	apiErr := &openai.APIError{HTTPStatusCode: 429, Message: "rate limited"}
	err := parseAPIError(apiErr)
	if !errors.Is(err, domain.ErrRecognizerUnavailable) {
		t.Errorf("API error not wrapped: %v", err)
	}

	reqErr := &openai.RequestError{HTTPStatusCode: 503, Body: []byte("upstream down")}
	err = parseAPIError(reqErr)
	if !errors.Is(err, domain.ErrRecognizerUnavailable) {
		t.Errorf("request error not wrapped: %v", err)
	}

	err = parseAPIError(errors.New("dial tcp: connection refused"))
	if !errors.Is(err, domain.ErrRecognizerUnavailable) {
		t.Errorf("generic error not wrapped: %v", err)
	}
}

func TestSpanKind(t *testing.T) {
	cases := map[string]domain.SpanKind{
		"LOCATION": domain.SpanLocation,
		"gpe":      domain.SpanLocation,
		"LOC":      domain.SpanLocation,
		"DATE":     domain.SpanDate,
		"time":     domain.SpanDate,
		"PERSON":   domain.SpanOther,
		"":         domain.SpanOther,
	}
	for in, want := range cases {
		if got := spanKind(in); got != want {
			t.Errorf("spanKind(%q) = %q, want %q", in, got, want)
		}
	}
}
