// Package recognizer provides a deterministic lexical entity recognizer:
// regex passes for temporal expressions plus gazetteer n-gram matching for
// place names. It backs local development and testing, and serves as the
// default provider when no model API is configured. Output follows the same
// span contract as the model-backed recognizer, so the interpreter cannot
// tell them apart.
package recognizer

import (
	"context"
	"regexp"
	"strings"
	"unicode"

	"github.com/syntax922/immich-search/internal/domain"
	"github.com/syntax922/immich-search/internal/gazetteer"
)

const monthPattern = `(?:jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|` +
	`aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)`

// Date patterns, most specific first. Overlaps are resolved toward the
// longer match, so "jan 14 2024" is one span rather than "jan 14" + "2024".
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b` + monthPattern + `\s+\d{1,2}(?:st|nd|rd|th)?,?\s+\d{4}\b`),
	regexp.MustCompile(`(?i)\b\d{1,2}(?:st|nd|rd|th)?\s+` + monthPattern + `(?:\s+\d{4})?\b`),
	regexp.MustCompile(`(?i)\b` + monthPattern + `\s+\d{4}\b`),
	regexp.MustCompile(`(?i)\b` + monthPattern + `\s+\d{1,2}(?:st|nd|rd|th)?\b`),
	regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`),
	regexp.MustCompile(`\b(?:19|20)\d{2}\b`),
	regexp.MustCompile(`(?i)\b(?:today|yesterday|(?:last|this)\s+(?:week|month|year))\b`),
}

// Lexical is the pattern-based recognizer.
type Lexical struct {
	gaz *gazetteer.Gazetteer
}

// NewLexical creates a lexical recognizer over the given gazetteer.
func NewLexical(gaz *gazetteer.Gazetteer) *Lexical {
	return &Lexical{gaz: gaz}
}

// Recognize segments the query into date and location spans. It never
// fails: recognition is a pure scan over the text and the static tables.
func (l *Lexical) Recognize(_ context.Context, text string) ([]domain.Span, error) {
	spans := dateSpans(text)
	spans = append(spans, l.locationSpans(text)...)
	return domain.SanitizeSpans(text, spans), nil
}

func dateSpans(text string) []domain.Span {
	var spans []domain.Span
	for _, re := range datePatterns {
		for _, m := range re.FindAllStringIndex(text, -1) {
			spans = append(spans, domain.Span{
				Text:  text[m[0]:m[1]],
				Kind:  domain.SpanDate,
				Start: m[0],
				End:   m[1],
			})
		}
	}
	return spans
}

type token struct {
	text  string
	start int
	end   int
}

// locationSpans finds runs of tokens naming known places and merges
// adjacent runs separated only by a comma or whitespace, so "Seattle, WA"
// becomes a single span.
func (l *Lexical) locationSpans(text string) []domain.Span {
	tokens := tokenize(text)

	type group struct{ first, last int } // token indexes, inclusive
	var groups []group

	for i := 0; i < len(tokens); {
		n := l.matchPlace(tokens, i)
		if n == 0 {
			i++
			continue
		}
		groups = append(groups, group{first: i, last: i + n - 1})
		i += n
	}

	// Merge hierarchical neighbors: "Seattle, WA", "Seattle Washington".
	var merged []group
	for _, g := range groups {
		if len(merged) > 0 {
			prev := &merged[len(merged)-1]
			sep := text[tokens[prev.last].end:tokens[g.first].start]
			if s := strings.TrimSpace(sep); s == "" || s == "," {
				prev.last = g.last
				continue
			}
		}
		merged = append(merged, g)
	}

	spans := make([]domain.Span, 0, len(merged))
	for _, g := range merged {
		start, end := tokens[g.first].start, tokens[g.last].end
		spans = append(spans, domain.Span{
			Text:  text[start:end],
			Kind:  domain.SpanLocation,
			Start: start,
			End:   end,
		})
	}
	return spans
}

// matchPlace returns how many tokens starting at i form a known place name,
// preferring the longest n-gram (up to 3 tokens).
func (l *Lexical) matchPlace(tokens []token, i int) int {
	for n := 3; n >= 1; n-- {
		if i+n > len(tokens) {
			continue
		}
		parts := make([]string, n)
		for j := range parts {
			parts[j] = tokens[i+j].text
		}
		cand := strings.Join(parts, " ")
		if n == 1 && !plausibleSingle(tokens[i].text) {
			continue
		}
		if l.gaz.KnownPlace(cand) {
			return n
		}
	}
	return 0
}

// plausibleSingle guards against two-letter state abbreviations swallowing
// common words: "in" is Indiana and "or" is Oregon only when written in
// uppercase ("IN", "OR").
func plausibleSingle(tok string) bool {
	if len(tok) > 2 {
		return true
	}
	return tok == strings.ToUpper(tok)
}

// tokenize splits the text into letter runs with byte offsets.
func tokenize(text string) []token {
	var tokens []token
	start := -1
	for i, r := range text {
		if unicode.IsLetter(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			tokens = append(tokens, token{text: text[start:i], start: start, end: i})
			start = -1
		}
	}
	if start >= 0 {
		tokens = append(tokens, token{text: text[start:], start: start, end: len(text)})
	}
	return tokens
}
