package interpret

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/syntax922/immich-search/internal/dates"
	"github.com/syntax922/immich-search/internal/domain"
)

// rangePatterns back the full-text fallback used when no DATE span parses
// on its own: "from X to Y" and "between X and Y".
var rangePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bfrom\s+(.+?)\s+(?:to|until|through)\s+(.+?)(?:[,.;!?]|$)`),
	regexp.MustCompile(`(?i)\bbetween\s+(.+?)\s+and\s+(.+?)(?:[,.;!?]|$)`),
}

// resolveDateRange turns DATE spans into one absolute date interval. One
// parsed phrase expands to its granularity ("Jan 2024" covers the month);
// several pick the earliest start and latest end, which also auto-corrects
// ranges stated backwards. Spans that fail to parse are left in the residual.
func (s *Service) resolveDateRange(text string, spans []domain.Span) (*domain.DateRange, []segment) {
	ref := s.now()

	var points []dates.Point
	var consumed []segment
	for _, sp := range spans {
		if sp.Kind != domain.SpanDate {
			continue
		}
		p, ok := dates.Parse(sp.Text, ref)
		if !ok {
			continue
		}
		points = append(points, p)
		consumed = append(consumed, segment{sp.Start, sp.End})
	}

	if len(points) == 0 {
		return s.fallbackRange(text, ref)
	}

	earliest, latest := points[0], points[0]
	for _, p := range points[1:] {
		if p.Time.Before(earliest.Time) {
			earliest = p
		}
		if p.RangeEnd().After(latest.RangeEnd()) {
			latest = p
		}
	}

	r := domain.NewDateRange(earliest.Time, latest.RangeEnd())
	return &r, consumed
}

// fallbackRange scans the full text for an explicit range phrase. A first
// phrase without digits inherits the second phrase's year, so "from Jan to
// July 2024" resolves both ends into 2024.
func (s *Service) fallbackRange(text string, ref time.Time) (*domain.DateRange, []segment) {
	for _, re := range rangePatterns {
		m := re.FindStringSubmatchIndex(text)
		if m == nil {
			continue
		}

		firstText := text[m[2]:m[3]]
		secondText := text[m[4]:m[5]]

		second, secondUsed, ok := parseLoose(secondText, ref)
		if !ok {
			continue
		}

		if !strings.ContainsAny(firstText, "0123456789") {
			firstText = fmt.Sprintf("%s %d", strings.TrimSpace(firstText), second.Time.Year())
		}
		first, _, ok := parseLoose(firstText, ref)
		if !ok {
			continue
		}

		if first.Time.After(second.Time) {
			first, second = second, first
		}
		r := domain.NewDateRange(first.Time, second.RangeEnd())

		// Consume only up to the part of the second phrase that parsed;
		// trailing words are someone else's business.
		return &r, []segment{{m[0], m[4] + len(secondUsed)}}
	}

	return nil, nil
}

// parseLoose tries the phrase as given, then its first two tokens, then its
// first token. Returns the prefix that parsed.
func parseLoose(phrase string, ref time.Time) (dates.Point, string, bool) {
	phrase = strings.TrimSpace(phrase)

	candidates := []string{phrase}
	tokens := strings.Fields(phrase)
	if len(tokens) > 2 {
		candidates = append(candidates, strings.Join(tokens[:2], " "))
	}
	if len(tokens) > 1 {
		candidates = append(candidates, tokens[0])
	}

	for _, c := range candidates {
		if p, ok := dates.Parse(c, ref); ok {
			return p, c, true
		}
	}
	return dates.Point{}, "", false
}
