package interpret

import (
	"strings"
	"unicode"

	"github.com/syntax922/immich-search/internal/domain"
	"github.com/syntax922/immich-search/internal/gazetteer"
)

// defaultCountry is assumed when a bare phrase names a US state without a
// country ("Seattle Washington"). The comma form ("Seattle, WA") states the
// hierarchy explicitly and gets no such default.
const defaultCountry = "United States"

// resolveLocation merges LOCATION spans into at most one Location. Spans are
// assumed to describe a single place hierarchically; when they do not, the
// first span wins per field. This is a documented simplification, not full
// geocoding.
func (s *Service) resolveLocation(text string, spans []domain.Span) (*domain.Location, []segment) {
	var loc domain.Location
	var consumed []segment

	for _, sp := range spans {
		if sp.Kind != domain.SpanLocation {
			continue
		}
		consumed = append(consumed, segment{sp.Start, sp.End})

		part := s.resolvePlace(sp.Text, text)
		if loc.City == "" {
			loc.City = part.City
		}
		if loc.State == "" {
			loc.State = part.State
		}
		if loc.Country == "" {
			loc.Country = part.Country
		}
	}

	if loc.IsZero() {
		return nil, consumed
	}
	return &loc, consumed
}

// resolvePlace resolves one span text to a partial Location. The query text
// is carried along for co-occurrence disambiguation of ambiguous city names.
func (s *Service) resolvePlace(phrase, query string) domain.Location {
	if strings.Contains(phrase, ",") {
		return s.resolveCommaPlace(phrase, query)
	}

	norm := gazetteer.Normalize(phrase)
	if norm == "" {
		return domain.Location{}
	}

	// Whole phrase as a city first, so "New York" resolves to the city even
	// though it also names a state.
	if entries := s.gaz.Cities(norm); len(entries) > 0 {
		e := pickEntry(entries, query, "", "")
		return domain.Location{City: e.City, State: e.State}
	}
	if st, ok := s.gaz.State(norm); ok {
		return domain.Location{State: st, Country: defaultCountry}
	}
	if c, ok := s.gaz.Country(norm); ok {
		return domain.Location{Country: c}
	}

	// Trailing state/country token: "seattle washington", "paris france".
	tokens := strings.Fields(norm)
	for tailLen := 2; tailLen >= 1; tailLen-- {
		if tailLen >= len(tokens) {
			continue
		}
		head := strings.Join(tokens[:len(tokens)-tailLen], " ")
		tail := strings.Join(tokens[len(tokens)-tailLen:], " ")

		if st, ok := s.gaz.State(tail); ok {
			city, _ := s.resolveCity(head, query, st, "")
			return domain.Location{City: city, State: st, Country: defaultCountry}
		}
		if c, ok := s.gaz.Country(tail); ok {
			city, state := s.resolveCity(head, query, "", c)
			return domain.Location{City: city, State: state, Country: c}
		}
	}

	// Unknown place names pass through verbatim: the recognizer saw a
	// location here and the gazetteer is not exhaustive.
	return domain.Location{City: titleCase(norm)}
}

// resolveCommaPlace handles "City, State" / "City, Country" phrases. Parts
// naming a state or country classify as such; the first remaining part is
// the city. No country default here.
func (s *Service) resolveCommaPlace(phrase, query string) domain.Location {
	var loc domain.Location
	var cityPart string

	for _, part := range strings.Split(phrase, ",") {
		norm := gazetteer.Normalize(part)
		if norm == "" {
			continue
		}
		if st, ok := s.gaz.State(norm); ok && loc.State == "" {
			loc.State = st
			continue
		}
		if c, ok := s.gaz.Country(norm); ok && loc.Country == "" {
			loc.Country = c
			continue
		}
		if cityPart == "" {
			cityPart = norm
		}
	}

	if cityPart != "" {
		city, state := s.resolveCity(cityPart, query, loc.State, loc.Country)
		loc.City = city
		if loc.State == "" {
			loc.State = state
		}
	}

	return loc
}

// resolveCity canonicalizes a city name via the gazetteer, falling back to
// the verbatim name title-cased. The returned state is the chosen entry's,
// empty when the entry contradicts an explicitly given state or country.
func (s *Service) resolveCity(name, query, wantState, wantCountry string) (string, string) {
	entries := s.gaz.Cities(name)
	if len(entries) == 0 {
		return titleCase(name), ""
	}

	e := pickEntry(entries, query, wantState, wantCountry)
	state := e.State
	if wantState != "" && e.State != wantState {
		state = ""
	}
	if wantCountry != "" && e.Country != wantCountry {
		state = ""
	}
	return e.City, state
}

// pickEntry disambiguates same-named cities: an explicit state or country
// wins, then a state/country co-occurring anywhere in the query, then the
// highest-population candidate (entries arrive population-sorted).
func pickEntry(entries []gazetteer.Entry, query, wantState, wantCountry string) gazetteer.Entry {
	if wantState != "" {
		for _, e := range entries {
			if e.State == wantState {
				return e
			}
		}
	}
	if wantCountry != "" {
		for _, e := range entries {
			if e.Country == wantCountry {
				return e
			}
		}
	}

	lowered := strings.ToLower(query)
	for _, e := range entries {
		if e.State != "" && containsPhrase(lowered, strings.ToLower(e.State)) {
			return e
		}
	}
	for _, e := range entries {
		if e.Country != "" && containsPhrase(lowered, strings.ToLower(e.Country)) {
			return e
		}
	}

	return entries[0]
}

// containsPhrase reports a word-boundary-respecting substring match.
func containsPhrase(text, phrase string) bool {
	for from := 0; ; {
		idx := strings.Index(text[from:], phrase)
		if idx < 0 {
			return false
		}
		start := from + idx
		end := start + len(phrase)
		beforeOK := start == 0 || !isWordByte(text[start-1])
		afterOK := end == len(text) || !isWordByte(text[end])
		if beforeOK && afterOK {
			return true
		}
		from = start + 1
	}
}

func isWordByte(b byte) bool {
	return b == '_' || unicode.IsLetter(rune(b)) || unicode.IsDigit(rune(b))
}

func titleCase(s string) string {
	fields := strings.Fields(s)
	for i, f := range fields {
		r := []rune(f)
		r[0] = unicode.ToUpper(r[0])
		fields[i] = string(r)
	}
	return strings.Join(fields, " ")
}
