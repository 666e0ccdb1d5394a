// Package dates parses natural-language date phrases into calendar points
// with an explicit granularity, so "Jan 2024" can later expand to the whole
// month rather than collapsing to a single day. Parsing is pure: relative
// phrases resolve against a caller-supplied reference date.
package dates

import (
	"strconv"
	"strings"
	"time"
)

// Granularity is the calendar unit a phrase names.
type Granularity int

// Supported granularities, smallest first.
const (
	Day Granularity = iota
	Week
	Month
	Year
)

// Point is a parsed phrase: the first day of the named unit plus the unit
// itself. Time is always midnight UTC.
type Point struct {
	Time time.Time
	Gran Granularity
}

// RangeEnd returns the last day covered by the point's unit.
func (p Point) RangeEnd() time.Time {
	switch p.Gran {
	case Week:
		return p.Time.AddDate(0, 0, 6)
	case Month:
		return p.Time.AddDate(0, 1, -1)
	case Year:
		return p.Time.AddDate(1, 0, -1)
	default:
		return p.Time
	}
}

var monthNames = map[string]time.Month{
	"jan": time.January, "january": time.January,
	"feb": time.February, "february": time.February,
	"mar": time.March, "march": time.March,
	"apr": time.April, "april": time.April,
	"may": time.May,
	"jun": time.June, "june": time.June,
	"jul": time.July, "july": time.July,
	"aug": time.August, "august": time.August,
	"sep": time.September, "sept": time.September, "september": time.September,
	"oct": time.October, "october": time.October,
	"nov": time.November, "november": time.November,
	"dec": time.December, "december": time.December,
}

// Parse resolves a date phrase against the reference date. It handles ISO
// dates, month/day/year combinations in either order, bare years, bare month
// names (reference year), and a fixed set of relative phrases. Returns false
// for anything it cannot resolve; unparseable text is a normal outcome, not
// an error.
func Parse(phrase string, ref time.Time) (Point, bool) {
	norm := normalize(phrase)
	if norm == "" {
		return Point{}, false
	}

	if p, ok := parseRelative(norm, ref); ok {
		return p, true
	}

	for _, layout := range []string{"2006-01-02", "2006/01/02"} {
		if t, err := time.Parse(layout, norm); err == nil {
			return Point{Time: dayOf(t), Gran: Day}, true
		}
	}

	return parseTokens(strings.Fields(norm), ref)
}

// parseTokens classifies each token as a month name, day number, or year and
// assembles a point from whatever combination is present.
func parseTokens(tokens []string, ref time.Time) (Point, bool) {
	var (
		month    time.Month
		day      int
		year     int
		hasMonth bool
	)

	for _, tok := range tokens {
		switch {
		case isMonthToken(tok):
			if hasMonth {
				return Point{}, false
			}
			month = monthNames[strings.TrimSuffix(tok, ".")]
			hasMonth = true
		case isYearToken(tok):
			if year != 0 {
				return Point{}, false
			}
			year, _ = strconv.Atoi(tok)
		case isDayToken(tok):
			if day != 0 {
				return Point{}, false
			}
			day, _ = strconv.Atoi(stripOrdinal(tok))
		default:
			return Point{}, false
		}
	}

	switch {
	case hasMonth && day != 0:
		if year == 0 {
			year = ref.Year()
		}
		if day > daysIn(year, month) {
			return Point{}, false
		}
		return Point{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC), Gran: Day}, true
	case hasMonth:
		if year == 0 {
			year = ref.Year()
		}
		return Point{Time: time.Date(year, month, 1, 0, 0, 0, 0, time.UTC), Gran: Month}, true
	case year != 0 && day == 0:
		return Point{Time: time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC), Gran: Year}, true
	default:
		return Point{}, false
	}
}

func parseRelative(norm string, ref time.Time) (Point, bool) {
	today := dayOf(ref)
	switch norm {
	case "today":
		return Point{Time: today, Gran: Day}, true
	case "yesterday":
		return Point{Time: today.AddDate(0, 0, -1), Gran: Day}, true
	case "this week":
		return Point{Time: weekStart(today), Gran: Week}, true
	case "last week":
		return Point{Time: weekStart(today).AddDate(0, 0, -7), Gran: Week}, true
	case "this month":
		return Point{Time: monthStart(today), Gran: Month}, true
	case "last month":
		return Point{Time: monthStart(today).AddDate(0, -1, 0), Gran: Month}, true
	case "this year":
		return Point{Time: yearStart(today), Gran: Year}, true
	case "last year":
		return Point{Time: yearStart(today).AddDate(-1, 0, 0), Gran: Year}, true
	}
	return Point{}, false
}

func normalize(phrase string) string {
	norm := strings.ToLower(strings.TrimSpace(phrase))
	norm = strings.ReplaceAll(norm, ",", " ")
	return strings.Join(strings.Fields(norm), " ")
}

func isMonthToken(tok string) bool {
	_, ok := monthNames[strings.TrimSuffix(tok, ".")]
	return ok
}

func isYearToken(tok string) bool {
	if len(tok) != 4 {
		return false
	}
	n, err := strconv.Atoi(tok)
	return err == nil && n >= 1900 && n <= 2100
}

func isDayToken(tok string) bool {
	n, err := strconv.Atoi(stripOrdinal(tok))
	return err == nil && n >= 1 && n <= 31
}

// stripOrdinal turns "14th" into "14". Only applied when the prefix is
// numeric so month names ending in "st" are unaffected.
func stripOrdinal(tok string) string {
	for _, suffix := range []string{"st", "nd", "rd", "th"} {
		if rest, ok := strings.CutSuffix(tok, suffix); ok && rest != "" {
			if _, err := strconv.Atoi(rest); err == nil {
				return rest
			}
		}
	}
	return tok
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1).Day()
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func yearStart(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
}

// weekStart returns the Monday of the week containing t.
func weekStart(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset)
}
