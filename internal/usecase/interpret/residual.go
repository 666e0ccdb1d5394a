package interpret

import (
	"sort"
	"strings"
	"unicode"
)

// connectors are prepositions swallowed together with the segment they
// introduce, so "photos in Seattle" leaves "photos", not "photos in".
var connectors = map[string]bool{
	"in": true, "on": true, "at": true, "of": true,
	"from": true, "to": true, "between": true, "and": true,
	"near": true, "during": true, "since": true, "until": true,
	"through": true, "around": true,
}

// residualText removes the consumed segments from text and tidies what is
// left: each cut extends backward over one leading connector word, whitespace
// collapses, and tokens reduced to bare punctuation are dropped.
func residualText(text string, segs []segment) string {
	if len(segs) == 0 {
		return collapse(text)
	}

	sort.Slice(segs, func(i, j int) bool { return segs[i].start < segs[j].start })

	var b strings.Builder
	prev := 0
	for _, seg := range segs {
		start := extendBack(text, seg.start)
		if start > prev {
			b.WriteString(text[prev:start])
			b.WriteByte(' ')
		}
		if seg.end > prev {
			prev = seg.end
		}
	}
	if prev < len(text) {
		b.WriteString(text[prev:])
	}

	return collapse(b.String())
}

// extendBack moves a segment start over preceding whitespace and one
// connector word.
func extendBack(text string, start int) int {
	i := start
	for i > 0 && (text[i-1] == ' ' || text[i-1] == '\t') {
		i--
	}
	j := i
	for j > 0 && isWordByte(text[j-1]) {
		j--
	}
	if j < i && connectors[strings.ToLower(text[j:i])] {
		return j
	}
	return start
}

// collapse normalizes whitespace and drops tokens with no letter or digit
// left in them.
func collapse(text string) string {
	fields := strings.Fields(text)
	kept := fields[:0]
	for _, f := range fields {
		if strings.ContainsFunc(f, func(r rune) bool {
			return unicode.IsLetter(r) || unicode.IsDigit(r)
		}) {
			kept = append(kept, f)
		}
	}
	return strings.Join(kept, " ")
}
