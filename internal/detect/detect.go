// Package detect scans query text for boolean flag triggers and camera
// make/model aliases. Matching is a pure lexical pass over the lowercased
// text, independent of entity recognition: flags and device names are not
// the kind of thing named-entity models tag. The trigger and alias tables
// are fixed at construction and safe for concurrent use.
package detect

import (
	"regexp"
	"sort"
	"strings"

	"github.com/syntax922/immich-search/internal/domain"
)

// Result is the outcome of one detection pass.
type Result struct {
	Flags  domain.Flags
	Camera domain.CameraInfo
}

type flagRule struct {
	re    *regexp.Regexp
	apply func(*domain.Flags)
}

type cameraRule struct {
	alias string
	re    *regexp.Regexp
	info  domain.CameraInfo
}

// Detector matches flag triggers and camera aliases against query text.
type Detector struct {
	flags   []flagRule
	cameras []cameraRule
}

// New builds a Detector from the builtin tables. Camera aliases are ordered
// longest first so "iphone 14 pro" wins over "iphone 14" and "iphone".
func New() *Detector {
	d := &Detector{}

	for _, ft := range flagTable {
		ft := ft
		d.flags = append(d.flags, flagRule{
			re:    wordsPattern(ft.triggers),
			apply: ft.apply,
		})
	}

	aliases := buildCameraAliases()
	sort.SliceStable(aliases, func(i, j int) bool {
		return len(aliases[i].alias) > len(aliases[j].alias)
	})
	for _, a := range aliases {
		d.cameras = append(d.cameras, cameraRule{
			alias: a.alias,
			re:    wordsPattern([]string{a.alias}),
			info:  domain.CameraInfo{Make: a.make, Model: a.model},
		})
	}

	return d
}

// Detect runs the lexical scan. A flag is set when any of its triggers
// appears as a whole word; there is no negation handling, so "not archived"
// still sets the archived flag (known limitation). The first camera alias to
// match, in longest-first order, wins.
func (d *Detector) Detect(text string) Result {
	var res Result

	for _, fr := range d.flags {
		if fr.re.MatchString(text) {
			fr.apply(&res.Flags)
		}
	}

	for _, cr := range d.cameras {
		if cr.re.MatchString(text) {
			res.Camera = cr.info
			break
		}
	}

	return res
}

// wordsPattern compiles a case-insensitive whole-word alternation.
func wordsPattern(words []string) *regexp.Regexp {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	pattern := `(?i)\b(?:` + strings.Join(quoted, "|") + `)\b`
	return regexp.MustCompile(pattern)
}
