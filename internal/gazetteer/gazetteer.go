// Package gazetteer resolves place-name tokens against static reference
// tables of cities, US states, and countries. The tables are built once at
// startup and never mutated, so a single Gazetteer is safe for unlimited
// concurrent readers.
package gazetteer

import (
	"sort"
	"strings"
)

// Entry is one candidate place for a city name.
type Entry struct {
	City       string
	State      string // canonical full state name, empty outside the US
	Country    string
	Population int64
}

// Gazetteer holds the immutable reference tables.
type Gazetteer struct {
	cities    map[string][]Entry
	states    map[string]string
	countries map[string]string
}

// New builds a Gazetteer from the builtin tables.
func New() *Gazetteer {
	g := &Gazetteer{
		cities:    make(map[string][]Entry, len(cityTable)),
		states:    make(map[string]string, len(stateTable)*2),
		countries: make(map[string]string),
	}

	for _, e := range cityTable {
		key := Normalize(e.City)
		g.cities[key] = append(g.cities[key], e)
	}
	// Highest population first so the default disambiguation pick is cands[0].
	for _, cands := range g.cities {
		sort.SliceStable(cands, func(i, j int) bool {
			return cands[i].Population > cands[j].Population
		})
	}

	for abbrev, name := range stateTable {
		g.states[abbrev] = name
		g.states[Normalize(name)] = name
	}

	for _, c := range countryTable {
		g.countries[Normalize(c.name)] = c.name
		for _, alias := range c.aliases {
			g.countries[Normalize(alias)] = c.name
		}
	}

	return g
}

// Cities returns the candidate entries for a city name, highest population
// first. Returns nil for unknown names.
func (g *Gazetteer) Cities(name string) []Entry {
	return g.cities[Normalize(name)]
}

// State resolves a state token (abbreviation or full name) to its canonical
// full name: "WA" and "washington" both yield "Washington".
func (g *Gazetteer) State(token string) (string, bool) {
	name, ok := g.states[Normalize(token)]
	return name, ok
}

// Country resolves a country token or alias to its canonical name:
// "usa" yields "United States".
func (g *Gazetteer) Country(token string) (string, bool) {
	name, ok := g.countries[Normalize(token)]
	return name, ok
}

// KnownPlace reports whether the token names any city, state, or country in
// the tables. Used by the lexical recognizer to propose location spans.
func (g *Gazetteer) KnownPlace(token string) bool {
	key := Normalize(token)
	if _, ok := g.cities[key]; ok {
		return true
	}
	if _, ok := g.states[key]; ok {
		return true
	}
	_, ok := g.countries[key]
	return ok
}

// Normalize lowercases a place token and strips surrounding space and
// punctuation so "Seattle," and " WA." match their table keys.
func Normalize(token string) string {
	return strings.Trim(strings.ToLower(token), " \t.,;:!?")
}
