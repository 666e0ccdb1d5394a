// Package domain holds the core types of the query interpretation pipeline.
package domain

import "time"

// DateRange is an inclusive calendar interval. Start <= End always holds.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange builds a range, swapping the bounds when given backwards.
// Users state ranges in the wrong order often enough that rejecting them
// is worse than fixing them up.
func NewDateRange(start, end time.Time) DateRange {
	if start.After(end) {
		start, end = end, start
	}
	return DateRange{Start: start, End: end}
}

// Location is a single place, canonicalized by the gazetteer.
// At least one field is non-empty when a Location is present.
type Location struct {
	City    string
	State   string
	Country string
}

// IsZero reports whether no field is set.
func (l Location) IsZero() bool {
	return l.City == "" && l.State == "" && l.Country == ""
}

// Flags are boolean photo filters set by explicit lexical triggers.
type Flags struct {
	Archived bool
	Favorite bool
	Motion   bool
}

// Any reports whether at least one flag is set.
func (f Flags) Any() bool {
	return f.Archived || f.Favorite || f.Motion
}

// CameraInfo identifies the capturing device, resolved from an alias table.
type CameraInfo struct {
	Make  string
	Model string
}

// IsZero reports whether no field is set.
func (c CameraInfo) IsZero() bool {
	return c.Make == "" && c.Model == ""
}

// FilterSet is the interpreter's output: every structured filter extracted
// from one query plus the residual free text. A FilterSet is a pure function
// of the query text and the static reference tables.
type FilterSet struct {
	Raw       string
	DateRange *DateRange
	Location  *Location
	Flags     Flags
	Camera    *CameraInfo
	Residual  string
}

// HasStructured reports whether any structured filter was extracted.
func (fs FilterSet) HasStructured() bool {
	return fs.DateRange != nil || fs.Location != nil || fs.Flags.Any() || fs.Camera != nil
}
