package domain

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewDateRange_Ordered(t *testing.T) {
	r := NewDateRange(date(2024, 1, 1), date(2024, 7, 31))
	if r.Start.After(r.End) {
		t.Fatalf("start after end: %v > %v", r.Start, r.End)
	}
}

func TestNewDateRange_SwapsReversed(t *testing.T) {
	r := NewDateRange(date(2024, 7, 31), date(2024, 1, 1))
	if !r.Start.Equal(date(2024, 1, 1)) || !r.End.Equal(date(2024, 7, 31)) {
		t.Errorf("expected swapped bounds, got %v..%v", r.Start, r.End)
	}
}

func TestFilterSet_HasStructured(t *testing.T) {
	cases := []struct {
		name string
		fs   FilterSet
		want bool
	}{
		{"empty", FilterSet{Raw: "dogs", Residual: "dogs"}, false},
		{"flag", FilterSet{Flags: Flags{Favorite: true}}, true},
		{"camera", FilterSet{Camera: &CameraInfo{Make: "Apple"}}, true},
		{"location", FilterSet{Location: &Location{City: "Seattle"}}, true},
		{"dates", FilterSet{DateRange: &DateRange{}}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.fs.HasStructured(); got != tc.want {
				t.Errorf("HasStructured() = %v, want %v", got, tc.want)
			}
		})
	}
}
