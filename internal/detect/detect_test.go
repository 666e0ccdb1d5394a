package detect

import (
	"strings"
	"testing"
)

func TestDetect_Flags(t *testing.T) {
	d := New()

	cases := []struct {
		name     string
		text     string
		archived bool
		favorite bool
		motion   bool
	}{
		{"none", "dogs on the beach", false, false, false},
		{"archived", "show archived photos", true, false, false},
		{"favorite singular", "my favorite sunsets", false, true, false},
		{"favorite plural", "all favorites", false, true, false},
		{"british spelling", "favourites from rome", false, true, false},
		{"motion", "motion photos of the kids", false, false, true},
		{"all three", "archived favorite motion shots", true, true, true},
		{"case insensitive", "ARCHIVED Favourites MOTION", true, true, true},
		{"no substring match", "archiveds favoritesque", false, false, false},
		{"negation not handled", "not archived", true, false, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := d.Detect(tc.text).Flags
			if got.Archived != tc.archived || got.Favorite != tc.favorite || got.Motion != tc.motion {
				t.Errorf("Detect(%q).Flags = %+v", tc.text, got)
			}
		})
	}
}

func TestDetect_FlagsIdempotent(t *testing.T) {
	d := New()
	text := "Archived favourites in motion"

	first := d.Detect(text).Flags
	second := d.Detect(text).Flags
	if first != second {
		t.Errorf("detection not idempotent: %+v vs %+v", first, second)
	}
}

func TestDetect_Camera(t *testing.T) {
	d := New()

	cases := []struct {
		text  string
		mk    string
		model string
	}{
		{"taken with an iPhone 14", "Apple", "iPhone 14"},
		{"taken with an iPhone 14 Pro", "Apple", "iPhone 14 Pro"},
		{"shot on iphone 14 pro max", "Apple", "iPhone 14 Pro Max"},
		{"just an iphone", "Apple", "iPhone"},
		{"iphone 13 mini photos", "Apple", "iPhone 13 mini"},
		{"pixel 8 pro shots", "Google", "Pixel 8 Pro"},
		{"on my pixel 8a", "Google", "Pixel 8a"},
		{"pixel 9 pro xl landscape", "Google", "Pixel 9 Pro XL"},
		{"galaxy s23 ultra pics", "Samsung", "Galaxy S23 Ultra"},
		{"galaxy s21 plus selfies", "Samsung", "Galaxy S21 Plus"},
		{"galaxy s24 fe shots", "Samsung", "Galaxy S24 FE"},
		{"GoPro Hero 12 footage", "GoPro", "HERO 12"},
		{"shot on canon", "Canon", ""},
		{"my nikon shots", "Nikon", ""},
		{"no device here", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			got := d.Detect(tc.text).Camera
			if got.Make != tc.mk || got.Model != tc.model {
				t.Errorf("Detect(%q).Camera = %+v, want make=%q model=%q", tc.text, got, tc.mk, tc.model)
			}
		})
	}
}

func TestCameraAliases_VariantCasing(t *testing.T) {
	// Every generated model string must use the vendor's casing; a variant
	// word left lowercase means titleVariant missed a case. "mini" is
	// intentionally lowercase (Apple branding).
	for _, a := range buildCameraAliases() {
		for _, tok := range strings.Fields(a.model) {
			switch tok {
			case "plus", "pro", "max", "ultra", "xl", "fe":
				t.Errorf("alias %q: model %q has uncapitalized variant %q", a.alias, a.model, tok)
			}
		}
	}
}

func TestDetect_LongestAliasWins(t *testing.T) {
	d := New()

	// "iPhone 14 Pro" must not be shadowed by the shorter "iphone 14" or
	// "iphone" aliases.
	got := d.Detect("archived photos from my iPhone 14 Pro").Camera
	if got.Model != "iPhone 14 Pro" {
		t.Errorf("model = %q, want iPhone 14 Pro", got.Model)
	}
}
