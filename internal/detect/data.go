package detect

import (
	"fmt"
	"strings"

	"github.com/syntax922/immich-search/internal/domain"
)

// flagTable maps trigger phrases to the flag they set. Whole-word,
// case-insensitive matching; any trigger sets the flag.
var flagTable = []struct {
	triggers []string
	apply    func(*domain.Flags)
}{
	{
		triggers: []string{"archived"},
		apply:    func(f *domain.Flags) { f.Archived = true },
	},
	{
		// Both spellings, singular and plural.
		triggers: []string{"favorite", "favorites", "favourite", "favourites"},
		apply:    func(f *domain.Flags) { f.Favorite = true },
	},
	{
		triggers: []string{"motion"},
		apply:    func(f *domain.Flags) { f.Motion = true },
	},
}

type cameraAlias struct {
	alias string
	make  string
	model string
}

// buildCameraAliases expands the device table into flat lowercase aliases.
// Numbered phone lines are generated per variant; bare brand words map to
// make-only entries so "shot on canon" still filters by manufacturer.
func buildCameraAliases() []cameraAlias {
	var out []cameraAlias

	add := func(alias, mk, model string) {
		out = append(out, cameraAlias{alias: alias, make: mk, model: model})
	}

	// Apple iPhone: numbered models with their variants.
	for n := 8; n <= 16; n++ {
		for _, variant := range []string{"", "plus", "pro", "pro max", "mini"} {
			alias := fmt.Sprintf("iphone %d", n)
			model := fmt.Sprintf("iPhone %d", n)
			if variant != "" {
				alias += " " + variant
				model += " " + titleVariant(variant)
			}
			add(alias, "Apple", model)
		}
	}
	for _, m := range []string{"SE", "X", "XR", "XS"} {
		add("iphone "+strings.ToLower(m), "Apple", "iPhone "+m)
	}
	add("iphone", "Apple", "iPhone")

	// Google Pixel.
	for n := 4; n <= 10; n++ {
		for _, variant := range []string{"", "a", "xl", "pro", "pro xl"} {
			alias := fmt.Sprintf("pixel %d", n)
			model := fmt.Sprintf("Pixel %d", n)
			if variant == "a" {
				// Pixel "a" models glue the letter on: Pixel 8a.
				add(alias+"a", "Google", model+"a")
				continue
			}
			if variant != "" {
				alias += " " + variant
				model += " " + titleVariant(variant)
			}
			add(alias, "Google", model)
		}
	}
	add("pixel", "Google", "Pixel")

	// Samsung Galaxy.
	for n := 20; n <= 25; n++ {
		for _, variant := range []string{"", "plus", "ultra", "fe"} {
			alias := fmt.Sprintf("galaxy s%d", n)
			model := fmt.Sprintf("Galaxy S%d", n)
			if variant != "" {
				alias += " " + variant
				model += " " + titleVariant(variant)
			}
			add(alias, "Samsung", model)
		}
	}
	for n := 3; n <= 6; n++ {
		add(fmt.Sprintf("galaxy z fold %d", n), "Samsung", fmt.Sprintf("Galaxy Z Fold %d", n))
		add(fmt.Sprintf("galaxy z flip %d", n), "Samsung", fmt.Sprintf("Galaxy Z Flip %d", n))
	}
	add("galaxy", "Samsung", "Galaxy")

	// Action cameras.
	for n := 9; n <= 13; n++ {
		add(fmt.Sprintf("gopro hero %d", n), "GoPro", fmt.Sprintf("HERO %d", n))
	}
	add("gopro", "GoPro", "")

	// Dedicated camera brands: make only, the model stays free text.
	for _, brand := range []string{"Nikon", "Canon", "Sony", "Fujifilm", "Leica", "Olympus", "Panasonic", "DJI"} {
		add(strings.ToLower(brand), brand, "")
	}

	return out
}

// titleVariant canonicalizes a variant suffix: "pro max" -> "Pro Max",
// "fe" and "xl" stay uppercase per vendor branding.
func titleVariant(variant string) string {
	switch variant {
	case "xl":
		return "XL"
	case "pro xl":
		return "Pro XL"
	case "fe":
		return "FE"
	case "pro max":
		return "Pro Max"
	case "ultra":
		return "Ultra"
	case "pro":
		return "Pro"
	case "plus":
		return "Plus"
	case "mini":
		return "mini"
	default:
		return variant
	}
}
