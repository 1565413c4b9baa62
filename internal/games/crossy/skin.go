package crossy

import (
	"sort"

	"github.com/vovakirdan/tui-crossy/internal/core"
)

// Skin is the player's appearance.
type Skin struct {
	Name   string
	Glyph  rune // standing
	Hop    rune // mid-step
	Color  core.Color
	Banner string
}

// DefaultSkin is used when no skin, or an unknown one, is selected.
const DefaultSkin = "chicken"

var skins = map[string]Skin{
	"chicken":  {Name: "chicken", Glyph: '@', Hop: 'o', Color: core.ColorBrightWhite, Banner: "Chicken"},
	"elephant": {Name: "elephant", Glyph: 'M', Hop: 'm', Color: core.ColorGray, Banner: "Elephant"},
	"cow":      {Name: "cow", Glyph: 'Ö', Hop: 'ö', Color: core.ColorSand, Banner: "Cow"},
}

// LookupSkin returns the named skin, falling back to DefaultSkin.
func LookupSkin(name string) (Skin, bool) {
	if s, ok := skins[name]; ok {
		return s, true
	}
	return skins[DefaultSkin], false
}

// SkinNames lists the available skins, sorted.
func SkinNames() []string {
	names := make([]string, 0, len(skins))
	for name := range skins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NextSkin returns the skin after name in SkinNames order, wrapping around.
func NextSkin(name string) string {
	names := SkinNames()
	for i, n := range names {
		if n == name {
			return names[(i+1)%len(names)]
		}
	}
	return DefaultSkin
}
