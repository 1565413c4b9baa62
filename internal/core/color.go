package core

// Color is a foreground palette entry for a screen cell. The platform
// decides how each entry maps onto the terminal.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorDarkGray
	ColorBrown
	ColorOlive
	ColorSand
)

// namedColors are the colours configuration files may name. Vehicles use
// the bright variants so they stand out against the road.
var namedColors = map[string]Color{
	"red":     ColorBrightRed,
	"blue":    ColorBrightBlue,
	"yellow":  ColorBrightYellow,
	"green":   ColorBrightGreen,
	"orange":  ColorOrange,
	"magenta": ColorMagenta,
	"cyan":    ColorCyan,
	"white":   ColorWhite,
	"gray":    ColorGray,
	"brown":   ColorBrown,
	"sand":    ColorSand,
}

// ParseColor looks up a configured colour name.
func ParseColor(name string) (Color, bool) {
	c, ok := namedColors[name]
	return c, ok
}
