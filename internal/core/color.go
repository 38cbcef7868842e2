package core

import (
	"fmt"
	"strings"
)

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
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
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

var colorNames = map[Color]string{
	ColorDefault:       "default",
	ColorRed:           "red",
	ColorGreen:         "green",
	ColorYellow:        "yellow",
	ColorBlue:          "blue",
	ColorMagenta:       "magenta",
	ColorCyan:          "cyan",
	ColorWhite:         "white",
	ColorBrightRed:     "bright-red",
	ColorBrightGreen:   "bright-green",
	ColorBrightYellow:  "bright-yellow",
	ColorBrightBlue:    "bright-blue",
	ColorBrightMagenta: "bright-magenta",
	ColorBrightCyan:    "bright-cyan",
	ColorBrightWhite:   "bright-white",
	ColorOrange:        "orange",
	ColorGray:          "gray",
}

// SnakePalette lists the colors a player can pick for the snake, in cycle order.
var SnakePalette = []Color{
	ColorBrightGreen,
	ColorGreen,
	ColorBrightCyan,
	ColorBrightYellow,
	ColorOrange,
	ColorBrightMagenta,
	ColorBrightBlue,
	ColorBrightWhite,
}

// String returns the config name of the color.
func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return fmt.Sprintf("color(%d)", uint8(c))
}

// ParseColor resolves a config name such as "bright-green" to a Color.
func ParseColor(name string) (Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for c, n := range colorNames {
		if n == name {
			return c, nil
		}
	}
	return ColorDefault, fmt.Errorf("core: unknown color %q", name)
}

// NextInPalette returns the palette entry after c, wrapping around.
// Colors outside the palette cycle back to its first entry.
func NextInPalette(c Color) Color {
	for i, p := range SnakePalette {
		if p == c {
			return SnakePalette[(i+1)%len(SnakePalette)]
		}
	}
	return SnakePalette[0]
}

// PrevInPalette returns the palette entry before c, wrapping around.
func PrevInPalette(c Color) Color {
	n := len(SnakePalette)
	for i, p := range SnakePalette {
		if p == c {
			return SnakePalette[(i+n-1)%n]
		}
	}
	return SnakePalette[0]
}
