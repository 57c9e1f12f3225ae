package terminal

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrColor is returned for color names or hex codes that cannot be parsed
var ErrColor = errors.New("unknown color")

var namedColors = map[string]Color{
	"black":          ColorBlack,
	"red":            ColorRed,
	"green":          ColorGreen,
	"yellow":         ColorYellow,
	"blue":           ColorBlue,
	"magenta":        ColorMagenta,
	"purple":         ColorMagenta,
	"cyan":           ColorCyan,
	"white":          ColorWhite,
	"bright-black":   Named(8),
	"gray":           Named(8),
	"bright-red":     Named(9),
	"bright-green":   Named(10),
	"bright-yellow":  Named(11),
	"bright-blue":    Named(12),
	"bright-magenta": Named(13),
	"bright-cyan":    Named(14),
	"bright-white":   Named(15),
}

// ParseColor reads "default" or an empty string, an ANSI color name, or a "#rrggbb" hex code
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "default" {
		return ColorDefault, nil
	}
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return ColorDefault, fmt.Errorf("%w: %q: %v", ErrColor, s, err)
		}
		r, g, b := c.RGB255()
		return TrueColor(r, g, b), nil
	}
	return ColorDefault, fmt.Errorf("%w: %q", ErrColor, s)
}
