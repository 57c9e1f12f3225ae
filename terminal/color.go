package terminal

import (
	"fmt"
)

// ColorMode indicates how colors are encoded on output
type ColorMode uint8

const (
	ColorModeNone      ColorMode = iota // Glyphs only, no escape sequences
	ColorMode256                        // RGB colors downgraded to the xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

// String returns the flag spelling of the mode
func (m ColorMode) String() string {
	switch m {
	case ColorModeNone:
		return "none"
	case ColorMode256:
		return "256"
	case ColorModeTrueColor:
		return "truecolor"
	default:
		return fmt.Sprintf("ColorMode(%d)", uint8(m))
	}
}

// RGB represents a 24-bit color
type RGB struct {
	R, G, B uint8
}

type colorKind uint8

const (
	kindDefault colorKind = iota
	kindNamed
	kindRGB
)

// Color is an optional cell color: terminal default (zero value), one of the
// 16 named ANSI colors, or an explicit RGB triple
type Color struct {
	kind  colorKind
	index uint8
	rgb   RGB
}

// ColorDefault leaves the terminal's own color in place
var ColorDefault = Color{}

// Named ANSI colors, indices 0-7 normal and 8-15 bright
var (
	ColorBlack   = Named(0)
	ColorRed     = Named(1)
	ColorGreen   = Named(2)
	ColorYellow  = Named(3)
	ColorBlue    = Named(4)
	ColorMagenta = Named(5)
	ColorCyan    = Named(6)
	ColorWhite   = Named(7)
)

// Named returns the ANSI palette color at index, clamped to 15
func Named(index uint8) Color {
	return Color{kind: kindNamed, index: min(index, 15)}
}

// TrueColor returns an explicit RGB color
func TrueColor(r, g, b uint8) Color {
	return Color{kind: kindRGB, rgb: RGB{R: r, G: g, B: b}}
}

// IsDefault reports whether the color defers to the terminal default
func (c Color) IsDefault() bool {
	return c.kind == kindDefault
}

// Index returns the ANSI palette index for named colors
func (c Color) Index() (uint8, bool) {
	return c.index, c.kind == kindNamed
}

// RGB returns the triple for explicit RGB colors
func (c Color) RGB() (RGB, bool) {
	return c.rgb, c.kind == kindRGB
}

// String formats the color for logs and test failures
func (c Color) String() string {
	switch c.kind {
	case kindNamed:
		return fmt.Sprintf("ansi(%d)", c.index)
	case kindRGB:
		return fmt.Sprintf("rgb(%d,%d,%d)", c.rgb.R, c.rgb.G, c.rgb.B)
	default:
		return "default"
	}
}

// Color cube values for 6x6x6 palette (indices 16-231)
// Levels: 0, 95, 135, 175, 215, 255
var cubeValues = [6]uint8{0, 95, 135, 175, 215, 255}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// cubeIndex maps 0-255 to nearest cube level 0-5
func cubeIndex(v uint8) uint8 {
	best := 0
	bestDist := abs(int(v) - int(cubeValues[0]))
	for j := 1; j < len(cubeValues); j++ {
		d := abs(int(v) - int(cubeValues[j]))
		if d < bestDist {
			bestDist = d
			best = j
		}
	}
	return uint8(best)
}

// RGBTo256 finds the nearest 256-color palette index for an RGB value
func RGBTo256(c RGB) uint8 {
	r, g, b := c.R, c.G, c.B

	// Grayscale ramp: 232-255 maps to luminance 8, 18, 28, ..., 238
	gray := (int(r) + int(g) + int(b)) / 3
	maxDiff := max(abs(int(r)-gray), abs(int(g)-gray), abs(int(b)-gray))

	cr, cg, cb := cubeIndex(r), cubeIndex(g), cubeIndex(b)

	if maxDiff < 10 {
		if gray < 4 {
			return 16
		}
		if gray > 243 {
			return 231
		}
		grayIdx := min(232+(gray-8)/10, 255)

		grayLevel := 8 + (grayIdx-232)*10
		grayDist := abs(int(r)-grayLevel) + abs(int(g)-grayLevel) + abs(int(b)-grayLevel)
		cubeDist := abs(int(r)-int(cubeValues[cr])) +
			abs(int(g)-int(cubeValues[cg])) +
			abs(int(b)-int(cubeValues[cb]))

		if grayDist < cubeDist {
			return uint8(grayIdx)
		}
	}

	return 16 + 36*cr + 6*cg + cb
}
