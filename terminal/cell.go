package terminal

import (
	"errors"
	"fmt"

	"github.com/rivo/uniseg"
)

// ErrGlyph is returned when a cell glyph is not exactly one visible character
var ErrGlyph = errors.New("glyph must be exactly one visible character")

// ReplacementGlyph stands in for text that cannot occupy a single cell
const ReplacementGlyph = "?"

// Cell represents a single terminal cell: one grapheme plus optional colors
// An empty Glyph renders as a space
type Cell struct {
	Glyph string
	Fg    Color
	Bg    Color
}

// NewCell returns a blank cell with terminal default colors
func NewCell() Cell {
	return Cell{Glyph: " "}
}

// GlyphCell builds a styled cell, validating the glyph
func GlyphCell(glyph string, fg, bg Color) (Cell, error) {
	c := Cell{Fg: fg, Bg: bg}
	if err := c.SetGlyph(glyph); err != nil {
		return Cell{}, err
	}
	return c, nil
}

// CheckGlyph returns ErrGlyph unless glyph is one grapheme cluster exactly one column wide
// Wide (CJK, emoji presentation) and zero-width (control) glyphs are rejected
func CheckGlyph(glyph string) error {
	if n := uniseg.GraphemeClusterCount(glyph); n != 1 {
		return fmt.Errorf("%w: %q has %d", ErrGlyph, glyph, n)
	}
	if w := uniseg.StringWidth(glyph); w != 1 {
		return fmt.Errorf("%w: %q is %d columns wide", ErrGlyph, glyph, w)
	}
	return nil
}

// SetGlyph replaces the displayed glyph
func (c *Cell) SetGlyph(glyph string) error {
	if err := CheckGlyph(glyph); err != nil {
		return err
	}
	c.Glyph = glyph
	return nil
}

// SetFg sets the foreground color
func (c *Cell) SetFg(color Color) {
	c.Fg = color
}

// SetBg sets the background color
func (c *Cell) SetBg(color Color) {
	c.Bg = color
}

// Styled reports whether the cell carries any color
func (c Cell) Styled() bool {
	return !c.Fg.IsDefault() || !c.Bg.IsDefault()
}

// Text returns the glyph, substituting a space for the zero cell
func (c Cell) Text() string {
	if c.Glyph == "" {
		return " "
	}
	return c.Glyph
}
