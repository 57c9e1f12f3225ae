// Package renderer projects board and hand state onto render buffers.
package renderer

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/lixenwraith/battleline/board"
	"github.com/lixenwraith/battleline/card"
	"github.com/lixenwraith/battleline/terminal"
)

// ErrNotImplemented marks game states that have no visual rule yet
var ErrNotImplemented = errors.New("rendering not implemented")

// FlagGlyph marks an unclaimed flag
const FlagGlyph = "⚑"

// Palette maps game colors to terminal colors
type Palette struct {
	Troops [card.TroopColorCount]terminal.Color // Card background per TroopColor
	Flag   terminal.Color                       // Unclaimed flag foreground
}

// DefaultPalette uses the named ANSI colors, except orange which has no
// named equivalent distinct from red and yellow
func DefaultPalette() Palette {
	var p Palette
	p.Troops[card.Red] = terminal.ColorRed
	p.Troops[card.Green] = terminal.ColorGreen
	p.Troops[card.Blue] = terminal.ColorBlue
	p.Troops[card.Yellow] = terminal.ColorYellow
	p.Troops[card.Orange] = terminal.TrueColor(255, 87, 51)
	p.Troops[card.Purple] = terminal.ColorMagenta
	p.Flag = terminal.ColorRed
	return p
}

// TroopColor returns the background used for a suit
func (p Palette) TroopColor(c card.TroopColor) terminal.Color {
	if !c.Valid() {
		return terminal.ColorDefault
	}
	return p.Troops[c]
}

// CardCell returns the single cell showing c
// A troop shows its value as one digit, 10 as "0", on the suit color
func (p Palette) CardCell(c card.Card) (terminal.Cell, error) {
	switch c := c.(type) {
	case card.Troop:
		if !c.Color.Valid() {
			return terminal.Cell{}, fmt.Errorf("troop card: unknown color %v", c.Color)
		}
		v := int(c.Value.Value())
		if v < card.MinTroopValue || v > card.MaxTroopValue {
			return terminal.Cell{}, fmt.Errorf("troop card: %w: got %d", card.ErrOutOfRange, v)
		}
		if v == card.MaxTroopValue {
			v = 0
		}
		return terminal.GlyphCell(strconv.Itoa(v), terminal.ColorDefault, p.TroopColor(c.Color))
	case card.Tactics:
		return terminal.Cell{}, fmt.Errorf("tactics card: %w", ErrNotImplemented)
	default:
		return terminal.Cell{}, fmt.Errorf("card %T: %w", c, ErrNotImplemented)
	}
}

// FlagCell returns the cell showing a column's flag state
func (p Palette) FlagCell(f board.Flag) (terminal.Cell, error) {
	switch f {
	case board.Unclaimed:
		return terminal.GlyphCell(FlagGlyph, p.Flag, terminal.ColorDefault)
	case board.Claimed:
		// Claimant is not tracked, so there is no direction to draw
		return terminal.Cell{}, fmt.Errorf("claimed flag: %w", ErrNotImplemented)
	default:
		return terminal.Cell{}, fmt.Errorf("%v: %w", f, ErrNotImplemented)
	}
}
