package renderer

import (
	"fmt"
	"strconv"

	"github.com/lixenwraith/battleline/card"
	"github.com/lixenwraith/battleline/render"
	"github.com/lixenwraith/battleline/terminal"
)

// Hand layout
const (
	HandSpacing = 4
	HandWidth   = 10 * 3
	HandHeight  = 3
	HandLabel   = "Hand:"

	handLabelRow = 0
	handIndexRow = 1
	handCardRow  = 2
)

// HandRenderer draws a labelled row of cards with 1-based position numbers
// Cards past the right edge are clipped
type HandRenderer struct {
	palette Palette
}

// NewHandRenderer creates a hand renderer
func NewHandRenderer(palette Palette) *HandRenderer {
	return &HandRenderer{palette: palette}
}

// Render draws the hand into a new buffer; the hand is not modified
func (r *HandRenderer) Render(hand *card.Hand) (*render.Buffer, error) {
	buf, err := render.NewBuffer(HandWidth, HandHeight)
	if err != nil {
		return nil, err
	}

	buf.Print(HandLabel, 0, handLabelRow, terminal.ColorDefault, terminal.ColorDefault)

	for i, c := range hand.All() {
		x := i * HandSpacing

		cell, err := r.palette.CardCell(c)
		if err != nil {
			return nil, fmt.Errorf("hand card %d: %w", i+1, err)
		}

		buf.Print(strconv.Itoa(i+1), x, handIndexRow, terminal.ColorDefault, terminal.ColorDefault)
		if buf.InBounds(x, handCardRow) {
			if err := buf.Set(x, handCardRow, cell); err != nil {
				return nil, fmt.Errorf("hand card %d: %w", i+1, err)
			}
		}
	}

	return buf, nil
}
