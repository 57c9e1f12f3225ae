package main

import (
	"fmt"
	"io"

	"github.com/lixenwraith/battleline/board"
	"github.com/lixenwraith/battleline/card"
	"github.com/lixenwraith/battleline/render"
	"github.com/lixenwraith/battleline/render/renderer"
	"github.com/lixenwraith/battleline/terminal"
)

type demo struct {
	field *board.Field
	deck  *card.Deck
	hand  *card.Hand
}

func demoField() *board.Field {
	field := board.NewField()

	// North plays red 1 then red 2 at the second flag
	field.AddCard(1, board.North, card.Troop{Value: card.MustTroopValue(1), Color: card.Red})
	field.AddCard(1, board.North, card.Troop{Value: card.MustTroopValue(2), Color: card.Red})

	field.AddCard(4, board.South, card.Troop{Value: card.MustTroopValue(3), Color: card.Blue})
	field.AddCard(6, board.South, card.Troop{Value: card.MustTroopValue(10), Color: card.Green})

	return field
}

// frames renders field and hand
func (d *demo) frames(palette renderer.Palette) (field, hand *render.Buffer, err error) {
	field, err = renderer.NewFieldRenderer(palette).Render(d.field)
	if err != nil {
		return nil, nil, fmt.Errorf("field: %w", err)
	}
	hand, err = renderer.NewHandRenderer(palette).Render(d.hand)
	if err != nil {
		return nil, nil, fmt.Errorf("hand: %w", err)
	}
	return field, hand, nil
}

func (d *demo) remaining() string {
	return fmt.Sprintf("%d cards remaining in the Troop Deck", d.deck.Len())
}

// print writes field, hand and deck count separated by blank lines
func (d *demo) print(w io.Writer, palette renderer.Palette, mode terminal.ColorMode) error {
	field, hand, err := d.frames(palette)
	if err != nil {
		return err
	}
	if err := field.Encode(w, mode); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}
	if err := hand.Encode(w, mode); err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "\n%s\n", d.remaining())
	return err
}
