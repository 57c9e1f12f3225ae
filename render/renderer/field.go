package renderer

import (
	"fmt"

	"github.com/lixenwraith/battleline/board"
	"github.com/lixenwraith/battleline/render"
)

// Field layout
const (
	FieldColumnSpacing = 4
	FieldWidth         = board.ColumnCount * FieldColumnSpacing
	FieldHeight        = 9
	FlagRow            = 5
	NorthStartRow      = FlagRow - 1 // North stacks upward from here
	SouthStartRow      = FlagRow + 1 // South stacks downward from here
)

// formationStacks is the first row and row direction of each side's cards
var formationStacks = [2]struct {
	startRow int
	step     int
}{
	board.North: {startRow: NorthStartRow, step: -1},
	board.South: {startRow: SouthStartRow, step: 1},
}

// FieldRenderer draws the seven columns around a shared flag row
// Each side's first-played card sits next to the flag, later cards extend
// toward that side's edge of the grid
type FieldRenderer struct {
	palette Palette
}

// NewFieldRenderer creates a field renderer
func NewFieldRenderer(palette Palette) *FieldRenderer {
	return &FieldRenderer{palette: palette}
}

// Render draws the field into a new buffer; the field is not modified
// Any failure aborts the render, no partial buffer is returned
func (r *FieldRenderer) Render(field *board.Field) (*render.Buffer, error) {
	columns := field.Columns()
	if len(columns) != board.ColumnCount {
		return nil, fmt.Errorf("field has %d columns, expected %d", len(columns), board.ColumnCount)
	}

	buf, err := render.NewBuffer(FieldWidth, FieldHeight)
	if err != nil {
		return nil, err
	}

	for c, column := range columns {
		x := c * FieldColumnSpacing

		flag, err := r.palette.FlagCell(column.Flag())
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", c, err)
		}
		if err := buf.Set(x, FlagRow, flag); err != nil {
			return nil, fmt.Errorf("column %d: %w", c, err)
		}

		for side, formation := range column.Formations() {
			stack := formationStacks[side]
			if err := r.drawFormation(buf, x, stack.startRow, stack.step, formation); err != nil {
				return nil, fmt.Errorf("column %d %v: %w", c, board.Side(side), err)
			}
		}
	}

	return buf, nil
}

// drawFormation stacks cards from startRow, moving step rows per card
func (r *FieldRenderer) drawFormation(buf *render.Buffer, x, startRow, step int, formation board.Formation) error {
	row := startRow
	for i, c := range formation.Cards() {
		cell, err := r.palette.CardCell(c)
		if err != nil {
			return fmt.Errorf("card %d: %w", i, err)
		}
		if err := buf.Set(x, row, cell); err != nil {
			return fmt.Errorf("card %d: %w", i, err)
		}
		row += step
	}
	return nil
}
