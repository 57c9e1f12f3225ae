package render

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/lixenwraith/battleline/terminal"
)

var (
	// ErrDimension is returned for a buffer width or height below 1
	ErrDimension = errors.New("buffer dimensions must be at least 1x1")
	// ErrOutOfBounds is returned by Set for coordinates outside the grid
	ErrOutOfBounds = errors.New("cell position out of bounds")
)

// Buffer is a fixed-size grid of terminal cells, row-major
type Buffer struct {
	cells  []terminal.Cell
	width  int
	height int
}

// NewBuffer creates a buffer of blank cells with the specified dimensions
func NewBuffer(width, height int) (*Buffer, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrDimension, width, height)
	}
	cells := make([]terminal.Cell, width*height)
	blank := terminal.NewCell()
	for i := range cells {
		cells[i] = blank
	}
	return &Buffer{
		cells:  cells,
		width:  width,
		height: height,
	}, nil
}

// Width returns the number of columns
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the number of rows
func (b *Buffer) Height() int {
	return b.height
}

// InBounds returns true if (x, y) addresses a cell
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at (x, y)
func (b *Buffer) Get(x, y int) (terminal.Cell, bool) {
	if !b.InBounds(x, y) {
		return terminal.Cell{}, false
	}
	return b.cells[y*b.width+x], true
}

// Set overwrites the cell at (x, y)
// Out-of-range coordinates leave the buffer unchanged and return ErrOutOfBounds,
// a glyph that is not one column wide returns terminal.ErrGlyph
func (b *Buffer) Set(x, y int, cell terminal.Cell) error {
	if !b.InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, x, y, b.width, b.height)
	}
	if err := terminal.CheckGlyph(cell.Text()); err != nil {
		return fmt.Errorf("(%d,%d): %w", x, y, err)
	}
	b.cells[y*b.width+x] = cell
	return nil
}

// Print places text starting at (x, y), one grapheme per cell
// Each line of text goes on the next row; cells falling outside the grid are skipped
// Graphemes that are not one column wide (CJK, emoji, tabs) print as terminal.ReplacementGlyph
func (b *Buffer) Print(text string, x, y int, fg, bg terminal.Color) {
	if text == "" {
		return
	}
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		row := y + i
		col := x
		g := uniseg.NewGraphemes(line)
		for g.Next() {
			if b.InBounds(col, row) {
				glyph := g.Str()
				if g.Width() != 1 {
					glyph = terminal.ReplacementGlyph
				}
				b.cells[row*b.width+col] = terminal.Cell{Glyph: glyph, Fg: fg, Bg: bg}
			}
			col++
		}
	}
}

// Encode writes one line per row, each cell painted per mode, newline-terminated
func (b *Buffer) Encode(w io.Writer, mode terminal.ColorMode) error {
	bw := bufio.NewWriter(w)
	for y := 0; y < b.height; y++ {
		row := b.cells[y*b.width : (y+1)*b.width]
		for _, c := range row {
			terminal.WriteCell(bw, c, mode)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// String renders the buffer with full color
func (b *Buffer) String() string {
	var sb strings.Builder
	_ = b.Encode(&sb, terminal.ColorModeTrueColor)
	return sb.String()
}
