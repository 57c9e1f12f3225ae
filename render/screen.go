package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/battleline/terminal"
)

// Blit copies the buffer onto a tcell screen with its top-left corner at (x0, y0)
// Cells falling outside the screen are skipped. Caller is responsible for Show
func (b *Buffer) Blit(screen tcell.Screen, x0, y0 int) {
	sw, sh := screen.Size()
	for y := 0; y < b.height; y++ {
		sy := y0 + y
		if sy < 0 || sy >= sh {
			continue
		}
		for x := 0; x < b.width; x++ {
			sx := x0 + x
			if sx < 0 || sx >= sw {
				continue
			}
			c := b.cells[y*b.width+x]
			runes := []rune(c.Text())
			screen.SetContent(sx, sy, runes[0], runes[1:], TcellStyle(c))
		}
	}
}

// TcellStyle converts cell colors to a tcell style
func TcellStyle(c terminal.Cell) tcell.Style {
	return tcell.StyleDefault.
		Foreground(TcellColor(c.Fg)).
		Background(TcellColor(c.Bg))
}

// TcellColor maps a cell color onto tcell's color space
func TcellColor(c terminal.Color) tcell.Color {
	if idx, ok := c.Index(); ok {
		return tcell.PaletteColor(int(idx))
	}
	if rgb, ok := c.RGB(); ok {
		return tcell.NewRGBColor(int32(rgb.R), int32(rgb.G), int32(rgb.B))
	}
	return tcell.ColorDefault
}
