package terminal

import (
	"errors"
	"testing"
)

func TestNewCell(t *testing.T) {
	c := NewCell()
	if c.Glyph != " " {
		t.Errorf("Expected space glyph, got %q", c.Glyph)
	}
	if !c.Fg.IsDefault() || !c.Bg.IsDefault() {
		t.Errorf("Expected default colors, got fg=%v bg=%v", c.Fg, c.Bg)
	}
	if c.Styled() {
		t.Error("Expected new cell to be unstyled")
	}
}

func TestSetGlyph(t *testing.T) {
	tests := []struct {
		name    string
		glyph   string
		wantErr bool
	}{
		{"ASCII digit", "7", false},
		{"Flag symbol", "⚑", false},
		{"Combining sequence", "é", false},
		{"Empty", "", true},
		{"Regional indicator pair", "🇩🇪", true},
		{"Wide CJK", "中", true},
		{"Emoji", "😀", true},
		{"Tab", "\t", true},
		{"Newline", "\n", true},
		{"Two characters", "10", true},
		{"Two symbols", "⚑⚑", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCell()
			err := c.SetGlyph(tt.glyph)
			if tt.wantErr {
				if !errors.Is(err, ErrGlyph) {
					t.Fatalf("Expected ErrGlyph for %q, got %v", tt.glyph, err)
				}
				if c.Glyph != " " {
					t.Errorf("Expected glyph unchanged on error, got %q", c.Glyph)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error for %q: %v", tt.glyph, err)
			}
			if c.Glyph != tt.glyph {
				t.Errorf("Expected glyph %q, got %q", tt.glyph, c.Glyph)
			}
		})
	}
}

func TestCellColorsIndependent(t *testing.T) {
	c := NewCell()
	c.SetFg(ColorRed)
	if c.Fg != ColorRed || !c.Bg.IsDefault() {
		t.Errorf("Expected fg only, got fg=%v bg=%v", c.Fg, c.Bg)
	}
	c.SetBg(TrueColor(1, 2, 3))
	if c.Fg != ColorRed {
		t.Errorf("Expected fg preserved, got %v", c.Fg)
	}
	if rgb, ok := c.Bg.RGB(); !ok || rgb != (RGB{1, 2, 3}) {
		t.Errorf("Expected bg rgb(1,2,3), got %v", c.Bg)
	}
}

func TestGlyphCell(t *testing.T) {
	c, err := GlyphCell("x", ColorDefault, ColorBlue)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if c.Glyph != "x" || c.Bg != ColorBlue {
		t.Errorf("Expected x on blue, got %q on %v", c.Glyph, c.Bg)
	}

	if _, err := GlyphCell("xy", ColorDefault, ColorDefault); !errors.Is(err, ErrGlyph) {
		t.Errorf("Expected ErrGlyph, got %v", err)
	}
}

func TestCheckGlyph(t *testing.T) {
	for _, glyph := range []string{"a", "0", "⚑", "é", " "} {
		if err := CheckGlyph(glyph); err != nil {
			t.Errorf("Expected %q accepted, got %v", glyph, err)
		}
	}
	for _, glyph := range []string{"中", "😀", "\t", "\x1b", "ab"} {
		if err := CheckGlyph(glyph); !errors.Is(err, ErrGlyph) {
			t.Errorf("Expected ErrGlyph for %q, got %v", glyph, err)
		}
	}
}

func TestZeroCellText(t *testing.T) {
	var c Cell
	if c.Text() != " " {
		t.Errorf("Expected zero cell to render as space, got %q", c.Text())
	}
}
