package main

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/battleline/board"
	"github.com/lixenwraith/battleline/render/renderer"
	"github.com/lixenwraith/battleline/terminal"
)

func TestNewDemo(t *testing.T) {
	game := newDemo(rand.New(rand.NewPCG(7, 7)), 7)
	if game.hand.Len() != 7 {
		t.Errorf("Expected 7 cards dealt, got %d", game.hand.Len())
	}
	if game.deck.Len() != 53 {
		t.Errorf("Expected 53 cards left, got %d", game.deck.Len())
	}
	if n := game.field.Column(1).Formation(board.North).Len(); n != 2 {
		t.Errorf("Expected 2 north cards at column 1, got %d", n)
	}
}

func TestNewDemoHandLargerThanDeck(t *testing.T) {
	game := newDemo(rand.New(rand.NewPCG(1, 1)), 100)
	if game.hand.Len() != 60 || game.deck.Len() != 0 {
		t.Errorf("Expected whole deck dealt, got hand=%d deck=%d", game.hand.Len(), game.deck.Len())
	}
}

func TestDemoPrint(t *testing.T) {
	game := newDemo(rand.New(rand.NewPCG(3, 3)), 7)

	var sb strings.Builder
	if err := game.print(&sb, renderer.DefaultPalette(), terminal.ColorModeNone); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	lines := strings.Split(sb.String(), "\n")

	// 9 field rows, blank, 3 hand rows, blank, count, trailing empty
	if len(lines) != 16 {
		t.Fatalf("Expected 16 lines, got %d: %q", len(lines), lines)
	}

	field := lines[:9]
	at := func(row, col int) string {
		return string([]rune(field[row])[col])
	}
	if at(4, 4) != "1" || at(3, 4) != "2" {
		t.Errorf("Expected red 1 below red 2 at column 4, got %q over %q", at(3, 4), at(4, 4))
	}
	if at(6, 16) != "3" || at(6, 24) != "0" {
		t.Errorf("Expected south cards at columns 16 and 24, got %q and %q", at(6, 16), at(6, 24))
	}
	for c := 0; c < 7; c++ {
		if at(5, c*4) != renderer.FlagGlyph {
			t.Errorf("Expected flag at column %d, got %q", c*4, at(5, c*4))
		}
	}

	if lines[9] != "" || !strings.HasPrefix(lines[10], "Hand:") {
		t.Errorf("Expected blank line then hand label, got %q / %q", lines[9], lines[10])
	}
	if !strings.HasPrefix(lines[11], "1   2   3   4   5   6   7") {
		t.Errorf("Expected hand indices, got %q", lines[11])
	}
	if lines[14] != "53 cards remaining in the Troop Deck" {
		t.Errorf("Expected deck count line, got %q", lines[14])
	}
}

func TestDemoPrintDeterministic(t *testing.T) {
	render := func() string {
		game := newDemo(rand.New(rand.NewPCG(9, 9)), 7)
		var sb strings.Builder
		if err := game.print(&sb, renderer.DefaultPalette(), terminal.ColorModeTrueColor); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		return sb.String()
	}
	if render() != render() {
		t.Error("Expected identical output for identical seeds")
	}
}

func TestDrawLive(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(80, 24)

	game := newDemo(rand.New(rand.NewPCG(5, 5)), 7)
	if err := drawLive(screen, game, renderer.DefaultPalette()); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if mainc, _, _, _ := screen.GetContent(4, 5); mainc != '⚑' {
		t.Errorf("Expected flag at (4,5), got %q", mainc)
	}
	if mainc, _, _, _ := screen.GetContent(0, 10); mainc != 'H' {
		t.Errorf("Expected hand label at row 10, got %q", mainc)
	}
}
