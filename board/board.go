// Package board holds the Battle Line playing field: seven flags, each with
// one formation of cards per side.
package board

import (
	"errors"
	"fmt"
	"slices"

	"github.com/lixenwraith/battleline/card"
)

const (
	// ColumnCount is the number of flags on the field
	ColumnCount = 7
	// FormationCapacity is the usual number of cards per side per column, not enforced
	FormationCapacity = 4
)

// ErrClaimed is returned when claiming a flag that is already claimed
var ErrClaimed = errors.New("flag already claimed")

// Side selects a player's formation within a column
type Side uint8

const (
	North Side = iota
	South
)

func (s Side) String() string {
	switch s {
	case North:
		return "north"
	case South:
		return "south"
	default:
		return fmt.Sprintf("Side(%d)", uint8(s))
	}
}

// Flag is the claim state of a column
// Unclaimed -> Claimed is the only transition; Claimed is terminal
type Flag uint8

const (
	Unclaimed Flag = iota
	Claimed
)

func (f Flag) String() string {
	switch f {
	case Unclaimed:
		return "unclaimed"
	case Claimed:
		return "claimed"
	default:
		return fmt.Sprintf("Flag(%d)", uint8(f))
	}
}

// Formation is the ordered cards one side has played into one column
type Formation struct {
	cards []card.Card
}

func newFormation() Formation {
	return Formation{cards: make([]card.Card, 0, FormationCapacity)}
}

// Cards returns the cards in play order
func (f Formation) Cards() []card.Card {
	return slices.Clone(f.cards)
}

// Len returns the number of cards played
func (f Formation) Len() int {
	return len(f.cards)
}

// Column is a flag with a formation for each side
type Column struct {
	flag       Flag
	formations [2]Formation
}

// Flag returns the claim state
func (c Column) Flag() Flag {
	return c.flag
}

// Formation returns the formation belonging to side
func (c Column) Formation(side Side) Formation {
	return c.formations[side]
}

// Formations returns both formations, indexed by Side
func (c Column) Formations() [2]Formation {
	return c.formations
}

// Field is the seven columns of the board
type Field struct {
	columns []Column
}

// NewField returns seven unclaimed columns with empty formations
func NewField() *Field {
	columns := make([]Column, ColumnCount)
	for i := range columns {
		columns[i] = Column{
			flag:       Unclaimed,
			formations: [2]Formation{newFormation(), newFormation()},
		}
	}
	return &Field{columns: columns}
}

// Len returns the number of columns, always ColumnCount
func (f *Field) Len() int {
	return len(f.columns)
}

// Columns returns a read-only copy of the columns
func (f *Field) Columns() []Column {
	out := make([]Column, len(f.columns))
	for i, col := range f.columns {
		out[i] = col.clone()
	}
	return out
}

// Column returns a read-only copy of column i, panics if i is out of range
func (f *Field) Column(i int) Column {
	return f.columns[i].clone()
}

// AddCard plays c onto side's formation in column
// Column and side are caller preconditions: an invalid value panics
func (f *Field) AddCard(column int, side Side, c card.Card) {
	if column < 0 || column >= len(f.columns) {
		panic(fmt.Sprintf("board: column %d out of range [0,%d)", column, len(f.columns)))
	}
	if side != North && side != South {
		panic(fmt.Sprintf("board: invalid side %d", side))
	}
	formation := &f.columns[column].formations[side]
	formation.cards = append(formation.cards, c)
}

// ClaimFlag moves column's flag from Unclaimed to Claimed
func (f *Field) ClaimFlag(column int) error {
	if column < 0 || column >= len(f.columns) {
		panic(fmt.Sprintf("board: column %d out of range [0,%d)", column, len(f.columns)))
	}
	if f.columns[column].flag == Claimed {
		return fmt.Errorf("column %d: %w", column, ErrClaimed)
	}
	f.columns[column].flag = Claimed
	return nil
}

func (c Column) clone() Column {
	out := Column{flag: c.flag}
	for i, formation := range c.formations {
		out.formations[i] = Formation{cards: slices.Clone(formation.cards)}
	}
	return out
}
