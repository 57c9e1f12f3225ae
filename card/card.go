// Package card defines Battle Line card values and the containers that hold them.
package card

import (
	"errors"
	"fmt"
)

// MinTroopValue and MaxTroopValue bound a troop card's face value
const (
	MinTroopValue = 1
	MaxTroopValue = 10
)

// ErrOutOfRange is returned for troop values outside [MinTroopValue, MaxTroopValue]
var ErrOutOfRange = errors.New("troop value out of range")

// TroopValue is a face value between 1 and 10
// The zero value is not a valid troop value; use NewTroopValue
type TroopValue struct {
	value uint8
}

// NewTroopValue validates v
func NewTroopValue(v int) (TroopValue, error) {
	if v < MinTroopValue || v > MaxTroopValue {
		return TroopValue{}, fmt.Errorf("%w: expected %d-%d, got %d", ErrOutOfRange, MinTroopValue, MaxTroopValue, v)
	}
	return TroopValue{value: uint8(v)}, nil
}

// MustTroopValue is NewTroopValue for values known to be valid, panics otherwise
func MustTroopValue(v int) TroopValue {
	tv, err := NewTroopValue(v)
	if err != nil {
		panic(err)
	}
	return tv
}

// Value returns the face value
func (v TroopValue) Value() uint8 {
	return v.value
}

// TroopColor is one of the six troop suits
type TroopColor uint8

const (
	Red TroopColor = iota
	Green
	Blue
	Yellow
	Orange
	Purple
)

// TroopColorCount is the number of suits
const TroopColorCount = 6

var troopColorNames = [TroopColorCount]string{"red", "green", "blue", "yellow", "orange", "purple"}

// TroopColors returns all suits in declaration order
func TroopColors() []TroopColor {
	return []TroopColor{Red, Green, Blue, Yellow, Orange, Purple}
}

// Valid reports whether c is one of the six suits
func (c TroopColor) Valid() bool {
	return c < TroopColorCount
}

func (c TroopColor) String() string {
	if !c.Valid() {
		return fmt.Sprintf("TroopColor(%d)", uint8(c))
	}
	return troopColorNames[c]
}

// Card is either a Tactics or a Troop card
// The set is closed: isCard is unexported so no other package can add a kind
type Card interface {
	isCard()
	fmt.Stringer
}

// Tactics is a tactics card, carries no payload
type Tactics struct{}

// Troop is a numbered, colored troop card
type Troop struct {
	Value TroopValue
	Color TroopColor
}

func (Tactics) isCard() {}
func (Troop) isCard()   {}

func (Tactics) String() string {
	return "tactics"
}

func (t Troop) String() string {
	return fmt.Sprintf("%s %d", t.Color, t.Value.Value())
}
