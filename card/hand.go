package card

import (
	"errors"
	"fmt"
	"iter"
	"slices"
)

// ErrIndex is returned when a hand position does not exist
var ErrIndex = errors.New("hand index out of range")

// Hand is one player's cards, addressed by position in insertion order
type Hand struct {
	cards []Card
}

// NewHand returns an empty hand
func NewHand() *Hand {
	return &Hand{}
}

// Add appends a card
func (h *Hand) Add(c Card) {
	h.cards = append(h.cards, c)
}

// Remove takes the card at index i out of the hand, shifting later cards down
func (h *Hand) Remove(i int) (Card, error) {
	if i < 0 || i >= len(h.cards) {
		return nil, fmt.Errorf("%w: %d of %d", ErrIndex, i, len(h.cards))
	}
	c := h.cards[i]
	h.cards = slices.Delete(h.cards, i, i+1)
	return c, nil
}

// Card returns the card at index i
func (h *Hand) Card(i int) (Card, bool) {
	if i < 0 || i >= len(h.cards) {
		return nil, false
	}
	return h.cards[i], true
}

// Len returns the number of cards held
func (h *Hand) Len() int {
	return len(h.cards)
}

// Cards returns a copy of the held cards
func (h *Hand) Cards() []Card {
	return slices.Clone(h.cards)
}

// All iterates index/card pairs over a snapshot taken at call time
// Later Add/Remove calls do not affect an iterator already obtained
func (h *Hand) All() iter.Seq2[int, Card] {
	snapshot := slices.Clone(h.cards)
	return func(yield func(int, Card) bool) {
		for i, c := range snapshot {
			if !yield(i, c) {
				return
			}
		}
	}
}
