package card

// Shuffler permutes n elements in place through swap
// Satisfied by *math/rand.Rand and *math/rand/v2.Rand
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// TroopDeckSize is the number of troop cards: every color at every value
const TroopDeckSize = TroopColorCount * MaxTroopValue

// Deck is a draw pile, drawn from the front
type Deck struct {
	cards []Card
}

// NewDeck returns a deck holding cards in the given order
func NewDeck(cards ...Card) *Deck {
	d := &Deck{cards: make([]Card, len(cards))}
	copy(d.cards, cards)
	return d
}

// NewTroopDeck builds the 60 troop cards and shuffles them with rng
func NewTroopDeck(rng Shuffler) *Deck {
	cards := make([]Card, 0, TroopDeckSize)
	for _, color := range TroopColors() {
		for v := MinTroopValue; v <= MaxTroopValue; v++ {
			cards = append(cards, Troop{Value: MustTroopValue(v), Color: color})
		}
	}

	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})

	return &Deck{cards: cards}
}

// Draw removes and returns the front card, false when the deck is empty
func (d *Deck) Draw() (Card, bool) {
	if len(d.cards) == 0 {
		return nil, false
	}
	c := d.cards[0]
	d.cards[0] = nil
	d.cards = d.cards[1:]
	return c, true
}

// Len returns the number of cards left
func (d *Deck) Len() int {
	return len(d.cards)
}
