package deck

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
)

// Size is the number of cards in a standard deck
const Size = 52

// ErrDeckExhausted is returned when a deal is attempted on an empty deck
var ErrDeckExhausted = errors.New("deck exhausted")

// Deck represents a deck of playing cards. The top of the deck is the end
// of the slice, so dealing pops from the back.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// NewDeck creates a standard 52-card deck shuffled with rng
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{
		cards: Standard(),
		rng:   rng,
	}
	d.Shuffle()
	return d
}

// FromCards creates a deck that deals the given cards in their existing
// order, last card first. The slice is copied.
func FromCards(cards []Card) *Deck {
	c := make([]Card, len(cards))
	copy(c, cards)
	return &Deck{cards: c}
}

// Standard returns the 52 cards of a fresh deck in suit-major order
func Standard() []Card {
	cards := make([]Card, 0, Size)
	for _, suit := range Suits {
		for _, rank := range Ranks {
			cards = append(cards, NewCard(rank, suit))
		}
	}
	return cards
}

// Shuffle randomizes the order of the remaining cards (Fisher-Yates).
// A deck without a random source is left untouched.
func (d *Deck) Shuffle() {
	if d.rng == nil {
		return
	}
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal removes and returns the top card from the deck
func (d *Deck) Deal() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrDeckExhausted
	}

	last := len(d.cards) - 1
	card := d.cards[last]
	d.cards = d.cards[:last]
	return card, nil
}

// DealN deals n cards from the deck. Nothing is dealt if fewer than n
// cards remain.
func (d *Deck) DealN(n int) ([]Card, error) {
	if n > len(d.cards) {
		return nil, fmt.Errorf("deal %d with %d remaining: %w", n, len(d.cards), ErrDeckExhausted)
	}

	cards := make([]Card, n)
	for i := range cards {
		cards[i], _ = d.Deal()
	}
	return cards, nil
}

// Burn discards the top card
func (d *Deck) Burn() (Card, error) {
	card, err := d.Deal()
	if err != nil {
		return Card{}, fmt.Errorf("burn: %w", err)
	}
	return card, nil
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Peek returns the top card without removing it from the deck
func (d *Deck) Peek() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	return d.cards[len(d.cards)-1], true
}

// Reset restores the deck to a full 52-card deck and shuffles it
func (d *Deck) Reset() {
	d.cards = append(d.cards[:0], Standard()...)
	d.Shuffle()
}
