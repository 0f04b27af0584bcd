package evaluator

import "github.com/lox/holdem-showdown/internal/deck"

// HighestCard returns the card with the highest rank value in the hand. When
// several cards share the top rank the first one encountered wins; suits
// carry no value. An empty hand returns the zero Card, whose value is 0.
func HighestCard(hand []deck.Card) deck.Card {
	var best deck.Card
	for i, c := range hand {
		if i == 0 || c.Value() > best.Value() {
			best = c
		}
	}
	return best
}
