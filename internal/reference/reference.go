// Package reference compares showdown decisions with a full 7-card
// evaluator that breaks ties on kickers.
package reference

import (
	"fmt"

	"github.com/paulhankin/poker"

	"github.com/lox/holdem-showdown/internal/dealer"
	"github.com/lox/holdem-showdown/internal/deck"
	"github.com/lox/holdem-showdown/internal/evaluator"
)

// Convert maps a card onto the reference evaluator's representation
func Convert(c deck.Card) (poker.Card, error) {
	var (
		zero poker.Card
		suit poker.Suit
	)
	switch c.Suit {
	case deck.Clubs:
		suit = poker.Club
	case deck.Diamonds:
		suit = poker.Diamond
	case deck.Hearts:
		suit = poker.Heart
	case deck.Spades:
		suit = poker.Spade
	default:
		return zero, fmt.Errorf("card %q has no suit", c)
	}

	if !c.Rank.Valid() {
		return zero, fmt.Errorf("card %q has no rank", c)
	}
	// Aces are rank 1 to the reference evaluator
	rank := poker.Rank(c.Rank)
	if c.Rank == deck.Ace {
		rank = 1
	}

	pc, err := poker.MakeCard(suit, rank)
	if err != nil {
		return zero, fmt.Errorf("converting %q: %w", c, err)
	}
	return pc, nil
}

func seven(hole, board []deck.Card) ([7]poker.Card, error) {
	var hand [7]poker.Card
	if len(hole)+len(board) != len(hand) {
		return hand, fmt.Errorf("need 7 cards, got %d", len(hole)+len(board))
	}
	for i, c := range append(hole[:len(hole):len(hole)], board...) {
		pc, err := Convert(c)
		if err != nil {
			return hand, err
		}
		hand[i] = pc
	}
	return hand, nil
}

// FullRank scores the best five of the seven cards formed by hole and
// board. Higher scores are stronger; equal scores split the pot.
func FullRank(hole, board []deck.Card) (int16, error) {
	hand, err := seven(hole, board)
	if err != nil {
		return 0, err
	}
	return poker.Eval7(&hand), nil
}

// Describe names the best hand the reference evaluator finds
func Describe(hole, board []deck.Card) (string, error) {
	hand, err := seven(hole, board)
	if err != nil {
		return "", err
	}
	return poker.Describe(hand[:])
}

// Winner settles a showdown with full kicker comparison
func Winner(s dealer.Showdown) (evaluator.Side, error) {
	a, err := FullRank(s.HoleA[:], s.Board[:])
	if err != nil {
		return evaluator.NoSide, fmt.Errorf("player A: %w", err)
	}
	b, err := FullRank(s.HoleB[:], s.Board[:])
	if err != nil {
		return evaluator.NoSide, fmt.Errorf("player B: %w", err)
	}

	switch {
	case a > b:
		return evaluator.PlayerA, nil
	case b > a:
		return evaluator.PlayerB, nil
	default:
		return evaluator.NoSide, nil
	}
}
