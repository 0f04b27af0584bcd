// Package dealer deals heads-up showdowns from a deck and settles them.
package dealer

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/lox/holdem-showdown/internal/deck"
	"github.com/lox/holdem-showdown/internal/evaluator"
	"github.com/lox/holdem-showdown/internal/handid"
)

const (
	HoleCards  = 2
	BoardCards = 5
	burns      = 3

	// CardsPerShowdown is how many cards one showdown takes from the deck,
	// burns included
	CardsPerShowdown = 2*HoleCards + BoardCards + burns
)

// ErrInvalidShowdown is returned when caller-provided cards cannot form a
// showdown
var ErrInvalidShowdown = errors.New("invalid showdown")

// Showdown is one dealt heads-up hand and its outcome
type Showdown struct {
	ID       string                `json:"id"`
	HoleA    [HoleCards]deck.Card  `json:"hole_a"`
	HoleB    [HoleCards]deck.Card  `json:"hole_b"`
	Board    [BoardCards]deck.Card `json:"board"`
	Burned   []deck.Card           `json:"burned,omitempty"`
	Decision evaluator.Decision    `json:"decision"`
}

// HandA returns player A's hole cards followed by the board
func (s Showdown) HandA() []deck.Card {
	return append(s.HoleA[:len(s.HoleA):len(s.HoleA)], s.Board[:]...)
}

// HandB returns player B's hole cards followed by the board
func (s Showdown) HandB() []deck.Card {
	return append(s.HoleB[:len(s.HoleB):len(s.HoleB)], s.Board[:]...)
}

// Decide settles the showdown's cards again, reporting steps to r
func (s Showdown) Decide(r evaluator.Reporter) evaluator.Decision {
	var opts []evaluator.DecideOption
	if r != nil {
		opts = append(opts, evaluator.WithReporter(r))
	}
	return evaluator.Decide(s.HoleA[:], s.HoleB[:], s.Board[:], opts...)
}

// Dealer deals showdowns and assigns them IDs
type Dealer struct {
	logger *log.Logger
	ids    *handid.Generator
}

// Option configures a Dealer
type Option func(*Dealer)

// WithIDSource reads ID randomness from r
func WithIDSource(r io.Reader) Option {
	return func(d *Dealer) {
		d.ids = handid.NewGenerator(r)
	}
}

// New creates a dealer
func New(logger *log.Logger, opts ...Option) *Dealer {
	d := &Dealer{
		logger: logger.WithPrefix("dealer"),
		ids:    handid.NewGenerator(nil),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Deal deals and settles one showdown
func (dl *Dealer) Deal(d *deck.Deck) (Showdown, error) {
	return dl.Play(d, nil)
}

// Play deals one showdown from d and settles it, reporting every step to r
// (which may be nil). Hole cards go A, B, A, B; then burn, flop, burn,
// turn, burn, river. The deck is left untouched if it cannot cover the
// whole hand.
func (dl *Dealer) Play(d *deck.Deck, r evaluator.Reporter) (Showdown, error) {
	if d.Remaining() < CardsPerShowdown {
		return Showdown{}, fmt.Errorf("dealing showdown with %d cards remaining: %w", d.Remaining(), deck.ErrDeckExhausted)
	}

	var s Showdown
	for i := range HoleCards {
		s.HoleA[i], _ = d.Deal()
		s.HoleB[i], _ = d.Deal()
	}

	board := 0
	for _, street := range []int{3, 1, 1} {
		burned, _ := d.Burn()
		s.Burned = append(s.Burned, burned)
		for range street {
			s.Board[board], _ = d.Deal()
			board++
		}
	}

	return dl.settle(s, r)
}

// Build settles a showdown from caller-provided cards. Hole cards must
// number two each, the board five, and no card may repeat or be unknown.
func (dl *Dealer) Build(holeA, holeB, board []deck.Card, r evaluator.Reporter) (Showdown, error) {
	if len(holeA) != HoleCards || len(holeB) != HoleCards {
		return Showdown{}, fmt.Errorf("%w: need %d hole cards per player, got %d and %d",
			ErrInvalidShowdown, HoleCards, len(holeA), len(holeB))
	}
	if len(board) != BoardCards {
		return Showdown{}, fmt.Errorf("%w: need %d board cards, got %d", ErrInvalidShowdown, BoardCards, len(board))
	}

	seen := make(map[deck.Card]bool, 2*HoleCards+BoardCards)
	for _, cards := range [][]deck.Card{holeA, holeB, board} {
		for _, c := range cards {
			if !c.Valid() {
				return Showdown{}, fmt.Errorf("%w: unknown card %q", ErrInvalidShowdown, c)
			}
			if seen[c] {
				return Showdown{}, fmt.Errorf("%w: %s dealt twice", ErrInvalidShowdown, c)
			}
			seen[c] = true
		}
	}

	var s Showdown
	copy(s.HoleA[:], holeA)
	copy(s.HoleB[:], holeB)
	copy(s.Board[:], board)
	return dl.settle(s, r)
}

func (dl *Dealer) settle(s Showdown, r evaluator.Reporter) (Showdown, error) {
	id, err := dl.ids.Generate()
	if err != nil {
		return Showdown{}, err
	}
	s.ID = id
	s.Decision = s.Decide(r)

	dl.logger.Debug("Showdown settled",
		"id", s.ID,
		"hole_a", deck.Identifiers(s.HoleA[:]),
		"hole_b", deck.Identifiers(s.HoleB[:]),
		"board", deck.Identifiers(s.Board[:]),
		"winner", s.Decision.Winner,
		"category", s.Decision.Category)
	return s, nil
}
