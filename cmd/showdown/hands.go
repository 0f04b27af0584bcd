package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sanity-io/litter"

	"github.com/lox/holdem-showdown/internal/dealer"
	"github.com/lox/holdem-showdown/internal/deck"
	"github.com/lox/holdem-showdown/internal/randutil"
	"github.com/lox/holdem-showdown/internal/reference"
)

// DealCmd deals random showdowns
type DealCmd struct {
	Count int  `short:"n" default:"1" help:"Number of showdowns to deal"`
	JSON  bool `help:"Print showdowns as JSON lines"`
	Dump  bool `help:"Dump each showdown as a Go value"`
}

func (c *DealCmd) Run(g *Globals) error {
	e, err := g.setup(os.Stdout)
	if err != nil {
		return err
	}
	if c.Count < 1 {
		return fmt.Errorf("count must be positive, got %d", c.Count)
	}

	dl := dealer.New(e.logger)
	d := deck.NewDeck(randutil.New(e.seed))
	enc := json.NewEncoder(os.Stdout)
	reporter := e.printer.Reporter()
	if c.JSON {
		reporter = nil
	}

	for i := range c.Count {
		if d.Remaining() < dealer.CardsPerShowdown {
			e.logger.Debug("Reshuffling deck", "remaining", d.Remaining())
			d.Reset()
		}
		if i > 0 && !c.JSON {
			fmt.Println()
		}

		s, err := dl.Play(d, reporter)
		if err != nil {
			return err
		}

		switch {
		case c.JSON:
			if err := enc.Encode(s); err != nil {
				return err
			}
		case c.Dump:
			litter.Dump(s)
		default:
			e.printer.Showdown(s)
		}
	}
	return nil
}

// DecideCmd decides a showdown from cards given on the command line
type DecideCmd struct {
	HoleA string `arg:"" name:"hole-a" help:"Player A's hole cards, e.g. AsKs or 'Ace of Spades, King of Spades'"`
	HoleB string `arg:"" name:"hole-b" help:"Player B's hole cards"`
	Board string `arg:"" help:"The five community cards"`
	Full  bool   `help:"Also describe both hands with the full evaluator"`
	JSON  bool   `help:"Print the showdown as JSON"`
}

func (c *DecideCmd) Run(g *Globals) error {
	e, err := g.setup(os.Stdout)
	if err != nil {
		return err
	}

	var groups [3][]deck.Card
	for i, s := range []string{c.HoleA, c.HoleB, c.Board} {
		if groups[i], err = parseCards(s); err != nil {
			return err
		}
	}

	s, err := dealer.New(e.logger).Build(groups[0], groups[1], groups[2], e.printer.Reporter())
	if err != nil {
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	}
	e.printer.Showdown(s)

	if !c.Full {
		return nil
	}
	fmt.Println()
	for _, hand := range []struct {
		name string
		hole []deck.Card
	}{
		{"Player A", s.HoleA[:]},
		{"Player B", s.HoleB[:]},
	} {
		desc, err := reference.Describe(hand.hole, s.Board[:])
		if err != nil {
			return err
		}
		fmt.Printf("%s: %s\n", hand.name, desc)
	}
	full, err := reference.Winner(s)
	if err != nil {
		return err
	}
	fmt.Printf("Full evaluator: %s (%s)\n", full, reference.Classify(s.Decision.Winner, full))
	return nil
}

// ClassifyCmd lists the categories a set of cards matches
type ClassifyCmd struct {
	Cards []string `arg:"" help:"Cards in compact notation or comma separated identifiers"`
}

func (c *ClassifyCmd) Run(g *Globals) error {
	e, err := g.setup(os.Stdout)
	if err != nil {
		return err
	}

	var hand []deck.Card
	for _, s := range c.Cards {
		cards, err := parseCards(s)
		if err != nil {
			return err
		}
		hand = append(hand, cards...)
	}

	e.printer.Classification(hand)
	if len(hand) == dealer.HoleCards+dealer.BoardCards {
		desc, err := reference.Describe(hand[:dealer.HoleCards], hand[dealer.HoleCards:])
		if err != nil {
			return err
		}
		fmt.Printf("Full:    %s\n", desc)
	}
	return nil
}
