package display

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-showdown/internal/dealer"
	"github.com/lox/holdem-showdown/internal/deck"
	"github.com/lox/holdem-showdown/internal/evaluator"
	"github.com/lox/holdem-showdown/internal/reference"
	"github.com/lox/holdem-showdown/internal/statistics"
)

func plain(buf *bytes.Buffer, opts ...Option) *Printer {
	return New(buf, append([]Option{WithColor(false)}, opts...)...)
}

func build(t *testing.T, holeA, holeB, board string) dealer.Showdown {
	t.Helper()
	dl := dealer.New(log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel}))
	s, err := dl.Build(deck.MustParseCards(holeA), deck.MustParseCards(holeB), deck.MustParseCards(board), nil)
	require.NoError(t, err)
	return s
}

func TestCards(t *testing.T) {
	var buf bytes.Buffer
	p := plain(&buf)

	assert.Equal(t, "A♠ T♥", p.Cards(deck.MustParseCards("AsTh")))
	assert.Equal(t, "??", p.Card(deck.Card{}))
	assert.Equal(t, "T♠ J♠ Q♠  4♣  5♦", p.Board(deck.MustParseCards("TsJsQs4c5d")))
	assert.Equal(t, "T♠ J♠", p.Board(deck.MustParseCards("TsJs")))
	assert.Equal(t, "A♠ K♠ AKs  98%", p.Hole(deck.MustParseCards("AsKs")))
}

func TestShowdown(t *testing.T) {
	var buf bytes.Buffer
	p := plain(&buf)

	s := build(t, "AsKs", "2h3h", "TsJsQs4c5d")
	p.Showdown(s)

	out := buf.String()
	assert.Contains(t, out, "Showdown "+s.ID)
	assert.Contains(t, out, "Player A  A♠ K♠")
	assert.Contains(t, out, "Player B  2♥ 3♥")
	assert.Contains(t, out, "Board     T♠ J♠ Q♠  4♣  5♦")
	assert.True(t, strings.HasSuffix(out, "Player A wins with a Royal Flush!\n"))
	assert.NotContains(t, out, "High cards")
	assert.NotContains(t, out, "\x1b[")
}

func TestShowdownTie(t *testing.T) {
	var buf bytes.Buffer
	p := plain(&buf)

	out := p.FormatShowdown(build(t, "As7d", "Ah8c", "2c4h9sJdKc"))
	assert.Contains(t, out, "High cards A♠ vs A♥")
	assert.Contains(t, out, "It's a tie based on High Cards!")
}

func TestShowdownContested(t *testing.T) {
	var buf bytes.Buffer
	p := plain(&buf)

	out := p.FormatShowdown(build(t, "2c3d", "AsKd", "4h7h9hJhQh"))
	assert.Contains(t, out, "Player A wins with a Flush! (both hold a Flush; seat decides)")
}

func TestReporter(t *testing.T) {
	var buf bytes.Buffer
	assert.Nil(t, plain(&buf).Reporter())

	p := plain(&buf, WithExplain(true))
	s := build(t, "2c7d", "9h9s", "9c3h3dKhAc")
	s.Decide(p.Reporter())

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "  Royal Flush      -", lines[0])
	assert.Equal(t, "  Full House       Player B", lines[3])
}

func TestFormatHighCardStep(t *testing.T) {
	var buf bytes.Buffer
	p := plain(&buf)

	step := evaluator.Step{
		Category: evaluator.HighCard,
		Matched:  evaluator.PlayerB,
		HighA:    deck.NewCard(deck.King, deck.Clubs),
		HighB:    deck.NewCard(deck.Ace, deck.Hearts),
	}
	assert.Equal(t, "  High Card        K♣ vs A♥: Player B", p.FormatStep(step))

	step.Matched = evaluator.NoSide
	assert.True(t, strings.HasSuffix(p.FormatStep(step), ": tie"))
}

func TestClassification(t *testing.T) {
	var buf bytes.Buffer
	plain(&buf).Classification(deck.MustParseCards("9h9s9c3h3dKhAc"))

	out := buf.String()
	assert.Contains(t, out, "Best:    Full House")
	assert.Contains(t, out, "Matches: [Full House, Three of a Kind, Two Pair, One Pair, High Card]")
	assert.Contains(t, out, "High:    A♣")
}

func TestTally(t *testing.T) {
	var tally statistics.Tally
	tally.Add(evaluator.Decision{Winner: evaluator.PlayerA, Category: evaluator.Flush})
	tally.Add(evaluator.Decision{Winner: evaluator.PlayerB, Category: evaluator.OnePair})
	tally.Add(evaluator.Decision{Category: evaluator.HighCard})
	tally.Add(evaluator.Decision{Winner: evaluator.PlayerA, Category: evaluator.OnePair, Contested: true})

	var buf bytes.Buffer
	plain(&buf).Tally(&tally, 1500*time.Millisecond)

	out := buf.String()
	assert.Contains(t, out, "4 showdowns")
	assert.Contains(t, out, "Player A")
	assert.Contains(t, out, " 50.0%")
	assert.Contains(t, out, "Ties")
	assert.Contains(t, out, "Seat wins")
	assert.Contains(t, out, "Royal Flush")
	assert.Contains(t, out, "Completed in 1.5s")
}

func TestAudit(t *testing.T) {
	report, err := reference.Audit([]dealer.Showdown{
		build(t, "AsKs", "2h3h", "TsJsQs4c5d"),
		build(t, "As7d", "Ah8c", "2c4h9sJdKc"),
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	plain(&buf).Audit(report)

	out := buf.String()
	assert.Contains(t, out, "Audited 2 showdowns")
	assert.Contains(t, out, "kicker")
	assert.Contains(t, out, "Disagreements by category")
	assert.Contains(t, out, "It's a tie based on High Cards!, full evaluator: Player B (kicker)")
}
