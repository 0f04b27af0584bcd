// Package display renders cards, showdowns and tallies for the terminal.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/holdem-showdown/internal/dealer"
	"github.com/lox/holdem-showdown/internal/deck"
	"github.com/lox/holdem-showdown/internal/evaluator"
)

// Printer writes formatted output to w
type Printer struct {
	w        io.Writer
	renderer *lipgloss.Renderer
	styles   Styles
	explain  bool
}

// Option configures a Printer
type Option func(*Printer)

// WithColor turns colour on or off. Colour is detected from the writer by
// default.
func WithColor(enabled bool) Option {
	return func(p *Printer) {
		if !enabled {
			p.renderer.SetColorProfile(termenv.Ascii)
		}
	}
}

// WithExplain prints every category step of a showdown
func WithExplain(enabled bool) Option {
	return func(p *Printer) {
		p.explain = enabled
	}
}

// New creates a printer writing to w
func New(w io.Writer, opts ...Option) *Printer {
	p := &Printer{
		w:        w,
		renderer: lipgloss.NewRenderer(w),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.styles = NewStyles(p.renderer)
	return p
}

// Styles returns the printer's styles
func (p *Printer) Styles() Styles {
	return p.styles
}

// Card renders a card in short form, e.g. "A♠", coloured by suit
func (p *Printer) Card(c deck.Card) string {
	switch {
	case !c.Valid():
		return p.styles.Unknown.Render("??")
	case c.IsRed():
		return p.styles.RedCard.Render(c.Short())
	default:
		return p.styles.BlackCard.Render(c.Short())
	}
}

// Cards renders cards separated by spaces
func (p *Printer) Cards(cards []deck.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = p.Card(c)
	}
	return strings.Join(parts, " ")
}

// Board renders five community cards split into flop, turn and river
func (p *Printer) Board(board []deck.Card) string {
	if len(board) != dealer.BoardCards {
		return p.Cards(board)
	}
	return p.Cards(board[:3]) + "  " + p.Card(board[3]) + "  " + p.Card(board[4])
}

// Outcome renders a decision sentence in the winner's style
func (p *Printer) Outcome(d evaluator.Decision) string {
	if d.Tie() {
		return p.styles.Tie.Render(d.Message())
	}
	return p.styles.Winner.Render(d.Message())
}

// FormatShowdown renders a showdown as a block of lines
func (p *Printer) FormatShowdown(s dealer.Showdown) string {
	var b strings.Builder
	header := "Showdown"
	if s.ID != "" {
		header += " " + s.ID
	}
	fmt.Fprintln(&b, p.styles.Header.Render(header))
	fmt.Fprintf(&b, "  %s  %s\n", p.styles.Label.Render("Player A"), p.Hole(s.HoleA[:]))
	fmt.Fprintf(&b, "  %s  %s\n", p.styles.Label.Render("Player B"), p.Hole(s.HoleB[:]))
	fmt.Fprintf(&b, "  %s     %s\n", p.styles.Label.Render("Board"), p.Board(s.Board[:]))

	d := s.Decision
	if d.Category == evaluator.HighCard {
		fmt.Fprintf(&b, "  %s %s vs %s\n", p.styles.Muted.Render("High cards"), p.Card(d.HighA), p.Card(d.HighB))
	}
	fmt.Fprint(&b, p.Outcome(d))
	if d.Contested {
		fmt.Fprint(&b, p.styles.Muted.Render(fmt.Sprintf(" (both hold %s; seat decides)", d.Category.Phrase())))
	}
	b.WriteString("\n")
	return b.String()
}

// Showdown prints a showdown
func (p *Printer) Showdown(s dealer.Showdown) {
	fmt.Fprint(p.w, p.FormatShowdown(s))
}

// FormatStep renders one evaluation step
func (p *Printer) FormatStep(step evaluator.Step) string {
	name := fmt.Sprintf("%-16s", step.Category)
	if step.Category == evaluator.HighCard {
		result := "tie"
		if step.Matched != evaluator.NoSide {
			result = step.Matched.String()
		}
		return fmt.Sprintf("  %s %s vs %s: %s", p.styles.Category.Render(name), p.Card(step.HighA), p.Card(step.HighB), result)
	}
	if step.Matched == evaluator.NoSide {
		return fmt.Sprintf("  %s %s", p.styles.Category.Render(name), p.styles.Muted.Render("-"))
	}
	return fmt.Sprintf("  %s %s", p.styles.Category.Render(name), step.Matched)
}

// Reporter returns a reporter printing each step, or nil unless the printer
// explains showdowns
func (p *Printer) Reporter() evaluator.Reporter {
	if !p.explain {
		return nil
	}
	return evaluator.ReporterFunc(func(step evaluator.Step) {
		fmt.Fprintln(p.w, p.FormatStep(step))
	})
}

// Classification prints every category a hand matches
func (p *Printer) Classification(hand []deck.Card) {
	set := evaluator.Classify(hand)
	fmt.Fprintf(p.w, "%s %s\n", p.styles.Label.Render("Cards:  "), p.Cards(hand))
	fmt.Fprintf(p.w, "%s %s\n", p.styles.Label.Render("Best:   "), p.styles.Category.Render(set.Best().String()))
	fmt.Fprintf(p.w, "%s %s\n", p.styles.Label.Render("Matches:"), set)
	fmt.Fprintf(p.w, "%s %s\n", p.styles.Label.Render("High:   "), p.Card(evaluator.HighestCard(hand)))
}

func (p *Printer) start(hole []deck.Card) string {
	return p.styles.Percent.Render(fmt.Sprintf("%s %3.0f%%", deck.StartingHandKey(hole), deck.StartingHandPercentile(hole)*100))
}
