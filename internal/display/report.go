package display

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/lox/holdem-showdown/internal/deck"
	"github.com/lox/holdem-showdown/internal/evaluator"
	"github.com/lox/holdem-showdown/internal/reference"
	"github.com/lox/holdem-showdown/internal/statistics"
)

func (p *Printer) percent(f float64) string {
	return p.styles.Percent.Render(fmt.Sprintf("%5.1f%%", f*100))
}

// Tally prints win rates and category shares
func (p *Printer) Tally(t *statistics.Tally, elapsed time.Duration) {
	fmt.Fprintln(p.w, p.styles.Header.Render(fmt.Sprintf("%d showdowns", t.Hands)))

	w := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	for _, side := range []evaluator.Side{evaluator.PlayerA, evaluator.PlayerB} {
		lo, hi := t.ConfidenceInterval95(side)
		fmt.Fprintf(w, "  %s\t%d\t%s\t%s\n", side, t.Wins(side), p.percent(t.WinRate(side)),
			p.styles.Muted.Render(fmt.Sprintf("95%% CI %.1f-%.1f%%", lo*100, hi*100)))
	}
	fmt.Fprintf(w, "  Ties\t%d\t%s\t\n", t.Ties, p.percent(t.TieRate()))
	fmt.Fprintf(w, "  Seat wins\t%d\t%s\t\n", t.Contested, p.percent(t.ContestedRate()))
	_ = w.Flush()

	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, p.styles.Header.Render("Settled by"))
	w = tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	for _, c := range evaluator.Categories {
		fmt.Fprintf(w, "  %s\t%d\t%s\n", p.styles.Category.Render(c.String()), t.Categories[c], p.percent(t.CategoryShare(c)))
	}
	_ = w.Flush()

	if elapsed > 0 {
		fmt.Fprintf(p.w, "\n%s\n", p.styles.Muted.Render(fmt.Sprintf("Completed in %v", elapsed.Round(time.Millisecond))))
	}
}

// Audit prints how often decisions disagree with the full evaluator
func (p *Printer) Audit(r *reference.Report) {
	fmt.Fprintln(p.w, p.styles.Header.Render(fmt.Sprintf("Audited %d showdowns", r.Hands)))

	w := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Agree\t%d\t%s\n", r.Agreements, p.percent(r.AgreementRate()))
	for _, kind := range []reference.Kind{reference.Kicker, reference.Split, reference.Reversal} {
		share := 0.0
		if r.Hands > 0 {
			share = float64(r.ByKind[kind]) / float64(r.Hands)
		}
		fmt.Fprintf(w, "  %s\t%d\t%s\n", kind, r.ByKind[kind], p.percent(share))
	}
	_ = w.Flush()

	if r.Disagreements == 0 {
		return
	}

	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, p.styles.Header.Render("Disagreements by category"))
	w = tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	for _, c := range evaluator.Categories {
		if r.ByCategory[c] == 0 {
			continue
		}
		fmt.Fprintf(w, "  %s\t%d\n", p.styles.Category.Render(c.String()), r.ByCategory[c])
	}
	_ = w.Flush()

	if len(r.Examples) == 0 {
		return
	}
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, p.styles.Header.Render("Examples"))
	for _, ex := range r.Examples {
		s := ex.Showdown
		full := "tie"
		if ex.Full != evaluator.NoSide {
			full = ex.Full.String()
		}
		fmt.Fprintf(p.w, "  %s | %s | %s  %s, full evaluator: %s (%s)\n",
			p.Cards(s.HoleA[:]), p.Cards(s.HoleB[:]), p.Board(s.Board[:]),
			s.Decision.Message(), full, ex.Kind)
	}
}

// Hole is a convenience for rendering a two-card holding with its class
func (p *Printer) Hole(hole []deck.Card) string {
	return p.Cards(hole) + " " + p.start(hole)
}
