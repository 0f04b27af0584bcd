// Package tui is an interactive terminal for dealing and deciding showdowns.
package tui

import (
	"errors"
	"fmt"
	"io"
	rand "math/rand/v2"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/holdem-showdown/internal/dealer"
	"github.com/lox/holdem-showdown/internal/deck"
	"github.com/lox/holdem-showdown/internal/display"
	"github.com/lox/holdem-showdown/internal/evaluator"
	"github.com/lox/holdem-showdown/internal/statistics"
)

const sidebarWidth = 28

// ErrBadInput is returned when typed cards do not describe a showdown
var ErrBadInput = errors.New("expected nine cards: two for A, two for B, five on the board")

// Model is the bubbletea model behind the play command
type Model struct {
	logger  *log.Logger
	dealer  *dealer.Dealer
	deck    *deck.Deck
	printer *display.Printer
	explain bool

	history []string
	tally   statistics.Tally
	lastErr error

	logViewport viewport.Model
	input       textinput.Model
	focusedPane int // 0 = log, 1 = input

	width    int
	height   int
	quitting bool
}

// Option configures a Model
type Option func(*Model)

// WithPrinter renders cards with p. Output goes through the model, so the
// printer's writer is never used.
func WithPrinter(p *display.Printer) Option {
	return func(m *Model) {
		m.printer = p
	}
}

// WithExplain starts with step-by-step output turned on
func WithExplain(enabled bool) Option {
	return func(m *Model) {
		m.explain = enabled
	}
}

// New creates a model dealing from a deck shuffled by rng
func New(logger *log.Logger, dl *dealer.Dealer, rng *rand.Rand, opts ...Option) *Model {
	vp := viewport.New(10, 5)
	vp.SetContent("")

	ti := textinput.New()
	ti.Placeholder = "Enter to deal, or type nine cards (AsKs 2h3h TsJsQs4c5d)"
	ti.Focus()
	ti.CharLimit = 64
	ti.Width = 60
	ti.PromptStyle = lipgloss.NewStyle().Foreground(focusColor).Bold(true)
	ti.Prompt = "> "

	m := &Model{
		logger:      logger.WithPrefix("tui"),
		dealer:      dl,
		deck:        deck.NewDeck(rng),
		logViewport: vp,
		input:       ti,
		focusedPane: 1,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.printer == nil {
		m.printer = display.New(io.Discard)
	}
	return m
}

// History returns every line written to the log pane
func (m *Model) History() []string {
	return m.history
}

// Tally returns the running totals
func (m *Model) Tally() statistics.Tally {
	return m.tally
}

// Err returns the error from the last submission, if any
func (m *Model) Err() error {
	return m.lastErr
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logger.Debug("Updating dimensions", "width", m.width, "height", m.height)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Sequence(tea.ClearScreen, tea.Quit)
		case "tab":
			if m.focusedPane == 0 {
				m.focusedPane = 1
				cmds = append(cmds, m.input.Focus())
			} else {
				m.focusedPane = 0
				m.input.Blur()
			}
		case "ctrl+e":
			m.explain = !m.explain
		case "enter":
			if m.focusedPane == 1 {
				m.lastErr = m.Submit(m.input.Value())
				m.input.SetValue("")
			}
		case "up", "k":
			if m.focusedPane == 0 {
				m.logViewport.ScrollUp(1)
			}
		case "down", "j":
			if m.focusedPane == 0 {
				m.logViewport.ScrollDown(1)
			}
		case "home", "g":
			if m.focusedPane == 0 {
				m.logViewport.GotoTop()
			}
		case "end", "G":
			if m.focusedPane == 0 {
				m.logViewport.GotoBottom()
			}
		}
	}

	var cmd tea.Cmd
	_, isKey := msg.(tea.KeyMsg)
	if m.focusedPane == 1 {
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}
	// typed cards such as "Jd" must not scroll the log
	if m.focusedPane == 0 || !isKey {
		m.logViewport, cmd = m.logViewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// Submit deals a fresh showdown for an empty line, otherwise decides the
// nine cards typed as hole A, hole B and the board
func (m *Model) Submit(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return m.Deal()
	}

	cards, err := deck.ParseCards(line)
	if err != nil {
		return err
	}
	if len(cards) != 2*dealer.HoleCards+dealer.BoardCards {
		return ErrBadInput
	}

	var steps []string
	s, err := m.dealer.Build(cards[:2], cards[2:4], cards[4:], m.reporter(&steps))
	if err != nil {
		return err
	}
	m.record(s, steps)
	return nil
}

// Deal deals the next showdown, reshuffling when the deck runs low
func (m *Model) Deal() error {
	if m.deck.Remaining() < dealer.CardsPerShowdown {
		m.logger.Debug("Reshuffling deck", "remaining", m.deck.Remaining())
		m.deck.Reset()
	}

	var steps []string
	s, err := m.dealer.Play(m.deck, m.reporter(&steps))
	if err != nil {
		return err
	}
	m.record(s, steps)
	return nil
}

func (m *Model) reporter(steps *[]string) evaluator.Reporter {
	if !m.explain {
		return nil
	}
	return evaluator.ReporterFunc(func(step evaluator.Step) {
		*steps = append(*steps, m.printer.FormatStep(step))
	})
}

func (m *Model) record(s dealer.Showdown, steps []string) {
	m.tally.Add(s.Decision)
	if len(m.history) > 0 {
		m.history = append(m.history, "")
	}
	m.history = append(m.history, steps...)
	m.history = append(m.history, strings.Split(strings.TrimRight(m.printer.FormatShowdown(s), "\n"), "\n")...)
	m.logViewport.SetContent(strings.Join(m.history, "\n"))
	m.logViewport.GotoBottom()
	m.logger.Debug("Recorded showdown", "id", s.ID, "winner", s.Decision.Winner, "category", s.Decision.Category)
}

// View renders the model
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	actionContent := m.renderActionPane()
	actionHeight := lipgloss.Height(actionContent)

	actionStyle := paneStyle.
		Width(max(m.width-2, 1)).
		Height(max(actionHeight, 1))
	if m.focusedPane == 1 {
		actionStyle = actionStyle.BorderForeground(focusColor)
	}
	actionPane := actionStyle.Render(actionContent)

	paneHeight := max(m.height-actionHeight-4, 1)
	sidebarPane := paneStyle.
		Width(sidebarWidth).
		Height(paneHeight).
		Render(m.renderSidebar())

	m.logViewport.Width = max(m.width-sidebarWidth-4, 1)
	m.logViewport.Height = paneHeight

	logStyle := paneStyle.
		Width(m.logViewport.Width).
		Height(paneHeight)
	if m.focusedPane == 0 {
		logStyle = logStyle.BorderForeground(focusColor)
	}
	logPane := logStyle.Render(m.logViewport.View())

	top := lipgloss.JoinHorizontal(lipgloss.Top, logPane, sidebarPane)
	return lipgloss.JoinVertical(lipgloss.Top, top, actionPane)
}

func (m *Model) renderSidebar() string {
	styles := m.printer.Styles()
	t := &m.tally

	var b strings.Builder
	b.WriteString(styles.Header.Render(fmt.Sprintf("%d showdowns", t.Hands)))
	b.WriteString("\n\n")
	for _, side := range []evaluator.Side{evaluator.PlayerA, evaluator.PlayerB} {
		fmt.Fprintf(&b, "%-10s %4d %s\n", side, t.Wins(side), styles.Percent.Render(fmt.Sprintf("%5.1f%%", t.WinRate(side)*100)))
	}
	fmt.Fprintf(&b, "%-10s %4d %s\n", "Ties", t.Ties, styles.Percent.Render(fmt.Sprintf("%5.1f%%", t.TieRate()*100)))
	fmt.Fprintf(&b, "%-10s %4d\n", "Seat wins", t.Contested)
	b.WriteString("\n")

	explain := "off"
	if m.explain {
		explain = "on"
	}
	fmt.Fprintf(&b, "Explain: %s\n", explain)
	fmt.Fprintf(&b, "Deck:    %d cards\n", m.deck.Remaining())
	return b.String()
}

func (m *Model) renderActionPane() string {
	var b strings.Builder
	if m.lastErr != nil {
		b.WriteString(errorStyle.Render(m.lastErr.Error()))
		b.WriteString("\n")
	}
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.focusedPane == 0 {
		b.WriteString(helpStyle.Render("Log focused: ↑↓ scroll, Home/End, Tab to input"))
	} else {
		b.WriteString(helpStyle.Render("Enter to deal or decide • Ctrl+E explain • Tab to scroll log • Esc to quit"))
	}
	return b.String()
}

// Run starts the interactive program and blocks until the user quits
func Run(m *Model, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	_, err := tea.NewProgram(m, opts...).Run()
	return err
}
