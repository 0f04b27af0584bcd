package tui

import (
	"bytes"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-showdown/internal/dealer"
	"github.com/lox/holdem-showdown/internal/deck"
	"github.com/lox/holdem-showdown/internal/display"
	"github.com/lox/holdem-showdown/internal/evaluator"
	"github.com/lox/holdem-showdown/internal/randutil"
)

func newModel(t *testing.T, opts ...Option) *Model {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
	var buf bytes.Buffer
	opts = append([]Option{WithPrinter(display.New(&buf, display.WithColor(false)))}, opts...)
	return New(logger, dealer.New(logger), randutil.New(42), opts...)
}

func press(m *Model, key tea.KeyMsg) tea.Cmd {
	_, cmd := m.Update(key)
	return cmd
}

func TestEnterDealsShowdown(t *testing.T) {
	m := newModel(t)

	press(m, tea.KeyMsg{Type: tea.KeyEnter})

	require.NoError(t, m.Err())
	assert.Equal(t, 1, m.Tally().Hands)
	assert.Equal(t, deck.Size-dealer.CardsPerShowdown, m.deck.Remaining())
	require.NotEmpty(t, m.History())
	assert.True(t, strings.HasPrefix(m.History()[0], "Showdown "))
}

func TestDealReshufflesWhenDeckRunsLow(t *testing.T) {
	m := newModel(t)

	for range 10 {
		require.NoError(t, m.Deal())
		assert.GreaterOrEqual(t, m.deck.Remaining(), deck.Size%dealer.CardsPerShowdown)
	}
	assert.Equal(t, 10, m.Tally().Hands)
}

func TestTypedCardsAreDecided(t *testing.T) {
	m := newModel(t)

	for _, r := range "2c7d 9h9s 9c3h3dKhAc" {
		press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	assert.Equal(t, "2c7d 9h9s 9c3h3dKhAc", m.input.Value())

	press(m, tea.KeyMsg{Type: tea.KeyEnter})

	require.NoError(t, m.Err())
	assert.Empty(t, m.input.Value())
	assert.Equal(t, 1, m.Tally().WinsB)
	assert.Equal(t, 1, m.Tally().Categories[evaluator.FullHouse])
	assert.Equal(t, "Player B wins with a Full House!", m.History()[len(m.History())-1])
	assert.Equal(t, deck.Size, m.deck.Remaining())
}

func TestSubmitRejectsBadInput(t *testing.T) {
	m := newModel(t)

	assert.ErrorIs(t, m.Submit("AsKs"), ErrBadInput)
	assert.ErrorIs(t, m.Submit("AsKs 2h3h TsJsQs4cXx"), deck.ErrInvalidCard)
	assert.ErrorIs(t, m.Submit("AsAs 2h3h TsJsQs4c5d"), dealer.ErrInvalidShowdown)
	assert.Zero(t, m.Tally().Hands)
	assert.Empty(t, m.History())
}

func TestExplainAddsSteps(t *testing.T) {
	m := newModel(t, WithExplain(true))

	require.NoError(t, m.Submit("2c7d9h9s9c3h3dKhAc"))
	require.Greater(t, len(m.History()), 4)
	assert.Equal(t, "  Royal Flush      -", m.History()[0])
	assert.Equal(t, "  Full House       Player B", m.History()[3])

	press(m, tea.KeyMsg{Type: tea.KeyCtrlE})
	require.NoError(t, m.Submit("2c7d9h9s9c3h3dKhAc"))
	// a blank separator then straight into the showdown block
	n := len(m.History())
	assert.Contains(t, m.History(), "")
	assert.Equal(t, "Player B wins with a Full House!", m.History()[n-1])
}

func TestTabSwitchesFocus(t *testing.T) {
	m := newModel(t)
	require.Equal(t, 1, m.focusedPane)

	press(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 0, m.focusedPane)
	assert.False(t, m.input.Focused())

	// enter in the log pane does nothing
	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Zero(t, m.Tally().Hands)

	press(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 1, m.focusedPane)
	assert.True(t, m.input.Focused())
}

func TestQuit(t *testing.T) {
	m := newModel(t)

	cmd := press(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.NotNil(t, cmd)
	assert.True(t, m.quitting)
	assert.Empty(t, m.View())
}

func TestView(t *testing.T) {
	m := newModel(t)
	assert.Equal(t, "Loading...", m.View())

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	require.NoError(t, m.Submit("AsKs2h3hTsJsQs4c5d"))

	view := m.View()
	assert.Contains(t, view, "1 showdowns")
	assert.Contains(t, view, "Player A wins with a Royal Flush!")
	assert.Contains(t, view, "Explain: off")
}
