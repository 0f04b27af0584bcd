package main

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/holdem-showdown/internal/dealer"
	"github.com/lox/holdem-showdown/internal/randutil"
	"github.com/lox/holdem-showdown/internal/server"
	"github.com/lox/holdem-showdown/internal/tui"
)

// ServeCmd runs the WebSocket server
type ServeCmd struct {
	Addr     string        `help:"Listen address (defaults to the config file)"`
	Interval time.Duration `help:"Broadcast a showdown this often (0 disables)"`
}

func (c *ServeCmd) Run(g *Globals) error {
	e, err := g.setup(os.Stdout)
	if err != nil {
		return err
	}

	addr := c.Addr
	if addr == "" {
		addr = e.cfg.ServerAddress()
	}
	interval := c.Interval
	if interval == 0 {
		if interval, err = e.cfg.BroadcastInterval(); err != nil {
			return err
		}
	}

	ctx, cancel := signalContext(e.logger)
	defer cancel()

	s := server.New(server.Config{
		Addr:     addr,
		Interval: interval,
		Seed:     e.seed,
		Logger:   e.logger,
		Clock:    e.clock,
	})
	return s.Run(ctx)
}

// PlayCmd opens the interactive terminal
type PlayCmd struct{}

func (c *PlayCmd) Run(g *Globals) error {
	e, err := g.setup(os.Stdout)
	if err != nil {
		return err
	}

	// Log output would draw over the alternate screen
	logger := log.NewWithOptions(io.Discard, log.Options{})

	m := tui.New(logger, dealer.New(logger), randutil.New(e.seed),
		tui.WithPrinter(e.printer),
		tui.WithExplain(g.Explain || e.cfg.Display.Explain),
	)
	return tui.Run(m)
}
