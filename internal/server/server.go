// Package server deals and settles showdowns over WebSocket.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gorilla/websocket"

	"github.com/lox/holdem-showdown/internal/dealer"
	"github.com/lox/holdem-showdown/internal/deck"
	"github.com/lox/holdem-showdown/internal/randutil"
	"github.com/lox/holdem-showdown/internal/statistics"
)

// Config configures a Server
type Config struct {
	Addr     string
	Interval time.Duration // deal and broadcast a showdown this often; zero disables
	Seed     int64
	Logger   *log.Logger
	Clock    quartz.Clock
}

// Server represents the WebSocket server
type Server struct {
	addr     string
	interval time.Duration
	upgrader websocket.Upgrader
	logger   *log.Logger
	clock    quartz.Clock
	dealer   *dealer.Dealer

	mu          sync.RWMutex
	connections map[*Connection]bool

	// Guards the shared deck and the running tally
	tableMu sync.Mutex
	deck    *deck.Deck
	tally   statistics.Tally
}

// New creates a new WebSocket server
func New(cfg Config) *Server {
	if cfg.Clock == nil {
		cfg.Clock = quartz.NewReal()
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	logger := cfg.Logger.WithPrefix("server")

	return &Server{
		addr:     cfg.Addr,
		interval: cfg.Interval,
		upgrader: websocket.Upgrader{
			CheckOrigin:     func(r *http.Request) bool { return true },
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		logger:      logger,
		clock:       cfg.Clock,
		dealer:      dealer.New(logger),
		connections: make(map[*Connection]bool),
		deck:        deck.NewDeck(randutil.New(cfg.Seed)),
	}
}

// Handler returns the HTTP handler serving /ws and /health
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/health", s.handleHealth)
	return mux
}

// Run serves until ctx is cancelled, then closes every connection
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	httpServer := &http.Server{Handler: s.Handler()}
	stop := s.StartBroadcast(ctx)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), writeWait)
		defer cancel()
		_ = httpServer.Shutdown(shutdownCtx)
		s.closeAll()
	}()

	s.logger.Info("Starting WebSocket server", "addr", ln.Addr().String(), "interval", s.interval)
	if err := httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// StartBroadcast deals a showdown to every connection on each tick of the
// configured interval. The returned function stops the ticker. It does
// nothing when the interval is zero.
func (s *Server) StartBroadcast(ctx context.Context) func() {
	if s.interval <= 0 {
		return func() {}
	}

	ticker := s.clock.NewTicker(s.interval, "broadcast")
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)
		for {
			select {
			case <-ticker.C:
				msg, err := s.deal()
				if err != nil {
					s.logger.Error("Failed to deal broadcast showdown", "error", err)
					continue
				}
				msg.Broadcast = true
				s.Broadcast(msg)
			case <-ctx.Done():
				return
			}
		}
	}()

	return func() {
		cancel()
		ticker.Stop()
		<-done
	}
}

// Broadcast sends a message to every connection
func (s *Server) Broadcast(msg *Message) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for conn := range s.connections {
		if err := conn.Send(msg); err != nil {
			s.logger.Debug("Failed to send broadcast", "error", err)
			continue
		}
		count++
	}
	s.logger.Debug("Broadcast message", "type", msg.Type, "recipients", count)
}

// Connections returns the number of open connections
func (s *Server) Connections() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.connections)
}

// Stats returns a copy of the tally of every showdown dealt so far
func (s *Server) Stats() statistics.Tally {
	s.tableMu.Lock()
	defer s.tableMu.Unlock()
	return s.tally
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("Failed to upgrade connection", "error", err)
		return
	}

	client := newConnection(conn, s)
	s.mu.Lock()
	s.connections[client] = true
	total := len(s.connections)
	s.mu.Unlock()
	s.logger.Info("Client connected", "total", total)

	client.Start()

	go func() {
		<-client.Done()
		s.mu.Lock()
		delete(s.connections, client)
		total := len(s.connections)
		s.mu.Unlock()
		s.logger.Info("Client disconnected", "total", total)
	}()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprintf(w, "OK")
}

func (s *Server) closeAll() {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for conn := range s.connections {
		_ = conn.Close()
	}
}
