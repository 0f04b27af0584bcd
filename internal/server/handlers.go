package server

import (
	"fmt"

	"github.com/lox/holdem-showdown/internal/dealer"
	"github.com/lox/holdem-showdown/internal/deck"
)

// handle answers one client message
func (s *Server) handle(msg *Message) *Message {
	var reply *Message
	switch msg.Type {
	case MessageTypeDeal:
		var err error
		if reply, err = s.deal(); err != nil {
			reply = errorMessage(msg.RequestID, err)
		}

	case MessageTypeDecide:
		var err error
		if reply, err = s.decide(msg); err != nil {
			reply = errorMessage(msg.RequestID, err)
		}

	case MessageTypeStats:
		stats := s.Stats()
		reply = &Message{Type: MessageTypeStats, Stats: &stats}

	default:
		reply = errorMessage(msg.RequestID, fmt.Errorf("unknown message type %q", msg.Type))
	}

	reply.RequestID = msg.RequestID
	reply.Timestamp = s.clock.Now()
	return reply
}

// deal deals the next showdown from the shared deck, reshuffling a full
// deck when too few cards remain
func (s *Server) deal() (*Message, error) {
	s.tableMu.Lock()
	defer s.tableMu.Unlock()

	if s.deck.Remaining() < dealer.CardsPerShowdown {
		s.logger.Debug("Reshuffling deck", "remaining", s.deck.Remaining())
		s.deck.Reset()
	}

	showdown, err := s.dealer.Deal(s.deck)
	if err != nil {
		return nil, err
	}
	s.tally.Add(showdown.Decision)
	return showdownMessage(showdown), nil
}

func (s *Server) decide(msg *Message) (*Message, error) {
	showdown, err := s.dealer.Build(
		deck.ParseIdentifiers(msg.HoleA),
		deck.ParseIdentifiers(msg.HoleB),
		deck.ParseIdentifiers(msg.Board),
		nil,
	)
	if err != nil {
		return nil, err
	}
	return showdownMessage(showdown), nil
}

func showdownMessage(s dealer.Showdown) *Message {
	return &Message{
		Type:     MessageTypeShowdown,
		Showdown: &s,
		Text:     s.Decision.Message(),
	}
}
