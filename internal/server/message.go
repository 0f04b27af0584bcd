package server

import (
	"time"

	"github.com/lox/holdem-showdown/internal/dealer"
	"github.com/lox/holdem-showdown/internal/statistics"
)

// MessageType identifies a WebSocket message
type MessageType string

const (
	// Client → Server
	MessageTypeDeal   MessageType = "deal"
	MessageTypeDecide MessageType = "decide"
	MessageTypeStats  MessageType = "stats"

	// Server → Client
	MessageTypeShowdown MessageType = "showdown"
	MessageTypeError    MessageType = "error"
)

// Message is the single envelope used in both directions. Cards travel as
// "<Rank> of <Suit>" identifiers.
type Message struct {
	Type      MessageType `json:"type"`
	RequestID string      `json:"request_id,omitempty"`
	Timestamp time.Time   `json:"timestamp,omitzero"`

	// decide
	HoleA []string `json:"hole_a,omitempty"`
	HoleB []string `json:"hole_b,omitempty"`
	Board []string `json:"board,omitempty"`

	// showdown
	Showdown  *dealer.Showdown `json:"showdown,omitempty"`
	Text      string           `json:"message,omitempty"`
	Broadcast bool             `json:"broadcast,omitempty"`

	// stats
	Stats *statistics.Tally `json:"stats,omitempty"`

	Error string `json:"error,omitempty"`
}

func errorMessage(requestID string, err error) *Message {
	return &Message{Type: MessageTypeError, RequestID: requestID, Error: err.Error()}
}
