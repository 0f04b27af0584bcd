package evaluator

import (
	"testing"

	"github.com/lox/holdem-showdown/internal/deck"
)

func TestBest(t *testing.T) {
	tests := []struct {
		name     string
		cards    string // Card notation like "AsKsQsJsTs9h8h"
		expected Category
	}{
		{
			name:     "Royal Flush",
			cards:    "AsKsQsJsTs9h8h", // A♠ K♠ Q♠ J♠ T♠ 9♥ 8♥
			expected: RoyalFlush,
		},
		{
			name:     "Straight Flush",
			cards:    "9s8s7s6s5s4h3h", // 9♠ 8♠ 7♠ 6♠ 5♠ 4♥ 3♥
			expected: StraightFlush,
		},
		{
			name:     "Steel Wheel",
			cards:    "As2s3s4s5sKhQd", // A♠ 2♠ 3♠ 4♠ 5♠ K♥ Q♦
			expected: StraightFlush,
		},
		{
			name:     "Four of a Kind",
			cards:    "AsAhAdAcKs2h3h", // A♠ A♥ A♦ A♣ K♠ 2♥ 3♥
			expected: FourOfAKind,
		},
		{
			name:     "Full House",
			cards:    "AsAhAdKsKh2h3h", // A♠ A♥ A♦ K♠ K♥ 2♥ 3♥
			expected: FullHouse,
		},
		{
			name:     "Full House From Two Trips",
			cards:    "AsAhAdKsKhKd3h", // A♠ A♥ A♦ K♠ K♥ K♦ 3♥
			expected: FullHouse,
		},
		{
			name:     "Flush",
			cards:    "AsKsQs8s6s4h3h", // A♠ K♠ Q♠ 8♠ 6♠ 4♥ 3♥
			expected: Flush,
		},
		{
			name:     "Straight",
			cards:    "AsKhQdJcTs9h8h", // A♠ K♥ Q♦ J♣ T♠ 9♥ 8♥
			expected: Straight,
		},
		{
			name:     "Wheel",
			cards:    "Ah2c3d4s5hKcQd", // A♥ 2♣ 3♦ 4♠ 5♥ K♣ Q♦
			expected: Straight,
		},
		{
			name:     "Three of a Kind",
			cards:    "AsAhAdKs9c7h5h", // A♠ A♥ A♦ K♠ 9♣ 7♥ 5♥
			expected: ThreeOfAKind,
		},
		{
			name:     "Two Pair",
			cards:    "AsAhKdKs9c7h5h", // A♠ A♥ K♦ K♠ 9♣ 7♥ 5♥
			expected: TwoPair,
		},
		{
			name:     "One Pair",
			cards:    "AsAhKdQs9c7h5h", // A♠ A♥ K♦ Q♠ 9♣ 7♥ 5♥
			expected: OnePair,
		},
		{
			name:     "High Card",
			cards:    "AsKhQd9s7c5h3h", // A♠ K♥ Q♦ 9♠ 7♣ 5♥ 3♥
			expected: HighCard,
		},
		{
			name:     "No Wraparound Straight",
			cards:    "QsKhAd2s3c8h9d", // Q♠ K♥ A♦ 2♠ 3♣ 8♥ 9♦
			expected: HighCard,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cards := deck.MustParseCards(tt.cards)
			if got := Best(cards); got != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestCategoryOrdering(t *testing.T) {
	for i := 1; i < len(Categories); i++ {
		stronger, weaker := Categories[i-1], Categories[i]
		if !stronger.Stronger(weaker) {
			t.Errorf("%s should beat %s", stronger, weaker)
		}
		if weaker.Stronger(stronger) {
			t.Errorf("%s should not beat %s", weaker, stronger)
		}
	}
}

func TestCategoryPhrase(t *testing.T) {
	tests := map[Category]string{
		RoyalFlush:   "a Royal Flush",
		FourOfAKind:  "Four of a Kind",
		FullHouse:    "a Full House",
		TwoPair:      "Two Pair",
		OnePair:      "One Pair",
		HighCard:     "a higher High Card",
		Category(0):  "Unknown",
		Category(99): "Unknown",
	}

	for c, want := range tests {
		if got := c.Phrase(); got != want {
			t.Errorf("%d.Phrase() = %q, want %q", int(c), got, want)
		}
	}
}

func TestCategoryText(t *testing.T) {
	for _, c := range Categories {
		text, err := c.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%s): %v", c, err)
		}
		var decoded Category
		if err := decoded.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", text, err)
		}
		if decoded != c {
			t.Errorf("round trip of %s gave %s", c, decoded)
		}
	}

	var unknown Category
	_ = unknown.UnmarshalText([]byte("Five of a Kind"))
	if unknown.Valid() {
		t.Errorf("expected invalid category, got %s", unknown)
	}
}
