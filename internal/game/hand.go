package game

import (
	"strings"

	"github.com/lox/queenofspades/internal/deck"
)

// NoPlayer marks an unset player slot, such as the winner of a game where
// nobody emptied their hand.
const NoPlayer = -1

// Hand is an unordered collection of cards held by one player
type Hand []deck.Card

// Pair is two cards of the same rank discarded together
type Pair [2]deck.Card

// Len returns the number of cards in the hand
func (h Hand) Len() int {
	return len(h)
}

// IsEmpty returns true when the player has no cards left
func (h Hand) IsEmpty() bool {
	return len(h) == 0
}

// Contains checks if the hand holds a specific card
func (h Hand) Contains(c deck.Card) bool {
	for _, hc := range h {
		if hc == c {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares no storage with h
func (h Hand) Clone() Hand {
	out := make(Hand, len(h))
	copy(out, h)
	return out
}

// String returns the hand as space separated cards (e.g., "Q♠ 7♥")
func (h Hand) String() string {
	parts := make([]string, len(h))
	for i, c := range h {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// Rank returns the shared rank of the pair
func (p Pair) Rank() deck.Rank {
	return p[0].Rank
}
