package game

import "github.com/lox/queenofspades/internal/deck"

// DiscardPairs applies the pair-discard rule to a hand. Cards are grouped by
// rank and two cards at a time are removed from every group holding at least
// two. The queen of spades never joins a group, so it always stays in hand.
// Leftover singletons keep their relative order.
//
// The returned hand is a new slice; h is not modified. Applying the rule to
// its own output discards nothing.
func DiscardPairs(h Hand) (Hand, []Pair) {
	var counts [deck.King + 1]int
	for _, c := range h {
		if c.IsProtected() {
			continue
		}
		counts[c.Rank]++
	}

	// Number of cards of each rank that will leave the hand
	var quota [deck.King + 1]int
	pairCount := 0
	for r, n := range counts {
		quota[r] = n - n%2
		pairCount += n / 2
	}
	if pairCount == 0 {
		return h.Clone(), nil
	}

	kept := make(Hand, 0, len(h)-2*pairCount)
	pairs := make([]Pair, 0, pairCount)

	var open [deck.King + 1]deck.Card
	var waiting [deck.King + 1]bool
	for _, c := range h {
		if c.IsProtected() || quota[c.Rank] == 0 {
			kept = append(kept, c)
			continue
		}
		quota[c.Rank]--
		if waiting[c.Rank] {
			pairs = append(pairs, Pair{open[c.Rank], c})
			waiting[c.Rank] = false
		} else {
			open[c.Rank] = c
			waiting[c.Rank] = true
		}
	}

	return kept, pairs
}

// IsQueenPair reports whether the hand is exactly two queens, one of them
// the queen of spades.
func IsQueenPair(h Hand) bool {
	if len(h) != 2 {
		return false
	}
	if h[0].Rank != deck.Queen || h[1].Rank != deck.Queen {
		return false
	}
	return h[0].IsProtected() || h[1].IsProtected()
}
