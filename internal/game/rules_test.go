package game

import (
	"testing"

	"github.com/lox/queenofspades/internal/deck"
	"github.com/lox/queenofspades/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hand(s string) Hand {
	return Hand(deck.MustParseCards(s))
}

func TestDiscardPairs(t *testing.T) {
	tests := []struct {
		name  string
		hand  string
		kept  string
		pairs int
	}{
		{name: "no pairs", hand: "AH,2S,3C", kept: "AH,2S,3C", pairs: 0},
		{name: "one pair", hand: "AH,2S,AC", kept: "2S", pairs: 1},
		{name: "odd group keeps one", hand: "3C,2H,3D,3S", kept: "2H,3S", pairs: 1},
		{name: "four of a kind", hand: "7H,7S,7C,7D", kept: "", pairs: 2},
		{name: "suit irrelevant", hand: "KH,KD", kept: "", pairs: 1},
		{name: "queen pair protected", hand: "QS,QH", kept: "QS,QH", pairs: 0},
		{name: "three queens with spade", hand: "QH,QS,QD", kept: "QS", pairs: 1},
		{name: "all queens", hand: "QH,QS,QD,QC", kept: "QS,QC", pairs: 1},
		{name: "three queens without spade", hand: "QH,QC,QD", kept: "QD", pairs: 1},
		{name: "empty", hand: "", kept: "", pairs: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := hand(tt.hand)
			kept, pairs := DiscardPairs(h)
			assert.Equal(t, tt.kept, deck.FormatCards(kept))
			assert.Len(t, pairs, tt.pairs)
			for _, p := range pairs {
				assert.Equal(t, p[0].Rank, p[1].Rank)
				assert.NotEqual(t, p[0], p[1])
			}
			assert.Equal(t, tt.hand, deck.FormatCards(h), "input hand must not change")
		})
	}
}

func TestDiscardPairs_Properties(t *testing.T) {
	for seed := int64(1); seed <= 200; seed++ {
		d := deck.NewDeck()
		d.Shuffle(randutil.New(seed))
		dealt, err := d.Deal(int(seed%13) + 1)
		require.NoError(t, err)

		for _, cards := range dealt {
			h := Hand(cards)
			kept, pairs := DiscardPairs(h)

			// size drops by an even number and no card is invented or lost
			assert.Equal(t, len(h), len(kept)+2*len(pairs))
			var all []deck.Card
			all = append(all, kept...)
			for _, p := range pairs {
				assert.False(t, p[0].IsProtected() || p[1].IsProtected(), "queen of spades discarded")
				all = append(all, p[0], p[1])
			}
			assert.ElementsMatch(t, []deck.Card(h), all)

			if h.Contains(deck.ProtectedCard) {
				assert.True(t, kept.Contains(deck.ProtectedCard))
			}

			again, more := DiscardPairs(kept)
			assert.Empty(t, more, "second pass must discard nothing")
			assert.Equal(t, kept, again)
		}
	}
}

func TestIsQueenPair(t *testing.T) {
	assert.True(t, IsQueenPair(hand("QS,QH")))
	assert.True(t, IsQueenPair(hand("QD,QS")))
	assert.False(t, IsQueenPair(hand("QH,QD")), "needs the queen of spades")
	assert.False(t, IsQueenPair(hand("QS,KS")))
	assert.False(t, IsQueenPair(hand("QS")))
	assert.False(t, IsQueenPair(hand("QS,QH,QD")))
	assert.False(t, IsQueenPair(nil))
}
