package deck

import (
	"testing"

	"github.com/lox/queenofspades/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeck(t *testing.T) {
	d := NewDeck()
	cards := d.Cards()
	require.Len(t, cards, Size)

	seen := make(map[Card]bool)
	for _, c := range cards {
		assert.False(t, seen[c], "duplicate card %s", c)
		seen[c] = true
	}

	assert.Equal(t, NewCard(Ace, Hearts), cards[0])
	assert.Equal(t, NewCard(Ace, Spades), cards[1])
	assert.Equal(t, NewCard(King, Diamonds), cards[51])
}

func TestDeck_ShuffleDeterministic(t *testing.T) {
	d1 := NewDeck()
	d1.Shuffle(randutil.New(8))
	d2 := NewDeck()
	d2.Shuffle(randutil.New(8))
	assert.Equal(t, d1.Cards(), d2.Cards())

	d3 := NewDeck()
	d3.Shuffle(randutil.New(9))
	assert.NotEqual(t, d1.Cards(), d3.Cards())
	assert.ElementsMatch(t, d1.Cards(), d3.Cards())
}

func TestDeck_ShuffleNilRNG(t *testing.T) {
	d := NewDeck()
	d.Shuffle(nil)
	assert.ElementsMatch(t, NewDeck().Cards(), d.Cards())
}

func TestDeck_DealStriping(t *testing.T) {
	tests := []struct {
		players int
		sizes   []int
	}{
		{players: 1, sizes: []int{52}},
		{players: 2, sizes: []int{26, 26}},
		{players: 3, sizes: []int{18, 17, 17}},
		{players: 4, sizes: []int{13, 13, 13, 13}},
		{players: 5, sizes: []int{11, 11, 10, 10, 10}},
		{players: 52, sizes: nil},
	}

	for _, tt := range tests {
		d := NewDeck()
		d.Shuffle(randutil.New(1))
		order := d.Cards()

		hands, err := d.Deal(tt.players)
		require.NoError(t, err)
		require.Len(t, hands, tt.players)

		minSize, maxSize := Size, 0
		total := 0
		for i, h := range hands {
			if tt.sizes != nil {
				assert.Len(t, h, tt.sizes[i], "players=%d hand=%d", tt.players, i)
			}
			for j, c := range h {
				assert.Equal(t, order[i+j*tt.players], c)
			}
			minSize = min(minSize, len(h))
			maxSize = max(maxSize, len(h))
			total += len(h)
		}
		assert.Equal(t, Size, total)
		assert.LessOrEqual(t, maxSize-minSize, 1)
		assert.Zero(t, d.CardsRemaining())
	}
}

func TestDeck_DealErrors(t *testing.T) {
	d := NewDeck()
	_, err := d.Deal(0)
	assert.ErrorIs(t, err, ErrInvalidPlayerCount)
	_, err = d.Deal(53)
	assert.ErrorIs(t, err, ErrInvalidPlayerCount)

	_, err = d.Deal(4)
	require.NoError(t, err)
	_, err = d.Deal(4)
	assert.ErrorIs(t, err, ErrAlreadyDealt)
}
