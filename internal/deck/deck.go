package deck

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// Size is the number of cards in a full deck
const Size = 52

// ErrAlreadyDealt is returned when Deal is called on a deck that has been consumed
var ErrAlreadyDealt = errors.New("deck already dealt")

// ErrInvalidPlayerCount is returned when the deck cannot be dealt to the requested number of players
var ErrInvalidPlayerCount = errors.New("invalid player count")

// Deck represents an ordered sequence of playing cards
type Deck struct {
	cards []Card
	dealt bool
}

// NewDeck creates a new standard 52-card deck in build order: every suit of
// the ace, then every suit of the two, and so on up to the king.
func NewDeck() *Deck {
	d := &Deck{
		cards: make([]Card, 0, Size),
	}

	for _, rank := range Ranks {
		for _, suit := range Suits {
			d.cards = append(d.cards, NewCard(rank, suit))
		}
	}

	return d
}

// Shuffle reorders the deck using Fisher-Yates. A nil rng uses the
// process-wide unseeded source.
func (d *Deck) Shuffle(rng *rand.Rand) {
	for i := len(d.cards) - 1; i > 0; i-- {
		var j int
		if rng != nil {
			j = rng.IntN(i + 1)
		} else {
			j = rand.IntN(i + 1)
		}
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Cards returns a copy of the cards in their current order
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}

// CardsRemaining returns the number of cards left in the deck
func (d *Deck) CardsRemaining() int {
	return len(d.cards)
}

// Deal distributes the whole deck to players by striping: player i receives
// every card whose index is congruent to i modulo players, in deck order.
// The deck is empty afterwards.
func (d *Deck) Deal(players int) ([][]Card, error) {
	if d.dealt {
		return nil, ErrAlreadyDealt
	}
	if players <= 0 || players > len(d.cards) {
		return nil, fmt.Errorf("%w: %d (deck has %d cards)", ErrInvalidPlayerCount, players, len(d.cards))
	}

	hands := make([][]Card, players)
	per := (len(d.cards) + players - 1) / players
	for i := range hands {
		hands[i] = make([]Card, 0, per)
	}
	for i, c := range d.cards {
		hands[i%players] = append(hands[i%players], c)
	}

	d.cards = nil
	d.dealt = true
	return hands, nil
}
