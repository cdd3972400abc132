package game

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/lox/queenofspades/internal/deck"
	"github.com/lox/queenofspades/internal/randutil"
)

// testGameOption configures test game creation
type testGameOption func(*testGameBuilder)

type testGameBuilder struct {
	seed     int64
	observer Observer
}

func withSeed(seed int64) testGameOption {
	return func(b *testGameBuilder) { b.seed = seed }
}

func withObserver(o Observer) testGameOption {
	return func(b *testGameBuilder) { b.observer = o }
}

// newTestGame builds a game from hand-crafted hands instead of a shuffled
// deal. The hands must hold the whole deck between them.
func newTestGame(t testing.TB, hands []Hand, opts ...testGameOption) *Game {
	t.Helper()

	builder := &testGameBuilder{seed: 42}
	for _, opt := range opts {
		opt(builder)
	}

	g := &Game{
		players:  len(hands),
		hands:    hands,
		order:    newTurnOrder(len(hands)),
		rng:      randutil.New(builder.seed),
		logger:   log.New(io.Discard),
		observer: builder.observer,
		winner:   NoPlayer,
		loser:    NoPlayer,
	}
	g.assertConservation()
	return g
}

// cardsOf returns every card with one of the given ranks and suits
func cardsOf(ranks []deck.Rank, suits []deck.Suit) Hand {
	var h Hand
	for _, r := range ranks {
		for _, s := range suits {
			h = append(h, deck.NewCard(r, s))
		}
	}
	return h
}

// ranksExcept returns every rank not listed
func ranksExcept(skip ...deck.Rank) []deck.Rank {
	var out []deck.Rank
	for _, r := range deck.Ranks {
		keep := true
		for _, s := range skip {
			if r == s {
				keep = false
			}
		}
		if keep {
			out = append(out, r)
		}
	}
	return out
}

// recordingObserver captures every notification for assertions
type recordingObserver struct {
	deals        int
	initialPairs int
	turns        []TurnEvent
	eliminated   []int
	results      []Result
}

func (r *recordingObserver) OnDeal(_ []Hand, pairs int) {
	r.deals++
	r.initialPairs = pairs
}

func (r *recordingObserver) OnTurn(e TurnEvent) {
	r.turns = append(r.turns, e)
}

func (r *recordingObserver) OnElimination(player, _ int) {
	r.eliminated = append(r.eliminated, player)
}

func (r *recordingObserver) OnGameOver(result Result) {
	r.results = append(r.results, result)
}
