package game

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/lox/queenofspades/internal/deck"
	"github.com/lox/queenofspades/internal/randutil"
)

// ErrInvalidPlayers is returned when a game is configured with a player
// count the deck cannot be dealt to.
var ErrInvalidPlayers = errors.New("invalid number of players")

// MaxPlayers is the largest table a single deck can be dealt to
const MaxPlayers = deck.Size

// Options configures a single game
type Options struct {
	// Players is the number of seats, 1 to MaxPlayers
	Players int
	// DeterministicShuffle uses a fixed seed for the shuffle so every game
	// starts from the same deal.
	DeterministicShuffle bool
	// Rand drives the in-game draws, and the shuffle unless
	// DeterministicShuffle is set. Nil means an unseeded source.
	Rand *rand.Rand
	// Verbose logs every active hand after each turn at info level
	Verbose  bool
	Logger   *log.Logger
	Observer Observer
}

// Result is the outcome of a finished game
type Result struct {
	Turns int `json:"turns" yaml:"turns"`
	// Winner is the first player to empty their hand, or NoPlayer
	Winner int `json:"winner" yaml:"winner"`
	Loser  int `json:"loser" yaml:"loser"`
	// Eliminated lists players in the order their hands emptied. Players
	// emptied in the same pass appear in seating order.
	Eliminated []int `json:"eliminated" yaml:"eliminated"`
}

// HasWinner reports whether any player emptied their hand
func (r Result) HasWinner() bool {
	return r.Winner != NoPlayer
}

// ConservationError is the panic value raised when cards are lost or
// duplicated. It always indicates a bug in the engine.
type ConservationError struct {
	InHands   int
	Discarded int
}

func (e ConservationError) Error() string {
	return fmt.Sprintf("card conservation violated: %d in hands + 2x%d discarded pairs != %d",
		e.InHands, e.Discarded, deck.Size)
}

// Game is one game of Queen of Spades, from deal to loser
type Game struct {
	players  int
	hands    []Hand
	order    *turnOrder
	rng      *rand.Rand
	logger   *log.Logger
	observer Observer
	verbose  bool

	discarded  int // pairs
	turns      int
	done       bool
	winner     int
	loser      int
	eliminated []int
	played     bool
}

// New validates the options, shuffles a fresh deck and deals it
func New(opts Options) (*Game, error) {
	if opts.Players <= 0 || opts.Players > MaxPlayers {
		return nil, fmt.Errorf("%w: %d (must be between 1 and %d)", ErrInvalidPlayers, opts.Players, MaxPlayers)
	}

	rng := opts.Rand
	if rng == nil {
		rng = randutil.NewUnseeded()
	}

	shuffleRng := rng
	if opts.DeterministicShuffle {
		shuffleRng = randutil.Deterministic()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	d := deck.NewDeck()
	d.Shuffle(shuffleRng)
	dealt, err := d.Deal(opts.Players)
	if err != nil {
		return nil, fmt.Errorf("dealing: %w", err)
	}

	hands := make([]Hand, len(dealt))
	for i, cards := range dealt {
		hands[i] = Hand(cards)
	}

	g := &Game{
		players:  opts.Players,
		hands:    hands,
		order:    newTurnOrder(opts.Players),
		rng:      rng,
		logger:   logger,
		observer: opts.Observer,
		verbose:  opts.Verbose,
		winner:   NoPlayer,
		loser:    NoPlayer,
	}
	g.assertConservation()

	logger.Debug("Dealt cards", "players", opts.Players, "deterministic", opts.DeterministicShuffle)
	return g, nil
}

// Play runs the game to completion and returns the result. Calling Play
// again returns the same result without replaying.
func (g *Game) Play() Result {
	if g.played {
		return g.result()
	}
	g.played = true

	pairs := 0
	for p := range g.hands {
		pairs += len(g.discard(p))
	}
	g.checkDone()
	g.logger.Debug("Initial discard", "pairs", pairs, "cards", g.cardsInHands(), "done", g.done)
	if g.observer != nil {
		g.observer.OnDeal(g.snapshot(), pairs)
	}

	for !g.done {
		p := g.order.next()
		g.refresh()
		if !g.order.ring.Contains(p) {
			continue
		}
		g.takeTurn(p)
	}
	g.refresh()

	result := g.result()
	g.logger.Debug("Game over", "turns", result.Turns, "winner", result.Winner, "loser", result.Loser)
	if g.observer != nil {
		g.observer.OnGameOver(result)
	}
	return result
}

// takeTurn has p draw one random card from their source, discard and check
// for the end of the game.
func (g *Game) takeTurn(p int) {
	src, _ := g.order.ring.Source(p)
	from := g.hands[src]
	if len(from) == 0 {
		panic(fmt.Sprintf("player %d drawing from empty hand of player %d", p, src))
	}

	i := g.rng.IntN(len(from))
	card := from[i]
	g.hands[src] = slices.Delete(from, i, i+1)
	g.hands[p] = append(g.hands[p], card)

	pairs := g.discard(p)
	g.checkDone()
	g.turns++

	if g.verbose {
		g.logHands()
	}
	if g.observer != nil {
		g.observer.OnTurn(TurnEvent{
			Turn:           g.turns,
			Player:         p,
			Source:         src,
			Card:           card,
			Discarded:      pairs,
			PairsDiscarded: g.discarded,
			Hands:          g.snapshot(),
			Active:         g.order.ring.Players(),
		})
	}
}

// discard applies the pair rule to one player's hand
func (g *Game) discard(p int) []Pair {
	kept, pairs := DiscardPairs(g.hands[p])
	g.hands[p] = kept
	g.discarded += len(pairs)
	g.assertConservation()
	return pairs
}

// checkDone ends the game when exactly two cards remain and they form the
// queen pair in a single hand.
func (g *Game) checkDone() {
	total := 0
	holder := NoPlayer
	for p, h := range g.hands {
		total += len(h)
		if IsQueenPair(h) {
			holder = p
		}
	}

	if total == 2 && holder != NoPlayer {
		g.done = true
		g.loser = holder
	}
}

// refresh removes emptied players from the ring. The first player ever
// removed is the winner.
func (g *Game) refresh() {
	out := g.order.refresh(g.hands)
	for _, p := range out {
		if g.winner == NoPlayer {
			g.winner = p
		}
		g.eliminated = append(g.eliminated, p)
		g.logger.Debug("Player out", "player", p, "turn", g.turns)
		if g.observer != nil {
			g.observer.OnElimination(p, g.turns)
		}
	}
}

func (g *Game) assertConservation() {
	inHands := g.cardsInHands()
	if inHands+2*g.discarded != deck.Size {
		panic(ConservationError{InHands: inHands, Discarded: g.discarded})
	}
}

func (g *Game) cardsInHands() int {
	total := 0
	for _, h := range g.hands {
		total += len(h)
	}
	return total
}

// logHands logs every player still holding cards. The ring is only rebuilt
// at the start of the next turn, so it may still list players emptied by
// this one.
func (g *Game) logHands() {
	for _, p := range g.order.ring.players {
		if g.hands[p].IsEmpty() {
			continue
		}
		g.logger.Info("Hand", "turn", g.turns, "player", p, "cards", g.hands[p].String())
	}
}

func (g *Game) snapshot() []Hand {
	out := make([]Hand, len(g.hands))
	for i, h := range g.hands {
		out[i] = h.Clone()
	}
	return out
}

func (g *Game) result() Result {
	return Result{
		Turns:      g.turns,
		Winner:     g.winner,
		Loser:      g.loser,
		Eliminated: slices.Clone(g.eliminated),
	}
}

// Players returns the number of seats
func (g *Game) Players() int {
	return g.players
}

// Hands returns a copy of every player's current hand
func (g *Game) Hands() []Hand {
	return g.snapshot()
}

// Done reports whether the losing queen pair has formed
func (g *Game) Done() bool {
	return g.done
}

// Discarded returns the number of pairs discarded so far
func (g *Game) Discarded() int {
	return g.discarded
}

// Ring returns the current draw order over the active players
func (g *Game) Ring() Ring {
	return g.order.ring
}

// Turns returns the number of completed draws
func (g *Game) Turns() int {
	return g.turns
}
