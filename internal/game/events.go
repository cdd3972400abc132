package game

import "github.com/lox/queenofspades/internal/deck"

// Observer receives notifications as a game progresses. Observers see copies
// of the hands and cannot change the game.
type Observer interface {
	// OnDeal is called once the initial discard pass has run
	OnDeal(hands []Hand, pairs int)
	// OnTurn is called after every completed draw
	OnTurn(event TurnEvent)
	// OnElimination is called when a player's empty hand is removed from the ring
	OnElimination(player, turn int)
	// OnGameOver is called once with the final result
	OnGameOver(result Result)
}

// TurnEvent describes one draw
type TurnEvent struct {
	Turn      int
	Player    int
	Source    int
	Card      deck.Card
	Discarded []Pair
	// PairsDiscarded is the running total for the whole game
	PairsDiscarded int
	Hands          []Hand
	Active         []int
}

// NopObserver ignores every notification. Embed it to implement only the
// callbacks you need.
type NopObserver struct{}

func (NopObserver) OnDeal([]Hand, int) {}
func (NopObserver) OnTurn(TurnEvent) {}
func (NopObserver) OnElimination(int, int) {}
func (NopObserver) OnGameOver(Result) {}

var _ Observer = NopObserver{}

// Observers fans every notification out to each observer in order
type Observers []Observer

func (o Observers) OnDeal(hands []Hand, pairs int) {
	for _, obs := range o {
		obs.OnDeal(hands, pairs)
	}
}

func (o Observers) OnTurn(event TurnEvent) {
	for _, obs := range o {
		obs.OnTurn(event)
	}
}

func (o Observers) OnElimination(player, turn int) {
	for _, obs := range o {
		obs.OnElimination(player, turn)
	}
}

func (o Observers) OnGameOver(result Result) {
	for _, obs := range o {
		obs.OnGameOver(result)
	}
}
