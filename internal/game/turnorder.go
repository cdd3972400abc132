package game

import (
	"fmt"
	"strings"
)

// Ring is the draw order over the active players. Every player draws from
// the nearest active player before them in seating order, wrapping around
// from the first seat to the last. A Ring is immutable; eliminations build a
// new one with Rebuild.
type Ring struct {
	players []int       // active players in seating order
	sources []int       // sources[i] is who players[i] draws from
	index   map[int]int // player -> position in players
}

// Rebuild creates the ring for the given active players, which must be in
// seating order.
func Rebuild(active []int) Ring {
	r := Ring{
		players: make([]int, len(active)),
		sources: make([]int, len(active)),
		index:   make(map[int]int, len(active)),
	}
	copy(r.players, active)

	for i, p := range r.players {
		prev := i - 1
		if prev < 0 {
			prev = len(r.players) - 1
		}
		r.sources[i] = r.players[prev]
		r.index[p] = i
	}

	return r
}

// Source returns the player that p draws from. The second value is false
// when p is not in the ring.
func (r Ring) Source(p int) (int, bool) {
	i, ok := r.index[p]
	if !ok {
		return NoPlayer, false
	}
	return r.sources[i], true
}

// Contains reports whether p is still an active player
func (r Ring) Contains(p int) bool {
	_, ok := r.index[p]
	return ok
}

// Players returns the active players in seating order
func (r Ring) Players() []int {
	out := make([]int, len(r.players))
	copy(out, r.players)
	return out
}

// Len returns the number of active players
func (r Ring) Len() int {
	return len(r.players)
}

// String renders the ring as "0<-3 1<-0 3<-1"
func (r Ring) String() string {
	parts := make([]string, len(r.players))
	for i, p := range r.players {
		parts[i] = fmt.Sprintf("%d<-%d", p, r.sources[i])
	}
	return strings.Join(parts, " ")
}

// turnOrder keeps the two halves of turn sequencing apart: the static
// visiting sequence that decides whose nominal turn is next, and the live
// ring that decides whether that player still plays and who they draw from.
type turnOrder struct {
	seating []int
	cursor  int
	ring    Ring
}

func newTurnOrder(players int) *turnOrder {
	seating := make([]int, players)
	for i := range seating {
		seating[i] = i
	}
	return &turnOrder{
		seating: seating,
		ring:    Rebuild(seating),
	}
}

// next returns the next identifier in the visiting sequence, cycling
// through the original seating forever.
func (t *turnOrder) next() int {
	p := t.seating[t.cursor]
	t.cursor = (t.cursor + 1) % len(t.seating)
	return p
}

// refresh drops every active player whose hand is empty and rebuilds the
// ring over the rest. It returns the dropped players in seating order.
func (t *turnOrder) refresh(hands []Hand) []int {
	var out []int
	remaining := make([]int, 0, t.ring.Len())
	for _, p := range t.ring.players {
		if hands[p].IsEmpty() {
			out = append(out, p)
			continue
		}
		remaining = append(remaining, p)
	}

	if len(out) > 0 {
		t.ring = Rebuild(remaining)
	}
	return out
}
