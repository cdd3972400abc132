package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRebuild(t *testing.T) {
	tests := []struct {
		name    string
		active  []int
		sources map[int]int
	}{
		{name: "full table", active: []int{0, 1, 2, 3}, sources: map[int]int{0: 3, 1: 0, 2: 1, 3: 2}},
		{name: "gap closes", active: []int{0, 2, 3}, sources: map[int]int{0: 3, 2: 0, 3: 2}},
		{name: "first seat gone", active: []int{1, 3}, sources: map[int]int{1: 3, 3: 1}},
		{name: "single player", active: []int{5}, sources: map[int]int{5: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Rebuild(tt.active)
			assert.Equal(t, tt.active, r.Players())
			assert.Equal(t, len(tt.active), r.Len())
			for p, want := range tt.sources {
				got, ok := r.Source(p)
				assert.True(t, ok)
				assert.Equal(t, want, got, "source of %d", p)
			}
		})
	}
}

func TestRing_SingleCycle(t *testing.T) {
	r := Rebuild([]int{0, 2, 4, 5, 9})
	seen := make(map[int]bool)
	p := 0
	for range r.Len() {
		assert.False(t, seen[p])
		seen[p] = true
		p, _ = r.Source(p)
	}
	assert.Equal(t, 0, p, "walking sources must return to the start")
	assert.Len(t, seen, r.Len())
}

func TestRing_Missing(t *testing.T) {
	r := Rebuild([]int{0, 2})
	assert.False(t, r.Contains(1))
	src, ok := r.Source(1)
	assert.False(t, ok)
	assert.Equal(t, NoPlayer, src)
	assert.Equal(t, "0<-2 2<-0", r.String())

	empty := Rebuild(nil)
	assert.Zero(t, empty.Len())
	assert.False(t, empty.Contains(0))
}

func TestTurnOrder_VisitingSequenceIsStatic(t *testing.T) {
	order := newTurnOrder(3)
	hands := []Hand{hand("AH"), nil, hand("2H")}

	var visited []int
	for range 7 {
		visited = append(visited, order.next())
	}
	assert.Equal(t, []int{0, 1, 2, 0, 1, 2, 0}, visited)

	assert.Equal(t, []int{1}, order.refresh(hands))
	assert.False(t, order.ring.Contains(1))

	// eliminated players still come up in the sequence
	visited = visited[:0]
	for range 3 {
		visited = append(visited, order.next())
	}
	assert.Equal(t, []int{1, 2, 0}, visited)
}

func TestTurnOrder_Refresh(t *testing.T) {
	order := newTurnOrder(5)
	hands := []Hand{hand("AH"), nil, hand("2H"), nil, hand("3H")}

	assert.Equal(t, []int{1, 3}, order.refresh(hands))
	assert.Equal(t, []int{0, 2, 4}, order.ring.Players())
	src, _ := order.ring.Source(2)
	assert.Equal(t, 0, src)
	src, _ = order.ring.Source(0)
	assert.Equal(t, 4, src)

	// already removed players are not reported twice
	assert.Empty(t, order.refresh(hands))

	hands[0] = nil
	assert.Equal(t, []int{0}, order.refresh(hands))
	assert.Equal(t, []int{2, 4}, order.ring.Players())
}
