package statistics

import "fmt"

// NoPlayer marks a game that nobody won
const NoPlayer = -1

// GameResult is the outcome of one simulated game
type GameResult struct {
	Seed   int64
	Winner int // NoPlayer when nobody emptied their hand
	Loser  int
	Turns  int
}

// Batch tallies a fixed number of games played with one master seed
type Batch struct {
	Index    int   `json:"index" yaml:"index"`
	Seed     int64 `json:"seed" yaml:"seed"`
	Games    int   `json:"games" yaml:"games"`
	Wins     []int `json:"wins" yaml:"wins"`     // per player
	Losses   []int `json:"losses" yaml:"losses"` // per player
	NoWinner int   `json:"no_winner" yaml:"no_winner"`
	Turns    []int `json:"turns" yaml:"turns"` // one entry per game
}

// NewBatch creates an empty batch for the given table size
func NewBatch(index int, seed int64, players int) *Batch {
	return &Batch{
		Index:  index,
		Seed:   seed,
		Wins:   make([]int, players),
		Losses: make([]int, players),
	}
}

// Players returns the table size the batch was created for
func (b *Batch) Players() int {
	return len(b.Wins)
}

// Add records a finished game
func (b *Batch) Add(r GameResult) error {
	if r.Loser < 0 || r.Loser >= b.Players() {
		return fmt.Errorf("loser %d out of range for %d players", r.Loser, b.Players())
	}
	if r.Winner != NoPlayer && (r.Winner < 0 || r.Winner >= b.Players()) {
		return fmt.Errorf("winner %d out of range for %d players", r.Winner, b.Players())
	}
	if r.Turns < 0 {
		return fmt.Errorf("negative turn count %d", r.Turns)
	}

	b.Games++
	if r.Winner == NoPlayer {
		b.NoWinner++
	} else {
		b.Wins[r.Winner]++
	}
	b.Losses[r.Loser]++
	b.Turns = append(b.Turns, r.Turns)
	return nil
}

// TurnDistribution returns the turn counts of the batch as a distribution
func (b *Batch) TurnDistribution() *Distribution {
	d := &Distribution{}
	for _, t := range b.Turns {
		d.Add(float64(t))
	}
	return d
}

// MeanTurns returns the average game length in the batch
func (b *Batch) MeanTurns() float64 {
	return b.TurnDistribution().Mean()
}

// Validate checks that the tallies account for every game exactly once
func (b *Batch) Validate() error {
	if len(b.Wins) != len(b.Losses) {
		return fmt.Errorf("wins tracks %d players but losses tracks %d", len(b.Wins), len(b.Losses))
	}

	if len(b.Turns) != b.Games {
		return fmt.Errorf("turns length (%d) does not match games (%d)", len(b.Turns), b.Games)
	}

	wins := b.NoWinner
	for _, w := range b.Wins {
		wins += w
	}
	if wins != b.Games {
		return fmt.Errorf("wins plus no-winner games (%d) does not match games (%d)", wins, b.Games)
	}

	losses := 0
	for _, l := range b.Losses {
		losses += l
	}
	if losses != b.Games {
		return fmt.Errorf("losses (%d) does not match games (%d)", losses, b.Games)
	}

	return nil
}
