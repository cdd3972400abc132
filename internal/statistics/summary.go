package statistics

import (
	"errors"
	"fmt"
)

// ErrNoBatches is returned when summarizing an empty run
var ErrNoBatches = errors.New("no batches to summarize")

// Summary aggregates every batch of a run
type Summary struct {
	Players  int `json:"players" yaml:"players"`
	Batches  int `json:"batches" yaml:"batches"`
	Games    int `json:"games" yaml:"games"` // across all batches
	NoWinner int `json:"no_winner" yaml:"no_winner"`

	// Per player totals and rates over all games
	Wins     []int     `json:"wins" yaml:"wins"`
	Losses   []int     `json:"losses" yaml:"losses"`
	WinRate  []float64 `json:"win_rate" yaml:"win_rate"`
	LossRate []float64 `json:"loss_rate" yaml:"loss_rate"`

	// Per player spread of batch win and loss counts
	WinBoxes  []Box `json:"win_boxes" yaml:"win_boxes"`
	LossBoxes []Box `json:"loss_boxes" yaml:"loss_boxes"`

	// Whether wins and losses depend on seat
	WinFairness  SeatTest `json:"win_fairness" yaml:"win_fairness"`
	LossFairness SeatTest `json:"loss_fairness" yaml:"loss_fairness"`

	Turns          TurnSummary `json:"turns" yaml:"turns"`
	BatchMeanTurns []float64   `json:"batch_mean_turns" yaml:"batch_mean_turns"`
}

// TurnSummary describes the game length distribution
type TurnSummary struct {
	Mean     float64 `json:"mean" yaml:"mean"`
	Median   float64 `json:"median" yaml:"median"`
	StdDev   float64 `json:"stddev" yaml:"stddev"`
	StdError float64 `json:"stderr" yaml:"stderr"`
	CI95Low  float64 `json:"ci95_low" yaml:"ci95_low"`
	CI95High float64 `json:"ci95_high" yaml:"ci95_high"`
	Min      float64 `json:"min" yaml:"min"`
	Max      float64 `json:"max" yaml:"max"`
	P5       float64 `json:"p5" yaml:"p5"`
	P25      float64 `json:"p25" yaml:"p25"`
	P75      float64 `json:"p75" yaml:"p75"`
	P95      float64 `json:"p95" yaml:"p95"`
}

// Summarize validates and combines the batches of a run
func Summarize(batches []*Batch) (*Summary, error) {
	if len(batches) == 0 {
		return nil, ErrNoBatches
	}

	players := batches[0].Players()
	s := &Summary{
		Players:   players,
		Batches:   len(batches),
		Wins:      make([]int, players),
		Losses:    make([]int, players),
		WinRate:   make([]float64, players),
		LossRate:  make([]float64, players),
		WinBoxes:  make([]Box, players),
		LossBoxes: make([]Box, players),
	}

	winDists := make([]Distribution, players)
	lossDists := make([]Distribution, players)
	turns := &Distribution{}

	for _, b := range batches {
		if b.Players() != players {
			return nil, fmt.Errorf("batch %d has %d players, expected %d", b.Index, b.Players(), players)
		}
		if err := b.Validate(); err != nil {
			return nil, fmt.Errorf("batch %d: %w", b.Index, err)
		}

		s.Games += b.Games
		s.NoWinner += b.NoWinner
		for p := range players {
			s.Wins[p] += b.Wins[p]
			s.Losses[p] += b.Losses[p]
			winDists[p].Add(float64(b.Wins[p]))
			lossDists[p].Add(float64(b.Losses[p]))
		}
		for _, t := range b.Turns {
			turns.Add(float64(t))
		}
		s.BatchMeanTurns = append(s.BatchMeanTurns, b.MeanTurns())
	}

	for p := range players {
		if s.Games > 0 {
			s.WinRate[p] = float64(s.Wins[p]) / float64(s.Games)
			s.LossRate[p] = float64(s.Losses[p]) / float64(s.Games)
		}
		s.WinBoxes[p] = winDists[p].Box()
		s.LossBoxes[p] = lossDists[p].Box()
	}

	s.WinFairness = UniformityTest(s.Wins)
	s.LossFairness = UniformityTest(s.Losses)

	low, high := turns.ConfidenceInterval95()
	s.Turns = TurnSummary{
		Mean:     turns.Mean(),
		Median:   turns.Median(),
		StdDev:   turns.StdDev(),
		StdError: turns.StdError(),
		CI95Low:  low,
		CI95High: high,
		Min:      turns.Min(),
		Max:      turns.Max(),
		P5:       turns.Percentile(0.05),
		P25:      turns.Percentile(0.25),
		P75:      turns.Percentile(0.75),
		P95:      turns.Percentile(0.95),
	}

	return s, nil
}
