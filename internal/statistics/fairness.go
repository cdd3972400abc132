package statistics

import (
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// SeatTest is a chi-square goodness-of-fit test of per-seat counts against
// an even split. A small PValue means seating position matters.
type SeatTest struct {
	ChiSquare        float64 `json:"chi_square" yaml:"chi_square"`
	DegreesOfFreedom int     `json:"dof" yaml:"dof"`
	PValue           float64 `json:"p_value" yaml:"p_value"`
}

// Significant reports whether the split is uneven at the given level
func (t SeatTest) Significant(alpha float64) bool {
	return t.PValue < alpha
}

// UniformityTest tests whether counts are spread evenly across seats
func UniformityTest(counts []int) SeatTest {
	total := 0
	for _, c := range counts {
		total += c
	}
	if len(counts) < 2 || total == 0 {
		return SeatTest{PValue: 1}
	}

	observed := make([]float64, len(counts))
	expected := make([]float64, len(counts))
	each := float64(total) / float64(len(counts))
	for i, c := range counts {
		observed[i] = float64(c)
		expected[i] = each
	}

	chi := stat.ChiSquare(observed, expected)
	dof := len(counts) - 1
	dist := distuv.ChiSquared{K: float64(dof)}

	return SeatTest{
		ChiSquare:        chi,
		DegreesOfFreedom: dof,
		PValue:           dist.Survival(chi),
	}
}
