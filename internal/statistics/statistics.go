// Package statistics aggregates simulated Queen of Spades games into
// per-batch tallies and distribution summaries.
package statistics

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Distribution accumulates float samples and answers summary queries
type Distribution struct {
	Count  int
	Values []float64 // in insertion order
}

// Add incorporates a new sample
func (d *Distribution) Add(v float64) {
	d.Count++
	d.Values = append(d.Values, v)
}

// Mean returns the arithmetic mean of all samples
func (d *Distribution) Mean() float64 {
	if d.Count == 0 {
		return 0
	}
	return stat.Mean(d.Values, nil)
}

// Variance returns the sample variance
func (d *Distribution) Variance() float64 {
	if d.Count < 2 {
		return 0
	}
	_, v := stat.MeanVariance(d.Values, nil)
	// the compensation term can round a zero variance just below zero
	return math.Max(v, 0)
}

// StdDev returns the sample standard deviation
func (d *Distribution) StdDev() float64 {
	return math.Sqrt(d.Variance())
}

// StdError returns the standard error of the mean
func (d *Distribution) StdError() float64 {
	if d.Count == 0 {
		return 0
	}
	return stat.StdErr(d.StdDev(), float64(d.Count))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (d *Distribution) ConfidenceInterval95() (float64, float64) {
	mean := d.Mean()
	margin := 1.96 * d.StdError() // 95% confidence
	return mean - margin, mean + margin
}

// Median returns the median sample
func (d *Distribution) Median() float64 {
	return d.Percentile(0.5)
}

// Percentile returns the value at the given percentile (0.0 to 1.0),
// interpolating linearly between neighbouring samples. p is clamped to
// [0, 1].
func (d *Distribution) Percentile(p float64) float64 {
	sorted := d.sorted()
	if len(sorted) == 0 {
		return 0
	}
	return quantile(sorted, p)
}

// Min returns the smallest sample
func (d *Distribution) Min() float64 {
	if d.Count == 0 {
		return 0
	}
	return floats.Min(d.Values)
}

// Max returns the largest sample
func (d *Distribution) Max() float64 {
	if d.Count == 0 {
		return 0
	}
	return floats.Max(d.Values)
}

// Box returns the five-number summary of the samples
func (d *Distribution) Box() Box {
	sorted := d.sorted()
	if len(sorted) == 0 {
		return Box{}
	}
	return Box{
		Min:    sorted[0],
		Q1:     quantile(sorted, 0.25),
		Median: quantile(sorted, 0.5),
		Q3:     quantile(sorted, 0.75),
		Max:    sorted[len(sorted)-1],
	}
}

func (d *Distribution) sorted() []float64 {
	sorted := make([]float64, len(d.Values))
	copy(sorted, d.Values)
	sort.Float64s(sorted)
	return sorted
}

// quantile places p at position p*(n-1) between order statistics, so the
// median of an odd sample is its middle value. gonum's LinInterp places it
// at p*n-1, hence the rescaling.
func quantile(sorted []float64, p float64) float64 {
	p = math.Min(math.Max(p, 0), 1)
	n := float64(len(sorted))
	return stat.Quantile((p*(n-1)+1)/n, stat.LinInterp, sorted, nil)
}

// Box is a five-number summary, the data behind a box plot
type Box struct {
	Min    float64 `json:"min" yaml:"min"`
	Q1     float64 `json:"q1" yaml:"q1"`
	Median float64 `json:"median" yaml:"median"`
	Q3     float64 `json:"q3" yaml:"q3"`
	Max    float64 `json:"max" yaml:"max"`
}

// IQR returns the interquartile range
func (b Box) IQR() float64 {
	return b.Q3 - b.Q1
}
