package simulation

import (
	"gonum.org/v1/gonum/stat"
)

// Summary reports descriptive statistics over a run of θ(t) samples: the
// samples themselves and their mean and standard deviation, as printed by
// the CLI. Tail means are computed separately by TailMean.
type Summary struct {
	Thetas []float64
	Mean   float64
	StdDev float64
}

// Summarize draws n θ samples (via Thetas) and summarizes them with
// gonum/stat.
func (e *Ensemble[S, P]) Summarize(n int) (Summary, error) {
	thetas, err := e.Thetas(n)
	if err != nil {
		return Summary{}, err
	}

	mean := stat.Mean(thetas, nil)
	stddev := stat.StdDev(thetas, nil)

	return Summary{Thetas: thetas, Mean: mean, StdDev: stddev}, nil
}

// TailMean summarizes the mean of the last k elements of thetas, used to
// check stationary behavior (spec.md §8 scenario S1). If k exceeds
// len(thetas), the whole slice is used.
func TailMean(thetas []float64, k int) float64 {
	if k > len(thetas) {
		k = len(thetas)
	}
	if k == 0 {
		return 0
	}
	return stat.Mean(thetas[len(thetas)-k:], nil)
}
