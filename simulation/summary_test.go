package simulation

import (
	"context"
	"math"
	"testing"

	"github.com/odilf/indecision/particle"
)

func TestSummarize_MeanAndStdDevAreSane(t *testing.T) {
	m := particle.NewMonoLigand(1, 1, 3, 3)
	ens, err := NewEnsemble[particle.MonoLigandState](m, 300, NewSimulationKey(4))
	if err != nil {
		t.Fatal(err)
	}
	if err := ens.AdvanceUntil(context.Background(), 30); err != nil {
		t.Fatal(err)
	}

	summary, err := ens.Summarize(25)
	if err != nil {
		t.Fatal(err)
	}
	if len(summary.Thetas) != 25 {
		t.Errorf("expected 25 theta samples, got %d", len(summary.Thetas))
	}
	if summary.Mean < 0 || summary.Mean > 1 {
		t.Errorf("mean theta = %v, want within [0, 1]", summary.Mean)
	}
	if summary.StdDev < 0 || math.IsNaN(summary.StdDev) {
		t.Errorf("stddev = %v, want a non-negative, finite number", summary.StdDev)
	}
}

func TestTailMean_ClampsToSliceLength(t *testing.T) {
	thetas := []float64{0.2, 0.4, 0.6}
	if got := TailMean(thetas, 10); got != TailMean(thetas, 3) {
		t.Errorf("TailMean(_, 10) = %v, want equal to TailMean(_, len) = %v", got, TailMean(thetas, 3))
	}
}

func TestTailMean_EmptySliceIsZero(t *testing.T) {
	if got := TailMean(nil, 5); got != 0 {
		t.Errorf("TailMean(nil, 5) = %v, want 0", got)
	}
}

func TestTailMean_LastKElementsOnly(t *testing.T) {
	thetas := []float64{0, 0, 0, 1, 1}
	got := TailMean(thetas, 2)
	if got != 1.0 {
		t.Errorf("TailMean of the last 2 elements = %v, want 1.0", got)
	}
}
