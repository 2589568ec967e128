package simulation

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/odilf/indecision/particle"
)

// advance draws one Gillespie step from state under model: the waiting
// time to the next transition and the state it leads to.
//
// Waiting time uses the textbook -ln(u)/R convention (a deliberate,
// documented deviation from the source's -log2(u)/R — see SPEC_FULL.md
// §6.1; both are a constant rescaling of simulated time and neither
// changes the state distribution). Target selection uses strict
// "cumulative > r" with events visited in Events()'s returned order,
// matching the source exactly.
//
// If the state is absorbing (total rate 0), returns (state, +Inf, nil):
// the caller interprets +Inf as "no further transition will ever occur".
func advance[S any, P particle.Model[S]](rng *rand.Rand, model P, state S) (S, float64, error) {
	events := model.Events(state)
	if len(events) == 0 {
		var zero S
		return zero, 0, fmt.Errorf("%w", particle.ErrNoEvents)
	}

	total := 0.0
	for _, e := range events {
		if math.IsNaN(e.Rate) {
			var zero S
			return zero, 0, fmt.Errorf("%w", particle.ErrNaNRate)
		}
		total += e.Rate
	}

	if total == 0 {
		logrus.Debugf("simulation: state has total rate 0, treating as absorbing")
		return state, math.Inf(1), nil
	}

	u1, u2 := rng.Float64(), rng.Float64()
	deltaT := -math.Log(u1) / total
	r := u2 * total

	cumulative := 0.0
	for _, e := range events {
		cumulative += e.Rate
		if cumulative > r {
			return e.Target, deltaT, nil
		}
	}

	// Floating-point edge case: r landed exactly on total due to rounding.
	// Fall back to the last event rather than panicking.
	return events[len(events)-1].Target, deltaT, nil
}
