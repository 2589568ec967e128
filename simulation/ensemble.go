package simulation

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/odilf/indecision/particle"
)

// Ensemble owns N independent SingleSims sharing the same model, clocked
// synchronously (invariant E1) and advanced in parallel (spec.md §5).
// Members share no state (invariant E2): each gets its own RNG stream,
// derived deterministically from a single SimulationKey via
// PartitionedRNG.
type Ensemble[S particle.Attacher, P particle.Model[S]] struct {
	members []*SingleSim[S, P]
	rng     *PartitionedRNG
}

// NewEnsemble constructs n independent SingleSims, each seeded from its
// own subsystem of a PartitionedRNG derived from seed.
func NewEnsemble[S particle.Attacher, P particle.Model[S]](model P, n int, seed SimulationKey) (*Ensemble[S, P], error) {
	if n <= 0 {
		return nil, fmt.Errorf("simulation: ensemble size must be positive, got %d", n)
	}

	rng := NewPartitionedRNG(seed)
	members := make([]*SingleSim[S, P], n)

	for i := 0; i < n; i++ {
		sim, err := NewSingleSim[S, P](model, rng.ForMember(i))
		if err != nil {
			return nil, fmt.Errorf("constructing member %d: %w", i, err)
		}
		members[i] = sim
	}

	return &Ensemble[S, P]{members: members, rng: rng}, nil
}

// Len returns the number of members in the ensemble.
func (e *Ensemble[S, P]) Len() int { return len(e.members) }

// Time returns the ensemble's synchronous clock (invariant E1: every
// member shares this time).
func (e *Ensemble[S, P]) Time() float64 { return e.members[0].Time() }

// AdvanceUntil advances every member to time t concurrently, using a
// worker pool capped at the host's hardware parallelism (spec.md §5).
// All-or-nothing in its result: if any member fails, the call as a whole
// fails and the first error is returned. Members that did not error are
// still rolled forward to exactly t; a member that errored keeps its
// earlier time, so after an error the members' clocks (invariant E1) may
// differ.
func (e *Ensemble[S, P]) AdvanceUntil(ctx context.Context, t float64) error {
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(max(1, runtime.GOMAXPROCS(0)))

	for _, member := range e.members {
		member := member
		g.Go(func() error {
			return member.AdvanceUntil(t)
		})
	}

	return g.Wait()
}

// StatesAt lifts SingleSim.StateAt across every member. Returns false if
// any member is out of its simulated window at time.
func (e *Ensemble[S, P]) StatesAt(time float64) ([]S, bool) {
	out := make([]S, len(e.members))
	for i, member := range e.members {
		state, ok := member.StateAt(time)
		if !ok {
			return nil, false
		}
		out[i] = state
	}
	return out, true
}

// Sample produces n snapshots of ensemble state, evenly spaced over
// [0, Time()).
func (e *Ensemble[S, P]) Sample(n int) ([][]S, error) {
	if n <= 0 {
		return nil, fmt.Errorf("simulation: sample count must be positive, got %d", n)
	}

	step := e.Time() / float64(n)
	out := make([][]S, n)
	for i := 0; i < n; i++ {
		states, ok := e.StatesAt(float64(i) * step)
		if !ok {
			return nil, fmt.Errorf("simulation: sample point %d out of simulated window", i)
		}
		out[i] = states
	}
	return out, nil
}

// LastStates returns every member's state at the ensemble's current time.
func (e *Ensemble[S, P]) LastStates() []S {
	states, _ := e.StatesAt(e.Time())
	return states
}

// LastTheta returns the fraction of members currently attached (C8),
// in [0, 1].
func (e *Ensemble[S, P]) LastTheta() float64 {
	return theta(e.LastStates())
}

// Thetas applies the θ computation to each of n samples produced by
// Sample.
func (e *Ensemble[S, P]) Thetas(n int) ([]float64, error) {
	samples, err := e.Sample(n)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(samples))
	for i, states := range samples {
		out[i] = theta(states)
	}
	return out, nil
}

// theta is the fraction of attached states among states.
func theta[S particle.Attacher](states []S) float64 {
	if len(states) == 0 {
		return 0
	}

	attached := 0
	for _, s := range states {
		if s.IsAttached() {
			attached++
		}
	}
	return float64(attached) / float64(len(states))
}
