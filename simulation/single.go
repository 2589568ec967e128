package simulation

import (
	"math"
	"math/rand"
	"sort"

	"github.com/odilf/indecision/particle"
)

// SingleSim owns one particle, a monotone time cursor, a history of past
// transitions, and the pending (not-yet-reached) next transition. It
// advances strictly sequentially: a single chain's transitions cannot be
// parallelised without changing the Gillespie semantics (spec.md §5).
type SingleSim[S any, P particle.Model[S]] struct {
	model   P
	time    float64
	history []Transition[S]
	pending Transition[S]
	rng     *rand.Rand
}

// NewSingleSim constructs a SingleSim for model, drawing its first
// pending transition immediately. rng should not be shared with any
// other simulator.
func NewSingleSim[S any, P particle.Model[S]](model P, rng *rand.Rand) (*SingleSim[S, P], error) {
	initial := model.Initial()

	s := &SingleSim[S, P]{
		model:   model,
		history: []Transition[S]{{Time: 0, Target: initial}},
		rng:     rng,
	}

	target, dt, err := advance[S, P](rng, model, initial)
	if err != nil {
		return nil, err
	}

	if math.IsInf(dt, 1) {
		s.pending = Transition[S]{Time: math.Inf(1), Target: initial}
	} else {
		s.pending = Transition[S]{Time: dt, Target: target}
	}

	return s, nil
}

// Time returns the simulator's current time.
func (s *SingleSim[S, P]) Time() float64 { return s.time }

// Model returns the simulator's particle model.
func (s *SingleSim[S, P]) Model() P { return s.model }

// AdvanceUntil advances the simulator until at least time t. If t is
// already <= the current time, this is a no-op (the clock is monotone).
func (s *SingleSim[S, P]) AdvanceUntil(t float64) error {
	if t <= s.time {
		return nil
	}

	for s.pending.Time <= t {
		s.history = append(s.history, s.pending)

		target, dt, err := advance[S, P](s.rng, s.model, s.pending.Target)
		if err != nil {
			return err
		}

		if math.IsInf(dt, 1) {
			s.pending = Transition[S]{Time: math.Inf(1), Target: s.pending.Target}
		} else {
			s.pending = Transition[S]{Time: s.pending.Time + dt, Target: target}
		}
	}

	s.time = t
	return nil
}

// TransitionHistory returns all transitions recorded so far, in
// increasing time order. The returned slice must not be mutated by the
// caller.
func (s *SingleSim[S, P]) TransitionHistory() []Transition[S] {
	return s.history
}

// LastTransitionAt returns the last transition at or before time, using a
// binary search over history (time-sorted by construction — the
// "acceptable optimisation" spec.md §4.3 allows over a linear scan).
// Returns false if time precedes the first transition, or exceeds the
// pending transition's time (the simulator hasn't been advanced that far
// yet).
func (s *SingleSim[S, P]) LastTransitionAt(time float64) (Transition[S], bool) {
	var zero Transition[S]

	if time < s.history[0].Time {
		return zero, false
	}

	// idx is the first index whose Time exceeds `time`; idx-1 is the last
	// transition at or before `time`.
	idx := sort.Search(len(s.history), func(i int) bool {
		return s.history[i].Time > time
	})

	if idx < len(s.history) {
		return s.history[idx-1], true
	}

	// Every recorded transition is <= time; the answer is the last one,
	// provided `time` is still within the simulated window.
	if s.pending.Time > time {
		return s.history[len(s.history)-1], true
	}
	return zero, false
}

// StateAt returns the state at time, per LastTransitionAt.
func (s *SingleSim[S, P]) StateAt(time float64) (S, bool) {
	t, ok := s.LastTransitionAt(time)
	return t.Target, ok
}

// LastState returns the state at the simulator's current time. Always
// succeeds: a SingleSim's history always covers [0, time] (invariants
// P1/P3).
func (s *SingleSim[S, P]) LastState() S {
	state, _ := s.StateAt(s.time)
	return state
}
