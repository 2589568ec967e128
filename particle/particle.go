package particle

import "errors"

// ErrNoEvents indicates a model returned an empty event list from Events,
// which is always a model bug: every state must return at least a
// zero-rate self-loop for terminal states.
var ErrNoEvents = errors.New("particle: events() returned no events")

// ErrNaNRate indicates a model returned a NaN rate from Events.
var ErrNaNRate = errors.New("particle: event rate is NaN")

// ErrConstruction indicates a model constructor was given invalid
// parameters (e.g. mismatched rate-table lengths).
var ErrConstruction = errors.New("particle: invalid model parameters")

// Model is the contract every particle must satisfy to be simulatable.
// S is the model's state type: a small, value-typed, comparable struct.
//
// Events must be deterministic: calling Events twice on the same state
// of the same model must yield identical rates and targets. A terminal
// (absorbing) state is represented by a single self-loop event with
// Rate == 0, never by an empty slice.
type Model[S any] interface {
	// Initial returns the canonical starting state.
	Initial() S

	// Events returns the outgoing transitions and their instantaneous
	// rates from state. Rates must be finite and non-negative.
	Events(state S) []Event[S]
}

// Event is one outgoing transition: an instantaneous rate and the state
// it leads to.
type Event[S any] struct {
	Rate   float64
	Target S
}

// Attacher is the attachment predicate (C8): the per-state boolean used
// by an Ensemble to compute θ. Every concrete state type implements it.
type Attacher interface {
	IsAttached() bool
}

// MarkovChain is an optional side contract, orthogonal to simulation:
// it enumerates every reachable state of a bounded model (the
// enumeration may also contain unreachable combinations). Used by
// analysis tooling to build rate matrices; never called by the simulator.
type MarkovChain[S any] interface {
	States() []S
}

// Probability pairs a reachable target state with its normalised
// transition probability, as returned by EventProbabilities.
type Probability[S any] struct {
	Target S
	P      float64
}

// EventProbabilities normalises the rates returned by model.Events(state)
// by their sum and returns them as probabilities. Returns nil if state is
// terminal (total rate 0).
func EventProbabilities[S any](model Model[S], state S) []Probability[S] {
	events := model.Events(state)
	total := 0.0
	for _, e := range events {
		total += e.Rate
	}
	if total == 0 {
		return nil
	}

	out := make([]Probability[S], len(events))
	for i, e := range events {
		out[i] = Probability[S]{Target: e.Target, P: e.Rate / total}
	}
	return out
}
