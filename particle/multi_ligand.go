package particle

import "fmt"

// MultiLigandState tracks how many of a particle's ligands are currently
// bound, out of TotalLigands.
type MultiLigandState struct {
	TotalLigands    uint16
	AttachedLigands uint16
}

// IsAttached implements Attacher: a MultiLigand particle is considered
// attached as soon as any ligand is bound.
func (s MultiLigandState) IsAttached() bool { return s.AttachedLigands > 0 }

func (s MultiLigandState) bind() MultiLigandState {
	s.AttachedLigands++
	return s
}

func (s MultiLigandState) unbind() MultiLigandState {
	s.AttachedLigands--
	return s
}

// MultiLigand is a particle with several independently-binding ligands,
// each governed by an occupancy-indexed rate table rather than a single
// scalar rate. OnRates[k] is the rate of the k->k+1 transition, OffRates[k]
// the rate of the k+1->k transition.
type MultiLigand struct {
	ReceptorDensity float64   // ρ
	BindingStrength float64   // β
	OnRates         []float64 // indexed by current occupancy
	OffRates        []float64 // indexed by current occupancy - 1
}

// NewMultiLigand constructs a MultiLigand. on and off must have equal
// length (TotalLigands is derived from that length); otherwise returns
// ErrConstruction.
func NewMultiLigand(receptorDensity, bindingStrength float64, onRates, offRates []float64) (MultiLigand, error) {
	if len(onRates) != len(offRates) {
		return MultiLigand{}, fmt.Errorf("%w: on_rates has %d entries, off_rates has %d; must match",
			ErrConstruction, len(onRates), len(offRates))
	}

	return MultiLigand{
		ReceptorDensity: receptorDensity,
		BindingStrength: bindingStrength,
		OnRates:         onRates,
		OffRates:        offRates,
	}, nil
}

// TotalLigands is the number of ligands the particle has, derived from
// the rate table length.
func (m MultiLigand) TotalLigands() uint16 {
	return uint16(len(m.OnRates))
}

// Initial implements Model[MultiLigandState].
func (m MultiLigand) Initial() MultiLigandState {
	return MultiLigandState{TotalLigands: m.TotalLigands(), AttachedLigands: 0}
}

// Events implements Model[MultiLigandState].
func (m MultiLigand) Events(state MultiLigandState) []Event[MultiLigandState] {
	events := make([]Event[MultiLigandState], 0, 2)

	if state.AttachedLigands < m.TotalLigands() {
		rate := m.OnRates[state.AttachedLigands] * m.BindingStrength
		if state.AttachedLigands == 0 {
			rate *= m.ReceptorDensity
		}
		events = append(events, Event[MultiLigandState]{Rate: rate, Target: state.bind()})
	}

	if state.AttachedLigands > 0 {
		rate := m.OffRates[state.AttachedLigands-1]
		events = append(events, Event[MultiLigandState]{Rate: rate, Target: state.unbind()})
	}

	return events
}

// States implements MarkovChain[MultiLigandState]: occupancy ranges over
// 0..=TotalLigands.
func (m MultiLigand) States() []MultiLigandState {
	total := m.TotalLigands()
	out := make([]MultiLigandState, 0, total+1)
	for attached := uint16(0); attached <= total; attached++ {
		out = append(out, MultiLigandState{TotalLigands: total, AttachedLigands: attached})
	}
	return out
}
