package particle

import (
	"math"

	"github.com/sirupsen/logrus"
)

// InterferingState is a multivalent particle mid-flight: some number of
// ligands are bound, and the particle has either entered the host, exited
// (all ligands detached and it has drifted away), or is still undecided.
// Invariant: HasEntered and HasExited are never both true.
type InterferingState struct {
	HasEntered      bool
	HasExited       bool
	AttachedLigands uint16
}

// IsAttached implements Attacher: "attached" means the particle has
// successfully entered the host.
func (s InterferingState) IsAttached() bool { return s.HasEntered }

func (s InterferingState) bind() InterferingState {
	s.AttachedLigands++
	return s
}

// unbind releases one bound ligand. When the last ligand detaches, the
// particle is considered to have drifted away: a terminal exit.
func (s InterferingState) unbind() InterferingState {
	if s.AttachedLigands == 1 {
		return InterferingState{HasExited: true}
	}
	s.AttachedLigands--
	return s
}

func (s InterferingState) enter() InterferingState {
	s.HasEntered = true
	return s
}

// Interfering is a multivalent particle that can attach via several
// ligands and, while attached, attempt to enter the host. Each attached
// ligand obstructs entry by a constant factor.
type Interfering struct {
	TotalLigands    uint16
	ReceptorDensity float64 // ρ

	AttachRate   float64 // per free ligand, per receptor
	DeattachRate float64 // per attached ligand

	EnterRate         float64 // unobstructed entry rate
	ObstructionFactor float64 // per-bond multiplicative penalty on entry

	// InitialCollisionFactor scales the binding rate of the very first
	// ligand to attach, relative to subsequent ones.
	InitialCollisionFactor float64
}

// NewInterfering constructs an Interfering model. Warns (does not fail)
// if obstructionFactor >= 1, matching the source model's behavior: such a
// particle would find entry easier the more ligands are attached, which
// is almost certainly a parameter mistake.
func NewInterfering(totalLigands uint16, receptorDensity, attachRate, deattachRate, enterRate, obstructionFactor, initialCollisionFactor float64) Interfering {
	if obstructionFactor >= 1.0 {
		logrus.Warnf("particle: Interfering.ObstructionFactor should probably be < 1.0 (is %v)", obstructionFactor)
	}

	return Interfering{
		TotalLigands:           totalLigands,
		ReceptorDensity:        receptorDensity,
		AttachRate:             attachRate,
		DeattachRate:           deattachRate,
		EnterRate:              enterRate,
		ObstructionFactor:      obstructionFactor,
		InitialCollisionFactor: initialCollisionFactor,
	}
}

// Initial implements Model[InterferingState].
func (m Interfering) Initial() InterferingState {
	return InterferingState{}
}

// Events implements Model[InterferingState].
func (m Interfering) Events(state InterferingState) []Event[InterferingState] {
	if state.HasEntered || state.HasExited {
		return []Event[InterferingState]{{Rate: 0, Target: state}}
	}

	events := make([]Event[InterferingState], 0, 3)

	if state.AttachedLigands > 0 {
		obstruction := math.Pow(m.ObstructionFactor, float64(state.AttachedLigands-1))
		events = append(events, Event[InterferingState]{
			Rate:   float64(state.AttachedLigands) * m.EnterRate * obstruction,
			Target: state.enter(),
		})

		events = append(events, Event[InterferingState]{
			Rate:   float64(state.AttachedLigands) * m.DeattachRate,
			Target: state.unbind(),
		})
	}

	freeLigands := m.TotalLigands - state.AttachedLigands
	bindRate := float64(freeLigands) * m.AttachRate * m.ReceptorDensity
	if state.AttachedLigands == 0 {
		bindRate *= m.InitialCollisionFactor
	}
	events = append(events, Event[InterferingState]{Rate: bindRate, Target: state.bind()})

	return events
}

// States implements MarkovChain[InterferingState]: attached ligands range
// over 0..=TotalLigands, crossed with the (HasEntered, HasExited) pair
// restricted to its three reachable combinations.
func (m Interfering) States() []InterferingState {
	out := make([]InterferingState, 0, 2*(int(m.TotalLigands)+1))
	for attached := uint16(0); attached <= m.TotalLigands; attached++ {
		out = append(out,
			InterferingState{AttachedLigands: attached},
			InterferingState{HasEntered: true, AttachedLigands: attached},
			InterferingState{HasExited: true, AttachedLigands: attached},
		)
	}
	return out
}
