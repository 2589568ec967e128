package particle

import (
	"math"

	"github.com/sirupsen/logrus"
)

// FatiguingState generalises InterferingState with a second ligand pool:
// ligands that have previously detached and now rebind at a distinct
// (fatigued) rate. Invariant: HasEntered and HasExited are never both
// true.
type FatiguingState struct {
	HasEntered      bool
	HasExited       bool
	AttachedLigands uint16
	FatiguedLigands uint16
}

// IsAttached implements Attacher.
func (s FatiguingState) IsAttached() bool { return s.HasEntered }

func (s FatiguingState) bindRegular() FatiguingState {
	s.AttachedLigands++
	return s
}

func (s FatiguingState) bindFatigued() FatiguingState {
	s.AttachedLigands++
	s.FatiguedLigands--
	return s
}

// unbind releases one bound ligand into the fatigued pool, unless this is
// the last attached ligand, in which case the particle exits instead.
func (s FatiguingState) unbind() FatiguingState {
	if s.AttachedLigands == 1 {
		return FatiguingState{HasExited: true}
	}
	s.AttachedLigands--
	s.FatiguedLigands++
	return s
}

func (s FatiguingState) enter() FatiguingState {
	s.HasEntered = true
	return s
}

// Fatiguing is Interfering's generalisation: ligands that detach become
// "fatigued" and rebind at a distinct (typically lower) rate, and
// contribute their own obstruction factor to entry.
type Fatiguing struct {
	TotalLigands    uint16
	ReceptorDensity float64 // ρ

	AttachRate         float64 // per free, non-fatigued ligand
	FatiguedAttachRate float64 // per fatigued ligand
	DeattachRate       float64 // per attached ligand

	EnterRate                 float64
	ObstructionFactor         float64 // entry penalty per attached ligand beyond the first
	FatiguedObstructionFactor float64 // entry penalty per ligand in the fatigued (detached) pool

	// InitialCollisionFactor scales the first ligand's binding rate.
	InitialCollisionFactor float64
}

// NewFatiguing constructs a Fatiguing model.
func NewFatiguing(totalLigands uint16, receptorDensity, attachRate, fatiguedAttachRate, deattachRate, enterRate, obstructionFactor, fatiguedObstructionFactor, initialCollisionFactor float64) Fatiguing {
	if obstructionFactor >= 1.0 {
		logrus.Warnf("particle: Fatiguing.ObstructionFactor should probably be < 1.0 (is %v)", obstructionFactor)
	}

	return Fatiguing{
		TotalLigands:              totalLigands,
		ReceptorDensity:           receptorDensity,
		AttachRate:                attachRate,
		FatiguedAttachRate:        fatiguedAttachRate,
		DeattachRate:              deattachRate,
		EnterRate:                 enterRate,
		ObstructionFactor:         obstructionFactor,
		FatiguedObstructionFactor: fatiguedObstructionFactor,
		InitialCollisionFactor:    initialCollisionFactor,
	}
}

// Initial implements Model[FatiguingState].
func (m Fatiguing) Initial() FatiguingState {
	return FatiguingState{}
}

// Events implements Model[FatiguingState].
func (m Fatiguing) Events(state FatiguingState) []Event[FatiguingState] {
	if state.HasEntered || state.HasExited {
		return []Event[FatiguingState]{{Rate: 0, Target: state}}
	}

	events := make([]Event[FatiguingState], 0, 4)

	if state.AttachedLigands > 0 {
		obstruction := math.Pow(m.ObstructionFactor, float64(state.AttachedLigands-1)) *
			math.Pow(m.FatiguedObstructionFactor, float64(state.FatiguedLigands))
		events = append(events, Event[FatiguingState]{
			Rate:   float64(state.AttachedLigands) * m.EnterRate * obstruction,
			Target: state.enter(),
		})

		events = append(events, Event[FatiguingState]{
			Rate:   float64(state.AttachedLigands) * m.DeattachRate,
			Target: state.unbind(),
		})
	}

	freeLigands := m.TotalLigands - state.AttachedLigands - state.FatiguedLigands
	regularRate := float64(freeLigands) * m.AttachRate * m.ReceptorDensity
	if state.AttachedLigands == 0 {
		regularRate *= m.InitialCollisionFactor
	}
	events = append(events, Event[FatiguingState]{Rate: regularRate, Target: state.bindRegular()})

	if state.FatiguedLigands > 0 {
		events = append(events, Event[FatiguingState]{
			Rate:   float64(state.FatiguedLigands) * m.FatiguedAttachRate,
			Target: state.bindFatigued(),
		})
	}

	return events
}

// States implements MarkovChain[FatiguingState]. Attached and fatigued
// ligand counts form a triangle bounded by TotalLigands, crossed with the
// three reachable (HasEntered, HasExited) combinations.
func (m Fatiguing) States() []FatiguingState {
	out := make([]FatiguingState, 0, int(m.TotalLigands)*int(m.TotalLigands))
	for attached := uint16(0); attached <= m.TotalLigands; attached++ {
		for fatigued := uint16(0); fatigued <= m.TotalLigands-attached; fatigued++ {
			out = append(out,
				FatiguingState{AttachedLigands: attached, FatiguedLigands: fatigued},
				FatiguingState{HasEntered: true, AttachedLigands: attached, FatiguedLigands: fatigued},
				FatiguingState{HasExited: true, AttachedLigands: attached, FatiguedLigands: fatigued},
			)
		}
	}
	return out
}
