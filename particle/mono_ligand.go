package particle

// MonoLigandState is the two-state chain for a single-ligand particle:
// either attached to a receptor, or not.
type MonoLigandState struct {
	Attached bool
}

// IsAttached implements Attacher.
func (s MonoLigandState) IsAttached() bool { return s.Attached }

// toggle flips attachment status.
func (s MonoLigandState) toggle() MonoLigandState {
	return MonoLigandState{Attached: !s.Attached}
}

// MonoLigand is the worked example of §4.5: a single ligand that binds a
// receptor at a density- and strength-scaled on-rate, and unbinds at a
// constant off-rate.
type MonoLigand struct {
	ReceptorDensity float64 // ρ
	BindingStrength float64 // β
	OnRate          float64 // k+
	OffRate         float64 // k-
}

// NewMonoLigand constructs a MonoLigand. All rates must be non-negative;
// this is not validated here since any real-valued parameters produce a
// well-formed (if degenerate) model.
func NewMonoLigand(receptorDensity, bindingStrength, onRate, offRate float64) MonoLigand {
	return MonoLigand{
		ReceptorDensity: receptorDensity,
		BindingStrength: bindingStrength,
		OnRate:          onRate,
		OffRate:         offRate,
	}
}

// Initial implements Model[MonoLigandState].
func (m MonoLigand) Initial() MonoLigandState {
	return MonoLigandState{Attached: false}
}

// Events implements Model[MonoLigandState].
func (m MonoLigand) Events(state MonoLigandState) []Event[MonoLigandState] {
	if state.Attached {
		return []Event[MonoLigandState]{
			{Rate: m.OffRate, Target: state.toggle()},
		}
	}
	return []Event[MonoLigandState]{
		{Rate: m.OnRate * m.ReceptorDensity * m.BindingStrength, Target: state.toggle()},
	}
}

// States implements MarkovChain[MonoLigandState]: the chain has exactly
// two reachable states.
func (m MonoLigand) States() []MonoLigandState {
	return []MonoLigandState{
		{Attached: false},
		{Attached: true},
	}
}
