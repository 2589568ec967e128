// Package simulation is the core CTMC simulation engine: the Gillespie
// event scheduler, the per-particle transition history, and the ensemble
// driver that advances many independent chains in parallel.
//
// # Reading Guide
//
//   - rng.go: deterministic, per-member RNG partitioning
//   - transition.go: the Transition record
//   - advance.go: the Gillespie sampling primitive (waiting time + next state)
//   - single.go: SingleSim, one particle's time cursor and history
//   - ensemble.go: Ensemble, N independent SingleSims advanced in parallel
//   - summary.go: ensemble-level θ(t) statistics
//
// Nothing here knows about any concrete particle.Model; it is generic over
// the particle package's Model[S] contract.
package simulation
