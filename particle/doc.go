// Package particle defines the contract every simulatable particle model
// must satisfy, plus the concrete models shipped with the engine.
//
// # Reading Guide
//
//   - particle.go: the Model and MarkovChain contracts, Event, Attacher
//   - mono_ligand.go: the worked two-state example
//   - multi_ligand.go, interfering.go, fatiguing.go: the remaining models
//
// Models are plain, cloneable value structs. Nothing in this package
// schedules transitions or owns RNG state — that is simulation's job.
package particle
