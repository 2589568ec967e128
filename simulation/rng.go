package simulation

import (
	"fmt"
	"hash/fnv"
	"math/rand"
)

// SimulationKey uniquely identifies a reproducible ensemble run. Two
// ensembles with the same SimulationKey and identical model/member count
// produce bit-for-bit identical histories.
type SimulationKey int64

// NewSimulationKey creates a SimulationKey from a seed value.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

// memberSubsystem returns the RNG subsystem name for ensemble member n.
func memberSubsystem(n int) string {
	return fmt.Sprintf("member_%d", n)
}

// PartitionedRNG provides deterministic, isolated *rand.Rand instances per
// named subsystem, derived from a single master SimulationKey. Used to
// give each ensemble member its own independent, reproducible stream
// without any process-global RNG state (spec.md §5).
//
// Thread-safety: NOT thread-safe. All ForSubsystem calls for a given
// ensemble happen during construction, from a single goroutine; the
// returned *rand.Rand instances are then used exclusively by their owning
// member's goroutine.
type PartitionedRNG struct {
	key        SimulationKey
	subsystems map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a SimulationKey.
func NewPartitionedRNG(key SimulationKey) *PartitionedRNG {
	return &PartitionedRNG{
		key:        key,
		subsystems: make(map[string]*rand.Rand),
	}
}

// ForSubsystem returns a deterministically-seeded RNG for the named
// subsystem. The same subsystem name always returns the same *rand.Rand
// instance (cached). Never returns nil.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}

	derivedSeed := int64(p.key) ^ fnv1a64(name)
	rng := rand.New(rand.NewSource(derivedSeed))
	p.subsystems[name] = rng
	return rng
}

// ForMember returns the deterministically-seeded RNG for ensemble member n.
func (p *PartitionedRNG) ForMember(n int) *rand.Rand {
	return p.ForSubsystem(memberSubsystem(n))
}

// Key returns the SimulationKey used to create this PartitionedRNG.
func (p *PartitionedRNG) Key() SimulationKey {
	return p.key
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
