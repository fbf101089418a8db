package fest

import (
	"hash/fnv"
	"math/rand"
)

// GenerationKey uniquely identifies a reproducible random fest.
// Two generations with the same key and configuration MUST produce
// identical circuits and jugglers.
type GenerationKey int64

// NewGenerationKey creates a GenerationKey from a seed value.
func NewGenerationKey(seed int64) GenerationKey {
	return GenerationKey(seed)
}

const (
	// SubsystemCircuits is the RNG subsystem for circuit skills.
	SubsystemCircuits = "circuits"
	// SubsystemJugglers is the RNG subsystem for juggler skills.
	SubsystemJugglers = "jugglers"
	// SubsystemPreferences is the RNG subsystem for preference lists.
	SubsystemPreferences = "preferences"
)

// PartitionedRNG hands out one random stream per generator subsystem.
// Each stream is seeded with key XOR hash(subsystem), so drawing more
// preferences never shifts the skills drawn for the same seed.
// Not safe for concurrent use.
type PartitionedRNG struct {
	key     GenerationKey
	streams map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a GenerationKey.
func NewPartitionedRNG(key GenerationKey) *PartitionedRNG {
	return &PartitionedRNG{key: key, streams: make(map[string]*rand.Rand)}
}

// ForSubsystem returns the stream for name, creating it on first use.
// Repeated calls with the same name share one *rand.Rand.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	stream, ok := p.streams[name]
	if !ok {
		stream = rand.New(rand.NewSource(int64(p.key) ^ subsystemHash(name)))
		p.streams[name] = stream
	}
	return stream
}

// Key returns the GenerationKey used to create this PartitionedRNG.
func (p *PartitionedRNG) Key() GenerationKey {
	return p.key
}

func subsystemHash(name string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(name))
	return int64(h.Sum64())
}
