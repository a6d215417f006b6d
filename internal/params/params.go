// Package params collects the fixed numeric constants that size the scan:
// the target range, batch/chunk dimensions, and timing intervals. Gathering
// them in one leaf package keeps every other package free of magic numbers.
package params

import "math/big"

// Low and High bound the closed search interval [2^70, 2^71 - 1] — puzzle
// #71's range.
var (
	Low  = new(big.Int).Lsh(big.NewInt(1), 70)
	High = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 71), big.NewInt(1))
)

const (
	// BatchSize is the number of Jacobian points walked before a single
	// Montgomery batch inversion converts them all to affine.
	BatchSize = 2048

	// NumBatches is the number of batches a worker walks from one seed
	// before drawing a fresh seed.
	NumBatches = 512

	// ChunkSize is the total number of consecutive keys one seed covers:
	// BatchSize * NumBatches = 2^20.
	ChunkSize = BatchSize * NumBatches

	// FlushThreshold is the local-counter flush policy from the worker
	// loop: flush to the shared total once the local count has reached
	// this many keys.
	FlushThreshold = 500_000

	// StatsInterval is the default sampling period, in seconds, for the
	// stats sampler's progress line.
	StatsInterval = 10

	// DefaultThreads is the worker count used when the caller does not
	// specify one.
	DefaultThreads = 4

	// MaxThreads bounds the CLI-configurable worker count.
	MaxThreads = 256
)

// ChunkSizeBig mirrors ChunkSize as a *big.Int for range arithmetic.
func ChunkSizeBig() *big.Int {
	return big.NewInt(ChunkSize)
}

// MaxSeed is the highest seed a worker may legally draw: High - ChunkSize + 1.
// Any chosen seed must not let its chunk run past High.
func MaxSeed() *big.Int {
	return new(big.Int).Sub(new(big.Int).Add(High, big.NewInt(1)), big.NewInt(ChunkSize))
}
