// Package scanner implements the per-thread batched scanning loop: seed
// selection, chunked Jacobian walking with batch affine conversion,
// hashing, and target comparison.
package scanner

import (
	"math/big"
	"math/rand"
	"time"

	"github.com/keyhunt71/puzzle71/internal/batch"
	"github.com/keyhunt71/puzzle71/internal/curve"
	"github.com/keyhunt71/puzzle71/internal/hash160"
	"github.com/keyhunt71/puzzle71/internal/params"
)

// Worker holds one scanning thread's private state: its own PRNG, its own
// reusable Jacobian/affine batch buffers, and an optional forced first
// seed for deterministic test scenarios. Nothing here is shared with other
// workers except through Shared.
type Worker struct {
	ID        int
	Target    Target
	Shared    *Shared
	rng       *rand.Rand
	forceSeed *big.Int

	jac []curve.Jacobian
	aff []curve.Affine
}

// NewWorker builds a worker. If forceSeed is non-nil, the worker's very
// first chunk starts at exactly that seed instead of a randomly drawn one
// — this is what the forced-seed test scenarios (spec.md §8 S1-S3) need.
func NewWorker(id int, rngSeed int64, target Target, shared *Shared, forceSeed *big.Int) *Worker {
	return &Worker{
		ID:        id,
		Target:    target,
		Shared:    shared,
		rng:       rand.New(rand.NewSource(rngSeed)),
		forceSeed: forceSeed,
		jac:       make([]curve.Jacobian, params.BatchSize),
		aff:       make([]curve.Affine, params.BatchSize),
	}
}

func (w *Worker) nextSeed() *big.Int {
	if w.forceSeed != nil {
		s := w.forceSeed
		w.forceSeed = nil
		return s
	}
	return drawSeed(w.rng)
}

// Run drives the worker's scan loop until a match is found, the shared
// state signals stop, or stopAfterChunks chunks have been completed
// (stopAfterChunks <= 0 means unbounded, as the coordinator runs it in
// production; tests pass a positive bound so a single worker terminates).
// It returns the found record, or nil if the loop ended without a match.
func (w *Worker) Run(stopAfterChunks int) *FoundRecord {
	chunksRun := 0
	for {
		if w.Shared.Stopped() {
			return nil
		}

		seed := w.nextSeed()
		point := curve.ScalarMultGenTable(seed)
		var localCounter uint64

		for batchNum := 0; batchNum < params.NumBatches; batchNum++ {
			batch.Walk(w.jac, point)
			batch.ToAffine(w.aff, w.jac)

			for i := range w.aff {
				if w.aff[i].Infinity {
					continue
				}
				compressed := curve.Compress(w.aff[i])
				h := hash160.Sum160(compressed)
				if w.Target.Matches(h) {
					offset := int64(batchNum)*params.BatchSize + int64(i)
					key := new(big.Int).Add(seed, big.NewInt(offset))

					w.Shared.TotalKeys.Add(localCounter + uint64(i) + 1)
					record := &FoundRecord{
						PrivateKey:       key,
						Target:           w.Target,
						TotalKeysChecked: w.Shared.TotalKeys.Load(),
						FoundAt:          time.Now(),
					}
					return record
				}
			}

			localCounter += params.BatchSize
			if localCounter >= params.FlushThreshold {
				w.Shared.TotalKeys.Add(localCounter)
				localCounter = 0
			}

			last := w.jac[len(w.jac)-1]
			point, _ = curve.AddMixed(last, curve.Generator)

			if w.Shared.Stopped() {
				w.Shared.TotalKeys.Add(localCounter)
				return nil
			}
		}

		if localCounter > 0 {
			w.Shared.TotalKeys.Add(localCounter)
		}

		chunksRun++
		if stopAfterChunks > 0 && chunksRun >= stopAfterChunks {
			return nil
		}
	}
}
