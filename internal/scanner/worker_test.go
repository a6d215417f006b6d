package scanner

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/keyhunt71/puzzle71/internal/curve"
	"github.com/keyhunt71/puzzle71/internal/hash160"
	"github.com/keyhunt71/puzzle71/internal/params"
)

func targetForKey(k *big.Int) Target {
	compressed := curve.Compress(curve.ScalarMultGenTable(k).ToAffine())
	h := hash160.Sum160(compressed)
	return NewTarget(h, "test-address")
}

// TestForcedSeedFindsExactSeed is scenario S1: target = hash160 of
// compressed(LOW*G), force seed LOW, expect the found key to equal LOW
// within the first batch.
func TestForcedSeedFindsExactSeed(t *testing.T) {
	target := targetForKey(params.Low)
	shared := NewShared()
	w := NewWorker(0, 1, target, shared, new(big.Int).Set(params.Low))

	record := w.Run(1)
	if record == nil {
		t.Fatal("expected a found record")
	}
	if record.PrivateKey.Cmp(params.Low) != 0 {
		t.Fatalf("found key = %s, want %s", record.PrivateKey, params.Low)
	}
}

// TestForcedSeedFindsOffsetKey is scenario S2: target = hash160 of
// compressed((LOW+0x42)*G), force seed LOW, expect found key LOW+0x42 with
// a small total-keys count.
func TestForcedSeedFindsOffsetKey(t *testing.T) {
	want := new(big.Int).Add(params.Low, big.NewInt(0x42))
	target := targetForKey(want)
	shared := NewShared()
	w := NewWorker(0, 1, target, shared, new(big.Int).Set(params.Low))

	record := w.Run(1)
	if record == nil {
		t.Fatal("expected a found record")
	}
	if record.PrivateKey.Cmp(want) != 0 {
		t.Fatalf("found key = %s, want %s", record.PrivateKey, want)
	}
	if record.TotalKeysChecked < 0x43 || record.TotalKeysChecked > params.BatchSize {
		t.Fatalf("total keys checked = %d, want between 0x43 and BatchSize", record.TotalKeysChecked)
	}
}

// TestForcedSeedFindsKeyAcrossBatchBoundary is scenario S3: target at
// LOW+BatchSize, confirming the chunk-advance (frontier += G) step crosses
// correctly into the second batch.
func TestForcedSeedFindsKeyAcrossBatchBoundary(t *testing.T) {
	want := new(big.Int).Add(params.Low, big.NewInt(params.BatchSize))
	target := targetForKey(want)
	shared := NewShared()
	w := NewWorker(0, 1, target, shared, new(big.Int).Set(params.Low))

	record := w.Run(1)
	if record == nil {
		t.Fatal("expected a found record within the forced chunk")
	}
	if record.PrivateKey.Cmp(want) != 0 {
		t.Fatalf("found key = %s, want %s", record.PrivateKey, want)
	}
}

// TestNoMatchWhenTargetAbsent is a scaled-down S4: a target that cannot
// appear within the bounded number of chunks run must yield no record, and
// the shared counter must have advanced by exactly chunks*ChunkSize.
func TestNoMatchWhenTargetAbsent(t *testing.T) {
	var absent [20]byte
	copy(absent[:], []byte("not-a-real-hash160!"))
	target := NewTarget(absent, "absent-address")

	shared := NewShared()
	w := NewWorker(0, 42, target, shared, new(big.Int).Set(params.Low))

	const chunks = 2
	record := w.Run(chunks)
	if record != nil {
		t.Fatalf("expected no match, got %+v", record)
	}
	want := uint64(chunks * params.ChunkSize)
	if shared.TotalKeys.Load() != want {
		t.Fatalf("total keys checked = %d, want %d", shared.TotalKeys.Load(), want)
	}
}

func TestWorkerStopsImmediatelyWhenAlreadyStopped(t *testing.T) {
	target := targetForKey(params.Low)
	shared := NewShared()
	shared.Cancel()
	w := NewWorker(0, 7, target, shared, nil)

	record := w.Run(0)
	if record != nil {
		t.Fatal("a worker started on an already-stopped Shared must not find anything")
	}
	if shared.TotalKeys.Load() != 0 {
		t.Fatal("a worker that never ran a batch must not flush any keys")
	}
}

func TestDrawSeedStaysWithinRange(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	maxSeed := params.MaxSeed()
	for i := 0; i < 1000; i++ {
		seed := drawSeed(rng)
		if seed.Cmp(params.Low) < 0 || seed.Cmp(maxSeed) > 0 {
			t.Fatalf("drawSeed produced %s, outside [%s, %s]", seed, params.Low, maxSeed)
		}
	}
}

func TestWorkerRNGSeedDiffersPerWorker(t *testing.T) {
	entropy := [32]byte{1, 2, 3}
	a := WorkerRNGSeed(entropy, 0)
	b := WorkerRNGSeed(entropy, 1)
	if a == b {
		t.Fatal("two different worker IDs must not derive the same RNG seed")
	}
}

func TestTargetMatchesRejectsOnPrefixMismatch(t *testing.T) {
	target := NewTarget([20]byte{0xAA, 0xBB, 0xCC, 0xDD, 0xEE}, "addr")
	candidate := [20]byte{0xAA, 0xBB, 0xCC, 0xDE, 0xEE}
	if target.Matches(candidate) {
		t.Fatal("Matches must reject a candidate whose prefix differs")
	}
}
