// Package entropy sources the process-wide seed material used to start
// each worker's PRNG. The primary source is the OS entropy device
// (/dev/urandom on Linux); if that cannot be opened the package falls back
// to a wall-clock-plus-monotonic-counter composite, whitened through the
// same SIMD-accelerated SHA-256 the teacher program uses for checksums.
package entropy

import (
	"fmt"
	"os"
	"sync/atomic"
	"time"

	sha256simd "github.com/minio/sha256-simd"
)

// DefaultSourcePath is the entropy device tried before falling back to the
// time-based composite.
const DefaultSourcePath = "/dev/urandom"

var fallbackCounter uint64

// Seed32 returns 32 bytes of process-wide entropy, read from sourcePath if
// it can be opened, or derived from a whitened fallback composite
// otherwise. warn, if non-nil, receives a human-readable message describing
// the fallback (spec.md's "Entropy unavailable" error path requires a
// warning to standard error, emitted by the caller).
func Seed32(sourcePath string, warn func(string)) [32]byte {
	if sourcePath == "" {
		sourcePath = DefaultSourcePath
	}

	if f, err := os.Open(sourcePath); err == nil {
		defer f.Close()
		var buf [32]byte
		if _, err := readFull(f, buf[:]); err == nil {
			return buf
		}
		if warn != nil {
			warn(fmt.Sprintf("entropy: read from %s failed, falling back to time-based seeding", sourcePath))
		}
	} else if warn != nil {
		warn(fmt.Sprintf("entropy: cannot open %s (%v), falling back to time-based seeding", sourcePath, err))
	}

	return fallbackSeed32()
}

func readFull(f *os.File, buf []byte) (int, error) {
	total := 0
	for total < len(buf) {
		n, err := f.Read(buf[total:])
		total += n
		if err != nil {
			return total, err
		}
		if n == 0 {
			return total, fmt.Errorf("entropy: short read")
		}
	}
	return total, nil
}

// fallbackSeed32 mixes wall-clock time with a monotonically increasing
// counter (so concurrent calls within the same process never collide) and
// whitens the composite through SHA-256, since raw wall-clock bits are low
// entropy and heavily structured.
func fallbackSeed32() [32]byte {
	n := atomic.AddUint64(&fallbackCounter, 1)
	now := time.Now()

	var composite [24]byte
	putLE64(composite[0:8], uint64(now.UnixNano()))
	putLE64(composite[8:16], n)
	putLE64(composite[16:24], uint64(os.Getpid()))

	return sha256simd.Sum256(composite[:])
}

func putLE64(dst []byte, v uint64) {
	for i := 0; i < 8; i++ {
		dst[i] = byte(v >> (8 * i))
	}
}
