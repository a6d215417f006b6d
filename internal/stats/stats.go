// Package stats implements the background sampler that periodically
// reports scan throughput: a relaxed read of the shared counter, compared
// against the previous sample and against the run's start time.
package stats

import (
	"fmt"
	"io"
	"time"

	"github.com/keyhunt71/puzzle71/internal/scanner"
)

// Sampler periodically prints a progress line derived from Shared's total
// counter. It never holds a lock while sleeping — the only state it reads
// is the atomic counter.
type Sampler struct {
	Shared   *scanner.Shared
	Interval time.Duration
	Out      io.Writer
	start    time.Time
}

// NewSampler builds a sampler that writes to out every interval, with
// elapsed/rate figures measured against start.
func NewSampler(shared *scanner.Shared, interval time.Duration, out io.Writer, start time.Time) *Sampler {
	return &Sampler{Shared: shared, Interval: interval, Out: out, start: start}
}

// Run blocks, emitting one line every s.Interval, until stop is closed. It
// is safe to run in its own goroutine and is cancelled by closing stop
// rather than by a context, matching the rest of the package's avoidance
// of anything heavier than channels and atomics on the hot paths.
func (s *Sampler) Run(stop <-chan struct{}) {
	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	lastTotal := uint64(0)
	lastTime := s.start

	for {
		select {
		case <-stop:
			return
		case now := <-ticker.C:
			total := s.Shared.TotalKeys.Load()
			elapsed := now.Sub(s.start).Seconds()
			intervalKeys := total - lastTotal
			intervalTime := now.Sub(lastTime).Seconds()

			avgMkeys := megaKeysPerSec(total, elapsed)
			nowMkeys := megaKeysPerSec(intervalKeys, intervalTime)

			fmt.Fprintf(s.Out, "[%d] Checked: %d | Avg: %.2f Mkey/s | Now: %.2f Mkey/s\n",
				int64(elapsed), total, avgMkeys, nowMkeys)

			lastTotal = total
			lastTime = now
		}
	}
}

func megaKeysPerSec(keys uint64, seconds float64) float64 {
	if seconds <= 0 {
		return 0
	}
	return float64(keys) / seconds / 1_000_000
}
