// Package coordinator wires together the scanner workers, the stats
// sampler, and found-key durability: the glue the original program kept
// inline in main(), pulled out into its own package so it can be driven by
// tests and by cmd/puzzle71 alike. Signal handling lives in cmd/puzzle71,
// which closes the stop channel Run is given.
package coordinator

import (
	"fmt"
	"io"
	"math/big"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/klauspost/cpuid/v2"

	"github.com/keyhunt71/puzzle71/internal/entropy"
	"github.com/keyhunt71/puzzle71/internal/scanner"
	"github.com/keyhunt71/puzzle71/internal/stats"
)

// Config is the subset of resolved configuration the coordinator needs —
// deliberately decoupled from internal/config's Config so the coordinator
// can be driven directly by tests without an environment round trip.
type Config struct {
	Threads       int
	Target        scanner.Target
	ForceSeed     *big.Int
	StatsInterval time.Duration
	FoundFile     string
	BackupDirs    []string
	EntropySource string
}

// Result summarizes a completed run.
type Result struct {
	Found            *scanner.FoundRecord
	TotalKeysChecked uint64
	Elapsed          time.Duration
}

// Run starts Threads workers plus a stats sampler, waits for a match or
// for stop to be closed, then joins everything and returns a Result. Out
// receives the startup banner, progress lines, and the final summary.
func Run(cfg Config, stop <-chan struct{}, out io.Writer) (Result, error) {
	printBanner(out, cfg)

	shared := scanner.NewShared()
	start := time.Now()

	sampler := stats.NewSampler(shared, cfg.StatsInterval, out, start)
	samplerStop := make(chan struct{})
	samplerDone := make(chan struct{})
	go func() {
		sampler.Run(samplerStop)
		close(samplerDone)
	}()

	results := make(chan *scanner.FoundRecord, cfg.Threads)
	var wg sync.WaitGroup

	for i := 0; i < cfg.Threads; i++ {
		wg.Add(1)
		workerID := i
		go func() {
			defer wg.Done()
			results <- runPinnedWorker(workerID, cfg, shared)
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	var found *scanner.FoundRecord
	var writeErr error
	done := false
	for !done {
		select {
		case <-stop:
			shared.Cancel()
			done = true
		case record, ok := <-results:
			if !ok {
				done = true
				break
			}
			if record != nil && found == nil {
				found = record
				writeErr = writeFoundRecord(found, cfg.FoundFile, cfg.BackupDirs, os.Stderr)
				shared.Publish()
			}
		}
	}

	// Drain any remaining worker results so every goroutine has returned
	// before we report the summary.
	for record := range results {
		if record != nil && found == nil {
			found = record
			writeErr = writeFoundRecord(found, cfg.FoundFile, cfg.BackupDirs, os.Stderr)
		}
	}

	close(samplerStop)
	<-samplerDone

	elapsed := time.Since(start)
	result := Result{Found: found, TotalKeysChecked: shared.TotalKeys.Load(), Elapsed: elapsed}

	if writeErr != nil {
		return result, writeErr
	}

	printSummary(out, result)
	return result, nil
}

// runPinnedWorker locks the calling goroutine to its OS thread and
// best-effort pins that thread to a CPU core before running the scan loop,
// concretizing the "parallel OS threads, one per worker" scheduling model.
func runPinnedWorker(id int, cfg Config, shared *scanner.Shared) *scanner.FoundRecord {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	pinToCPU(id)

	seedEntropy := entropy.Seed32(cfg.EntropySource, func(msg string) {
		fmt.Fprintln(os.Stderr, msg)
	})

	var forceSeed *big.Int
	if id == 0 && cfg.ForceSeed != nil {
		forceSeed = new(big.Int).Set(cfg.ForceSeed)
	}

	rngSeed := scanner.WorkerRNGSeed(seedEntropy, id)
	w := scanner.NewWorker(id, rngSeed, cfg.Target, shared, forceSeed)
	return w.Run(0)
}

func printBanner(out io.Writer, cfg Config) {
	fmt.Fprintf(out, "puzzle71 scanner — %s (%d cores, %d logical)\n",
		cpuid.CPU.BrandName, cpuid.CPU.PhysicalCores, cpuid.CPU.LogicalCores)
	fmt.Fprintf(out, "workers: %d | target: %x\n", cfg.Threads, cfg.Target.Hash160)
}

func printSummary(out io.Writer, r Result) {
	rate := float64(r.TotalKeysChecked) / r.Elapsed.Seconds() / 1_000_000
	fmt.Fprintf(out, "summary: elapsed=%.1fs total=%d avg=%.2f Mkey/s\n",
		r.Elapsed.Seconds(), r.TotalKeysChecked, rate)
	if r.Found != nil {
		fmt.Fprintf(out, "FOUND: %s\n", r.Found.PrivateKey.Text(16))
	}
}

func writeFoundRecord(record *scanner.FoundRecord, path string, backupDirs []string, errOut io.Writer) error {
	body := record.Format()

	if err := writeDurably(path, body); err != nil {
		fmt.Fprintln(errOut, "found-key file write failed, printing record instead:")
		fmt.Fprint(errOut, body)
		return err
	}

	for _, dir := range backupDirs {
		dest := filepath.Join(dir, filepath.Base(path))
		if err := writeDurably(dest, body); err != nil {
			fmt.Fprintf(errOut, "backup copy to %s failed: %v\n", dest, err)
		}
	}
	return nil
}

func writeDurably(path, body string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteString(body); err != nil {
		return err
	}
	return f.Sync()
}

