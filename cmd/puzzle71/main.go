// Command puzzle71 runs the batched elliptic-curve brute-force scanner for
// Bitcoin puzzle #71: it self-tests the EC and hash primitives, then
// starts one worker per configured thread, each walking its own randomly
// seeded chunk of the 71-bit key range until one hashes to the target or
// the process is interrupted.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/keyhunt71/puzzle71/internal/config"
	"github.com/keyhunt71/puzzle71/internal/coordinator"
	"github.com/keyhunt71/puzzle71/internal/scanner"
	"github.com/keyhunt71/puzzle71/internal/selftest"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if err := selftest.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	target := scanner.NewTarget(cfg.TargetHash160, cfg.TargetAddress)

	stop := make(chan struct{})
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		close(stop)
	}()

	coordCfg := coordinator.Config{
		Threads:       cfg.Threads,
		Target:        target,
		ForceSeed:     cfg.ForceSeed,
		StatsInterval: cfg.StatsInterval,
		FoundFile:     cfg.FoundFile,
		BackupDirs:    cfg.BackupDirs,
		EntropySource: cfg.EntropySource,
	}

	if _, err := coordinator.Run(coordCfg, stop, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
