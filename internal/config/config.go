// Package config resolves the process configuration from the single CLI
// positional argument and the optional environment variable overrides,
// following the flag/os.Args idiom the rest of this corpus uses rather
// than pulling in a CLI framework.
package config

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/btcsuite/btcutil/base58"
	sha256simd "github.com/minio/sha256-simd"

	"github.com/keyhunt71/puzzle71/internal/params"
)

// Config is the fully-resolved runtime configuration.
type Config struct {
	Threads       int
	FoundFile     string
	BackupDirs    []string
	StatsInterval time.Duration
	TargetHash160 [20]byte
	TargetAddress string
	ForceSeed     *big.Int
	EntropySource string
}

const (
	defaultFoundFile = "puzzle71_solution.txt"

	// defaultTargetAddress is puzzle #71's published P2PKH address. Its
	// hash160 is recovered by Base58Check-decoding it, rather than
	// hardcoding the hash separately, so the two can never drift apart.
	defaultTargetAddress = "1PWo3JeB9jrGwfHDNpdGK54CRas7fsVzXU"
)

// decodeP2PKHHash160 extracts the 20-byte hash160 payload from a Base58Check
// P2PKH address, verifying its version byte and double-SHA256 checksum.
func decodeP2PKHHash160(address string) ([20]byte, error) {
	var out [20]byte

	decoded := base58.Decode(address)
	if len(decoded) != 1+20+4 {
		return out, fmt.Errorf("config: %q does not decode to a 25-byte P2PKH payload", address)
	}
	payload, checksum := decoded[:21], decoded[21:]

	first := sha256simd.Sum256(payload)
	second := sha256simd.Sum256(first[:])
	for i := 0; i < 4; i++ {
		if checksum[i] != second[i] {
			return out, fmt.Errorf("config: %q fails its Base58Check checksum", address)
		}
	}
	if payload[0] != 0x00 {
		return out, fmt.Errorf("config: %q is not a mainnet P2PKH address (version byte %#x)", address, payload[0])
	}

	copy(out[:], payload[1:])
	return out, nil
}

// Load resolves configuration from os.Args[1:] and the environment. args
// is the positional argument slice (normally os.Args[1:]), passed
// explicitly so tests don't need to mutate the real os.Args.
func Load(args []string) (Config, error) {
	defaultHash160, err := decodeP2PKHHash160(defaultTargetAddress)
	if err != nil {
		return Config{}, fmt.Errorf("config: decoding built-in default target address: %w", err)
	}

	cfg := Config{
		Threads:       params.DefaultThreads,
		FoundFile:     defaultFoundFile,
		StatsInterval: params.StatsInterval * time.Second,
		TargetHash160: defaultHash160,
		TargetAddress: defaultTargetAddress,
		EntropySource: "/dev/urandom",
	}

	if len(args) > 0 {
		threads, err := strconv.Atoi(args[0])
		if err != nil {
			return Config{}, fmt.Errorf("config: invalid thread count %q: %w", args[0], err)
		}
		if threads < 1 || threads > params.MaxThreads {
			return Config{}, fmt.Errorf("config: thread count %d outside [1, %d]", threads, params.MaxThreads)
		}
		cfg.Threads = threads
	}

	if v := os.Getenv("PUZZLE71_FOUND_FILE"); v != "" {
		cfg.FoundFile = v
	}
	if v := os.Getenv("PUZZLE71_BACKUP_DIRS"); v != "" {
		cfg.BackupDirs = strings.Split(v, ":")
	}
	if v := os.Getenv("PUZZLE71_STATS_INTERVAL_SECONDS"); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil || secs <= 0 {
			return Config{}, fmt.Errorf("config: invalid PUZZLE71_STATS_INTERVAL_SECONDS %q", v)
		}
		cfg.StatsInterval = time.Duration(secs) * time.Second
	}
	if v := os.Getenv("PUZZLE71_TARGET_HASH160"); v != "" {
		raw, err := hex.DecodeString(v)
		if err != nil || len(raw) != 20 {
			return Config{}, fmt.Errorf("config: invalid PUZZLE71_TARGET_HASH160 %q: must be 40 hex chars", v)
		}
		copy(cfg.TargetHash160[:], raw)
	}
	if v := os.Getenv("PUZZLE71_FORCE_SEED"); v != "" {
		raw, err := hex.DecodeString(strings.TrimPrefix(v, "0x"))
		if err != nil {
			return Config{}, fmt.Errorf("config: invalid PUZZLE71_FORCE_SEED %q: %w", v, err)
		}
		cfg.ForceSeed = new(big.Int).SetBytes(raw)
	}
	if v := os.Getenv("PUZZLE71_ENTROPY_SOURCE"); v != "" {
		cfg.EntropySource = v
	}

	return cfg, nil
}
