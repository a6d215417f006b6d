//go:build integration
// +build integration

package main

import (
	"encoding/hex"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/keyhunt71/puzzle71/internal/curve"
	"github.com/keyhunt71/puzzle71/internal/hash160"
	"github.com/keyhunt71/puzzle71/internal/params"
)

// TestBinaryFindsForcedPlantedKey builds the real binary and runs it with a
// forced seed and a target planted at that exact seed, exercising the full
// self-test -> coordinator -> found-file path end to end.
func TestBinaryFindsForcedPlantedKey(t *testing.T) {
	tmpDir := t.TempDir()
	binaryPath := filepath.Join(tmpDir, "puzzle71-test")

	build := exec.Command("go", "build", "-o", binaryPath, ".")
	if err := build.Run(); err != nil {
		t.Skipf("skipping integration test: failed to build binary: %v", err)
	}

	foundFile := filepath.Join(tmpDir, "solution.txt")

	// Plant the target at exactly LOW*G, so the worker forced to seed LOW
	// matches on its very first candidate.
	compressed := curve.Compress(curve.ScalarMultGenTable(params.Low).ToAffine())
	targetHash160 := hash160.Sum160(compressed)

	cmd := exec.Command(binaryPath, "1")
	cmd.Env = append(os.Environ(),
		"PUZZLE71_FOUND_FILE="+foundFile,
		"PUZZLE71_FORCE_SEED=0x400000000000000000",
		"PUZZLE71_TARGET_HASH160="+hex.EncodeToString(targetHash160[:]),
	)

	if err := cmd.Run(); err != nil {
		t.Fatalf("binary exited with error: %v", err)
	}

	if _, err := os.Stat(foundFile); os.IsNotExist(err) {
		t.Fatal("expected the found-key file to be written")
	}
}

// TestBinaryRejectsInvalidThreadCount confirms the process exits nonzero
// for a malformed configuration before any worker starts.
func TestBinaryRejectsInvalidThreadCount(t *testing.T) {
	tmpDir := t.TempDir()
	binaryPath := filepath.Join(tmpDir, "puzzle71-test")

	build := exec.Command("go", "build", "-o", binaryPath, ".")
	if err := build.Run(); err != nil {
		t.Skipf("skipping integration test: failed to build binary: %v", err)
	}

	cmd := exec.Command(binaryPath, "0")
	if err := cmd.Run(); err == nil {
		t.Fatal("expected a nonzero exit code for thread count 0")
	}
}
