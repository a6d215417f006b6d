//go:build linux

package coordinator

import (
	"fmt"
	"os"
	"runtime"

	"golang.org/x/sys/unix"
)

// pinToCPU best-effort pins the calling OS thread to logical CPU
// id % runtime.NumCPU(). Must be called after runtime.LockOSThread so the
// pin sticks to this goroutine's underlying thread. Failure is logged and
// non-fatal — a worker that can't be pinned still scans correctly, just
// without the cache-locality benefit.
func pinToCPU(id int) {
	n := runtime.NumCPU()
	if n == 0 {
		return
	}
	cpu := id % n

	var set unix.CPUSet
	set.Zero()
	set.Set(cpu)

	if err := unix.SchedSetaffinity(0, &set); err != nil {
		fmt.Fprintf(os.Stderr, "worker %d: CPU affinity pin to core %d failed: %v\n", id, cpu, err)
	}
}
