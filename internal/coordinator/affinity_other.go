//go:build !linux

package coordinator

// pinToCPU is a no-op outside Linux: SchedSetaffinity has no portable
// equivalent, and the design only asks for "Linux only, best-effort"
// pinning.
func pinToCPU(id int) {}
