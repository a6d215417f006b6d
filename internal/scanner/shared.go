package scanner

import "sync/atomic"

// Shared holds the cross-worker state: the running total of keys checked
// and the found/terminate flags. Workers only ever write TotalKeys (via
// Add); the coordinator sets Found (via Publish) and Cancelled (via
// Cancel); workers and the stats sampler only read. Go's atomic package gives sequentially-consistent ordering on both,
// which is at least as strong as the acquire/release pairing the design
// requires for Found: once a worker observes Found true, the found-record
// file write that preceded Publish is visible to it.
type Shared struct {
	TotalKeys atomic.Uint64
	Found     atomic.Bool
	Cancelled atomic.Bool
}

// NewShared returns a zeroed Shared ready for workers to use.
func NewShared() *Shared {
	return &Shared{}
}

// Stopped reports whether workers should stop at the next safe boundary:
// either a match was found, or the process is being cancelled.
func (s *Shared) Stopped() bool {
	return s.Found.Load() || s.Cancelled.Load()
}

// Publish marks a match found. It must be called only after the found
// record has already been durably written, so that any observer of Found
// also observes the completed write.
func (s *Shared) Publish() {
	s.Found.Store(true)
}

// Cancel requests that all workers stop at the next safe boundary without
// a match having been found.
func (s *Shared) Cancel() {
	s.Cancelled.Store(true)
}
