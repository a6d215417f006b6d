package scanner

// Target is the fixed 20-byte hash160 the scanner searches for, plus a
// cached 4-byte prefix used to reject the overwhelming majority of
// candidates before paying for a full 20-byte comparison.
type Target struct {
	Hash160 [20]byte
	Prefix  [4]byte
	Address string
}

// NewTarget builds a Target from its hash160 and a human-readable address
// string used only for the found-key report.
func NewTarget(hash160 [20]byte, address string) Target {
	var t Target
	t.Hash160 = hash160
	copy(t.Prefix[:], hash160[:4])
	t.Address = address
	return t
}

// Matches reports whether candidate equals the target, checking the cached
// prefix first so a mismatch is usually rejected after four byte compares
// instead of twenty.
func (t Target) Matches(candidate [20]byte) bool {
	if candidate[0] != t.Prefix[0] || candidate[1] != t.Prefix[1] ||
		candidate[2] != t.Prefix[2] || candidate[3] != t.Prefix[3] {
		return false
	}
	return candidate == t.Hash160
}
