package scanner

import (
	"fmt"
	"math/big"
	"time"
)

// FoundRecord is the structured report written to disk the moment a match
// is discovered.
type FoundRecord struct {
	PrivateKey       *big.Int
	Target           Target
	TotalKeysChecked uint64
	FoundAt          time.Time
}

// Format renders the record in the fixed text layout the coordinator writes
// to the found-key file and, on a write failure, to standard error.
func (r FoundRecord) Format() string {
	return fmt.Sprintf(
		"PUZZLE #71 SOLUTION\n"+
			"Private Key: 0x%X\n"+
			"Target: %s\n"+
			"Hash160: %x\n"+
			"Found: %s\n"+
			"Total keys checked: %d\n",
		r.PrivateKey,
		r.Target.Address,
		r.Target.Hash160,
		r.FoundAt.Format("Mon Jan  2 15:04:05 2006"),
		r.TotalKeysChecked,
	)
}
