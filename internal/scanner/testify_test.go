package scanner

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/keyhunt71/puzzle71/internal/params"
)

// TestForcedSeedFindsExactSeedWithTestify duplicates the assertions of
// TestForcedSeedFindsExactSeed using testify/require, in the style of the
// newer test suites added alongside the batched engine.
func TestForcedSeedFindsExactSeedWithTestify(t *testing.T) {
	target := targetForKey(params.Low)
	shared := NewShared()
	w := NewWorker(0, 1, target, shared, new(big.Int).Set(params.Low))

	record := w.Run(1)
	require.NotNil(t, record, "expected a found record")
	require.Equal(t, 0, record.PrivateKey.Cmp(params.Low), "found key must equal the forced seed")
	require.Equal(t, target.Address, record.Target.Address)
}

func TestFoundRecordFormatContainsAllFields(t *testing.T) {
	record := FoundRecord{
		PrivateKey:       big.NewInt(0x42),
		Target:           targetForKey(big.NewInt(0x42)),
		TotalKeysChecked: 100,
	}
	out := record.Format()

	require.Contains(t, out, "PUZZLE #71 SOLUTION")
	require.Contains(t, out, "Private Key: 0x42")
	require.Contains(t, out, "Total keys checked: 100")
}
