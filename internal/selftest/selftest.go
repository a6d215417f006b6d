// Package selftest runs the correctness checks the coordinator must pass
// before starting any worker. A failure here means the EC or hash
// primitives are broken, so the process aborts rather than search with
// unreliable math.
package selftest

import (
	"fmt"
	"math/big"

	"github.com/keyhunt71/puzzle71/internal/batch"
	"github.com/keyhunt71/puzzle71/internal/curve"
	"github.com/keyhunt71/puzzle71/internal/hash160"
)

// KnownGeneratorHash160 is the well-known hash160 of the compressed
// secp256k1 generator point, used as a correctness anchor.
var KnownGeneratorHash160 = [20]byte{
	0x75, 0x1e, 0x76, 0xe8, 0x19, 0x91, 0x96, 0xd4, 0x54, 0x94,
	0x1c, 0x45, 0xd1, 0xb3, 0xa3, 0x23, 0xf1, 0x43, 0x3b, 0xd6,
}

// Run executes every self-test check and returns the first failure found,
// or nil if every check passes.
func Run() error {
	if err := checkGeneratorHash160(); err != nil {
		return err
	}
	if err := checkDoublingAgreesWithScalarMult(); err != nil {
		return err
	}
	if err := checkBatchAffineAgreesWithScalarMult(); err != nil {
		return err
	}
	return nil
}

func checkGeneratorHash160() error {
	got := hash160.Sum160(curve.Compress(curve.Generator))
	if got != KnownGeneratorHash160 {
		return fmt.Errorf("selftest: hash160(compressed G) = %x, want %x", got, KnownGeneratorHash160)
	}
	return nil
}

func checkDoublingAgreesWithScalarMult() error {
	doubled := curve.Double(curve.FromAffine(curve.Generator)).ToAffine()
	added, _ := curve.AddMixed(curve.FromAffine(curve.Generator), curve.Generator)
	addedAffine := added.ToAffine()

	if !doubled.X.Equal(addedAffine.X) || !doubled.Y.Equal(addedAffine.Y) {
		return fmt.Errorf("selftest: 2*G via doubling disagrees with G+G via mixed addition")
	}

	scalarTwo := curve.ScalarMultGenTable(big.NewInt(2)).ToAffine()
	if !doubled.X.Equal(scalarTwo.X) || !doubled.Y.Equal(scalarTwo.Y) {
		return fmt.Errorf("selftest: 2*G via doubling disagrees with the generator-table scalar multiplier")
	}
	return nil
}

func checkBatchAffineAgreesWithScalarMult() error {
	jac := make([]curve.Jacobian, 4)
	batch.Walk(jac, curve.FromAffine(curve.Generator))

	aff := make([]curve.Affine, 4)
	batch.ToAffine(aff, jac)

	for i := 0; i < 4; i++ {
		want := curve.ScalarMultGenTable(big.NewInt(int64(i + 1))).ToAffine()
		if aff[i].Infinity != want.Infinity {
			return fmt.Errorf("selftest: batch-affine point %d infinity mismatch", i+1)
		}
		if !aff[i].Infinity && (!aff[i].X.Equal(want.X) || !aff[i].Y.Equal(want.Y)) {
			return fmt.Errorf("selftest: batch-affine point %d disagrees with scalar multiplier for k=%d", i+1, i+1)
		}
	}
	return nil
}
