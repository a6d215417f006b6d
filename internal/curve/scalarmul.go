package curve

import "math/big"

// genTable holds genTable[i] = 2^i * G in affine coordinates, for i in
// [0, tableBits). Built once at package init by repeated doubling — this is
// the "generator-plus-table scalar multiplier" the spec calls for: the seed
// scalar multiplication sums table entries for the set bits of k instead of
// doing a fresh double-and-add walk every chunk.
var genTable [tableBits]Affine

// tableBits covers every bit a seed-plus-chunk-offset can ever set: seeds
// live in a 71-bit range and CHUNK_SIZE keeps the walk within 72 bits, so
// 80 bits leaves comfortable headroom.
const tableBits = 80

func init() {
	acc := FromAffine(Generator)
	genTable[0] = Generator
	for i := 1; i < tableBits; i++ {
		acc = Double(acc)
		genTable[i] = acc.ToAffine()
	}
}

// ScalarMultGenTable computes k*G using the precomputed powers-of-two
// table, for k in [0, 2^tableBits). It is used once per chunk to compute
// the seed point — not on the hot walking loop — so a straightforward
// table-sum (rather than a windowed NAF multiplier) is plenty fast.
func ScalarMultGenTable(k *big.Int) Jacobian {
	if k.Sign() == 0 {
		return InfinityJacobian()
	}

	bitLen := k.BitLen()
	if bitLen > tableBits {
		panic("curve: scalar exceeds generator table width")
	}

	var acc Jacobian
	started := false
	for i := 0; i < bitLen; i++ {
		if k.Bit(i) == 0 {
			continue
		}
		if !started {
			acc = FromAffine(genTable[i])
			started = true
			continue
		}
		acc, _ = AddMixed(acc, genTable[i])
	}
	return acc
}
