package scanner

import (
	"math/big"
	"math/rand"

	"github.com/keyhunt71/puzzle71/internal/params"
)

// drawSeed draws a uniform 72-bit integer whose top nibble is one of
// {4,5,6,7} — equivalently, bit 70 set and bit 71 clear, which is exactly
// the range [2^70, 2^71) — and rejects (redrawing) any value that would
// let its chunk run past params.High.
func drawSeed(rng *rand.Rand) *big.Int {
	var buf [9]byte
	maxSeed := params.MaxSeed()
	for {
		rng.Read(buf[:])
		nibble := byte(4 + (buf[0]>>6)&0x3) // selects 4, 5, 6, or 7
		buf[0] = (buf[0] & 0x0f) | (nibble << 4)

		seed := new(big.Int).SetBytes(buf[:])
		if seed.Cmp(maxSeed) <= 0 {
			return seed
		}
	}
}

// WorkerRNGSeed derives a math/rand seed for worker id from process-wide
// entropy XORed with a worker-specific salt, so that no two workers ever
// draw the same sequence of seeds even if started in the same instant.
func WorkerRNGSeed(entropy [32]byte, workerID int) int64 {
	var v int64
	for i := 0; i < 8; i++ {
		v |= int64(entropy[i]) << (8 * i)
	}
	salt := int64(uint64(workerID)*0x9E3779B97F4A7C15 + 1)
	return v ^ salt
}
