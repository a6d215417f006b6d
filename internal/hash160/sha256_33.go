package hash160

// sha256_33.go implements SHA-256 specialized to a fixed 33-byte input: the
// compressed public key. With a fixed input length the padding is a
// compile-time constant and the whole message fits in exactly one 64-byte
// compression block, so there is no streaming state machine and no
// allocation on the hot path.

var sha256K = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5, 0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3, 0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc, 0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7, 0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13, 0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3, 0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5, 0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208, 0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

const (
	sha256H0 = 0x6a09e667
	sha256H1 = 0xbb67ae85
	sha256H2 = 0x3c6ef372
	sha256H3 = 0xa54ff53a
	sha256H4 = 0x510e527f
	sha256H5 = 0x9b05688c
	sha256H6 = 0x1f83d9ab
	sha256H7 = 0x5be0cd19
)

func rotr32(x uint32, n uint) uint32 {
	return (x >> n) | (x << (32 - n))
}

// Sum33 computes SHA-256 of an exactly-33-byte input, producing a 32-byte
// big-endian digest.
func Sum33(data [33]byte) [32]byte {
	// Build the single 64-byte block: 33 bytes of message, 0x80, 22 zero
	// bytes, then the 8-byte big-endian bit length (33*8 = 264).
	var block [64]byte
	copy(block[:33], data[:])
	block[33] = 0x80
	// block[34:56] already zero.
	bitLen := uint64(33) * 8
	block[56] = byte(bitLen >> 56)
	block[57] = byte(bitLen >> 48)
	block[58] = byte(bitLen >> 40)
	block[59] = byte(bitLen >> 32)
	block[60] = byte(bitLen >> 24)
	block[61] = byte(bitLen >> 16)
	block[62] = byte(bitLen >> 8)
	block[63] = byte(bitLen)

	var w [64]uint32
	for i := 0; i < 16; i++ {
		w[i] = uint32(block[i*4])<<24 | uint32(block[i*4+1])<<16 | uint32(block[i*4+2])<<8 | uint32(block[i*4+3])
	}
	for i := 16; i < 64; i++ {
		s0 := rotr32(w[i-15], 7) ^ rotr32(w[i-15], 18) ^ (w[i-15] >> 3)
		s1 := rotr32(w[i-2], 17) ^ rotr32(w[i-2], 19) ^ (w[i-2] >> 10)
		w[i] = w[i-16] + s0 + w[i-7] + s1
	}

	a, b, c, d, e, f, g, h := uint32(sha256H0), uint32(sha256H1), uint32(sha256H2), uint32(sha256H3),
		uint32(sha256H4), uint32(sha256H5), uint32(sha256H6), uint32(sha256H7)

	for i := 0; i < 64; i++ {
		s1 := rotr32(e, 6) ^ rotr32(e, 11) ^ rotr32(e, 25)
		ch := (e & f) ^ (^e & g)
		t1 := h + s1 + ch + sha256K[i] + w[i]
		s0 := rotr32(a, 2) ^ rotr32(a, 13) ^ rotr32(a, 22)
		maj := (a & b) ^ (a & c) ^ (b & c)
		t2 := s0 + maj

		h = g
		g = f
		f = e
		e = d + t1
		d = c
		c = b
		b = a
		a = t1 + t2
	}

	h0 := sha256H0 + a
	h1 := sha256H1 + b
	h2 := sha256H2 + c
	h3 := sha256H3 + d
	h4 := sha256H4 + e
	h5 := sha256H5 + f
	h6 := sha256H6 + g
	h7 := sha256H7 + h

	var out [32]byte
	putBE32(out[0:4], h0)
	putBE32(out[4:8], h1)
	putBE32(out[8:12], h2)
	putBE32(out[12:16], h3)
	putBE32(out[16:20], h4)
	putBE32(out[20:24], h5)
	putBE32(out[24:28], h6)
	putBE32(out[28:32], h7)
	return out
}

func putBE32(dst []byte, v uint32) {
	dst[0] = byte(v >> 24)
	dst[1] = byte(v >> 16)
	dst[2] = byte(v >> 8)
	dst[3] = byte(v)
}
