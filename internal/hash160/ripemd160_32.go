package hash160

// ripemd160_32.go implements RIPEMD-160 specialized to a fixed 32-byte
// input: the SHA-256 digest of a compressed public key. As with Sum33, the
// fixed length means the message fits in exactly one 64-byte block and the
// padding is compile-time constant.

var ripemdR = [80]int{
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
	7, 4, 13, 1, 10, 6, 15, 3, 12, 0, 9, 5, 2, 14, 11, 8,
	3, 10, 14, 4, 9, 15, 8, 1, 2, 7, 0, 6, 13, 11, 5, 12,
	1, 9, 11, 10, 0, 8, 12, 4, 13, 3, 7, 15, 14, 5, 6, 2,
	4, 0, 5, 9, 7, 12, 2, 10, 14, 1, 3, 8, 11, 6, 15, 13,
}

var ripemdRp = [80]int{
	5, 14, 7, 0, 9, 2, 11, 4, 13, 6, 15, 8, 1, 10, 3, 12,
	6, 11, 3, 7, 0, 13, 5, 10, 14, 15, 8, 12, 4, 9, 1, 2,
	15, 5, 1, 3, 7, 14, 6, 9, 11, 8, 12, 2, 10, 0, 4, 13,
	8, 6, 4, 1, 3, 11, 15, 0, 5, 12, 2, 13, 9, 7, 10, 14,
	12, 15, 10, 4, 1, 5, 8, 7, 6, 2, 13, 14, 0, 3, 9, 11,
}

var ripemdS = [80]uint{
	11, 14, 15, 12, 5, 8, 7, 9, 11, 13, 14, 15, 6, 7, 9, 8,
	7, 6, 8, 13, 11, 9, 7, 15, 7, 12, 15, 9, 11, 7, 13, 12,
	11, 13, 6, 7, 14, 9, 13, 15, 14, 8, 13, 6, 5, 12, 7, 5,
	11, 12, 14, 15, 14, 15, 9, 8, 9, 14, 5, 6, 8, 6, 5, 12,
	9, 15, 5, 11, 6, 8, 13, 12, 5, 12, 13, 14, 11, 8, 5, 6,
}

var ripemdSp = [80]uint{
	8, 9, 9, 11, 13, 15, 15, 5, 7, 7, 8, 11, 14, 14, 12, 6,
	9, 13, 15, 7, 12, 8, 9, 11, 7, 7, 12, 7, 6, 15, 13, 11,
	9, 7, 15, 11, 8, 6, 6, 14, 12, 13, 5, 14, 13, 13, 7, 5,
	15, 5, 8, 11, 14, 14, 6, 14, 6, 9, 12, 9, 12, 5, 15, 8,
	8, 5, 12, 9, 12, 5, 14, 6, 8, 13, 6, 5, 15, 13, 11, 11,
}

const (
	ripemdH0 = 0x67452301
	ripemdH1 = 0xefcdab89
	ripemdH2 = 0x98badcfe
	ripemdH3 = 0x10325476
	ripemdH4 = 0xc3d2e1f0
)

func rotl32(x uint32, n uint) uint32 {
	return (x << n) | (x >> (32 - n))
}

func f1(x, y, z uint32) uint32 { return x ^ y ^ z }
func f2(x, y, z uint32) uint32 { return (x & y) | (^x & z) }
func f3(x, y, z uint32) uint32 { return (x | ^y) ^ z }
func f4(x, y, z uint32) uint32 { return (x & z) | (y &^ z) }
func f5(x, y, z uint32) uint32 { return x ^ (y | ^z) }

var ripemdKLeft = [5]uint32{0x00000000, 0x5a827999, 0x6ed9eba1, 0x8f1bbcdc, 0xa953fd4e}
var ripemdKRight = [5]uint32{0x50a28be6, 0x5c4dd124, 0x6d703ef3, 0x7a6d76e9, 0x00000000}

func ripemdRound(round int, x, y, z uint32) uint32 {
	switch round {
	case 0:
		return f1(x, y, z)
	case 1:
		return f2(x, y, z)
	case 2:
		return f3(x, y, z)
	case 3:
		return f4(x, y, z)
	default:
		return f5(x, y, z)
	}
}

func ripemdRoundRight(round int, x, y, z uint32) uint32 {
	switch round {
	case 0:
		return f5(x, y, z)
	case 1:
		return f4(x, y, z)
	case 2:
		return f3(x, y, z)
	case 3:
		return f2(x, y, z)
	default:
		return f1(x, y, z)
	}
}

// Sum32 computes RIPEMD-160 of an exactly-32-byte input, producing a
// 20-byte digest (internally little-endian words, serialized little-endian
// per RIPEMD-160 convention).
func Sum32(data [32]byte) [20]byte {
	var block [64]byte
	copy(block[:32], data[:])
	block[32] = 0x80
	// block[33:56] already zero.
	bitLen := uint64(32) * 8
	block[56] = byte(bitLen)
	block[57] = byte(bitLen >> 8)
	block[58] = byte(bitLen >> 16)
	block[59] = byte(bitLen >> 24)
	block[60] = byte(bitLen >> 32)
	block[61] = byte(bitLen >> 40)
	block[62] = byte(bitLen >> 48)
	block[63] = byte(bitLen >> 56)

	var x [16]uint32
	for i := 0; i < 16; i++ {
		x[i] = uint32(block[i*4]) | uint32(block[i*4+1])<<8 | uint32(block[i*4+2])<<16 | uint32(block[i*4+3])<<24
	}

	al, bl, cl, dl, el := uint32(ripemdH0), uint32(ripemdH1), uint32(ripemdH2), uint32(ripemdH3), uint32(ripemdH4)
	ar, br, cr, dr, er := al, bl, cl, dl, el

	for j := 0; j < 80; j++ {
		round := j / 16

		t := rotl32(al+ripemdRound(round, bl, cl, dl)+x[ripemdR[j]]+ripemdKLeft[round], ripemdS[j]) + el
		al = el
		el = dl
		dl = rotl32(cl, 10)
		cl = bl
		bl = t

		t = rotl32(ar+ripemdRoundRight(round, br, cr, dr)+x[ripemdRp[j]]+ripemdKRight[round], ripemdSp[j]) + er
		ar = er
		er = dr
		dr = rotl32(cr, 10)
		cr = br
		br = t
	}

	t := ripemdH1 + cl + dr
	h1 := ripemdH2 + dl + er
	h2 := ripemdH3 + el + ar
	h3 := ripemdH4 + al + br
	h4 := ripemdH0 + bl + cr
	h0 := t

	var out [20]byte
	putLE32(out[0:4], h0)
	putLE32(out[4:8], h1)
	putLE32(out[8:12], h2)
	putLE32(out[12:16], h3)
	putLE32(out[16:20], h4)
	return out
}

func putLE32(dst []byte, v uint32) {
	dst[0] = byte(v)
	dst[1] = byte(v >> 8)
	dst[2] = byte(v >> 16)
	dst[3] = byte(v >> 24)
}
