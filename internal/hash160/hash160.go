// Package hash160 implements the two fixed-length hash primitives the
// scanner's hot loop needs — SHA-256 over a 33-byte compressed public key
// and RIPEMD-160 over its 32-byte digest — specialized so that neither
// allocates or streams: both inputs are a single compression block.
package hash160

// Sum160 computes the Bitcoin HASH160 of a compressed public key:
// RIPEMD-160(SHA-256(pubkey)).
func Sum160(pubkey [33]byte) [20]byte {
	return Sum32(Sum33(pubkey))
}
