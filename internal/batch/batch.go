// Package batch implements the batched walking and simultaneous-inversion
// routines that make the scanner fast: a long run of Jacobian point
// additions with exactly one field inversion for the whole run, via
// Montgomery's trick.
package batch

import (
	"github.com/keyhunt71/puzzle71/internal/curve"
	"github.com/keyhunt71/puzzle71/internal/field"
)

// Walk fills dst[0] = start and dst[i] = dst[i-1] + G for i in [1, len(dst)),
// using Jacobian+affine addition with no inversion per step. dst must be
// preallocated by the caller (workers reuse the same backing array across
// chunks — see internal/scanner).
func Walk(dst []curve.Jacobian, start curve.Jacobian) {
	if len(dst) == 0 {
		return
	}
	dst[0] = start
	for i := 1; i < len(dst); i++ {
		dst[i], _ = curve.AddMixed(dst[i-1], curve.Generator)
	}
}

// ToAffine converts a batch of Jacobian points to affine coordinates using
// exactly one field inversion (Montgomery's simultaneous-inversion trick),
// writing results into dst (which must have the same length as src).
//
// Any point at infinity in src (Z=0) has its Z coordinate sentineled to 1
// for the purposes of the inversion chain — the corresponding output is
// marked Infinity and must be skipped by the caller rather than hashed —
// this resolves the spec's open question about the interaction between the
// degenerate-doubling fallback and batch inversion.
func ToAffine(dst []curve.Affine, src []curve.Jacobian) {
	n := len(src)
	if n == 0 {
		return
	}
	if len(dst) != n {
		panic("batch: dst/src length mismatch")
	}

	zs := make([]field.Element, n)
	isInf := make([]bool, n)
	for i, p := range src {
		if p.Infinity || p.Z.IsZero() {
			zs[i] = field.One()
			isInf[i] = true
		} else {
			zs[i] = p.Z
		}
	}

	// Running product A[i] = z0*z1*...*zi.
	prefix := make([]field.Element, n)
	prefix[0] = zs[0]
	for i := 1; i < n; i++ {
		prefix[i] = prefix[i-1].Mul(zs[i])
	}

	// Single inversion of the full product.
	inv := prefix[n-1].Inverse()

	// Unwind: for i from n-1 downto 0, zInv[i] = inv * prefix[i-1] (prefix[-1]=1),
	// then inv *= zs[i].
	for i := n - 1; i >= 0; i-- {
		var zInv field.Element
		if i == 0 {
			zInv = inv
		} else {
			zInv = inv.Mul(prefix[i-1])
		}
		inv = inv.Mul(zs[i])

		if isInf[i] {
			dst[i] = curve.Affine{Infinity: true}
			continue
		}
		zInv2 := zInv.Sqr()
		zInv3 := zInv2.Mul(zInv)
		dst[i] = curve.Affine{
			X: src[i].X.Mul(zInv2),
			Y: src[i].Y.Mul(zInv3),
		}
	}
}
