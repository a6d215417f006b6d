// Package curve implements secp256k1 group operations in Jacobian and
// affine coordinates, specialized for the one thing the scanner needs:
// repeatedly adding the fixed generator G to a running point without paying
// for a field inversion on every step.
//
// The point-addition and point-doubling formulas are a direct,
// field-operation-for-field-operation port of the reference sequence used
// by production secp256k1 implementations for a=0 curves (see the
// mleku-p256k1 group.go this package is grounded on), rewritten against
// internal/field's math/big-backed Element instead of a fixed-limb
// representation.
package curve

import (
	"math/big"

	"github.com/keyhunt71/puzzle71/internal/field"
)

// N is the order of the secp256k1 group.
var N = mustHex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141")

func mustHex(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("curve: bad hex constant " + s)
	}
	return v
}

// Affine is a point in affine (x, y) coordinates. Infinity is represented
// explicitly, not by a sentinel coordinate pair.
type Affine struct {
	X, Y     field.Element
	Infinity bool
}

// Jacobian is a point in Jacobian (X, Y, Z) coordinates representing the
// affine point (X/Z^2, Y/Z^3).
type Jacobian struct {
	X, Y, Z  field.Element
	Infinity bool
}

// Generator is secp256k1's base point G, in affine coordinates.
var Generator = Affine{
	X: field.FromBig(mustHex("79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798")),
	Y: field.FromBig(mustHex("483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8")),
}

// InfinityJacobian is the Jacobian point at infinity.
func InfinityJacobian() Jacobian {
	return Jacobian{Y: field.One(), Infinity: true}
}

// FromAffine lifts an affine point into Jacobian coordinates.
func FromAffine(a Affine) Jacobian {
	if a.Infinity {
		return InfinityJacobian()
	}
	return Jacobian{X: a.X, Y: a.Y, Z: field.One()}
}

// ToAffine converts a single Jacobian point to affine via one field
// inversion. Used only off the hot path (self-test, scalar-mult result);
// the batch walk uses the simultaneous-inversion routine in internal/batch
// instead.
func (p Jacobian) ToAffine() Affine {
	if p.Infinity {
		return Affine{Infinity: true}
	}
	zInv := p.Z.Inverse()
	zInv2 := zInv.Sqr()
	zInv3 := zInv2.Mul(zInv)
	return Affine{
		X: p.X.Mul(zInv2),
		Y: p.Y.Mul(zInv3),
	}
}

// Double returns 2*p in Jacobian coordinates. This is the standard
// secp256k1-specific doubling sequence (curve parameter a=0), ported
// operation-by-operation from the reference this package is grounded on.
func Double(p Jacobian) Jacobian {
	if p.Infinity {
		return p
	}
	// Z3 = Y1*Z1
	z3 := p.Z.Mul(p.Y)
	// S = Y1^2
	s := p.Y.Sqr()
	// L = 3*X1^2, then L = 3/2*X1^2
	l := p.X.Sqr().MulSmall(3).Half()
	// T = -X1*S
	t := s.Neg().Mul(p.X)
	// X3 = L^2 + 2*T
	x3 := l.Sqr().Add(t).Add(t)
	// S' = S^2 = Y1^4
	s2 := s.Sqr()
	// T' = T + X3
	t2 := t.Add(x3)
	// Y3 = -(L*(T+X3) + S^2)
	y3 := t2.Mul(l).Add(s2).Neg()

	return Jacobian{X: x3, Y: y3, Z: z3}
}

// AddCase records which branch a mixed Jacobian+affine addition took, for
// callers (and tests) that care about the degenerate paths.
type AddCase int

const (
	// CaseGeneral is the ordinary addition formula.
	CaseGeneral AddCase = iota
	// CaseDouble fired because the two points coincided (h=0, i=0): the
	// result is the doubling of the input.
	CaseDouble
	// CaseNegation fired because the two points were negatives of each
	// other (h=0, i!=0): the result is the point at infinity.
	CaseNegation
	// CaseLeftInfinity means the Jacobian addend was infinity; the result
	// is simply the affine addend lifted to Jacobian.
	CaseLeftInfinity
)

// AddMixed returns a+b where a is Jacobian and b is affine (assumed not
// infinity — the scanner only ever adds the fixed generator G), along with
// which branch of the formula fired. This is the only addition the batched
// walk needs; general Jacobian+Jacobian addition is never required because
// the walk step and the generator-table scalar multiplier both only ever
// add a fixed affine point.
func AddMixed(a Jacobian, b Affine) (Jacobian, AddCase) {
	if a.Infinity {
		return FromAffine(b), CaseLeftInfinity
	}

	// z12 = Z1^2
	z12 := a.Z.Sqr()
	u1 := a.X
	// u2 = X2*Z1^2
	u2 := b.X.Mul(z12)
	s1 := a.Y
	// s2 = Y2*Z1^2*Z1
	s2 := b.Y.Mul(z12).Mul(a.Z)

	h := u2.Sub(u1)
	i := s2.Sub(s1)

	if h.IsZero() {
		if i.IsZero() {
			return Double(a), CaseDouble
		}
		return InfinityJacobian(), CaseNegation
	}

	// Z3 = Z1*h
	z3 := a.Z.Mul(h)
	// h2 = -(h^2); h3 = -h^3
	h2 := h.Sqr().Neg()
	h3 := h2.Mul(h)
	// t = -u1*h^2
	tt := u1.Mul(h2)

	// X3 = i^2 + h3 + 2*t
	x3 := i.Sqr().Add(h3).Add(tt).Add(tt)
	// Y3 = R*(t9 - X3) - S1*H3, where t9 = U1*H^2 = -t (t = -U1*H^2 above)
	// and h3 already holds -H^3, so -S1*H3 = +h3*s1.
	y3 := i.Mul(tt.Neg().Sub(x3)).Add(h3.Mul(s1))

	return Jacobian{X: x3, Y: y3, Z: z3}, CaseGeneral
}

// Compress serializes an affine point to the 33-byte compressed public-key
// format: a sign byte (0x02 even-y, 0x03 odd-y) followed by the big-endian
// x-coordinate.
func Compress(a Affine) [33]byte {
	var out [33]byte
	if a.Y.IsOdd() {
		out[0] = 0x03
	} else {
		out[0] = 0x02
	}
	x := a.X.Bytes32()
	copy(out[1:], x[:])
	return out
}
