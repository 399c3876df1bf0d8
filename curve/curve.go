// Package curve defines the abstract pairing-friendly elliptic curve
// capability set consumed by the rest of this module: scalar field
// arithmetic, G1/G2/GT group operations, a bilinear pairing and its
// multi-pairing batch form, and forward/inverse FFTs over a size-N
// multiplicative subgroup of the scalar field. Higher packages (poly,
// kzg, tess) are written against these interfaces only; no concrete
// curve arithmetic lives here.
//
// A single implementation is resolved once, at the call site that
// constructs a Backend, and held as an explicit value thereafter.
// There is no runtime backend dispatch inside inner loops: MSM and FFT
// operate on slices of Scalar/G1/G2 obtained from one Backend.
package curve

import "io"

// Scalar is an element of the prime-order field F underlying the curve.
// Implementations must zero their internal representation when SetZero
// is called, so that secret scalars (τ, sk_i, s) can be destroyed on
// every return path.
type Scalar interface {
	Add(Scalar) Scalar
	Sub(Scalar) Scalar
	Mul(Scalar) Scalar
	Neg() Scalar
	Inv() Scalar
	Equal(Scalar) bool
	IsZero() bool
	SetZero()
	Clone() Scalar
	Bytes() []byte
	SetBytes([]byte) (Scalar, error)
}

// G1 is an element of the first pairing group.
type G1 interface {
	Add(G1) G1
	Sub(G1) G1
	Neg() G1
	Mul(Scalar) G1
	Equal(G1) bool
	IsIdentity() bool
	Clone() G1
	Bytes() []byte
	SetBytes([]byte) (G1, error)
}

// G2 is an element of the second pairing group.
type G2 interface {
	Add(G2) G2
	Sub(G2) G2
	Neg() G2
	Mul(Scalar) G2
	Equal(G2) bool
	IsIdentity() bool
	Clone() G2
	Bytes() []byte
	SetBytes([]byte) (G2, error)
}

// GT is an element of the pairing target group.
type GT interface {
	Add(GT) GT
	Sub(GT) GT
	Neg() GT
	Equal(GT) bool
	IsIdentity() bool
	Clone() GT
	Bytes() []byte
	SetBytes([]byte) (GT, error)
}

// Backend is the capability set a curve implementation must provide.
// All scalar, G1 and G2 methods used on secret inputs (sk_i, s, τ) are
// expected to be constant-time in the implementation; Backend itself
// imposes no additional timing discipline beyond what it asks its
// Scalar/G1/G2 implementations to uphold.
type Backend interface {
	// Name identifies the concrete curve, e.g. "bn256".
	Name() string

	// RandomScalar samples a uniform, nonzero-capable scalar from rng.
	RandomScalar(rng io.Reader) (Scalar, error)
	ScalarFromUint64(uint64) Scalar
	ZeroScalar() Scalar
	OneScalar() Scalar

	G1Base() G1
	G2Base() G2
	G1Identity() G1
	G2Identity() G2

	// Pair computes the bilinear pairing e(p1, p2).
	Pair(p1 G1, p2 G2) GT

	// MultiPair computes the product (additive notation: sum) of
	// e(p1[i], p2[i]) over i via a single combined Miller loop where
	// the implementation supports it, falling back to pairwise Pair
	// and GT.Add otherwise. len(p1) must equal len(p2).
	MultiPair(p1 []G1, p2 []G2) (GT, error)

	// MSMG1 computes the fixed- or variable-base multi-scalar
	// multiplication sum_i scalars[i]*points[i] in G1. Implementations
	// are free to parallelize internally but MUST combine partial
	// sums in a fixed, deterministic order (see internal/parallel).
	MSMG1(scalars []Scalar, points []G1) (G1, error)

	// MSMG2 is the G2 analogue of MSMG1.
	MSMG2(scalars []Scalar, points []G2) (G2, error)

	// PrimitiveRoot returns a primitive n-th root of unity in F, for n
	// a power of two dividing q-1.
	PrimitiveRoot(n uint64) (Scalar, error)
}
