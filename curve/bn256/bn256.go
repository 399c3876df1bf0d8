// Package bn256 implements curve.Backend on top of the 256-bit
// Barreto-Naehrig pairing-friendly curve provided by
// go.dedis.ch/kyber/v3/pairing/bn256 (not the alt_bn128/BN254 curve).
// It is the "alternative pairing curve" slot named in the pairing
// backend interface: a real, non-BLS12-381 pairing curve, wired the
// same way the reference corpus wires it (a pairing.Suite value
// passed around explicitly, never as a package-level global).
package bn256

import (
	"fmt"
	"io"
	"runtime"

	kyber "go.dedis.ch/kyber/v3"
	"go.dedis.ch/kyber/v3/pairing"
	"go.dedis.ch/kyber/v3/pairing/bn256"

	"github.com/tesscrypt/tess/curve"
	"github.com/tesscrypt/tess/internal/parallel"
)

// Backend adapts a kyber pairing.Suite to curve.Backend.
type Backend struct {
	suite pairing.Suite
}

// New constructs the default BN254 backend.
func New() *Backend {
	return &Backend{suite: bn256.NewSuite()}
}

// Name implements curve.Backend.
func (*Backend) Name() string { return "bn256" }

// RandomScalar implements curve.Backend by drawing ScalarLen() bytes
// from rng and reducing them into the scalar field, following the
// SetBytes-from-digest idiom used throughout the reference corpus's
// pairing-based protocols (e.g. deriving a Fiat-Shamir challenge
// scalar from a hash digest).
func (b *Backend) RandomScalar(rng io.Reader) (curve.Scalar, error) {
	g := b.suite.G1()
	buf := make([]byte, g.ScalarLen()+16) // extra bytes to reduce modulo-bias
	if _, err := io.ReadFull(rng, buf); err != nil {
		return nil, fmt.Errorf("bn256: read random scalar: %w", err)
	}
	s := g.Scalar().SetBytes(buf)
	if s.Equal(g.Scalar().Zero()) {
		return b.RandomScalar(rng)
	}
	return &scalarT{s}, nil
}

// ScalarFromUint64 implements curve.Backend.
func (b *Backend) ScalarFromUint64(v uint64) curve.Scalar {
	return &scalarT{b.suite.G1().Scalar().SetInt64(int64(v))}
}

// ZeroScalar implements curve.Backend.
func (b *Backend) ZeroScalar() curve.Scalar { return &scalarT{b.suite.G1().Scalar().Zero()} }

// OneScalar implements curve.Backend.
func (b *Backend) OneScalar() curve.Scalar { return &scalarT{b.suite.G1().Scalar().One()} }

// G1Base implements curve.Backend.
func (b *Backend) G1Base() curve.G1 { return &g1T{b.suite.G1().Point().Base()} }

// G2Base implements curve.Backend.
func (b *Backend) G2Base() curve.G2 { return &g2T{b.suite.G2().Point().Base()} }

// G1Identity implements curve.Backend.
func (b *Backend) G1Identity() curve.G1 { return &g1T{b.suite.G1().Point().Null()} }

// G2Identity implements curve.Backend.
func (b *Backend) G2Identity() curve.G2 { return &g2T{b.suite.G2().Point().Null()} }

// Pair implements curve.Backend.
func (b *Backend) Pair(p1 curve.G1, p2 curve.G2) curve.GT {
	g1 := p1.(*g1T).p
	g2 := p2.(*g2T).p
	return &gtT{b.suite.Pair(g1, g2)}
}

// MultiPair implements curve.Backend. kyber's bn256 suite does not
// expose a combined Miller-loop multi-pairing primitive, so this
// combines individual pairings via GT addition in a fixed left-to-right
// order, keeping the result independent of any goroutine scheduling
// (MultiPair itself is not parallelized: the Miller loop + final
// exponentiation per pair dominates, and the combine is O(n) additions).
func (b *Backend) MultiPair(p1 []curve.G1, p2 []curve.G2) (curve.GT, error) {
	if len(p1) != len(p2) {
		return nil, fmt.Errorf("bn256: MultiPair length mismatch: %d g1 vs %d g2", len(p1), len(p2))
	}
	if len(p1) == 0 {
		return &gtT{b.suite.GT().Point().Null()}, nil
	}
	acc := b.Pair(p1[0], p2[0]).(*gtT)
	for i := 1; i < len(p1); i++ {
		acc = &gtT{acc.p.Clone().Add(acc.p, b.Pair(p1[i], p2[i]).(*gtT).p)}
	}
	return acc, nil
}

// msmChunkThreshold is the vector length below which MSMG1/MSMG2 run
// sequentially instead of paying goroutine setup cost for a handful of
// scalar multiplications.
const msmChunkThreshold = 64

// MSMG1 implements curve.Backend. For short vectors it accumulates
// scalar multiplications left to right; for longer vectors it splits
// the vector into runtime.GOMAXPROCS(0) contiguous chunks (see
// internal/parallel.Chunks), computes each chunk's partial sum
// concurrently, then reduces the partial sums in chunk order — the
// result does not depend on goroutine scheduling, only on the fixed
// chunk boundaries.
func (b *Backend) MSMG1(scalars []curve.Scalar, points []curve.G1) (curve.G1, error) {
	if len(scalars) != len(points) {
		return nil, fmt.Errorf("bn256: MSMG1 length mismatch: %d scalars vs %d points", len(scalars), len(points))
	}
	if len(scalars) < msmChunkThreshold {
		acc := b.G1Identity()
		for i := range scalars {
			acc = acc.Add(points[i].Mul(scalars[i]))
		}
		return acc, nil
	}
	chunks := parallel.Chunks(len(scalars), runtime.GOMAXPROCS(0))
	partials := make([]curve.G1, len(chunks))
	err := parallel.For(len(chunks), func(c int) error {
		lo, hi := chunks[c][0], chunks[c][1]
		acc := b.G1Identity()
		for i := lo; i < hi; i++ {
			acc = acc.Add(points[i].Mul(scalars[i]))
		}
		partials[c] = acc
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("bn256: MSMG1: %w", err)
	}
	acc := b.G1Identity()
	for _, p := range partials {
		acc = acc.Add(p)
	}
	return acc, nil
}

// MSMG2 is the G2 analogue of MSMG1.
func (b *Backend) MSMG2(scalars []curve.Scalar, points []curve.G2) (curve.G2, error) {
	if len(scalars) != len(points) {
		return nil, fmt.Errorf("bn256: MSMG2 length mismatch: %d scalars vs %d points", len(scalars), len(points))
	}
	if len(scalars) < msmChunkThreshold {
		acc := b.G2Identity()
		for i := range scalars {
			acc = acc.Add(points[i].Mul(scalars[i]))
		}
		return acc, nil
	}
	chunks := parallel.Chunks(len(scalars), runtime.GOMAXPROCS(0))
	partials := make([]curve.G2, len(chunks))
	err := parallel.For(len(chunks), func(c int) error {
		lo, hi := chunks[c][0], chunks[c][1]
		acc := b.G2Identity()
		for i := lo; i < hi; i++ {
			acc = acc.Add(points[i].Mul(scalars[i]))
		}
		partials[c] = acc
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("bn256: MSMG2: %w", err)
	}
	acc := b.G2Identity()
	for _, p := range partials {
		acc = acc.Add(p)
	}
	return acc, nil
}

// PrimitiveRoot returns a primitive n-th root of unity in the scalar
// field, computed as g^((q-1)/n) for a fixed quadratic non-residue g.
// n must be a power of two dividing q-1.
func (b *Backend) PrimitiveRoot(n uint64) (curve.Scalar, error) {
	if n == 0 || n&(n-1) != 0 {
		return nil, fmt.Errorf("bn256: PrimitiveRoot: n=%d is not a power of two", n)
	}
	return primitiveRootOfUnity(b, n)
}

// --- kyber.Scalar/Point adapters ---

type scalarT struct{ s kyber.Scalar }

func (x *scalarT) Add(y curve.Scalar) curve.Scalar {
	return &scalarT{x.s.Clone().Add(x.s, y.(*scalarT).s)}
}
func (x *scalarT) Sub(y curve.Scalar) curve.Scalar {
	return &scalarT{x.s.Clone().Sub(x.s, y.(*scalarT).s)}
}
func (x *scalarT) Mul(y curve.Scalar) curve.Scalar {
	return &scalarT{x.s.Clone().Mul(x.s, y.(*scalarT).s)}
}
func (x *scalarT) Neg() curve.Scalar        { return &scalarT{x.s.Clone().Neg(x.s)} }
func (x *scalarT) Inv() curve.Scalar        { return &scalarT{x.s.Clone().Inv(x.s)} }
func (x *scalarT) Equal(y curve.Scalar) bool { return x.s.Equal(y.(*scalarT).s) }
func (x *scalarT) IsZero() bool              { return x.s.Equal(x.s.Clone().Zero()) }
func (x *scalarT) SetZero()                  { x.s.Zero() }
func (x *scalarT) Clone() curve.Scalar       { return &scalarT{x.s.Clone()} }
func (x *scalarT) Bytes() []byte {
	b, _ := x.s.MarshalBinary()
	return b
}
func (x *scalarT) SetBytes(b []byte) (curve.Scalar, error) {
	s := x.s.Clone()
	if err := s.UnmarshalBinary(b); err != nil {
		return nil, fmt.Errorf("bn256: scalar SetBytes: %w", err)
	}
	return &scalarT{s}, nil
}

type g1T struct{ p kyber.Point }

func (x *g1T) Add(y curve.G1) curve.G1   { return &g1T{x.p.Clone().Add(x.p, y.(*g1T).p)} }
func (x *g1T) Sub(y curve.G1) curve.G1   { return &g1T{x.p.Clone().Sub(x.p, y.(*g1T).p)} }
func (x *g1T) Neg() curve.G1             { return &g1T{x.p.Clone().Neg(x.p)} }
func (x *g1T) Mul(s curve.Scalar) curve.G1 {
	return &g1T{x.p.Clone().Mul(s.(*scalarT).s, x.p)}
}
func (x *g1T) Equal(y curve.G1) bool   { return x.p.Equal(y.(*g1T).p) }
func (x *g1T) IsIdentity() bool        { return x.p.Equal(x.p.Clone().Null()) }
func (x *g1T) Clone() curve.G1         { return &g1T{x.p.Clone()} }
func (x *g1T) Bytes() []byte {
	b, _ := x.p.MarshalBinary()
	return b
}
func (x *g1T) SetBytes(b []byte) (curve.G1, error) {
	p := x.p.Clone()
	if err := p.UnmarshalBinary(b); err != nil {
		return nil, fmt.Errorf("bn256: G1 SetBytes: %w", err)
	}
	return &g1T{p}, nil
}

type g2T struct{ p kyber.Point }

func (x *g2T) Add(y curve.G2) curve.G2   { return &g2T{x.p.Clone().Add(x.p, y.(*g2T).p)} }
func (x *g2T) Sub(y curve.G2) curve.G2   { return &g2T{x.p.Clone().Sub(x.p, y.(*g2T).p)} }
func (x *g2T) Neg() curve.G2             { return &g2T{x.p.Clone().Neg(x.p)} }
func (x *g2T) Mul(s curve.Scalar) curve.G2 {
	return &g2T{x.p.Clone().Mul(s.(*scalarT).s, x.p)}
}
func (x *g2T) Equal(y curve.G2) bool { return x.p.Equal(y.(*g2T).p) }
func (x *g2T) IsIdentity() bool      { return x.p.Equal(x.p.Clone().Null()) }
func (x *g2T) Clone() curve.G2       { return &g2T{x.p.Clone()} }
func (x *g2T) Bytes() []byte {
	b, _ := x.p.MarshalBinary()
	return b
}
func (x *g2T) SetBytes(b []byte) (curve.G2, error) {
	p := x.p.Clone()
	if err := p.UnmarshalBinary(b); err != nil {
		return nil, fmt.Errorf("bn256: G2 SetBytes: %w", err)
	}
	return &g2T{p}, nil
}

type gtT struct{ p kyber.Point }

func (x *gtT) Add(y curve.GT) curve.GT { return &gtT{x.p.Clone().Add(x.p, y.(*gtT).p)} }
func (x *gtT) Sub(y curve.GT) curve.GT { return &gtT{x.p.Clone().Sub(x.p, y.(*gtT).p)} }
func (x *gtT) Neg() curve.GT           { return &gtT{x.p.Clone().Neg(x.p)} }
func (x *gtT) Equal(y curve.GT) bool   { return x.p.Equal(y.(*gtT).p) }
func (x *gtT) IsIdentity() bool        { return x.p.Equal(x.p.Clone().Null()) }
func (x *gtT) Clone() curve.GT         { return &gtT{x.p.Clone()} }
func (x *gtT) Bytes() []byte {
	b, _ := x.p.MarshalBinary()
	return b
}
func (x *gtT) SetBytes(b []byte) (curve.GT, error) {
	p := x.p.Clone()
	if err := p.UnmarshalBinary(b); err != nil {
		return nil, fmt.Errorf("bn256: GT SetBytes: %w", err)
	}
	return &gtT{p}, nil
}

var _ curve.Backend = (*Backend)(nil)
