package poly

import (
	"fmt"
	"math/bits"

	"github.com/tesscrypt/tess/curve"
)

// Domain is the multiplicative evaluation domain H = {ω^0, ..., ω^{N-1}}
// used throughout the protocol: N is the smallest power of two with
// N >= n+1, ω is a primitive N-th root of unity in F. Domain precomputes
// ω^{-1}, 1/N and one twiddle generator per Cooley-Tukey layer (forward
// and inverse) once, mirroring the reference corpus's pattern of a Ring
// object holding NTT root tables rather than recomputing them per call.
type Domain struct {
	backend  curve.Backend
	n        int
	omega    curve.Scalar
	omegaInv curve.Scalar
	nInv     curve.Scalar

	// layerRootsForward[k] = ω^(n/2^(k+1)), the twiddle generator for
	// the Cooley-Tukey layer combining blocks of size 2^(k+1); the
	// analogue of the reference corpus's per-layer NTT root table.
	layerRootsForward  []curve.Scalar
	layerRootsBackward []curve.Scalar
}

// NewDomain builds a Domain of size n (n must be a power of two).
func NewDomain(backend curve.Backend, n int) (*Domain, error) {
	if n <= 0 || n&(n-1) != 0 {
		return nil, fmt.Errorf("poly: domain size %d is not a power of two", n)
	}
	omega, err := backend.PrimitiveRoot(uint64(n))
	if err != nil {
		return nil, fmt.Errorf("poly: NewDomain: %w", err)
	}
	return newDomainFromRoot(backend, n, omega)
}

func newDomainFromRoot(backend curve.Backend, n int, omega curve.Scalar) (*Domain, error) {
	omegaInv := omega.Clone().Inv()

	nScalar := backend.ScalarFromUint64(uint64(n))
	nInv := nScalar.Inv()

	d := &Domain{
		backend:  backend,
		n:        n,
		omega:    omega,
		omegaInv: omegaInv,
		nInv:     nInv,
	}
	logN := bits.Len(uint(n)) - 1
	d.layerRootsForward = make([]curve.Scalar, logN)
	d.layerRootsBackward = make([]curve.Scalar, logN)
	for k := 0; k < logN; k++ {
		length := 1 << (k + 1)
		d.layerRootsForward[k] = powScalar(backend, omega, n/length)
		d.layerRootsBackward[k] = powScalar(backend, omegaInv, n/length)
	}
	return d, nil
}

// N returns the domain size.
func (d *Domain) N() int { return d.n }

// Omega returns ω.
func (d *Domain) Omega() curve.Scalar { return d.omega.Clone() }

// Point returns ω^i, the domain point bound to party index i.
func (d *Domain) Point(i int) curve.Scalar {
	return powScalar(d.backend, d.omega, i%d.n)
}

// powScalar computes base^e via square-and-multiply.
func powScalar(backend curve.Backend, base curve.Scalar, e int) curve.Scalar {
	out := backend.OneScalar()
	b := base.Clone()
	for e > 0 {
		if e&1 == 1 {
			out = out.Mul(b)
		}
		b = b.Mul(b)
		e >>= 1
	}
	return out
}

// VanishingPolynomial returns Z_H(X) = X^N - 1.
func (d *Domain) VanishingPolynomial() Polynomial {
	coeffs := make([]curve.Scalar, d.n+1)
	for i := range coeffs {
		coeffs[i] = d.backend.ZeroScalar()
	}
	coeffs[0] = d.backend.OneScalar().Neg()
	coeffs[d.n] = d.backend.OneScalar()
	return Polynomial{Coeffs: coeffs}
}
