// Package kzg implements a KZG polynomial commitment scheme over an
// abstract curve.Backend: commit to a polynomial as [p(τ)]_1, open it at
// a point with a constant-size proof, batch-open at several points, and
// verify an opening via a pairing equation. It follows the reference
// corpus's pattern of an explicit evaluator/key object holding
// precomputed tables (no package-level state), here a CommitmentKey
// wrapping the SRS's power-of-τ tables.
package kzg

import (
	"fmt"

	"github.com/tesscrypt/tess/curve"
	"github.com/tesscrypt/tess/poly"
)

// CommitmentKey holds the G1 (and, where needed, G2) power-of-τ tables
// used to commit to and open polynomials of degree < len(PowersG1).
// It holds no secret material: τ itself is never stored here.
type CommitmentKey struct {
	Backend   curve.Backend
	PowersG1  []curve.G1 // [τ^0]_1, [τ^1]_1, ..., [τ^{d}]_1
	PowersG2  []curve.G2 // [τ^0]_2, [τ^1]_2 -- only the first two are needed for Verify
}

// Commit returns [p(τ)]_1 = Σ p.Coeffs[i] * [τ^i]_1, computed as a
// single fixed-base MSM against the commitment key's power table.
func (ck *CommitmentKey) Commit(p poly.Polynomial) (curve.G1, error) {
	if len(p.Coeffs) > len(ck.PowersG1) {
		return nil, fmt.Errorf("kzg: Commit: degree %d exceeds commitment key capacity %d", len(p.Coeffs)-1, len(ck.PowersG1)-1)
	}
	return ck.Backend.MSMG1(p.Coeffs, ck.PowersG1[:len(p.Coeffs)])
}

// Opening is a KZG opening proof for a polynomial at a point z: the
// claimed value y = p(z), and the proof point Pi = [q(τ)]_1 for the
// quotient q(X) = (p(X)-y)/(X-z).
type Opening struct {
	Z   curve.Scalar
	Y   curve.Scalar
	Pi  curve.G1
}

// Open produces an Opening for p at z.
func (ck *CommitmentKey) Open(p poly.Polynomial, z curve.Scalar) (Opening, error) {
	y := p.Eval(z)
	shifted := p.Clone()
	shifted.Coeffs = append([]curve.Scalar(nil), shifted.Coeffs...)
	if len(shifted.Coeffs) == 0 {
		shifted.Coeffs = []curve.Scalar{ck.Backend.ZeroScalar()}
	}
	shifted.Coeffs[0] = shifted.Coeffs[0].Clone().Sub(y)

	q, remainder := poly.DivLinear(shifted, z)
	if !remainder.IsZero() {
		return Opening{}, fmt.Errorf("kzg: Open: nonzero remainder, p(z) was computed incorrectly")
	}
	pi, err := ck.Commit(q)
	if err != nil {
		return Opening{}, fmt.Errorf("kzg: Open: %w", err)
	}
	return Opening{Z: z, Y: y, Pi: pi}, nil
}

// BatchOpening is a KZG opening proof for a single point z shared across
// several polynomials, combined via a random linear combination supplied
// by the caller (the Fiat-Shamir challenge is the caller's concern, not
// this package's).
type BatchOpening struct {
	Z  curve.Scalar
	Ys []curve.Scalar
	Pi curve.G1
}

// BatchOpen opens every polynomial in ps at the same point z, combining
// the individual quotients with powers of challenge so that a single
// proof point suffices: Pi = Σ_k challenge^k * q_k(τ)_1.
func (ck *CommitmentKey) BatchOpen(ps []poly.Polynomial, z curve.Scalar, challenge curve.Scalar) (BatchOpening, error) {
	ys := make([]curve.Scalar, len(ps))
	combined := poly.Polynomial{}
	power := ck.Backend.OneScalar()
	for k, p := range ps {
		ys[k] = p.Eval(z)
		shifted := p.Clone()
		if len(shifted.Coeffs) == 0 {
			shifted.Coeffs = []curve.Scalar{ck.Backend.ZeroScalar()}
		}
		shifted.Coeffs[0] = shifted.Coeffs[0].Clone().Sub(ys[k])
		q, remainder := poly.DivLinear(shifted, z)
		if !remainder.IsZero() {
			return BatchOpening{}, fmt.Errorf("kzg: BatchOpen: nonzero remainder for polynomial %d", k)
		}
		combined = poly.Add(combined, poly.Scale(q, power))
		power = power.Mul(challenge)
	}
	pi, err := ck.Commit(combined)
	if err != nil {
		return BatchOpening{}, fmt.Errorf("kzg: BatchOpen: %w", err)
	}
	return BatchOpening{Z: z, Ys: ys, Pi: pi}, nil
}

// Verify checks that commitment C opens to y at z via opening pi, using
// the standard pairing equation e(C - [y]_1, [1]_2) == e(pi, [τ]_2 - [z]_2).
func (ck *CommitmentKey) Verify(commitment curve.G1, z, y curve.Scalar, pi curve.G1) (bool, error) {
	if len(ck.PowersG2) < 2 {
		return false, fmt.Errorf("kzg: Verify: commitment key has no G2 tau power, cannot verify")
	}
	lhsBase := commitment.Clone().Sub(ck.Backend.G1Base().Mul(y))
	rhsExp := ck.PowersG2[1].Clone().Sub(ck.Backend.G2Base().Mul(z))

	left := ck.Backend.Pair(lhsBase, ck.Backend.G2Base())
	right := ck.Backend.Pair(pi, rhsExp)
	return left.Equal(right), nil
}
