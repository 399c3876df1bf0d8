package tess

import (
	"github.com/tesscrypt/tess/curve"
	"github.com/tesscrypt/tess/internal/parallel"
	"github.com/tesscrypt/tess/poly"
)

// generateHints computes the N quotient-hint commitments for a single
// party's secret scalar sk, following spec.md §4.E's definition of
// hint_{i,j} as commit(sk_i * Q_{i,j}) where Q_{i,j} is the quotient
// polynomial witnessing L_i(ω^j) = δ_{ij}. Each hint is computed as an
// independent KZG opening (see DESIGN.md for why this is O(N) openings
// rather than the spec's O(N log N) single-FFT construction).
func generateHints(params *Params, i int, sk curve.Scalar) ([]curve.G1, error) {
	li := params.Domain.LagrangeBasisCoeffs(i)
	f := poly.Scale(li, sk)

	hints := make([]curve.G1, params.N)
	err := parallel.For(params.N, func(j int) error {
		point := params.Domain.Point(j)
		value := f.Eval(point)
		shifted := f.Clone()
		shifted.Coeffs[0] = shifted.Coeffs[0].Clone().Sub(value)
		q, remainder := poly.DivLinear(shifted, point)
		if !remainder.IsZero() {
			return errorf("generateHints", ErrKeygenFailure, "hint %d: nonzero remainder", j)
		}
		h, err := params.CK.Commit(q)
		if err != nil {
			return errorf("generateHints", ErrKeygenFailure, "commit hint %d: %v", j, err)
		}
		hints[j] = h
		return nil
	})
	if err != nil {
		return nil, err
	}
	return hints, nil
}

// GenerateParty runs the per-party key and hint generation of
// spec.md §4.E for a single party index i (1-based) from an
// already-sampled secret scalar. It is exported so a real deployment
// can run it independently, one process per party, as the "silent"
// setup model intends; Keygen below is the in-process orchestration
// used for testing and the example program.
func GenerateParty(params *Params, i int, sk curve.Scalar) (*PublicKey, error) {
	if i < 1 || i > params.n() {
		return nil, errorf("GenerateParty", ErrInvalidIndex, "index %d outside 1..=%d", i, params.n())
	}
	pk := params.Backend.G1Base().Mul(sk)
	pk2 := params.Backend.G2Base().Mul(sk)

	hints, err := generateHints(params, i, sk)
	if err != nil {
		return nil, err
	}
	return &PublicKey{Index: i, PK: pk, PK2: pk2, Hints: hints}, nil
}

// Keygen samples every party's secret key sequentially from rng (so
// that output is byte-identical for a fixed rng stream regardless of
// worker-pool thread count, per spec.md §8's determinism property —
// curve.DeterministicRNG's read order would otherwise depend on
// goroutine scheduling), then runs the CPU-bound hint generation for
// every party across the bounded worker pool, and finally assembles the
// AggregateKey.
func Keygen(params *Params, rng curve.PRNG) ([]*SecretKey, []*PublicKey, *AggregateKey, error) {
	n := params.n()
	sks := make([]*SecretKey, n)
	for idx := 0; idx < n; idx++ {
		sk, err := params.Backend.RandomScalar(rng)
		if err != nil {
			return nil, nil, nil, errorf("Keygen", ErrKeygenFailure, "party %d: %v", idx+1, err)
		}
		sks[idx] = &SecretKey{Index: idx + 1, SK: sk}
	}

	pks := make([]*PublicKey, n)
	err := parallel.For(n, func(idx int) error {
		pk, err := GenerateParty(params, idx+1, sks[idx].SK)
		if err != nil {
			return err
		}
		pks[idx] = pk
		return nil
	})
	if err != nil {
		return nil, nil, nil, err
	}

	apk, err := Aggregate(params, pks)
	if err != nil {
		return nil, nil, nil, err
	}
	return sks, pks, apk, nil
}
