package tess

import (
	"github.com/tesscrypt/tess/curve"
	"github.com/tesscrypt/tess/kzg"
	"github.com/tesscrypt/tess/poly"
)

// Params is the published structured reference string plus the protocol
// constants it was generated for. No field of Params may hold τ or any
// other transient scalar from param_gen: see ParamGenUnsafe.
type Params struct {
	Backend curve.Backend

	N int // domain size, a power of two
	N_ int // party count n (kept distinct from the domain size N)
	T int // threshold t

	Domain *poly.Domain

	// CK wraps the SRS's power-of-τ tables, reused directly as the KZG
	// commitment key (component C and D share the same tables).
	CK *kzg.CommitmentKey

	// LagrangeG1[i] = [L_i(τ)]_1, computed via the single inverse-FFT
	// trick (poly.Domain.LagrangeCommitG1), not N separate commitments.
	LagrangeG1 []curve.G1
}

// n returns the configured party count.
func (p *Params) n() int { return p.N_ }

// t returns the configured threshold.
func (p *Params) t() int { return p.T }

// SecretKey is a party's uniformly sampled scalar share.
type SecretKey struct {
	Index int
	SK    curve.Scalar
}

// Zero destroys the secret scalar, per spec.md's secret-hygiene
// requirement for sk_i.
func (k *SecretKey) Zero() {
	if k.SK != nil {
		k.SK.SetZero()
	}
}

// PublicKey is party i's public contribution: pk_i in both groups (PK2
// exists solely so hint_{i,j} can be verified publicly, see DESIGN.md),
// plus the N precomputed quotient hints.
type PublicKey struct {
	Index int
	PK    curve.G1 // sk_i * [1]_1
	PK2   curve.G2 // sk_i * [1]_2
	Hints []curve.G1
}

// AggregateKey is the group-sum of every party's PublicKey, plus the
// per-party public keys (needed by aggregate_decrypt's complement
// correction) and the coordinate-wise sum of hints.
type AggregateKey struct {
	APK   curve.G1
	PKs   []curve.G1 // PKs[i-1] = pk_i, for i in 1..=n
	Hints []curve.G1 // Hints[j] = H_j = sum_i hint_{i,j}
}

// Ciphertext is the hybrid-encryption output of encrypt.
type Ciphertext struct {
	Gamma curve.G1 // [s]_1
	U     curve.G2 // [s]_2
	V     curve.G1 // threshold-binding opening, s * correction(t)
	W     curve.GT // public reference copy of the mask M (not secret: M is
	// only useful to unmask c if you already hold a valid subset of
	// partials, since recomputing it otherwise requires sk_i's)
	C []byte // masked payload
}

// Partial is one party's contribution to aggregate decryption.
type Partial struct {
	Index int
	D     curve.G1 // sk_i * gamma
}

// Selector identifies which parties' partials are present.
type Selector []bool

// Indices returns the sorted 1-based party indices selected.
func (s Selector) Indices() []int {
	out := make([]int, 0, len(s))
	for i, present := range s {
		if present {
			out = append(out, i+1)
		}
	}
	return out
}

// Count returns the number of selected parties.
func (s Selector) Count() int {
	n := 0
	for _, present := range s {
		if present {
			n++
		}
	}
	return n
}

// Result is the output of aggregate_decrypt: plaintext is populated iff
// verified is true.
type Result struct {
	Plaintext []byte
	Verified  bool
}
