package tess

import "github.com/tesscrypt/tess/curve"

// PartialDecrypt implements spec.md §4.H: d_i = sk_i * γ, a pure scalar
// multiplication with no rng and no branching on sk. ct is checked for
// basic well-formedness (γ must not be the identity element) before sk
// ever touches it.
func PartialDecrypt(sk *SecretKey, ct *Ciphertext) (*Partial, error) {
	if ct.Gamma == nil || ct.Gamma.IsIdentity() {
		return nil, errorf("PartialDecrypt", ErrMalformedCiphertext, "gamma is the identity element")
	}
	d := ct.Gamma.Clone().Mul(sk.SK)
	return &Partial{Index: sk.Index, D: d}, nil
}

// AggregateDecrypt implements spec.md §4.I. It enforces |S| >= t+1 as
// an explicit cardinality guard (InsufficientShares), then runs three
// independent pairing checks (per-partial well-formedness, ciphertext
// self-consistency, threshold-binding consistency) before trusting any
// combination; a failure of any one of them yields {nil, false} without
// revealing which check failed, so a caller cannot distinguish "wrong
// subset" from "tampered partial" from "tampered ciphertext" by
// observing the Result alone (spec.md §7's indistinguishability
// requirement). See DESIGN.md for the exact pairing equations chosen.
func AggregateDecrypt(params *Params, apk *AggregateKey, ct *Ciphertext, partials []*Partial, selector Selector) (*Result, error) {
	if selector.Count() < params.T+1 {
		return nil, errorf("AggregateDecrypt", ErrInsufficientShares, "selector has %d entries, need >= %d", selector.Count(), params.T+1)
	}
	indices := selector.Indices()
	if len(indices) != len(partials) {
		return nil, errorf("AggregateDecrypt", ErrMalformedPartial, "selector names %d parties, got %d partials", len(indices), len(partials))
	}
	byIndex := make(map[int]*Partial, len(partials))
	for _, p := range partials {
		if p.D == nil || p.D.IsIdentity() {
			return nil, errorf("AggregateDecrypt", ErrMalformedPartial, "party %d: identity-element partial", p.Index)
		}
		byIndex[p.Index] = p
	}
	for _, idx := range indices {
		if _, ok := byIndex[idx]; !ok {
			return nil, errorf("AggregateDecrypt", ErrMalformedPartial, "selector names party %d with no matching partial", idx)
		}
	}
	if len(byIndex) != len(indices) {
		return nil, errorf("AggregateDecrypt", ErrMalformedPartial, "duplicate party index among partials")
	}

	ok := checkCiphertextConsistency(params, ct) && checkThresholdBinding(params, ct)
	dSum := params.Backend.G1Identity()
	for _, idx := range indices {
		p := byIndex[idx]
		if idx < 1 || idx > len(apk.PKs) {
			return nil, errorf("AggregateDecrypt", ErrMalformedPartial, "party index %d out of range", idx)
		}
		if !checkPartialConsistency(params, ct, apk.PKs[idx-1], p) {
			ok = false
		}
		dSum = dSum.Add(p.D)
	}

	selectedSet := make(map[int]bool, len(indices))
	for _, idx := range indices {
		selectedSet[idx] = true
	}
	complement := params.Backend.G1Identity()
	for i := 1; i <= params.n(); i++ {
		if !selectedSet[i] {
			complement = complement.Add(apk.PKs[i-1])
		}
	}

	// dSum already carries the ephemeral scalar s (each d_i = s*sk_i*G1,
	// so e(dSum,[1]_2) = Pi_{i in S} e(pk_i,U) by checkPartialConsistency's
	// identity). The complement's plain pk_j values do not carry s, so
	// they must be paired against U itself to inject it, not folded into
	// dSum's G1 sum and paired against the base: e(A,G2)*e(B,U) is not
	// e(A+B,G2) unless both limbs pair against the same point.
	uTerm := complement.Add(correctionT(params))
	mPrime, err := params.Backend.MultiPair([]curve.G1{dSum, uTerm}, []curve.G2{params.Backend.G2Base(), ct.U})
	if err != nil {
		return nil, errorf("AggregateDecrypt", ErrBackendError, "%v", err)
	}

	if !ok || !mPrime.Equal(ct.W) {
		return &Result{Verified: false}, nil
	}

	keystream, err := deriveKeystream(mPrime.Bytes(), len(ct.C))
	if err != nil {
		return nil, errorf("AggregateDecrypt", ErrBackendError, "derive keystream: %v", err)
	}
	plaintext := xorMask(ct.C, keystream)
	return &Result{Plaintext: plaintext, Verified: true}, nil
}

// checkCiphertextConsistency verifies e(γ,[1]_2) == e([1]_1,U), i.e.
// γ and U carry the same ephemeral scalar.
func checkCiphertextConsistency(params *Params, ct *Ciphertext) bool {
	lhs := params.Backend.Pair(ct.Gamma, params.Backend.G2Base())
	rhs := params.Backend.Pair(params.Backend.G1Base(), ct.U)
	return lhs.Equal(rhs)
}

// checkThresholdBinding verifies e(V,[1]_2) == e(correction(t),U).
func checkThresholdBinding(params *Params, ct *Ciphertext) bool {
	lhs := params.Backend.Pair(ct.V, params.Backend.G2Base())
	rhs := params.Backend.Pair(correctionT(params), ct.U)
	return lhs.Equal(rhs)
}

// checkPartialConsistency verifies e(d_i,[1]_2) == e(pk_i,U), catching
// a partial that was not honestly computed as sk_i * γ.
func checkPartialConsistency(params *Params, ct *Ciphertext, pk curve.G1, p *Partial) bool {
	lhs := params.Backend.Pair(p.D, params.Backend.G2Base())
	rhs := params.Backend.Pair(pk, ct.U)
	return lhs.Equal(rhs)
}
