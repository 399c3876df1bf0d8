package tess

import "github.com/tesscrypt/tess/curve"

// verifyHintSentinel checks party pk's hint at the reserved domain
// point ω^0 against pk.PK2, a single pairing-based audit per party
// rather than the O(N) checks a full hint-consistency proof would cost.
// This is exactly the purpose spec.md §3 assigns to ω^0 being "reserved
// and never used as a party point": a cheap, fixed audit coordinate.
// Because L_i(ω^0) = 0 for every real party index i (L_i is 1 only at
// ω^i), the verification equation collapses to the zero-value case of
// the general KZG opening check:
//
//	e(LagrangeG1[i], PK2) == e(hint_{i,0}, [τ-ω^0]_2)
func verifyHintSentinel(params *Params, pk *PublicKey) bool {
	if pk.Index < 1 || pk.Index >= len(params.LagrangeG1) {
		return false
	}
	lagrangeI := params.LagrangeG1[pk.Index]
	sentinel := params.Domain.Point(0) // ω^0 == 1
	tauMinusSentinel := params.CK.PowersG2[1].Clone().Sub(params.Backend.G2Base().Mul(sentinel))

	lhs := params.Backend.Pair(lagrangeI, pk.PK2)
	rhs := params.Backend.Pair(pk.Hints[0], tauMinusSentinel)
	return lhs.Equal(rhs)
}

// Aggregate implements spec.md §4.F: it sums the per-party public keys
// into apk, sums the hint vectors coordinate-wise into {H_j}, and keeps
// the per-party public keys around (needed by aggregate_decrypt's
// complement correction, see DESIGN.md). Each party's hints are audited
// via verifyHintSentinel before being folded in, rejecting a malformed
// PublicKey with BackendError rather than silently producing a
// corrupted AggregateKey.
func Aggregate(params *Params, pks []*PublicKey) (*AggregateKey, error) {
	if len(pks) == 0 {
		return nil, errorf("Aggregate", ErrInvalidParameters, "no public keys supplied")
	}

	apk := params.Backend.G1Identity()
	plainPKs := make([]curve.G1, len(pks))
	hints := make([]curve.G1, params.N)
	for j := range hints {
		hints[j] = params.Backend.G1Identity()
	}

	for idx, pk := range pks {
		if len(pk.Hints) != params.N {
			return nil, errorf("Aggregate", ErrBackendError, "party %d: expected %d hints, got %d", pk.Index, params.N, len(pk.Hints))
		}
		if !verifyHintSentinel(params, pk) {
			return nil, errorf("Aggregate", ErrBackendError, "party %d: hint sentinel verification failed", pk.Index)
		}
		apk = apk.Add(pk.PK)
		plainPKs[idx] = pk.PK
		for j := 0; j < params.N; j++ {
			hints[j] = hints[j].Add(pk.Hints[j])
		}
	}

	return &AggregateKey{APK: apk, PKs: plainPKs, Hints: hints}, nil
}
