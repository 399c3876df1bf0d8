package tess

import (
	"github.com/tesscrypt/tess/curve"
	"github.com/tesscrypt/tess/poly"
)

// correctionT returns [τ^t - 1]_1, read directly off the SRS's power
// table with no secret involved. See DESIGN.md for why this is the
// chosen instantiation of spec.md §4.G's "correction(t)".
func correctionT(params *Params) curve.G1 {
	return params.CK.PowersG1[params.T].Clone().Sub(params.Backend.G1Base())
}

// Encrypt implements spec.md §4.G: sample an ephemeral scalar, derive
// the threshold-binding opening V and the Gt mask M, then XOR-mask the
// payload with a keystream derived from M. Constant-time in the
// plaintext's length class: the only branch on plaintext length is the
// PayloadTooLarge bound check up front, never inside the masking loop.
func Encrypt(params *Params, rng curve.PRNG, apk *AggregateKey, plaintext []byte) (*Ciphertext, error) {
	if len(plaintext) > poly.MaxPayloadBytes {
		return nil, errorf("Encrypt", ErrPayloadTooLarge, "%d bytes exceeds %d byte bound", len(plaintext), poly.MaxPayloadBytes)
	}

	s, err := params.Backend.RandomScalar(rng)
	if err != nil {
		return nil, errorf("Encrypt", ErrEncryptFailure, "sample ephemeral scalar: %v", err)
	}

	gamma := params.Backend.G1Base().Mul(s)
	u := params.Backend.G2Base().Mul(s)

	correction := correctionT(params)
	v := correction.Clone().Mul(s)

	maskBase := apk.APK.Clone().Add(correction)
	m := params.Backend.Pair(maskBase, u)

	keystream, err := deriveKeystream(m.Bytes(), len(plaintext))
	if err != nil {
		return nil, errorf("Encrypt", ErrEncryptFailure, "derive keystream: %v", err)
	}
	c := xorMask(plaintext, keystream)

	return &Ciphertext{Gamma: gamma, U: u, V: v, W: m, C: c}, nil
}
