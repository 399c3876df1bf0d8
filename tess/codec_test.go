package tess

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tesscrypt/tess/curve"
	"github.com/tesscrypt/tess/curve/bn256"
)

func TestParamsWriteToReadFromRoundTrip(t *testing.T) {
	backend := bn256.New()
	rng, err := curve.NewDeterministicRNG([]byte("seed-codec-params"))
	require.NoError(t, err)

	params, err := ParamGenUnsafe(backend, rng, 4, 1)
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = params.WriteTo(&buf)
	require.NoError(t, err)

	decoded, err := ReadFromParams(&buf, backend)
	require.NoError(t, err)

	require.Equal(t, params.N, decoded.N)
	require.Equal(t, params.N_, decoded.N_)
	require.Equal(t, params.T, decoded.T)
	require.Len(t, decoded.CK.PowersG1, len(params.CK.PowersG1))
	for i := range params.CK.PowersG1 {
		require.True(t, params.CK.PowersG1[i].Equal(decoded.CK.PowersG1[i]))
	}
	for i := range params.LagrangeG1 {
		require.True(t, params.LagrangeG1[i].Equal(decoded.LagrangeG1[i]))
	}
}

func TestParamsReadFromRejectsWrongVersion(t *testing.T) {
	backend := bn256.New()
	var buf bytes.Buffer
	buf.WriteByte(0x02)
	_, err := ReadFromParams(&buf, backend)
	require.Error(t, err)
}

func TestPublicKeyWriteToReadFromRoundTrip(t *testing.T) {
	backend := bn256.New()
	rng, err := curve.NewDeterministicRNG([]byte("seed-codec-pk"))
	require.NoError(t, err)

	params, err := ParamGenUnsafe(backend, rng, 4, 1)
	require.NoError(t, err)
	sk, err := backend.RandomScalar(rng)
	require.NoError(t, err)
	pk, err := GenerateParty(params, 1, sk)
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = pk.WriteTo(&buf)
	require.NoError(t, err)

	decoded, err := ReadFromPublicKey(&buf, backend)
	require.NoError(t, err)
	require.Equal(t, pk.Index, decoded.Index)
	require.True(t, pk.PK.Equal(decoded.PK))
	require.True(t, pk.PK2.Equal(decoded.PK2))
	require.Len(t, decoded.Hints, len(pk.Hints))
	for i := range pk.Hints {
		require.True(t, pk.Hints[i].Equal(decoded.Hints[i]))
	}
}

func TestCiphertextWriteToReadFromRoundTrip(t *testing.T) {
	params, _, _, apk := setupScenario(t, []byte("seed-codec-ct"), 4, 1)
	rng, err := curve.NewDeterministicRNG([]byte("seed-codec-ct-enc"))
	require.NoError(t, err)

	ct, err := Encrypt(params, rng, apk, []byte("round trip me"))
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = ct.WriteTo(&buf)
	require.NoError(t, err)

	decoded, err := ReadFromCiphertext(&buf, params.Backend, ct.W.Clone())
	require.NoError(t, err)
	require.True(t, ct.Gamma.Equal(decoded.Gamma))
	require.True(t, ct.U.Equal(decoded.U))
	require.True(t, ct.V.Equal(decoded.V))
	require.True(t, ct.W.Equal(decoded.W))
	require.True(t, bytes.Equal(ct.C, decoded.C))
}

func TestCiphertextReadFromRejectsTruncatedInput(t *testing.T) {
	params, _, _, apk := setupScenario(t, []byte("seed-codec-trunc"), 4, 1)
	rng, err := curve.NewDeterministicRNG([]byte("seed-codec-trunc-enc"))
	require.NoError(t, err)

	ct, err := Encrypt(params, rng, apk, []byte("x"))
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = ct.WriteTo(&buf)
	require.NoError(t, err)

	truncated := bytes.NewReader(buf.Bytes()[:buf.Len()/2])
	_, err = ReadFromCiphertext(truncated, params.Backend, ct.W.Clone())
	require.Error(t, err)
}

func TestPartialWriteToReadFromRoundTrip(t *testing.T) {
	params, sks, _, apk := setupScenario(t, []byte("seed-codec-partial"), 4, 1)
	rng, err := curve.NewDeterministicRNG([]byte("seed-codec-partial-enc"))
	require.NoError(t, err)
	ct, err := Encrypt(params, rng, apk, []byte("partial"))
	require.NoError(t, err)

	p, err := PartialDecrypt(sks[0], ct)
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = p.WriteTo(&buf)
	require.NoError(t, err)

	decoded, err := ReadFromPartial(&buf, params.Backend)
	require.NoError(t, err)
	require.Equal(t, p.Index, decoded.Index)
	require.True(t, p.D.Equal(decoded.D))
}

func TestAggregateKeyWriteToReadFromRoundTrip(t *testing.T) {
	_, _, _, apk := setupScenario(t, []byte("seed-codec-apk"), 4, 1)

	var buf bytes.Buffer
	_, err := apk.WriteTo(&buf)
	require.NoError(t, err)

	backend := bn256.New()
	decoded, err := ReadFromAggregateKey(&buf, backend)
	require.NoError(t, err)
	require.True(t, apk.APK.Equal(decoded.APK))
	require.Len(t, decoded.PKs, len(apk.PKs))
	for i := range apk.PKs {
		require.True(t, apk.PKs[i].Equal(decoded.PKs[i]))
	}
}
