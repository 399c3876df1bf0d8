package poly

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tesscrypt/tess/curve"
	"github.com/tesscrypt/tess/curve/bn256"
)

func TestFFTRoundTrip(t *testing.T) {
	b := bn256.New()
	d, err := NewDomain(b, 8)
	require.NoError(t, err)

	coeffs := make([]curve.Scalar, 8)
	for i := range coeffs {
		coeffs[i] = b.ScalarFromUint64(uint64(i + 1))
	}

	evals := d.FFT(coeffs)
	require.Len(t, evals, 8)

	back := d.IFFT(evals)
	for i := range coeffs {
		require.True(t, coeffs[i].Equal(back[i]), "coefficient %d mismatch", i)
	}
}

func TestFFTMatchesDirectEval(t *testing.T) {
	b := bn256.New()
	d, err := NewDomain(b, 4)
	require.NoError(t, err)

	coeffs := []curve.Scalar{b.ScalarFromUint64(1), b.ScalarFromUint64(2), b.ScalarFromUint64(3), b.ScalarFromUint64(4)}
	p := Polynomial{Coeffs: coeffs}

	evals := d.FFT(coeffs)
	for i := 0; i < 4; i++ {
		want := p.Eval(d.Point(i))
		require.True(t, want.Equal(evals[i]), "point %d mismatch", i)
	}
}

func TestLagrangeBasisIndicator(t *testing.T) {
	b := bn256.New()
	d, err := NewDomain(b, 8)
	require.NoError(t, err)

	for i := 0; i < 8; i++ {
		li := d.LagrangeBasisCoeffs(i)
		for j := 0; j < 8; j++ {
			got := li.Eval(d.Point(j))
			if i == j {
				require.True(t, got.Equal(b.OneScalar()), "L_%d(omega^%d) should be 1", i, j)
			} else {
				require.True(t, got.IsZero(), "L_%d(omega^%d) should be 0", i, j)
			}
		}
	}
}

func TestInterpolateAgreesOnDomain(t *testing.T) {
	b := bn256.New()
	d, err := NewDomain(b, 8)
	require.NoError(t, err)

	evals := make([]curve.Scalar, 8)
	for i := range evals {
		evals[i] = b.ScalarFromUint64(uint64(i * i))
	}
	p := d.Interpolate(evals)
	for i := range evals {
		require.True(t, evals[i].Equal(p.Eval(d.Point(i))))
	}
}

func TestSubsetVanishingHasExactRoots(t *testing.T) {
	b := bn256.New()
	d, err := NewDomain(b, 8)
	require.NoError(t, err)

	indices := []int{1, 3, 5}
	z := d.SubsetVanishing(b, indices)

	for _, i := range indices {
		require.True(t, z.Eval(d.Point(i)).IsZero(), "vanishing poly should be zero at index %d", i)
	}
	// a point not in the subset must not be a root in general.
	require.False(t, z.Eval(d.Point(0)).IsZero())
}

func TestLagrangeCommitG1MatchesDirectCommit(t *testing.T) {
	b := bn256.New()
	n := 8
	d, err := NewDomain(b, n)
	require.NoError(t, err)

	tau := b.ScalarFromUint64(42)
	powers := make([]curve.G1, n)
	cur := b.OneScalar()
	for i := 0; i < n; i++ {
		powers[i] = b.G1Base().Mul(cur)
		cur = cur.Mul(tau)
	}

	lagrange := d.LagrangeCommitG1(powers)
	require.Len(t, lagrange, n)

	for i := 0; i < n; i++ {
		li := d.LagrangeBasisCoeffs(i)
		want := b.G1Base().Mul(li.Eval(tau))
		require.True(t, want.Equal(lagrange[i]), "lagrange commitment %d mismatch", i)
	}
}
