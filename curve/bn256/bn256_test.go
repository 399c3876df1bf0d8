package bn256

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tesscrypt/tess/curve"
)

func TestScalarArithmetic(t *testing.T) {
	b := New()
	x := b.ScalarFromUint64(3)
	y := b.ScalarFromUint64(4)
	require.True(t, x.Add(y).Equal(b.ScalarFromUint64(7)))
	require.True(t, x.Mul(y).Equal(b.ScalarFromUint64(12)))
	require.True(t, x.Sub(x).IsZero())

	inv := x.Clone().Inv()
	require.True(t, x.Mul(inv).Equal(b.OneScalar()))
}

func TestScalarSerializationRoundTrip(t *testing.T) {
	b := New()
	x := b.ScalarFromUint64(123456789)
	data := x.Bytes()
	y, err := b.ZeroScalar().SetBytes(data)
	require.NoError(t, err)
	require.True(t, x.Equal(y))
}

func TestG1SerializationRejectsGarbage(t *testing.T) {
	b := New()
	_, err := b.G1Identity().SetBytes([]byte{0x01, 0x02, 0x03})
	require.Error(t, err)
}

func TestPairingBilinearity(t *testing.T) {
	b := New()
	a := b.ScalarFromUint64(6)
	c := b.ScalarFromUint64(7)

	p1 := b.G1Base().Mul(a)
	p2 := b.G2Base().Mul(c)

	lhs := b.Pair(p1, p2)
	rhs := b.Pair(b.G1Base(), b.G2Base().Mul(a.Mul(c)))
	require.True(t, lhs.Equal(rhs))
}

func TestMultiPairMatchesPairwiseProduct(t *testing.T) {
	b := New()
	g1s := []curve.G1{b.G1Base().Mul(b.ScalarFromUint64(2)), b.G1Base().Mul(b.ScalarFromUint64(3))}
	g2s := []curve.G2{b.G2Base().Mul(b.ScalarFromUint64(5)), b.G2Base().Mul(b.ScalarFromUint64(7))}

	combined, err := b.MultiPair(g1s, g2s)
	require.NoError(t, err)

	want := b.Pair(g1s[0], g2s[0]).Add(b.Pair(g1s[1], g2s[1]))
	require.True(t, combined.Equal(want))
}

func TestMSMG1MatchesNaiveSum(t *testing.T) {
	b := New()
	n := 200 // exceeds msmChunkThreshold, exercises the parallel path
	scalars := make([]curve.Scalar, n)
	points := make([]curve.G1, n)
	naive := b.G1Identity()
	for i := 0; i < n; i++ {
		scalars[i] = b.ScalarFromUint64(uint64(i + 1))
		points[i] = b.G1Base().Mul(b.ScalarFromUint64(uint64(2*i + 1)))
		naive = naive.Add(points[i].Mul(scalars[i]))
	}

	got, err := b.MSMG1(scalars, points)
	require.NoError(t, err)
	require.True(t, got.Equal(naive))
}

func TestMSMG1ShortVectorMatchesLongVectorPath(t *testing.T) {
	b := New()
	n := 10 // below msmChunkThreshold
	scalars := make([]curve.Scalar, n)
	points := make([]curve.G1, n)
	for i := 0; i < n; i++ {
		scalars[i] = b.ScalarFromUint64(uint64(i + 1))
		points[i] = b.G1Base().Mul(b.ScalarFromUint64(uint64(i + 1)))
	}
	got, err := b.MSMG1(scalars, points)
	require.NoError(t, err)

	naive := b.G1Identity()
	for i := 0; i < n; i++ {
		naive = naive.Add(points[i].Mul(scalars[i]))
	}
	require.True(t, got.Equal(naive))
}

func TestPrimitiveRootHasCorrectOrder(t *testing.T) {
	b := New()
	const n = 16
	omega, err := b.PrimitiveRoot(n)
	require.NoError(t, err)

	acc := b.OneScalar()
	for i := 0; i < n; i++ {
		if i > 0 {
			require.False(t, acc.Equal(b.OneScalar()), "omega^%d should not be 1 yet", i)
		}
		acc = acc.Mul(omega)
	}
	require.True(t, acc.Equal(b.OneScalar()), "omega^n should be 1")
}

func TestPrimitiveRootRejectsNonPowerOfTwo(t *testing.T) {
	b := New()
	_, err := b.PrimitiveRoot(3)
	require.Error(t, err)
}
