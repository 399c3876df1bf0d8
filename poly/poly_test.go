package poly

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tesscrypt/tess/curve"
	"github.com/tesscrypt/tess/curve/bn256"
)

func TestPolynomialEval(t *testing.T) {
	b := bn256.New()
	// p(X) = 3 + 2X + X^2
	p := Polynomial{Coeffs: []curve.Scalar{
		b.ScalarFromUint64(3),
		b.ScalarFromUint64(2),
		b.ScalarFromUint64(1),
	}}
	z := b.ScalarFromUint64(5)
	// p(5) = 3 + 10 + 25 = 38
	require.True(t, p.Eval(z).Equal(b.ScalarFromUint64(38)))
}

func TestPolynomialAddMul(t *testing.T) {
	b := bn256.New()
	p := Polynomial{Coeffs: []curve.Scalar{b.ScalarFromUint64(1), b.ScalarFromUint64(1)}} // 1+X
	q := Polynomial{Coeffs: []curve.Scalar{b.ScalarFromUint64(2), b.ScalarFromUint64(3)}} // 2+3X

	sum := Add(p, q)
	require.True(t, sum.Coeffs[0].Equal(b.ScalarFromUint64(3)))
	require.True(t, sum.Coeffs[1].Equal(b.ScalarFromUint64(4)))

	prod := Mul(p, q)
	// (1+X)(2+3X) = 2 + 5X + 3X^2
	require.True(t, prod.Coeffs[0].Equal(b.ScalarFromUint64(2)))
	require.True(t, prod.Coeffs[1].Equal(b.ScalarFromUint64(5)))
	require.True(t, prod.Coeffs[2].Equal(b.ScalarFromUint64(3)))
}

func TestDivLinear(t *testing.T) {
	b := bn256.New()
	// p(X) = X^2 - 1 = (X-1)(X+1), evaluate at z=7 for a nonzero remainder case too.
	p := Polynomial{Coeffs: []curve.Scalar{b.OneScalar().Neg(), b.ZeroScalar(), b.OneScalar()}}

	q, rem := DivLinear(p, b.OneScalar())
	require.True(t, rem.IsZero())
	require.True(t, q.Eval(b.ScalarFromUint64(3)).Equal(b.ScalarFromUint64(4))) // (X+1) at 3 = 4

	z := b.ScalarFromUint64(7)
	want := p.Eval(z)
	_, rem2 := DivLinear(p, z)
	require.True(t, rem2.Equal(want))
}
