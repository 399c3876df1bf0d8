package bn256

import (
	"fmt"
	"math/big"

	"github.com/tesscrypt/tess/curve"
)

// scalarFieldOrder is the group order r of kyber's bn256 curve
// (36u⁴+36u³+18u²+6u+1 for u = 6518589491078791937), i.e. the modulus
// of the backend's scalar field Fr. r-1 is divisible by 2^5, so
// power-of-two roots of unity exist up to n = 32.
var scalarFieldOrder, _ = new(big.Int).SetString(
	"65000549695646603732796438742359905742570406053903786389881062969044166799969", 10)

// fieldGenerator is a fixed quadratic non-residue mod r, so that
// fieldGenerator^((r-1)/n) has order exactly n for every power of two n
// dividing r-1.
var fieldGenerator = big.NewInt(7)

// primitiveRootOfUnity computes a primitive n-th root of unity in Fr as
// fieldGenerator^((r-1)/n) mod r, encoded back into a curve.Scalar via
// the backend's scalar byte encoding.
func primitiveRootOfUnity(b *Backend, n uint64) (curve.Scalar, error) {
	nBig := new(big.Int).SetUint64(n)

	rMinus1 := new(big.Int).Sub(scalarFieldOrder, big.NewInt(1))
	exp := new(big.Int)
	rem := new(big.Int)
	exp.DivMod(rMinus1, nBig, rem)
	if rem.Sign() != 0 {
		return nil, fmt.Errorf("bn256: n=%d does not divide r-1", n)
	}

	root := new(big.Int).Exp(fieldGenerator, exp, scalarFieldOrder)

	scalarLen := b.suite.G1().ScalarLen()
	buf := make([]byte, scalarLen)
	rootBytes := root.Bytes()
	copy(buf[scalarLen-len(rootBytes):], rootBytes)

	s := b.suite.G1().Scalar()
	if err := s.UnmarshalBinary(buf); err != nil {
		return nil, fmt.Errorf("bn256: decode primitive root: %w", err)
	}
	return &scalarT{s}, nil
}
