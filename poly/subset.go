package poly

import "github.com/tesscrypt/tess/curve"

// SubsetVanishing returns Z_S(X) = prod_{i in indices} (X - ω^i), the
// vanishing polynomial of the selector subset S, built with a balanced
// product tree (pairwise-merge the per-index linear factors) rather than
// one long sequential multiplication chain, the standard way to keep the
// factor-count per Mul call small and the tree depth logarithmic in |S|.
func (d *Domain) SubsetVanishing(backend curve.Backend, indices []int) Polynomial {
	if len(indices) == 0 {
		return Polynomial{Coeffs: []curve.Scalar{backend.OneScalar()}}
	}
	factors := make([]Polynomial, len(indices))
	for k, i := range indices {
		point := d.Point(i)
		factors[k] = Polynomial{Coeffs: []curve.Scalar{point.Neg(), backend.OneScalar()}}
	}
	return productTree(factors)
}

// productTree multiplies a slice of polynomials via pairwise merging in
// a balanced binary tree, so that no single Mul call is ever handed the
// full accumulated product against one linear factor.
func productTree(ps []Polynomial) Polynomial {
	if len(ps) == 1 {
		return ps[0]
	}
	mid := len(ps) / 2
	left := productTree(ps[:mid])
	right := productTree(ps[mid:])
	return Mul(left, right)
}
