package poly

import "github.com/tesscrypt/tess/curve"

// LagrangeBasisCoeffs returns the coefficients of L_i(X), the unique
// degree-(N-1) polynomial with L_i(ω^i) = 1 and L_i(ω^j) = 0 for j != i.
// It is computed as IFFT(e_i), the inverse transform of the indicator
// vector at position i, rather than from the closed form
// L_i(X) = Z_H(X) / (N*ω^{-i}*(X-ω^i)) — both are equal on H, but the
// transform avoids a separate field division per coefficient.
func (d *Domain) LagrangeBasisCoeffs(i int) Polynomial {
	evals := make([]curve.Scalar, d.n)
	for j := range evals {
		evals[j] = d.backend.ZeroScalar()
	}
	evals[i] = d.backend.OneScalar()
	return Polynomial{Coeffs: d.IFFT(evals)}
}

// Interpolate returns the unique polynomial of degree < N agreeing with
// evals at every point of H (evals[i] = p(ω^i)), via IFFT.
func (d *Domain) Interpolate(evals []curve.Scalar) Polynomial {
	return Polynomial{Coeffs: d.IFFT(evals)}
}

// LagrangeCommitG1 computes {[L_i(τ)]_1}_{i=0}^{N-1} in a single pass
// from the SRS's power-of-τ table {[τ^k]_1}_{k=0}^{N-1}, instead of
// committing each L_i separately. This holds because the (I)FFT matrix
// over H is symmetric: IFFT({[τ^k]_1})_i = sum_k F^{-1}_{i,k}[τ^k]_1
// equals [L_i(τ)]_1 = sum_k F^{-1}_{k,i}[τ^k]_1 term for term.
func (d *Domain) LagrangeCommitG1(powersOfTauG1 []curve.G1) []curve.G1 {
	return TransformGroup[curve.G1](d, powersOfTauG1, true, d.backend.G1Identity())
}

// LagrangeCommitG2 is the G2 analogue of LagrangeCommitG1.
func (d *Domain) LagrangeCommitG2(powersOfTauG2 []curve.G2) []curve.G2 {
	return TransformGroup[curve.G2](d, powersOfTauG2, true, d.backend.G2Identity())
}
