package poly

import "github.com/tesscrypt/tess/curve"

// FFT evaluates the polynomial with coefficients coeffs (padded/truncated
// to d.N()) at every point of H, in natural (not bit-reversed) order:
// out[i] = p(ω^i). It is an iterative radix-2 Cooley-Tukey transform,
// following the same bit-reversal-then-butterfly structure as the
// reference corpus's NTT implementation, generalized from uint64 RNS
// arithmetic to curve.Scalar.
//
// The butterfly order is fixed (layer by layer, left to right within a
// layer) so that FFT/IFFT are deterministic regardless of whether the
// caller later parallelizes independent layers.
func (d *Domain) FFT(coeffs []curve.Scalar) []curve.Scalar {
	return d.transform(coeffs, d.layerRootsForward)
}

// IFFT is the inverse of FFT: given evaluations over H in natural order,
// it recovers the polynomial's coefficients.
func (d *Domain) IFFT(evals []curve.Scalar) []curve.Scalar {
	out := d.transform(evals, d.layerRootsBackward)
	for i := range out {
		out[i] = out[i].Mul(d.nInv)
	}
	return out
}

// transform runs an iterative, in-place-equivalent radix-2 Cooley-Tukey
// butterfly network: bit-reverse the input, then for each layer combine
// blocks of the current size using the layer's twiddle generator,
// stepping the twiddle factor by repeated multiplication within a
// block. The resulting evaluation order is natural (out[i] = p(ω^i)).
func (d *Domain) transform(in []curve.Scalar, layerRoots []curve.Scalar) []curve.Scalar {
	n := d.n
	buf := make([]curve.Scalar, n)
	for i := 0; i < n; i++ {
		if i < len(in) {
			buf[i] = in[i].Clone()
		} else {
			buf[i] = d.backend.ZeroScalar()
		}
	}

	bitReverseInPlace(buf)

	for k, length := 0, 2; length <= n; k, length = k+1, length<<1 {
		half := length / 2
		wlen := layerRoots[k]
		for start := 0; start < n; start += length {
			w := d.backend.OneScalar()
			for i := 0; i < half; i++ {
				u := buf[start+i]
				v := buf[start+i+half].Mul(w)
				buf[start+i] = u.Clone().Add(v)
				buf[start+i+half] = u.Sub(v)
				w = w.Mul(wlen)
			}
		}
	}
	return buf
}

func bitReverseInPlace(buf []curve.Scalar) {
	n := len(buf)
	for i, j := 1, 0; i < n; i++ {
		bit := n >> 1
		for ; j&bit != 0; bit >>= 1 {
			j ^= bit
		}
		j ^= bit
		if i < j {
			buf[i], buf[j] = buf[j], buf[i]
		}
	}
}
