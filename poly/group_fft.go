package poly

import "github.com/tesscrypt/tess/curve"

// GroupOps is the minimal algebraic interface TransformGroup needs to
// run an FFT/IFFT "in the exponent": group addition/subtraction and
// scalar multiplication. curve.G1 and curve.G2 both satisfy it as-is.
type GroupOps[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(curve.Scalar) T
}

// TransformGroup runs the same bit-reverse + layered-butterfly network
// as Domain.transform, but over group elements satisfying GroupOps
// instead of curve.Scalar. Because the N-point (I)FFT matrix over H is
// symmetric, applying TransformGroup directly to the SRS's power table
// {[τ^k]_1} yields {[L_i(τ)]_1} for all i in one pass — this is the
// "single inverse-FFT trick" used by param_gen instead of N independent
// Lagrange-polynomial commitments.
func TransformGroup[T GroupOps[T]](d *Domain, in []T, inverse bool, zero T) []T {
	n := d.n
	buf := make([]T, n)
	for i := 0; i < n; i++ {
		if i < len(in) {
			buf[i] = in[i]
		} else {
			buf[i] = zero
		}
	}

	bitReverseInPlaceGeneric(buf)

	layerRoots := d.layerRootsForward
	if inverse {
		layerRoots = d.layerRootsBackward
	}

	for k, length := 0, 2; length <= n; k, length = k+1, length<<1 {
		half := length / 2
		wlen := layerRoots[k]
		for start := 0; start < n; start += length {
			w := d.backend.OneScalar()
			for i := 0; i < half; i++ {
				u := buf[start+i]
				v := buf[start+i+half].Mul(w)
				buf[start+i] = u.Add(v)
				buf[start+i+half] = u.Sub(v)
				w = w.Mul(wlen)
			}
		}
	}

	if inverse {
		for i := range buf {
			buf[i] = buf[i].Mul(d.nInv)
		}
	}
	return buf
}

func bitReverseInPlaceGeneric[T any](buf []T) {
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
