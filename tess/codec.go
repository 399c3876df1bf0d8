package tess

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/tesscrypt/tess/curve"
	"github.com/tesscrypt/tess/kzg"
	"github.com/tesscrypt/tess/poly"
)

// wireVersion identifies the wire format ("tess/v1"); every encoder
// writes it first and every decoder rejects any other value, per
// spec.md §6's "Persisted representations" requirement.
const wireVersion byte = 0x01

func writeVersion(w io.Writer) error {
	_, err := w.Write([]byte{wireVersion})
	return err
}

func readVersion(r io.Reader) error {
	var v [1]byte
	if _, err := io.ReadFull(r, v[:]); err != nil {
		return err
	}
	if v[0] != wireVersion {
		return fmt.Errorf("tess: unsupported wire version 0x%02x", v[0])
	}
	return nil
}

// writeChunk frames b with a big-endian uint32 length, the same
// length-prefix pattern deriveKeystream uses for its domain-separated
// buffer (which frames with a big-endian int64 instead).
func writeChunk(w io.Writer, b []byte) error {
	if err := binary.Write(w, binary.BigEndian, uint32(len(b))); err != nil {
		return err
	}
	_, err := w.Write(b)
	return err
}

func readChunk(r io.Reader) ([]byte, error) {
	var n uint32
	if err := binary.Read(r, binary.BigEndian, &n); err != nil {
		return nil, err
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

func writeScalar(w io.Writer, s curve.Scalar) error { return writeChunk(w, s.Bytes()) }
func writeG1(w io.Writer, p curve.G1) error         { return writeChunk(w, p.Bytes()) }
func writeG2(w io.Writer, p curve.G2) error         { return writeChunk(w, p.Bytes()) }
func writeGT(w io.Writer, p curve.GT) error         { return writeChunk(w, p.Bytes()) }

// readG1/readG2/readGT/readScalar reject any chunk that does not
// decode to a valid on-curve, correct-subgroup element: SetBytes is
// the backend's own validated decoder (kyber's UnmarshalBinary under
// the hood), so a malformed or off-curve encoding is caught here, not
// deeper in a pairing check.
func readScalar(r io.Reader, backend curve.Backend) (curve.Scalar, error) {
	b, err := readChunk(r)
	if err != nil {
		return nil, err
	}
	return backend.ZeroScalar().SetBytes(b)
}

func readG1(r io.Reader, backend curve.Backend) (curve.G1, error) {
	b, err := readChunk(r)
	if err != nil {
		return nil, err
	}
	return backend.G1Identity().SetBytes(b)
}

func readG2(r io.Reader, backend curve.Backend) (curve.G2, error) {
	b, err := readChunk(r)
	if err != nil {
		return nil, err
	}
	return backend.G2Identity().SetBytes(b)
}

func readGT(r io.Reader, backend curve.Backend, sample curve.GT) (curve.GT, error) {
	b, err := readChunk(r)
	if err != nil {
		return nil, err
	}
	return sample.SetBytes(b)
}

// WriteTo serializes the full SRS: N, N_, T, then the N+1 powers of
// G1, the N+1 powers of G2, and the N Lagrange-basis G1 commitments.
// The evaluation domain itself is not persisted; it is rederived from
// N on read via poly.NewDomain, since it holds no secret and is cheap
// to recompute.
func (p *Params) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	if err := writeVersion(cw); err != nil {
		return cw.n, err
	}
	for _, v := range []int64{int64(p.N), int64(p.N_), int64(p.T)} {
		if err := binary.Write(cw, binary.BigEndian, v); err != nil {
			return cw.n, err
		}
	}
	for _, g := range p.CK.PowersG1 {
		if err := writeG1(cw, g); err != nil {
			return cw.n, err
		}
	}
	for _, g := range p.CK.PowersG2 {
		if err := writeG2(cw, g); err != nil {
			return cw.n, err
		}
	}
	for _, g := range p.LagrangeG1 {
		if err := writeG1(cw, g); err != nil {
			return cw.n, err
		}
	}
	return cw.n, nil
}

// ReadFromParams decodes a Params previously written by WriteTo,
// rebuilding the evaluation domain from the decoded N. backend must be
// the same implementation the SRS was generated under.
func ReadFromParams(r io.Reader, backend curve.Backend) (*Params, error) {
	if err := readVersion(r); err != nil {
		return nil, errorf("ReadFromParams", ErrBackendError, "%v", err)
	}
	var n64, n_64, t64 int64
	for _, v := range []*int64{&n64, &n_64, &t64} {
		if err := binary.Read(r, binary.BigEndian, v); err != nil {
			return nil, errorf("ReadFromParams", ErrBackendError, "%v", err)
		}
	}
	N, n, t := int(n64), int(n_64), int(t64)

	domain, err := poly.NewDomain(backend, N)
	if err != nil {
		return nil, errorf("ReadFromParams", ErrBackendError, "rebuild domain: %v", err)
	}

	powersG1 := make([]curve.G1, N+1)
	for i := range powersG1 {
		g, err := readG1(r, backend)
		if err != nil {
			return nil, errorf("ReadFromParams", ErrBackendError, "powers_g1[%d]: %v", i, err)
		}
		powersG1[i] = g
	}
	powersG2 := make([]curve.G2, N+1)
	for i := range powersG2 {
		g, err := readG2(r, backend)
		if err != nil {
			return nil, errorf("ReadFromParams", ErrBackendError, "powers_g2[%d]: %v", i, err)
		}
		powersG2[i] = g
	}
	lagrangeG1 := make([]curve.G1, N)
	for i := range lagrangeG1 {
		g, err := readG1(r, backend)
		if err != nil {
			return nil, errorf("ReadFromParams", ErrBackendError, "lagrange_g1[%d]: %v", i, err)
		}
		lagrangeG1[i] = g
	}

	return &Params{
		Backend:    backend,
		N:          N,
		N_:         n,
		T:          t,
		Domain:     domain,
		CK:         &kzg.CommitmentKey{Backend: backend, PowersG1: powersG1, PowersG2: powersG2},
		LagrangeG1: lagrangeG1,
	}, nil
}

// WriteTo serializes a party's public key: index, pk, pk2, then its N
// quotient hints.
func (pk *PublicKey) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	if err := writeVersion(cw); err != nil {
		return cw.n, err
	}
	if err := binary.Write(cw, binary.BigEndian, int64(pk.Index)); err != nil {
		return cw.n, err
	}
	if err := writeG1(cw, pk.PK); err != nil {
		return cw.n, err
	}
	if err := writeG2(cw, pk.PK2); err != nil {
		return cw.n, err
	}
	if err := binary.Write(cw, binary.BigEndian, int64(len(pk.Hints))); err != nil {
		return cw.n, err
	}
	for _, h := range pk.Hints {
		if err := writeG1(cw, h); err != nil {
			return cw.n, err
		}
	}
	return cw.n, nil
}

// ReadFromPublicKey decodes a PublicKey previously written by WriteTo.
func ReadFromPublicKey(r io.Reader, backend curve.Backend) (*PublicKey, error) {
	if err := readVersion(r); err != nil {
		return nil, errorf("ReadFromPublicKey", ErrBackendError, "%v", err)
	}
	var idx64, hlen64 int64
	if err := binary.Read(r, binary.BigEndian, &idx64); err != nil {
		return nil, errorf("ReadFromPublicKey", ErrBackendError, "%v", err)
	}
	pkVal, err := readG1(r, backend)
	if err != nil {
		return nil, errorf("ReadFromPublicKey", ErrBackendError, "pk: %v", err)
	}
	pk2, err := readG2(r, backend)
	if err != nil {
		return nil, errorf("ReadFromPublicKey", ErrBackendError, "pk2: %v", err)
	}
	if err := binary.Read(r, binary.BigEndian, &hlen64); err != nil {
		return nil, errorf("ReadFromPublicKey", ErrBackendError, "%v", err)
	}
	hints := make([]curve.G1, hlen64)
	for i := range hints {
		h, err := readG1(r, backend)
		if err != nil {
			return nil, errorf("ReadFromPublicKey", ErrBackendError, "hints[%d]: %v", i, err)
		}
		hints[i] = h
	}
	return &PublicKey{Index: int(idx64), PK: pkVal, PK2: pk2, Hints: hints}, nil
}

// WriteTo serializes an aggregate key: apk, the per-party public keys,
// and the summed hint vector.
func (apk *AggregateKey) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	if err := writeVersion(cw); err != nil {
		return cw.n, err
	}
	if err := writeG1(cw, apk.APK); err != nil {
		return cw.n, err
	}
	if err := binary.Write(cw, binary.BigEndian, int64(len(apk.PKs))); err != nil {
		return cw.n, err
	}
	for _, pk := range apk.PKs {
		if err := writeG1(cw, pk); err != nil {
			return cw.n, err
		}
	}
	if err := binary.Write(cw, binary.BigEndian, int64(len(apk.Hints))); err != nil {
		return cw.n, err
	}
	for _, h := range apk.Hints {
		if err := writeG1(cw, h); err != nil {
			return cw.n, err
		}
	}
	return cw.n, nil
}

// ReadFromAggregateKey decodes an AggregateKey previously written by WriteTo.
func ReadFromAggregateKey(r io.Reader, backend curve.Backend) (*AggregateKey, error) {
	if err := readVersion(r); err != nil {
		return nil, errorf("ReadFromAggregateKey", ErrBackendError, "%v", err)
	}
	apkVal, err := readG1(r, backend)
	if err != nil {
		return nil, errorf("ReadFromAggregateKey", ErrBackendError, "apk: %v", err)
	}
	var pksLen, hintsLen int64
	if err := binary.Read(r, binary.BigEndian, &pksLen); err != nil {
		return nil, errorf("ReadFromAggregateKey", ErrBackendError, "%v", err)
	}
	pks := make([]curve.G1, pksLen)
	for i := range pks {
		g, err := readG1(r, backend)
		if err != nil {
			return nil, errorf("ReadFromAggregateKey", ErrBackendError, "pks[%d]: %v", i, err)
		}
		pks[i] = g
	}
	if err := binary.Read(r, binary.BigEndian, &hintsLen); err != nil {
		return nil, errorf("ReadFromAggregateKey", ErrBackendError, "%v", err)
	}
	hints := make([]curve.G1, hintsLen)
	for i := range hints {
		g, err := readG1(r, backend)
		if err != nil {
			return nil, errorf("ReadFromAggregateKey", ErrBackendError, "hints[%d]: %v", i, err)
		}
		hints[i] = g
	}
	return &AggregateKey{APK: apkVal, PKs: pks, Hints: hints}, nil
}

// WriteTo serializes a ciphertext: γ, U, V, W, then the length-framed
// masked payload.
func (ct *Ciphertext) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	if err := writeVersion(cw); err != nil {
		return cw.n, err
	}
	if err := writeG1(cw, ct.Gamma); err != nil {
		return cw.n, err
	}
	if err := writeG2(cw, ct.U); err != nil {
		return cw.n, err
	}
	if err := writeG1(cw, ct.V); err != nil {
		return cw.n, err
	}
	if err := writeGT(cw, ct.W); err != nil {
		return cw.n, err
	}
	if err := writeChunk(cw, ct.C); err != nil {
		return cw.n, err
	}
	return cw.n, nil
}

// ReadFromCiphertext decodes a Ciphertext previously written by
// WriteTo. gtSample supplies a zero-value GT to decode W into, since
// the GT interface has no Backend-level identity constructor.
func ReadFromCiphertext(r io.Reader, backend curve.Backend, gtSample curve.GT) (*Ciphertext, error) {
	if err := readVersion(r); err != nil {
		return nil, errorf("ReadFromCiphertext", ErrMalformedCiphertext, "%v", err)
	}
	gamma, err := readG1(r, backend)
	if err != nil {
		return nil, errorf("ReadFromCiphertext", ErrMalformedCiphertext, "gamma: %v", err)
	}
	u, err := readG2(r, backend)
	if err != nil {
		return nil, errorf("ReadFromCiphertext", ErrMalformedCiphertext, "u: %v", err)
	}
	v, err := readG1(r, backend)
	if err != nil {
		return nil, errorf("ReadFromCiphertext", ErrMalformedCiphertext, "v: %v", err)
	}
	wVal, err := readGT(r, backend, gtSample)
	if err != nil {
		return nil, errorf("ReadFromCiphertext", ErrMalformedCiphertext, "w: %v", err)
	}
	c, err := readChunk(r)
	if err != nil {
		return nil, errorf("ReadFromCiphertext", ErrMalformedCiphertext, "c: %v", err)
	}
	return &Ciphertext{Gamma: gamma, U: u, V: v, W: wVal, C: c}, nil
}

// WriteTo serializes a partial decryption share: index, d_i.
func (p *Partial) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	if err := writeVersion(cw); err != nil {
		return cw.n, err
	}
	if err := binary.Write(cw, binary.BigEndian, int64(p.Index)); err != nil {
		return cw.n, err
	}
	if err := writeG1(cw, p.D); err != nil {
		return cw.n, err
	}
	return cw.n, nil
}

// ReadFromPartial decodes a Partial previously written by WriteTo.
func ReadFromPartial(r io.Reader, backend curve.Backend) (*Partial, error) {
	if err := readVersion(r); err != nil {
		return nil, errorf("ReadFromPartial", ErrMalformedPartial, "%v", err)
	}
	var idx64 int64
	if err := binary.Read(r, binary.BigEndian, &idx64); err != nil {
		return nil, errorf("ReadFromPartial", ErrMalformedPartial, "%v", err)
	}
	d, err := readG1(r, backend)
	if err != nil {
		return nil, errorf("ReadFromPartial", ErrMalformedPartial, "d: %v", err)
	}
	return &Partial{Index: int(idx64), D: d}, nil
}

// countingWriter tracks bytes written so WriteTo can satisfy
// io.WriterTo's int64 return without a separate byte-counting pass.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(b []byte) (int, error) {
	n, err := c.w.Write(b)
	c.n += int64(n)
	return n, err
}
