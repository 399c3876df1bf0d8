package tess

import (
	"bytes"
	"encoding/binary"

	"github.com/zeebo/blake3"
)

// maskDomainSep is the domain-separation tag mixed into every keystream
// derivation, so that a mask element can never be replayed as keystream
// material for an unrelated purpose.
const maskDomainSep = "tess/v1/mask"

// deriveKeystream computes K := KDF(serialize(mask), domain_sep, n),
// following the reference corpus's pattern of hashing a length-prefixed
// buffer with blake3 (sign/hash.go's PRNGKey/GenerateMAC), but reading
// the keystream directly off blake3's native XOF output instead of
// hashing down to a fixed digest and reseeding a separate sampler —
// blake3 is already an extendable-output function, so there is no need
// for the teacher's two-stage hash-then-reseed indirection here.
func deriveKeystream(maskBytes []byte, n int) ([]byte, error) {
	buf := new(bytes.Buffer)
	buf.WriteString(maskDomainSep)
	if err := binary.Write(buf, binary.BigEndian, int64(len(maskBytes))); err != nil {
		return nil, err
	}
	buf.Write(maskBytes)

	hasher := blake3.New()
	hasher.Write(buf.Bytes())

	keystream := make([]byte, n)
	if _, err := hasher.Digest().Read(keystream); err != nil {
		return nil, err
	}
	return keystream, nil
}

// xorMask returns out[i] = a[i] ^ keystream[i] for every i < len(a)
// (keystream must be at least len(a) bytes long), zeroing the
// keystream buffer afterward per spec.md's secret-hygiene
// requirement ("the symmetric keystream buffer is zeroed after XOR").
func xorMask(a, keystream []byte) []byte {
	out := make([]byte, len(a))
	for i := range a {
		out[i] = a[i] ^ keystream[i]
	}
	for i := range keystream {
		keystream[i] = 0
	}
	return out
}
