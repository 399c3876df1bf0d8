package tess

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameters indicates n or t are out of the allowed range.
	ErrInvalidParameters = errors.New("tess: invalid parameters")

	// ErrSetupFailure indicates param_gen could not complete (e.g. rng failure).
	ErrSetupFailure = errors.New("tess: setup failure")

	// ErrKeygenFailure indicates keygen could not complete.
	ErrKeygenFailure = errors.New("tess: keygen failure")

	// ErrInvalidIndex indicates a party index outside 1..=n.
	ErrInvalidIndex = errors.New("tess: invalid party index")

	// ErrEncryptFailure indicates encrypt could not complete.
	ErrEncryptFailure = errors.New("tess: encrypt failure")

	// ErrPayloadTooLarge indicates a plaintext exceeding poly.MaxPayloadBytes.
	ErrPayloadTooLarge = errors.New("tess: payload too large")

	// ErrMalformedCiphertext indicates a ciphertext failed well-formedness checks.
	ErrMalformedCiphertext = errors.New("tess: malformed ciphertext")

	// ErrMalformedPartial indicates a partial decryption is badly encoded or not on curve.
	ErrMalformedPartial = errors.New("tess: malformed partial")

	// ErrInsufficientShares indicates fewer than t+1 partials were selected.
	ErrInsufficientShares = errors.New("tess: insufficient shares")

	// ErrVerificationFailed indicates a pairing check failed during aggregate_decrypt.
	ErrVerificationFailed = errors.New("tess: verification failed")

	// ErrBackendError indicates a failure in the underlying curve.Backend.
	ErrBackendError = errors.New("tess: backend error")
)

// Error wraps an underlying sentinel error with the operation that
// produced it, following the same Op/Err wrapping shape used for
// reporting errors throughout the reference corpus's MPC layer.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("tess.%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func errorf(op string, kind error, format string, args ...any) error {
	if format == "" {
		return &Error{Op: op, Err: kind}
	}
	return &Error{Op: op, Err: fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...))}
}
