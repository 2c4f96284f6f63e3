package ecdh

import "errors"

// Sentinel errors returned by this package. Callers should use
// errors.Is against these, not string comparison.
var (
	// ErrBadPublicKey is returned when a KekParams blob is malformed, a
	// hash or cipher id falls outside the enumerated set, or a public
	// point MPI is shorter than the curve requires.
	ErrBadPublicKey = errors.New("ecdh: bad public key material")

	// ErrBadMPI is returned when a session-key or wrapped-key MPI's
	// length is inconsistent with its self-described size octet.
	ErrBadMPI = errors.New("ecdh: malformed MPI")

	// ErrBadKey is returned when AES Key Unwrap's integrity check
	// fails: wrong KEK, tampered ciphertext, or wrong recipient key.
	// Decrypt does not inspect the session-key padding, so it never
	// reports a padding failure (see Decrypt's doc comment).
	ErrBadKey = errors.New("ecdh: key unwrap failed")

	// ErrOutOfMemory is returned when the zeroizing allocator refuses
	// an allocation.
	ErrOutOfMemory = errors.New("ecdh: secure allocation failed")
)

// CryptoError wraps an unexpected failure from a cryptographic
// primitive (e.g. a hash.Hash write failing, which never happens in
// practice for the standard library's implementations but is still a
// distinct, non-retriable error class per the design).
type CryptoError struct {
	Op  string
	Err error
}

func (e *CryptoError) Error() string {
	if e.Err == nil {
		return "ecdh: crypto error during " + e.Op
	}
	return "ecdh: crypto error during " + e.Op + ": " + e.Err.Error()
}

func (e *CryptoError) Unwrap() error { return e.Err }

func newCryptoError(op string, err error) error {
	return &CryptoError{Op: op, Err: err}
}
