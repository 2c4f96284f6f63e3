package ecdh

import (
	"fmt"

	"github.com/openpgp-go/ecdh-core/internal/secbuf"
)

// SharedSecret is the mutable-but-short-lived X coordinate of an ECDH
// shared point: the ceil(qbits/8) octets that follow the point's
// leading framing byte, big-endian. It is created by ExtractSharedX, consumed exactly once
// by WrapEngine, and must be released (zeroized) on every exit path.
// Ownership is exclusive: a SharedSecret must not be read after
// Release.
type SharedSecret struct {
	buf *secbuf.Buffer
}

// Bytes exposes the live X-coordinate bytes. The returned slice
// aliases internal storage and is invalid after Release.
func (s *SharedSecret) Bytes() []byte {
	if s == nil {
		return nil
	}
	return s.buf.Bytes()
}

// Release zeroizes and discards the secret. Safe to call more than
// once and on a nil receiver.
func (s *SharedSecret) Release() {
	if s == nil {
		return
	}
	s.buf.Release()
}

// octetLen returns ceil(qbits/8), the fixed output length invariant
// I1 requires.
func octetLen(qbits int) int {
	return (qbits + 7) / 8
}

// ExtractSharedX extracts the big-endian X coordinate from an
// already-computed shared point, normalized to ceil(qbits/8) octets
// (§4.2). sharedPointMPI is the raw octet representation of the
// shared point as produced by the external EC scalar-multiply
// collaborator (§6): for Weierstrass curves this is `04 || X || Y`
// (uncompressed point); for single-coordinate representations
// (Curve25519-style) it is one leading framing byte followed by the
// coordinate. Either way, exactly one leading byte is skipped before
// copying n = ceil(qbits/8) octets.
//
// ExtractSharedX fails with ErrBadPublicKey if sharedPointMPI is not
// strictly longer than n (there must be room for the leading framing
// byte plus the coordinate itself), or with ErrOutOfMemory if qbits is
// so large that the normalized secret buffer exceeds the secure
// allocator's bound (secbuf.MaxLen) — a qbits value this module would
// never see from a conforming curve, but one the secure allocator
// still refuses explicitly rather than committing unbounded memory.
func ExtractSharedX(sharedPointMPI []byte, qbits int) (*SharedSecret, error) {
	if qbits <= 0 {
		return nil, fmt.Errorf("%w: non-positive qbits %d", ErrBadPublicKey, qbits)
	}
	n := octetLen(qbits)
	m := len(sharedPointMPI)
	if m <= n {
		return nil, fmt.Errorf("%w: shared point is %d octets, need more than %d", ErrBadPublicKey, m, n)
	}

	out, err := secbuf.New(n)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOutOfMemory, err)
	}
	x := sharedPointMPI[1 : 1+n]
	copy(out.Bytes(), x)

	return &SharedSecret{buf: out}, nil
}
