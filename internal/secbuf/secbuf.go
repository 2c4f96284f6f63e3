// Package secbuf provides a zeroizing byte buffer for short-lived secret
// material (shared X coordinates, derived KEKs, padded session keys).
//
// It is the single place in the module that scrubs memory, so every
// acquire path releases on every exit, including error paths.
package secbuf

import (
	"errors"
	"fmt"
	"runtime"
)

// ErrAllocationTooLarge is returned by New when the requested length
// exceeds MaxLen. It is the secure allocator's refusal signal; callers
// in pkg/ecdh map it to ErrOutOfMemory.
var ErrAllocationTooLarge = errors.New("secbuf: allocation exceeds secure allocator bound")

// MaxLen bounds every allocation New will perform. No legitimate
// secret this module handles (a shared X coordinate of at most 66
// octets for P-521, or a derived KEK of at most 32) comes close to this; the
// bound exists to make a corrupted or adversarial qbits value fail
// with a reported allocator refusal instead of silently committing an
// unbounded amount of memory.
const MaxLen = 1 << 16

// Buffer owns a byte slice that must be wiped before it is discarded.
// A Buffer has exactly one owner; ownership is not meant to be shared.
type Buffer struct {
	b        []byte
	released bool
}

// New allocates a Buffer of the given length, zero-filled. It reports
// ErrAllocationTooLarge if n is negative or exceeds MaxLen.
func New(n int) (*Buffer, error) {
	if n < 0 || n > MaxLen {
		return nil, fmt.Errorf("%w: requested %d bytes", ErrAllocationTooLarge, n)
	}
	s := &Buffer{b: make([]byte, n)}
	runtime.SetFinalizer(s, (*Buffer).Release)
	return s, nil
}

// Wrap takes ownership of an existing slice. The caller must not retain
// or mutate buf after calling Wrap.
func Wrap(buf []byte) *Buffer {
	s := &Buffer{b: buf}
	runtime.SetFinalizer(s, (*Buffer).Release)
	return s
}

// Bytes returns the live contents. The returned slice aliases the
// Buffer's storage and becomes invalid after Release.
func (s *Buffer) Bytes() []byte {
	if s == nil {
		return nil
	}
	return s.b
}

// Len reports the buffer length.
func (s *Buffer) Len() int {
	if s == nil {
		return 0
	}
	return len(s.b)
}

// Truncate shortens the live view to n bytes and zeroizes everything
// past it, without reallocating. n must be <= s.Len().
func (s *Buffer) Truncate(n int) {
	if s == nil || s.released {
		return
	}
	tail := s.b[n:]
	for i := range tail {
		tail[i] = 0
	}
	s.b = s.b[:n]
}

// Release zeroizes the buffer and marks it unusable. Release is
// idempotent and safe to call from a defer on every exit path.
func (s *Buffer) Release() {
	if s == nil || s.released {
		return
	}
	for i := range s.b {
		s.b[i] = 0
	}
	s.b = nil
	s.released = true
	runtime.SetFinalizer(s, nil)
}

// Released reports whether Release has already run.
func (s *Buffer) Released() bool {
	return s == nil || s.released
}

// ZeroizeBytes overwrites buf with zeros in place.
func ZeroizeBytes(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
}
