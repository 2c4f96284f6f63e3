package ecdh

import (
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"

	"github.com/openpgp-go/ecdh-core/internal/secbuf"
)

type engineState int

const (
	stateInit engineState = iota
	stateKDFed
	stateWrapped
	stateUnwrapped
	stateReleased
)

// WrapEngine runs the single-block concatenation KDF (NIST SP
// 800-56A §5.8.1) and then RFC 3394 AES Key Wrap or Unwrap over the
// padded session key (§4.4). It is a straight-line pipeline:
//
//	Init -> KDFed -> Wrapped/Unwrapped -> Released
//
// There are no retries: any failure releases every secret buffer and
// leaves the engine in the Released state, so a caller that ignores
// an error and calls Wrap/Unwrap again gets a clean error rather than
// operating on stale or partially-derived key material.
//
// A WrapEngine is single-use and not safe for concurrent use by
// multiple goroutines; build one WrapEngine per message.
type WrapEngine struct {
	state  engineState
	hash   HashID
	cipher CipherID

	secret *SharedSecret // owned until deriveKEK reuses its buffer
	kek    *secbuf.Buffer
	input  []byte // KDF "other info"; not secret, not zeroized
}

// NewWrapEngine constructs a WrapEngine from decoded KEK parameters,
// an already-extracted shared secret, and an already-built KDF input
// (§4.3). The engine takes ownership of secret: the caller must not
// read or release it afterward.
func NewWrapEngine(params KekParams, secret *SharedSecret, kdfInput []byte) (*WrapEngine, error) {
	if !params.Hash.valid() {
		return nil, fmt.Errorf("%w: unsupported hash id %d", ErrBadPublicKey, params.Hash)
	}
	if !params.Cipher.valid() {
		return nil, fmt.Errorf("%w: unsupported cipher id %d", ErrBadPublicKey, params.Cipher)
	}
	if secret == nil || secret.buf.Released() {
		return nil, fmt.Errorf("%w: nil or released shared secret", ErrBadPublicKey)
	}
	return &WrapEngine{
		state:  stateInit,
		hash:   params.Hash,
		cipher: params.Cipher,
		secret: secret,
		input:  kdfInput,
	}, nil
}

func newHashCtx(id HashID) (hash.Hash, error) {
	switch id {
	case HashSHA256:
		return sha256.New(), nil
	case HashSHA384:
		return sha512.New384(), nil
	case HashSHA512:
		return sha512.New(), nil
	default:
		return nil, fmt.Errorf("%w: unsupported hash id %d", ErrBadPublicKey, id)
	}
}

// kdfCounter is the 4-byte big-endian counter NIST SP 800-56A §5.8.1
// prescribes for a single-block concatenation KDF: 00 00 00 01.
var kdfCounter = [4]byte{0, 0, 0, 1}

// deriveKEK runs steps 1-6 of §4.4's key derivation and overwrites the
// SharedSecret's buffer in place with the resulting KEK, to avoid an
// extra secret copy; any digest bytes past the KEK length are
// zeroized before the scratch digest is discarded.
func (e *WrapEngine) deriveKEK() error {
	if e.state != stateInit {
		return fmt.Errorf("ecdh: wrap engine: deriveKEK called out of order (state %d)", e.state)
	}

	h, err := newHashCtx(e.hash)
	if err != nil {
		e.Release()
		return err
	}

	if _, err := h.Write(kdfCounter[:]); err != nil {
		e.Release()
		return newCryptoError("kdf: absorb counter", err)
	}
	if _, err := h.Write(e.secret.Bytes()); err != nil {
		e.Release()
		return newCryptoError("kdf: absorb shared secret", err)
	}
	if _, err := h.Write(e.input); err != nil {
		e.Release()
		return newCryptoError("kdf: absorb kdf input", err)
	}
	digest := h.Sum(nil)
	defer secbuf.ZeroizeBytes(digest)

	k := e.cipher.KeyLen()
	if len(digest) < k {
		e.Release()
		return newCryptoError("kdf: finalize", fmt.Errorf("digest length %d shorter than kek length %d", len(digest), k))
	}

	out := e.secret.Bytes()
	copy(out[:k], digest[:k])
	e.secret.buf.Truncate(k)
	e.kek = e.secret.buf
	e.secret = nil

	e.state = stateKDFed
	traceFrame("kdf-input", e.input)
	return nil
}

// Wrap runs the KDF (if not already run) and RFC 3394 AES Key Wraps
// padded under the derived KEK. padded's length must be a multiple of
// 8 octets and at least 16; Wrap does not add its own padding. The
// return value is [len(padded)+8] || AESWRAP(KEK, padded): a single
// length octet followed by the wrap output, matching §3's WrappedKey
// layout. The engine is released (and unusable for further calls)
// whether Wrap succeeds or fails.
func (e *WrapEngine) Wrap(padded []byte) ([]byte, error) {
	if e.state == stateInit {
		if err := e.deriveKEK(); err != nil {
			return nil, err
		}
	}
	if e.state != stateKDFed {
		e.Release()
		return nil, fmt.Errorf("ecdh: wrap engine: Wrap called out of order (state %d)", e.state)
	}

	w, err := keyWrap(e.kek.Bytes(), padded)
	if err != nil {
		e.Release()
		return nil, err
	}
	if len(w) > 255 {
		e.Release()
		return nil, fmt.Errorf("%w: wrapped length %d exceeds one octet", ErrBadMPI, len(w))
	}

	out := make([]byte, 1+len(w))
	out[0] = byte(len(w))
	copy(out[1:], w)

	e.state = stateWrapped
	e.Release()
	traceFrame("wrapped-key", out)
	return out, nil
}

// Unwrap runs the KDF (if not already run) and RFC 3394 AES Key
// Unwraps an encoded [len] || W field (§3), validating that len
// matches the remaining payload length, is a multiple of 8, and is at
// least 24 (a wrapped 16-octet key is the smallest valid input). The
// returned padded session key is still padded; stripping the padding
// is the caller's responsibility. On an AES unwrap integrity failure
// Unwrap returns ErrBadKey. The engine is released whether Unwrap
// succeeds or fails.
func (e *WrapEngine) Unwrap(wrapped []byte) ([]byte, error) {
	if e.state == stateInit {
		if err := e.deriveKEK(); err != nil {
			return nil, err
		}
	}
	if e.state != stateKDFed {
		e.Release()
		return nil, fmt.Errorf("ecdh: wrap engine: Unwrap called out of order (state %d)", e.state)
	}

	if len(wrapped) < 1 {
		e.Release()
		return nil, fmt.Errorf("%w: empty wrapped field", ErrBadMPI)
	}
	declared := int(wrapped[0])
	body := wrapped[1:]
	if declared != len(body) {
		e.Release()
		return nil, fmt.Errorf("%w: declared length %d, actual %d", ErrBadMPI, declared, len(body))
	}
	if declared%8 != 0 || declared < 24 {
		e.Release()
		return nil, fmt.Errorf("%w: wrapped field length %d invalid", ErrBadMPI, declared)
	}

	padded, err := keyUnwrap(e.kek.Bytes(), body)
	e.Release()
	if err != nil {
		return nil, err
	}
	e.state = stateUnwrapped
	return padded, nil
}

// Release zeroizes every secret buffer the engine still owns and
// marks it unusable. Release is idempotent, safe on a nil receiver,
// and runs on every exit path of deriveKEK/Wrap/Unwrap, including
// error returns.
func (e *WrapEngine) Release() {
	if e == nil || e.state == stateReleased {
		return
	}
	if e.secret != nil {
		e.secret.Release()
		e.secret = nil
	}
	if e.kek != nil {
		e.kek.Release()
		e.kek = nil
	}
	e.state = stateReleased
}
