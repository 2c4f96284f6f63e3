package ecdh

import (
	"crypto/aes"
	"crypto/subtle"
	"encoding/binary"
	"fmt"
)

// rfc3394IV is the fixed 64-bit initial value RFC 3394 §2.2.3.1
// defines for AES Key Wrap without a key label.
var rfc3394IV = [8]byte{0xA6, 0xA6, 0xA6, 0xA6, 0xA6, 0xA6, 0xA6, 0xA6}

// keyWrap implements RFC 3394 AES Key Wrap. plaintext's length must be
// a multiple of 8 octets and at least 16. The output is len(plaintext)+8
// octets: the integrity-checked IV followed by the wrapped blocks.
//
// No suitable third-party RFC 3394 implementation was found among the
// retrieved examples (google/tink/go, the nearest candidate, covers
// AEAD but not RFC 3394 key wrap); this builds directly on
// crypto/aes/crypto/cipher the way the reference OpenPGP packet layer
// builds its other primitives on the standard library.
func keyWrap(kek, plaintext []byte) ([]byte, error) {
	n := len(plaintext) / 8
	if n < 2 || len(plaintext)%8 != 0 {
		return nil, fmt.Errorf("%w: key wrap plaintext length %d is not a multiple of 8 >= 16", ErrBadMPI, len(plaintext))
	}

	block, err := aes.NewCipher(kek)
	if err != nil {
		return nil, newCryptoError("aes key wrap: new cipher", err)
	}

	r := make([][8]byte, n)
	for i := 0; i < n; i++ {
		copy(r[i][:], plaintext[i*8:i*8+8])
	}

	var a [8]byte
	copy(a[:], rfc3394IV[:])

	var buf [16]byte
	for j := 0; j <= 5; j++ {
		for i := 1; i <= n; i++ {
			copy(buf[:8], a[:])
			copy(buf[8:], r[i-1][:])
			block.Encrypt(buf[:], buf[:])

			t := uint64(n*j + i)
			var tb [8]byte
			binary.BigEndian.PutUint64(tb[:], t)
			for k := range a {
				a[k] = buf[k] ^ tb[k]
			}
			copy(r[i-1][:], buf[8:])
		}
	}

	out := make([]byte, 8+len(plaintext))
	copy(out[:8], a[:])
	for i := 0; i < n; i++ {
		copy(out[8+i*8:8+i*8+8], r[i][:])
	}
	return out, nil
}

// keyUnwrap implements RFC 3394 AES Key Unwrap. ciphertext's length
// must be a multiple of 8 octets and at least 24 (a wrapped 16-octet
// key is the smallest valid input). The integrity check is performed
// in constant time; failure returns ErrBadKey without distinguishing
// which block diverged, so a wrong KEK and a tampered ciphertext are
// indistinguishable to the caller.
func keyUnwrap(kek, ciphertext []byte) ([]byte, error) {
	if len(ciphertext) < 24 || len(ciphertext)%8 != 0 {
		return nil, fmt.Errorf("%w: key unwrap input length %d invalid", ErrBadMPI, len(ciphertext))
	}
	n := len(ciphertext)/8 - 1

	block, err := aes.NewCipher(kek)
	if err != nil {
		return nil, newCryptoError("aes key unwrap: new cipher", err)
	}

	var a [8]byte
	copy(a[:], ciphertext[:8])

	r := make([][8]byte, n)
	for i := 0; i < n; i++ {
		copy(r[i][:], ciphertext[8+i*8:8+i*8+8])
	}

	var buf [16]byte
	for j := 5; j >= 0; j-- {
		for i := n; i >= 1; i-- {
			t := uint64(n*j + i)
			var tb [8]byte
			binary.BigEndian.PutUint64(tb[:], t)
			var xored [8]byte
			for k := range xored {
				xored[k] = a[k] ^ tb[k]
			}

			copy(buf[:8], xored[:])
			copy(buf[8:], r[i-1][:])
			block.Decrypt(buf[:], buf[:])

			copy(a[:], buf[:8])
			copy(r[i-1][:], buf[8:])
		}
	}

	if subtle.ConstantTimeCompare(a[:], rfc3394IV[:]) != 1 {
		return nil, ErrBadKey
	}

	out := make([]byte, n*8)
	for i := 0; i < n; i++ {
		copy(out[i*8:i*8+8], r[i][:])
	}
	return out, nil
}
