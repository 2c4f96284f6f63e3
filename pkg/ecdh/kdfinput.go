package ecdh

import (
	"fmt"

	"golang.org/x/crypto/cryptobyte"
)

// anonymousSender is the fixed 20-ASCII-byte constant RFC 6637 §8
// mandates as part of the KDF's "other info": "Anonymous Sender" plus
// four trailing spaces, not NUL-terminated.
var anonymousSender = []byte("Anonymous Sender    ")

// maxKdfInputLen upper-bounds the scratch buffer BuildKdfInput writes
// into. A conforming curve OID is at most 16 octets, so the total
// (1+16) + 1 + (1+4) + 20 + fingerprint stays well under this.
const maxKdfInputLen = 256

// BuildKdfInput assembles the standardized KDF "other info" octet
// string (§3, invariant I3: deterministic and re-derivable byte for
// byte from its inputs):
//
//	len(oid) || oid || 0x12 || len(kekParams) || kekParams ||
//	"Anonymous Sender    " || fingerprint
//
// fingerprint is expected to be 20 bytes for a V4 key; a caller
// targeting V5/V6 fingerprints must pass the longer value and accept
// that the resulting layout, while still byte-exact per this
// function's contract, differs from the V4 wire format RFC 6637
// defines.
func BuildKdfInput(curveOID []byte, kekParams KekParams, fingerprint []byte) ([]byte, error) {
	if len(curveOID) == 0 {
		return nil, fmt.Errorf("%w: empty curve OID", ErrBadPublicKey)
	}
	if len(curveOID) > 255 {
		return nil, fmt.Errorf("%w: curve OID too long (%d octets)", ErrBadPublicKey, len(curveOID))
	}

	kek := kekParams.Encode()

	var b cryptobyte.Builder
	writeSizeBody(&b, curveOID)
	b.AddUint8(pubKeyAlgoECDH)
	writeSizeBody(&b, kek[:])
	b.AddBytes(anonymousSender)
	b.AddBytes(fingerprint)

	out, err := b.Bytes()
	if err != nil {
		return nil, newCryptoError("build kdf input", err)
	}
	if len(out) > maxKdfInputLen {
		return nil, fmt.Errorf("%w: kdf input %d octets exceeds bound %d", ErrBadPublicKey, len(out), maxKdfInputLen)
	}
	return out, nil
}
