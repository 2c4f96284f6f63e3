package ecdh

import (
	"fmt"

	"golang.org/x/crypto/cryptobyte"
)

// pubKeyAlgoECDH is the OpenPGP public-key algorithm id for ECDH
// (RFC 6637 §5), the fixed byte KdfInput always carries.
const pubKeyAlgoECDH = 0x12

// writeSizeBody appends value to b as one length octet followed by
// value's raw bytes: the "size-body" framing §4.3 uses for every
// variable-length field of the KDF input (curve OID, KEK params).
// cryptobyte is the idiomatic choice for exactly this one-octet,
// non-ASN.1 length-prefixed framing.
func writeSizeBody(b *cryptobyte.Builder, value []byte) {
	b.AddUint8LengthPrefixed(func(child *cryptobyte.Builder) {
		child.AddBytes(value)
	})
}

// readSizeBody consumes a one-octet length followed by that many
// bytes from s, returning the value. It reports an error wrapping
// ErrBadMPI if s is shorter than the declared length.
func readSizeBody(s *cryptobyte.String) ([]byte, error) {
	var value cryptobyte.String
	if !s.ReadUint8LengthPrefixed(&value) {
		return nil, fmt.Errorf("%w: truncated size-prefixed field", ErrBadMPI)
	}
	return []byte(value), nil
}

// ECDHPublicKeyFields is the parsed algorithm-specific portion of an
// OpenPGP ECDH public key (RFC 6637 §9): a curve OID, the EC point as
// a big-endian MPI (a two-octet bit length followed by the point octets),
// and the 4-octet KEK-parameter blob. Parsing this is the packet
// layer's usual first step before calling BuildKdfInput.
type ECDHPublicKeyFields struct {
	CurveOID []byte
	Point    []byte
	KekParams KekParams
}

// ParseECDHPublicKeyFields decodes the algorithm-specific fields of an
// OpenPGP ECDH public key from b: a size-body curve OID, a 2-octet
// bit-length-prefixed MPI point, and a size-body KEK-parameter blob.
// It does not validate that CurveOID names a known curve or that
// Point's length matches the curve; callers needing that check should
// pass CurveOID through LookupCurve.
func ParseECDHPublicKeyFields(b []byte) (ECDHPublicKeyFields, error) {
	s := cryptobyte.String(b)

	oid, err := readSizeBody(&s)
	if err != nil {
		return ECDHPublicKeyFields{}, err
	}

	var bitLen uint16
	if !s.ReadUint16(&bitLen) {
		return ECDHPublicKeyFields{}, fmt.Errorf("%w: truncated ec point bit length", ErrBadMPI)
	}
	pointLen := (int(bitLen) + 7) / 8
	point := make([]byte, pointLen)
	if !s.ReadBytes(&point, pointLen) {
		return ECDHPublicKeyFields{}, fmt.Errorf("%w: truncated ec point (want %d octets)", ErrBadMPI, pointLen)
	}

	kekBlob, err := readSizeBody(&s)
	if err != nil {
		return ECDHPublicKeyFields{}, err
	}
	kekParams, err := DecodeKekParams(kekBlob)
	if err != nil {
		return ECDHPublicKeyFields{}, err
	}

	if !s.Empty() {
		return ECDHPublicKeyFields{}, fmt.Errorf("%w: %d trailing octets after kek params", ErrBadMPI, len(s))
	}

	return ECDHPublicKeyFields{CurveOID: oid, Point: point, KekParams: kekParams}, nil
}
