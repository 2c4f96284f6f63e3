package ecdh

import "bytes"

// CurveParams is the immutable curve identity the core needs: the
// curve's OID octet string (as it appears, length-prefixed, in the
// KDF input) and its strength in bits. qbits drives both SharedSecret
// normalization (§4.2) and default KEK-parameter selection (§4.1).
//
// CurveParams does not perform any EC arithmetic; scalar multiplication
// and point encoding are external collaborators (§6).
type CurveParams struct {
	OID   []byte
	QBits int
}

// Named curve OIDs RFC 6637 (and the Curve25519 addendum, RFC 9580)
// define for OpenPGP ECDH. This registry is a convenience for callers
// that only know the curve by name; the core's own operations accept
// the raw OID and qbits directly and never consult this table.
var (
	CurveNISTP256 = CurveParams{OID: []byte{0x2A, 0x86, 0x48, 0xCE, 0x3D, 0x03, 0x01, 0x07}, QBits: 256}
	CurveNISTP384 = CurveParams{OID: []byte{0x2B, 0x81, 0x04, 0x00, 0x22}, QBits: 384}
	CurveNISTP521 = CurveParams{OID: []byte{0x2B, 0x81, 0x04, 0x00, 0x23}, QBits: 521}
	CurveX25519   = CurveParams{OID: []byte{0x2B, 0x06, 0x01, 0x04, 0x01, 0x97, 0x55, 0x01, 0x05, 0x01}, QBits: 256}
)

var knownCurves = []CurveParams{CurveNISTP256, CurveNISTP384, CurveNISTP521, CurveX25519}

// LookupCurve finds the registered CurveParams matching oid, or
// reports ok=false if oid is not one of the curves this registry
// knows about. An unknown OID is not an error by itself: a caller that
// already knows qbits can drive the rest of the pipeline without it.
func LookupCurve(oid []byte) (CurveParams, bool) {
	for _, c := range knownCurves {
		if bytes.Equal(c.OID, oid) {
			return c, true
		}
	}
	return CurveParams{}, false
}
