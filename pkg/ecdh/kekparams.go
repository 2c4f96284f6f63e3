package ecdh

import "fmt"

// HashID is the OpenPGP numbering for a KDF hash algorithm.
type HashID byte

// Allowed hash algorithms for the ECDH KDF (RFC 6637 §8).
const (
	HashSHA256 HashID = 8
	HashSHA384 HashID = 9
	HashSHA512 HashID = 10
)

// CipherID is the OpenPGP numbering for a KEK cipher.
type CipherID byte

// Allowed ciphers for the ECDH KEK (RFC 6637 §8).
const (
	CipherAES128 CipherID = 7
	CipherAES192 CipherID = 8
	CipherAES256 CipherID = 9
)

// kekParamsVersion is the only defined value of the leading "version"
// octet inside the encoded blob (KDF+AESWRAP).
const kekParamsVersion = 1

// KekParams binds a curve's strength to a hash/cipher pairing. It is
// the 4-octet blob carried alongside an ECDH public key and hashed
// into the KDF input (§3, invariant I2: always exactly 4 octets,
// leading 03 01).
type KekParams struct {
	Hash   HashID
	Cipher CipherID
}

func (h HashID) keyLen() int {
	switch h {
	case HashSHA256:
		return 32
	case HashSHA384:
		return 48
	case HashSHA512:
		return 64
	default:
		return 0
	}
}

func (h HashID) valid() bool {
	switch h {
	case HashSHA256, HashSHA384, HashSHA512:
		return true
	default:
		return false
	}
}

// KeyLen returns the AES key length in octets for this cipher (16,
// 24, or 32), or 0 if the cipher id is not one of the enumerated set.
func (c CipherID) KeyLen() int {
	switch c {
	case CipherAES128:
		return 16
	case CipherAES192:
		return 24
	case CipherAES256:
		return 32
	default:
		return 0
	}
}

func (c CipherID) valid() bool {
	return c.KeyLen() != 0
}

// kekTableRow is one entry of the default-selection table, §4.1.
type kekTableRow struct {
	qbitsThreshold int
	hash           HashID
	cipher         CipherID
}

// defaultKekTable is read-only, initialized once, and safe to share
// across goroutines. Sorted by ascending qbits threshold.
var defaultKekTable = []kekTableRow{
	{qbitsThreshold: 256, hash: HashSHA256, cipher: CipherAES128},
	{qbitsThreshold: 384, hash: HashSHA384, cipher: CipherAES256},
	{qbitsThreshold: 528, hash: HashSHA512, cipher: CipherAES256}, // 521 rounded to an octet boundary
}

// DefaultKekParams selects the weakest hash/cipher combination whose
// hash strength meets or exceeds a curve of the given bit strength.
// The table is walked front-to-back; the first row whose threshold is
// >= qbits wins. If qbits exceeds every threshold, the last (strongest)
// row is used; this is the §4.1-mandated fallback behavior, equivalent
// to calling DefaultKekParamsWithOptions with DefaultOptions().
func DefaultKekParams(qbits int) KekParams {
	params, _ := DefaultKekParamsWithOptions(qbits, DefaultOptions())
	return params
}

// DefaultKekParamsWithOptions is DefaultKekParams with opts.AllowFallbackKek
// honored: when false, a qbits value exceeding every table threshold is a
// hard error instead of silently selecting the strongest row.
func DefaultKekParamsWithOptions(qbits int, opts Options) (KekParams, error) {
	for _, row := range defaultKekTable {
		if qbits <= row.qbitsThreshold {
			return KekParams{Hash: row.hash, Cipher: row.cipher}, nil
		}
	}
	if !opts.AllowFallbackKek {
		return KekParams{}, fmt.Errorf("%w: qbits %d exceeds every kek table threshold and fallback is disabled", ErrBadPublicKey, qbits)
	}
	last := defaultKekTable[len(defaultKekTable)-1]
	return KekParams{Hash: last.hash, Cipher: last.cipher}, nil
}

// Encode serializes k to its canonical 4-octet wire form:
// 03 01 hash_id cipher_id.
func (k KekParams) Encode() [4]byte {
	return [4]byte{3, kekParamsVersion, byte(k.Hash), byte(k.Cipher)}
}

// DecodeKekParams parses a 4-octet KEK-parameter blob, rejecting
// anything that does not match 03 01 <hash> <cipher> with both ids in
// the enumerated sets.
func DecodeKekParams(b []byte) (KekParams, error) {
	if len(b) != 4 {
		return KekParams{}, fmt.Errorf("%w: kek params length %d, want 4", ErrBadPublicKey, len(b))
	}
	if b[0] != 3 {
		return KekParams{}, fmt.Errorf("%w: kek params leading octet %#x, want 0x03", ErrBadPublicKey, b[0])
	}
	if b[1] != kekParamsVersion {
		return KekParams{}, fmt.Errorf("%w: kek params version %d, want %d", ErrBadPublicKey, b[1], kekParamsVersion)
	}
	hash := HashID(b[2])
	if !hash.valid() {
		return KekParams{}, fmt.Errorf("%w: unsupported hash id %d", ErrBadPublicKey, b[2])
	}
	cipher := CipherID(b[3])
	if !cipher.valid() {
		return KekParams{}, fmt.Errorf("%w: unsupported cipher id %d", ErrBadPublicKey, b[3])
	}
	return KekParams{Hash: hash, Cipher: cipher}, nil
}
