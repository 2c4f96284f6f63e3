package ecdh

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultKekParamsSelection(t *testing.T) {
	cases := []struct {
		qbits  int
		hash   HashID
		cipher CipherID
	}{
		{256, HashSHA256, CipherAES128},
		{384, HashSHA384, CipherAES256},
		{521, HashSHA512, CipherAES256},
		{1024, HashSHA512, CipherAES256}, // falls through to the last row
	}
	for _, c := range cases {
		got := DefaultKekParams(c.qbits)
		require.Equal(t, c.hash, got.Hash, "qbits=%d", c.qbits)
		require.Equal(t, c.cipher, got.Cipher, "qbits=%d", c.qbits)
	}
}

func TestDefaultKekParamsMonotonic(t *testing.T) {
	prev := DefaultKekParams(1)
	for qbits := 2; qbits <= 600; qbits++ {
		cur := DefaultKekParams(qbits)
		require.GreaterOrEqual(t, cur.Hash.keyLen(), prev.Hash.keyLen(), "qbits=%d", qbits)
		prev = cur
	}
}

func TestKekParamsEncodeDecodeRoundTrip(t *testing.T) {
	for _, h := range []HashID{HashSHA256, HashSHA384, HashSHA512} {
		for _, c := range []CipherID{CipherAES128, CipherAES192, CipherAES256} {
			k := KekParams{Hash: h, Cipher: c}
			enc := k.Encode()
			require.Equal(t, byte(3), enc[0])
			require.Equal(t, byte(1), enc[1])

			decoded, err := DecodeKekParams(enc[:])
			require.NoError(t, err)
			require.Equal(t, k, decoded)
		}
	}
}

func TestDecodeKekParamsRejectsWrongLeadingCount(t *testing.T) {
	_, err := DecodeKekParams([]byte{0x04, 0x01, 0x08, 0x07})
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrBadPublicKey))
}

func TestDecodeKekParamsRejectsBadLength(t *testing.T) {
	_, err := DecodeKekParams([]byte{0x03, 0x01, 0x08})
	require.ErrorIs(t, err, ErrBadPublicKey)
}

func TestDecodeKekParamsRejectsBadVersion(t *testing.T) {
	_, err := DecodeKekParams([]byte{0x03, 0x02, 0x08, 0x07})
	require.ErrorIs(t, err, ErrBadPublicKey)
}

func TestDecodeKekParamsRejectsUnknownHashAndCipher(t *testing.T) {
	_, err := DecodeKekParams([]byte{0x03, 0x01, 0xFF, 0x07})
	require.ErrorIs(t, err, ErrBadPublicKey)

	_, err = DecodeKekParams([]byte{0x03, 0x01, 0x08, 0xFF})
	require.ErrorIs(t, err, ErrBadPublicKey)
}

func TestDefaultKekParamsWithOptionsFallbackAllowed(t *testing.T) {
	got, err := DefaultKekParamsWithOptions(1024, DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, HashSHA512, got.Hash)
	require.Equal(t, CipherAES256, got.Cipher)
}

func TestDefaultKekParamsWithOptionsFallbackDisabled(t *testing.T) {
	_, err := DefaultKekParamsWithOptions(1024, Options{AllowFallbackKek: false})
	require.ErrorIs(t, err, ErrBadPublicKey)

	got, err := DefaultKekParamsWithOptions(256, Options{AllowFallbackKek: false})
	require.NoError(t, err)
	require.Equal(t, HashSHA256, got.Hash)
}
