package ecdh

import (
	"bytes"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	curve := elliptic.P256()
	ephemeral, err := ecdsa.GenerateKey(curve, rand.Reader)
	require.NoError(t, err)
	recipient, err := ecdsa.GenerateKey(curve, rand.Reader)
	require.NoError(t, err)

	sx, sy := curve.ScalarMult(recipient.X, recipient.Y, ephemeral.D.Bytes())
	sharedPointMPI := elliptic.Marshal(curve, sx, sy)

	curveOID := CurveNISTP256.OID
	qbits := CurveNISTP256.QBits
	kekParams := DefaultKekParams(qbits)
	fp := bytes.Repeat([]byte{0xCD}, 20)
	paddedSessionKey := append(bytes.Repeat([]byte{0x2A}, 16), bytes.Repeat([]byte{0x08}, 8)...)

	wrapped, err := Encrypt(curveOID, qbits, kekParams, fp, sharedPointMPI, paddedSessionKey)
	require.NoError(t, err)
	require.Len(t, wrapped, 1+len(paddedSessionKey)+8)

	recovered, err := Decrypt(curveOID, qbits, kekParams, fp, sharedPointMPI, wrapped)
	require.NoError(t, err)
	require.Equal(t, paddedSessionKey, recovered)
}

func TestEncryptDecryptMismatchedFingerprintFails(t *testing.T) {
	curve := elliptic.P256()
	ephemeral, err := ecdsa.GenerateKey(curve, rand.Reader)
	require.NoError(t, err)
	recipient, err := ecdsa.GenerateKey(curve, rand.Reader)
	require.NoError(t, err)

	sx, sy := curve.ScalarMult(recipient.X, recipient.Y, ephemeral.D.Bytes())
	sharedPointMPI := elliptic.Marshal(curve, sx, sy)

	kekParams := DefaultKekParams(CurveNISTP256.QBits)
	paddedSessionKey := bytes.Repeat([]byte{0x01}, 16)

	wrapped, err := Encrypt(CurveNISTP256.OID, CurveNISTP256.QBits, kekParams, bytes.Repeat([]byte{0x01}, 20), sharedPointMPI, paddedSessionKey)
	require.NoError(t, err)

	_, err = Decrypt(CurveNISTP256.OID, CurveNISTP256.QBits, kekParams, bytes.Repeat([]byte{0x02}, 20), sharedPointMPI, wrapped)
	require.ErrorIs(t, err, ErrBadKey)
}
