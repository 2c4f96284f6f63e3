package ecdh

// Encrypt wires SharedSecret, KdfInput, and WrapEngine together in the
// order §2's data-flow diagram describes, for callers that do not need
// the individual components separately.
//
// sharedPointMPI is the already-computed ECDH shared point (the
// external EC scalar-multiply collaborator's output, §6); qbits is
// the recipient curve's bit strength; curveOID and recipientFP are the
// recipient's curve OID and V4 fingerprint; paddedSessionKey is the
// session key with caller-applied padding to an 8-octet boundary
// (length a multiple of 8, at least 16). Encrypt does not generate the
// ephemeral keypair or perform scalar multiplication — both are
// external collaborators the packet layer supplies alongside
// sharedPointMPI.
//
// The return value is the wrapped-key field [len] || AESWRAP(KEK,
// paddedSessionKey); pairing it with the ephemeral public point into
// an OpenPGP ECDH-encrypted-session-key packet is the packet layer's
// job (§6, out of scope).
func Encrypt(curveOID []byte, qbits int, kekParams KekParams, recipientFP, sharedPointMPI, paddedSessionKey []byte) ([]byte, error) {
	secret, err := ExtractSharedX(sharedPointMPI, qbits)
	if err != nil {
		return nil, err
	}

	input, err := BuildKdfInput(curveOID, kekParams, recipientFP)
	if err != nil {
		secret.Release()
		return nil, err
	}

	engine, err := NewWrapEngine(kekParams, secret, input)
	if err != nil {
		secret.Release()
		return nil, err
	}
	return engine.Wrap(paddedSessionKey)
}

// Decrypt reverses Encrypt's WrapEngine step: given the same
// (curveOID, qbits, kekParams, recipientFP, sharedPointMPI) a
// conforming recipient would derive, it AES Key Unwraps wrappedMPI and
// returns the still-padded session key. Stripping the padding is the
// caller's responsibility.
func Decrypt(curveOID []byte, qbits int, kekParams KekParams, recipientFP, sharedPointMPI, wrappedMPI []byte) ([]byte, error) {
	secret, err := ExtractSharedX(sharedPointMPI, qbits)
	if err != nil {
		return nil, err
	}

	input, err := BuildKdfInput(curveOID, kekParams, recipientFP)
	if err != nil {
		secret.Release()
		return nil, err
	}

	engine, err := NewWrapEngine(kekParams, secret, input)
	if err != nil {
		secret.Release()
		return nil, err
	}
	return engine.Unwrap(wrappedMPI)
}
