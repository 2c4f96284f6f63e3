// Package ecdh implements the OpenPGP ECDH key-wrapping core described in
// RFC 6637: turning an already-computed elliptic-curve Diffie-Hellman
// shared point into a wrapped symmetric session key, and back.
//
// The package does not perform elliptic-curve scalar multiplication,
// generate ephemeral scalars, or parse OpenPGP packets; those are the
// caller's responsibility (see the package-level Encrypt/Decrypt doc
// comments for the exact contract). What it does own, byte-exact, is:
// KEK-parameter selection and encoding, shared-secret normalization,
// the standardized KDF "other info" layout, the single-block
// concatenation KDF, and RFC 3394 AES Key Wrap/Unwrap of the padded
// session key.
//
// Every operation here is synchronous, CPU-bound, and safe to call
// concurrently from multiple goroutines on disjoint inputs: there is
// no shared mutable state beyond the read-only default-KEK-params
// table.
package ecdh
