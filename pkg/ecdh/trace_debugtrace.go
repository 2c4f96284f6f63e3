//go:build debugtrace

package ecdh

import (
	"context"
	"encoding/hex"

	"github.com/openpgp-go/ecdh-core/pkg/ecdh/logging"
)

var traceLogger = logging.New(nil)

// traceFrame logs non-secret wire framing (KDF input, wrapped-key
// length) as hex. It must never be called with key material — see the
// package doc comment. Only compiled in with the "debugtrace" build
// tag; absent from hardened builds by default.
func traceFrame(label string, b []byte) {
	traceLogger.Debug(context.Background(), "ecdh frame", "label", label, "hex", hex.EncodeToString(b))
}
