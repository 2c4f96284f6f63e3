//go:build !debugtrace

package ecdh

// traceFrame is a no-op in the default (hardened) build; see
// trace_debugtrace.go.
func traceFrame(label string, b []byte) {}
