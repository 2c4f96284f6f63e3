// Package internalcheck holds source-level policy tests over pkg/ecdh
// and internal/secbuf: TestNoHexFormatting rejects %x/%X format verbs
// in fmt and log calls, and TestNoDirectByteComparison rejects ==/!=
// between byte slices or arrays.
//
// The package has no exported API; it consists only of this doc file
// and its tests.
package internalcheck
