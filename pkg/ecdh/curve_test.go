package ecdh

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookupCurveKnown(t *testing.T) {
	got, ok := LookupCurve(CurveNISTP256.OID)
	require.True(t, ok)
	require.Equal(t, CurveNISTP256, got)
}

func TestLookupCurveUnknown(t *testing.T) {
	_, ok := LookupCurve([]byte{0xDE, 0xAD, 0xBE, 0xEF})
	require.False(t, ok)
}

func TestRegisteredCurvesAreUsableForKekSelection(t *testing.T) {
	for _, c := range knownCurves {
		require.Positive(t, c.QBits)
		require.NotEmpty(t, c.OID)
		_ = DefaultKekParams(c.QBits) // must not panic for any registered curve
	}
}
