package common

import (
	"encoding/hex"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeRandHexString(t *testing.T) {
	s, err := MakeRandHexString(16)
	require.NoError(t, err)
	assert.Len(t, s, 32)

	_, err = hex.DecodeString(s)
	assert.NoError(t, err, "result must be valid hex")

	other, err := MakeRandHexString(16)
	require.NoError(t, err)
	assert.NotEqual(t, s, other)
}

func TestMakeRandHexString_ZeroSize(t *testing.T) {
	s, err := MakeRandHexString(0)
	require.NoError(t, err)
	assert.Empty(t, s)
}

func TestWipeByteArray(t *testing.T) {
	buf := []byte("hunter2")
	WipeByteArray(buf)
	assert.Equal(t, make([]byte, 7), buf)

	assert.NotPanics(t, func() { WipeByteArray(nil) })
}

func TestProtocolErrors_AreDistinct(t *testing.T) {
	all := []error{
		ErrUnknownIdentity, ErrUnknownChallenge, ErrProofRejected,
		ErrMalformedInput, ErrIdentityExists, ErrInternalInconsistency,
	}
	for i, a := range all {
		wrapped := fmt.Errorf("op: %w", a)
		for j, b := range all {
			assert.Equal(t, i == j, errors.Is(wrapped, b), "%v vs %v", a, b)
		}
	}
}
