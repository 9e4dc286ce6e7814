package common

import (
	"crypto/rand"
	"encoding/hex"
)

// MakeRandHexString returns size random bytes from crypto/rand encoded as
// hex, so the result is 2*size characters long.
func MakeRandHexString(size int) (string, error) {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// WipeByteArray zeroes b in place. Used for passwords and derived secrets
// once they are no longer needed. A nil slice is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
