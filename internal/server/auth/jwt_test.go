package auth

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/zkauth/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse_Success(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")

	tok, err := GenerateToken("alice", "tok-1", secret, time.Hour)
	require.NoError(t, err)

	identity, err := GetIdentityFromToken(tok, secret)
	require.NoError(t, err)
	assert.Equal(t, "alice", identity)
}

func TestGenerateToken_Claims(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken("alice", "tok-1", []byte("k"), time.Hour)
	require.NoError(t, err)

	claims := &Claims{}
	_, _, err = jwt.NewParser().ParseUnverified(tok, claims)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, "tok-1", claims.ID)
	assert.Equal(t, "zkauth", claims.Issuer)
}

func TestGetIdentityFromToken_Expired(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	tok, err := GenerateToken("u1", "t", secret, -1*time.Second)
	require.NoError(t, err)

	_, err = GetIdentityFromToken(tok, secret)
	assert.ErrorIs(t, err, common.ErrTokenExpired)
}

func TestGetIdentityFromToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken("u2", "t", []byte("right-secret"), time.Hour)
	require.NoError(t, err)

	_, err = GetIdentityFromToken(tok, []byte("wrong-secret"))
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestGetIdentityFromToken_MalformedString(t *testing.T) {
	t.Parallel()

	_, err := GetIdentityFromToken("not.a.jwt", []byte("k"))
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}
