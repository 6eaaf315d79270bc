package jwtPkg

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RequiresSecret(t *testing.T) {
	_, err := New("", time.Hour)
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestSignVerify_RoundTripKeepsClaims(t *testing.T) {
	m, err := New("secret", time.Hour)
	require.NoError(t, err)

	token, expiresAt, err := m.Sign(map[string]interface{}{"email": "a@b.c", "role": "writer"})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 2*time.Second)

	claims, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "a@b.c", claims["email"])
	assert.Equal(t, "writer", claims["role"])
	assert.NotEmpty(t, TokenID(claims))

	exp, err := ExpiresAt(claims)
	require.NoError(t, err)
	assert.Equal(t, expiresAt.Unix(), exp.Unix())
}

func TestSign_ServerClaimsOverrideCaller(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	m, err := NewWithClock("secret", time.Hour, func() time.Time { return now })
	require.NoError(t, err)

	token, _, err := m.Sign(map[string]interface{}{"exp": float64(1), "jti": "mine"})
	require.NoError(t, err)

	claims, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, float64(now.Add(time.Hour).Unix()), claims["exp"])
	assert.NotEqual(t, "mine", TokenID(claims))
}

func TestSign_EmptyClaims(t *testing.T) {
	m, err := New("secret", time.Hour)
	require.NoError(t, err)

	token, _, err := m.Sign(nil)
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.NoError(t, err)
}

func TestVerify_Expired(t *testing.T) {
	now := time.Now()
	m, err := NewWithClock("secret", time.Minute, func() time.Time { return now })
	require.NoError(t, err)

	token, _, err := m.Sign(map[string]interface{}{"email": "a@b.c"})
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)

	_, err = m.Verify(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, jwt.ErrTokenExpired))
}

func TestVerify_WrongSecret(t *testing.T) {
	issuer, err := New("secret", time.Hour)
	require.NoError(t, err)
	other, err := New("another", time.Hour)
	require.NoError(t, err)

	token, _, err := issuer.Sign(map[string]interface{}{"email": "a@b.c"})
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestVerify_Tampered(t *testing.T) {
	m, err := New("secret", time.Hour)
	require.NoError(t, err)

	token, _, err := m.Sign(map[string]interface{}{"email": "a@b.c"})
	require.NoError(t, err)

	_, err = m.Verify(token[:len(token)-2] + "xx")
	assert.Error(t, err)

	_, err = m.Verify("garbage")
	assert.Error(t, err)

	_, err = m.Verify("")
	assert.ErrorIs(t, err, ErrEmptyToken)
}

func TestVerify_RejectsNoneAlgorithm(t *testing.T) {
	m, err := New("secret", time.Hour)
	require.NoError(t, err)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.Error(t, err)
}

func TestVerify_RequiresExpiration(t *testing.T) {
	m, err := New("secret", time.Hour)
	require.NoError(t, err)

	forever := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"email": "a@b.c"})
	token, err := forever.SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.Error(t, err)
}
