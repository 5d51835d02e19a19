package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestJWT_Roundtrip(t *testing.T) {
	j := NewJWT("secret")
	u := uuid.New()

	tokenString, err := j.Generate(u, "alice@example.com")
	require.NoError(t, err)

	identity, err := j.Parse(tokenString)
	require.NoError(t, err)
	require.Equal(t, u, identity.UserID)
	require.Equal(t, "alice@example.com", identity.Email)
}

func TestJWT_WrongSecret(t *testing.T) {
	j := NewJWT("secret")
	other := NewJWT("another-secret")

	tokenString, err := j.Generate(uuid.New(), "alice@example.com")
	require.NoError(t, err)

	_, err = other.Parse(tokenString)
	require.Error(t, err)
}

func TestJWT_CorruptedToken(t *testing.T) {
	j := NewJWT("secret")

	tokenString, err := j.Generate(uuid.New(), "alice@example.com")
	require.NoError(t, err)

	_, err = j.Parse(tokenString + "x")
	require.Error(t, err)

	_, err = j.Parse("not.a.token")
	require.Error(t, err)
}

func TestJWT_ExpiredToken(t *testing.T) {
	u := uuid.New()
	now := time.Now()

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now.Add(-8 * 24 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
		},
		UserID: u,
		Email:  "alice@example.com",
	})
	tokenString, err := expired.SignedString([]byte("secret"))
	require.NoError(t, err)

	j := NewJWT("secret")
	_, err = j.Parse(tokenString)
	require.Error(t, err)
}

func TestJWT_WrongSigningMethod(t *testing.T) {
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		UserID: uuid.New(),
	})
	tokenString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	j := NewJWT("secret")
	_, err = j.Parse(tokenString)
	require.Error(t, err)
}
