package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/mkozyrev/weekplanner/internal/model"
)

// Claims represents JWT claims carrying the authenticated identity.
type Claims struct {
	jwt.RegisteredClaims
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
}

// JWT implements TokenManager backed by symmetric HMAC.
type JWT struct {
	secretKey string
}

// NewJWT creates a new JWT token manager with the provided secret key.
func NewJWT(secretKey string) model.TokenManager {
	return &JWT{secretKey: secretKey}
}

// tokenTTL is the fixed token lifetime; there is no refresh or revocation,
// a token stays valid until it expires.
const tokenTTL = 7 * 24 * time.Hour

// Generate creates a signed identity token for the user.
func (j *JWT) Generate(userID uuid.UUID, email string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
		UserID: userID,
		Email:  email,
	})

	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Parse validates the token and extracts the identity. Callers get one
// opaque failure for expired, forged and malformed tokens; the wrapped
// error keeps the distinction for logging.
func (j *JWT) Parse(tokenString string) (model.Identity, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return model.Identity{}, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return model.Identity{}, fmt.Errorf("token is invalid")
	}
	if claims.UserID == uuid.Nil {
		return model.Identity{}, fmt.Errorf("token has no subject")
	}
	return model.Identity{UserID: claims.UserID, Email: claims.Email}, nil
}
