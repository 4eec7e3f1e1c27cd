package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// TokenUser is the only user data carried in a session token.
type TokenUser struct {
	ID string `json:"id"`
}

// Claims mirrors the {"user":{"id":...}} payload issued by earlier versions
// of the service, so tokens minted there keep verifying.
type Claims struct {
	User TokenUser `json:"user"`
	jwt.RegisteredClaims
}

func (c *Claims) UserID() string {
	return c.User.ID
}

type JWTManager struct {
	secretKey     string
	tokenDuration time.Duration
}

// NewJWTManager signs with HS256. A zero tokenDuration issues tokens without
// an exp claim; they stay valid until the secret changes.
func NewJWTManager(secretKey string, tokenDuration time.Duration) *JWTManager {
	return &JWTManager{
		secretKey:     secretKey,
		tokenDuration: tokenDuration,
	}
}

// GenerateToken returns the signed token and its expiry, which is the zero
// time when expiry is disabled.
func (m *JWTManager) GenerateToken(userID string) (string, time.Time, error) {
	if userID == "" {
		return "", time.Time{}, errors.New("cannot sign token for empty user id")
	}

	now := time.Now()
	claims := Claims{
		User: TokenUser{ID: userID},
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(now),
		},
	}

	var expiresAt time.Time
	if m.tokenDuration != 0 {
		expiresAt = now.Add(m.tokenDuration)
		claims.ExpiresAt = jwt.NewNumericDate(expiresAt)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(m.secretKey))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, expiresAt, nil
}

func (m *JWTManager) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return []byte(m.secretKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if !token.Valid || claims.User.ID == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
