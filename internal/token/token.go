package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// Issuer and Audience are fixed claim values shared by issue and verify.
	Issuer   = "localhost"
	Audience = "localhost"

	// TTL is the token lifetime; expiry is the only invalidation mechanism.
	TTL = 3600 * time.Second
)

// ErrInvalidToken covers every verification failure. The specific cause
// (signature, expiry, claim mismatch, malformed payload) is deliberately not
// exposed to callers so it cannot leak to clients.
var ErrInvalidToken = errors.New("token inválido ou expirado")

// Claims embeds the registered claim set plus the subject's identity.
type Claims struct {
	UserID uint64 `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Service issues and verifies HS256-signed identity tokens with a
// process-wide symmetric secret.
type Service struct {
	secret []byte
	ttl    time.Duration
}

func NewService(secret string) (*Service, error) {
	if secret == "" {
		return nil, errors.New("JWT_SECRET não configurado")
	}
	return &Service{secret: []byte(secret), ttl: TTL}, nil
}

func (s *Service) Issue(userID uint64, email string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			Audience:  jwt.ClaimStrings{Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (s *Service) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(Issuer),
		jwt.WithAudience(Audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
