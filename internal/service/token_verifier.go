package service

import (
	"context"
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/guttosm/cart-pricing-service/internal/domain/dto"
)

var (
	// ErrInvalidToken is returned when a token is malformed, expired or badly signed.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrMissingSubject is returned when a valid token carries no customer id.
	ErrMissingSubject = errors.New("token has no customer id")
)

// TokenClaims is the JWT payload: the storefront claims plus the registered ones.
type TokenClaims struct {
	dto.Claims
	jwt.RegisteredClaims
}

// TokenVerifier verifies bearer tokens issued by the storefront backend.
type TokenVerifier interface {
	Verify(ctx context.Context, tokenString string) (*dto.Claims, error)
}

// JWTVerifier verifies HS256 tokens with a shared secret.
type JWTVerifier struct {
	secretKey []byte
	parser    *jwt.Parser
}

// NewTokenVerifier creates a verifier for tokens signed with secretKey.
func NewTokenVerifier(secretKey string) *JWTVerifier {
	return &JWTVerifier{
		secretKey: []byte(secretKey),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}
}

// Verify parses tokenString and returns its claims.
func (v *JWTVerifier) Verify(ctx context.Context, tokenString string) (*dto.Claims, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	token, err := v.parser.ParseWithClaims(tokenString, &TokenClaims{}, func(*jwt.Token) (interface{}, error) {
		return v.secretKey, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.CustomerID == "" {
		claims.CustomerID = claims.Subject
	}
	if claims.CustomerID == "" {
		return nil, ErrMissingSubject
	}

	out := claims.Claims
	return &out, nil
}
