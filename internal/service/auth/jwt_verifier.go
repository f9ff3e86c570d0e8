package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/deckforge/deckforge-api/internal/config"
	"github.com/deckforge/deckforge-api/internal/platform/logger"
)

// jwtVerifier is a TokenVerifier using HMAC-SHA signing with audience and
// issuer checks pinned to the configured identity provider.
type jwtVerifier struct {
	signingKey []byte
	audience   string
	issuer     string
	timeFunc   func() time.Time // Injectable for testing
	clockSkew  time.Duration    // Allowed drift between issuer and gateway clocks
}

var _ TokenVerifier = (*jwtVerifier)(nil)

// NewJWTVerifier creates a TokenVerifier from the auth configuration.
func NewJWTVerifier(cfg config.AuthConfig) (TokenVerifier, error) {
	if len(cfg.JWTSecret) < 32 {
		return nil, fmt.Errorf("jwt secret must be at least 32 characters")
	}
	if cfg.Audience == "" || cfg.Issuer == "" {
		return nil, fmt.Errorf("audience and issuer are required")
	}

	return &jwtVerifier{
		signingKey: []byte(cfg.JWTSecret),
		audience:   cfg.Audience,
		issuer:     cfg.Issuer,
		timeFunc:   time.Now,
		clockSkew:  2 * time.Minute,
	}, nil
}

// Verify validates the token's signature, audience, issuer, and validity
// window, and returns the subject claim.
func (v *jwtVerifier) Verify(ctx context.Context, tokenString string) (string, error) {
	log := logger.FromContext(ctx)
	now := v.timeFunc()

	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithAudience(v.audience),
		jwt.WithIssuer(v.issuer),
		jwt.WithLeeway(v.clockSkew),
		jwt.WithTimeFunc(func() time.Time { return now }),
	}

	token, err := jwt.ParseWithClaims(
		tokenString,
		&jwt.RegisteredClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return v.signingKey, nil
		},
		parserOpts...)

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired), errors.Is(err, jwt.ErrTokenNotValidYet):
			log.Debug("token validation failed: outside validity window", "error", err)
			return "", ErrExpiredToken
		default:
			log.Debug("token validation failed", "error", err)
			return "", ErrInvalidToken
		}
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return "", ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", ErrMissingSubject
	}
	return claims.Subject, nil
}
