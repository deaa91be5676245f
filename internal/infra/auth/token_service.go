// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"roost/config"
	"roost/internal/domain/service"
)

// jwtTokenService is a concrete implementation of the TokenService
// interface. Access tokens are minted by the hosted auth service and
// verified here with the project's shared HS256 secret; the gateway
// never signs tokens of its own.
type jwtTokenService struct {
	secret string // Shared signing secret of the auth project.
}

// NewTokenService is the constructor for jwtTokenService.
func NewTokenService(cfg *config.Config) (service.TokenService, error) {
	if cfg.AuthBackend == nil || cfg.AuthBackend.JWTSecret == "" {
		return nil, errors.New("auth backend jwt secret must be provided")
	}

	return &jwtTokenService{secret: cfg.AuthBackend.JWTSecret}, nil
}

// ParseAccessToken validates the token's signature and expiry and maps
// the claims the gateway uses.
func (s *jwtTokenService) ParseAccessToken(tokenString string) (*service.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, err
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}

	subject, err := mapClaims.GetSubject()
	if err != nil {
		return nil, err
	}
	userID, err := uuid.Parse(subject)
	if err != nil {
		return nil, errors.Join(jwt.ErrTokenInvalidSubject, err)
	}

	claims := &service.Claims{UserID: userID}

	if email, ok := mapClaims["email"].(string); ok {
		claims.Email = email
	}
	if role, ok := mapClaims["role"].(string); ok {
		claims.Role = role
	}
	if exp, err := mapClaims.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp.Time
	}

	return claims, nil
}
