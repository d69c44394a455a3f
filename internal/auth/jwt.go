// Package auth handles JWT access token generation and validation.
package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/zututors/zututors-backend/internal/domain"
)

// JWTManager handles JWT access token generation and validation.
type JWTManager struct {
	secret    []byte
	issuer    string
	accessTTL time.Duration
}

// NewJWTManager creates a new JWT manager.
// secret must be at least 32 characters for HS256 security.
func NewJWTManager(secret string, issuer string, accessTTL time.Duration) *JWTManager {
	return &JWTManager{
		secret:    []byte(secret),
		issuer:    issuer,
		accessTTL: accessTTL,
	}
}

// accessClaims extends standard JWT claims with the participant kind.
// Student and tutor ids are independent sequences, so the kind claim is
// what disambiguates the numeric subject.
type accessClaims struct {
	jwt.RegisteredClaims
	Kind string `json:"kind,omitempty"`
}

// GenerateAccessToken creates a signed HS256 JWT with the participant id as
// subject and the participant kind as a custom claim.
func (m *JWTManager) GenerateAccessToken(kind domain.ParticipantKind, id int64) (string, error) {
	if !kind.IsValid() {
		return "", fmt.Errorf("invalid participant kind: %q", kind)
	}
	if id <= 0 {
		return "", fmt.Errorf("invalid participant id: %d", id)
	}

	now := time.Now()
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(id, 10),
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Kind: kind.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// ValidateAccessToken parses and validates a JWT access token.
// Returns the participant kind and id if valid.
func (m *JWTManager) ValidateAccessToken(tokenString string) (domain.ParticipantKind, int64, error) {
	if tokenString == "" {
		return "", 0, fmt.Errorf("token is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &accessClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})

	if err != nil {
		return "", 0, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid {
		return "", 0, fmt.Errorf("invalid token claims")
	}

	if claims.Issuer != m.issuer {
		return "", 0, fmt.Errorf("invalid issuer: expected %s, got %s", m.issuer, claims.Issuer)
	}

	kind := domain.ParticipantKind(claims.Kind)
	if !kind.IsValid() {
		return "", 0, fmt.Errorf("invalid kind claim: %q", claims.Kind)
	}

	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || id <= 0 {
		return "", 0, fmt.Errorf("invalid subject: %q", claims.Subject)
	}

	return kind, id, nil
}
