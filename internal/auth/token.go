// Package auth issues and verifies the bearer tokens used by the HTTP API.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/connectcapital/investor-crm/internal/core/domain"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims is the verified identity extracted from a bearer token.
type Claims struct {
	UserID string
	Email  string
	Role   domain.Role
}

// TokenManager signs and parses HS256 JWTs.
type TokenManager struct {
	secret   []byte
	tokenTTL time.Duration
}

func NewTokenManager(secret string, tokenTTL time.Duration) *TokenManager {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &TokenManager{secret: []byte(secret), tokenTTL: tokenTTL}
}

// Generate issues a signed token for the given user.
func (m *TokenManager) Generate(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"role":  string(user.Role),
		"exp":   time.Now().Add(m.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Parse verifies the signature and expiry and returns the embedded claims.
func (m *TokenManager) Parse(token string) (Claims, error) {
	mapClaims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, mapClaims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !tkn.Valid {
		return Claims{}, ErrInvalidToken
	}

	sub, _ := mapClaims["sub"].(string)
	email, _ := mapClaims["email"].(string)
	role, _ := mapClaims["role"].(string)
	return Claims{UserID: sub, Email: email, Role: domain.Role(role)}, nil
}
