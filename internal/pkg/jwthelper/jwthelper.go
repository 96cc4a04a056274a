package jwthelper

import (
	"crypto/rsa"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vietanh2810/franchise-api/internal/domain"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrInvalidToken = errors.New("invalid token")
)

type UserClaims struct {
	Email       string  `json:"email"`
	Role        string  `json:"role,omitempty"`
	FranchiseID *string `json:"franchise_id,omitempty"`
	jwt.RegisteredClaims
}

func ParsePublicKey(encoded string) (*rsa.PublicKey, error) {
	pemBytes, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("base64.DecodeString -> %w", err)
	}

	key, err := jwt.ParseRSAPublicKeyFromPEM(pemBytes)
	if err != nil {
		return nil, fmt.Errorf("jwt.ParseRSAPublicKeyFromPEM -> %w", err)
	}

	return key, nil
}

func ParsePrivateKey(encoded string) (*rsa.PrivateKey, error) {
	pemBytes, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("base64.DecodeString -> %w", err)
	}

	key, err := jwt.ParseRSAPrivateKeyFromPEM(pemBytes)
	if err != nil {
		return nil, fmt.Errorf("jwt.ParseRSAPrivateKeyFromPEM -> %w", err)
	}

	return key, nil
}

func GenerateAccessToken(key *rsa.PrivateKey, user domain.User, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := UserClaims{
		Email:       user.Email,
		Role:        user.Role,
		FranchiseID: user.FranchiseID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	signed, err := token.SignedString(key)
	if err != nil {
		return "", fmt.Errorf("token.SignedString -> %w", err)
	}

	return signed, nil
}

// VerifyToken accepts RS256 tokens only. Expired tokens are reported as
// ErrTokenExpired, everything else as ErrInvalidToken.
func VerifyToken(key *rsa.PublicKey, tokenString string) (domain.Claims, error) {
	claims := &UserClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.Claims{}, ErrTokenExpired
		}
		return domain.Claims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.Subject == "" {
		return domain.Claims{}, ErrInvalidToken
	}

	return toDomain(claims), nil
}

func toDomain(c *UserClaims) domain.Claims {
	claims := domain.Claims{
		Subject:     c.Subject,
		Email:       c.Email,
		Role:        c.Role,
		FranchiseID: c.FranchiseID,
	}
	if c.IssuedAt != nil {
		claims.IssuedAt = c.IssuedAt.Time
	}
	if c.ExpiresAt != nil {
		claims.ExpiresAt = c.ExpiresAt.Time
	}

	return claims
}
