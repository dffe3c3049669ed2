package token

import (
	"errors"
	"time"

	"staffdir-backend/internal/auth/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims carried by both access and refresh tokens. Refresh tokens
// additionally embed a unique TokenID so two tokens issued within the
// same second still differ.
type Claims struct {
	jwt.RegisteredClaims
	UserID  string `json:"user_id"`
	Email   string `json:"email"`
	TokenID string `json:"token_id,omitempty"`
}

// Issuer signs and verifies access and refresh tokens. The two token
// kinds use distinct secrets and distinct expiries; a token signed with
// one secret never verifies against the other.
type Issuer struct {
	accessSecret  []byte
	refreshSecret []byte
	accessExpiry  time.Duration
	refreshExpiry time.Duration
}

// NewIssuer returns an Issuer, or an error if either secret is empty.
// There is deliberately no fallback secret: a misconfigured process
// must fail at startup, not sign tokens with a known value.
func NewIssuer(accessSecret, refreshSecret string, accessExpiry, refreshExpiry time.Duration) (*Issuer, error) {
	if accessSecret == "" {
		return nil, errors.New("access token secret is not configured")
	}
	if refreshSecret == "" {
		return nil, errors.New("refresh token secret is not configured")
	}
	return &Issuer{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessExpiry:  accessExpiry,
		refreshExpiry: refreshExpiry,
	}, nil
}

func (i *Issuer) GenerateAccessToken(userID, email string) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.accessExpiry)),
		},
		UserID: userID,
		Email:  email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.accessSecret)
}

func (i *Issuer) GenerateRefreshToken(userID, email string) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.refreshExpiry)),
		},
		UserID:  userID,
		Email:   email,
		TokenID: uuid.New().String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.refreshSecret)
}

// GeneratePair issues the access+refresh pair returned by login.
func (i *Issuer) GeneratePair(userID, email string) (accessToken, refreshToken string, err error) {
	accessToken, err = i.GenerateAccessToken(userID, email)
	if err != nil {
		return "", "", err
	}
	refreshToken, err = i.GenerateRefreshToken(userID, email)
	if err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}

// VerifyAccessToken validates signature and expiry against the access
// secret and returns the decoded claims.
func (i *Issuer) VerifyAccessToken(tokenString string) (*Claims, error) {
	return verify(tokenString, i.accessSecret)
}

// VerifyRefreshToken validates signature and expiry against the refresh
// secret and returns the decoded claims.
func (i *Issuer) VerifyRefreshToken(tokenString string) (*Claims, error) {
	return verify(tokenString, i.refreshSecret)
}

func verify(tokenString string, secret []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, domain.ErrInvalidToken
	}

	return claims, nil
}
