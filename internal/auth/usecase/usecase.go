package usecase

import (
	"context"

	"staffdir-backend/internal/auth/domain"
	"staffdir-backend/internal/auth/dto"
	"staffdir-backend/internal/auth/token"
)

// AuthUsecase defines the interface for auth business logic
type AuthUsecase interface {
	// Signup creates a new account. No tokens are issued at signup.
	Signup(ctx context.Context, req *dto.SignupRequest) (*domain.User, error)

	// Login verifies credentials and issues an access+refresh pair.
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenPair, error)

	// RefreshToken exchanges a valid refresh token for a new access
	// token. The refresh token itself stays valid until its own expiry.
	RefreshToken(refreshToken string) (string, error)

	// Authenticate verifies an access token and returns its claims.
	Authenticate(tokenString string) (*token.Claims, error)
}
