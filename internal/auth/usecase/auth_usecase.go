package usecase

import (
	"context"
	"strings"

	"staffdir-backend/internal/auth/domain"
	"staffdir-backend/internal/auth/dto"
	"staffdir-backend/internal/auth/repository"
	"staffdir-backend/internal/auth/token"
)

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo repository.UserRepository
	issuer   *token.Issuer
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, issuer *token.Issuer) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		issuer:   issuer,
	}
}

func (u *authUsecase) Signup(ctx context.Context, req *dto.SignupRequest) (*domain.User, error) {
	if req.Email == "" || req.Username == "" || req.Password == "" {
		return nil, domain.ErrMissingFields
	}

	hashedPassword, err := repository.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:    strings.ToLower(req.Email),
		Username: req.Username,
		Password: hashedPassword,
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenPair, error) {
	user, err := u.userRepo.FindByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		return nil, err
	}

	if user == nil {
		return nil, domain.ErrInvalidEmail
	}

	if !repository.CheckPasswordHash(req.Password, user.Password) {
		return nil, domain.ErrInvalidPassword
	}

	accessToken, refreshToken, err := u.issuer.GeneratePair(user.ID.Hex(), user.Email)
	if err != nil {
		return nil, err
	}

	return &dto.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (u *authUsecase) RefreshToken(refreshToken string) (string, error) {
	if refreshToken == "" {
		return "", domain.ErrMissingToken
	}

	claims, err := u.issuer.VerifyRefreshToken(refreshToken)
	if err != nil {
		return "", err
	}

	// Only a new access token is issued; refresh tokens are stateless
	// and reusable, there is no rotation or revocation list.
	return u.issuer.GenerateAccessToken(claims.UserID, claims.Email)
}

func (u *authUsecase) Authenticate(tokenString string) (*token.Claims, error) {
	return u.issuer.VerifyAccessToken(tokenString)
}
