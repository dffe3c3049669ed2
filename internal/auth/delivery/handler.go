package delivery

import (
	"errors"
	"net/http"

	"staffdir-backend/internal/auth/domain"
	"staffdir-backend/internal/auth/dto"
	"staffdir-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles signup, login and token refresh requests
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authUsecase usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
	}
}

// Signup creates a new user account
// POST /api/v1/user/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email, username, and password are required"})
		return
	}

	user, err := h.authUsecase.Signup(c.Request.Context(), &req)
	if err != nil {
		status, message := signupError(err)
		c.JSON(status, gin.H{"message": message})
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Login verifies credentials and returns an access+refresh token pair
// POST /api/v1/user/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required"})
		return
	}

	pair, err := h.authUsecase.Login(c.Request.Context(), &req)
	if err != nil {
		status, message := loginError(err)
		c.JSON(status, gin.H{"message": message})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Login successful",
		"success":      true,
		"accessToken":  pair.AccessToken,
		"refreshToken": pair.RefreshToken,
	})
}

// RefreshToken exchanges a refresh token for a new access token
// POST /api/v1/user/refresh-token
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req dto.RefreshTokenRequest
	// An unreadable body is treated the same as a missing token.
	_ = c.ShouldBindJSON(&req)

	accessToken, err := h.authUsecase.RefreshToken(req.RefreshToken)
	if err != nil {
		if errors.Is(err, domain.ErrMissingToken) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Refresh Token is missing"})
			return
		}
		c.JSON(http.StatusForbidden, gin.H{"message": "Invalid refresh token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"accessToken": accessToken})
}

func signupError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrMissingFields):
		return http.StatusBadRequest, "Email, username, and password are required"
	case errors.Is(err, domain.ErrEmailExists):
		return http.StatusBadRequest, "Email already exists"
	default:
		return http.StatusInternalServerError, err.Error()
	}
}

func loginError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidEmail):
		return http.StatusBadRequest, "Invalid email"
	case errors.Is(err, domain.ErrInvalidPassword):
		return http.StatusBadRequest, "Invalid password"
	default:
		return http.StatusInternalServerError, err.Error()
	}
}
