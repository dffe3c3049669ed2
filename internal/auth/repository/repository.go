package repository

import (
	"context"

	"staffdir-backend/internal/auth/domain"

	"golang.org/x/crypto/bcrypt"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create inserts a new user. Returns domain.ErrEmailExists if the
	// email is already taken (unique index on the store).
	Create(ctx context.Context, user *domain.User) error

	// FindByEmail finds a user by lowercased email. Returns (nil, nil)
	// when no user exists.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindByID finds a user by its hex id. Returns (nil, nil) when no
	// user exists or the id is malformed.
	FindByID(ctx context.Context, id string) (*domain.User, error)
}

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash compares a password with a hash
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
