package repository

import (
	"context"

	"staffdir-backend/internal/employee/domain"
)

// EmployeeRepository defines the interface for employee data access
type EmployeeRepository interface {
	// FindAll returns every employee record.
	FindAll(ctx context.Context) ([]*domain.Employee, error)

	// Create inserts a new employee record.
	Create(ctx context.Context, employee *domain.Employee) error

	// FindByID finds an employee by its hex id. Returns
	// domain.ErrEmployeeNotFound when no record exists.
	FindByID(ctx context.Context, id string) (*domain.Employee, error)

	// UpdateByID applies a partial update and returns the updated
	// record. Returns domain.ErrEmployeeNotFound when no record exists.
	UpdateByID(ctx context.Context, id string, update *domain.EmployeeUpdate) (*domain.Employee, error)

	// DeleteByID removes an employee record. Returns
	// domain.ErrEmployeeNotFound when no record exists.
	DeleteByID(ctx context.Context, id string) error
}
