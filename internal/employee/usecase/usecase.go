package usecase

import (
	"context"

	"staffdir-backend/internal/employee/domain"
)

// EmployeeUsecase defines the interface for employee business logic
type EmployeeUsecase interface {
	// GetEmployees returns all employee records.
	GetEmployees(ctx context.Context) ([]*domain.Employee, error)

	// CreateEmployee creates a new employee record.
	CreateEmployee(ctx context.Context, employee *domain.Employee) (*domain.Employee, error)

	// GetEmployeeByID retrieves an employee by id.
	GetEmployeeByID(ctx context.Context, id string) (*domain.Employee, error)

	// UpdateEmployee applies a partial update to an employee.
	UpdateEmployee(ctx context.Context, id string, update *domain.EmployeeUpdate) (*domain.Employee, error)

	// DeleteEmployee removes an employee record.
	DeleteEmployee(ctx context.Context, id string) error
}
