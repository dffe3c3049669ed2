package usecase

import (
	"context"

	"staffdir-backend/internal/employee/domain"
	"staffdir-backend/internal/employee/repository"
)

// employeeUsecase implements EmployeeUsecase interface
type employeeUsecase struct {
	employeeRepo repository.EmployeeRepository
}

// NewEmployeeUsecase creates a new instance of employeeUsecase
func NewEmployeeUsecase(employeeRepo repository.EmployeeRepository) EmployeeUsecase {
	return &employeeUsecase{
		employeeRepo: employeeRepo,
	}
}

func (u *employeeUsecase) GetEmployees(ctx context.Context) ([]*domain.Employee, error) {
	return u.employeeRepo.FindAll(ctx)
}

func (u *employeeUsecase) CreateEmployee(ctx context.Context, employee *domain.Employee) (*domain.Employee, error) {
	if err := u.employeeRepo.Create(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

func (u *employeeUsecase) GetEmployeeByID(ctx context.Context, id string) (*domain.Employee, error) {
	return u.employeeRepo.FindByID(ctx, id)
}

func (u *employeeUsecase) UpdateEmployee(ctx context.Context, id string, update *domain.EmployeeUpdate) (*domain.Employee, error) {
	return u.employeeRepo.UpdateByID(ctx, id, update)
}

func (u *employeeUsecase) DeleteEmployee(ctx context.Context, id string) error {
	return u.employeeRepo.DeleteByID(ctx, id)
}
