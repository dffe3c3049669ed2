package usecase

import (
	"context"
	"testing"
	"time"

	"staffdir-backend/internal/employee/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeEmployeeRepo is an in-memory EmployeeRepository keyed by hex id.
type fakeEmployeeRepo struct {
	employees map[string]*domain.Employee
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: map[string]*domain.Employee{}}
}

func (r *fakeEmployeeRepo) FindAll(_ context.Context) ([]*domain.Employee, error) {
	all := []*domain.Employee{}
	for _, e := range r.employees {
		all = append(all, e)
	}
	return all, nil
}

func (r *fakeEmployeeRepo) Create(_ context.Context, employee *domain.Employee) error {
	if employee.ID.IsZero() {
		employee.ID = primitive.NewObjectID()
	}
	now := time.Now()
	if employee.DateOfJoining.IsZero() {
		employee.DateOfJoining = now
	}
	employee.CreatedAt = now
	employee.UpdatedAt = now
	r.employees[employee.ID.Hex()] = employee
	return nil
}

func (r *fakeEmployeeRepo) FindByID(_ context.Context, id string) (*domain.Employee, error) {
	e, ok := r.employees[id]
	if !ok {
		return nil, domain.ErrEmployeeNotFound
	}
	return e, nil
}

func (r *fakeEmployeeRepo) UpdateByID(_ context.Context, id string, update *domain.EmployeeUpdate) (*domain.Employee, error) {
	e, ok := r.employees[id]
	if !ok {
		return nil, domain.ErrEmployeeNotFound
	}
	if update.FirstName != nil {
		e.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		e.LastName = *update.LastName
	}
	if update.Email != nil {
		e.Email = *update.Email
	}
	if update.Position != nil {
		e.Position = *update.Position
	}
	if update.Salary != nil {
		e.Salary = *update.Salary
	}
	if update.DateOfJoining != nil {
		e.DateOfJoining = *update.DateOfJoining
	}
	if update.Department != nil {
		e.Department = *update.Department
	}
	e.UpdatedAt = time.Now()
	return e, nil
}

func (r *fakeEmployeeRepo) DeleteByID(_ context.Context, id string) error {
	if _, ok := r.employees[id]; !ok {
		return domain.ErrEmployeeNotFound
	}
	delete(r.employees, id)
	return nil
}

func TestCreateAndGetEmployee(t *testing.T) {
	uc := NewEmployeeUsecase(newFakeEmployeeRepo())

	created, err := uc.CreateEmployee(context.Background(), &domain.Employee{
		FirstName:  "Jane",
		LastName:   "Doe",
		Email:      "jane@corp.com",
		Position:   "Engineer",
		Salary:     90000,
		Department: "R&D",
	})
	require.NoError(t, err)
	assert.False(t, created.ID.IsZero())
	assert.False(t, created.DateOfJoining.IsZero())

	got, err := uc.GetEmployeeByID(context.Background(), created.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "Jane", got.FirstName)
	assert.Equal(t, "Engineer", got.Position)
}

func TestGetEmployeesEmpty(t *testing.T) {
	uc := NewEmployeeUsecase(newFakeEmployeeRepo())

	employees, err := uc.GetEmployees(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, employees)
	assert.Empty(t, employees)
}

func TestUpdateEmployee(t *testing.T) {
	uc := NewEmployeeUsecase(newFakeEmployeeRepo())

	created, err := uc.CreateEmployee(context.Background(), &domain.Employee{
		FirstName: "Jane", Position: "Engineer", Salary: 90000,
	})
	require.NoError(t, err)

	position := "Senior Engineer"
	salary := 110000.0
	updated, err := uc.UpdateEmployee(context.Background(), created.ID.Hex(), &domain.EmployeeUpdate{
		Position: &position,
		Salary:   &salary,
	})
	require.NoError(t, err)
	assert.Equal(t, "Senior Engineer", updated.Position)
	assert.Equal(t, 110000.0, updated.Salary)
	// Untouched fields remain
	assert.Equal(t, "Jane", updated.FirstName)
}

func TestUpdateEmployeeNotFound(t *testing.T) {
	uc := NewEmployeeUsecase(newFakeEmployeeRepo())

	position := "Senior Engineer"
	_, err := uc.UpdateEmployee(context.Background(), primitive.NewObjectID().Hex(), &domain.EmployeeUpdate{
		Position: &position,
	})
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
}

func TestDeleteEmployee(t *testing.T) {
	uc := NewEmployeeUsecase(newFakeEmployeeRepo())

	created, err := uc.CreateEmployee(context.Background(), &domain.Employee{FirstName: "Jane"})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteEmployee(context.Background(), created.ID.Hex()))

	_, err = uc.GetEmployeeByID(context.Background(), created.ID.Hex())
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)

	err = uc.DeleteEmployee(context.Background(), created.ID.Hex())
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
}
