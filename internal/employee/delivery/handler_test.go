package delivery

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"staffdir-backend/internal/employee/domain"
	"staffdir-backend/internal/employee/usecase"

	"github.com/gin-gonic/gin"
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
	if update.Position != nil {
		e.Position = *update.Position
	}
	if update.Salary != nil {
		e.Salary = *update.Salary
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

func newEmployeeRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	handler := NewEmployeeHandler(usecase.NewEmployeeUsecase(newFakeEmployeeRepo()))
	r := gin.New()
	r.GET("/api/v1/emp/employees", handler.GetEmployees)
	r.POST("/api/v1/emp/employees", handler.CreateEmployee)
	r.GET("/api/v1/emp/employees/:eid", handler.GetEmployeeByID)
	r.PUT("/api/v1/emp/employees/:eid", handler.UpdateEmployee)
	r.DELETE("/api/v1/emp/employees/:eid", handler.DeleteEmployee)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestEmployeeCRUD(t *testing.T) {
	r := newEmployeeRouter(t)

	// Empty list
	w := doJSON(t, r, http.MethodGet, "/api/v1/emp/employees", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	// Create
	w = doJSON(t, r, http.MethodPost, "/api/v1/emp/employees", gin.H{
		"first_name": "Jane",
		"last_name":  "Doe",
		"email":      "jane@corp.com",
		"position":   "Engineer",
		"salary":     90000,
		"department": "R&D",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created domain.Employee
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.False(t, created.ID.IsZero())
	id := created.ID.Hex()

	// Get by id
	w = doJSON(t, r, http.MethodGet, "/api/v1/emp/employees/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got domain.Employee
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Jane", got.FirstName)

	// List now has one record
	w = doJSON(t, r, http.MethodGet, "/api/v1/emp/employees", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []domain.Employee
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 1)

	// Update
	w = doJSON(t, r, http.MethodPut, "/api/v1/emp/employees/"+id, gin.H{
		"position": "Senior Engineer",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Employee details updated successfully!", body["message"])

	// Delete
	w = doJSON(t, r, http.MethodDelete, "/api/v1/emp/employees/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Employee details deleted successfully!", body["message"])

	// Gone
	w = doJSON(t, r, http.MethodGet, "/api/v1/emp/employees/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEmployeeNotFoundResponses(t *testing.T) {
	r := newEmployeeRouter(t)
	id := primitive.NewObjectID().Hex()

	w := doJSON(t, r, http.MethodGet, "/api/v1/emp/employees/"+id, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Employee not found", body["message"])

	w = doJSON(t, r, http.MethodPut, "/api/v1/emp/employees/"+id, gin.H{"position": "Lead"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/v1/emp/employees/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
