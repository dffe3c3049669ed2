package delivery

import (
	"errors"
	"net/http"
	"time"

	"staffdir-backend/internal/employee/domain"
	"staffdir-backend/internal/employee/usecase"

	"github.com/gin-gonic/gin"
)

// EmployeeHandler handles employee-related HTTP requests
type EmployeeHandler struct {
	employeeUsecase usecase.EmployeeUsecase
}

// NewEmployeeHandler creates a new EmployeeHandler
func NewEmployeeHandler(employeeUsecase usecase.EmployeeUsecase) *EmployeeHandler {
	return &EmployeeHandler{
		employeeUsecase: employeeUsecase,
	}
}

// CreateEmployeeRequest represents the request body for creating an employee
type CreateEmployeeRequest struct {
	FirstName     string     `json:"first_name"`
	LastName      string     `json:"last_name"`
	Email         string     `json:"email"`
	Position      string     `json:"position"`
	Salary        float64    `json:"salary"`
	DateOfJoining *time.Time `json:"date_of_joining"`
	Department    string     `json:"department"`
}

// GetEmployees returns all employees
// GET /api/v1/emp/employees
func (h *EmployeeHandler) GetEmployees(c *gin.Context) {
	employees, err := h.employeeUsecase.GetEmployees(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, employees)
}

// CreateEmployee creates a new employee record
// POST /api/v1/emp/employees
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	employee := &domain.Employee{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Position:   req.Position,
		Salary:     req.Salary,
		Department: req.Department,
	}
	if req.DateOfJoining != nil {
		employee.DateOfJoining = *req.DateOfJoining
	}

	created, err := h.employeeUsecase.CreateEmployee(c.Request.Context(), employee)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetEmployeeByID returns a specific employee
// GET /api/v1/emp/employees/:eid
func (h *EmployeeHandler) GetEmployeeByID(c *gin.Context) {
	employee, err := h.employeeUsecase.GetEmployeeByID(c.Request.Context(), c.Param("eid"))
	if err != nil {
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Employee not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, employee)
}

// UpdateEmployee updates an existing employee
// PUT /api/v1/emp/employees/:eid
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	var update domain.EmployeeUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	_, err := h.employeeUsecase.UpdateEmployee(c.Request.Context(), c.Param("eid"), &update)
	if err != nil {
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Employee not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Employee details updated successfully!"})
}

// DeleteEmployee deletes an employee
// DELETE /api/v1/emp/employees/:eid
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	err := h.employeeUsecase.DeleteEmployee(c.Request.Context(), c.Param("eid"))
	if err != nil {
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Employee not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Employee details deleted successfully!"})
}
