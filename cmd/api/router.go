package api

import (
	"net/http"

	authDelivery "staffdir-backend/internal/auth/delivery"
	authUsecase "staffdir-backend/internal/auth/usecase"
	employeeDelivery "staffdir-backend/internal/employee/delivery"
	employeeUsecase "staffdir-backend/internal/employee/usecase"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, employeeUc employeeUsecase.EmployeeUsecase) {
	authHandler := authDelivery.NewAuthHandler(authUc)
	employeeHandler := employeeDelivery.NewEmployeeHandler(employeeUc)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		v1 := api.Group("/v1")
		{
			// Auth routes
			user := v1.Group("/user")
			{
				user.POST("/signup", authHandler.Signup)
				user.POST("/login", authHandler.Login)
				user.POST("/refresh-token", authHandler.RefreshToken)
			}

			// Employee routes (protected)
			emp := v1.Group("/emp")
			emp.Use(authDelivery.AuthMiddleware(authUc))
			{
				emp.GET("/employees", employeeHandler.GetEmployees)
				emp.POST("/employees", employeeHandler.CreateEmployee)
				emp.GET("/employees/:eid", employeeHandler.GetEmployeeByID)
				emp.PUT("/employees/:eid", employeeHandler.UpdateEmployee)
				emp.DELETE("/employees/:eid", employeeHandler.DeleteEmployee)
			}
		}
	}
}
