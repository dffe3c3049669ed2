package main

import (
	"context"
	"log"

	api "staffdir-backend/cmd/api"
	authRepo "staffdir-backend/internal/auth/repository"
	"staffdir-backend/internal/auth/token"
	authUsecase "staffdir-backend/internal/auth/usecase"
	employeeRepo "staffdir-backend/internal/employee/repository"
	employeeUsecase "staffdir-backend/internal/employee/usecase"
	"staffdir-backend/pkg/config"
	"staffdir-backend/pkg/database"
)

func main() {
	// Load configuration; missing secrets abort startup
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	// Initialize database
	db, err := database.NewMongoConnection(context.Background(), cfg)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	log.Println("Connected to the database!")

	// Initialize token issuer
	issuer, err := token.NewIssuer(cfg.AccessTokenSecret, cfg.RefreshTokenSecret, cfg.JWTAccessExpiry, cfg.JWTRefreshExpiry)
	if err != nil {
		log.Fatal("Failed to initialize token issuer: ", err)
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	employeeRepository := employeeRepo.NewEmployeeRepository(db)

	// Initialize use cases (dependency injection)
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepository, issuer)
	employeeUsecaseInstance := employeeUsecase.NewEmployeeUsecase(employeeRepository)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, employeeUsecaseInstance, cfg)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
