package domain

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrEmployeeNotFound is returned when no employee exists for an id.
// A malformed id is treated the same way.
var ErrEmployeeNotFound = errors.New("employee not found")

// Employee is a record in the employee directory.
type Employee struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName     string             `bson:"first_name" json:"first_name"`
	LastName      string             `bson:"last_name" json:"last_name"`
	Email         string             `bson:"email" json:"email"`
	Position      string             `bson:"position" json:"position"`
	Salary        float64            `bson:"salary" json:"salary"`
	DateOfJoining time.Time          `bson:"date_of_joining" json:"date_of_joining"`
	Department    string             `bson:"department" json:"department"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updated_at"`
}

// EmployeeUpdate carries the fields of a partial update. Nil fields are
// left untouched.
type EmployeeUpdate struct {
	FirstName     *string    `json:"first_name,omitempty"`
	LastName      *string    `json:"last_name,omitempty"`
	Email         *string    `json:"email,omitempty"`
	Position      *string    `json:"position,omitempty"`
	Salary        *float64   `json:"salary,omitempty"`
	DateOfJoining *time.Time `json:"date_of_joining,omitempty"`
	Department    *string    `json:"department,omitempty"`
}
