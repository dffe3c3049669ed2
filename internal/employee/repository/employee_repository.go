package repository

import (
	"context"
	"errors"
	"time"

	"staffdir-backend/internal/employee/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const employeeQueryTimeout = 5 * time.Second

// employeeRepository implements EmployeeRepository on the employees collection
type employeeRepository struct {
	collection *mongo.Collection
}

// NewEmployeeRepository creates a new instance of employeeRepository
func NewEmployeeRepository(db *mongo.Database) EmployeeRepository {
	return &employeeRepository{
		collection: db.Collection("employees"),
	}
}

func (r *employeeRepository) FindAll(ctx context.Context) ([]*domain.Employee, error) {
	ctx, cancel := context.WithTimeout(ctx, employeeQueryTimeout)
	defer cancel()

	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	employees := []*domain.Employee{}
	if err := cursor.All(ctx, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *employeeRepository) Create(ctx context.Context, employee *domain.Employee) error {
	ctx, cancel := context.WithTimeout(ctx, employeeQueryTimeout)
	defer cancel()

	if employee.ID.IsZero() {
		employee.ID = primitive.NewObjectID()
	}
	now := time.Now()
	if employee.DateOfJoining.IsZero() {
		employee.DateOfJoining = now
	}
	employee.CreatedAt = now
	employee.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, employee)
	return err
}

func (r *employeeRepository) FindByID(ctx context.Context, id string) (*domain.Employee, error) {
	ctx, cancel := context.WithTimeout(ctx, employeeQueryTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrEmployeeNotFound
	}

	var employee domain.Employee
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&employee)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepository) UpdateByID(ctx context.Context, id string, update *domain.EmployeeUpdate) (*domain.Employee, error) {
	ctx, cancel := context.WithTimeout(ctx, employeeQueryTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrEmployeeNotFound
	}

	set := bson.M{"updated_at": time.Now()}
	if update.FirstName != nil {
		set["first_name"] = *update.FirstName
	}
	if update.LastName != nil {
		set["last_name"] = *update.LastName
	}
	if update.Email != nil {
		set["email"] = *update.Email
	}
	if update.Position != nil {
		set["position"] = *update.Position
	}
	if update.Salary != nil {
		set["salary"] = *update.Salary
	}
	if update.DateOfJoining != nil {
		set["date_of_joining"] = *update.DateOfJoining
	}
	if update.Department != nil {
		set["department"] = *update.Department
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var employee domain.Employee
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&employee)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepository) DeleteByID(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, employeeQueryTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrEmployeeNotFound
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}
