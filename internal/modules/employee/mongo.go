package employee

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/marq-e/donuts-backend/internal/store"
)

const listCap = 1000

type mongoRepo struct{ db *mongo.Database }

// NewMongoRepository creates an employee repository backed by MongoDB.
func NewMongoRepository(db *mongo.Database) Repository { return &mongoRepo{db: db} }

func (r *mongoRepo) Create(ctx context.Context, e *Employee) error {
	if _, err := r.db.Collection(store.EmployeesCollection).InsertOne(ctx, e); err != nil {
		return fmt.Errorf("failed to insert employee: %w", err)
	}
	return nil
}

func (r *mongoRepo) ListActive(ctx context.Context) ([]*Employee, error) {
	cur, err := r.db.Collection(store.EmployeesCollection).Find(ctx,
		bson.M{"is_active": true}, options.Find().SetLimit(listCap))
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer cur.Close(ctx)

	var employees []*Employee
	if err := cur.All(ctx, &employees); err != nil {
		return nil, fmt.Errorf("failed to decode employees: %w", err)
	}
	return employees, nil
}
