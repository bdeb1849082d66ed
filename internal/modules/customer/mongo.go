package customer

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

// NewMongoRepository creates a customer repository backed by MongoDB.
func NewMongoRepository(db *mongo.Database) Repository { return &mongoRepo{db: db} }

func (r *mongoRepo) Create(ctx context.Context, c *Customer) error {
	if _, err := r.db.Collection(store.CustomersCollection).InsertOne(ctx, c); err != nil {
		return fmt.Errorf("failed to insert customer: %w", err)
	}
	return nil
}

// List returns customers ordered by lifetime spend, biggest first.
func (r *mongoRepo) List(ctx context.Context) ([]*Customer, error) {
	cur, err := r.db.Collection(store.CustomersCollection).Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "total_spent", Value: -1}}).SetLimit(listCap))
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	defer cur.Close(ctx)

	var customers []*Customer
	if err := cur.All(ctx, &customers); err != nil {
		return nil, fmt.Errorf("failed to decode customers: %w", err)
	}
	return customers, nil
}
