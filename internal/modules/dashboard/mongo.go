package dashboard

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/marq-e/donuts-backend/internal/modules/inventory"
	"github.com/marq-e/donuts-backend/internal/store"
)

const salesWindowCap = 1000

type mongoRepo struct{ db *mongo.Database }

// NewMongoRepository creates a dashboard repository backed by MongoDB.
func NewMongoRepository(db *mongo.Database) Repository { return &mongoRepo{db: db} }

func (r *mongoRepo) SalesTotalsSince(ctx context.Context, since time.Time) (float64, int, error) {
	cur, err := r.db.Collection(store.SalesCollection).Find(ctx,
		bson.M{"timestamp": bson.M{"$gte": since}},
		options.Find().SetLimit(salesWindowCap))
	if err != nil {
		return 0, 0, fmt.Errorf("failed to query today's sales: %w", err)
	}
	defer cur.Close(ctx)

	var revenue float64
	var orders int
	for cur.Next(ctx) {
		var sale struct {
			TotalAmount float64 `bson:"total_amount"`
		}
		if err := cur.Decode(&sale); err != nil {
			return 0, 0, fmt.Errorf("failed to decode sale: %w", err)
		}
		revenue += sale.TotalAmount
		orders++
	}
	if err := cur.Err(); err != nil {
		return 0, 0, fmt.Errorf("failed to iterate today's sales: %w", err)
	}
	return revenue, orders, nil
}

func (r *mongoRepo) CountLowStock(ctx context.Context) (int64, error) {
	n, err := r.db.Collection(store.InventoryCollection).CountDocuments(ctx, bson.M{
		"status": bson.M{"$in": []inventory.StockStatus{inventory.StockLowStock, inventory.StockOutOfStock}},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count low-stock items: %w", err)
	}
	return n, nil
}

func (r *mongoRepo) CountProducts(ctx context.Context) (int64, error) {
	n, err := r.db.Collection(store.ProductsCollection).CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return n, nil
}

func (r *mongoRepo) CountCustomers(ctx context.Context) (int64, error) {
	n, err := r.db.Collection(store.CustomersCollection).CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count customers: %w", err)
	}
	return n, nil
}

func (r *mongoRepo) CountActiveEmployees(ctx context.Context) (int64, error) {
	n, err := r.db.Collection(store.EmployeesCollection).CountDocuments(ctx, bson.M{"is_active": true})
	if err != nil {
		return 0, fmt.Errorf("failed to count active employees: %w", err)
	}
	return n, nil
}
