package sales

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/marq-e/donuts-backend/internal/modules/inventory"
	"github.com/marq-e/donuts-backend/internal/store"
)

const listCap = 1000

type mongoRepo struct{ db *mongo.Database }

// NewMongoRepository creates a sales repository backed by MongoDB.
func NewMongoRepository(db *mongo.Database) Repository { return &mongoRepo{db: db} }

func (r *mongoRepo) Insert(ctx context.Context, s *Sale) error {
	if _, err := r.db.Collection(store.SalesCollection).InsertOne(ctx, s); err != nil {
		return fmt.Errorf("failed to insert sale: %w", err)
	}
	return nil
}

func (r *mongoRepo) List(ctx context.Context, limit int64) ([]*Sale, error) {
	if limit > listCap {
		limit = listCap
	}
	cur, err := r.db.Collection(store.SalesCollection).Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}}).SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	defer cur.Close(ctx)

	var sales []*Sale
	if err := cur.All(ctx, &sales); err != nil {
		return nil, fmt.Errorf("failed to decode sales: %w", err)
	}
	return sales, nil
}

func (r *mongoRepo) ListSince(ctx context.Context, since time.Time) ([]*Sale, error) {
	cur, err := r.db.Collection(store.SalesCollection).Find(ctx,
		bson.M{"timestamp": bson.M{"$gte": since}},
		options.Find().SetLimit(listCap))
	if err != nil {
		return nil, fmt.Errorf("failed to query sales window: %w", err)
	}
	defer cur.Close(ctx)

	var sales []*Sale
	if err := cur.All(ctx, &sales); err != nil {
		return nil, fmt.Errorf("failed to decode sales: %w", err)
	}
	return sales, nil
}

func (r *mongoRepo) InventoryByProduct(ctx context.Context, productID string) (*inventory.Item, error) {
	var item inventory.Item
	err := r.db.Collection(store.InventoryCollection).
		FindOne(ctx, bson.M{"product_id": productID}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch inventory item: %w", err)
	}
	return &item, nil
}

func (r *mongoRepo) SetInventoryLevels(ctx context.Context, productID string, quantity int, status inventory.StockStatus, restockedAt time.Time) error {
	_, err := r.db.Collection(store.InventoryCollection).UpdateOne(ctx,
		bson.M{"product_id": productID},
		bson.M{"$set": bson.M{
			"quantity":       quantity,
			"status":         status,
			"last_restocked": restockedAt,
		}})
	if err != nil {
		return fmt.Errorf("failed to update inventory levels: %w", err)
	}
	return nil
}

func (r *mongoRepo) CustomerIDByName(ctx context.Context, name string) (string, error) {
	var customer struct {
		ID string `bson:"_id"`
	}
	err := r.db.Collection(store.CustomersCollection).
		FindOne(ctx, bson.M{"name": name}).Decode(&customer)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to look up customer: %w", err)
	}
	return customer.ID, nil
}

func (r *mongoRepo) ApplyCustomerTotals(ctx context.Context, customerID string, total float64) error {
	_, err := r.db.Collection(store.CustomersCollection).UpdateOne(ctx,
		bson.M{"_id": customerID},
		bson.M{"$inc": bson.M{
			"total_orders":   1,
			"total_spent":    total,
			"loyalty_points": int(total),
		}})
	if err != nil {
		return fmt.Errorf("failed to update customer totals: %w", err)
	}
	return nil
}

func (r *mongoRepo) GetProductSummary(ctx context.Context, productID string) (*ProductSummary, error) {
	var p struct {
		Name     string `bson:"name"`
		Category string `bson:"category"`
	}
	err := r.db.Collection(store.ProductsCollection).
		FindOne(ctx, bson.M{"_id": productID}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}
	return &ProductSummary{Name: p.Name, Category: p.Category}, nil
}
