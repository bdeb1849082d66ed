package inventory

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/marq-e/donuts-backend/internal/store"
)

const listCap = 1000

type mongoRepo struct{ db *mongo.Database }

// NewMongoRepository creates an inventory repository backed by MongoDB.
func NewMongoRepository(db *mongo.Database) Repository { return &mongoRepo{db: db} }

func (r *mongoRepo) List(ctx context.Context) ([]*Item, error) {
	cur, err := r.db.Collection(store.InventoryCollection).Find(ctx, bson.M{},
		options.Find().SetLimit(listCap))
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}
	defer cur.Close(ctx)

	var items []*Item
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode inventory: %w", err)
	}
	return items, nil
}

func (r *mongoRepo) GetByProductID(ctx context.Context, productID string) (*Item, error) {
	var item Item
	err := r.db.Collection(store.InventoryCollection).
		FindOne(ctx, bson.M{"product_id": productID}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("inventory item not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch inventory item: %w", err)
	}
	return &item, nil
}

func (r *mongoRepo) Update(ctx context.Context, productID string, fields map[string]interface{}) (*Item, error) {
	res, err := r.db.Collection(store.InventoryCollection).UpdateOne(ctx,
		bson.M{"product_id": productID}, bson.M{"$set": fields})
	if err != nil {
		return nil, fmt.Errorf("failed to update inventory item: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, fmt.Errorf("inventory item not found")
	}
	return r.GetByProductID(ctx, productID)
}

func (r *mongoRepo) CreateForProduct(ctx context.Context, productID string) error {
	item := NewItemForProduct(productID)
	if _, err := r.db.Collection(store.InventoryCollection).InsertOne(ctx, item); err != nil {
		return fmt.Errorf("failed to insert inventory item: %w", err)
	}
	return nil
}

func (r *mongoRepo) DeleteByProduct(ctx context.Context, productID string) error {
	if _, err := r.db.Collection(store.InventoryCollection).DeleteOne(ctx, bson.M{"product_id": productID}); err != nil {
		return fmt.Errorf("failed to delete inventory item: %w", err)
	}
	return nil
}

func (r *mongoRepo) ListByStatuses(ctx context.Context, statuses ...StockStatus) ([]*Item, error) {
	cur, err := r.db.Collection(store.InventoryCollection).Find(ctx,
		bson.M{"status": bson.M{"$in": statuses}},
		options.Find().SetLimit(listCap))
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory by status: %w", err)
	}
	defer cur.Close(ctx)

	var items []*Item
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode inventory: %w", err)
	}
	return items, nil
}

func (r *mongoRepo) ProductName(ctx context.Context, productID string) (string, error) {
	var p struct {
		Name string `bson:"name"`
	}
	err := r.db.Collection(store.ProductsCollection).
		FindOne(ctx, bson.M{"_id": productID}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to fetch product: %w", err)
	}
	return p.Name, nil
}
