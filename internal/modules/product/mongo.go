package product

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

// NewMongoRepository creates a product repository backed by MongoDB.
func NewMongoRepository(db *mongo.Database) Repository { return &mongoRepo{db: db} }

func (r *mongoRepo) Create(ctx context.Context, p *Product) error {
	if _, err := r.db.Collection(store.ProductsCollection).InsertOne(ctx, p); err != nil {
		return fmt.Errorf("failed to insert product: %w", err)
	}
	return nil
}

func (r *mongoRepo) GetByID(ctx context.Context, id string) (*Product, error) {
	var p Product
	err := r.db.Collection(store.ProductsCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("product not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}
	return &p, nil
}

func (r *mongoRepo) List(ctx context.Context, category Category) ([]*Product, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}
	cur, err := r.db.Collection(store.ProductsCollection).Find(ctx, filter,
		options.Find().SetLimit(listCap))
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer cur.Close(ctx)

	var products []*Product
	if err := cur.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}
	return products, nil
}

func (r *mongoRepo) Update(ctx context.Context, id string, fields map[string]interface{}) (*Product, error) {
	res, err := r.db.Collection(store.ProductsCollection).UpdateOne(ctx,
		bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, fmt.Errorf("product not found")
	}
	return r.GetByID(ctx, id)
}

func (r *mongoRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.Collection(store.ProductsCollection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("product not found")
	}
	return nil
}
