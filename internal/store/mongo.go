package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names for the five document collections the API owns.
const (
	ProductsCollection  = "products"
	InventoryCollection = "inventory"
	SalesCollection     = "sales"
	EmployeesCollection = "employees"
	CustomersCollection = "customers"
)

// Connect opens the MongoDB client and verifies connectivity. The returned
// client is the process-wide store handle; callers must Disconnect it on
// shutdown.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	return client, nil
}
