package sales

import (
	"context"
	"time"

	"github.com/marq-e/donuts-backend/internal/modules/inventory"
)

// ProductSummary is the slice of a product the analytics queries need.
type ProductSummary struct {
	Name     string
	Category string
}

// Repository defines data access for sales plus the cross-collection reads
// and writes the sale pipeline performs. Lookups that can legitimately miss
// (inventory by product, customer by name, product summaries) return nil
// rather than an error when no document matches.
type Repository interface {
	Insert(ctx context.Context, s *Sale) error
	List(ctx context.Context, limit int64) ([]*Sale, error)
	ListSince(ctx context.Context, since time.Time) ([]*Sale, error)

	InventoryByProduct(ctx context.Context, productID string) (*inventory.Item, error)
	SetInventoryLevels(ctx context.Context, productID string, quantity int, status inventory.StockStatus, restockedAt time.Time) error

	CustomerIDByName(ctx context.Context, name string) (string, error)
	ApplyCustomerTotals(ctx context.Context, customerID string, total float64) error

	GetProductSummary(ctx context.Context, productID string) (*ProductSummary, error)
}
