package inventory

import "context"

// Repository defines data access for inventory documents. Inventory is
// keyed by product reference everywhere the API touches it.
type Repository interface {
	List(ctx context.Context) ([]*Item, error)
	GetByProductID(ctx context.Context, productID string) (*Item, error)
	Update(ctx context.Context, productID string, fields map[string]interface{}) (*Item, error)

	// CreateForProduct inserts the zeroed inventory document that pairs
	// with a newly created product.
	CreateForProduct(ctx context.Context, productID string) error

	// DeleteByProduct removes a product's inventory document. A product
	// with no inventory document is not an error.
	DeleteByProduct(ctx context.Context, productID string) error

	// ListByStatuses returns items whose status is one of the given values.
	ListByStatuses(ctx context.Context, statuses ...StockStatus) ([]*Item, error)

	// ProductName resolves a product's display name, or "" when the
	// product no longer exists.
	ProductName(ctx context.Context, productID string) (string, error)
}
