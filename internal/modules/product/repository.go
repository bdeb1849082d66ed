package product

import "context"

// Repository defines the interface for product document storage.
type Repository interface {
	Create(ctx context.Context, p *Product) error
	GetByID(ctx context.Context, id string) (*Product, error)
	List(ctx context.Context, category Category) ([]*Product, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) (*Product, error)
	Delete(ctx context.Context, id string) error
}
