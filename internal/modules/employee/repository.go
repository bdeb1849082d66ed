package employee

import "context"

// Repository defines data access for employee documents.
type Repository interface {
	Create(ctx context.Context, e *Employee) error
	ListActive(ctx context.Context) ([]*Employee, error)
}
