package dashboard

import (
	"context"
	"time"
)

// Repository defines the read-only counts and sums behind the overview.
type Repository interface {
	SalesTotalsSince(ctx context.Context, since time.Time) (revenue float64, orders int, err error)
	CountLowStock(ctx context.Context) (int64, error)
	CountProducts(ctx context.Context) (int64, error)
	CountCustomers(ctx context.Context) (int64, error)
	CountActiveEmployees(ctx context.Context) (int64, error)
}
