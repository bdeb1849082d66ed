package dashboard

import (
	"context"
	"time"
)

// Service defines dashboard business logic.
type Service interface {
	GetOverview(ctx context.Context) (*Overview, error)
}

type service struct{ repo Repository }

// NewService creates a new dashboard service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) GetOverview(ctx context.Context) (*Overview, error) {
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	revenue, orders, err := s.repo.SalesTotalsSince(ctx, today)
	if err != nil {
		return nil, err
	}
	lowStock, err := s.repo.CountLowStock(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.repo.CountProducts(ctx)
	if err != nil {
		return nil, err
	}
	customers, err := s.repo.CountCustomers(ctx)
	if err != nil {
		return nil, err
	}
	employees, err := s.repo.CountActiveEmployees(ctx)
	if err != nil {
		return nil, err
	}

	overview := &Overview{
		TodayRevenue:    revenue,
		TodayOrders:     orders,
		LowStockAlerts:  lowStock,
		TotalProducts:   products,
		TotalCustomers:  customers,
		ActiveEmployees: employees,
	}
	if orders > 0 {
		overview.AverageOrderValue = revenue / float64(orders)
	}
	return overview, nil
}
