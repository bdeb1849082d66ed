package inventory

import (
	"context"
	"time"
)

// Service defines inventory business logic.
type Service interface {
	ListInventory(ctx context.Context) ([]*Item, error)
	GetItem(ctx context.Context, productID string) (*Item, error)
	UpdateItem(ctx context.Context, productID string, req UpdateItemRequest) (*Item, error)
	LowStockAlerts(ctx context.Context) ([]*StockAlert, error)
}

type service struct{ repo Repository }

// NewService creates a new inventory service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) ListInventory(ctx context.Context) ([]*Item, error) {
	return s.repo.List(ctx)
}

func (s *service) GetItem(ctx context.Context, productID string) (*Item, error) {
	return s.repo.GetByProductID(ctx, productID)
}

func (s *service) UpdateItem(ctx context.Context, productID string, req UpdateItemRequest) (*Item, error) {
	current, err := s.repo.GetByProductID(ctx, productID)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.Quantity != nil {
		fields["quantity"] = *req.Quantity
	}
	if req.MinThreshold != nil {
		fields["min_threshold"] = *req.MinThreshold
	}
	if req.MaxCapacity != nil {
		fields["max_capacity"] = *req.MaxCapacity
	}

	// Status is only re-derived when the quantity itself changes, using the
	// incoming threshold when one was supplied and the stored one otherwise.
	if req.Quantity != nil {
		threshold := current.MinThreshold
		if req.MinThreshold != nil {
			threshold = *req.MinThreshold
		}
		fields["status"] = Classify(*req.Quantity, threshold)
		fields["last_restocked"] = time.Now().UTC()
	}

	return s.repo.Update(ctx, productID, fields)
}

func (s *service) LowStockAlerts(ctx context.Context) ([]*StockAlert, error) {
	items, err := s.repo.ListByStatuses(ctx, StockLowStock, StockOutOfStock)
	if err != nil {
		return nil, err
	}
	var alerts []*StockAlert
	for _, item := range items {
		name, err := s.repo.ProductName(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		if name == "" {
			// Orphaned inventory rows are skipped rather than surfaced.
			continue
		}
		alerts = append(alerts, &StockAlert{
			ProductName:     name,
			ProductID:       item.ProductID,
			CurrentQuantity: item.Quantity,
			MinThreshold:    item.MinThreshold,
			Status:          item.Status,
		})
	}
	return alerts, nil
}
