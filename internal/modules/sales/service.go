package sales

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/marq-e/donuts-backend/internal/modules/inventory"
)

const topItemsLimit = 5

// Service defines sales business logic.
type Service interface {
	// CreateSale records a sale and applies its side effects: a best-effort
	// stock decrement per line item and loyalty counter updates for an
	// exact-name customer match. The writes are not atomic across
	// collections; concurrent sales against the same product race and the
	// last write wins.
	CreateSale(ctx context.Context, req CreateSaleRequest) (*Sale, error)

	ListSales(ctx context.Context, limit int64) ([]*Sale, error)
	DailyAnalytics(ctx context.Context) (*DailyAnalytics, error)
	CategoryAnalytics(ctx context.Context) (map[string]*CategoryStats, error)
}

type service struct{ repo Repository }

// NewService creates a new sales service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) CreateSale(ctx context.Context, req CreateSaleRequest) (*Sale, error) {
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("sale must contain at least one item")
	}
	for _, item := range req.Items {
		if item.ProductID == "" {
			return nil, fmt.Errorf("product_id is required for every line item")
		}
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("quantity must be > 0 for product %s", item.ProductID)
		}
	}
	if req.TotalAmount < 0 {
		return nil, fmt.Errorf("total_amount must be >= 0")
	}

	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "cash"
	}
	orderType := OrderType(req.OrderType)
	if orderType == "" {
		orderType = OrderDineIn
	}
	if !ValidOrderType(orderType) {
		return nil, fmt.Errorf("invalid order_type: %s", req.OrderType)
	}

	now := time.Now().UTC()
	sale := &Sale{
		ID:            uuid.NewString(),
		Items:         req.Items,
		TotalAmount:   req.TotalAmount,
		PaymentMethod: paymentMethod,
		CustomerName:  req.CustomerName,
		EmployeeID:    req.EmployeeID,
		Timestamp:     now,
		OrderType:     orderType,
	}

	// Decrement stock per line item. A line item whose product has no
	// inventory document is skipped without complaint.
	for _, item := range sale.Items {
		inv, err := s.repo.InventoryByProduct(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		if inv == nil {
			continue
		}
		newQuantity := inv.Quantity - item.Quantity
		if newQuantity < 0 {
			newQuantity = 0
		}
		status := inventory.Classify(newQuantity, inv.MinThreshold)
		if err := s.repo.SetInventoryLevels(ctx, item.ProductID, newQuantity, status, now); err != nil {
			return nil, err
		}
	}

	// Loyalty counters bump only on an exact name match; no match creates
	// nothing and raises nothing.
	if sale.CustomerName != "" {
		customerID, err := s.repo.CustomerIDByName(ctx, sale.CustomerName)
		if err != nil {
			return nil, err
		}
		if customerID != "" {
			if err := s.repo.ApplyCustomerTotals(ctx, customerID, sale.TotalAmount); err != nil {
				return nil, err
			}
		}
	}

	if err := s.repo.Insert(ctx, sale); err != nil {
		return nil, err
	}
	return sale, nil
}

func (s *service) ListSales(ctx context.Context, limit int64) ([]*Sale, error) {
	if limit <= 0 {
		limit = 100
	}
	return s.repo.List(ctx, limit)
}

func (s *service) DailyAnalytics(ctx context.Context) (*DailyAnalytics, error) {
	today := startOfDay(time.Now().UTC())
	daily, err := s.repo.ListSince(ctx, today)
	if err != nil {
		return nil, err
	}

	var totalRevenue float64
	for _, sale := range daily {
		totalRevenue += sale.TotalAmount
	}
	totalOrders := len(daily)

	quantities := map[string]int{}
	for _, sale := range daily {
		for _, item := range sale.Items {
			quantities[item.ProductID] += item.Quantity
		}
	}

	productIDs := make([]string, 0, len(quantities))
	for id := range quantities {
		productIDs = append(productIDs, id)
	}
	sort.Slice(productIDs, func(i, j int) bool {
		if quantities[productIDs[i]] != quantities[productIDs[j]] {
			return quantities[productIDs[i]] > quantities[productIDs[j]]
		}
		return productIDs[i] < productIDs[j]
	})

	popular := []PopularItem{}
	for _, id := range productIDs {
		if len(popular) == topItemsLimit {
			break
		}
		summary, err := s.repo.GetProductSummary(ctx, id)
		if err != nil {
			return nil, err
		}
		if summary == nil {
			continue
		}
		popular = append(popular, PopularItem{
			Name:         summary.Name,
			QuantitySold: quantities[id],
			Category:     summary.Category,
		})
	}

	analytics := &DailyAnalytics{
		Date:         today,
		TotalRevenue: totalRevenue,
		TotalOrders:  totalOrders,
		PopularItems: popular,
	}
	if totalOrders > 0 {
		analytics.AverageOrderValue = totalRevenue / float64(totalOrders)
	}
	return analytics, nil
}

func (s *service) CategoryAnalytics(ctx context.Context) (map[string]*CategoryStats, error) {
	today := startOfDay(time.Now().UTC())
	daily, err := s.repo.ListSince(ctx, today)
	if err != nil {
		return nil, err
	}

	stats := map[string]*CategoryStats{}
	for _, sale := range daily {
		for _, item := range sale.Items {
			summary, err := s.repo.GetProductSummary(ctx, item.ProductID)
			if err != nil {
				return nil, err
			}
			if summary == nil {
				continue
			}
			cs, ok := stats[summary.Category]
			if !ok {
				cs = &CategoryStats{}
				stats[summary.Category] = cs
			}
			cs.Revenue += item.Price * float64(item.Quantity)
			cs.Quantity += item.Quantity
			cs.Orders++
		}
	}
	return stats, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
