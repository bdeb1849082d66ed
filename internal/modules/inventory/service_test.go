package inventory

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	items        map[string]*Item
	lastFields   map[string]interface{}
	productNames map[string]string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{items: map[string]*Item{}, productNames: map[string]string{}}
}

func (f *fakeRepo) List(ctx context.Context) ([]*Item, error) {
	var items []*Item
	for _, item := range f.items {
		items = append(items, item)
	}
	return items, nil
}

func (f *fakeRepo) GetByProductID(ctx context.Context, productID string) (*Item, error) {
	item, ok := f.items[productID]
	if !ok {
		return nil, fmt.Errorf("inventory item not found")
	}
	return item, nil
}

func (f *fakeRepo) Update(ctx context.Context, productID string, fields map[string]interface{}) (*Item, error) {
	item, ok := f.items[productID]
	if !ok {
		return nil, fmt.Errorf("inventory item not found")
	}
	f.lastFields = fields
	if v, ok := fields["quantity"]; ok {
		item.Quantity = v.(int)
	}
	if v, ok := fields["min_threshold"]; ok {
		item.MinThreshold = v.(int)
	}
	if v, ok := fields["max_capacity"]; ok {
		item.MaxCapacity = v.(int)
	}
	if v, ok := fields["status"]; ok {
		item.Status = v.(StockStatus)
	}
	return item, nil
}

func (f *fakeRepo) CreateForProduct(ctx context.Context, productID string) error {
	f.items[productID] = NewItemForProduct(productID)
	return nil
}

func (f *fakeRepo) DeleteByProduct(ctx context.Context, productID string) error {
	delete(f.items, productID)
	return nil
}

func (f *fakeRepo) ListByStatuses(ctx context.Context, statuses ...StockStatus) ([]*Item, error) {
	var items []*Item
	for _, item := range f.items {
		for _, s := range statuses {
			if item.Status == s {
				items = append(items, item)
				break
			}
		}
	}
	return items, nil
}

func (f *fakeRepo) ProductName(ctx context.Context, productID string) (string, error) {
	return f.productNames[productID], nil
}

func intPtr(v int) *int { return &v }

func TestUpdateItemReclassifiesWhenQuantityChanges(t *testing.T) {
	repo := newFakeRepo()
	repo.items["p1"] = &Item{ProductID: "p1", Quantity: 0, MinThreshold: 10, Status: StockOutOfStock}
	svc := NewService(repo)

	item, err := svc.UpdateItem(context.Background(), "p1", UpdateItemRequest{Quantity: intPtr(40)})
	require.NoError(t, err)
	assert.Equal(t, 40, item.Quantity)
	assert.Equal(t, StockInStock, item.Status)
	assert.Contains(t, repo.lastFields, "last_restocked")
}

func TestUpdateItemUsesSuppliedThresholdForClassification(t *testing.T) {
	repo := newFakeRepo()
	repo.items["p1"] = &Item{ProductID: "p1", Quantity: 50, MinThreshold: 10, Status: StockInStock}
	svc := NewService(repo)

	// Quantity 15 would be in_stock against the stored threshold of 10, but
	// the request raises the threshold to 20 in the same payload.
	item, err := svc.UpdateItem(context.Background(), "p1", UpdateItemRequest{
		Quantity:     intPtr(15),
		MinThreshold: intPtr(20),
	})
	require.NoError(t, err)
	assert.Equal(t, StockLowStock, item.Status)
}

func TestUpdateItemWithoutQuantityKeepsStatus(t *testing.T) {
	repo := newFakeRepo()
	repo.items["p1"] = &Item{ProductID: "p1", Quantity: 2, MinThreshold: 10, Status: StockLowStock}
	svc := NewService(repo)

	// Raising the threshold alone does not re-derive status; only a quantity
	// change does.
	item, err := svc.UpdateItem(context.Background(), "p1", UpdateItemRequest{MinThreshold: intPtr(50)})
	require.NoError(t, err)
	assert.Equal(t, StockLowStock, item.Status)
	assert.NotContains(t, repo.lastFields, "status")
	assert.NotContains(t, repo.lastFields, "last_restocked")
}

func TestUpdateItemPartialMerge(t *testing.T) {
	repo := newFakeRepo()
	repo.items["p1"] = &Item{ProductID: "p1", Quantity: 5, MinThreshold: 10, MaxCapacity: 100, Status: StockLowStock}
	svc := NewService(repo)

	item, err := svc.UpdateItem(context.Background(), "p1", UpdateItemRequest{MaxCapacity: intPtr(250)})
	require.NoError(t, err)
	assert.Equal(t, 250, item.MaxCapacity)
	assert.Equal(t, 5, item.Quantity)
	assert.Equal(t, 10, item.MinThreshold)
	assert.NotContains(t, repo.lastFields, "quantity")
	assert.NotContains(t, repo.lastFields, "min_threshold")
}

func TestUpdateItemAllowsNegativeQuantity(t *testing.T) {
	// Direct inventory updates do not clamp; only the sales path does.
	repo := newFakeRepo()
	repo.items["p1"] = &Item{ProductID: "p1", Quantity: 5, MinThreshold: 10, Status: StockLowStock}
	svc := NewService(repo)

	item, err := svc.UpdateItem(context.Background(), "p1", UpdateItemRequest{Quantity: intPtr(-3)})
	require.NoError(t, err)
	assert.Equal(t, -3, item.Quantity)
	assert.Equal(t, StockOutOfStock, item.Status)
}

func TestUpdateItemNotFound(t *testing.T) {
	svc := NewService(newFakeRepo())
	_, err := svc.UpdateItem(context.Background(), "missing", UpdateItemRequest{Quantity: intPtr(1)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestLowStockAlertsSelection(t *testing.T) {
	repo := newFakeRepo()
	repo.items["p1"] = &Item{ProductID: "p1", Quantity: 0, MinThreshold: 10, Status: StockOutOfStock}
	repo.items["p2"] = &Item{ProductID: "p2", Quantity: 3, MinThreshold: 10, Status: StockLowStock}
	repo.items["p3"] = &Item{ProductID: "p3", Quantity: 80, MinThreshold: 10, Status: StockInStock}
	repo.productNames["p1"] = "Glazed Donut"
	repo.productNames["p2"] = "Brisket Taco"
	repo.productNames["p3"] = "Kolache"
	svc := NewService(repo)

	alerts, err := svc.LowStockAlerts(context.Background())
	require.NoError(t, err)
	require.Len(t, alerts, 2)

	byProduct := map[string]*StockAlert{}
	for _, a := range alerts {
		byProduct[a.ProductID] = a
	}
	require.Contains(t, byProduct, "p1")
	require.Contains(t, byProduct, "p2")
	assert.NotContains(t, byProduct, "p3") // in_stock items never alert

	assert.Equal(t, "Glazed Donut", byProduct["p1"].ProductName)
	assert.Equal(t, StockOutOfStock, byProduct["p1"].Status)
	assert.Equal(t, 3, byProduct["p2"].CurrentQuantity)
	assert.Equal(t, 10, byProduct["p2"].MinThreshold)
}

func TestLowStockAlertsSkipDeletedProducts(t *testing.T) {
	repo := newFakeRepo()
	repo.items["gone"] = &Item{ProductID: "gone", Quantity: 0, MinThreshold: 10, Status: StockOutOfStock}
	svc := NewService(repo)

	alerts, err := svc.LowStockAlerts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, alerts)
}

func TestNewItemForProductDefaults(t *testing.T) {
	item := NewItemForProduct("p9")
	assert.Equal(t, "p9", item.ProductID)
	assert.Equal(t, 0, item.Quantity)
	assert.Equal(t, StockOutOfStock, item.Status)
	assert.Equal(t, DefaultMinThreshold, item.MinThreshold)
	assert.Equal(t, DefaultMaxCapacity, item.MaxCapacity)
	assert.NotEmpty(t, item.ID)
}
