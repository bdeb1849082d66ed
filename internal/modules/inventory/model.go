package inventory

import (
	"time"

	"github.com/google/uuid"
)

// Default stocking parameters applied when a product is first created.
const (
	DefaultMinThreshold = 10
	DefaultMaxCapacity  = 100
)

// Item tracks on-hand stock for a single product (1:1 with Product).
type Item struct {
	ID            string      `bson:"_id" json:"id"`
	ProductID     string      `bson:"product_id" json:"product_id"`
	Quantity      int         `bson:"quantity" json:"quantity"`
	MinThreshold  int         `bson:"min_threshold" json:"min_threshold"`
	MaxCapacity   int         `bson:"max_capacity" json:"max_capacity"`
	Status        StockStatus `bson:"status" json:"status"`
	LastRestocked time.Time   `bson:"last_restocked" json:"last_restocked"`
	ExpiryDate    *time.Time  `bson:"expiry_date,omitempty" json:"expiry_date,omitempty"`
}

// NewItemForProduct builds the inventory document a freshly created product
// starts with: empty and out of stock.
func NewItemForProduct(productID string) *Item {
	return &Item{
		ID:            uuid.NewString(),
		ProductID:     productID,
		Quantity:      0,
		MinThreshold:  DefaultMinThreshold,
		MaxCapacity:   DefaultMaxCapacity,
		Status:        StockOutOfStock,
		LastRestocked: time.Now().UTC(),
	}
}

// UpdateItemRequest is a partial update; nil fields are left unchanged.
type UpdateItemRequest struct {
	Quantity     *int `json:"quantity,omitempty"`
	MinThreshold *int `json:"min_threshold,omitempty"`
	MaxCapacity  *int `json:"max_capacity,omitempty"`
}

// StockAlert is a low-stock warning joined against the product catalog.
type StockAlert struct {
	ProductName     string      `json:"product_name"`
	ProductID       string      `json:"product_id"`
	CurrentQuantity int         `json:"current_quantity"`
	MinThreshold    int         `json:"min_threshold"`
	Status          StockStatus `json:"status"`
}
