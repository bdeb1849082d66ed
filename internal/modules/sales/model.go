package sales

import (
	"time"
)

// OrderType indicates how the customer took their order.
type OrderType string

const (
	OrderDineIn   OrderType = "dine_in"
	OrderTakeout  OrderType = "takeout"
	OrderCatering OrderType = "catering"
)

// ValidOrderType reports whether t is a recognized order type.
func ValidOrderType(t OrderType) bool {
	switch t {
	case OrderDineIn, OrderTakeout, OrderCatering:
		return true
	}
	return false
}

// LineItem is one product/quantity/price tuple within a sale. The price is
// denormalized at sale time and never reconciled against the catalog.
type LineItem struct {
	ProductID string  `bson:"product_id" json:"product_id"`
	Quantity  int     `bson:"quantity" json:"quantity"`
	Price     float64 `bson:"price" json:"price"`
}

// Sale is an immutable record of one completed transaction.
type Sale struct {
	ID            string     `bson:"_id" json:"id"`
	Items         []LineItem `bson:"items" json:"items"`
	TotalAmount   float64    `bson:"total_amount" json:"total_amount"`
	PaymentMethod string     `bson:"payment_method" json:"payment_method"`
	CustomerName  string     `bson:"customer_name,omitempty" json:"customer_name,omitempty"`
	EmployeeID    string     `bson:"employee_id,omitempty" json:"employee_id,omitempty"`
	Timestamp     time.Time  `bson:"timestamp" json:"timestamp"`
	OrderType     OrderType  `bson:"order_type" json:"order_type"`
}

// CreateSaleRequest is the payload for recording a sale.
type CreateSaleRequest struct {
	Items         []LineItem `json:"items"`
	TotalAmount   float64    `json:"total_amount"`
	PaymentMethod string     `json:"payment_method,omitempty"`
	CustomerName  string     `json:"customer_name,omitempty"`
	EmployeeID    string     `json:"employee_id,omitempty"`
	OrderType     string     `json:"order_type,omitempty"`
}

// PopularItem is one entry in the daily top-sellers ranking.
type PopularItem struct {
	Name         string `json:"name"`
	QuantitySold int    `json:"quantity_sold"`
	Category     string `json:"category"`
}

// DailyAnalytics summarizes sales since the start of the current UTC day.
type DailyAnalytics struct {
	Date              time.Time     `json:"date"`
	TotalRevenue      float64       `json:"total_revenue"`
	TotalOrders       int           `json:"total_orders"`
	AverageOrderValue float64       `json:"average_order_value"`
	PopularItems      []PopularItem `json:"popular_items"`
}

// CategoryStats accumulates today's sales per product category. Orders
// counts line-item occurrences, not distinct sales.
type CategoryStats struct {
	Revenue  float64 `json:"revenue"`
	Quantity int     `json:"quantity"`
	Orders   int     `json:"orders"`
}
