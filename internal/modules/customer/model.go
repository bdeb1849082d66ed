package customer

import (
	"time"
)

// Customer is a loyalty-tracked patron. The running totals are only ever
// advanced by the sales pipeline; no endpoint sets them directly.
type Customer struct {
	ID            string    `bson:"_id" json:"id"`
	Name          string    `bson:"name" json:"name"`
	Email         string    `bson:"email,omitempty" json:"email,omitempty"`
	Phone         string    `bson:"phone,omitempty" json:"phone,omitempty"`
	TotalOrders   int       `bson:"total_orders" json:"total_orders"`
	TotalSpent    float64   `bson:"total_spent" json:"total_spent"`
	LoyaltyPoints int       `bson:"loyalty_points" json:"loyalty_points"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
}

// CreateCustomerRequest is the payload for registering a customer.
type CreateCustomerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}
