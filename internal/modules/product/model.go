package product

import (
	"time"
)

// Category is the closed set of menu categories the shop sells.
type Category string

const (
	CategoryDonuts     Category = "donuts"
	CategoryTacos      Category = "tacos"
	CategoryKolaches   Category = "kolaches"
	CategoryCroissants Category = "croissants"
	CategoryCoffee     Category = "coffee"
	CategoryBeverages  Category = "beverages"
)

// ValidCategory reports whether c is a recognized category.
func ValidCategory(c Category) bool {
	switch c {
	case CategoryDonuts, CategoryTacos, CategoryKolaches,
		CategoryCroissants, CategoryCoffee, CategoryBeverages:
		return true
	}
	return false
}

// Product is a menu item in the shop's catalog.
type Product struct {
	ID          string    `bson:"_id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Category    Category  `bson:"category" json:"category"`
	Price       float64   `bson:"price" json:"price"`
	Cost        float64   `bson:"cost" json:"cost"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Ingredients []string  `bson:"ingredients" json:"ingredients"`
	PrepTime    int       `bson:"prep_time" json:"prep_time"` // minutes
	IsAvailable bool      `bson:"is_available" json:"is_available"`
	ImageURL    string    `bson:"image_url,omitempty" json:"image_url,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// CreateProductRequest is the payload for adding a product to the catalog.
type CreateProductRequest struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Price       float64  `json:"price"`
	Cost        float64  `json:"cost"`
	Description string   `json:"description,omitempty"`
	Ingredients []string `json:"ingredients,omitempty"`
	PrepTime    int      `json:"prep_time,omitempty"`
	IsAvailable *bool    `json:"is_available,omitempty"`
	ImageURL    string   `json:"image_url,omitempty"`
}

// UpdateProductRequest is a partial update; nil fields are left unchanged.
type UpdateProductRequest struct {
	Name        *string   `json:"name,omitempty"`
	Category    *string   `json:"category,omitempty"`
	Price       *float64  `json:"price,omitempty"`
	Cost        *float64  `json:"cost,omitempty"`
	Description *string   `json:"description,omitempty"`
	Ingredients *[]string `json:"ingredients,omitempty"`
	PrepTime    *int      `json:"prep_time,omitempty"`
	IsAvailable *bool     `json:"is_available,omitempty"`
	ImageURL    *string   `json:"image_url,omitempty"`
}
