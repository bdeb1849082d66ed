package product

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Service defines catalog business logic.
type Service interface {
	CreateProduct(ctx context.Context, req CreateProductRequest) (*Product, error)
	GetProduct(ctx context.Context, id string) (*Product, error)
	ListProducts(ctx context.Context, category string) ([]*Product, error)
	UpdateProduct(ctx context.Context, id string, req UpdateProductRequest) (*Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

// InventoryStore is the slice of the inventory layer the catalog maintains
// alongside products: every product owns exactly one inventory document for
// its whole lifetime.
type InventoryStore interface {
	CreateForProduct(ctx context.Context, productID string) error
	DeleteByProduct(ctx context.Context, productID string) error
}

type service struct {
	repo      Repository
	inventory InventoryStore
}

// NewService creates a new product service.
func NewService(repo Repository, inventory InventoryStore) Service {
	return &service{repo: repo, inventory: inventory}
}

func (s *service) CreateProduct(ctx context.Context, req CreateProductRequest) (*Product, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	category := Category(req.Category)
	if !ValidCategory(category) {
		return nil, fmt.Errorf("invalid category: %s", req.Category)
	}
	if req.Price < 0 {
		return nil, fmt.Errorf("price must be >= 0")
	}
	if req.Cost < 0 {
		return nil, fmt.Errorf("cost must be >= 0")
	}

	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}
	ingredients := req.Ingredients
	if ingredients == nil {
		ingredients = []string{}
	}

	now := time.Now().UTC()
	p := &Product{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Category:    category,
		Price:       req.Price,
		Cost:        req.Cost,
		Description: req.Description,
		Ingredients: ingredients,
		PrepTime:    req.PrepTime,
		IsAvailable: available,
		ImageURL:    req.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	if err := s.inventory.CreateForProduct(ctx, p.ID); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) GetProduct(ctx context.Context, id string) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListProducts(ctx context.Context, category string) ([]*Product, error) {
	c := Category(category)
	if category != "" && !ValidCategory(c) {
		return nil, fmt.Errorf("invalid category: %s", category)
	}
	return s.repo.List(ctx, c)
}

func (s *service) UpdateProduct(ctx context.Context, id string, req UpdateProductRequest) (*Product, error) {
	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Category != nil {
		if !ValidCategory(Category(*req.Category)) {
			return nil, fmt.Errorf("invalid category: %s", *req.Category)
		}
		fields["category"] = *req.Category
	}
	if req.Price != nil {
		fields["price"] = *req.Price
	}
	if req.Cost != nil {
		fields["cost"] = *req.Cost
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Ingredients != nil {
		fields["ingredients"] = *req.Ingredients
	}
	if req.PrepTime != nil {
		fields["prep_time"] = *req.PrepTime
	}
	if req.IsAvailable != nil {
		fields["is_available"] = *req.IsAvailable
	}
	if req.ImageURL != nil {
		fields["image_url"] = *req.ImageURL
	}
	fields["updated_at"] = time.Now().UTC()

	return s.repo.Update(ctx, id, fields)
}

func (s *service) DeleteProduct(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	// Cascade: the paired inventory document goes with the product.
	return s.inventory.DeleteByProduct(ctx, id)
}
