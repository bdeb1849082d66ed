package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Service defines employee business logic.
type Service interface {
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (*Employee, error)
	ListEmployees(ctx context.Context) ([]*Employee, error)
}

type service struct{ repo Repository }

// NewService creates a new employee service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (*Employee, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	role := Role(req.Role)
	if !ValidRole(role) {
		return nil, fmt.Errorf("invalid role: %s", req.Role)
	}

	wage := DefaultHourlyWage
	if req.HourlyWage != nil {
		wage = *req.HourlyWage
	}

	e := &Employee{
		ID:         uuid.NewString(),
		Name:       req.Name,
		Role:       role,
		Email:      req.Email,
		Phone:      req.Phone,
		HourlyWage: wage,
		HireDate:   time.Now().UTC(),
		IsActive:   true,
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *service) ListEmployees(ctx context.Context) ([]*Employee, error) {
	return s.repo.ListActive(ctx)
}
