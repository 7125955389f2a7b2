package orders

import (
	"context"
	"encoding/json"

	"backoffice/pkg/domain"
)

// CreateInput describes a new order. Total is a non-negative decimal with at
// most two fraction digits.
type CreateInput struct {
	Total      json.Number       `json:"total"      validate:"required"`
	CustomerID *domain.AccountID `json:"customerId" validate:"omitempty,gt=0"`
}

//go:generate mockgen -package mockorders -source=interface.go -destination=mock/mockorders.go Orders
type Orders interface {
	// Create stores an order and schedules its new_order notification.
	Create(ctx context.Context, input CreateInput) (*domain.Order, error)
	// List returns all orders newest first, with their customers.
	List(ctx context.Context) ([]domain.Order, error)
	Get(ctx context.Context, id domain.OrderID) (*domain.Order, error)
	Delete(ctx context.Context, id domain.OrderID) error
}
