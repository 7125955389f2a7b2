package storage

import (
	"context"

	"backoffice/pkg/domain"
)

// OrderStorage defines persistence of orders. Orders are returned without
// their Customer populated; callers join accounts themselves.
type OrderStorage interface {
	StoreOrder(ctx context.Context, order domain.Order) (*domain.Order, error)
	OrderByID(ctx context.Context, id domain.OrderID) (*domain.Order, error)
	// Orders lists all orders, newest first.
	Orders(ctx context.Context) ([]domain.Order, error)
	DeleteOrder(ctx context.Context, id domain.OrderID) (bool, error)
}
