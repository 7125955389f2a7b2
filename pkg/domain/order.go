package domain

import "time"

// OrderID identifies an order.
type OrderID int64

// Order is a purchase record, optionally linked to the account that placed it.
type Order struct {
	ID OrderID `json:"id"`
	// Total is the order amount as a decimal string (e.g. "29.99").
	Total string `json:"total"`
	// CustomerID is nil for anonymous orders or once the account was deleted.
	CustomerID *AccountID `json:"customerId"`
	// Customer is populated on reads when CustomerID refers to an account.
	Customer *Account `json:"customer,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// NewOrderEvent is broadcast to admin observers after an order is durably
// stored.
type NewOrderEvent struct {
	OrderID    OrderID    `json:"orderId"`
	CustomerID *AccountID `json:"customerId"`
	Total      string     `json:"total"`
	CreatedAt  time.Time  `json:"createdAt"`
}
