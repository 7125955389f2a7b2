package domain

import "time"

// AccountID identifies an account.
type AccountID int64

// Account is a customer record. Email is unique across accounts.
type Account struct {
	ID    AccountID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
