package accounts

import (
	"context"

	"backoffice/pkg/domain"
	"backoffice/pkg/optional"
)

// CreateInput describes a new account.
type CreateInput struct {
	Name  string `json:"name"  validate:"required,min=2,max=255"`
	Email string `json:"email" validate:"required,email,max=255"`
}

// Update lists the account fields a partial update may change.
type Update struct {
	Name  optional.Field[string] `json:"name"`
	Email optional.Field[string] `json:"email"`
}

//go:generate mockgen -package mockaccounts -source=interface.go -destination=mock/mockaccounts.go Accounts
type Accounts interface {
	Create(ctx context.Context, input CreateInput) (*domain.Account, error)
	// List returns every account ordered by id.
	List(ctx context.Context) ([]domain.Account, error)
	Get(ctx context.Context, id domain.AccountID) (*domain.Account, error)
	Update(ctx context.Context, id domain.AccountID, update Update) (*domain.Account, error)
	Delete(ctx context.Context, id domain.AccountID) error
}
