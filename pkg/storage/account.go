package storage

import (
	"context"

	"backoffice/pkg/domain"
	"backoffice/pkg/optional"
)

// AccountUpdates lists the optional account fields of a partial update.
type AccountUpdates struct {
	Name  optional.Field[string]
	Email optional.Field[string]
}

// AccountStorage defines CRUD operations on accounts. A duplicate email is
// reported as ErrDuplicateKey; lookups return nil when nothing matches.
type AccountStorage interface {
	StoreAccount(ctx context.Context, account domain.Account) (*domain.Account, error)
	AccountByID(ctx context.Context, id domain.AccountID) (*domain.Account, error)
	// AccountsByIDs returns the accounts matching ids in no particular order.
	AccountsByIDs(ctx context.Context, ids ...domain.AccountID) ([]domain.Account, error)
	// Accounts lists all accounts ordered by id.
	Accounts(ctx context.Context) ([]domain.Account, error)
	UpdateAccount(ctx context.Context, id domain.AccountID, updates AccountUpdates) (*domain.Account, error)
	DeleteAccount(ctx context.Context, id domain.AccountID) (bool, error)
}
