package accounts

import (
	"context"
	"errors"
	"fmt"

	"backoffice/pkg/domain"
	"backoffice/pkg/serrors"
	"backoffice/pkg/storage"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrAccountNotFound is returned (as serrors.ErrNotFound) for unknown account ids.
	ErrAccountNotFound = errors.New("account not found")
	// ErrEmailTaken is returned (as serrors.ErrConflict) when another account
	// already uses the email.
	ErrEmailTaken = errors.New("email already in use")
)

// accounts is the concrete implementation of the Accounts interface.
type accounts struct {
	storage  storage.Storage
	validate *validator.Validate
}

// New creates an Accounts service backed by the provided storage.
func New(storage storage.Storage) Accounts {
	return &accounts{
		storage:  storage,
		validate: serrors.NewValidator(),
	}
}

func notFound(id domain.AccountID) error {
	return serrors.Wrap(serrors.ErrNotFound, ErrAccountNotFound, "account %d", id)
}

func emailTaken(email string) error {
	return serrors.Wrap(serrors.ErrConflict, ErrEmailTaken, "email %q", email)
}

func (a *accounts) Create(ctx context.Context, input CreateInput) (*domain.Account, error) {
	if err := a.validate.Struct(input); err != nil {
		return nil, serrors.Invalid(err, "account")
	}

	account, err := a.storage.StoreAccount(ctx, domain.Account{Name: input.Name, Email: input.Email})
	if errors.Is(err, storage.ErrDuplicateKey) {
		return nil, emailTaken(input.Email)
	}
	if err != nil {
		return nil, fmt.Errorf("could not store account: %w", err)
	}

	return account, nil
}

func (a *accounts) List(ctx context.Context) ([]domain.Account, error) {
	res, err := a.storage.Accounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list accounts: %w", err)
	}

	return res, nil
}

func (a *accounts) Get(ctx context.Context, id domain.AccountID) (*domain.Account, error) {
	res, err := a.storage.AccountByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get account: %w", err)
	}
	if res == nil {
		return nil, notFound(id)
	}

	return res, nil
}

// Update changes the set fields of an account. An update without fields
// returns the account as it is.
func (a *accounts) Update(ctx context.Context, id domain.AccountID, update Update) (*domain.Account, error) {
	if v, ok := update.Name.Get(); ok {
		if err := a.validate.Var(v, "required,min=2,max=255"); err != nil {
			return nil, serrors.Invalid(err, "name")
		}
	}
	if v, ok := update.Email.Get(); ok {
		if err := a.validate.Var(v, "required,email,max=255"); err != nil {
			return nil, serrors.Invalid(err, "email")
		}
	}

	if !update.Name.IsSet() && !update.Email.IsSet() {
		return a.Get(ctx, id)
	}

	res, err := a.storage.UpdateAccount(ctx, id, storage.AccountUpdates(update))
	if errors.Is(err, storage.ErrDuplicateKey) {
		return nil, emailTaken(update.Email.Value)
	}
	if err != nil {
		return nil, fmt.Errorf("could not update account: %w", err)
	}
	if res == nil {
		return nil, notFound(id)
	}

	return res, nil
}

// Delete removes an account. Its orders are kept without a customer.
func (a *accounts) Delete(ctx context.Context, id domain.AccountID) error {
	deleted, err := a.storage.DeleteAccount(ctx, id)
	if err != nil {
		return fmt.Errorf("could not delete account: %w", err)
	}
	if !deleted {
		return notFound(id)
	}

	return nil
}
