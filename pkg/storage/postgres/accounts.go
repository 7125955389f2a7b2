package postgres

import (
	"context"
	"fmt"

	"backoffice/pkg/domain"
	"backoffice/pkg/storage"

	"github.com/doug-martin/goqu/v9"
)

const accountsTable = "accounts"

// StoreAccount inserts a new account. A taken email yields storage.ErrDuplicateKey.
func (p *PgSQL) StoreAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	var stored PgAccount
	if _, err := p.Builder.Insert(accountsTable).
		Rows(PgAccount{Name: account.Name, Email: account.Email}).
		Returning(&PgAccount{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, translateError(fmt.Errorf("could not insert account into pg: %w", err))
	}

	return stored.ToDomain(), nil
}

func (p *PgSQL) AccountByID(ctx context.Context, id domain.AccountID) (*domain.Account, error) {
	var row PgAccount
	found, err := p.Builder.From(accountsTable).
		Where(goqu.I("id").Eq(int64(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, translateError(fmt.Errorf("could not fetch account by id: %w", err))
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// AccountsByIDs returns the accounts that exist among ids, in no particular order.
func (p *PgSQL) AccountsByIDs(ctx context.Context, ids ...domain.AccountID) ([]domain.Account, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	raw := make([]int64, len(ids))
	for i, id := range ids {
		raw[i] = int64(id)
	}

	var rows []PgAccount
	if err := p.Builder.From(accountsTable).
		Where(goqu.I("id").In(raw)).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, translateError(fmt.Errorf("could not fetch accounts by ids: %w", err))
	}

	return pgAccountsToDomain(rows), nil
}

func (p *PgSQL) Accounts(ctx context.Context) ([]domain.Account, error) {
	var rows []PgAccount
	if err := p.Builder.From(accountsTable).
		Order(goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, translateError(fmt.Errorf("could not list accounts from pg: %w", err))
	}

	return pgAccountsToDomain(rows), nil
}

func (p *PgSQL) UpdateAccount(ctx context.Context,
	id domain.AccountID,
	updates storage.AccountUpdates) (*domain.Account, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if v, ok := updates.Name.Get(); ok {
		rec["name"] = v
	}
	if v, ok := updates.Email.Get(); ok {
		rec["email"] = v
	}

	var row PgAccount
	found, err := p.Builder.Update(accountsTable).
		Set(rec).
		Where(goqu.I("id").Eq(int64(id))).
		Returning(&PgAccount{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, translateError(fmt.Errorf("could not update account in pg: %w", err))
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// DeleteAccount removes an account. Orders of the account keep existing with
// their customer cleared.
func (p *PgSQL) DeleteAccount(ctx context.Context, id domain.AccountID) (bool, error) {
	res, err := p.Builder.Delete(accountsTable).
		Where(goqu.I("id").Eq(int64(id))).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, translateError(fmt.Errorf("could not delete account in pg: %w", err))
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not read affected rows: %w", err)
	}

	return n > 0, nil
}
