package postgres

import (
	"context"
	"fmt"

	"backoffice/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const ordersTable = "orders"

// StoreOrder inserts a new order. An unknown customer yields storage.ErrForeignKey.
func (p *PgSQL) StoreOrder(ctx context.Context, order domain.Order) (*domain.Order, error) {
	var row PgOrder
	row.FromDomain(order)

	var stored PgOrder
	if _, err := p.Builder.Insert(ordersTable).
		Rows(goqu.Record{
			"total":       goqu.L("?::numeric", row.Total),
			"customer_id": row.CustomerID,
		}).
		Returning(&PgOrder{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, translateError(fmt.Errorf("could not insert order into pg: %w", err))
	}

	return stored.ToDomain(), nil
}

func (p *PgSQL) OrderByID(ctx context.Context, id domain.OrderID) (*domain.Order, error) {
	var row PgOrder
	found, err := p.Builder.From(ordersTable).
		Where(goqu.I("id").Eq(int64(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, translateError(fmt.Errorf("could not fetch order by id: %w", err))
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// Orders lists orders newest first.
func (p *PgSQL) Orders(ctx context.Context) ([]domain.Order, error) {
	var rows []PgOrder
	if err := p.Builder.From(ordersTable).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, translateError(fmt.Errorf("could not list orders from pg: %w", err))
	}

	return pgOrdersToDomain(rows), nil
}

func (p *PgSQL) DeleteOrder(ctx context.Context, id domain.OrderID) (bool, error) {
	res, err := p.Builder.Delete(ordersTable).
		Where(goqu.I("id").Eq(int64(id))).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, translateError(fmt.Errorf("could not delete order in pg: %w", err))
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not read affected rows: %w", err)
	}

	return n > 0, nil
}
