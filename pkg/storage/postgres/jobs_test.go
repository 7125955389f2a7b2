package postgres_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"backoffice/internal/orders"
	"backoffice/pkg/domain"
	"backoffice/pkg/storage/postgres"

	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivertest"
	"github.com/stretchr/testify/require"
)

func notificationArgs() orders.NotificationJobArgs {
	return orders.NotificationJobArgs{NewOrderEvent: domain.NewOrderEvent{
		OrderID:   1,
		Total:     "29.99",
		CreatedAt: time.Now().UTC(),
	}}
}

func migrateRiver(t *testing.T, storage *postgres.PgSQL) {
	t.Helper()
	applied, err := storage.MigrateRiver(t.Context())
	require.NoError(t, err)
	require.NotEmpty(t, applied)
}

func TestPgSQL_AddJob_WithinTransaction_UsesTxPath(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	migrateRiver(t, pg)

	ctx := context.Background()

	// Start a transaction to force the *sql.Tx code path in AddJob.
	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	defer func() { _ = txStorage.Rollback() }()

	_, err = txStorage.AddJob(ctx, notificationArgs(), nil)
	require.NoError(t, err)
	rivertest.RequireInsertedTx[*riverdatabasesql.Driver](
		ctx,
		t,
		txStorage.(*postgres.PgSQL).DB.(*sql.Tx),
		&orders.NotificationJobArgs{},
		&rivertest.RequireInsertedOpts{MaxAttempts: 1, Queue: orders.NotificationQueue},
	)
}

func TestPgSQL_AddJob_OutsideTransaction_UsesDBPath(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	migrateRiver(t, pg)

	ctx := context.Background()

	_, err := pg.AddJob(ctx, notificationArgs(), nil)
	require.NoError(t, err)
	rivertest.RequireInserted[*riverdatabasesql.Driver](
		ctx,
		t,
		riverdatabasesql.New(pg.DB.(*sql.DB)),
		&orders.NotificationJobArgs{},
		&rivertest.RequireInsertedOpts{MaxAttempts: 1, Queue: orders.NotificationQueue},
	)
}

func TestPgSQL_AddJob_RolledBackTransaction_LeavesNoJob(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	migrateRiver(t, pg)

	ctx := context.Background()

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	_, err = txStorage.AddJob(ctx, notificationArgs(), nil)
	require.NoError(t, err)
	require.NoError(t, txStorage.Rollback())

	rivertest.RequireNotInserted[*riverdatabasesql.Driver](
		ctx,
		t,
		riverdatabasesql.New(pg.DB.(*sql.DB)),
		&orders.NotificationJobArgs{},
		nil,
	)
}
