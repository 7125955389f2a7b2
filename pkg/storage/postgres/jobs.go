package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"backoffice/pkg/storage"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
)

// txInserter is an insert-only river client. It never runs jobs, so a single
// instance without a database handle serves every transaction.
var txInserter = sync.OnceValues(func() (*river.Client[*sql.Tx], error) { //nolint: gochecknoglobals
	return river.NewClient[*sql.Tx](riverdatabasesql.New(nil), &river.Config{})
})

// AddJob enqueues a river job.
//
// Inside a transaction the job is inserted with InsertTx and only becomes
// visible to workers once the transaction commits. Outside of one, a short
// transaction is opened around the insert.
func (p *PgSQL) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	tx, ok := p.DB.(*sql.Tx)
	if !ok {
		var inserted bool
		err := p.WithTx(ctx, func(s storage.AllStorage) error {
			var err error
			inserted, err = s.AddJob(ctx, args, opts)

			return err
		})

		return inserted, err
	}

	riverClient, err := txInserter()
	if err != nil {
		return false, fmt.Errorf("could not create river queue client: %w", err)
	}

	job, err := riverClient.InsertTx(ctx, tx, args, opts)
	if err != nil {
		return false, translateError(fmt.Errorf("could not insert job: %w", err))
	}

	return !job.UniqueSkippedAsDuplicate, nil
}
