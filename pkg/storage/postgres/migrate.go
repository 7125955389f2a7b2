package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
)

// MigrationStatus reports whether a schema migration has been applied.
type MigrationStatus struct {
	Version int64
	Source  string
	Applied bool
}

// ErrMigrateInTx is returned when migrations are requested on a transactional handle.
var ErrMigrateInTx = errors.New("migrations cannot run inside a transaction")

func (p *PgSQL) sqlDB() (*sql.DB, error) {
	db, ok := p.DB.(*sql.DB)
	if !ok {
		return nil, ErrMigrateInTx
	}

	return db, nil
}

func (p *PgSQL) gooseProvider(migrations fs.FS) (*goose.Provider, error) {
	db, err := p.sqlDB()
	if err != nil {
		return nil, err
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations)
	if err != nil {
		return nil, fmt.Errorf("could not create goose provider: %w", err)
	}

	return provider, nil
}

// Migrate applies every pending goose migration found at the root of
// migrations and returns the versions it applied.
func (p *PgSQL) Migrate(ctx context.Context, migrations fs.FS) ([]int64, error) {
	provider, err := p.gooseProvider(migrations)
	if err != nil {
		return nil, err
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not apply migrations: %w", err)
	}

	applied := make([]int64, 0, len(results))
	for _, r := range results {
		applied = append(applied, r.Source.Version)
	}

	return applied, nil
}

// MigrateDown rolls back the most recently applied goose migration.
func (p *PgSQL) MigrateDown(ctx context.Context, migrations fs.FS) (int64, error) {
	provider, err := p.gooseProvider(migrations)
	if err != nil {
		return 0, err
	}

	result, err := provider.Down(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not roll back migration: %w", err)
	}

	return result.Source.Version, nil
}

// MigrationStatuses lists every known goose migration and whether it is applied.
func (p *PgSQL) MigrationStatuses(ctx context.Context, migrations fs.FS) ([]MigrationStatus, error) {
	provider, err := p.gooseProvider(migrations)
	if err != nil {
		return nil, err
	}

	statuses, err := provider.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get migration status: %w", err)
	}

	out := make([]MigrationStatus, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, MigrationStatus{
			Version: s.Source.Version,
			Source:  s.Source.Path,
			Applied: s.State == goose.StateApplied,
		})
	}

	return out, nil
}

// MigrateRiver creates or upgrades the river job tables to the latest version
// and returns the versions it applied.
func (p *PgSQL) MigrateRiver(ctx context.Context) ([]int, error) {
	db, err := p.sqlDB()
	if err != nil {
		return nil, err
	}

	migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
	if err != nil {
		return nil, fmt.Errorf("could not create river queue migrator: %w", err)
	}

	res, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, nil)
	if err != nil {
		return nil, fmt.Errorf("could not migrate river queue tables: %w", err)
	}

	applied := make([]int, 0, len(res.Versions))
	for _, v := range res.Versions {
		applied = append(applied, v.Version)
	}

	return applied, nil
}
