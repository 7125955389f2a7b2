package postgres_test

import (
	"context"
	"testing"
	"time"

	"backoffice"
	"backoffice/pkg/storage/postgres"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// testOptions are the connection settings of the throwaway database. Host and
// Port are filled in once the container is up.
var testOptions = postgres.Options{ //nolint: gochecknoglobals
	Username:           "backoffice",
	Password:           "backoffice",
	Database:           "backoffice_test",
	SslMode:            "disable",
	ConnMaxLifetime:    time.Minute,
	ConnMaxIdleTime:    time.Minute,
	MaxOpenConnections: 5,
	MaxIdleConnections: 5,
}

// startPostgres runs a postgres:17 container and returns options pointing at it.
func startPostgres(ctx context.Context, t *testing.T) (postgres.Options, testcontainers.Container) {
	t.Helper()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     testOptions.Username,
				"POSTGRES_PASSWORD": testOptions.Password,
				"POSTGRES_DB":       testOptions.Database,
			},
			// the server restarts once after initdb
			WaitingFor: wait.ForAll(
				wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
				wait.ForListeningPort("5432/tcp"),
			).WithDeadline(time.Minute),
		},
		Started: true,
	})
	require.NoError(t, err, "could not start postgres container")

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	opts := testOptions
	opts.Host = host
	opts.Port = port.Int()

	return opts, container
}

// setupTestDB starts a fresh database with every schema migration applied.
// River tables are only created by the tests that need them.
func setupTestDB(t *testing.T) (*postgres.PgSQL, func()) {
	t.Helper()
	ctx := context.Background()

	opts, container := startPostgres(ctx, t)

	pgSQL, err := postgres.New(ctx, opts)
	require.NoError(t, err)

	applied, err := pgSQL.Migrate(ctx, backoffice.Migrations())
	require.NoError(t, err)
	require.NotEmpty(t, applied)

	return pgSQL, func() {
		_ = pgSQL.Close()
		_ = container.Terminate(ctx)
	}
}
