// Package storage defines the persistence port of the backoffice: regions and
// their locale memberships, accounts, orders and background jobs. Services
// depend on these interfaces only; pkg/storage/postgres implements them.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go -exclude_interfaces=TxStorage
package storage

import "context"

// AllStorage is everything a service may do with the store, inside a
// transaction or not.
type AllStorage interface {
	RegionStorage
	AccountStorage
	OrderStorage
	JobStorage
}

// TxStorage is a handle bound to one transaction. It is unusable after Commit
// or Rollback.
type TxStorage interface {
	AllStorage

	Commit() error
	Rollback() error
}

// Storage is the root handle created at startup and closed on shutdown.
type Storage interface {
	AllStorage

	// Close releases the connection pool.
	Close() error
	// Ping reports whether the store is reachable.
	Ping(ctx context.Context) error

	// Begin starts a transaction. Nested transactions are not supported.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx runs cb in a transaction that commits when cb returns nil and
	// rolls back otherwise. Every check and write of a catalog operation
	// happens inside one callback.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
