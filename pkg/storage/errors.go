package storage

import "errors"

// Common errors returned by storage implementations.
var (
	// ErrAlreadyInTx is returned when an operation requiring a non-transactional
	// context is attempted while already inside a transaction.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned when a transaction-specific operation is attempted
	// while not currently inside a transaction.
	ErrNotInTx = errors.New("not in tx")
	// ErrDuplicateKey is returned when a write violates a primary key or unique
	// constraint, e.g. a second membership for the same (region, locale) pair.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrForeignKey is returned when a write references a row that does not exist.
	ErrForeignKey = errors.New("foreign key violation")
)
