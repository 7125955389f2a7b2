package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues river jobs next to the rows they describe.
type JobStorage interface {
	// AddJob inserts a job. On a transactional handle the job is only visible
	// to workers after Commit, so a new-order event never announces an order
	// that was rolled back. The bool is false when a unique job already
	// existed and nothing was inserted.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
