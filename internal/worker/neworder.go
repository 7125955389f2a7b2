package worker

import (
	"context"

	"backoffice/internal/events"
	"backoffice/internal/orders"
	"backoffice/pkg/logger"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// NewOrderWorker announces committed orders to the admin channel. Delivery
// is best-effort: a failed publish cancels the job instead of retrying it.
type NewOrderWorker struct {
	river.WorkerDefaults[orders.NotificationJobArgs]

	publisher events.Publisher
}

// NewNewOrderWorker constructs a NewOrderWorker publishing through publisher.
func NewNewOrderWorker(publisher events.Publisher) *NewOrderWorker {
	return &NewOrderWorker{publisher: publisher}
}

// Work publishes the new_order event of the job.
func (w *NewOrderWorker) Work(ctx context.Context, job *river.Job[orders.NotificationJobArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.Int64("orderID", int64(job.Args.OrderID)))

	if err := w.publisher.Publish(ctx, events.NewOrderMessage(job.Args.NewOrderEvent)); err != nil {
		logger.Error(ctx, "could not publish new order event", zap.Error(err))

		return river.JobCancel(err) //nolint: wrapcheck
	}

	logger.Debug(ctx, "new order event published")

	return nil
}
