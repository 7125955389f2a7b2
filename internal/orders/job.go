package orders

import (
	"backoffice/pkg/domain"

	"github.com/riverqueue/river"
)

// NotificationQueue is the river queue new-order notifications run on.
const NotificationQueue = "notifications"

// NotificationJobArgs carries a new-order event from the transaction that
// created the order to the worker that broadcasts it. Being inserted in that
// transaction, the job only becomes visible once the order is committed.
type NotificationJobArgs struct {
	domain.NewOrderEvent
}

// Kind returns the River job kind used to register and dispatch the notification worker.
func (args NotificationJobArgs) Kind() string { return "NewOrderNotification" }

// InsertOpts makes delivery best-effort: a notification that fails is
// discarded rather than retried.
func (args NotificationJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: 1,
		Queue:       NotificationQueue,
	}
}
