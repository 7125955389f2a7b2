package orders

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"backoffice/pkg/domain"
	"backoffice/pkg/serrors"
	"backoffice/pkg/storage"

	"github.com/go-playground/validator/v10"
)

// ErrOrderNotFound is returned (as serrors.ErrNotFound) for unknown order ids.
var ErrOrderNotFound = errors.New("order not found")

// totalPattern matches what fits a NUMERIC(12,2) column.
var totalPattern = regexp.MustCompile(`^\d{1,10}(\.\d{1,2})?$`)

// orders is the concrete implementation of the Orders interface.
type orders struct {
	storage  storage.Storage
	validate *validator.Validate
}

// New creates an Orders service backed by the provided storage.
func New(storage storage.Storage) Orders {
	return &orders{
		storage:  storage,
		validate: serrors.NewValidator(),
	}
}

func notFound(id domain.OrderID) error {
	return serrors.Wrap(serrors.ErrNotFound, ErrOrderNotFound, "order %d", id)
}

func unknownCustomer(id domain.AccountID) error {
	return serrors.With(serrors.ErrBadRequest, "customer %d does not exist", id)
}

// Create stores the order and, in the same transaction, enqueues the job
// announcing it. A failure in either leaves nothing behind.
func (o *orders) Create(ctx context.Context, input CreateInput) (*domain.Order, error) {
	if err := o.validate.Struct(input); err != nil {
		return nil, serrors.Invalid(err, "order")
	}
	if !totalPattern.MatchString(input.Total.String()) {
		return nil, serrors.With(serrors.ErrBadRequest,
			"invalid total %q: expected a non-negative amount with at most two decimals", input.Total).
			WithViolations(serrors.FieldViolation{Field: "total", Rule: "decimal"})
	}

	var order *domain.Order
	if err := o.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		var customer *domain.Account
		if input.CustomerID != nil {
			var err error
			customer, err = tx.AccountByID(ctx, *input.CustomerID)
			if err != nil {
				return fmt.Errorf("could not get customer: %w", err)
			}
			if customer == nil {
				return unknownCustomer(*input.CustomerID)
			}
		}

		stored, err := tx.StoreOrder(ctx, domain.Order{
			Total:      input.Total.String(),
			CustomerID: input.CustomerID,
		})
		if errors.Is(err, storage.ErrForeignKey) && input.CustomerID != nil {
			return unknownCustomer(*input.CustomerID)
		}
		if err != nil {
			return fmt.Errorf("could not store order: %w", err)
		}
		stored.Customer = customer
		order = stored

		if _, err := tx.AddJob(ctx, NotificationJobArgs{
			NewOrderEvent: domain.NewOrderEvent{
				OrderID:    stored.ID,
				CustomerID: stored.CustomerID,
				Total:      stored.Total,
				CreatedAt:  stored.CreatedAt,
			},
		}, nil); err != nil {
			return fmt.Errorf("could not add notification job: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not create order: %w", err)
	}

	return order, nil
}

func (o *orders) List(ctx context.Context) ([]domain.Order, error) {
	res, err := o.storage.Orders(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list orders: %w", err)
	}

	if err := o.withCustomers(ctx, res); err != nil {
		return nil, err
	}

	return res, nil
}

func (o *orders) Get(ctx context.Context, id domain.OrderID) (*domain.Order, error) {
	res, err := o.storage.OrderByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get order: %w", err)
	}
	if res == nil {
		return nil, notFound(id)
	}

	single := []domain.Order{*res}
	if err := o.withCustomers(ctx, single); err != nil {
		return nil, err
	}

	return &single[0], nil
}

// withCustomers fills Customer of every order that has one, with a single
// lookup for all of them.
func (o *orders) withCustomers(ctx context.Context, list []domain.Order) error {
	seen := make(map[domain.AccountID]struct{})
	ids := make([]domain.AccountID, 0, len(list))
	for _, order := range list {
		if order.CustomerID == nil {
			continue
		}
		if _, ok := seen[*order.CustomerID]; !ok {
			seen[*order.CustomerID] = struct{}{}
			ids = append(ids, *order.CustomerID)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	customers, err := o.storage.AccountsByIDs(ctx, ids...)
	if err != nil {
		return fmt.Errorf("could not get customers: %w", err)
	}

	byID := make(map[domain.AccountID]*domain.Account, len(customers))
	for i := range customers {
		byID[customers[i].ID] = &customers[i]
	}
	for i := range list {
		if list[i].CustomerID != nil {
			list[i].Customer = byID[*list[i].CustomerID]
		}
	}

	return nil
}

func (o *orders) Delete(ctx context.Context, id domain.OrderID) error {
	deleted, err := o.storage.DeleteOrder(ctx, id)
	if err != nil {
		return fmt.Errorf("could not delete order: %w", err)
	}
	if !deleted {
		return notFound(id)
	}

	return nil
}
