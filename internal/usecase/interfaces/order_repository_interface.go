package interfaces

import (
	"context"
	"errors"
	"time"

	"shop_orders/internal/domain/entities"
)

// ErrConcurrentModification is returned when an optimistic transaction keeps
// losing against concurrent writers.
var ErrConcurrentModification = errors.New("order modified concurrently")

// OrderMutation describes a write to an order document.
//
// Status is always written. CompletedAt is set when non-nil, removed when
// ClearCompletedAt is true. CancelReason is set when non-nil.
type OrderMutation struct {
	Status           entities.OrderStatus
	CompletedAt      *time.Time
	ClearCompletedAt bool
	CancelReason     *string
}

// OrderTxFunc receives the current state of the order inside a transaction
// and returns the mutation to apply. Returning an error aborts the
// transaction without writing.
type OrderTxFunc func(current entities.Order) (OrderMutation, error)

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// Not-found is reported as a zero Order (empty ID) and a nil error.
type IOrderRepository interface {
	GetByID(ctx context.Context, id string) (entities.Order, error)
	// ListByShop returns the shop's orders newest first. An empty status lists
	// every status.
	ListByShop(ctx context.Context, shopID string, status entities.OrderStatus) ([]entities.Order, error)
	// ListByShopCreatedBetween returns orders with createdAt in [from, to].
	ListByShopCreatedBetween(ctx context.Context, shopID string, status entities.OrderStatus, from, to time.Time) ([]entities.Order, error)
	// Update applies the mutation without a read (last write wins).
	Update(ctx context.Context, id string, m OrderMutation) (entities.Order, error)
	// RunInTransaction reads the order, calls fn and writes the mutation only if
	// the order did not change in between, retrying on conflicts.
	RunInTransaction(ctx context.Context, id string, fn OrderTxFunc) (entities.Order, error)
}
