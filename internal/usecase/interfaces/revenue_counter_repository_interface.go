package interfaces

import (
	"context"
	"errors"

	"shop_orders/internal/domain/entities"
)

// ErrCounterChanged is returned by Overwrite when the counter was written
// after the expected version was read.
var ErrCounterChanged = errors.New("revenue counter changed since read")

// IRevenueCounterRepository abstracts the per-shop running revenue total.
type IRevenueCounterRepository interface {
	// Get returns the counter, or a zero counter (empty ShopID) when absent.
	Get(ctx context.Context, shopID string) (entities.RevenueCounter, error)
	// Apply atomically adds the deltas, creating the counter when absent.
	Apply(ctx context.Context, shopID string, revenueDelta float64, ordersDelta int) (entities.RevenueCounter, error)
	// Overwrite replaces the counter with recomputed figures, provided the
	// stored version still equals expectedVersion (0 for an absent counter).
	Overwrite(ctx context.Context, counter entities.RevenueCounter, expectedVersion int64) error
}
