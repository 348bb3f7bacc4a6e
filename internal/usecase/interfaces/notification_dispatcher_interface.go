package interfaces

import (
	"context"

	"shop_orders/internal/domain/entities"
)

// INotificationDispatcher sends order notifications in the background.
// Implementations must not block the caller and never report failures back.
type INotificationDispatcher interface {
	DispatchOrderCompleted(ctx context.Context, order entities.Order)
}
