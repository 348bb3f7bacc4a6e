package interfaces

import (
	"context"

	"shop_orders/internal/domain/entities"
)

// IPushGateway abstracts the push notification provider (Firebase Cloud
// Messaging). Any non-success response is returned as an error.
type IPushGateway interface {
	Send(ctx context.Context, deviceToken string, n entities.PushNotification) error
}
