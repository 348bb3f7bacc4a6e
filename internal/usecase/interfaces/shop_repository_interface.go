package interfaces

import (
	"context"

	"shop_orders/internal/domain/entities"
)

// IShopRepository abstracts DynamoDB persistence for Shop.
type IShopRepository interface {
	GetByID(ctx context.Context, id string) (entities.Shop, error)
	ListActive(ctx context.Context) ([]entities.Shop, error)
}
