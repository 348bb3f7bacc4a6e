package request

import (
	"errors"
	"strings"

	"shop_orders/internal/domain/entities"
)

var ErrMissingStatus = errors.New("status is required")

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ResolveStatus normalizes the requested status. Validation against the known
// statuses is left to the lifecycle policy.
func (r UpdateOrderStatusRequest) ResolveStatus() (entities.OrderStatus, error) {
	s := entities.NormalizeOrderStatus(r.Status)
	if s == "" {
		return "", ErrMissingStatus
	}
	return s, nil
}

type CancelOrderRequest struct {
	Reason string `json:"reason"`
}

func (r CancelOrderRequest) ResolveReason() string {
	return strings.TrimSpace(r.Reason)
}

// StatusFilter normalizes the ?status= query parameter. Empty means every
// status.
func StatusFilter(raw string) entities.OrderStatus {
	return entities.NormalizeOrderStatus(raw)
}
