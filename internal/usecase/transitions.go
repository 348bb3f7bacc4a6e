package usecase

import "shop_orders/internal/domain/entities"

// allowedTransitions lists the forward moves the dashboard offers. Terminal
// states have no outgoing transitions.
var allowedTransitions = map[entities.OrderStatus][]entities.OrderStatus{
	entities.OrderStatusPending:   {entities.OrderStatusConfirmed, entities.OrderStatusCancelled},
	entities.OrderStatusConfirmed: {entities.OrderStatusPreparing, entities.OrderStatusCancelled},
	entities.OrderStatusPreparing: {entities.OrderStatusReady, entities.OrderStatusCancelled},
	entities.OrderStatusReady:     {entities.OrderStatusCompleted, entities.OrderStatusCancelled},
}

// TransitionPolicy decides which status writes are accepted.
//
// The permissive policy accepts any non-empty status verbatim, which is what
// existing clients rely on. The strict policy only accepts moves from
// allowedTransitions (and same-status rewrites).
type TransitionPolicy struct {
	Strict bool
}

func PermissivePolicy() TransitionPolicy { return TransitionPolicy{} }

func StrictPolicy() TransitionPolicy { return TransitionPolicy{Strict: true} }

// Allows reports whether an order in status from may be written with status to.
func (p TransitionPolicy) Allows(from, to entities.OrderStatus) bool {
	if !p.Strict {
		return to != ""
	}
	if !to.IsKnown() {
		return false
	}
	if from == to {
		return true
	}
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// AllowsUndo reports whether a completion can be reverted from status from.
// Undoing an already pending order is a no-op and always accepted.
func (p TransitionPolicy) AllowsUndo(from entities.OrderStatus) bool {
	if !p.Strict {
		return true
	}
	return from == entities.OrderStatusCompleted || from == entities.OrderStatusPending
}

// NextStatuses returns the transitions offered from the given status.
func NextStatuses(from entities.OrderStatus) []entities.OrderStatus {
	next := allowedTransitions[from]
	out := make([]entities.OrderStatus, len(next))
	copy(out, next)
	return out
}
