package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"shop_orders/internal/domain/entities"
	"shop_orders/internal/usecase/interfaces"
)

var (
	ErrOrderNotFound           = errors.New("order not found")
	ErrInvalidOrderID          = errors.New("invalid order id")
	ErrInvalidShopID           = errors.New("invalid shop id")
	ErrInvalidOrderStatus      = errors.New("invalid order status")
	ErrInvalidStatusTransition = errors.New("invalid order status transition")
)

// IOrderUseCase exposes the order lifecycle operations used by the dashboard.
//
//   - UpdateStatus: any status, completedAt stamped only on completion
//   - Cancel: cancelled + reason, completedAt stamped as well
//   - MarkCompleted: transactional completion followed by a customer push
//   - UndoCompletion: transactional revert to pending, completedAt removed
type IOrderUseCase interface {
	GetByID(ctx context.Context, orderID string) (entities.Order, error)
	ListByShop(ctx context.Context, shopID string, status entities.OrderStatus) ([]entities.Order, error)
	SubscribeByShop(ctx context.Context, shopID string, status entities.OrderStatus) (<-chan []entities.Order, error)
	UpdateStatus(ctx context.Context, orderID string, status entities.OrderStatus) (entities.Order, error)
	Cancel(ctx context.Context, orderID, reason string) (entities.Order, error)
	MarkCompleted(ctx context.Context, shopID, orderID string) (entities.Order, error)
	UndoCompletion(ctx context.Context, orderID string) (entities.Order, error)
}

type OrderUseCase struct {
	repo         interfaces.IOrderRepository
	notifier     interfaces.INotificationDispatcher
	policy       TransitionPolicy
	pollInterval time.Duration
	now          func() time.Time
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository, notifier interfaces.INotificationDispatcher, policy TransitionPolicy, pollInterval time.Duration) *OrderUseCase {
	return &OrderUseCase{
		repo:         repo,
		notifier:     notifier,
		policy:       policy,
		pollInterval: pollInterval,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (u *OrderUseCase) GetByID(ctx context.Context, orderID string) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	o, err := u.repo.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) ListByShop(ctx context.Context, shopID string, status entities.OrderStatus) ([]entities.Order, error) {
	shopID = strings.TrimSpace(shopID)
	if shopID == "" {
		return nil, ErrInvalidShopID
	}
	if status != "" && !status.IsKnown() {
		return nil, ErrInvalidOrderStatus
	}

	orders, err := u.repo.ListByShop(ctx, shopID, status)
	if err != nil {
		return nil, err
	}
	sortOrders(orders, status)
	return orders, nil
}

// SubscribeByShop streams the shop's order list, pushing a new snapshot
// whenever it changes. The channel closes when ctx is done.
func (u *OrderUseCase) SubscribeByShop(ctx context.Context, shopID string, status entities.OrderStatus) (<-chan []entities.Order, error) {
	shopID = strings.TrimSpace(shopID)
	if shopID == "" {
		return nil, ErrInvalidShopID
	}
	if status != "" && !status.IsKnown() {
		return nil, ErrInvalidOrderStatus
	}

	fetch := func(ctx context.Context) ([]entities.Order, error) {
		return u.ListByShop(ctx, shopID, status)
	}
	return liveQuery(ctx, "orders", u.pollInterval, fetch, sameOrders), nil
}

func (u *OrderUseCase) UpdateStatus(ctx context.Context, orderID string, status entities.OrderStatus) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	status = entities.NormalizeOrderStatus(string(status))
	if status == "" {
		return entities.Order{}, ErrInvalidOrderStatus
	}
	if u.policy.Strict && !status.IsKnown() {
		return entities.Order{}, ErrInvalidOrderStatus
	}

	m := interfaces.OrderMutation{Status: status}
	if status == entities.OrderStatusCompleted {
		now := u.now()
		m.CompletedAt = &now
	}

	var (
		updated entities.Order
		err     error
	)
	if u.policy.Strict {
		updated, err = u.repo.RunInTransaction(ctx, orderID, func(cur entities.Order) (interfaces.OrderMutation, error) {
			if !u.policy.Allows(cur.Status, status) {
				return interfaces.OrderMutation{}, transitionError(cur.Status, status)
			}
			return m, nil
		})
	} else {
		updated, err = u.repo.Update(ctx, orderID, m)
	}
	if err != nil {
		log.Printf("[order][usecase] update-status failed order_id=%s status=%s err=%v", orderID, status, err)
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	log.Printf("[order][usecase] update-status success order_id=%s status=%s", orderID, updated.Status)
	return updated, nil
}

// Cancel marks the order cancelled. The cancellation time is written to
// completedAt, as existing clients expect.
func (u *OrderUseCase) Cancel(ctx context.Context, orderID, reason string) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	reason = strings.TrimSpace(reason)

	now := u.now()
	m := interfaces.OrderMutation{
		Status:       entities.OrderStatusCancelled,
		CompletedAt:  &now,
		CancelReason: &reason,
	}

	var (
		updated entities.Order
		err     error
	)
	if u.policy.Strict {
		updated, err = u.repo.RunInTransaction(ctx, orderID, func(cur entities.Order) (interfaces.OrderMutation, error) {
			if !u.policy.Allows(cur.Status, entities.OrderStatusCancelled) {
				return interfaces.OrderMutation{}, transitionError(cur.Status, entities.OrderStatusCancelled)
			}
			return m, nil
		})
	} else {
		updated, err = u.repo.Update(ctx, orderID, m)
	}
	if err != nil {
		log.Printf("[order][usecase] cancel failed order_id=%s err=%v", orderID, err)
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	log.Printf("[order][usecase] cancel success order_id=%s reason=%q", orderID, reason)
	return updated, nil
}

// MarkCompleted completes the order in a transaction and, once committed,
// notifies the customer in the background. A failed notification does not
// undo the completion.
func (u *OrderUseCase) MarkCompleted(ctx context.Context, shopID, orderID string) (entities.Order, error) {
	shopID = strings.TrimSpace(shopID)
	if shopID == "" {
		return entities.Order{}, ErrInvalidShopID
	}
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	updated, err := u.repo.RunInTransaction(ctx, orderID, func(cur entities.Order) (interfaces.OrderMutation, error) {
		if cur.ShopID != shopID {
			return interfaces.OrderMutation{}, ErrOrderNotFound
		}
		if !u.policy.Allows(cur.Status, entities.OrderStatusCompleted) {
			return interfaces.OrderMutation{}, transitionError(cur.Status, entities.OrderStatusCompleted)
		}
		now := u.now()
		return interfaces.OrderMutation{Status: entities.OrderStatusCompleted, CompletedAt: &now}, nil
	})
	if err != nil {
		log.Printf("[order][usecase] mark-completed failed shop_id=%s order_id=%s err=%v", shopID, orderID, err)
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	log.Printf("[order][usecase] mark-completed success shop_id=%s order_id=%s user_id=%s", shopID, orderID, updated.CustomerID)

	if u.notifier != nil {
		u.notifier.DispatchOrderCompleted(ctx, updated)
	}
	return updated, nil
}

// UndoCompletion moves the order back to pending and removes completedAt.
func (u *OrderUseCase) UndoCompletion(ctx context.Context, orderID string) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	updated, err := u.repo.RunInTransaction(ctx, orderID, func(cur entities.Order) (interfaces.OrderMutation, error) {
		if !u.policy.AllowsUndo(cur.Status) {
			return interfaces.OrderMutation{}, transitionError(cur.Status, entities.OrderStatusPending)
		}
		return interfaces.OrderMutation{Status: entities.OrderStatusPending, ClearCompletedAt: true}, nil
	})
	if err != nil {
		log.Printf("[order][usecase] undo-completion failed order_id=%s err=%v", orderID, err)
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	log.Printf("[order][usecase] undo-completion success order_id=%s", orderID)
	return updated, nil
}

func transitionError(from, to entities.OrderStatus) error {
	return fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, from, to)
}

// sortOrders orders completed lists by completion time and every other list
// by creation time, newest first. Orders without completedAt go last.
func sortOrders(orders []entities.Order, status entities.OrderStatus) {
	if status == entities.OrderStatusCompleted {
		sort.SliceStable(orders, func(i, j int) bool {
			a, b := orders[i].CompletedAt, orders[j].CompletedAt
			switch {
			case a == nil:
				return false
			case b == nil:
				return true
			default:
				return a.After(*b)
			}
		})
		return
	}
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
}

func sameOrders(a, b []entities.Order) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID || a[i].Status != b[i].Status || a[i].TotalAmount != b[i].TotalAmount ||
			a[i].CancelReason != b[i].CancelReason || !sameTime(a[i].CompletedAt, b[i].CompletedAt) {
			return false
		}
	}
	return true
}

func sameTime(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
