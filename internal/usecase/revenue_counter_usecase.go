package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"shop_orders/internal/domain/entities"
	"shop_orders/internal/usecase/interfaces"
)

// IRevenueCounterUseCase maintains the persisted per-shop revenue counter,
// which is the source of truth for stored revenue. It is driven by order
// writes and periodically reconciled against the completed-order set.
type IRevenueCounterUseCase interface {
	OnOrderWritten(ctx context.Context, change entities.OrderChange) error
	Reconcile(ctx context.Context, shopID string) (entities.RevenueCounter, error)
	ReconcileAll(ctx context.Context) error
}

const maxReconcileAttempts = 3

type RevenueCounterUseCase struct {
	orders   interfaces.IOrderRepository
	counters interfaces.IRevenueCounterRepository
	shops    interfaces.IShopRepository
	now      func() time.Time
}

var _ IRevenueCounterUseCase = (*RevenueCounterUseCase)(nil)

func NewRevenueCounterUseCase(orders interfaces.IOrderRepository, counters interfaces.IRevenueCounterRepository, shops interfaces.IShopRepository) *RevenueCounterUseCase {
	return &RevenueCounterUseCase{
		orders:   orders,
		counters: counters,
		shops:    shops,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// OnOrderWritten applies one order write to the counter:
//
//   - entering completed adds (amount, 1)
//   - leaving completed (undo, cancel, delete) subtracts (previous amount, 1)
//   - an amount change on a completed order adjusts revenue only
func (u *RevenueCounterUseCase) OnOrderWritten(ctx context.Context, change entities.OrderChange) error {
	shopID := change.ShopID()
	if shopID == "" {
		return nil
	}

	wasCompleted := change.Before != nil && change.Before.IsCompleted()
	isCompleted := change.After != nil && change.After.IsCompleted()

	var (
		revenueDelta float64
		ordersDelta  int
	)
	switch {
	case !wasCompleted && isCompleted:
		revenueDelta, ordersDelta = change.After.TotalAmount, 1
	case wasCompleted && !isCompleted:
		revenueDelta, ordersDelta = -change.Before.TotalAmount, -1
	case wasCompleted && isCompleted:
		revenueDelta = change.After.TotalAmount - change.Before.TotalAmount
	}
	if revenueDelta == 0 && ordersDelta == 0 {
		return nil
	}

	c, err := u.counters.Apply(ctx, shopID, revenueDelta, ordersDelta)
	if err != nil {
		log.Printf("[revenue][counter] apply failed shop_id=%s revenue_delta=%.2f orders_delta=%d err=%v", shopID, revenueDelta, ordersDelta, err)
		return err
	}
	log.Printf("[revenue][counter] applied shop_id=%s revenue_delta=%.2f orders_delta=%d total_revenue=%.2f total_orders=%d",
		shopID, revenueDelta, ordersDelta, c.TotalRevenue, c.TotalOrders)
	return nil
}

// Reconcile recomputes the counter from the completed orders and overwrites
// the stored one. The overwrite only lands if no increment was applied while
// the orders were being listed; otherwise the recompute starts over.
func (u *RevenueCounterUseCase) Reconcile(ctx context.Context, shopID string) (entities.RevenueCounter, error) {
	shopID = strings.TrimSpace(shopID)
	if shopID == "" {
		return entities.RevenueCounter{}, ErrInvalidShopID
	}

	for attempt := 1; attempt <= maxReconcileAttempts; attempt++ {
		c, err := u.reconcileOnce(ctx, shopID)
		if errors.Is(err, interfaces.ErrCounterChanged) {
			log.Printf("[revenue][counter] counter moved during reconcile shop_id=%s attempt=%d", shopID, attempt)
			continue
		}
		if err != nil {
			return entities.RevenueCounter{}, err
		}
		log.Printf("[revenue][counter] reconciled shop_id=%s total_revenue=%.2f total_orders=%d", shopID, c.TotalRevenue, c.TotalOrders)
		return c, nil
	}
	return entities.RevenueCounter{}, interfaces.ErrCounterChanged
}

func (u *RevenueCounterUseCase) reconcileOnce(ctx context.Context, shopID string) (entities.RevenueCounter, error) {
	// The version must be read before the orders are listed.
	current, err := u.counters.Get(ctx, shopID)
	if err != nil {
		return entities.RevenueCounter{}, err
	}
	orders, err := u.orders.ListByShop(ctx, shopID, entities.OrderStatusCompleted)
	if err != nil {
		return entities.RevenueCounter{}, err
	}
	c := entities.RevenueCounter{ShopID: shopID, LastUpdated: u.now(), Version: current.Version + 1}
	for _, o := range orders {
		if !o.IsCompleted() {
			continue
		}
		c.TotalRevenue += o.TotalAmount
		c.TotalOrders++
	}
	if err := u.counters.Overwrite(ctx, c, current.Version); err != nil {
		return entities.RevenueCounter{}, err
	}
	return c, nil
}

// ReconcileAll reconciles every active shop. Failures for one shop do not stop
// the others; they are joined into the returned error.
func (u *RevenueCounterUseCase) ReconcileAll(ctx context.Context) error {
	shops, err := u.shops.ListActive(ctx)
	if err != nil {
		return err
	}

	var errs []error
	for _, s := range shops {
		if ctx.Err() != nil {
			errs = append(errs, ctx.Err())
			break
		}
		if _, err := u.Reconcile(ctx, s.ID); err != nil {
			log.Printf("[revenue][counter] reconcile failed shop_id=%s err=%v", s.ID, err)
			errs = append(errs, err)
		}
	}
	log.Printf("[revenue][counter] reconcile-all done shops=%d failures=%d", len(shops), len(errs))
	return errors.Join(errs...)
}
