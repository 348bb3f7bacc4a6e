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

const maxDailyRevenueDays = 366

var ErrInvalidDateRange = errors.New("invalid date range")

// IRevenueUseCase exposes read-only revenue views computed from completed
// orders. The persisted counter maintained by IRevenueCounterUseCase is
// exposed here for display only.
type IRevenueUseCase interface {
	GetRevenueStats(ctx context.Context, shopID string) (entities.RevenueStats, error)
	SubscribeRevenueStats(ctx context.Context, shopID string) (<-chan entities.RevenueStats, error)
	GetDailyRevenue(ctx context.Context, shopID string, start, end time.Time) (entities.DailyRevenue, error)
	GetRevenueCounter(ctx context.Context, shopID string) (entities.RevenueCounter, error)
}

type RevenueUseCase struct {
	orders       interfaces.IOrderRepository
	counters     interfaces.IRevenueCounterRepository
	loc          *time.Location
	pollInterval time.Duration
	now          func() time.Time
}

var _ IRevenueUseCase = (*RevenueUseCase)(nil)

func NewRevenueUseCase(orders interfaces.IOrderRepository, counters interfaces.IRevenueCounterRepository, loc *time.Location, pollInterval time.Duration) *RevenueUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &RevenueUseCase{
		orders:       orders,
		counters:     counters,
		loc:          loc,
		pollInterval: pollInterval,
		now:          time.Now,
	}
}

// GetRevenueStats recomputes today/week/month/total revenue from every
// completed order of the shop. Read failures degrade to zeroed stats.
func (u *RevenueUseCase) GetRevenueStats(ctx context.Context, shopID string) (entities.RevenueStats, error) {
	shopID = strings.TrimSpace(shopID)
	if shopID == "" {
		return entities.RevenueStats{}, ErrInvalidShopID
	}

	stats, err := u.computeStats(ctx, shopID)
	if err != nil {
		log.Printf("[revenue][usecase] stats read failed; returning zeroed stats shop_id=%s err=%v", shopID, err)
		return entities.RevenueStats{ShopID: shopID, LastUpdated: u.now().UTC()}, nil
	}
	return stats, nil
}

func (u *RevenueUseCase) SubscribeRevenueStats(ctx context.Context, shopID string) (<-chan entities.RevenueStats, error) {
	shopID = strings.TrimSpace(shopID)
	if shopID == "" {
		return nil, ErrInvalidShopID
	}

	fetch := func(ctx context.Context) (entities.RevenueStats, error) {
		return u.computeStats(ctx, shopID)
	}
	same := func(a, b entities.RevenueStats) bool { return a.SameFigures(b) }
	return liveQuery(ctx, "revenue", u.pollInterval, fetch, same), nil
}

func (u *RevenueUseCase) computeStats(ctx context.Context, shopID string) (entities.RevenueStats, error) {
	// Single equality query, no date filter: windows are cut in memory.
	orders, err := u.orders.ListByShop(ctx, shopID, entities.OrderStatusCompleted)
	if err != nil {
		return entities.RevenueStats{}, err
	}
	now := u.now()
	return AggregateRevenue(shopID, orders, entities.NewRevenueBounds(now, u.loc), now), nil
}

// GetDailyRevenue sums completed orders per creation day in [start, end].
// Every day of the range is present in the result. Read failures degrade to
// an all-zero series.
func (u *RevenueUseCase) GetDailyRevenue(ctx context.Context, shopID string, start, end time.Time) (entities.DailyRevenue, error) {
	shopID = strings.TrimSpace(shopID)
	if shopID == "" {
		return nil, ErrInvalidShopID
	}
	from, to, err := dayRange(start, end, u.loc)
	if err != nil {
		return nil, err
	}

	orders, err := u.orders.ListByShopCreatedBetween(ctx, shopID, entities.OrderStatusCompleted, from, to)
	if err != nil {
		log.Printf("[revenue][usecase] daily read failed; returning zeroed series shop_id=%s err=%v", shopID, err)
		orders = nil
	}
	return BucketDailyRevenue(orders, from, to, u.loc), nil
}

func (u *RevenueUseCase) GetRevenueCounter(ctx context.Context, shopID string) (entities.RevenueCounter, error) {
	shopID = strings.TrimSpace(shopID)
	if shopID == "" {
		return entities.RevenueCounter{}, ErrInvalidShopID
	}

	c, err := u.counters.Get(ctx, shopID)
	if err != nil {
		log.Printf("[revenue][usecase] counter read failed; returning zero counter shop_id=%s err=%v", shopID, err)
		return entities.RevenueCounter{ShopID: shopID}, nil
	}
	if c.ShopID == "" {
		c.ShopID = shopID
	}
	return c, nil
}

// AggregateRevenue accumulates orders in the given order.
func AggregateRevenue(shopID string, orders []entities.Order, bounds entities.RevenueBounds, now time.Time) entities.RevenueStats {
	stats := entities.RevenueStats{ShopID: shopID, LastUpdated: now.UTC()}
	for _, o := range orders {
		stats.Accumulate(o, bounds)
	}
	return stats
}

// BucketDailyRevenue keys completed orders by the local date of createdAt.
// Orders created outside [from, to] are ignored.
func BucketDailyRevenue(orders []entities.Order, from, to time.Time, loc *time.Location) entities.DailyRevenue {
	out := entities.DailyRevenue{}
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		out[d.Format(entities.DateLayout)] = 0
	}
	for _, o := range orders {
		if !o.IsCompleted() || o.CreatedAt.IsZero() {
			continue
		}
		if o.CreatedAt.Before(from) || o.CreatedAt.After(to) {
			continue
		}
		out[o.CreatedAt.In(loc).Format(entities.DateLayout)] += o.TotalAmount
	}
	return out
}

// dayRange expands [start, end] to whole local days: from is the start of the
// first day, to the last instant of the last day.
func dayRange(start, end time.Time, loc *time.Location) (time.Time, time.Time, error) {
	if start.IsZero() || end.IsZero() {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}
	s, e := start.In(loc), end.In(loc)
	from := time.Date(s.Year(), s.Month(), s.Day(), 0, 0, 0, 0, loc)
	lastDay := time.Date(e.Year(), e.Month(), e.Day(), 0, 0, 0, 0, loc)
	if lastDay.Before(from) {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}
	if lastDay.Sub(from) >= maxDailyRevenueDays*24*time.Hour {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}
	to := lastDay.AddDate(0, 0, 1).Add(-time.Nanosecond)
	return from, to, nil
}
