package entities

import "time"

// RevenueWindow is the revenue and completed-order count of one time bucket.
type RevenueWindow struct {
	Revenue float64
	Orders  int
}

// AverageOrderValue is Revenue/Orders, or 0 when the window is empty.
func (w RevenueWindow) AverageOrderValue() float64 {
	if w.Orders == 0 {
		return 0
	}
	return w.Revenue / float64(w.Orders)
}

func (w *RevenueWindow) add(amount float64) {
	w.Revenue += amount
	w.Orders++
}

// RevenueStats is a derived view over the completed orders of a shop.
//
// Today, Week (starting Monday) and Month are bucketed by completion time;
// Total includes every completed order, with or without a completion time.
type RevenueStats struct {
	ShopID      string
	Today       RevenueWindow
	Week        RevenueWindow
	Month       RevenueWindow
	Total       RevenueWindow
	LastUpdated time.Time
}

// SameFigures reports whether two stats carry identical numbers, ignoring
// LastUpdated.
func (s RevenueStats) SameFigures(other RevenueStats) bool {
	return s.ShopID == other.ShopID &&
		s.Today == other.Today &&
		s.Week == other.Week &&
		s.Month == other.Month &&
		s.Total == other.Total
}

// RevenueBounds are the window starts used to bucket completed orders.
type RevenueBounds struct {
	StartOfToday time.Time
	StartOfWeek  time.Time
	StartOfMonth time.Time
}

// NewRevenueBounds computes the window starts for now in loc. Weeks start on
// Monday.
func NewRevenueBounds(now time.Time, loc *time.Location) RevenueBounds {
	if loc == nil {
		loc = time.UTC
	}
	local := now.In(loc)
	today := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	offset := (int(today.Weekday()) + 6) % 7
	return RevenueBounds{
		StartOfToday: today,
		StartOfWeek:  today.AddDate(0, 0, -offset),
		StartOfMonth: time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc),
	}
}

// Accumulate adds a completed order to the stats. Orders that are not
// completed are ignored; orders without a completion time only count towards
// the total.
func (s *RevenueStats) Accumulate(o Order, b RevenueBounds) {
	if !o.IsCompleted() {
		return
	}
	s.Total.add(o.TotalAmount)
	if o.CompletedAt == nil {
		return
	}
	at := *o.CompletedAt
	if !at.Before(b.StartOfToday) {
		s.Today.add(o.TotalAmount)
	}
	if !at.Before(b.StartOfWeek) {
		s.Week.add(o.TotalAmount)
	}
	if !at.Before(b.StartOfMonth) {
		s.Month.add(o.TotalAmount)
	}
}

// RevenueCounter is the persisted running total maintained by the order
// trigger, one document per shop.
//
// Storage model (DynamoDB):
//   - PK: shopId
//
// Version is bumped by every write and guards recomputed overwrites.
type RevenueCounter struct {
	ShopID       string
	TotalRevenue float64
	TotalOrders  int
	LastUpdated  time.Time
	Version      int64
}

// DailyRevenue maps an ISO date (YYYY-MM-DD) to the completed-order total of
// that day.
type DailyRevenue map[string]float64

// DateLayout is the key format of DailyRevenue.
const DateLayout = "2006-01-02"
