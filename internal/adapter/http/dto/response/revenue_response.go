package response

import (
	"sort"
	"time"

	"shop_orders/internal/domain/entities"
)

type RevenueWindowResponse struct {
	Revenue           float64 `json:"revenue"`
	Orders            int     `json:"orders"`
	AverageOrderValue float64 `json:"average_order_value"`
}

type RevenueStatsResponse struct {
	ShopID      string                `json:"shop_id"`
	Today       RevenueWindowResponse `json:"today"`
	Week        RevenueWindowResponse `json:"week"`
	Month       RevenueWindowResponse `json:"month"`
	Total       RevenueWindowResponse `json:"total"`
	LastUpdated time.Time             `json:"last_updated"`
}

func fromWindow(w entities.RevenueWindow) RevenueWindowResponse {
	return RevenueWindowResponse{Revenue: w.Revenue, Orders: w.Orders, AverageOrderValue: w.AverageOrderValue()}
}

func FromRevenueStats(s entities.RevenueStats) RevenueStatsResponse {
	return RevenueStatsResponse{
		ShopID:      s.ShopID,
		Today:       fromWindow(s.Today),
		Week:        fromWindow(s.Week),
		Month:       fromWindow(s.Month),
		Total:       fromWindow(s.Total),
		LastUpdated: s.LastUpdated,
	}
}

type RevenueCounterResponse struct {
	ShopID       string     `json:"shop_id"`
	TotalRevenue float64    `json:"total_revenue"`
	TotalOrders  int        `json:"total_orders"`
	LastUpdated  *time.Time `json:"last_updated,omitempty"`
}

func FromRevenueCounter(c entities.RevenueCounter) RevenueCounterResponse {
	out := RevenueCounterResponse{ShopID: c.ShopID, TotalRevenue: c.TotalRevenue, TotalOrders: c.TotalOrders}
	if !c.LastUpdated.IsZero() {
		at := c.LastUpdated
		out.LastUpdated = &at
	}
	return out
}

type DailyRevenuePoint struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

type DailyRevenueResponse struct {
	ShopID string              `json:"shop_id"`
	Days   []DailyRevenuePoint `json:"days"`
	Total  float64             `json:"total"`
}

// FromDailyRevenue flattens the date map into a slice sorted by date.
func FromDailyRevenue(shopID string, d entities.DailyRevenue) DailyRevenueResponse {
	out := DailyRevenueResponse{ShopID: shopID, Days: make([]DailyRevenuePoint, 0, len(d))}
	for date, revenue := range d {
		out.Days = append(out.Days, DailyRevenuePoint{Date: date, Revenue: revenue})
		out.Total += revenue
	}
	sort.Slice(out.Days, func(i, j int) bool { return out.Days[i].Date < out.Days[j].Date })
	return out
}
