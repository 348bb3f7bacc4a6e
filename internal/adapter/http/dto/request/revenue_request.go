package request

import (
	"errors"
	"strings"
	"time"

	"shop_orders/internal/domain/entities"
)

var ErrInvalidDate = errors.New("dates must use the YYYY-MM-DD format")

type DailyRevenueQuery struct {
	Start string `form:"start" binding:"required"`
	End   string `form:"end" binding:"required"`
}

// Resolve parses both dates as local days in loc.
func (q DailyRevenueQuery) Resolve(loc *time.Location) (time.Time, time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	start, err := time.ParseInLocation(entities.DateLayout, strings.TrimSpace(q.Start), loc)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDate
	}
	end, err := time.ParseInLocation(entities.DateLayout, strings.TrimSpace(q.End), loc)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDate
	}
	return start, end, nil
}
