package handlers

import (
	"log"
	"net/http"
	"time"

	request "shop_orders/internal/adapter/http/dto/request"
	response "shop_orders/internal/adapter/http/dto/response"
	"shop_orders/internal/domain/entities"
	"shop_orders/internal/usecase"

	"github.com/gin-gonic/gin"
)

// RevenueHandler serves the revenue dashboard endpoints.
type RevenueHandler struct {
	revenue  usecase.IRevenueUseCase
	counters usecase.IRevenueCounterUseCase
	loc      *time.Location
}

func NewRevenueHandler(revenue usecase.IRevenueUseCase, counters usecase.IRevenueCounterUseCase, loc *time.Location) *RevenueHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &RevenueHandler{revenue: revenue, counters: counters, loc: loc}
}

// GetRevenueStats godoc
// @Summary      Revenue for today, this week, this month and all time
// @Tags         revenue
// @Produce      json
// @Param        shop_id  path  string  true  "Shop ID"
// @Success      200  {object}  response.RevenueStatsResponse
// @Security     Bearer
// @Router       /shops/{shop_id}/revenue [get]
func (h *RevenueHandler) GetRevenueStats(c *gin.Context) {
	shopID := c.Param(paramShopID)

	stats, err := h.revenue.GetRevenueStats(c.Request.Context(), shopID)
	if err != nil {
		writeError(c, mapRevenueError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRevenueStats(stats))
}

// StreamRevenueStats godoc
// @Summary      Live revenue stats (server-sent events)
// @Tags         revenue
// @Produce      text/event-stream
// @Param        shop_id  path  string  true  "Shop ID"
// @Security     Bearer
// @Router       /shops/{shop_id}/revenue/stream [get]
func (h *RevenueHandler) StreamRevenueStats(c *gin.Context) {
	shopID := c.Param(paramShopID)

	updates, err := h.revenue.SubscribeRevenueStats(c.Request.Context(), shopID)
	if err != nil {
		writeError(c, mapRevenueError(err))
		return
	}

	streamEvents(c, "revenue", updates, func(v entities.RevenueStats) any { return response.FromRevenueStats(v) })
}

// GetDailyRevenue godoc
// @Summary      Completed-order revenue per creation day
// @Tags         revenue
// @Produce      json
// @Param        shop_id  path   string  true  "Shop ID"
// @Param        start    query  string  true  "First day (YYYY-MM-DD)"
// @Param        end      query  string  true  "Last day (YYYY-MM-DD)"
// @Success      200  {object}  response.DailyRevenueResponse
// @Failure      400  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /shops/{shop_id}/revenue/daily [get]
func (h *RevenueHandler) GetDailyRevenue(c *gin.Context) {
	shopID := c.Param(paramShopID)

	var q request.DailyRevenueQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	start, end, err := q.Resolve(h.loc)
	if err != nil {
		writeError(c, mapRevenueError(err))
		return
	}

	daily, err := h.revenue.GetDailyRevenue(c.Request.Context(), shopID, start, end)
	if err != nil {
		writeError(c, mapRevenueError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDailyRevenue(shopID, daily))
}

// GetRevenueCounter godoc
// @Summary      Persisted running revenue total
// @Tags         revenue
// @Produce      json
// @Param        shop_id  path  string  true  "Shop ID"
// @Success      200  {object}  response.RevenueCounterResponse
// @Security     Bearer
// @Router       /shops/{shop_id}/revenue/counter [get]
func (h *RevenueHandler) GetRevenueCounter(c *gin.Context) {
	shopID := c.Param(paramShopID)

	counter, err := h.revenue.GetRevenueCounter(c.Request.Context(), shopID)
	if err != nil {
		writeError(c, mapRevenueError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRevenueCounter(counter))
}

// ReconcileRevenueCounter godoc
// @Summary      Rebuild the running total from completed orders
// @Tags         revenue
// @Produce      json
// @Param        shop_id  path  string  true  "Shop ID"
// @Success      200  {object}  response.RevenueCounterResponse
// @Failure      409  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /shops/{shop_id}/revenue/counter/reconcile [post]
func (h *RevenueHandler) ReconcileRevenueCounter(c *gin.Context) {
	shopID := c.Param(paramShopID)

	counter, err := h.counters.Reconcile(c.Request.Context(), shopID)
	if err != nil {
		log.Printf("[revenue][handler] reconcile failed shop_id=%s err=%v", shopID, err)
		writeError(c, mapRevenueError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromRevenueCounter(counter))
}
