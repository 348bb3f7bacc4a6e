package routes

import (
	"shop_orders/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathShop    = "/shops/:" + middleware.ParamShopID
	PathOrders  = "/orders"
	PathRevenue = "/revenue"
)

func addShopRoutes(rg *gin.RouterGroup, deps Dependencies) {
	shop := rg.Group(PathShop, middleware.JWTAuth(deps.JWTSecret), middleware.RequireShopOwner(deps.Shops))

	orders := shop.Group(PathOrders)
	{
		orders.GET("", deps.Orders.ListOrders)
		orders.GET("/stream", deps.Orders.StreamOrders)
		orders.GET("/:order_id", deps.Orders.GetOrder)
		orders.PATCH("/:order_id/status", deps.Orders.UpdateOrderStatus)
		orders.POST("/:order_id/cancel", deps.Orders.CancelOrder)
		orders.POST("/:order_id/complete", deps.Orders.CompleteOrder)
		orders.POST("/:order_id/undo-completion", deps.Orders.UndoCompletion)
	}

	revenue := shop.Group(PathRevenue)
	{
		revenue.GET("", deps.Revenue.GetRevenueStats)
		revenue.GET("/stream", deps.Revenue.StreamRevenueStats)
		revenue.GET("/daily", deps.Revenue.GetDailyRevenue)
		revenue.GET("/counter", deps.Revenue.GetRevenueCounter)
		revenue.POST("/counter/reconcile", deps.Revenue.ReconcileRevenueCounter)
	}
}
