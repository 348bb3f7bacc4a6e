package handlers

import (
	"log"
	"net/http"

	request "shop_orders/internal/adapter/http/dto/request"
	response "shop_orders/internal/adapter/http/dto/response"
	"shop_orders/internal/domain/entities"
	"shop_orders/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	paramShopID  = "shop_id"
	paramOrderID = "order_id"
)

// OrderHandler serves the shop-scoped order lifecycle endpoints.
type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// ListOrders godoc
// @Summary      List shop orders
// @Tags         orders
// @Produce      json
// @Param        shop_id  path   string  true   "Shop ID"
// @Param        status   query  string  false  "Status filter"
// @Success      200  {array}   response.OrderResponse
// @Failure      400  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /shops/{shop_id}/orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	shopID := c.Param(paramShopID)
	status := request.StatusFilter(c.Query("status"))

	orders, err := h.usecase.ListByShop(c.Request.Context(), shopID, status)
	if err != nil {
		log.Printf("[order][handler] list failed shop_id=%s status=%s err=%v", shopID, status, err)
		writeError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

// StreamOrders godoc
// @Summary      Live order list (server-sent events)
// @Tags         orders
// @Produce      text/event-stream
// @Param        shop_id  path   string  true   "Shop ID"
// @Param        status   query  string  false  "Status filter"
// @Security     Bearer
// @Router       /shops/{shop_id}/orders/stream [get]
func (h *OrderHandler) StreamOrders(c *gin.Context) {
	shopID := c.Param(paramShopID)
	status := request.StatusFilter(c.Query("status"))

	updates, err := h.usecase.SubscribeByShop(c.Request.Context(), shopID, status)
	if err != nil {
		writeError(c, mapOrderError(err))
		return
	}
	log.Printf("[order][handler] stream open shop_id=%s status=%s", shopID, status)

	streamEvents(c, "orders", updates, func(v []entities.Order) any { return response.FromOrders(v) })
	log.Printf("[order][handler] stream closed shop_id=%s", shopID)
}

// GetOrder godoc
// @Summary      Get one order
// @Tags         orders
// @Produce      json
// @Param        shop_id   path  string  true  "Shop ID"
// @Param        order_id  path  string  true  "Order ID"
// @Success      200  {object}  response.OrderResponse
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /shops/{shop_id}/orders/{order_id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, ok := h.shopOrder(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// UpdateOrderStatus godoc
// @Summary      Set the order status
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        shop_id   path  string                            true  "Shop ID"
// @Param        order_id  path  string                            true  "Order ID"
// @Param        body      body  request.UpdateOrderStatusRequest  true  "New status"
// @Success      200  {object}  response.OrderResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /shops/{shop_id}/orders/{order_id}/status [patch]
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	var payload request.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	status, err := payload.ResolveStatus()
	if err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	order, ok := h.shopOrder(c)
	if !ok {
		return
	}

	updated, err := h.usecase.UpdateStatus(c.Request.Context(), order.ID, status)
	if err != nil {
		log.Printf("[order][handler] update-status failed order_id=%s status=%s err=%v", order.ID, status, err)
		writeError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(updated))
}

// CancelOrder godoc
// @Summary      Cancel an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        shop_id   path  string                      true   "Shop ID"
// @Param        order_id  path  string                      true   "Order ID"
// @Param        body      body  request.CancelOrderRequest  false  "Cancellation reason"
// @Success      200  {object}  response.OrderResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /shops/{shop_id}/orders/{order_id}/cancel [post]
func (h *OrderHandler) CancelOrder(c *gin.Context) {
	var payload request.CancelOrderRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			writeError(c, errInvalidRequest)
			return
		}
	}

	order, ok := h.shopOrder(c)
	if !ok {
		return
	}

	updated, err := h.usecase.Cancel(c.Request.Context(), order.ID, payload.ResolveReason())
	if err != nil {
		log.Printf("[order][handler] cancel failed order_id=%s err=%v", order.ID, err)
		writeError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(updated))
}

// CompleteOrder godoc
// @Summary      Mark an order completed and notify the customer
// @Tags         orders
// @Produce      json
// @Param        shop_id   path  string  true  "Shop ID"
// @Param        order_id  path  string  true  "Order ID"
// @Success      200  {object}  response.OrderResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /shops/{shop_id}/orders/{order_id}/complete [post]
func (h *OrderHandler) CompleteOrder(c *gin.Context) {
	shopID, orderID := c.Param(paramShopID), c.Param(paramOrderID)

	updated, err := h.usecase.MarkCompleted(c.Request.Context(), shopID, orderID)
	if err != nil {
		log.Printf("[order][handler] complete failed shop_id=%s order_id=%s err=%v", shopID, orderID, err)
		writeError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(updated))
}

// UndoCompletion godoc
// @Summary      Revert a completed order to pending
// @Tags         orders
// @Produce      json
// @Param        shop_id   path  string  true  "Shop ID"
// @Param        order_id  path  string  true  "Order ID"
// @Success      200  {object}  response.OrderResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /shops/{shop_id}/orders/{order_id}/undo-completion [post]
func (h *OrderHandler) UndoCompletion(c *gin.Context) {
	order, ok := h.shopOrder(c)
	if !ok {
		return
	}

	updated, err := h.usecase.UndoCompletion(c.Request.Context(), order.ID)
	if err != nil {
		log.Printf("[order][handler] undo-completion failed order_id=%s err=%v", order.ID, err)
		writeError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(updated))
}

// shopOrder loads :order_id and hides orders of other shops behind a 404.
func (h *OrderHandler) shopOrder(c *gin.Context) (entities.Order, bool) {
	shopID, orderID := c.Param(paramShopID), c.Param(paramOrderID)

	order, err := h.usecase.GetByID(c.Request.Context(), orderID)
	if err != nil {
		writeError(c, mapOrderError(err))
		return entities.Order{}, false
	}
	if order.ShopID != shopID {
		writeError(c, mapOrderError(usecase.ErrOrderNotFound))
		return entities.Order{}, false
	}
	return order, true
}
