package handlers

import (
	"errors"
	"net/http"

	request "shop_orders/internal/adapter/http/dto/request"
	"shop_orders/internal/usecase"
	"shop_orders/internal/usecase/interfaces"
	"shop_orders/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidShopID), errors.Is(err, usecase.ErrInvalidOrderStatus):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidStatusTransition):
		return pkg.NewDomainError("INVALID_STATUS_TRANSITION", "Status transition not allowed", err, http.StatusConflict)
	case errors.Is(err, interfaces.ErrConcurrentModification):
		return pkg.NewDomainErrorSimple("CONCURRENT_MODIFICATION", "Order was modified concurrently, try again", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func mapRevenueError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidShopID), errors.Is(err, usecase.ErrInvalidDateRange), errors.Is(err, request.ErrInvalidDate):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, interfaces.ErrCounterChanged):
		return pkg.NewDomainErrorSimple("CONCURRENT_MODIFICATION", "Revenue counter kept changing during reconcile, try again", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
