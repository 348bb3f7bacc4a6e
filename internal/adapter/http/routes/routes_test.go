package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shop_orders/internal/adapter/http/handlers"
	"shop_orders/internal/adapter/http/handlers/mocks"
	"shop_orders/internal/domain/entities"
	mock_interfaces "shop_orders/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestRouter(ctrl *gomock.Controller) (*gin.Engine, *mocks.MockIOrderUseCase, *mock_interfaces.MockIShopRepository) {
	gin.SetMode(gin.TestMode)
	orders := mocks.NewMockIOrderUseCase(ctrl)
	shops := mock_interfaces.NewMockIShopRepository(ctrl)
	r := NewRouter(Dependencies{
		Orders:  handlers.NewOrderHandler(orders),
		Revenue: handlers.NewRevenueHandler(mocks.NewMockIRevenueUseCase(ctrl), mocks.NewMockIRevenueCounterUseCase(ctrl), time.UTC),
		Shops:   shops,
	})
	return r, orders, shops
}

func TestPing(t *testing.T) {
	ctrl := gomock.NewController(t)
	r, _, _ := newTestRouter(ctrl)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestShopRoutes(t *testing.T) {
	t.Run("unknown shop", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r, _, shops := newTestRouter(ctrl)
		shops.EXPECT().GetByID(gomock.Any(), "shop-9").Return(entities.Shop{}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/shops/shop-9/orders", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("orders listed through the shop group", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r, orders, shops := newTestRouter(ctrl)
		shops.EXPECT().GetByID(gomock.Any(), "shop-1").Return(entities.Shop{ID: "shop-1", OwnerID: "owner-1"}, nil)
		orders.EXPECT().ListByShop(gomock.Any(), "shop-1", entities.OrderStatusPending).
			Return([]entities.Order{{ID: "o-1", ShopID: "shop-1", Status: entities.OrderStatusPending}}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/shops/shop-1/orders?status=pending", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"id":"o-1"`)
	})

	t.Run("stream path is not taken as an order id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r, orders, shops := newTestRouter(ctrl)
		shops.EXPECT().GetByID(gomock.Any(), "shop-1").Return(entities.Shop{ID: "shop-1"}, nil)

		updates := make(chan []entities.Order)
		close(updates)
		orders.EXPECT().SubscribeByShop(gomock.Any(), "shop-1", entities.OrderStatus("")).Return((<-chan []entities.Order)(updates), nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/shops/shop-1/orders/stream", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
