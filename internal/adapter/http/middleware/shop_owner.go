package middleware

import (
	"log"
	"net/http"
	"strings"

	"shop_orders/internal/domain/entities"
	"shop_orders/internal/usecase/interfaces"
	"shop_orders/pkg"

	"github.com/gin-gonic/gin"
)

const (
	ParamShopID    = "shop_id"
	ContextKeyShop = "shop"
)

var (
	errShopNotFound  = pkg.NewDomainErrorSimple("SHOP_NOT_FOUND", "Shop not found", http.StatusNotFound)
	errShopForbidden = pkg.NewDomainErrorSimple("FORBIDDEN", "Shop belongs to another owner", http.StatusForbidden)
)

// RequireShopOwner loads the :shop_id shop and, when a user is authenticated,
// requires it to be the shop owner.
func RequireShopOwner(shops interfaces.IShopRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		shopID := strings.TrimSpace(c.Param(ParamShopID))
		if shopID == "" {
			c.AbortWithStatusJSON(errShopNotFound.HTTPStatus, errShopNotFound.ToHTTPError())
			return
		}

		shop, err := shops.GetByID(c.Request.Context(), shopID)
		if err != nil {
			log.Printf("[auth][middleware] shop lookup failed shop_id=%s err=%v", shopID, err)
			appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		if shop.ID == "" {
			c.AbortWithStatusJSON(errShopNotFound.HTTPStatus, errShopNotFound.ToHTTPError())
			return
		}

		if user := UserID(c); user != "" && user != shop.OwnerID {
			log.Printf("[auth][middleware] ownership denied shop_id=%s user_id=%s", shopID, user)
			c.AbortWithStatusJSON(errShopForbidden.HTTPStatus, errShopForbidden.ToHTTPError())
			return
		}

		c.Set(ContextKeyShop, shop)
		c.Next()
	}
}

// Shop returns the shop loaded by RequireShopOwner.
func Shop(c *gin.Context) (entities.Shop, bool) {
	v, ok := c.Get(ContextKeyShop)
	if !ok {
		return entities.Shop{}, false
	}
	shop, ok := v.(entities.Shop)
	return shop, ok
}
