package routes

import (
	"log"
	"net/http"

	_ "shop_orders/docs" // swag init output
	"shop_orders/internal/adapter/http/handlers"
	"shop_orders/internal/adapter/http/middleware"
	"shop_orders/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies are the handlers and collaborators the router mounts.
type Dependencies struct {
	Orders    *handlers.OrderHandler
	Revenue   *handlers.RevenueHandler
	Shops     interfaces.IShopRepository
	JWTSecret string
}

// NewRouter builds the HTTP router of the service.
func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addShopRoutes(v1, deps)
	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(middleware.RequestID())
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
