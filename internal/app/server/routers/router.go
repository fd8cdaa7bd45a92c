package routers

import (
	"github.com/gin-gonic/gin"

	"mvmall/internal/app/pkg/logger"
	"mvmall/internal/app/server/handlers/order"
	"mvmall/internal/app/server/handlers/store"
	"mvmall/internal/app/server/middlewares"
)

// SetupRoutes 配置所有路由，使用 Route Group 分类
func SetupRoutes(
	orderHandler *order.OrderHandler,
	storeHandler *store.StoreHandler,
	log logger.Logger,
) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.CORS())
	r.Use(middlewares.Logger(log))
	r.Use(middlewares.ErrorHandler())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "mvmall",
			"message": "Service is running",
		})
	})

	v1 := r.Group("/api/v1")
	{
		orders := v1.Group("/orders")
		{
			orders.POST("", orderHandler.Create)
			orders.GET("", orderHandler.ListByCustomer)
			orders.GET("/:id", orderHandler.Get)
			orders.GET("/number/:number", orderHandler.GetByNumber)
			orders.PATCH("/:id/status", orderHandler.UpdateStatus)
		}

		storeOrders := v1.Group("/store-orders")
		{
			storeOrders.PATCH("/:id/status", orderHandler.UpdateStoreOrderStatus)
		}

		stores := v1.Group("/stores")
		{
			stores.GET("/:id/orders", storeHandler.ListOrders)
		}

		stats := v1.Group("/stats")
		{
			stats.GET("/orders", orderHandler.Stats)
		}
	}

	return r
}
