package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/AniketMankoo/DietHorizon/controllers/order"
	"github.com/AniketMankoo/DietHorizon/middleware"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orders := r.Group("/api/orders")
	orders.Use(middleware.ValidateToken(db))
	{
		// Convert the user's cart into an order
		orders.POST("", orderControllers.PlaceOrderHandler(db))

		// Own orders, newest first
		orders.GET("", orderControllers.GetMyOrdersHandler(db))

		// Single order detail (owner or admin)
		orders.GET("/:id", orderControllers.GetOrderByIDHandler(db))

		// Cancel (owner or admin, Pending/Processing only)
		orders.PUT("/:id/cancel", orderControllers.CancelOrderHandler(db))
	}
}
