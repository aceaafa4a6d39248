package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/AniketMankoo/DietHorizon/controllers/order"
	productControllers "github.com/AniketMankoo/DietHorizon/controllers/product"
	userControllers "github.com/AniketMankoo/DietHorizon/controllers/user"
	"github.com/AniketMankoo/DietHorizon/middleware"
	"github.com/AniketMankoo/DietHorizon/models"
)

// SetupAdminRoutes registers all "/api/admin/*" endpoints. Requires a valid
// token and the admin role.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/api/admin")
	adminGroup.Use(middleware.ValidateToken(db), middleware.RequireRoles(models.RoleAdmin))
	{
		// ─────────── User Management ───────────
		adminGroup.GET("/users", userControllers.GetAllUsers(db))
		adminGroup.PUT("/users/:id/role", userControllers.AssignRole(db))
		adminGroup.DELETE("/users/:id", userControllers.DeleteUser(db))

		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productControllers.CreateProduct(db))
			productAdmin.PUT("/:id", productControllers.UpdateProduct(db))
			productAdmin.DELETE("/:id", productControllers.DeleteProduct(db))
		}

		// ─────────── Category Management ───────────
		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.POST("", productControllers.CreateCategory(db))
			categoryAdmin.PUT("/:id", productControllers.UpdateCategory(db))
			categoryAdmin.DELETE("/:id", productControllers.DeleteCategory(db))
		}

		// ─────────── Order Management ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrdersHandler(db))
			orderAdmin.PUT("/:id", orderControllers.AdminUpdateOrderHandler(db))
		}
	}
}
