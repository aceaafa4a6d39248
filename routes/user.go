package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	authControllers "github.com/AniketMankoo/DietHorizon/controllers/auth"
	cartControllers "github.com/AniketMankoo/DietHorizon/controllers/cart"
	productControllers "github.com/AniketMankoo/DietHorizon/controllers/product"
	userControllers "github.com/AniketMankoo/DietHorizon/controllers/user"
	"github.com/AniketMankoo/DietHorizon/middleware"
)

// SetupUserRoutes registers the public catalog endpoints and the
// JWT-protected profile and cart endpoints.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	// ──────────────── Public Catalog ────────────────
	r.GET("/api/products", productControllers.GetProducts(db))
	r.GET("/api/products/:id", productControllers.GetProductByID(db))
	r.GET("/api/categories", productControllers.GetAllCategories(db))
	r.GET("/api/categories/:id/products", productControllers.GetCategoryWithProducts(db))

	// ──────────────── User Profile ────────────────
	userGroup := r.Group("/api/users")
	userGroup.Use(middleware.ValidateToken(db))
	{
		userGroup.GET("/profile", userControllers.GetProfile(db))
		userGroup.PUT("/profile", userControllers.UpdateProfile(db))
		userGroup.PUT("/change-password", authControllers.ChangePassword(db))
	}

	// ──────────────── Shopping Cart ────────────────
	cartGroup := r.Group("/api/cart")
	cartGroup.Use(middleware.ValidateToken(db))
	{
		cartGroup.GET("", cartControllers.GetCart(db))
		cartGroup.POST("/add", cartControllers.AddToCart(db))
		cartGroup.PUT("/items", cartControllers.UpdateCartItem(db))
		cartGroup.GET("/summary", cartControllers.GetCartSummary(db))
		cartGroup.DELETE("/:productId", cartControllers.RemoveCartItem(db))
		cartGroup.DELETE("", cartControllers.ClearCart(db))
	}
}
