package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up all route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, db)

	// Public catalog + authenticated user routes (JWT-protected)
	SetupUserRoutes(r, db)

	// Order routes (JWT-protected)
	SetupOrderRoutes(r, db)

	// Diet/workout plan routes (JWT-protected, trainer where needed)
	SetupPlanRoutes(r, db)

	// Admin routes (JWT + admin role)
	SetupAdminRoutes(r, db)
}
