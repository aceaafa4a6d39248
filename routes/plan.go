package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	planControllers "github.com/AniketMankoo/DietHorizon/controllers/plan"
	"github.com/AniketMankoo/DietHorizon/middleware"
	"github.com/AniketMankoo/DietHorizon/models"
)

func SetupPlanRoutes(r *gin.Engine, db *gorm.DB) {
	trainerOnly := middleware.RequireRoles(models.RoleTrainer, models.RoleAdmin)

	dietGroup := r.Group("/api/diet-plans")
	dietGroup.Use(middleware.ValidateToken(db))
	{
		dietGroup.GET("", planControllers.GetUserDietPlans(db))
		dietGroup.GET("/trainer", trainerOnly, planControllers.GetTrainerDietPlans(db))
		dietGroup.GET("/:id", planControllers.GetDietPlan(db))
		dietGroup.POST("", trainerOnly, planControllers.CreateDietPlan(db))
		dietGroup.PUT("/:id/status", trainerOnly, planControllers.UpdateDietPlanStatus(db))
		dietGroup.DELETE("/:id", trainerOnly, planControllers.DeleteDietPlan(db))
	}

	workoutGroup := r.Group("/api/workout-plans")
	workoutGroup.Use(middleware.ValidateToken(db))
	{
		workoutGroup.GET("", planControllers.GetUserWorkoutPlans(db))
		workoutGroup.GET("/trainer", trainerOnly, planControllers.GetTrainerWorkoutPlans(db))
		workoutGroup.GET("/:id", planControllers.GetWorkoutPlan(db))
		workoutGroup.POST("", trainerOnly, planControllers.CreateWorkoutPlan(db))
		workoutGroup.PUT("/:id/status", trainerOnly, planControllers.UpdateWorkoutPlanStatus(db))
		workoutGroup.DELETE("/:id", trainerOnly, planControllers.DeleteWorkoutPlan(db))
	}
}
