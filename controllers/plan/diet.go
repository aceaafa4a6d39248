package planControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AniketMankoo/DietHorizon/apperrors"
	"github.com/AniketMankoo/DietHorizon/middleware"
	"github.com/AniketMankoo/DietHorizon/models"
)

type MealInput struct {
	Name        string  `json:"name" binding:"required"`
	Time        string  `json:"time" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Calories    int     `json:"calories" binding:"required"`
	Proteins    float64 `json:"proteins"`
	Carbs       float64 `json:"carbs"`
	Fats        float64 `json:"fats"`
}

type CreateDietPlanInput struct {
	Title       string      `json:"title" binding:"required"`
	Description string      `json:"description"`
	UserID      string      `json:"userId" binding:"required"`
	Duration    int         `json:"duration"`
	Meals       []MealInput `json:"meals" binding:"required,min=1,dive"`
}

type UpdatePlanStatusInput struct {
	Status string `json:"status" binding:"required"`
}

func callerRole(c *gin.Context) models.Role {
	roleVal, _ := c.Get(middleware.ContextUserRole)
	role, _ := roleVal.(models.Role)
	return role
}

// POST /api/diet-plans (trainer)
func CreateDietPlan(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		trainerID := c.GetString("user_id")

		var input CreateDietPlanInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": apperrors.ErrRequiredFields.Error()})
			return
		}

		var user models.User
		if err := db.First(&user, "id = ?", input.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": apperrors.ErrUserNotFound.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to validate user"})
			return
		}

		duration := input.Duration
		if duration <= 0 {
			duration = 7
		}

		meals := make([]models.Meal, 0, len(input.Meals))
		for _, m := range input.Meals {
			meals = append(meals, models.Meal{
				Name:        m.Name,
				Time:        m.Time,
				Description: m.Description,
				Calories:    m.Calories,
				Proteins:    m.Proteins,
				Carbs:       m.Carbs,
				Fats:        m.Fats,
			})
		}

		plan := models.DietPlan{
			Title:       input.Title,
			Description: input.Description,
			UserID:      input.UserID,
			TrainerID:   trainerID,
			Duration:    duration,
			Status:      models.PlanStatusActive,
			Meals:       meals,
		}
		if err := db.Create(&plan).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create diet plan"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "Diet plan created successfully",
			"data":    plan,
		})
	}
}

// GET /api/diet-plans — plans assigned to the current user
func GetUserDietPlans(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var plans []models.DietPlan
		if err := db.Where("user_id = ?", userID).
			Preload("Meals").
			Preload("Trainer").
			Order("created_at DESC").
			Find(&plans).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch diet plans"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "count": len(plans), "data": plans})
	}
}

// GET /api/diet-plans/trainer — plans created by the current trainer
func GetTrainerDietPlans(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		trainerID := c.GetString("user_id")

		var plans []models.DietPlan
		if err := db.Where("trainer_id = ?", trainerID).
			Preload("Meals").
			Preload("User").
			Order("created_at DESC").
			Find(&plans).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch diet plans"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "count": len(plans), "data": plans})
	}
}

// GET /api/diet-plans/:id — owner, assigning trainer, or admin
func GetDietPlan(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		role := callerRole(c)

		var plan models.DietPlan
		err := db.Preload("Meals").
			Preload("User").
			Preload("Trainer").
			First(&plan, c.Param("id")).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": apperrors.ErrPlanNotFound.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch diet plan"})
			return
		}

		if plan.UserID != userID && plan.TrainerID != userID && role != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": apperrors.ErrForbidden.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": plan})
	}
}

// PUT /api/diet-plans/:id/status — assigning trainer or admin
func UpdateDietPlanStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		role := callerRole(c)

		var input UpdatePlanStatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": apperrors.ErrRequiredFields.Error()})
			return
		}

		switch models.PlanStatus(input.Status) {
		case models.PlanStatusActive, models.PlanStatusCompleted, models.PlanStatusCancelled:
		default:
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid plan status"})
			return
		}

		var plan models.DietPlan
		if err := db.First(&plan, c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": apperrors.ErrPlanNotFound.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch diet plan"})
			return
		}

		if plan.TrainerID != userID && role != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": apperrors.ErrForbidden.Error()})
			return
		}

		if err := db.Model(&plan).Update("status", input.Status).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update diet plan"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Diet plan updated", "data": plan})
	}
}

// DELETE /api/diet-plans/:id — assigning trainer or admin
func DeleteDietPlan(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		role := callerRole(c)

		var plan models.DietPlan
		if err := db.First(&plan, c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": apperrors.ErrPlanNotFound.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch diet plan"})
			return
		}

		if plan.TrainerID != userID && role != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": apperrors.ErrForbidden.Error()})
			return
		}

		if err := db.Select("Meals").Delete(&plan).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete diet plan"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Diet plan deleted successfully"})
	}
}
