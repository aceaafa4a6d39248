package planControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AniketMankoo/DietHorizon/apperrors"
	"github.com/AniketMankoo/DietHorizon/models"
)

type ExerciseInput struct {
	Name        string `json:"name" binding:"required"`
	Sets        int    `json:"sets" binding:"required,min=1"`
	Reps        int    `json:"reps" binding:"required,min=1"`
	Rest        string `json:"rest"`
	Description string `json:"description"`
	Day         int    `json:"day"`
}

type CreateWorkoutPlanInput struct {
	Title       string          `json:"title" binding:"required"`
	Description string          `json:"description"`
	UserID      string          `json:"userId" binding:"required"`
	Duration    int             `json:"duration"`
	Exercises   []ExerciseInput `json:"exercises" binding:"required,min=1,dive"`
}

// POST /api/workout-plans (trainer)
func CreateWorkoutPlan(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		trainerID := c.GetString("user_id")

		var input CreateWorkoutPlanInput
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

		exercises := make([]models.Exercise, 0, len(input.Exercises))
		for _, e := range input.Exercises {
			day := e.Day
			if day <= 0 {
				day = 1
			}
			exercises = append(exercises, models.Exercise{
				Name:        e.Name,
				Sets:        e.Sets,
				Reps:        e.Reps,
				Rest:        e.Rest,
				Description: e.Description,
				Day:         day,
			})
		}

		plan := models.WorkoutPlan{
			Title:       input.Title,
			Description: input.Description,
			UserID:      input.UserID,
			TrainerID:   trainerID,
			Duration:    duration,
			Status:      models.PlanStatusActive,
			Exercises:   exercises,
		}
		if err := db.Create(&plan).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create workout plan"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "Workout plan created successfully",
			"data":    plan,
		})
	}
}

// GET /api/workout-plans
func GetUserWorkoutPlans(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var plans []models.WorkoutPlan
		if err := db.Where("user_id = ?", userID).
			Preload("Exercises").
			Preload("Trainer").
			Order("created_at DESC").
			Find(&plans).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch workout plans"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "count": len(plans), "data": plans})
	}
}

// GET /api/workout-plans/trainer
func GetTrainerWorkoutPlans(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		trainerID := c.GetString("user_id")

		var plans []models.WorkoutPlan
		if err := db.Where("trainer_id = ?", trainerID).
			Preload("Exercises").
			Preload("User").
			Order("created_at DESC").
			Find(&plans).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch workout plans"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "count": len(plans), "data": plans})
	}
}

// GET /api/workout-plans/:id
func GetWorkoutPlan(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		role := callerRole(c)

		var plan models.WorkoutPlan
		err := db.Preload("Exercises").
			Preload("User").
			Preload("Trainer").
			First(&plan, c.Param("id")).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": apperrors.ErrPlanNotFound.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch workout plan"})
			return
		}

		if plan.UserID != userID && plan.TrainerID != userID && role != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": apperrors.ErrForbidden.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": plan})
	}
}

// PUT /api/workout-plans/:id/status
func UpdateWorkoutPlanStatus(db *gorm.DB) gin.HandlerFunc {
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

		var plan models.WorkoutPlan
		if err := db.First(&plan, c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": apperrors.ErrPlanNotFound.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch workout plan"})
			return
		}

		if plan.TrainerID != userID && role != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": apperrors.ErrForbidden.Error()})
			return
		}

		if err := db.Model(&plan).Update("status", input.Status).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update workout plan"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Workout plan updated", "data": plan})
	}
}

// DELETE /api/workout-plans/:id
func DeleteWorkoutPlan(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		role := callerRole(c)

		var plan models.WorkoutPlan
		if err := db.First(&plan, c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": apperrors.ErrPlanNotFound.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch workout plan"})
			return
		}

		if plan.TrainerID != userID && role != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": apperrors.ErrForbidden.Error()})
			return
		}

		if err := db.Select("Exercises").Delete(&plan).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete workout plan"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Workout plan deleted successfully"})
	}
}
