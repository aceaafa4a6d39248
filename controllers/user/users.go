package userControllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AniketMankoo/DietHorizon/apperrors"
	"github.com/AniketMankoo/DietHorizon/models"
)

type UpdateProfileInput struct {
	Name    *string         `json:"name"`
	Email   *string         `json:"email"`
	Phone   *string         `json:"phone"`
	Address *models.Address `json:"address"`
}

type AssignRoleInput struct {
	Role string `json:"role" binding:"required"`
}

// GET /api/users/profile
func GetProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": apperrors.ErrUserNotFound.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": user})
	}
}

// PUT /api/users/profile
func UpdateProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": apperrors.ErrUserNotFound.Error()})
			return
		}

		var input UpdateProfileInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input: " + err.Error()})
			return
		}

		updates := make(map[string]interface{})
		if input.Name != nil {
			updates["name"] = *input.Name
		}
		if input.Email != nil {
			email := strings.ToLower(*input.Email)
			if email != user.Email {
				var existing models.User
				if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
					c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": apperrors.ErrEmailInUse.Error()})
					return
				}
				updates["email"] = email
			}
		}
		if input.Phone != nil {
			updates["phone"] = *input.Phone
		}
		if input.Address != nil {
			updates["street"] = input.Address.Street
			updates["city"] = input.Address.City
			updates["state"] = input.Address.State
			updates["country"] = input.Address.Country
			updates["postal_code"] = input.Address.PostalCode
		}

		if len(updates) > 0 {
			if err := db.Model(&user).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update profile"})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Profile updated successfully",
			"data":    user,
		})
	}
}

// GET /api/admin/users
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User
		if err := db.Order("created_at desc").Find(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch users"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": users})
	}
}

// PUT /api/admin/users/:id/role
func AssignRole(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AssignRoleInput
		if err := c.ShouldBindJSON(&input); err != nil || !models.ValidRole(input.Role) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": apperrors.ErrInvalidRole.Error()})
			return
		}

		var user models.User
		if err := db.First(&user, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": apperrors.ErrUserNotFound.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch user"})
			return
		}

		if err := db.Model(&user).Update("role", input.Role).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update role"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "User role updated successfully",
			"data":    gin.H{"id": user.ID, "role": input.Role},
		})
	}
}

// DELETE /api/admin/users/:id
func DeleteUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Delete(&models.User{}, "id = ?", c.Param("id"))
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete user"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": apperrors.ErrUserNotFound.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "User deleted successfully"})
	}
}
