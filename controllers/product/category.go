package productControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AniketMankoo/DietHorizon/apperrors"
	"github.com/AniketMankoo/DietHorizon/models"
)

type CategoryInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// POST /api/admin/categories
func CreateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Category name is required"})
			return
		}

		var existing models.Category
		err := db.Where("name = ?", input.Name).First(&existing).Error
		if err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": apperrors.ErrCategoryExists.Error()})
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to check existing category"})
			return
		}

		category := models.Category{Name: input.Name, Description: input.Description}
		if err := db.Create(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create category"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"success": true, "data": category})
	}
}

// GET /api/categories
func GetAllCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch categories"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": categories})
	}
}

// GET /api/categories/:id/products
func GetCategoryWithProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var category models.Category
		if err := db.Preload("Products").First(&category, c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": apperrors.ErrCategoryNotFound.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch category"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": category})
	}
}

// PUT /api/admin/categories/:id
func UpdateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var category models.Category
		if err := db.First(&category, c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": apperrors.ErrCategoryNotFound.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch category"})
			return
		}

		var input CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Category name is required"})
			return
		}

		if input.Name != category.Name {
			var existing models.Category
			if err := db.Where("name = ?", input.Name).First(&existing).Error; err == nil {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": apperrors.ErrCategoryExists.Error()})
				return
			}
		}

		category.Name = input.Name
		category.Description = input.Description
		if err := db.Save(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update category"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": category})
	}
}

// DELETE /api/admin/categories/:id
func DeleteCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var category models.Category
		if err := db.First(&category, c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": apperrors.ErrCategoryNotFound.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch category"})
			return
		}

		if err := db.Delete(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete category"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Category deleted"})
	}
}
