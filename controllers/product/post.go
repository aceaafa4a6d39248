package productControllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AniketMankoo/DietHorizon/apperrors"
	"github.com/AniketMankoo/DietHorizon/models"
)

type CreateProductInput struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description" binding:"required,max=500"`
	Brand       string   `json:"brand" binding:"required"`
	Price       float64  `json:"price" binding:"required,gte=0"`
	Stock       int      `json:"stock"`
	CategoryID  uint     `json:"category_id" binding:"required"`
	Tags        []string `json:"tags"`
}

// POST /api/admin/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": apperrors.ErrRequiredFields.Error()})
			return
		}

		var existing models.Product
		err := db.Where("name = ?", input.Name).First(&existing).Error
		if err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": apperrors.ErrProductExists.Error()})
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to check existing product"})
			return
		}

		var category models.Category
		if err := db.First(&category, input.CategoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": apperrors.ErrCategoryNotFound.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to validate category"})
			return
		}

		tags := make([]string, 0, len(input.Tags))
		for _, tag := range input.Tags {
			tags = append(tags, strings.ToLower(strings.TrimSpace(tag)))
		}

		// Stock is clamped, never negative.
		stock := input.Stock
		if stock < 0 {
			stock = 0
		}

		product := models.Product{
			Name:        input.Name,
			Description: input.Description,
			Brand:       input.Brand,
			Price:       input.Price,
			Stock:       stock,
			CategoryID:  input.CategoryID,
			Tags:        tags,
		}
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "Product created successfully",
			"data":    product,
		})
	}
}
