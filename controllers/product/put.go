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

type UpdateProductInput struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Brand       *string   `json:"brand"`
	Price       *float64  `json:"price"`
	Stock       *int      `json:"stock"`
	CategoryID  *uint     `json:"category_id"`
	Tags        *[]string `json:"tags"`
}

// PUT /api/admin/products/:id
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": apperrors.ErrProductNotFound.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch product"})
			return
		}

		var input UpdateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input: " + err.Error()})
			return
		}

		if input.Price != nil && *input.Price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Price cannot be negative"})
			return
		}

		if input.Name != nil && *input.Name != product.Name {
			var existing models.Product
			if err := db.Where("name = ?", *input.Name).First(&existing).Error; err == nil {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": apperrors.ErrProductExists.Error()})
				return
			}
			product.Name = *input.Name
		}
		if input.Description != nil {
			product.Description = *input.Description
		}
		if input.Brand != nil {
			product.Brand = *input.Brand
		}
		if input.Price != nil {
			product.Price = *input.Price
		}
		if input.Stock != nil {
			// Clamp instead of rejecting, stock is never negative.
			stock := *input.Stock
			if stock < 0 {
				stock = 0
			}
			product.Stock = stock
		}
		if input.CategoryID != nil {
			var category models.Category
			if err := db.First(&category, *input.CategoryID).Error; err != nil {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": apperrors.ErrCategoryNotFound.Error()})
				return
			}
			product.CategoryID = *input.CategoryID
		}
		if input.Tags != nil {
			tags := make([]string, 0, len(*input.Tags))
			for _, tag := range *input.Tags {
				tags = append(tags, strings.ToLower(strings.TrimSpace(tag)))
			}
			product.Tags = tags
		}

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Product updated successfully",
			"data":    product,
		})
	}
}
