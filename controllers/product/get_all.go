package productControllers

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AniketMankoo/DietHorizon/models"
)

// Columns clients may sort the catalog by. sort_by values outside this
// set fall back to created_at; the value is interpolated into ORDER BY,
// so it must never come from the request verbatim.
var sortableColumns = map[string]bool{
	"created_at": true,
	"price":      true,
	"name":       true,
	"stock":      true,
	"sold":       true,
}

// GetProducts lists products with filtering, sorting and pagination.
// Query params: search, brand, category_id, min_price, max_price, in_stock,
// sort_by, order, page, limit.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		search := c.Query("search")
		brand := c.Query("brand")
		categoryID := c.Query("category_id")
		minPriceStr := c.Query("min_price")
		maxPriceStr := c.Query("max_price")
		inStock := c.Query("in_stock")
		sortBy := strings.ToLower(c.DefaultQuery("sort_by", "created_at"))
		if !sortableColumns[sortBy] {
			sortBy = "created_at"
		}
		sortOrder := strings.ToLower(c.DefaultQuery("order", "desc"))
		if sortOrder != "asc" && sortOrder != "desc" {
			sortOrder = "desc"
		}

		page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
		if err != nil || page < 1 {
			page = 1
		}
		limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
		if err != nil || limit < 1 {
			limit = 10
		}

		query := db.Model(&models.Product{}).Preload("Category")

		if search != "" {
			likePattern := "%" + search + "%"
			query = query.Where("name ILIKE ? OR description ILIKE ?", likePattern, likePattern)
		}
		if brand != "" {
			query = query.Where("brand = ?", brand)
		}
		if minPriceStr != "" {
			if mp, err := strconv.ParseFloat(minPriceStr, 64); err == nil {
				query = query.Where("price >= ?", mp)
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid min_price"})
				return
			}
		}
		if maxPriceStr != "" {
			if mp, err := strconv.ParseFloat(maxPriceStr, 64); err == nil {
				query = query.Where("price <= ?", mp)
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid max_price"})
				return
			}
		}
		if categoryID != "" {
			if cid, err := strconv.ParseUint(categoryID, 10, 64); err == nil {
				query = query.Where("category_id = ?", uint(cid))
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid category_id"})
				return
			}
		}
		if inStock == "true" {
			query = query.Where("stock > 0")
		}

		var total int64
		if err := query.Count(&total).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to count products"})
			return
		}

		var products []models.Product
		orderClause := fmt.Sprintf("%s %s", sortBy, sortOrder)
		if err := query.Order(orderClause).
			Offset((page - 1) * limit).
			Limit(limit).
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch products"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"count":   len(products),
			"pagination": gin.H{
				"total": total,
				"page":  page,
				"pages": int(math.Ceil(float64(total) / float64(limit))),
				"limit": limit,
			},
			"data": products,
		})
	}
}
