package productControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AniketMankoo/DietHorizon/apperrors"
	"github.com/AniketMankoo/DietHorizon/models"
)

// DELETE /api/admin/products/:id
//
// A product referenced by an open order cannot be deleted; cancellation
// still needs the row to restore stock onto.
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
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

		var openOrders int64
		err := db.Model(&models.Order{}).
			Joins("JOIN cart_items ON cart_items.cart_id = orders.cart_id").
			Where("cart_items.product_id = ?", product.ID).
			Where("orders.status IN ?", []models.OrderStatus{
				models.OrderStatusPending,
				models.OrderStatusProcessing,
				models.OrderStatusShipped,
			}).
			Count(&openOrders).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to check open orders"})
			return
		}
		if openOrders > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": apperrors.ErrProductInOpenOrder.Error()})
			return
		}

		if err := db.Delete(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete product"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product deleted successfully"})
	}
}
