package cartControllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AniketMankoo/DietHorizon/apperrors"
	"github.com/AniketMankoo/DietHorizon/models"
)

type CartItemInput struct {
	ProductID uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

// getOrCreateCart returns the user's active cart, creating an empty one if
// absent. Inactive carts (already converted to orders) are ignored, so a
// fresh cart appears after every checkout.
func getOrCreateCart(db *gorm.DB, userID string) (*models.Cart, error) {
	var cart models.Cart
	err := db.Preload("Items.Product").
		Where("user_id = ? AND active = ?", userID, true).
		First(&cart).Error
	if err == nil {
		return &cart, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	cart = models.Cart{UserID: userID, Active: true}
	if err := db.Create(&cart).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

// findActiveCart is like getOrCreateCart but does not create.
func findActiveCart(db *gorm.DB, userID string) (*models.Cart, error) {
	var cart models.Cart
	err := db.Preload("Items").
		Where("user_id = ? AND active = ?", userID, true).
		First(&cart).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCartNotFound
		}
		return nil, err
	}
	return &cart, nil
}

// GET /api/cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		cart, err := getOrCreateCart(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": cart})
	}
}

// POST /api/cart/add
func AddToCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Product ID and quantity are required"})
			return
		}

		var product models.Product
		if err := db.First(&product, input.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": apperrors.ErrProductNotFound.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to validate product"})
			return
		}

		if product.Stock < input.Quantity {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": apperrors.ErrInsufficientStock.Error()})
			return
		}

		cart, err := getOrCreateCart(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch cart"})
			return
		}

		// Same product added twice merges into one line item: quantities sum
		// and the captured price is refreshed.
		var item models.CartItem
		err = db.Where("cart_id = ? AND product_id = ?", cart.ID, input.ProductID).First(&item).Error
		switch {
		case err == nil:
			newQuantity := item.Quantity + input.Quantity
			if newQuantity > product.Stock {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": apperrors.ErrInsufficientStock.Error()})
				return
			}
			item.Quantity = newQuantity
			item.Price = product.Price
			item.AddedAt = time.Now()
			if err := db.Save(&item).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update cart item"})
				return
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			item = models.CartItem{
				CartID:    cart.ID,
				ProductID: product.ID,
				Quantity:  input.Quantity,
				Price:     product.Price,
				AddedAt:   time.Now(),
			}
			if err := db.Create(&item).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to add item to cart"})
				return
			}
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch cart item"})
			return
		}

		reloaded, err := getOrCreateCart(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Item added to cart", "data": reloaded})
	}
}

// PUT /api/cart/items
func UpdateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Product ID and quantity are required"})
			return
		}

		cart, err := findActiveCart(db, userID)
		if err != nil {
			c.JSON(apperrors.StatusCode(err), gin.H{"success": false, "message": err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, input.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": apperrors.ErrProductNotFound.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to validate product"})
			return
		}

		if product.Stock < input.Quantity {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": apperrors.ErrInsufficientStock.Error()})
			return
		}

		var item models.CartItem
		if err := db.Where("cart_id = ? AND product_id = ?", cart.ID, input.ProductID).First(&item).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": apperrors.ErrItemNotInCart.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch cart item"})
			return
		}

		item.Quantity = input.Quantity
		item.Price = product.Price
		item.AddedAt = time.Now()
		if err := db.Save(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update cart item"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Cart item updated", "data": item})
	}
}

// DELETE /api/cart/:productId
func RemoveCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		productID, err := strconv.ParseUint(c.Param("productId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid product ID"})
			return
		}

		cart, err := findActiveCart(db, userID)
		if err != nil {
			c.JSON(apperrors.StatusCode(err), gin.H{"success": false, "message": err.Error()})
			return
		}

		result := db.Where("cart_id = ? AND product_id = ?", cart.ID, productID).Delete(&models.CartItem{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to remove item"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": apperrors.ErrItemNotInCart.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Item removed from cart"})
	}
}

// DELETE /api/cart
func ClearCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		cart, err := findActiveCart(db, userID)
		if err != nil {
			if errors.Is(err, apperrors.ErrCartNotFound) {
				// Nothing to clear.
				c.JSON(http.StatusOK, gin.H{"success": true, "message": "Cart cleared successfully"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch cart"})
			return
		}

		if err := db.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to clear cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Cart cleared successfully"})
	}
}

// GET /api/cart/summary
func GetCartSummary(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		cart, err := findActiveCart(db, userID)
		if err != nil {
			if errors.Is(err, apperrors.ErrCartNotFound) {
				c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"count": 0, "totalPrice": 0.0}})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{
			"count":      cart.ItemCount(),
			"totalPrice": cart.TotalPrice(),
		}})
	}
}
