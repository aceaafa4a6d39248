package orderControllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/AniketMankoo/DietHorizon/apperrors"
	"github.com/AniketMankoo/DietHorizon/middleware"
	"github.com/AniketMankoo/DietHorizon/models"
)

// -------- Request Structs --------

type PlaceOrderRequest struct {
	CartID          uint   `json:"cartId" binding:"required"`
	PaymentMethod   string `json:"paymentMethod" binding:"required"`
	ShippingAddress string `json:"shippingAddress" binding:"required"`
}

type AdminOrderUpdateRequest struct {
	Status        *string `json:"status"`
	PaymentStatus *string `json:"paymentStatus"`
}

// -------- Helpers --------

func parseOrderStatus(status string) (models.OrderStatus, error) {
	switch models.OrderStatus(status) {
	case models.OrderStatusPending,
		models.OrderStatusProcessing,
		models.OrderStatusShipped,
		models.OrderStatusDelivered,
		models.OrderStatusCancelled:
		return models.OrderStatus(status), nil
	default:
		return "", apperrors.ErrInvalidStatus
	}
}

func parsePaymentStatus(status string) (models.PaymentStatus, error) {
	switch models.PaymentStatus(status) {
	case models.PaymentStatusPending,
		models.PaymentStatusPaid,
		models.PaymentStatusFailed,
		models.PaymentStatusRefunded,
		models.PaymentStatusCancelled:
		return models.PaymentStatus(status), nil
	default:
		return "", apperrors.ErrInvalidPaymentStatus
	}
}

// cancellable reports whether an order may still be cancelled.
func cancellable(status models.OrderStatus) bool {
	return status == models.OrderStatusPending || status == models.OrderStatusProcessing
}

// paymentStatusAfterCancel flips Paid to Refunded; everything else becomes
// Cancelled.
func paymentStatusAfterCancel(ps models.PaymentStatus) models.PaymentStatus {
	if ps == models.PaymentStatusPaid {
		return models.PaymentStatusRefunded
	}
	return models.PaymentStatusCancelled
}

func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// restoreStock releases each snapshot line item's reservation back onto the
// corresponding product (stock up, sold down), locking the product row.
// Products deleted since the order was placed are skipped.
func restoreStock(tx *gorm.DB, cartID uint) error {
	var cart models.Cart
	if err := tx.Preload("Items").First(&cart, cartID).Error; err != nil {
		return err
	}
	for _, item := range cart.Items {
		var product models.Product
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&product, item.ProductID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return err
		}
		product.Release(item.Quantity)
		if err := tx.Save(&product).Error; err != nil {
			return err
		}
	}
	return nil
}

// -------- Core Logic --------

// placeOrder converts the user's cart into an order. All stock decrements,
// the order insert and the cart deactivation run in one transaction with
// per-product row locks, so a failed checkout leaves inventory untouched and
// two concurrent checkouts serialize instead of racing stock negative.
func placeOrder(db *gorm.DB, userID string, req PlaceOrderRequest) (*models.Order, error) {
	var cart models.Cart
	if err := db.Preload("Items").First(&cart, req.CartID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCartNotFound
		}
		return nil, err
	}
	if cart.UserID != userID {
		return nil, apperrors.ErrForbidden
	}
	if !cart.Active {
		return nil, apperrors.ErrCartInactive
	}
	if len(cart.Items) == 0 {
		return nil, apperrors.ErrCartEmpty
	}

	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		var total float64
		for _, item := range cart.Items {
			var product models.Product
			err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&product, item.ProductID).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: product %d no longer exists", apperrors.ErrProductNotFound, item.ProductID)
				}
				return err
			}

			if product.Stock < item.Quantity {
				return fmt.Errorf("%w for %s", apperrors.ErrInsufficientStock, product.Name)
			}

			product.Reserve(item.Quantity)
			if err := tx.Save(&product).Error; err != nil {
				return err
			}

			total += item.Price * float64(item.Quantity)
		}

		order = models.Order{
			OrderRef:        generateOrderRef(),
			UserID:          userID,
			CartID:          cart.ID,
			TotalAmount:     total,
			ShippingAddress: req.ShippingAddress,
			PaymentMethod:   req.PaymentMethod,
			Status:          models.OrderStatusPending,
			PaymentStatus:   models.PaymentStatusPending,
			CreatedAt:       time.Now(),
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		// The cart becomes the order's frozen snapshot. The conditional
		// update is the concurrency guard: two checkouts of the same cart
		// both pass the pre-transaction Active check, but only one flips
		// the flag here; the loser sees zero rows and rolls back.
		res := tx.Model(&cart).Where("active = ?", true).Update("active", false)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrCartInactive
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// cancelOrder flips the order into Cancelled and restores the snapshot's
// stock, in one transaction. Restoration happens exactly once, on the
// transition into Cancelled; re-cancelling fails before any stock mutation.
func cancelOrder(db *gorm.DB, userID string, role models.Role, orderID uint) (*models.Order, error) {
	var order models.Order
	if err := db.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrderNotFound
		}
		return nil, err
	}

	if order.UserID != userID && role != models.RoleAdmin {
		return nil, apperrors.ErrForbidden
	}
	if order.Status == models.OrderStatusDelivered {
		return nil, apperrors.ErrCannotCancelDelivered
	}
	if !cancellable(order.Status) {
		return nil, apperrors.ErrCannotCancelOrder
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		order.Status = models.OrderStatusCancelled
		order.PaymentStatus = paymentStatusAfterCancel(order.PaymentStatus)
		if err := tx.Save(&order).Error; err != nil {
			return err
		}
		return restoreStock(tx, order.CartID)
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// adminUpdateOrder applies a partial status/paymentStatus update. Stock is
// restored only when the status transitions into Cancelled from a
// non-cancelled state, and in the same transaction as the update.
func adminUpdateOrder(db *gorm.DB, orderID uint, req AdminOrderUpdateRequest) (*models.Order, error) {
	if req.Status == nil && req.PaymentStatus == nil {
		return nil, apperrors.ErrRequiredFields
	}

	var order models.Order
	if err := db.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrderNotFound
		}
		return nil, err
	}

	wasCancelled := order.Status == models.OrderStatusCancelled

	if req.Status != nil {
		status, err := parseOrderStatus(*req.Status)
		if err != nil {
			return nil, err
		}
		order.Status = status
	}
	if req.PaymentStatus != nil {
		paymentStatus, err := parsePaymentStatus(*req.PaymentStatus)
		if err != nil {
			return nil, err
		}
		order.PaymentStatus = paymentStatus
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&order).Error; err != nil {
			return err
		}
		if order.Status == models.OrderStatusCancelled && !wasCancelled {
			return restoreStock(tx, order.CartID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// loadOrderDetail reloads an order with user and product details resolved
// for display.
func loadOrderDetail(db *gorm.DB, orderID uint) (*models.Order, error) {
	var order models.Order
	err := db.Preload("User").
		Preload("Cart.Items.Product").
		First(&order, orderID).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// -------- Handlers --------

// POST /api/orders
func PlaceOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": apperrors.ErrRequiredFields.Error()})
			return
		}

		order, err := placeOrder(db, userID, req)
		if err != nil {
			middleware.RecordOrderOutcome("place", "rejected")
			c.JSON(apperrors.StatusCode(err), gin.H{"success": false, "message": err.Error()})
			return
		}
		middleware.RecordOrderOutcome("place", "success")

		detail, err := loadOrderDetail(db, order.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to load order"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "Order placed successfully",
			"data":    detail,
		})
	}
}

// GET /api/orders
func GetMyOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var orders []models.Order
		if err := db.Where("user_id = ?", userID).
			Preload("Cart.Items.Product").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch orders"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "count": len(orders), "data": orders})
	}
}

// GET /api/orders/:id
func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		roleVal, _ := c.Get(middleware.ContextUserRole)
		role, _ := roleVal.(models.Role)

		orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid order ID"})
			return
		}

		order, err := loadOrderDetail(db, uint(orderID))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": apperrors.ErrOrderNotFound.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch order"})
			return
		}

		// Users can only access their own orders.
		if order.UserID != userID && role != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": apperrors.ErrForbidden.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": order})
	}
}

// PUT /api/orders/:id/cancel
func CancelOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		roleVal, _ := c.Get(middleware.ContextUserRole)
		role, _ := roleVal.(models.Role)

		orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid order ID"})
			return
		}

		order, err := cancelOrder(db, userID, role, uint(orderID))
		if err != nil {
			middleware.RecordOrderOutcome("cancel", "rejected")
			c.JSON(apperrors.StatusCode(err), gin.H{"success": false, "message": err.Error()})
			return
		}
		middleware.RecordOrderOutcome("cancel", "success")

		detail, err := loadOrderDetail(db, order.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to load order"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Order cancelled successfully",
			"data":    detail,
		})
	}
}

// GET /api/admin/orders
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Preload("User").
			Preload("Cart.Items.Product").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch orders"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "count": len(orders), "data": orders})
	}
}

// PUT /api/admin/orders/:id
func AdminUpdateOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid order ID"})
			return
		}

		var req AdminOrderUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": apperrors.ErrRequiredFields.Error()})
			return
		}

		order, err := adminUpdateOrder(db, uint(orderID), req)
		if err != nil {
			c.JSON(apperrors.StatusCode(err), gin.H{"success": false, "message": err.Error()})
			return
		}

		detail, err := loadOrderDetail(db, order.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to load order"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Order status updated successfully",
			"data":    detail,
		})
	}
}
