package models

import "time"

type OrderStatus string
type PaymentStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"    // Order placed, awaiting processing
	OrderStatusProcessing OrderStatus = "Processing" // Being prepared for dispatch
	OrderStatusShipped    OrderStatus = "Shipped"    // Out for delivery
	OrderStatusDelivered  OrderStatus = "Delivered"  // Customer received the items
	OrderStatusCancelled  OrderStatus = "Cancelled"  // Cancelled before shipping

	PaymentStatusPending   PaymentStatus = "Pending"   // Payment not completed yet
	PaymentStatusPaid      PaymentStatus = "Paid"      // Payment completed successfully
	PaymentStatusFailed    PaymentStatus = "Failed"    // Payment attempt failed
	PaymentStatusRefunded  PaymentStatus = "Refunded"  // Money returned to customer
	PaymentStatusCancelled PaymentStatus = "Cancelled" // Cancelled before payment
)

// Order is an immutable-total snapshot of a cart at checkout time. The cart
// it references is inactive from that point on, so its items double as the
// order's line-item snapshot. Orders are never deleted, only terminally
// stated (Delivered or Cancelled).
type Order struct {
	ID              uint          `gorm:"primaryKey" json:"id"`
	OrderRef        string        `gorm:"uniqueIndex;not null" json:"order_ref"`
	UserID          string        `gorm:"index;not null" json:"user_id"`
	User            User          `gorm:"foreignKey:UserID" json:"user"`
	CartID          uint          `gorm:"not null" json:"cart_id"`
	Cart            Cart          `gorm:"foreignKey:CartID" json:"cart"`
	TotalAmount     float64       `gorm:"not null" json:"total_amount"`
	ShippingAddress string        `gorm:"not null" json:"shipping_address"`
	PaymentMethod   string        `gorm:"not null" json:"payment_method"` // e.g. "card", "cod"
	Status          OrderStatus   `gorm:"type:VARCHAR(20);default:'Pending'" json:"status"`
	PaymentStatus   PaymentStatus `gorm:"type:VARCHAR(20);default:'Pending'" json:"payment_status"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}
