package apperrors

import (
	"errors"
	"net/http"
)

// Sentinel errors shared by controllers. Workflow functions return these
// (possibly wrapped with fmt.Errorf and %w to add context such as a product
// name); handlers map them to HTTP status codes with StatusCode.
var (
	// Not found
	ErrUserNotFound     = errors.New("User not found")
	ErrProductNotFound  = errors.New("Product not found")
	ErrCategoryNotFound = errors.New("Category not found")
	ErrCartNotFound     = errors.New("Cart not found")
	ErrItemNotInCart    = errors.New("Item not in cart")
	ErrOrderNotFound    = errors.New("Order not found")
	ErrPlanNotFound     = errors.New("Plan not found")

	// Auth
	ErrUnauthorized       = errors.New("Unauthorized access")
	ErrInvalidToken       = errors.New("Invalid or expired token")
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrForbidden          = errors.New("Forbidden action")

	// Input
	ErrRequiredFields       = errors.New("Please provide all required fields")
	ErrInvalidStatus        = errors.New("Invalid order status")
	ErrInvalidPaymentStatus = errors.New("Invalid payment status")
	ErrInvalidRole          = errors.New("Invalid role")

	// Conflicts (duplicate unique values)
	ErrEmailInUse     = errors.New("Email already in use")
	ErrProductExists  = errors.New("Product with this name already exists")
	ErrCategoryExists = errors.New("Category already exists")

	// State
	ErrCartEmpty             = errors.New("Cannot place order with empty cart")
	ErrCartInactive          = errors.New("Cart is no longer active")
	ErrInsufficientStock     = errors.New("Insufficient stock")
	ErrCannotCancelDelivered = errors.New("Cannot cancel a delivered order")
	ErrCannotCancelOrder     = errors.New("Order cannot be cancelled in its current state")
	ErrProductInOpenOrder    = errors.New("Product is referenced by an open order")
)

// StatusCode maps a sentinel (or wrapped sentinel) error to its HTTP status.
// Anything unmapped is treated as an internal error.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrProductNotFound),
		errors.Is(err, ErrCategoryNotFound),
		errors.Is(err, ErrCartNotFound),
		errors.Is(err, ErrItemNotInCart),
		errors.Is(err, ErrOrderNotFound),
		errors.Is(err, ErrPlanNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUnauthorized),
		errors.Is(err, ErrInvalidToken),
		errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrRequiredFields),
		errors.Is(err, ErrInvalidStatus),
		errors.Is(err, ErrInvalidPaymentStatus),
		errors.Is(err, ErrInvalidRole),
		errors.Is(err, ErrEmailInUse),
		errors.Is(err, ErrProductExists),
		errors.Is(err, ErrCategoryExists),
		errors.Is(err, ErrCartEmpty),
		errors.Is(err, ErrCartInactive),
		errors.Is(err, ErrInsufficientStock),
		errors.Is(err, ErrCannotCancelDelivered),
		errors.Is(err, ErrCannotCancelOrder),
		errors.Is(err, ErrProductInOpenOrder):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
