package models

import (
	"math"
	"testing"
)

func TestCartTotals(t *testing.T) {
	cart := Cart{
		Items: []CartItem{
			{ProductID: 1, Quantity: 2, Price: 19.99},
			{ProductID: 2, Quantity: 1, Price: 5.50},
		},
	}

	if got := cart.ItemCount(); got != 3 {
		t.Errorf("ItemCount() = %d, want 3", got)
	}
	if got := cart.TotalPrice(); math.Abs(got-45.48) > 1e-9 {
		t.Errorf("TotalPrice() = %v, want 45.48", got)
	}
}

func TestCartTotals_Empty(t *testing.T) {
	var cart Cart
	if got := cart.ItemCount(); got != 0 {
		t.Errorf("ItemCount() = %d, want 0", got)
	}
	if got := cart.TotalPrice(); got != 0 {
		t.Errorf("TotalPrice() = %v, want 0", got)
	}
}

// Release mirrors Reserve: cancelling an order puts stock back and takes
// the units out of the sold counter.
func TestProductReserveRelease(t *testing.T) {
	p := Product{Stock: 10, Sold: 2}

	p.Reserve(3)
	if p.Stock != 7 || p.Sold != 5 {
		t.Errorf("After Reserve(3): Stock=%d Sold=%d, want 7/5", p.Stock, p.Sold)
	}

	p.Release(3)
	if p.Stock != 10 || p.Sold != 2 {
		t.Errorf("After Release(3): Stock=%d Sold=%d, want 10/2", p.Stock, p.Sold)
	}
}

func TestProductRelease_ClampsSold(t *testing.T) {
	p := Product{Stock: 0, Sold: 1}
	p.Release(4)
	if p.Stock != 4 {
		t.Errorf("Stock = %d, want 4", p.Stock)
	}
	if p.Sold != 0 {
		t.Errorf("Sold = %d, want 0", p.Sold)
	}
}

func TestDietPlanDailyCalories(t *testing.T) {
	plan := DietPlan{
		Meals: []Meal{
			{Name: "Breakfast", Calories: 420},
			{Name: "Lunch", Calories: 650},
			{Name: "Dinner", Calories: 580},
		},
	}
	if got := plan.DailyCalories(); got != 1650 {
		t.Errorf("DailyCalories() = %d, want 1650", got)
	}
}

func TestValidRole(t *testing.T) {
	tests := []struct {
		role  string
		valid bool
	}{
		{"user", true},
		{"trainer", true},
		{"admin", true},
		{"superadmin", false},
		{"Admin", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := ValidRole(tt.role); got != tt.valid {
			t.Errorf("ValidRole(%q) = %v, want %v", tt.role, got, tt.valid)
		}
	}
}
