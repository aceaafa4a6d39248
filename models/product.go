package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string         `gorm:"uniqueIndex;not null" json:"name"`
	Description string         `json:"description"`
	Brand       string         `json:"brand"`
	Price       float64        `gorm:"not null" json:"price"`
	Stock       int            `gorm:"not null;default:0" json:"stock"` // never negative, clamped on write
	Sold        int            `gorm:"not null;default:0" json:"sold"`
	Tags        []string       `gorm:"serializer:json" json:"tags"`
	CategoryID  uint           `gorm:"index" json:"category_id"`
	Category    Category       `gorm:"foreignKey:CategoryID" json:"category"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// Reserve moves qty units from stock to sold at checkout.
func (p *Product) Reserve(qty int) {
	p.Stock -= qty
	p.Sold += qty
}

// Release undoes a reservation when an order is cancelled. Sold is
// clamped at zero since the counter may have been adjusted manually.
func (p *Product) Release(qty int) {
	p.Stock += qty
	p.Sold -= qty
	if p.Sold < 0 {
		p.Sold = 0
	}
}
