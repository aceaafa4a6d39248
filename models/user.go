package models

import "time"

type Role string

const (
	RoleUser    Role = "user"
	RoleTrainer Role = "trainer"
	RoleAdmin   Role = "admin"
)

type User struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"` // bcrypt hash, never serialized
	Phone     string    `json:"phone"`
	Address   Address   `gorm:"embedded" json:"address"`
	Role      Role      `gorm:"type:VARCHAR(20);default:'user'" json:"role"`
	Orders    []Order   `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Address model embedded in User
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`
}

// ValidRole reports whether s is one of the assignable roles.
func ValidRole(s string) bool {
	switch Role(s) {
	case RoleUser, RoleTrainer, RoleAdmin:
		return true
	}
	return false
}
