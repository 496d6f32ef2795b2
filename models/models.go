package models

import (
	"time"
)

// Admin represents a back-office administrator
type Admin struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `json:"-"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	LastLogin time.Time `json:"last_login"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Tag labels products for pricing and filtering
type Tag struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;not null"`
}

// ProductTag links a product to a tag
type ProductTag struct {
	ID        uint `json:"id" gorm:"primaryKey"`
	ProductID uint `json:"product_id" gorm:"index;not null"`
	TagID     uint `json:"tag_id" gorm:"index;not null"`
}
