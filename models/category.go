package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Category groups subcategories and carries the image shown on the
// landing rotation
type Category struct {
	ID            uint          `json:"id" gorm:"primaryKey"`
	Name          string        `json:"name" gorm:"not null"`
	Slug          string        `json:"slug" gorm:"uniqueIndex;not null"`
	ImageKey      *string       `json:"image_key"`
	Subcategories []Subcategory `json:"subcategories,omitempty" gorm:"foreignKey:CategoryID"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// BeforeSave hook to keep names trimmed
func (c *Category) BeforeSave(tx *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	return nil
}

// Subcategory is the level products attach to
type Subcategory struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	CategoryID uint      `json:"category_id" gorm:"index;not null"`
	Name       string    `json:"name" gorm:"not null"`
	Slug       string    `json:"slug" gorm:"index;not null"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CategoryImage is a database row describing an object stored under the
// category's storage prefix
type CategoryImage struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	CategoryID uint      `json:"category_id" gorm:"index;not null"`
	Key        string    `json:"key" gorm:"index;not null"`
	Alt        *string   `json:"alt"`
	IsCover    bool      `json:"is_cover" gorm:"default:false"`
	SortOrder  *int      `json:"sort_order"`
	Size       *int64    `json:"size"`
	Width      *int      `json:"width"`
	Height     *int      `json:"height"`
	CreatedAt  time.Time `json:"created_at"`
}
