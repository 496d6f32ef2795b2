package models

import (
	"time"
)

// Product lifecycle statuses
const (
	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
	StatusDraft    = "DRAFT"
	StatusSoldOut  = "AGOTADO"
)

// ValidStatuses lists the accepted product statuses
var ValidStatuses = map[string]bool{
	StatusActive:   true,
	StatusInactive: true,
	StatusDraft:    true,
	StatusSoldOut:  true,
}

// Product represents a catalog product
type Product struct {
	ID            uint             `json:"id" gorm:"primaryKey"`
	Name          string           `json:"name" gorm:"not null"`
	Slug          string           `json:"slug" gorm:"uniqueIndex;not null"`
	Description   *string          `json:"description"`
	Price         *float64         `json:"price"`
	SKU           *string          `json:"sku"`
	Stock         *int             `json:"stock"`
	Status        string           `json:"status" gorm:"default:'ACTIVE'"`
	SubcategoryID *uint            `json:"subcategory_id" gorm:"index"`
	Subcategory   *Subcategory     `json:"subcategory,omitempty" gorm:"foreignKey:SubcategoryID"`
	Images        []ProductImage   `json:"images,omitempty" gorm:"foreignKey:ProductID"`
	Variants      []ProductVariant `json:"variants,omitempty" gorm:"foreignKey:ProductID"`
	ProductTags   []ProductTag     `json:"product_tags,omitempty" gorm:"foreignKey:ProductID"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// TagIDs returns the tag ids associated with the product
func (p *Product) TagIDs() []uint {
	ids := make([]uint, 0, len(p.ProductTags))
	for _, pt := range p.ProductTags {
		ids = append(ids, pt.TagID)
	}
	return ids
}

// CategoryID resolves the product's category through its subcategory,
// when both are loaded
func (p *Product) CategoryID() *uint {
	if p.Subcategory == nil {
		return nil
	}
	return &p.Subcategory.CategoryID
}

// ProductImage is a database row describing an object stored under the
// product's storage prefix
type ProductImage struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ProductID uint      `json:"product_id" gorm:"index;not null"`
	Key       string    `json:"key" gorm:"index;not null"`
	Alt       *string   `json:"alt"`
	IsCover   bool      `json:"is_cover" gorm:"default:false"`
	SortOrder *int      `json:"sort_order"`
	Size      *int64    `json:"size"`
	Width     *int      `json:"width"`
	Height    *int      `json:"height"`
	CreatedAt time.Time `json:"created_at"`
}

// ProductVariant is a purchasable sub-configuration of a product
// (size, weight, flavor) with its own price and stock
type ProductVariant struct {
	ID            uint     `json:"id" gorm:"primaryKey"`
	ProductID     uint     `json:"product_id" gorm:"index;not null"`
	Label         string   `json:"label" gorm:"not null"`
	Price         *float64 `json:"price"`
	PriceOriginal *float64 `json:"price_original"`
	SKU           *string  `json:"sku"`
	Stock         *int     `json:"stock"`
	SortOrder     int      `json:"sort_order" gorm:"default:0"`
	Active        bool     `json:"active" gorm:"default:true"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// SelfDiscounted reports whether the variant carries an ad-hoc manual
// discount: active with both prices present and current below original
func (v *ProductVariant) SelfDiscounted() bool {
	return v.Active && v.Price != nil && v.PriceOriginal != nil && *v.Price < *v.PriceOriginal
}
