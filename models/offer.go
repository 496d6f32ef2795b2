package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// Discount types for offers
const (
	DiscountPercentage = "PERCENTAGE"
	DiscountFixed      = "FIXED"
)

var (
	// ErrOfferNoTarget is returned when an offer names neither a product nor a category
	ErrOfferNoTarget = errors.New("offer must target a product or a category")
	// ErrOfferTwoTargets is returned when an offer names both a product and a category
	ErrOfferTwoTargets = errors.New("offer must target a single product or category, not both")
)

// OfferTargetKind discriminates the two legal offer targets
type OfferTargetKind int

const (
	TargetProduct OfferTargetKind = iota
	TargetCategory
)

// OfferTarget is the tagged form of an offer's destination: exactly one
// product or one category
type OfferTarget struct {
	Kind OfferTargetKind
	ID   uint
}

// NewOfferTarget validates the nullable foreign-key pair coming off the
// wire and collapses it into a single target
func NewOfferTarget(productID, categoryID *uint) (OfferTarget, error) {
	switch {
	case productID != nil && categoryID != nil:
		return OfferTarget{}, ErrOfferTwoTargets
	case productID != nil:
		return OfferTarget{Kind: TargetProduct, ID: *productID}, nil
	case categoryID != nil:
		return OfferTarget{Kind: TargetCategory, ID: *categoryID}, nil
	default:
		return OfferTarget{}, ErrOfferNoTarget
	}
}

// Offer is an administrator-configured discount rule with an optional
// validity window. Exactly one of ProductID/CategoryID is set.
type Offer struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	Title        string     `json:"title" gorm:"not null"`
	Description  *string    `json:"description"`
	DiscountType string     `json:"discount_type" gorm:"not null"`
	DiscountVal  float64    `json:"discount_val" gorm:"not null"`
	StartAt      *time.Time `json:"start_at"`
	EndAt        *time.Time `json:"end_at"`
	ProductID    *uint      `json:"product_id" gorm:"index"`
	Product      *Product   `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	CategoryID   *uint      `json:"category_id" gorm:"index"`
	Category     *Category  `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Target returns the offer's destination in tagged form
func (o *Offer) Target() (OfferTarget, error) {
	return NewOfferTarget(o.ProductID, o.CategoryID)
}

// ActiveAt reports whether the offer's validity window covers t. An
// unset bound is unbounded on that side.
func (o *Offer) ActiveAt(t time.Time) bool {
	if o.StartAt != nil && t.Before(*o.StartAt) {
		return false
	}
	if o.EndAt != nil && t.After(*o.EndAt) {
		return false
	}
	return true
}

// BeforeSave hook enforcing the single-target rule at the persistence
// boundary as well
func (o *Offer) BeforeSave(tx *gorm.DB) error {
	_, err := o.Target()
	return err
}
