package utils

import (
	"time"

	"github.com/mercadoverde/storefront/config"
	"github.com/mercadoverde/storefront/models"
)

// PriceRequest is one product's input to the batch price computation
type PriceRequest struct {
	ID         uint
	Price      *float64
	CategoryID *uint
	Tags       []uint
}

// AppliedOffer describes the offer that produced a discounted price
type AppliedOffer struct {
	ID           uint    `json:"id"`
	Title        string  `json:"title"`
	DiscountType string  `json:"discount_type"`
	DiscountVal  float64 `json:"discount_val"`
}

// PriceResult is one product's resolved original/final price pair
type PriceResult struct {
	PriceOriginal *float64
	PriceFinal    *float64
	Offer         *AppliedOffer
}

// ApplyOfferToPrice returns the discounted price for an offer. Fixed
// discounts never push the price below zero.
func ApplyOfferToPrice(price float64, offer *models.Offer) float64 {
	switch offer.DiscountType {
	case models.DiscountPercentage:
		return price - (price*offer.DiscountVal)/100.0
	case models.DiscountFixed:
		final := price - offer.DiscountVal
		if final < 0 {
			return 0
		}
		return final
	default:
		return price
	}
}

// ComputePricesBatch resolves original and final prices for a whole
// batch of products in two offer queries. A product-targeted offer takes
// precedence over one targeting the product's category; with neither,
// the final price equals the original.
func ComputePricesBatch(reqs []PriceRequest) (map[uint]PriceResult, error) {
	results := make(map[uint]PriceResult, len(reqs))
	if len(reqs) == 0 {
		return results, nil
	}

	now := time.Now()
	productIDs := make([]uint, 0, len(reqs))
	categoryIDs := make([]uint, 0, len(reqs))
	for _, r := range reqs {
		productIDs = append(productIDs, r.ID)
		if r.CategoryID != nil {
			categoryIDs = append(categoryIDs, *r.CategoryID)
		}
	}

	windowActive := "(start_at IS NULL OR start_at <= ?) AND (end_at IS NULL OR end_at >= ?)"

	var productOffers []models.Offer
	if err := config.DB.
		Where("product_id IN ?", productIDs).
		Where(windowActive, now, now).
		Order("id DESC").
		Find(&productOffers).Error; err != nil {
		return nil, err
	}

	var categoryOffers []models.Offer
	if len(categoryIDs) > 0 {
		if err := config.DB.
			Where("category_id IN ?", categoryIDs).
			Where(windowActive, now, now).
			Order("id DESC").
			Find(&categoryOffers).Error; err != nil {
			return nil, err
		}
	}

	// newest offer wins within each target thanks to the DESC order
	byProduct := make(map[uint]*models.Offer)
	for i := range productOffers {
		o := &productOffers[i]
		if o.ProductID != nil {
			if _, ok := byProduct[*o.ProductID]; !ok {
				byProduct[*o.ProductID] = o
			}
		}
	}
	byCategory := make(map[uint]*models.Offer)
	for i := range categoryOffers {
		o := &categoryOffers[i]
		if o.CategoryID != nil {
			if _, ok := byCategory[*o.CategoryID]; !ok {
				byCategory[*o.CategoryID] = o
			}
		}
	}

	for _, r := range reqs {
		offer := byProduct[r.ID]
		if offer == nil && r.CategoryID != nil {
			offer = byCategory[*r.CategoryID]
		}

		result := PriceResult{PriceOriginal: r.Price, PriceFinal: r.Price}
		if offer != nil && r.Price != nil {
			final := ApplyOfferToPrice(*r.Price, offer)
			result.PriceFinal = &final
			result.Offer = &AppliedOffer{
				ID:           offer.ID,
				Title:        offer.Title,
				DiscountType: offer.DiscountType,
				DiscountVal:  offer.DiscountVal,
			}
		}
		results[r.ID] = result
	}

	return results, nil
}
