package utils

import (
	"math"
	"time"

	"gorm.io/gorm"

	"github.com/mercadoverde/storefront/config"
	"github.com/mercadoverde/storefront/models"
)

// LandingVariant is a variant with its prices resolved against the
// product-level offer ratio
type LandingVariant struct {
	ID            uint     `json:"id"`
	Label         string   `json:"label"`
	PriceOriginal *float64 `json:"price_original"`
	PriceFinal    *float64 `json:"price_final"`
	SKU           *string  `json:"sku"`
	Stock         *int     `json:"stock"`
	SortOrder     int      `json:"sort_order"`
	Active        bool     `json:"active"`
}

// LandingOffer is a discounted product as shown on the landing page
type LandingOffer struct {
	ID              uint             `json:"id"`
	Name            string           `json:"name"`
	Slug            string           `json:"slug"`
	Cover           *string          `json:"cover"`
	Status          string           `json:"status"`
	PriceOriginal   *float64         `json:"price_original"`
	PriceFinal      *float64         `json:"price_final"`
	Offer           *AppliedOffer    `json:"offer"`
	HasDiscount     bool             `json:"has_discount"`
	DiscountPercent int              `json:"discount_percent"`
	HasVariants     bool             `json:"has_variants"`
	Variants        []LandingVariant `json:"variants"`
}

// OfferListOptions configures the aggregation
type OfferListOptions struct {
	// IncludeVariantDiscounts also surfaces products whose only discount
	// is an ad-hoc underpriced variant, with no Offer record behind it
	IncludeVariantDiscounts bool
}

// GetAllOffersRaw returns every product currently on discount, newest
// product first. A failing price computation degrades to base prices
// for the whole batch instead of failing the request; a failing catalog
// fetch propagates.
func GetAllOffersRaw(opts OfferListOptions) ([]LandingOffer, error) {
	now := time.Now()
	windowActive := "(start_at IS NULL OR start_at <= ?) AND (end_at IS NULL OR end_at >= ?)"

	// 1) products with an active explicit offer
	var offerProductIDs []uint
	if err := config.DB.Model(&models.Offer{}).
		Where("product_id IS NOT NULL").
		Where(windowActive, now, now).
		Pluck("product_id", &offerProductIDs).Error; err != nil {
		return nil, err
	}

	candidates := make(map[uint]bool, len(offerProductIDs))
	for _, id := range offerProductIDs {
		candidates[id] = true
	}

	// 2) products with a manually underpriced active variant
	if opts.IncludeVariantDiscounts {
		var variantProductIDs []uint
		if err := config.DB.Model(&models.ProductVariant{}).
			Where("active = ?", true).
			Where("price IS NOT NULL AND price_original IS NOT NULL AND price < price_original").
			Distinct().
			Pluck("product_id", &variantProductIDs).Error; err != nil {
			return nil, err
		}
		for _, id := range variantProductIDs {
			candidates[id] = true
		}
	}

	if len(candidates) == 0 {
		return []LandingOffer{}, nil
	}

	ids := make([]uint, 0, len(candidates))
	for id := range candidates {
		ids = append(ids, id)
	}

	// 3) full candidate records
	var products []models.Product
	if err := config.DB.
		Where("id IN ?", ids).
		Order("id DESC").
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("ProductTags").
		Preload("Subcategory").
		Preload("Variants", func(db *gorm.DB) *gorm.DB {
			return db.Where("active = ?", true).Order("sort_order ASC")
		}).
		Find(&products).Error; err != nil {
		return nil, err
	}

	// 4) one batched price computation for the lot
	reqs := make([]PriceRequest, 0, len(products))
	for i := range products {
		p := &products[i]
		reqs = append(reqs, PriceRequest{
			ID:         p.ID,
			Price:      p.Price,
			CategoryID: p.CategoryID(),
			Tags:       p.TagIDs(),
		})
	}

	priced, err := ComputePricesBatch(reqs)
	if err != nil {
		// degrade: everything keeps its raw base price, no discount
		LogError("Batch price computation failed, serving base prices: %v", err)
		priced = make(map[uint]PriceResult, len(reqs))
		for _, r := range reqs {
			priced[r.ID] = PriceResult{PriceOriginal: r.Price, PriceFinal: r.Price}
		}
	}

	// 5) resolve and keep only genuine discounts
	offers := make([]LandingOffer, 0, len(products))
	for i := range products {
		p := &products[i]
		result := priced[p.ID]
		item := buildLandingOffer(p, &result)
		if item.HasDiscount {
			offers = append(offers, item)
		}
	}

	return offers, nil
}

// GetLandingOffersExplicit returns only explicitly configured offers,
// truncated to limit entries (all when limit <= 0). Ad-hoc variant
// underpricing does not qualify here.
func GetLandingOffersExplicit(limit int) ([]LandingOffer, error) {
	offers, err := GetAllOffersRaw(OfferListOptions{IncludeVariantDiscounts: false})
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(offers) > limit {
		offers = offers[:limit]
	}
	return offers, nil
}

// buildLandingOffer resolves a single product's displayed prices from
// the batch pricing result. Pure; no queries.
func buildLandingOffer(p *models.Product, priced *PriceResult) LandingOffer {
	basePriceOriginal := p.Price
	var basePriceFinal *float64
	if priced != nil {
		if priced.PriceOriginal != nil {
			basePriceOriginal = priced.PriceOriginal
		}
		basePriceFinal = priced.PriceFinal
	}
	if basePriceFinal == nil {
		basePriceFinal = basePriceOriginal
	}

	// ratio the product-level offer applies to its base price; variants
	// scale by the same factor rather than re-resolving offers
	offerRatio := 1.0
	if basePriceOriginal != nil && *basePriceOriginal > 0 {
		final := 0.0
		if basePriceFinal != nil {
			final = *basePriceFinal
		}
		offerRatio = final / *basePriceOriginal
	}

	priceOriginal := basePriceOriginal
	priceFinal := basePriceFinal

	variants := make([]LandingVariant, 0, len(p.Variants))
	for _, v := range p.Variants {
		lv := LandingVariant{
			ID:        v.ID,
			Label:     v.Label,
			SKU:       v.SKU,
			Stock:     v.Stock,
			SortOrder: v.SortOrder,
			Active:    v.Active,
		}
		if v.PriceOriginal != nil {
			lv.PriceOriginal = v.PriceOriginal
		} else {
			lv.PriceOriginal = v.Price
		}
		if v.Price != nil {
			final := *v.Price * offerRatio
			lv.PriceFinal = &final
		}
		variants = append(variants, lv)
	}

	// displayed prices are independent per-field minima over variants,
	// not the prices of any single variant
	if len(variants) > 0 {
		var minFinal, minOriginal *float64
		for i := range variants {
			if f := variants[i].PriceFinal; f != nil && (minFinal == nil || *f < *minFinal) {
				minFinal = f
			}
			if o := variants[i].PriceOriginal; o != nil && (minOriginal == nil || *o < *minOriginal) {
				minOriginal = o
			}
		}
		if minFinal != nil {
			priceFinal = minFinal
		}
		if minOriginal != nil {
			priceOriginal = minOriginal
		}
	}

	hasDiscount := priceOriginal != nil && priceFinal != nil && *priceFinal < *priceOriginal
	discountPercent := 0
	if hasDiscount && *priceOriginal > 0 {
		discountPercent = int(math.Round((1 - *priceFinal / *priceOriginal) * 100))
	}

	var cover *string
	if len(p.Images) > 0 && p.Images[0].Key != "" {
		url := PublicURL(p.Images[0].Key)
		cover = &url
	}

	var appliedOffer *AppliedOffer
	if priced != nil {
		appliedOffer = priced.Offer
	}

	return LandingOffer{
		ID:              p.ID,
		Name:            p.Name,
		Slug:            p.Slug,
		Cover:           cover,
		Status:          p.Status,
		PriceOriginal:   priceOriginal,
		PriceFinal:      priceFinal,
		Offer:           appliedOffer,
		HasDiscount:     hasDiscount,
		DiscountPercent: discountPercent,
		HasVariants:     len(variants) > 0,
		Variants:        variants,
	}
}
