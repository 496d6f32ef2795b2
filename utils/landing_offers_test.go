package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mercadoverde/storefront/models"
)

func TestBuildLandingOfferNoVariantsNoOffer(t *testing.T) {
	p := &models.Product{ID: 1, Name: "Honey", Slug: "honey", Status: models.StatusActive, Price: floatPtr(100)}
	priced := &PriceResult{PriceOriginal: floatPtr(100), PriceFinal: floatPtr(100)}

	item := buildLandingOffer(p, priced)

	assert.False(t, item.HasDiscount)
	assert.Equal(t, 0, item.DiscountPercent)
	require.NotNil(t, item.PriceFinal)
	assert.Equal(t, 100.0, *item.PriceFinal)
	assert.False(t, item.HasVariants)
	assert.Nil(t, item.Cover)
}

func TestBuildLandingOfferPercentageDiscount(t *testing.T) {
	p := &models.Product{ID: 2, Name: "Olive Oil", Slug: "olive-oil", Price: floatPtr(100)}
	priced := &PriceResult{
		PriceOriginal: floatPtr(100),
		PriceFinal:    floatPtr(75),
		Offer:         &AppliedOffer{ID: 9, Title: "Autumn", DiscountType: models.DiscountPercentage, DiscountVal: 25},
	}

	item := buildLandingOffer(p, priced)

	assert.True(t, item.HasDiscount)
	assert.Equal(t, 25, item.DiscountPercent)
	assert.Equal(t, 75.0, *item.PriceFinal)
	assert.Equal(t, 100.0, *item.PriceOriginal)
	require.NotNil(t, item.Offer)
	assert.Equal(t, uint(9), item.Offer.ID)
}

func TestBuildLandingOfferVariantMinimaAreIndependent(t *testing.T) {
	// displayed prices take the cheapest final and the cheapest original
	// across variants, even when those come from different variants
	p := &models.Product{
		ID: 3, Name: "Tea", Slug: "tea", Price: floatPtr(100),
		Variants: []models.ProductVariant{
			{ID: 31, Label: "250g", Price: floatPtr(80), PriceOriginal: floatPtr(100), Active: true},
			{ID: 32, Label: "500g", Price: floatPtr(60), PriceOriginal: floatPtr(90), Active: true},
		},
	}
	priced := &PriceResult{PriceOriginal: floatPtr(100), PriceFinal: floatPtr(100)}

	item := buildLandingOffer(p, priced)

	assert.True(t, item.HasVariants)
	require.NotNil(t, item.PriceFinal)
	require.NotNil(t, item.PriceOriginal)
	assert.Equal(t, 60.0, *item.PriceFinal)
	assert.Equal(t, 90.0, *item.PriceOriginal)
	assert.True(t, item.HasDiscount)
	assert.Equal(t, 33, item.DiscountPercent)
}

func TestBuildLandingOfferRatioScalesVariants(t *testing.T) {
	// a 50% product offer halves every variant's final price
	p := &models.Product{
		ID: 4, Name: "Coffee", Slug: "coffee", Price: floatPtr(100),
		Variants: []models.ProductVariant{
			{ID: 41, Label: "1kg", Price: floatPtr(80), Active: true},
		},
	}
	priced := &PriceResult{PriceOriginal: floatPtr(100), PriceFinal: floatPtr(50)}

	item := buildLandingOffer(p, priced)

	require.Len(t, item.Variants, 1)
	v := item.Variants[0]
	require.NotNil(t, v.PriceFinal)
	assert.Equal(t, 40.0, *v.PriceFinal)
	// no stored original on the variant: its base price stands in
	require.NotNil(t, v.PriceOriginal)
	assert.Equal(t, 80.0, *v.PriceOriginal)
	assert.Equal(t, 40.0, *item.PriceFinal)
	assert.Equal(t, 80.0, *item.PriceOriginal)
	assert.Equal(t, 50, item.DiscountPercent)
}

func TestBuildLandingOfferNoDiscountWithoutStoredOriginal(t *testing.T) {
	// with no product offer the ratio is 1, so a variant missing a
	// stored original price cannot show a discount
	p := &models.Product{
		ID: 5, Name: "Rice", Slug: "rice", Price: floatPtr(100),
		Variants: []models.ProductVariant{
			{ID: 51, Label: "5kg", Price: floatPtr(70), Active: true},
		},
	}
	priced := &PriceResult{PriceOriginal: floatPtr(100), PriceFinal: floatPtr(100)}

	item := buildLandingOffer(p, priced)

	assert.Equal(t, 70.0, *item.PriceFinal)
	assert.Equal(t, 70.0, *item.PriceOriginal)
	assert.False(t, item.HasDiscount)
}

func TestBuildLandingOfferCoverFromFirstImage(t *testing.T) {
	p := &models.Product{
		ID: 6, Name: "Soap", Slug: "soap", Price: floatPtr(10),
		Images: []models.ProductImage{
			{ID: 1, Key: "products/6/cover.jpg"},
			{ID: 2, Key: "products/6/extra.jpg"},
		},
	}

	item := buildLandingOffer(p, &PriceResult{PriceOriginal: floatPtr(10), PriceFinal: floatPtr(10)})

	require.NotNil(t, item.Cover)
	assert.Equal(t, "https://cdn.example.com/products/6/cover.jpg", *item.Cover)
}

func TestBuildLandingOfferNilPriceResult(t *testing.T) {
	p := &models.Product{ID: 7, Name: "Salt", Slug: "salt", Price: floatPtr(5)}

	item := buildLandingOffer(p, nil)

	require.NotNil(t, item.PriceFinal)
	assert.Equal(t, 5.0, *item.PriceFinal)
	assert.False(t, item.HasDiscount)
}

func TestBuildLandingOfferNilBasePrice(t *testing.T) {
	p := &models.Product{ID: 8, Name: "Gift Card", Slug: "gift-card"}

	item := buildLandingOffer(p, &PriceResult{})

	assert.Nil(t, item.PriceOriginal)
	assert.Nil(t, item.PriceFinal)
	assert.False(t, item.HasDiscount)
	assert.Equal(t, 0, item.DiscountPercent)
}
