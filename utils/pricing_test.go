package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mercadoverde/storefront/models"
)

func TestApplyOfferToPricePercentage(t *testing.T) {
	offer := &models.Offer{DiscountType: models.DiscountPercentage, DiscountVal: 25}
	assert.Equal(t, 75.0, ApplyOfferToPrice(100, offer))
	assert.Equal(t, 0.0, ApplyOfferToPrice(0, offer))

	full := &models.Offer{DiscountType: models.DiscountPercentage, DiscountVal: 100}
	assert.Equal(t, 0.0, ApplyOfferToPrice(80, full))
}

func TestApplyOfferToPriceFixed(t *testing.T) {
	offer := &models.Offer{DiscountType: models.DiscountFixed, DiscountVal: 30}
	assert.Equal(t, 70.0, ApplyOfferToPrice(100, offer))
}

func TestApplyOfferToPriceFixedFloorsAtZero(t *testing.T) {
	offer := &models.Offer{DiscountType: models.DiscountFixed, DiscountVal: 150}
	assert.Equal(t, 0.0, ApplyOfferToPrice(100, offer))
}

func TestApplyOfferToPriceUnknownTypePassesThrough(t *testing.T) {
	offer := &models.Offer{DiscountType: "BOGOF", DiscountVal: 50}
	assert.Equal(t, 100.0, ApplyOfferToPrice(100, offer))
}
