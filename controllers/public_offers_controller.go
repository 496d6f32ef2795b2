package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/mercadoverde/storefront/utils"
)

// ListCurrentOffers returns every product currently on discount,
// including ad-hoc variant underpricing
func ListCurrentOffers(c *gin.Context) {
	utils.LogInfo("ListCurrentOffers called")

	offers, err := utils.GetAllOffersRaw(utils.OfferListOptions{IncludeVariantDiscounts: true})
	if err != nil {
		utils.LogError("Failed to aggregate offers: %v", err)
		utils.InternalServerError(c, "Failed to fetch offers", err.Error())
		return
	}

	utils.Success(c, "Offers retrieved successfully", gin.H{"items": offers})
}
