package controllers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mercadoverde/storefront/config"
	"github.com/mercadoverde/storefront/models"
	"github.com/mercadoverde/storefront/utils"
)

// ListOffers returns all offers, newest first, with their targets
func ListOffers(c *gin.Context) {
	utils.LogInfo("ListOffers called")

	var offers []models.Offer
	if err := config.DB.
		Preload("Product").
		Preload("Category").
		Order("id DESC").
		Find(&offers).Error; err != nil {
		utils.LogError("Failed to fetch offers: %v", err)
		utils.InternalServerError(c, "Failed to fetch offers", err.Error())
		return
	}

	utils.Success(c, "Offers retrieved successfully", gin.H{"offers": offers})
}

// CreateOffer creates a discount rule targeting exactly one product or
// one category
func CreateOffer(c *gin.Context) {
	utils.LogInfo("CreateOffer called")

	var req struct {
		Title        string  `json:"title" binding:"required,max=120"`
		Description  *string `json:"description"`
		DiscountType string  `json:"discount_type" binding:"required"`
		DiscountVal  float64 `json:"discount_val" binding:"required"`
		StartAt      *string `json:"start_at"` // RFC3339
		EndAt        *string `json:"end_at"`
		ProductID    *uint   `json:"product_id"`
		CategoryID   *uint   `json:"category_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid offer data: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if req.DiscountType != models.DiscountPercentage && req.DiscountType != models.DiscountFixed {
		utils.BadRequest(c, "Discount type must be PERCENTAGE or FIXED", nil)
		return
	}
	if req.DiscountVal <= 0 {
		utils.BadRequest(c, "Discount value must be positive", nil)
		return
	}
	if req.DiscountType == models.DiscountPercentage && req.DiscountVal > 100 {
		utils.LogError("Percentage discount above 100: %f", req.DiscountVal)
		utils.BadRequest(c, "Percentage discount cannot exceed 100", nil)
		return
	}

	target, err := models.NewOfferTarget(req.ProductID, req.CategoryID)
	if err != nil {
		utils.LogError("Invalid offer target: %v", err)
		utils.BadRequest(c, err.Error(), nil)
		return
	}

	startAt, err := parseOptionalTime(req.StartAt)
	if err != nil {
		utils.BadRequest(c, "Invalid start_at. Use RFC3339.", nil)
		return
	}
	endAt, err := parseOptionalTime(req.EndAt)
	if err != nil {
		utils.BadRequest(c, "Invalid end_at. Use RFC3339.", nil)
		return
	}
	if startAt != nil && endAt != nil && endAt.Before(*startAt) {
		utils.BadRequest(c, "end_at cannot be before start_at", nil)
		return
	}

	switch target.Kind {
	case models.TargetProduct:
		var product models.Product
		if err := config.DB.First(&product, target.ID).Error; err != nil {
			utils.BadRequest(c, "Product not found", nil)
			return
		}
	case models.TargetCategory:
		var category models.Category
		if err := config.DB.First(&category, target.ID).Error; err != nil {
			utils.BadRequest(c, "Category not found", nil)
			return
		}
	}

	offer := models.Offer{
		Title:        req.Title,
		Description:  req.Description,
		DiscountType: req.DiscountType,
		DiscountVal:  req.DiscountVal,
		StartAt:      startAt,
		EndAt:        endAt,
		ProductID:    req.ProductID,
		CategoryID:   req.CategoryID,
	}
	if err := config.DB.Create(&offer).Error; err != nil {
		utils.LogError("Failed to create offer: %v", err)
		utils.InternalServerError(c, "Failed to create offer", err.Error())
		return
	}

	utils.LogInfo("Created offer %d (%s)", offer.ID, offer.Title)
	utils.Created(c, "Offer created successfully", gin.H{"offer": offer})
}

// DeleteOffer removes an offer
func DeleteOffer(c *gin.Context) {
	utils.LogInfo("DeleteOffer called")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		utils.BadRequest(c, "Invalid offer ID", nil)
		return
	}

	var offer models.Offer
	if err := config.DB.First(&offer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Offer not found")
			return
		}
		utils.LogError("Failed to fetch offer %d: %v", id, err)
		utils.InternalServerError(c, "Failed to fetch offer", err.Error())
		return
	}

	if err := config.DB.Delete(&offer).Error; err != nil {
		utils.LogError("Failed to delete offer %d: %v", id, err)
		utils.InternalServerError(c, "Failed to delete offer", err.Error())
		return
	}

	utils.LogInfo("Deleted offer %d", offer.ID)
	utils.Success(c, "Offer deleted successfully", nil)
}

func parseOptionalTime(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
