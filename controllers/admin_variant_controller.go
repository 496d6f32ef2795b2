package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mercadoverde/storefront/config"
	"github.com/mercadoverde/storefront/models"
	"github.com/mercadoverde/storefront/utils"
)

// ListVariants returns a product's variants in sort order
func ListVariants(c *gin.Context) {
	utils.LogInfo("ListVariants called")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		utils.BadRequest(c, "Invalid product ID", nil)
		return
	}

	var variants []models.ProductVariant
	if err := config.DB.
		Where("product_id = ?", id).
		Order("sort_order ASC").
		Find(&variants).Error; err != nil {
		utils.LogError("Failed to fetch variants for product %d: %v", id, err)
		utils.InternalServerError(c, "Failed to fetch variants", err.Error())
		return
	}

	utils.Success(c, "Variants retrieved successfully", gin.H{"variants": variants})
}

// CreateVariant adds a variant to a product
func CreateVariant(c *gin.Context) {
	utils.LogInfo("CreateVariant called")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		utils.BadRequest(c, "Invalid product ID", nil)
		return
	}

	var product models.Product
	if err := config.DB.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Product not found")
			return
		}
		utils.LogError("Failed to fetch product %d: %v", id, err)
		utils.InternalServerError(c, "Failed to fetch product", err.Error())
		return
	}

	var req struct {
		Label         string   `json:"label" binding:"required,max=120"`
		Price         *float64 `json:"price"`
		PriceOriginal *float64 `json:"price_original"`
		SKU           *string  `json:"sku"`
		Stock         *int     `json:"stock"`
		SortOrder     int      `json:"sort_order"`
		Active        *bool    `json:"active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid variant data: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if req.Price != nil && *req.Price < 0 {
		utils.BadRequest(c, "Price cannot be negative", nil)
		return
	}
	if req.PriceOriginal != nil && *req.PriceOriginal < 0 {
		utils.BadRequest(c, "Original price cannot be negative", nil)
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	variant := models.ProductVariant{
		ProductID:     product.ID,
		Label:         req.Label,
		Price:         req.Price,
		PriceOriginal: req.PriceOriginal,
		SKU:           normalizeOptional(req.SKU),
		Stock:         req.Stock,
		SortOrder:     req.SortOrder,
		Active:        active,
	}
	if err := config.DB.Create(&variant).Error; err != nil {
		utils.LogError("Failed to create variant: %v", err)
		utils.InternalServerError(c, "Failed to create variant", err.Error())
		return
	}

	utils.LogInfo("Created variant %d for product %d", variant.ID, product.ID)
	utils.Created(c, "Variant created successfully", gin.H{"variant": variant})
}

// UpdateVariant partially updates a variant
func UpdateVariant(c *gin.Context) {
	utils.LogInfo("UpdateVariant called")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		utils.BadRequest(c, "Invalid variant ID", nil)
		return
	}

	var variant models.ProductVariant
	if err := config.DB.First(&variant, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Variant not found")
			return
		}
		utils.LogError("Failed to fetch variant %d: %v", id, err)
		utils.InternalServerError(c, "Failed to fetch variant", err.Error())
		return
	}

	var req struct {
		Label         *string  `json:"label"`
		Price         *float64 `json:"price"`
		PriceOriginal *float64 `json:"price_original"`
		SKU           *string  `json:"sku"`
		Stock         *int     `json:"stock"`
		SortOrder     *int     `json:"sort_order"`
		Active        *bool    `json:"active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	updates := map[string]interface{}{}
	if req.Label != nil && *req.Label != "" {
		updates["label"] = *req.Label
	}
	if req.Price != nil {
		if *req.Price < 0 {
			utils.BadRequest(c, "Price cannot be negative", nil)
			return
		}
		updates["price"] = *req.Price
	}
	if req.PriceOriginal != nil {
		if *req.PriceOriginal < 0 {
			utils.BadRequest(c, "Original price cannot be negative", nil)
			return
		}
		updates["price_original"] = *req.PriceOriginal
	}
	if req.SKU != nil {
		updates["sku"] = normalizeOptional(req.SKU)
	}
	if req.Stock != nil {
		updates["stock"] = *req.Stock
	}
	if req.SortOrder != nil {
		updates["sort_order"] = *req.SortOrder
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}

	if len(updates) == 0 {
		utils.Success(c, "Nothing to update", gin.H{"variant": variant})
		return
	}

	if err := config.DB.Model(&variant).Updates(updates).Error; err != nil {
		utils.LogError("Failed to update variant %d: %v", id, err)
		utils.InternalServerError(c, "Failed to update variant", err.Error())
		return
	}

	utils.Success(c, "Variant updated successfully", gin.H{"variant": variant})
}

// DeleteVariant removes a variant
func DeleteVariant(c *gin.Context) {
	utils.LogInfo("DeleteVariant called")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		utils.BadRequest(c, "Invalid variant ID", nil)
		return
	}

	result := config.DB.Delete(&models.ProductVariant{}, id)
	if result.Error != nil {
		utils.LogError("Failed to delete variant %d: %v", id, result.Error)
		utils.InternalServerError(c, "Failed to delete variant", result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		utils.NotFound(c, "Variant not found")
		return
	}

	utils.LogInfo("Deleted variant %d", id)
	utils.Success(c, "Variant deleted successfully", nil)
}
