package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mercadoverde/storefront/config"
	"github.com/mercadoverde/storefront/models"
	"github.com/mercadoverde/storefront/utils"
)

// ListPublicProducts returns ACTIVE products for the storefront,
// newest first
func ListPublicProducts(c *gin.Context) {
	utils.LogInfo("ListPublicProducts called")

	query := config.DB.Model(&models.Product{}).
		Where("status = ?", models.StatusActive).
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Order("id DESC")

	if subcategoryID := c.Query("subcategory_id"); subcategoryID != "" {
		query = query.Where("subcategory_id = ?", subcategoryID)
	}

	pagination := utils.NewPagination(c)
	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count products: %v", err)
		utils.InternalServerError(c, "Failed to fetch products", err.Error())
		return
	}
	pagination.SetTotal(total)

	var products []models.Product
	if err := query.Offset(pagination.Offset).Limit(pagination.Limit).Find(&products).Error; err != nil {
		utils.LogError("Failed to fetch products: %v", err)
		utils.InternalServerError(c, "Failed to fetch products", err.Error())
		return
	}

	items := make([]landingProduct, 0, len(products))
	for i := range products {
		p := &products[i]
		card := landingProduct{
			ID:     p.ID,
			Name:   p.Name,
			Slug:   p.Slug,
			Price:  p.Price,
			Status: p.Status,
		}
		if len(p.Images) > 0 && p.Images[0].Key != "" {
			url := utils.PublicURL(p.Images[0].Key)
			card.Cover = &url
		}
		items = append(items, card)
	}

	utils.SuccessWithPagination(c, "Products retrieved successfully", gin.H{"items": items},
		total, pagination.Page, pagination.Limit)
}

// GetPublicProduct returns one ACTIVE product by slug with its images
// and active variants
func GetPublicProduct(c *gin.Context) {
	utils.LogInfo("GetPublicProduct called")

	slug := c.Param("slug")
	if slug == "" {
		utils.BadRequest(c, "Invalid product slug", nil)
		return
	}

	var product models.Product
	if err := config.DB.
		Where("slug = ? AND status = ?", slug, models.StatusActive).
		Preload("Subcategory").
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC NULLS LAST, id ASC") }).
		Preload("Variants", func(db *gorm.DB) *gorm.DB {
			return db.Where("active = ?", true).Order("sort_order ASC")
		}).
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Product not found")
			return
		}
		utils.LogError("Failed to fetch product %s: %v", slug, err)
		utils.InternalServerError(c, "Failed to fetch product", err.Error())
		return
	}

	utils.Success(c, "Product retrieved successfully", gin.H{"product": product})
}
