package controllers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mercadoverde/storefront/config"
	"github.com/mercadoverde/storefront/models"
	"github.com/mercadoverde/storefront/utils"
)

// ListPublicCategories returns the category tree for the storefront nav
func ListPublicCategories(c *gin.Context) {
	utils.LogInfo("ListPublicCategories called")

	var categories []models.Category
	if err := config.DB.
		Preload("Subcategories", func(db *gorm.DB) *gorm.DB { return db.Order("name ASC") }).
		Order("name ASC").
		Find(&categories).Error; err != nil {
		utils.LogError("Failed to fetch categories: %v", err)
		utils.InternalServerError(c, "Failed to fetch categories", err.Error())
		return
	}

	type subcategoryDTO struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
		Slug string `json:"slug"`
	}
	type categoryDTO struct {
		ID       uint             `json:"id"`
		Name     string           `json:"name"`
		Slug     string           `json:"slug"`
		ImageURL *string          `json:"image_url"`
		Subcats  []subcategoryDTO `json:"subcats"`
	}

	items := make([]categoryDTO, 0, len(categories))
	for _, cat := range categories {
		dto := categoryDTO{
			ID:      cat.ID,
			Name:    cat.Name,
			Slug:    cat.Slug,
			Subcats: []subcategoryDTO{},
		}
		if cat.ImageKey != nil && *cat.ImageKey != "" {
			url := utils.PublicURL(*cat.ImageKey)
			dto.ImageURL = &url
		}
		for _, sub := range cat.Subcategories {
			dto.Subcats = append(dto.Subcats, subcategoryDTO{ID: sub.ID, Name: sub.Name, Slug: sub.Slug})
		}
		items = append(items, dto)
	}

	utils.Success(c, "Categories retrieved successfully", gin.H{"items": items})
}
