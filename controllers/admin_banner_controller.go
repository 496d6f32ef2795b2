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

// ListBanners returns all banners, newest first
func ListBanners(c *gin.Context) {
	utils.LogInfo("ListBanners called")

	var banners []models.Banner
	if err := config.DB.Order("created_at DESC").Find(&banners).Error; err != nil {
		utils.LogError("Failed to fetch banners: %v", err)
		utils.InternalServerError(c, "Failed to fetch banners", err.Error())
		return
	}

	utils.Success(c, "Banners retrieved successfully", gin.H{"banners": banners})
}

// CreateBanner adds a hero-slider banner
func CreateBanner(c *gin.Context) {
	utils.LogInfo("CreateBanner called")

	var req struct {
		Title    string  `json:"title"`
		ImageURL string  `json:"image_url" binding:"required"`
		LinkURL  *string `json:"link_url"`
		IsActive *bool   `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid banner data: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	banner := models.Banner{
		Title:    req.Title,
		ImageURL: req.ImageURL,
		LinkURL:  normalizeOptional(req.LinkURL),
		IsActive: active,
	}
	if err := config.DB.Create(&banner).Error; err != nil {
		utils.LogError("Failed to create banner: %v", err)
		utils.InternalServerError(c, "Failed to create banner", err.Error())
		return
	}

	utils.Created(c, "Banner created successfully", gin.H{"banner": banner})
}

// UpdateBanner partially updates a banner
func UpdateBanner(c *gin.Context) {
	utils.LogInfo("UpdateBanner called")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		utils.BadRequest(c, "Invalid banner ID", nil)
		return
	}

	var banner models.Banner
	if err := config.DB.First(&banner, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Banner not found")
			return
		}
		utils.LogError("Failed to fetch banner %d: %v", id, err)
		utils.InternalServerError(c, "Failed to fetch banner", err.Error())
		return
	}

	var req struct {
		Title    *string `json:"title"`
		ImageURL *string `json:"image_url"`
		LinkURL  *string `json:"link_url"`
		IsActive *bool   `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.ImageURL != nil && *req.ImageURL != "" {
		updates["image_url"] = *req.ImageURL
	}
	if req.LinkURL != nil {
		updates["link_url"] = normalizeOptional(req.LinkURL)
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if len(updates) > 0 {
		if err := config.DB.Model(&banner).Updates(updates).Error; err != nil {
			utils.LogError("Failed to update banner %d: %v", id, err)
			utils.InternalServerError(c, "Failed to update banner", err.Error())
			return
		}
	}

	utils.Success(c, "Banner updated successfully", gin.H{"banner": banner})
}

// DeleteBanner removes a banner
func DeleteBanner(c *gin.Context) {
	utils.LogInfo("DeleteBanner called")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		utils.BadRequest(c, "Invalid banner ID", nil)
		return
	}

	result := config.DB.Delete(&models.Banner{}, id)
	if result.Error != nil {
		utils.LogError("Failed to delete banner %d: %v", id, result.Error)
		utils.InternalServerError(c, "Failed to delete banner", result.Error.Error())
		return
	}
	if result.RowsAffected == 0 {
		utils.NotFound(c, "Banner not found")
		return
	}

	utils.Success(c, "Banner deleted successfully", nil)
}
