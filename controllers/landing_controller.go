package controllers

import (
	"encoding/json"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mercadoverde/storefront/config"
	"github.com/mercadoverde/storefront/models"
	"github.com/mercadoverde/storefront/utils"
)

const (
	landingCacheKey = "landing:v1"
	landingCacheTTL = 300 * time.Second

	landingCategoryCount = 8
	landingOfferCount    = 9
	landingCatalogCount  = 20
)

type landingBanner struct {
	ID      uint    `json:"id"`
	Title   string  `json:"title"`
	Image   string  `json:"image"`
	LinkURL *string `json:"link_url"`
}

type landingCategory struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Slug     string  `json:"slug"`
	ImageURL *string `json:"image_url"`
}

type landingProduct struct {
	ID     uint     `json:"id"`
	Name   string   `json:"name"`
	Slug   string   `json:"slug"`
	Cover  *string  `json:"cover"`
	Price  *float64 `json:"price"`
	Status string   `json:"status"`
}

type landingPayload struct {
	Banners    []landingBanner      `json:"banners"`
	Categories []landingCategory    `json:"categories"`
	Offers     []utils.LandingOffer `json:"offers"`
	Catalog    []landingProduct     `json:"catalog"`
}

// GetLanding assembles the landing page payload: hero banners, the
// daily category rotation, the offers carousel and the newest-products
// grid. Cached for 300 seconds when redis is configured.
func GetLanding(c *gin.Context) {
	utils.LogInfo("GetLanding called")

	if config.Cache != nil {
		cached, err := config.Cache.Get(c.Request.Context(), landingCacheKey).Bytes()
		if err == nil {
			var payload landingPayload
			if err := json.Unmarshal(cached, &payload); err == nil {
				utils.LogDebug("Serving landing payload from cache")
				utils.Success(c, "Landing retrieved successfully", payload)
				return
			}
		}
	}

	payload, err := buildLandingPayload()
	if err != nil {
		utils.LogError("Failed to build landing payload: %v", err)
		utils.InternalServerError(c, "Failed to build landing", err.Error())
		return
	}

	if config.Cache != nil {
		if data, err := json.Marshal(payload); err == nil {
			if err := config.Cache.Set(c.Request.Context(), landingCacheKey, data, landingCacheTTL).Err(); err != nil {
				utils.LogError("Failed to cache landing payload: %v", err)
			}
		}
	}

	utils.Success(c, "Landing retrieved successfully", payload)
}

func buildLandingPayload() (*landingPayload, error) {
	payload := &landingPayload{
		Banners:    []landingBanner{},
		Categories: []landingCategory{},
		Offers:     []utils.LandingOffer{},
		Catalog:    []landingProduct{},
	}

	// banners are decorative; a failed read degrades to an empty slider
	var banners []models.Banner
	if err := config.DB.
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&banners).Error; err != nil {
		utils.LogError("Failed to fetch banners: %v", err)
	}
	for _, b := range banners {
		if b.ImageURL == "" {
			continue
		}
		payload.Banners = append(payload.Banners, landingBanner{
			ID:      b.ID,
			Title:   b.Title,
			Image:   b.ImageURL,
			LinkURL: b.LinkURL,
		})
	}

	var categories []models.Category
	if err := config.DB.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}

	// same rotation for every visitor on a given day
	rotated := utils.ShuffleSeed(categories, utils.DailySeed("cats"))
	if len(rotated) > landingCategoryCount {
		rotated = rotated[:landingCategoryCount]
	}
	for _, cat := range rotated {
		entry := landingCategory{ID: cat.ID, Name: cat.Name, Slug: cat.Slug}
		if cat.ImageKey != nil && *cat.ImageKey != "" {
			url := utils.PublicURL(*cat.ImageKey)
			entry.ImageURL = &url
		}
		payload.Categories = append(payload.Categories, entry)
	}

	offers, err := utils.GetLandingOffersExplicit(landingOfferCount)
	if err != nil {
		return nil, err
	}
	payload.Offers = offers

	var products []models.Product
	if err := config.DB.
		Where("status = ?", models.StatusActive).
		Order("id DESC").
		Limit(landingCatalogCount).
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Find(&products).Error; err != nil {
		return nil, err
	}
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
		payload.Catalog = append(payload.Catalog, card)
	}

	return payload, nil
}
