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

// ListCategories returns all categories with their subcategories
func ListCategories(c *gin.Context) {
	utils.LogInfo("ListCategories called")

	var categories []models.Category
	if err := config.DB.
		Preload("Subcategories", func(db *gorm.DB) *gorm.DB { return db.Order("name ASC") }).
		Order("name ASC").
		Find(&categories).Error; err != nil {
		utils.LogError("Failed to fetch categories: %v", err)
		utils.InternalServerError(c, "Failed to fetch categories", err.Error())
		return
	}

	utils.Success(c, "Categories retrieved successfully", gin.H{"categories": categories})
}

// CreateCategory creates a category
func CreateCategory(c *gin.Context) {
	utils.LogInfo("CreateCategory called")

	var req struct {
		Name string `json:"name" binding:"required,max=120"`
		Slug string `json:"slug"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid category data: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	slug := req.Slug
	if slug == "" {
		slug = req.Name
	}

	category := models.Category{
		Name: utils.Title(req.Name),
		Slug: utils.Slugify(slug),
	}
	if err := config.DB.Create(&category).Error; err != nil {
		utils.LogError("Failed to create category: %v", err)
		utils.Conflict(c, "Failed to create category", err.Error())
		return
	}

	utils.LogInfo("Created category %d (%s)", category.ID, category.Slug)
	utils.Created(c, "Category created successfully", gin.H{"category": category})
}

// UpdateCategory renames a category or changes its slug
func UpdateCategory(c *gin.Context) {
	utils.LogInfo("UpdateCategory called")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		utils.BadRequest(c, "Invalid category ID", nil)
		return
	}

	var category models.Category
	if err := config.DB.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Category not found")
			return
		}
		utils.LogError("Failed to fetch category %d: %v", id, err)
		utils.InternalServerError(c, "Failed to fetch category", err.Error())
		return
	}

	var req struct {
		Name *string `json:"name"`
		Slug *string `json:"slug"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil && *req.Name != "" {
		updates["name"] = utils.Title(*req.Name)
	}
	if req.Slug != nil && *req.Slug != "" {
		updates["slug"] = utils.Slugify(*req.Slug)
	}

	if len(updates) > 0 {
		if err := config.DB.Model(&category).Updates(updates).Error; err != nil {
			utils.LogError("Failed to update category %d: %v", id, err)
			utils.InternalServerError(c, "Failed to update category", err.Error())
			return
		}
	}

	utils.Success(c, "Category updated successfully", gin.H{"category": category})
}

// DeleteCategory removes a category: products of its subcategories are
// detached, stored images purged best-effort, then subcategories and
// the category itself are deleted
func DeleteCategory(c *gin.Context) {
	utils.LogInfo("DeleteCategory called")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		utils.BadRequest(c, "Invalid category ID", nil)
		return
	}

	var category models.Category
	if err := config.DB.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Category not found")
			return
		}
		utils.LogError("Failed to fetch category %d: %v", id, err)
		utils.InternalServerError(c, "Failed to fetch category", err.Error())
		return
	}

	var subcategoryIDs []uint
	if err := config.DB.Model(&models.Subcategory{}).
		Where("category_id = ?", category.ID).
		Pluck("id", &subcategoryIDs).Error; err != nil {
		utils.LogError("Failed to list subcategories of %d: %v", id, err)
		utils.InternalServerError(c, "Failed to delete category", err.Error())
		return
	}

	if len(subcategoryIDs) > 0 {
		if err := config.DB.Model(&models.Product{}).
			Where("subcategory_id IN ?", subcategoryIDs).
			Update("subcategory_id", nil).Error; err != nil {
			utils.LogError("Failed to detach products from category %d: %v", id, err)
			utils.InternalServerError(c, "Failed to delete category", err.Error())
			return
		}
	}

	utils.PurgeStoragePrefix(c.Request.Context(), categoryImagePrefix(category.ID))
	config.DB.Where("category_id = ?", category.ID).Delete(&models.CategoryImage{})
	config.DB.Where("category_id = ?", category.ID).Delete(&models.Offer{})

	if err := config.DB.Where("category_id = ?", category.ID).Delete(&models.Subcategory{}).Error; err != nil {
		utils.LogError("Failed to delete subcategories of %d: %v", id, err)
		utils.InternalServerError(c, "Failed to delete category", err.Error())
		return
	}

	if err := config.DB.Delete(&category).Error; err != nil {
		utils.LogError("Failed to delete category %d: %v", id, err)
		utils.InternalServerError(c, "Failed to delete category", err.Error())
		return
	}

	utils.LogInfo("Deleted category %d", category.ID)
	utils.Success(c, "Category deleted successfully", nil)
}

// CreateSubcategory adds a subcategory to a category
func CreateSubcategory(c *gin.Context) {
	utils.LogInfo("CreateSubcategory called")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		utils.BadRequest(c, "Invalid category ID", nil)
		return
	}

	var category models.Category
	if err := config.DB.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Category not found")
			return
		}
		utils.LogError("Failed to fetch category %d: %v", id, err)
		utils.InternalServerError(c, "Failed to fetch category", err.Error())
		return
	}

	var req struct {
		Name string `json:"name" binding:"required,max=120"`
		Slug string `json:"slug"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	slug := req.Slug
	if slug == "" {
		slug = req.Name
	}

	subcategory := models.Subcategory{
		CategoryID: category.ID,
		Name:       utils.Title(req.Name),
		Slug:       utils.Slugify(slug),
	}
	if err := config.DB.Create(&subcategory).Error; err != nil {
		utils.LogError("Failed to create subcategory: %v", err)
		utils.InternalServerError(c, "Failed to create subcategory", err.Error())
		return
	}

	utils.Created(c, "Subcategory created successfully", gin.H{"subcategory": subcategory})
}

// DeleteSubcategory removes a subcategory, detaching its products first
func DeleteSubcategory(c *gin.Context) {
	utils.LogInfo("DeleteSubcategory called")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		utils.BadRequest(c, "Invalid subcategory ID", nil)
		return
	}

	var subcategory models.Subcategory
	if err := config.DB.First(&subcategory, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Subcategory not found")
			return
		}
		utils.LogError("Failed to fetch subcategory %d: %v", id, err)
		utils.InternalServerError(c, "Failed to fetch subcategory", err.Error())
		return
	}

	if err := config.DB.Model(&models.Product{}).
		Where("subcategory_id = ?", subcategory.ID).
		Update("subcategory_id", nil).Error; err != nil {
		utils.LogError("Failed to detach products from subcategory %d: %v", id, err)
		utils.InternalServerError(c, "Failed to delete subcategory", err.Error())
		return
	}

	if err := config.DB.Delete(&subcategory).Error; err != nil {
		utils.LogError("Failed to delete subcategory %d: %v", id, err)
		utils.InternalServerError(c, "Failed to delete subcategory", err.Error())
		return
	}

	utils.Success(c, "Subcategory deleted successfully", nil)
}
