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

type productRequest struct {
	Name          string   `json:"name" binding:"required,max=150"`
	Slug          string   `json:"slug"`
	Description   *string  `json:"description"`
	Price         *float64 `json:"price"`
	SKU           *string  `json:"sku"`
	Stock         *int     `json:"stock"`
	Status        string   `json:"status"`
	SubcategoryID *uint    `json:"subcategory_id"`
}

// CreateProduct creates a new catalog product
func CreateProduct(c *gin.Context) {
	utils.LogInfo("CreateProduct called")

	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid product data: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if req.Price != nil && *req.Price < 0 {
		utils.BadRequest(c, "Price cannot be negative", nil)
		return
	}

	status := req.Status
	if status == "" {
		status = models.StatusActive
	}
	if !models.ValidStatuses[status] {
		utils.LogError("Invalid product status: %s", status)
		utils.BadRequest(c, "Invalid status", nil)
		return
	}

	slug := req.Slug
	if slug == "" {
		slug = req.Name
	}
	slug = utils.Slugify(slug)

	if req.SubcategoryID != nil {
		var sub models.Subcategory
		if err := config.DB.First(&sub, *req.SubcategoryID).Error; err != nil {
			utils.LogError("Subcategory %d not found: %v", *req.SubcategoryID, err)
			utils.BadRequest(c, "Subcategory not found", nil)
			return
		}
	}

	product := models.Product{
		Name:          req.Name,
		Slug:          slug,
		Description:   req.Description,
		Price:         req.Price,
		SKU:           normalizeOptional(req.SKU),
		Stock:         req.Stock,
		Status:        status,
		SubcategoryID: req.SubcategoryID,
	}

	if err := config.DB.Create(&product).Error; err != nil {
		utils.LogError("Failed to create product: %v", err)
		utils.InternalServerError(c, "Failed to create product", err.Error())
		return
	}

	utils.LogInfo("Created product %d (%s)", product.ID, product.Slug)
	utils.Created(c, "Product created successfully", gin.H{"product": product})
}

// ListProducts returns products for the back-office, filterable by
// status, category and subcategory
func ListProducts(c *gin.Context) {
	utils.LogInfo("ListProducts called")

	query := config.DB.Model(&models.Product{}).
		Preload("Subcategory").
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC NULLS LAST, id ASC") }).
		Order("id DESC")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if subcategoryID := c.Query("subcategory_id"); subcategoryID != "" {
		query = query.Where("subcategory_id = ?", subcategoryID)
	}
	if categoryID := c.Query("category_id"); categoryID != "" {
		query = query.Where("subcategory_id IN (?)",
			config.DB.Model(&models.Subcategory{}).Select("id").Where("category_id = ?", categoryID))
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

	utils.SuccessWithPagination(c, "Products retrieved successfully", gin.H{"products": products},
		total, pagination.Page, pagination.Limit)
}

// GetProduct returns a single product with its relations
func GetProduct(c *gin.Context) {
	utils.LogInfo("GetProduct called")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		utils.BadRequest(c, "Invalid product ID", nil)
		return
	}

	var product models.Product
	if err := config.DB.
		Preload("Subcategory").
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC NULLS LAST, id ASC") }).
		Preload("Variants", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		Preload("ProductTags").
		First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Product not found")
			return
		}
		utils.LogError("Failed to fetch product %d: %v", id, err)
		utils.InternalServerError(c, "Failed to fetch product", err.Error())
		return
	}

	utils.Success(c, "Product retrieved successfully", gin.H{"product": product})
}

// UpdateProduct partially updates a product; empty slug recalculates it
// from the name
func UpdateProduct(c *gin.Context) {
	utils.LogInfo("UpdateProduct called")

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
		Name          *string  `json:"name"`
		Slug          *string  `json:"slug"`
		Description   *string  `json:"description"`
		Price         *float64 `json:"price"`
		SKU           *string  `json:"sku"`
		Stock         *int     `json:"stock"`
		Status        *string  `json:"status"`
		SubcategoryID *uint    `json:"subcategory_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid update data: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil && *req.Name != "" {
		updates["name"] = *req.Name
	}
	if req.Slug != nil {
		if *req.Slug == "" {
			name := product.Name
			if req.Name != nil && *req.Name != "" {
				name = *req.Name
			}
			updates["slug"] = utils.Slugify(name)
		} else {
			updates["slug"] = utils.Slugify(*req.Slug)
		}
	}
	if req.Description != nil {
		updates["description"] = req.Description
	}
	if req.Price != nil {
		if *req.Price < 0 {
			utils.BadRequest(c, "Price cannot be negative", nil)
			return
		}
		updates["price"] = *req.Price
	}
	if req.SKU != nil {
		updates["sku"] = normalizeOptional(req.SKU)
	}
	if req.Stock != nil {
		updates["stock"] = *req.Stock
	}
	if req.Status != nil {
		if !models.ValidStatuses[*req.Status] {
			utils.BadRequest(c, "Invalid status", nil)
			return
		}
		updates["status"] = *req.Status
	}
	if req.SubcategoryID != nil {
		updates["subcategory_id"] = *req.SubcategoryID
	}

	if len(updates) == 0 {
		utils.Success(c, "Nothing to update", gin.H{"product": product})
		return
	}

	if err := config.DB.Model(&product).Updates(updates).Error; err != nil {
		utils.LogError("Failed to update product %d: %v", id, err)
		utils.InternalServerError(c, "Failed to update product", err.Error())
		return
	}

	utils.LogInfo("Updated product %d", product.ID)
	utils.Success(c, "Product updated successfully", gin.H{"product": product})
}

// DeleteProduct removes a product, its dependent rows and, best-effort,
// its stored images
func DeleteProduct(c *gin.Context) {
	utils.LogInfo("DeleteProduct called")

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

	utils.PurgeStoragePrefix(c.Request.Context(), productImagePrefix(product.ID))

	config.DB.Where("product_id = ?", product.ID).Delete(&models.ProductImage{})
	config.DB.Where("product_id = ?", product.ID).Delete(&models.ProductVariant{})
	config.DB.Where("product_id = ?", product.ID).Delete(&models.ProductTag{})
	config.DB.Where("product_id = ?", product.ID).Delete(&models.Offer{})

	if err := config.DB.Delete(&product).Error; err != nil {
		utils.LogError("Failed to delete product %d: %v", id, err)
		utils.InternalServerError(c, "Failed to delete product", err.Error())
		return
	}

	utils.LogInfo("Deleted product %d", product.ID)
	utils.Success(c, "Product deleted successfully", nil)
}

func normalizeOptional(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
