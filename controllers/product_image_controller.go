package controllers

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mercadoverde/storefront/config"
	"github.com/mercadoverde/storefront/models"
	"github.com/mercadoverde/storefront/utils"
)

func productImagePrefix(productID uint) string {
	return fmt.Sprintf("products/%d/", productID)
}

// ListProductImages lists a product's images: the storage listing is
// authoritative and gets merged with whatever rows the database holds
func ListProductImages(c *gin.Context) {
	utils.LogInfo("ListProductImages called")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		utils.BadRequest(c, "Invalid product ID", nil)
		return
	}

	objects, err := utils.ListStorageObjects(c.Request.Context(), productImagePrefix(uint(id)))
	if err != nil {
		utils.LogError("Storage listing failed for product %d: %v", id, err)
		utils.InternalServerError(c, "Failed to list images", err.Error())
		return
	}

	// database rows are enrichment only; a failed read must not hide
	// what storage has
	var imageRows []models.ProductImage
	if err := config.DB.Where("product_id = ?", id).
		Order("sort_order ASC NULLS LAST, id ASC").
		Find(&imageRows).Error; err != nil {
		utils.LogError("Image rows lookup failed for product %d: %v", id, err)
		imageRows = nil
	}

	rows := make([]utils.ImageRow, 0, len(imageRows))
	for _, r := range imageRows {
		rows = append(rows, utils.ImageRow{
			ID: r.ID, Key: r.Key, Alt: r.Alt, IsCover: r.IsCover,
			SortOrder: r.SortOrder, Size: r.Size, Width: r.Width, Height: r.Height,
			CreatedAt: r.CreatedAt,
		})
	}

	items := utils.MergeImageListings(objects, rows)

	c.Header("Cache-Control", "no-store")
	utils.Success(c, "Images retrieved successfully", gin.H{"items": items})
}

// UploadProductImage stores an image in object storage and records it,
// best-effort, in the database
func UploadProductImage(c *gin.Context) {
	utils.LogInfo("UploadProductImage called")

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

	file, err := c.FormFile("file")
	if err != nil {
		utils.BadRequest(c, "Field 'file' is required", err.Error())
		return
	}
	if err := utils.ValidateImageFile(file); err != nil {
		utils.LogError("Rejected upload for product %d: %v", id, err)
		utils.BadRequest(c, err.Error(), nil)
		return
	}

	alt := normalizeOptional(ptr(c.PostForm("alt")))

	sortOrder, err := strconv.Atoi(c.PostForm("sort_order"))
	if err != nil {
		var count int64
		if err := config.DB.Model(&models.ProductImage{}).
			Where("product_id = ?", product.ID).Count(&count).Error; err != nil {
			count = 0
		}
		sortOrder = int(count)
	}
	isFirst := sortOrder == 0

	key := utils.BuildImageKey(productImagePrefix(product.ID), file.Filename)

	src, err := file.Open()
	if err != nil {
		utils.LogError("Failed to open upload: %v", err)
		utils.InternalServerError(c, "Failed to read uploaded file", err.Error())
		return
	}
	defer src.Close()

	contentType := file.Header.Get("Content-Type")
	if err := utils.PutStorageObject(c.Request.Context(), key, src, file.Size, contentType); err != nil {
		utils.LogError("Upload failed for product %d: %v", id, err)
		utils.InternalServerError(c, "Failed to store image", err.Error())
		return
	}

	size := file.Size
	image := models.ProductImage{
		ProductID: product.ID,
		Key:       key,
		Alt:       alt,
		IsCover:   isFirst,
		SortOrder: &sortOrder,
		Size:      &size,
	}
	if err := config.DB.Create(&image).Error; err != nil {
		// storage already has the object; the listing merge covers the gap
		utils.LogError("Failed to record image row for product %d: %v", id, err)
	}

	utils.LogInfo("Uploaded image %s for product %d", key, product.ID)
	utils.Created(c, "Image uploaded successfully", gin.H{
		"item": gin.H{
			"id":         image.ID,
			"key":        key,
			"url":        utils.PublicURL(key),
			"alt":        alt,
			"is_cover":   isFirst,
			"sort_order": sortOrder,
		},
	})
}

// DeleteProductImage removes an image by row id or storage key; the
// storage delete is best-effort
func DeleteProductImage(c *gin.Context) {
	utils.LogInfo("DeleteProductImage called")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		utils.BadRequest(c, "Invalid product ID", nil)
		return
	}

	imageID := c.Query("image_id")
	key := c.Query("key")
	if imageID == "" && key == "" {
		utils.BadRequest(c, "image_id or key is required", nil)
		return
	}

	if imageID != "" {
		var image models.ProductImage
		if err := config.DB.Where("id = ? AND product_id = ?", imageID, id).First(&image).Error; err == nil {
			key = image.Key
			config.DB.Delete(&image)
		} else {
			utils.LogError("Image row %s not found for product %d: %v", imageID, id, err)
		}
	} else {
		config.DB.Where("key = ? AND product_id = ?", key, id).Delete(&models.ProductImage{})
	}

	if key != "" {
		if err := utils.DeleteStorageObject(c.Request.Context(), key); err != nil {
			utils.LogError("Storage delete failed for %s: %v", key, err)
		}
	}

	utils.LogInfo("Deleted image %s for product %d", key, id)
	utils.Success(c, "Image deleted successfully", nil)
}

func ptr(s string) *string {
	return &s
}
