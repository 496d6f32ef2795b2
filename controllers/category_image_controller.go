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

func categoryImagePrefix(categoryID uint) string {
	return fmt.Sprintf("categories/%d/", categoryID)
}

// ListCategoryImages lists a category's images, merging the storage
// listing with the database rows
func ListCategoryImages(c *gin.Context) {
	utils.LogInfo("ListCategoryImages called")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		utils.BadRequest(c, "Invalid category ID", nil)
		return
	}

	objects, err := utils.ListStorageObjects(c.Request.Context(), categoryImagePrefix(uint(id)))
	if err != nil {
		utils.LogError("Storage listing failed for category %d: %v", id, err)
		utils.InternalServerError(c, "Failed to list images", err.Error())
		return
	}

	var imageRows []models.CategoryImage
	if err := config.DB.Where("category_id = ?", id).
		Order("sort_order ASC NULLS LAST, id ASC").
		Find(&imageRows).Error; err != nil {
		utils.LogError("Image rows lookup failed for category %d: %v", id, err)
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

// UploadCategoryImage stores a category image and stamps the category's
// ImageKey so the landing rotation can render it
func UploadCategoryImage(c *gin.Context) {
	utils.LogInfo("UploadCategoryImage called")

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

	file, err := c.FormFile("file")
	if err != nil {
		utils.BadRequest(c, "Field 'file' is required", err.Error())
		return
	}
	if err := utils.ValidateImageFile(file); err != nil {
		utils.LogError("Rejected upload for category %d: %v", id, err)
		utils.BadRequest(c, err.Error(), nil)
		return
	}

	alt := normalizeOptional(ptr(c.PostForm("alt")))

	sortOrder, err := strconv.Atoi(c.PostForm("sort_order"))
	if err != nil {
		var count int64
		if err := config.DB.Model(&models.CategoryImage{}).
			Where("category_id = ?", category.ID).Count(&count).Error; err != nil {
			count = 0
		}
		sortOrder = int(count)
	}
	isFirst := sortOrder == 0

	key := utils.BuildImageKey(categoryImagePrefix(category.ID), file.Filename)

	src, err := file.Open()
	if err != nil {
		utils.LogError("Failed to open upload: %v", err)
		utils.InternalServerError(c, "Failed to read uploaded file", err.Error())
		return
	}
	defer src.Close()

	contentType := file.Header.Get("Content-Type")
	if err := utils.PutStorageObject(c.Request.Context(), key, src, file.Size, contentType); err != nil {
		utils.LogError("Upload failed for category %d: %v", id, err)
		utils.InternalServerError(c, "Failed to store image", err.Error())
		return
	}

	size := file.Size
	image := models.CategoryImage{
		CategoryID: category.ID,
		Key:        key,
		Alt:        alt,
		IsCover:    isFirst,
		SortOrder:  &sortOrder,
		Size:       &size,
	}
	if err := config.DB.Create(&image).Error; err != nil {
		utils.LogError("Failed to record image row for category %d: %v", id, err)
	}

	// latest upload becomes the category's landing image
	if err := config.DB.Model(&category).Update("image_key", key).Error; err != nil {
		utils.LogError("Failed to stamp image key on category %d: %v", id, err)
	}

	utils.LogInfo("Uploaded image %s for category %d", key, category.ID)
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

// DeleteCategoryImage removes an image by row id or storage key
func DeleteCategoryImage(c *gin.Context) {
	utils.LogInfo("DeleteCategoryImage called")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		utils.BadRequest(c, "Invalid category ID", nil)
		return
	}

	imageID := c.Query("image_id")
	key := c.Query("key")
	if imageID == "" && key == "" {
		utils.BadRequest(c, "image_id or key is required", nil)
		return
	}

	if imageID != "" {
		var image models.CategoryImage
		if err := config.DB.Where("id = ? AND category_id = ?", imageID, id).First(&image).Error; err == nil {
			key = image.Key
			config.DB.Delete(&image)
		} else {
			utils.LogError("Image row %s not found for category %d: %v", imageID, id, err)
		}
	} else {
		config.DB.Where("key = ? AND category_id = ?", key, id).Delete(&models.CategoryImage{})
	}

	if key != "" {
		if err := utils.DeleteStorageObject(c.Request.Context(), key); err != nil {
			utils.LogError("Storage delete failed for %s: %v", key, err)
		}
	}

	utils.LogInfo("Deleted image %s for category %d", key, id)
	utils.Success(c, "Image deleted successfully", nil)
}
