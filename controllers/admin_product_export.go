package controllers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/mercadoverde/storefront/config"
	"github.com/mercadoverde/storefront/models"
	"github.com/mercadoverde/storefront/utils"
)

// ExportProductsExcel downloads the product catalog as an Excel sheet
func ExportProductsExcel(c *gin.Context) {
	utils.LogInfo("ExportProductsExcel called")

	query := config.DB.Model(&models.Product{}).
		Preload("Subcategory").
		Preload("Variants", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		Order("id DESC")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		utils.LogError("Failed to fetch products for export: %v", err)
		utils.InternalServerError(c, "Failed to fetch products", err.Error())
		return
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Catalog")
	if err != nil {
		utils.LogError("Failed to create Excel sheet: %v", err)
		utils.InternalServerError(c, "Failed to create Excel sheet", err.Error())
		return
	}

	header := sheet.AddRow()
	for _, col := range []string{"ID", "Name", "Slug", "Status", "Price", "SKU", "Stock", "Subcategory", "Variants"} {
		cell := header.AddCell()
		cell.SetString(col)
		style := xlsx.NewStyle()
		font := xlsx.DefaultFont()
		font.Bold = true
		style.Font = *font
		cell.SetStyle(style)
	}

	for _, p := range products {
		row := sheet.AddRow()
		row.AddCell().SetInt(int(p.ID))
		row.AddCell().SetString(p.Name)
		row.AddCell().SetString(p.Slug)
		row.AddCell().SetString(p.Status)
		if p.Price != nil {
			row.AddCell().SetFloat(*p.Price)
		} else {
			row.AddCell().SetString("")
		}
		if p.SKU != nil {
			row.AddCell().SetString(*p.SKU)
		} else {
			row.AddCell().SetString("")
		}
		if p.Stock != nil {
			row.AddCell().SetInt(*p.Stock)
		} else {
			row.AddCell().SetString("")
		}
		if p.Subcategory != nil {
			row.AddCell().SetString(p.Subcategory.Name)
		} else {
			row.AddCell().SetString("")
		}
		row.AddCell().SetInt(len(p.Variants))
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=catalog_%s.xlsx", time.Now().Format("2006-01-02")))

	if err := file.Write(c.Writer); err != nil {
		utils.LogError("Failed to write Excel file: %v", err)
	}
}
