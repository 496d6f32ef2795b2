package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mercadoverde/storefront/controllers"
	"github.com/mercadoverde/storefront/middleware"
	"github.com/mercadoverde/storefront/utils"
)

func initAdminRoutes(router *gin.RouterGroup) {
	utils.LogInfo("Registering admin routes")

	admin := router.Group("/admin")
	admin.POST("/login", controllers.AdminLogin)

	protected := admin.Group("")
	protected.Use(middleware.AdminAuthMiddleware())
	{
		// products
		protected.GET("/products", controllers.ListProducts)
		protected.POST("/products", controllers.CreateProduct)
		protected.GET("/products/export", controllers.ExportProductsExcel)
		protected.GET("/products/:id", controllers.GetProduct)
		protected.PUT("/products/:id", controllers.UpdateProduct)
		protected.DELETE("/products/:id", controllers.DeleteProduct)

		// product images
		protected.GET("/products/:id/images", controllers.ListProductImages)
		protected.POST("/products/:id/images", controllers.UploadProductImage)
		protected.DELETE("/products/:id/images", controllers.DeleteProductImage)

		// variants
		protected.GET("/products/:id/variants", controllers.ListVariants)
		protected.POST("/products/:id/variants", controllers.CreateVariant)
		protected.PUT("/variants/:id", controllers.UpdateVariant)
		protected.DELETE("/variants/:id", controllers.DeleteVariant)

		// categories
		protected.GET("/categories", controllers.ListCategories)
		protected.POST("/categories", controllers.CreateCategory)
		protected.PUT("/categories/:id", controllers.UpdateCategory)
		protected.DELETE("/categories/:id", controllers.DeleteCategory)
		protected.POST("/categories/:id/subcategories", controllers.CreateSubcategory)
		protected.DELETE("/subcategories/:id", controllers.DeleteSubcategory)

		// category images
		protected.GET("/categories/:id/images", controllers.ListCategoryImages)
		protected.POST("/categories/:id/images", controllers.UploadCategoryImage)
		protected.DELETE("/categories/:id/images", controllers.DeleteCategoryImage)

		// offers
		protected.GET("/offers", controllers.ListOffers)
		protected.POST("/offers", controllers.CreateOffer)
		protected.DELETE("/offers/:id", controllers.DeleteOffer)

		// banners
		protected.GET("/banners", controllers.ListBanners)
		protected.POST("/banners", controllers.CreateBanner)
		protected.PUT("/banners/:id", controllers.UpdateBanner)
		protected.DELETE("/banners/:id", controllers.DeleteBanner)
	}

	utils.LogInfo("Admin routes registration completed")
}
