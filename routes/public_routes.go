package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mercadoverde/storefront/controllers"
	"github.com/mercadoverde/storefront/utils"
)

func initPublicRoutes(router *gin.RouterGroup) {
	utils.LogInfo("Registering public routes")

	router.GET("/landing", controllers.GetLanding)
	router.GET("/categories", controllers.ListPublicCategories)
	router.GET("/offers", controllers.ListCurrentOffers)
	router.GET("/products", controllers.ListPublicProducts)
	router.GET("/products/:slug", controllers.GetPublicProduct)

	utils.LogInfo("Public routes registration completed")
}
