package main

import (
	"log"

	"github.com/mercadoverde/storefront/config"
	"github.com/mercadoverde/storefront/controllers"
	"github.com/mercadoverde/storefront/routes"
	"github.com/mercadoverde/storefront/utils"
)

func main() {
	// Initialize logger
	if err := utils.InitLogger(); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	// Load environment variables
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.LogError("Error loading config: %v", err)
		log.Fatal("Error loading config:", err)
	}

	// Initialize database
	config.InitDB()

	// Initialize object storage
	config.InitStorage()

	// Optional redis cache
	if err := config.InitCache(); err != nil {
		utils.LogError("Cache unavailable, continuing without it: %v", err)
	}

	// Seed initial admin account
	if err := controllers.CreateSampleAdmin(); err != nil {
		utils.LogError("Failed to create bootstrap admin: %v", err)
		log.Fatal("Failed to create bootstrap admin:", err)
	}

	// Set up router
	router := routes.SetupRouter()

	// Add middleware
	router.Use(utils.LoggerMiddleware())
	router.Use(utils.CORSMiddleware())
	router.Use(utils.RecoveryMiddleware())
	router.Use(utils.RequestIDMiddleware())
	router.Use(utils.SecurityHeadersMiddleware())

	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	utils.LogInfo("Server starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		utils.LogError("Error starting server: %v", err)
		log.Fatal("Error starting server:", err)
	}
}
