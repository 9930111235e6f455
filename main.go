package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/helpkhazaana-eng/production-app/config"
	"github.com/helpkhazaana-eng/production-app/middlewares"
	"github.com/helpkhazaana-eng/production-app/models"
	"github.com/helpkhazaana-eng/production-app/router"
	"github.com/helpkhazaana-eng/production-app/services"
	"github.com/helpkhazaana-eng/production-app/storage"
	"github.com/helpkhazaana-eng/production-app/utils"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	utils.InitLogger()
}

func main() {
	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := db.AutoMigrate(&models.Document{}); err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}

	store := storage.NewGormStore(db)
	sheets := services.GetSheetsService()
	if err := sheets.ValidateConfig(); err != nil {
		// Checkout will fail until the sheet endpoint is configured, but the
		// rest of the storefront still works.
		utils.ErrorLogger.Printf("Warning: sheets not configured: %v", err)
	}

	monitor := services.NewSheetsMonitor(sheets)
	monitor.Start()
	defer monitor.Stop()

	r := router.SetupRouter(store, sheets, monitor)

	rateLimiter := middlewares.NewRateLimiter(50, 1)
	r.Use(rateLimiter.RateLimit())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	utils.InfoLogger.Printf("Listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
