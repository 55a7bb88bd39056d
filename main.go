package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/J3FF-omg/SaveFood/checkout"
	"github.com/J3FF-omg/SaveFood/config"
	"github.com/J3FF-omg/SaveFood/handlers"
	"github.com/J3FF-omg/SaveFood/routes"
	"github.com/J3FF-omg/SaveFood/store"
)

func main() {
	cfg := config.Load()

	// Set Gin mode
	if cfg.GinMode == "" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(cfg.GinMode)
	}

	// Initialize the store and load the sample dataset
	db, err := store.Open(cfg.DSN)
	if err != nil {
		log.Fatal("Failed to open store:", err)
	}
	if err := store.Seed(db); err != nil {
		log.Fatal("Failed to seed store:", err)
	}

	identity := store.NewIdentity(db)
	catalog := store.NewCatalog(db)
	ledger := store.NewLedger(db)

	h := &handlers.Handler{
		Identity:  identity,
		Catalog:   catalog,
		Ledger:    ledger,
		Checkout:  checkout.New(catalog, ledger),
		JWTSecret: cfg.JWTSecret,
	}

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "SaveFood Marketplace API",
			"version": "1.0.0",
		})
	})

	// Welcome
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "🌱 Welcome to the SaveFood Marketplace API",
			"docs":    "/api/state-machine",
			"health":  "/health",
			"roles":   []string{"admin", "seller", "buyer"},
		})
	})

	// Register all routes
	routes.SetupRoutes(r, h)

	// Start server
	log.Printf("🚀 Server running on http://localhost%s", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
