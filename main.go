package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/PaynestHQ/paynest-mobile/config"
	"github.com/PaynestHQ/paynest-mobile/handlers"
	"github.com/PaynestHQ/paynest-mobile/middleware"
	"github.com/PaynestHQ/paynest-mobile/routes"
	"github.com/PaynestHQ/paynest-mobile/services"
	"github.com/PaynestHQ/paynest-mobile/store"
	"github.com/PaynestHQ/paynest-mobile/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	var userStore store.UserStore
	if cfg.DatabaseURL != "" {
		db, err := config.InitDB()
		if err != nil {
			log.Fatal("Failed to connect to database:", err)
		}
		defer db.Close()

		log.Println("✅ Database connected successfully")

		if err := config.RunMigrations(db); err != nil {
			log.Fatal("Failed to run migrations:", err)
		}

		userStore = store.NewPostgresStore(db)
	} else {
		log.Println("⚠️  No DATABASE_URL set, using in-memory store (development only)")
		userStore = store.NewMemoryStore()
	}

	emailService := services.NewEmailService(cfg.ResendAPIKey, cfg.FromEmail)
	wsHandler := handlers.NewWSHandler()

	router := gin.Default()

	log.Printf("🌍 CORS: Allowing origins:")
	for _, origin := range cfg.AllowedOrigins {
		log.Printf("   - %s", origin)
	}

	corsConfig := cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           86400,
	}
	router.Use(cors.New(corsConfig))

	router.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)
		utils.LogAPIRequest(c.Request.Method, c.Request.URL.Path,
			middleware.GetUserID(c), c.Writer.Status(), duration.String())
	})

	router.Use(middleware.RateLimiter())

	routes.NewRouter(router, userStore, emailService, wsHandler)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	utils.LogStartup("Paynest API", "1.0.0", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
