package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/noplanb/backend/config"
	"github.com/noplanb/backend/internal/analytics"
	"github.com/noplanb/backend/internal/auth"
	"github.com/noplanb/backend/internal/cache"
	"github.com/noplanb/backend/internal/database"
	"github.com/noplanb/backend/internal/handlers"
	"github.com/noplanb/backend/internal/middleware"
	"github.com/noplanb/backend/internal/repository"
	"github.com/noplanb/backend/internal/websocket"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database
	db, err := database.NewPostgresDB(cfg.GetDSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Run migrations
	log.Println("Running database migrations...")
	if err := database.RunMigrations(db.DB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	// Connect to Redis
	redis, err := cache.NewRedisClient(cfg.GetRedisAddr(), cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis: %v", err)
		log.Println("Running without Redis - caching and the live activity feed are disabled")
		redis = nil
	} else {
		defer redis.Close()
	}

	// Initialize services
	jwtService := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.ExpiryHours)
	provider := analytics.NewSimulatedProvider(time.Now().UnixNano())

	// Initialize repositories
	adminRepo := repository.NewAdminRepository(db)
	episodeRepo := repository.NewEpisodeRepository(db)
	reelRepo := repository.NewReelRepository(db)
	sponsorRepo := repository.NewSponsorRepository(db)
	subscriberRepo := repository.NewSubscriberRepository(db)
	activityRepo := repository.NewActivityRepository(db)

	// Ensure the admin account exists
	if cfg.Admin.Password != "" {
		hash, err := auth.HashPassword(cfg.Admin.Password)
		if err != nil {
			log.Fatalf("Failed to hash admin password: %v", err)
		}
		if _, err := adminRepo.Ensure(cfg.Admin.Email, hash); err != nil {
			log.Fatalf("Failed to ensure admin account: %v", err)
		}
	} else {
		log.Println("Warning: ADMIN_PASSWORD not set - no admin account seeded")
	}

	// Initialize handlers
	cacheTTL := time.Duration(cfg.API.CacheTTLSeconds) * time.Second
	authHandler := handlers.NewAuthHandler(adminRepo, jwtService)
	publicHandler := handlers.NewPublicHandler(episodeRepo, reelRepo, sponsorRepo, redis, cacheTTL)
	subscribeHandler := handlers.NewSubscribeHandler(subscriberRepo)
	episodeHandler := handlers.NewEpisodeHandler(episodeRepo, activityRepo, redis)
	reelHandler := handlers.NewReelHandler(reelRepo, activityRepo, redis)
	sponsorHandler := handlers.NewSponsorHandler(sponsorRepo, activityRepo, redis)
	dashboardHandler := handlers.NewDashboardHandler(episodeRepo, reelRepo, sponsorRepo, subscriberRepo, activityRepo, provider)

	// Initialize WebSocket hub (only if Redis is available)
	var wsHandler *websocket.Handler
	if redis != nil {
		hub := websocket.NewHub(redis)
		go hub.Run()
		wsHandler = websocket.NewHandler(hub, jwtService, cfg.CORS.AllowedOrigins)
	}

	// Initialize rate limiter for the subscribe endpoint
	rateLimiter := middleware.NewRateLimiter(cfg.API.RateLimitSubscribesPerSec)
	rateLimiter.Cleanup()

	// Setup Gin router
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Middleware
	router.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public routes
	authRoutes := router.Group("/auth")
	{
		authRoutes.POST("/login", authHandler.Login)
	}

	public := router.Group("/api/v1")
	{
		public.GET("/episodes", publicHandler.ListEpisodes)
		public.GET("/reels", publicHandler.ListReels)
		public.GET("/sponsors", publicHandler.ListSponsors)
		public.GET("/landing", publicHandler.Landing)
		public.POST("/subscribe", middleware.RateLimitMiddleware(rateLimiter), subscribeHandler.Subscribe)
	}

	// Admin WebSocket activity feed (only if Redis is available)
	if wsHandler != nil {
		router.GET("/api/v1/admin/ws", wsHandler.HandleWebSocket)
	}

	// Protected admin routes
	admin := router.Group("/api/v1/admin")
	admin.Use(middleware.AuthMiddleware(jwtService))
	{
		admin.GET("/me", authHandler.GetMe)

		admin.GET("/episodes", episodeHandler.List)
		admin.POST("/episodes", episodeHandler.Create)
		admin.PUT("/episodes/:id", episodeHandler.Update)
		admin.DELETE("/episodes/:id", episodeHandler.Delete)

		admin.GET("/reels", reelHandler.List)
		admin.POST("/reels", reelHandler.Create)
		admin.PUT("/reels/:id", reelHandler.Update)
		admin.DELETE("/reels/:id", reelHandler.Delete)

		admin.GET("/sponsors", sponsorHandler.List)
		admin.POST("/sponsors", sponsorHandler.Create)
		admin.PUT("/sponsors/:id", sponsorHandler.Update)
		admin.DELETE("/sponsors/:id", sponsorHandler.Delete)

		admin.GET("/subscribers", subscribeHandler.ListSubscribers)
		admin.GET("/dashboard", dashboardHandler.Dashboard)
		admin.GET("/analytics", dashboardHandler.Analytics)
		admin.GET("/activity", dashboardHandler.Activity)
	}

	// Start server
	addr := ":" + cfg.Server.Port
	log.Printf("Starting No Plan B backend on %s (env: %s)", addr, cfg.Server.Env)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
