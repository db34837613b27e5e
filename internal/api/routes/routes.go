package routes

import (
	"fmt"

	"cleaning-ops-backend/internal/api/handlers"
	"cleaning-ops-backend/internal/api/middleware"
	"cleaning-ops-backend/internal/auth"
	"cleaning-ops-backend/internal/cache"
	"cleaning-ops-backend/internal/config"
	"cleaning-ops-backend/internal/repository"
	"cleaning-ops-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application.
// redisClient may be nil, which turns the counts cache off and keeps rate
// limits in process memory.
func SetupRoutes(db *gorm.DB, cfg *config.Config, redisClient *redis.Client, authService *auth.AuthService) (*gin.Engine, error) {
	if authService == nil {
		return nil, fmt.Errorf("auth service is required")
	}

	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	var store cache.Store = cache.Noop{}
	if redisClient != nil {
		store = cache.NewRedisStore(redisClient)
	}

	// Initialize repositories
	txManager := repository.NewTxManager(db)
	cleaningRepo := repository.NewCleaningRepository(db)
	assigneeRepo := repository.NewCleaningAssigneeRepository(db)
	propertyRepo := repository.NewPropertyRepository(db)
	membershipRepo := repository.NewMembershipRepository(db)
	reviewRepo := repository.NewInventoryReviewRepository(db)

	// Initialize services
	policy := service.NewAvailabilityPolicyFromConfig(cfg)
	scopeService := service.NewTeamScopeService(membershipRepo, propertyRepo)
	reviewService := service.NewInventoryReviewService(cleaningRepo, reviewRepo)
	eligibilityService := service.NewEligibilityService(cleaningRepo, scopeService, policy, store, cfg.CountsCacheTTL(), validator, logrus.StandardLogger())
	assignmentService := service.NewAssignmentService(txManager, cleaningRepo, assigneeRepo, propertyRepo, scopeService, policy, reviewService, store, logrus.StandardLogger())

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, redisClient)
	cleaningHandler := handlers.NewCleaningHandler(eligibilityService, assignmentService, scopeService)

	rateStore, err := middleware.NewRateLimitStore(redisClient)
	if err != nil {
		return nil, err
	}
	claimLimit, err := middleware.RateLimit(cfg.ClaimRateLimit, rateStore)
	if err != nil {
		return nil, err
	}

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(auth.NewAuthMiddleware(authService).RequireAuth())
	{
		v1.GET("/me/scope", cleaningHandler.MyScope)
		v1.GET("/availability-window", cleaningHandler.AvailabilityWindow)

		cleanings := v1.Group("/cleanings")
		{
			cleanings.GET("/available", cleaningHandler.ListAvailable)
			cleanings.GET("/mine", cleaningHandler.ListMine)
			cleanings.GET("/lost", cleaningHandler.ListLost)
			cleanings.GET("/counts", cleaningHandler.Counts)

			// Lifecycle mutations share one per-user budget
			lifecycle := cleanings.Group("/:id", claimLimit)
			{
				lifecycle.POST("/claim", cleaningHandler.Claim)
				lifecycle.POST("/start", cleaningHandler.Start)
				lifecycle.POST("/complete", cleaningHandler.Complete)
				lifecycle.POST("/decline", cleaningHandler.Decline)
			}
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router, nil
}
