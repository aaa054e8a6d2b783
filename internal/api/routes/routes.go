package routes

import (
	"salesflow-backend/internal/api/handlers"
	"salesflow-backend/internal/api/middleware"
	"salesflow-backend/internal/config"
	"salesflow-backend/internal/insight"
	"salesflow-backend/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application. db is nil
// when no database is configured.
func SetupRoutes(db *gorm.DB, cfg *config.Config, s *store.Store, feed *store.Feed, insights insight.Generator) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validate := validator.New()

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	dealsHandler := handlers.NewDealsHandler(s, insights, validate)
	repsHandler := handlers.NewRepsHandler(s, validate)
	metricsHandler := handlers.NewMetricsHandler(s)
	customersHandler := handlers.NewCustomersHandler(s)
	insightsHandler := handlers.NewInsightsHandler(s, insights)
	liveHandler := handlers.NewLiveHandler(feed, validate)
	noticesHandler := handlers.NewNoticesHandler(s)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Deal routes
		deals := v1.Group("/deals")
		{
			deals.GET("", dealsHandler.ListDeals)
			deals.POST("", dealsHandler.CreateDeal)
			deals.PUT("/:id", dealsHandler.UpdateDeal)
			deals.DELETE("/:id", dealsHandler.DeleteDeal)
			deals.PATCH("/:id/stage", dealsHandler.MoveStage)
			deals.PATCH("/:id/notes", dealsHandler.UpdateNotes)
			deals.PATCH("/:id/editing", dealsHandler.SetEditing)
			deals.GET("/:id/insight", dealsHandler.DealInsight)
		}

		// Rep routes
		reps := v1.Group("/reps")
		{
			reps.GET("", repsHandler.ListReps)
			reps.PATCH("/:id/quota", repsHandler.UpdateQuota)
			reps.GET("/:id/incentive", repsHandler.Incentive)
		}

		// Metrics routes
		metrics := v1.Group("/metrics")
		{
			metrics.GET("", metricsHandler.Summary)
			metrics.GET("/stages", metricsHandler.Stages)
			metrics.GET("/categories", metricsHandler.Categories)
			metrics.GET("/business-types", metricsHandler.BusinessTypes)
			metrics.GET("/monthly", metricsHandler.Monthly)
			metrics.GET("/performance", metricsHandler.Performance)
		}

		// Customer registry
		v1.GET("/customers", customersHandler.Registry)

		// Insights
		v1.GET("/insights/pipeline", insightsHandler.Pipeline)

		// Live feed control
		v1.GET("/live", liveHandler.Status)
		v1.PATCH("/live", liveHandler.Toggle)

		// Rollback notices
		v1.GET("/notices", noticesHandler.List)
		v1.DELETE("/notices", noticesHandler.Clear)
	}

	return router
}
