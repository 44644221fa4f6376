package http

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/sugarcheck/backend/config"
)

// SetupRouter creates and configures the Gin router.
func SetupRouter(cfg *config.Config, handler *Handler, log *logrus.Logger) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(RequestLogger(log))
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		foods := v1.Group("/foods")
		{
			foods.GET("/search", handler.SearchFoods)
			foods.GET("/barcode/:code", handler.LookupBarcode)
			foods.GET("/history", handler.SearchHistory)
		}

		v1.POST("/sugar/convert", handler.ConvertSugar)

		tracker := v1.Group("/tracker")
		{
			tracker.POST("/entries", handler.TrackEntry)
			tracker.GET("/entries", handler.GetDailySummary)
			tracker.GET("/entries/range", handler.GetEntriesRange)
			tracker.DELETE("/entries", handler.ClearDay)
			tracker.DELETE("/entries/:id", handler.DeleteEntry)
		}

		favorites := v1.Group("/favorites")
		{
			favorites.POST("", handler.AddFavorite)
			favorites.GET("", handler.ListFavorites)
			favorites.DELETE("", handler.ClearFavorites)
			favorites.DELETE("/:id", handler.RemoveFavorite)
		}

		v1.GET("/insights/trend", handler.GetTrend)

		users := v1.Group("/users")
		{
			users.GET("/:id", handler.GetUser)
			users.PATCH("/:id/limit", handler.UpdateDailyLimit)
		}
	}

	return router
}
