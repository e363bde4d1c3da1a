package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openlot/openlot-backend-go/internal/config"
	"github.com/openlot/openlot-backend-go/internal/handler"
	"github.com/openlot/openlot-backend-go/internal/middleware"
)

// Handlers groups everything the router wires up.
type Handlers struct {
	Recommend *handler.RecommendHandler
	Location  *handler.LocationHandler
	Selection *handler.SelectionHandler
	Dataset   *handler.DatasetHandler
}

// SetupRouter builds the gin engine with all routes and middleware
func SetupRouter(cfg *config.Config, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, "+middleware.SessionHeader)
		c.Writer.Header().Set("Access-Control-Expose-Headers", middleware.SessionHeader)

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "OpenLot backend is running",
		})
	})

	// API routes
	api := r.Group("/api/v1")
	api.Use(middleware.Session())
	{
		api.GET("/categories", h.Recommend.Categories)

		api.POST("/recommendations", h.Recommend.Recommend)
		api.GET("/recommendations", h.Recommend.RankByCategory)

		locations := api.Group("/locations")
		{
			locations.GET("", h.Location.List)
			locations.GET("/resolve", h.Location.Resolve)
			locations.GET("/nearest", h.Location.Nearest)
		}

		selection := api.Group("/selection")
		{
			selection.GET("", h.Selection.Get)
			selection.POST("", h.Selection.Select)
			selection.DELETE("", h.Selection.Deselect)
		}
	}

	// Admin routes
	admin := r.Group("/api/admin")
	admin.Use(middleware.Auth(cfg.JWTSecret))
	{
		admin.POST("/dataset/reload", h.Dataset.Reload)
		admin.POST("/dataset/import", h.Dataset.Import)
	}

	return r
}
