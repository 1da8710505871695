package api

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lifeline-labs/organ-backend-go/internal/config"
	"github.com/lifeline-labs/organ-backend-go/internal/geoindex"
	"github.com/lifeline-labs/organ-backend-go/internal/handler"
	"github.com/lifeline-labs/organ-backend-go/internal/middleware"
	"github.com/lifeline-labs/organ-backend-go/internal/repository"
	"github.com/lifeline-labs/organ-backend-go/internal/service"
)

// SetupRouter wires repositories, services and handlers into a gin engine
func SetupRouter(cfg *config.Config, db *sql.DB, logger *zap.Logger) (*gin.Engine, error) {
	hospitalRepo := repository.NewHospitalRepository(db)
	organRepo := repository.NewOrganRepository(db)
	sessionStore := repository.NewMemorySessionStore()

	index := geoindex.NewHospitalIndex()
	hospitals, err := hospitalRepo.List()
	if err != nil {
		return nil, err
	}
	if err := index.Load(hospitals); err != nil {
		return nil, err
	}

	geoService := service.NewGeolocationService(service.UnimplementedResolver{}, logger)
	organService := service.NewOrganSearchService(organRepo, geoService, logger)
	routingService := service.NewRoutingService(logger)
	navService := service.NewNavigationService(routingService, sessionStore, logger)

	r := gin.New()
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.RateLimit(cfg.RateLimit, cfg.RateLimitWindow))

	// CORS
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Organ Transplant Backend API is running",
		})
	})

	geoHandler := handler.NewGeoHandler(geoService)
	hospitalHandler := handler.NewHospitalHandler(hospitalRepo, index, cfg.DefaultMaxDistanceKm)
	organHandler := handler.NewOrganHandler(organService)
	routingHandler := handler.NewRoutingHandler(routingService, hospitalRepo)
	navHandler := handler.NewNavigationHandler(navService)

	api := r.Group("/api/v1")
	{
		api.GET("/distance", geoHandler.Distance)
		api.POST("/geocode", geoHandler.Geocode)

		hospitalGroup := api.Group("/hospitals")
		{
			hospitalGroup.GET("", hospitalHandler.List)
			hospitalGroup.GET("/nearby", hospitalHandler.Nearby)
			hospitalGroup.GET("/:id", hospitalHandler.Get)
		}

		organGroup := api.Group("/organs")
		{
			organGroup.GET("", organHandler.List)
			organGroup.GET("/search", organHandler.Search)
		}

		routeGroup := api.Group("/routes")
		{
			routeGroup.POST("/directions", routingHandler.Directions)
			routeGroup.POST("/emergency", routingHandler.Emergency)
			routeGroup.POST("/rank", routingHandler.Rank)
		}

		navGroup := api.Group("/navigation")
		{
			navGroup.POST("/start", navHandler.Start)
			navGroup.GET("/:id", navHandler.Get)
			navGroup.PUT("/:id/update", navHandler.Update)
			navGroup.POST("/:id/end", navHandler.End)
		}
	}

	// Abandoned sessions are swept in the background for the process lifetime
	navService.StartSweeper(cfg.SessionTTL, cfg.SessionTTL, make(chan struct{}))

	return r, nil
}
