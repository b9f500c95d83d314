package api

import (
	"videorental/api/customer"
	"videorental/api/film"
	"videorental/api/health"
	"videorental/api/middleware"
	"videorental/api/rental"
	"videorental/config"

	"github.com/gin-gonic/gin"
)

// Router Route configuration
type Router struct {
	engine             *gin.Engine
	config             *config.Config
	healthController   *health.Controller
	customerController *customer.Controller
	filmController     *film.Controller
	rentalController   *rental.Controller
}

// NewRouter Create route configuration
func NewRouter(
	cfg *config.Config,
	healthController *health.Controller,
	customerController *customer.Controller,
	filmController *film.Controller,
	rentalController *rental.Controller,
) *Router {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	// Middleware order matters: request id first, recovery before
	// anything that can panic.
	engine.Use(middleware.RequestIDMiddleware())
	engine.Use(middleware.RecoveryMiddleware())
	engine.Use(middleware.LoggingMiddleware())
	engine.Use(middleware.CORSMiddleware(&cfg.CORS))
	engine.Use(middleware.RateLimitMiddleware(&cfg.Server.RateLimit))

	return &Router{
		engine:             engine,
		config:             cfg,
		healthController:   healthController,
		customerController: customerController,
		filmController:     filmController,
		rentalController:   rentalController,
	}
}

// SetupRoutes Set up all routes
func (r *Router) SetupRoutes() {
	r.healthController.RegisterRoutes(r.engine)

	apiGroup := r.engine.Group("/api")
	{
		r.customerController.RegisterRoutes(apiGroup)
		r.filmController.RegisterRoutes(apiGroup)
		r.rentalController.RegisterRoutes(apiGroup)
	}

	r.engine.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"name":    r.config.App.Name,
			"version": r.config.App.Version,
			"env":     r.config.App.Env,
			"health":  "/health",
		})
	})
}

// GetEngine Get Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
