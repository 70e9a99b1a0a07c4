package app

import (
	"time"

	"career_advisor_backend/docs"
	"career_advisor_backend/internal/config"
	"career_advisor_backend/internal/middleware"
	"career_advisor_backend/pkg/monitoring"
	"career_advisor_backend/pkg/security"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	if cfg.RateLimit.MaxRequests > 0 {
		window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
		router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, window))
	}
	router.Use(monitoring.MetricsMiddleware())
}

func (a *App) registerRoutes(router *gin.Engine, c *controllers, s *services) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/api/health", c.health.Check)

	api := router.Group("/api")
	api.Use(middleware.AuthMiddleware(s.session))
	{
		api.GET("/profile", c.profile.Get)
		api.PUT("/profile", c.profile.Update)

		api.GET("/assessments", c.assessment.List)
		api.POST("/assessments", c.assessment.Create)

		api.GET("/streak", c.streak.Get)
		api.POST("/streak", c.streak.Advance)

		api.GET("/tasks", c.task.List)
		api.POST("/tasks", c.task.Create)
		api.PATCH("/tasks", c.task.Patch)
		api.DELETE("/tasks", c.task.Delete)

		api.GET("/progress", c.progress.List)
		api.POST("/progress", c.progress.Upsert)

		api.GET("/ratings", c.rating.List)
		api.POST("/ratings", c.rating.Upsert)

		api.GET("/recommendations", c.recommendation.Latest)
		api.POST("/recommendations", c.recommendation.Upsert)

		api.GET("/resources", c.resource.List)

		api.POST("/chat", c.chat.Reply)
	}
}
