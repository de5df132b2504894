package app

import (
	"litgen_backend/docs"
	"litgen_backend/internal/config"
	"litgen_backend/internal/middleware"
	"litgen_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
		public.GET("/grades", c.standard.GetGrades)
		public.GET("/standards/:gradeId", c.standard.GetStandards)
	}

	// Generation works for guests; a valid token attributes the result.
	generation := router.Group("/api")
	generation.Use(middleware.TryAuthMiddleware(cfg))
	{
		generation.POST("/generate", c.generation.Generate)
		generation.POST("/modify-passage", c.generation.ModifyPassage)
		generation.POST("/generate-questions", c.question.Generate)
		generation.POST("/export/google-docs", c.export.ExportToGoogleDocs)
		generation.GET("/texts/:id", c.generation.GetText)
	}

	authorized := router.Group("/api")
	authorized.Use(middleware.AuthMiddleware(cfg))
	{
		authorized.GET("/texts", c.generation.ListTexts)
		authorized.GET("/texts/:id/questions", c.question.ListForText)
	}
}
