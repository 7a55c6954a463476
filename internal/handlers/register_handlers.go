package handlers

import (
	"net/http"

	"github.com/blogweb/backend/cmd/docs"
	portssvc "github.com/blogweb/backend/internal/core/ports/services"
	"github.com/blogweb/backend/internal/dto"
	"github.com/blogweb/backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using
// interfaces.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	api := r.Group("/api")

	// Health check route
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "OK",
			"message": "BlogWEB Backend is running",
		})
	})

	registerAuthRoutes(api, cfg, services.User)
	registerCommentRoutes(api, cfg, services.Comment, services.User)

	// JSON 404 for unknown routes
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "Route not found"})
	})

	setupSwaggerRoutes(r, cfg)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// respondInternal answers 500. The diagnostic detail is only included outside
// production.
func respondInternal(c *gin.Context, isProduction bool, message string, err error) {
	body := dto.InternalErrorResponse{Message: message}
	if !isProduction && err != nil {
		body.Error = err.Error()
	}
	c.JSON(http.StatusInternalServerError, body)
}
