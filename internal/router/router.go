package router

import (
	"net/http"
	"time"

	"github.com/cafemine/mine-backend/internal/config"
	"github.com/cafemine/mine-backend/internal/handler"
	"github.com/cafemine/mine-backend/internal/middleware"
	"github.com/cafemine/mine-backend/internal/response"
	"github.com/cafemine/mine-backend/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth      *handler.AuthHandler
	Category  *handler.CategoryHandler
	Menu      *handler.MenuHandler
	Media     *handler.MediaHandler
	Assistant *handler.AssistantHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
		corsConfig.AllowCredentials = true
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply brotli compression globally; it skips /uploads itself.
	router.Use(middleware.Brotli())

	// Apply request ID middleware globally for log correlation.
	router.Use(response.RequestIDMiddleware())

	// Serve uploaded images statically with aggressive caching (1 year);
	// filenames are UUIDs, so entries never go stale.
	uploadsGroup := router.Group("/uploads")
	uploadsGroup.Use(middleware.CacheControl(31536000))
	{
		uploadsGroup.Static("/", cfg.UploadDir)
	}

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")

	// ─── Admin session (public endpoints + cookie-bound check) ─────────
	admin := api.Group("/admin")
	{
		admin.POST("/login", handlers.Auth.Login)
		admin.POST("/logout", handlers.Auth.Logout)
		admin.GET("/me", middleware.OptionalAdmin(authService), handlers.Auth.Me)
	}

	// ─── Categories ────────────────────────────────────────────────────
	categories := api.Group("/categories")
	{
		categories.GET("", handlers.Category.ListCategories)
		categories.POST("", middleware.RequireAdmin(authService), handlers.Category.CreateCategory)
		categories.DELETE("/:id", middleware.RequireAdmin(authService), handlers.Category.DeleteCategory)
	}

	// ─── Menu ──────────────────────────────────────────────────────────
	menu := api.Group("/menu")
	{
		// A resolved admin cookie widens the listing to unavailable items.
		menu.GET("", middleware.OptionalAdmin(authService), handlers.Menu.ListMenu)
		menu.POST("", middleware.RequireAdmin(authService), handlers.Menu.CreateItem)
		menu.PUT("/:id", middleware.RequireAdmin(authService), handlers.Menu.UpdateItem)
		menu.DELETE("/:id", middleware.RequireAdmin(authService), handlers.Menu.DeleteItem)
	}

	// ─── Upload ────────────────────────────────────────────────────────
	api.POST("/upload", middleware.RequireAdmin(authService), handlers.Media.Upload)

	// ─── Assistant ─────────────────────────────────────────────────────
	api.POST("/ai/recommend", handlers.Assistant.Recommend)

	return router
}
