package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"steakhouse/storefront/internal/config"
	"steakhouse/storefront/internal/handler/middleware"
	jwtpkg "steakhouse/storefront/pkg/jwt"
)

func SetupRouter(
	cfg *config.Config,
	logger *zap.Logger,
	jwtManager *jwtpkg.Manager,
	menuHandler *MenuHandler,
	cartHandler *CartHandler,
	checkoutHandler *CheckoutHandler,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestLogger(logger))
	if len(cfg.CORS.AllowedOrigins) > 0 {
		r.Use(middleware.CORS(cfg.CORS))
	}

	// Health check
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public catalogue
	menu := r.Group("/api/v1/menu")
	{
		menu.GET("", menuHandler.List)
		menu.GET("/:id", menuHandler.Get)
	}

	// Session-scoped routes
	shop := r.Group("/api/v1")
	shop.Use(middleware.Session(jwtManager, cfg.Session, logger))
	{
		shop.GET("/cart", cartHandler.Get)
		shop.DELETE("/cart", cartHandler.Clear)
		shop.POST("/cart/items", cartHandler.AddItem)
		shop.PUT("/cart/items/:id", cartHandler.UpdateQuantity)
		shop.DELETE("/cart/items/:id", cartHandler.RemoveItem)

		shop.POST("/checkout", checkoutHandler.PlaceOrder)
	}

	return r
}
