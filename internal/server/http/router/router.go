package router

import (
	"log/slog"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/vkravets/chairshop/internal/server/http/handlers"
	"github.com/vkravets/chairshop/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware. Cross-origin
// access is fully open: the storefront is served from a separate origin.
func Setup(facade handlers.ShopFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type", "Authorization"},
	}))
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	orderHandler := handlers.NewOrderHandler(facade)
	addressHandler := handlers.NewAddressHandler(facade)

	api := engine.Group("/api")

	orders := api.Group("/orders")
	orders.POST("", orderHandler.Create)
	orders.GET("", orderHandler.List)
	orders.PUT("/:id/status", orderHandler.UpdateStatus)
	orders.DELETE("/:id", orderHandler.Delete)

	np := api.Group("/novaposhta")
	np.POST("/cities", addressHandler.Cities)
	np.POST("/warehouses", addressHandler.Warehouses)

	return engine
}
