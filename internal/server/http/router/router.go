package router

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/bengalbay/payserver/internal/config"
	"github.com/bengalbay/payserver/internal/server/http/dto"
	"github.com/bengalbay/payserver/internal/server/http/handlers"
	"github.com/bengalbay/payserver/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.GatewayFacade, cfg *config.Config, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(corsMiddleware(cfg.AllowedOrigin))
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	orderHandler := handlers.NewOrderHandler(facade)
	paymentHandler := handlers.NewPaymentHandler(facade)
	ledgerHandler := handlers.NewLedgerHandler(facade)
	serviceHandler := handlers.NewServiceHandler()

	engine.GET("/", serviceHandler.Root)
	engine.GET("/health", serviceHandler.Health)
	engine.GET("/ready", serviceHandler.Ready)

	api := engine.Group("/api")
	api.GET("/test", serviceHandler.Test)
	api.POST("/create-razorpay-order", orderHandler.Create)
	api.POST("/verify-payment", paymentHandler.Verify)
	api.POST("/log-order", ledgerHandler.LogOrder)
	api.POST("/update-payment-status", ledgerHandler.UpdateStatus)
	api.GET("/orders", ledgerHandler.List)
	api.GET("/test-sheets", ledgerHandler.Status)

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Success: false, Error: "Endpoint not found"})
	})

	return engine
}

func corsMiddleware(origin string) gin.HandlerFunc {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowCredentials = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	if origin == "" || origin == "*" {
		corsCfg.AllowCredentials = false
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = []string{origin}
	}
	return cors.New(corsCfg)
}
