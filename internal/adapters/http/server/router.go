package server

import (
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// registerRoutes registers all HTTP routes using Echo
func registerRoutes(e *echo.Echo, handler *HandlerAdapter, limiter Limiter) {
	e.GET("/health", handler.HealthCheck)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	v1 := e.Group("/api/v1", rateLimit(limiter))

	addresses := v1.Group("/addresses")
	addresses.GET("", handler.ListAddresses)
	addresses.GET("/lookup/:value", handler.LookupAddress)
	addresses.GET("/:symbol", handler.GetAddress)

	v1.GET("/validate/:value", handler.ValidateAddress)
	v1.GET("/integrity", handler.Integrity)
}
