package server

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"addressregistry/internal/adapters/logger"
	"addressregistry/internal/adapters/registry"
	"addressregistry/internal/domain/address"
	httpports "addressregistry/internal/ports/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// HandlerAdapter adapts the registry service to HTTP handlers
type HandlerAdapter struct {
	registryService httpports.RegistryService
	logger          *logger.Logger
}

func NewHandlerAdapter(registryService httpports.RegistryService, logger *logger.Logger) *HandlerAdapter {
	return &HandlerAdapter{
		registryService: registryService,
		logger:          logger,
	}
}

// ListAddresses handles GET /api/v1/addresses?kind=
func (h *HandlerAdapter) ListAddresses(c echo.Context) error {
	kind := address.Kind(strings.ToLower(strings.TrimSpace(c.QueryParam("kind"))))
	switch kind {
	case "", address.KindToken, address.KindRouter, address.KindFactory, address.KindQuoter:
	default:
		return c.JSON(http.StatusBadRequest, httpports.ErrorResponse{
			Error:   "Bad Request",
			Message: "kind must be one of token, router, factory, quoter",
		})
	}

	entries, err := h.registryService.ListAddresses(c.Request().Context(), kind)
	if err != nil {
		h.logger.Error("Failed to list addresses", zap.String("kind", string(kind)), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, httpports.ErrorResponse{
			Error:   "Internal Server Error",
			Message: err.Error(),
		})
	}

	return c.JSON(http.StatusOK, httpports.ToHTTPAddressList(entries))
}

// GetAddress handles GET /api/v1/addresses/:symbol
func (h *HandlerAdapter) GetAddress(c echo.Context) error {
	symbol := c.Param("symbol")
	if strings.TrimSpace(symbol) == "" {
		return c.JSON(http.StatusBadRequest, httpports.ErrorResponse{
			Error:   "Bad Request",
			Message: "symbol is required",
		})
	}

	a, err := h.registryService.GetAddress(c.Request().Context(), symbol)
	if err != nil {
		if errors.Is(err, address.ErrAddressNotFound) {
			h.logger.Debug("Unknown symbol requested", zap.String("symbol", symbol))
			return c.JSON(http.StatusNotFound, httpports.ErrorResponse{
				Error:   "Not Found",
				Message: err.Error(),
			})
		}
		h.logger.Error("Failed to get address", zap.String("symbol", symbol), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, httpports.ErrorResponse{
			Error:   "Internal Server Error",
			Message: err.Error(),
		})
	}

	return c.JSON(http.StatusOK, httpports.ToHTTPAddress(a))
}

// LookupAddress handles GET /api/v1/addresses/lookup/:value
func (h *HandlerAdapter) LookupAddress(c echo.Context) error {
	value := c.Param("value")

	entries, err := h.registryService.LookupAddress(c.Request().Context(), value)
	if err != nil {
		switch {
		case errors.Is(err, registry.ErrInvalidEntry):
			return c.JSON(http.StatusBadRequest, httpports.ErrorResponse{
				Error:   "Bad Request",
				Message: "value must be 0x followed by 40 hex characters",
			})
		case errors.Is(err, address.ErrAddressNotFound):
			return c.JSON(http.StatusNotFound, httpports.ErrorResponse{
				Error:   "Not Found",
				Message: err.Error(),
			})
		}
		h.logger.Error("Failed to lookup address", zap.String("value", value), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, httpports.ErrorResponse{
			Error:   "Internal Server Error",
			Message: err.Error(),
		})
	}

	return c.JSON(http.StatusOK, httpports.ToHTTPAddressList(entries))
}

// ValidateAddress handles GET /api/v1/validate/:value
func (h *HandlerAdapter) ValidateAddress(c echo.Context) error {
	return c.JSON(http.StatusOK, httpports.ToHTTPValidation(c.Param("value")))
}

// Integrity handles GET /api/v1/integrity
func (h *HandlerAdapter) Integrity(c echo.Context) error {
	groups := h.registryService.CheckIntegrity(c.Request().Context())
	return c.JSON(http.StatusOK, httpports.ToHTTPIntegrity(groups))
}

func (h *HandlerAdapter) HealthCheck(c echo.Context) error {
	status := map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "address-registry",
		"version":   "1.0.0",
	}
	return c.JSON(http.StatusOK, status)
}
