package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthHandler reports liveness for load balancers and probes
type HealthHandler struct {
	service string
}

// NewHealthHandler creates a HealthHandler reporting service as its name
func NewHealthHandler(service string) *HealthHandler {
	return &HealthHandler{service: service}
}

// RegisterHealthRoutes registers the health endpoint
func (h *HealthHandler) RegisterHealthRoutes(g *echo.Group) {
	g.GET("/health", h.HealthCheck)
}

func (h *HealthHandler) HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": h.service,
	})
}
