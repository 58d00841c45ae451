package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

// DatabaseProber reports whether the database answers
type DatabaseProber interface {
	ProbeDatabase(ctx context.Context) error
}

// HealthHandler handles health check endpoints
type HealthHandler struct {
	prober DatabaseProber
	mode   string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(prober DatabaseProber, mode string) *HealthHandler {
	return &HealthHandler{prober: prober, mode: mode}
}

// Root handles root endpoint
// @Summary Root endpoint
// @Description Returns API status
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "running",
		"message": "🚀 User Service API v1.0 is running",
		"mode":    h.mode,
		"docs":    "/swagger/index.html",
	})
}

// HealthCheck handles health check
// @Summary Health check
// @Description Check API and database health
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) HealthCheck(c *fiber.Ctx) error {
	dbStatus := "healthy"
	code := fiber.StatusOK
	if err := h.prober.ProbeDatabase(c.UserContext()); err != nil {
		dbStatus = "unhealthy"
		code = fiber.StatusServiceUnavailable
	}

	return c.Status(code).JSON(fiber.Map{
		"status": "ok",
		"checks": fiber.Map{
			"api":      "healthy",
			"database": dbStatus,
		},
	})
}
