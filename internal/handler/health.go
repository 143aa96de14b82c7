package handler

import (
	"context"
	"time"

	"vocab-drills/internal/domain"
	"vocab-drills/internal/dto"
	"vocab-drills/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const healthCheckTimeout = 2 * time.Second

// HealthHandler reports liveness and cache reachability.
type HealthHandler struct {
	cache domain.Cache
}

// NewHealthHandler accepts a nil cache when the service runs without Redis.
func NewHealthHandler(cache domain.Cache) *HealthHandler {
	return &HealthHandler{cache: cache}
}

// Check handles GET /health. A down cache degrades the service but does
// not make it unhealthy, since banks load without it.
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	resp := dto.HealthResponse{Status: "ok", Cache: "disabled"}
	if h.cache == nil {
		return c.JSON(resp)
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), healthCheckTimeout)
	defer cancel()
	if err := h.cache.Ping(ctx); err != nil {
		logger.Get().Warn("Cache health check failed", zap.Error(err))
		resp.Status = "degraded"
		resp.Cache = "unreachable"
		return c.JSON(resp)
	}
	resp.Cache = "ok"
	return c.JSON(resp)
}
