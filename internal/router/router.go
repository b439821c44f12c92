// Package router wires the HTTP routes to their handlers and middleware.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/railway-seat-tracker/internal/config"
	"github.com/iliyamo/railway-seat-tracker/internal/handler"
	"github.com/iliyamo/railway-seat-tracker/internal/middleware"
)

// RegisterRoutes registers routes that do not require authentication.
// Currently that is only the health check used by load balancers.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterSeatRoutes registers the seat lifecycle API under /api.  The
// whole group requires a valid operator token (issued by the external auth
// service) and is rate limited; mutations additionally require the OPERATOR
// role, while reads are open to inspectors too.  The released-seat listing
// is served through the Redis response cache.
func RegisterSeatRoutes(e *echo.Echo, h *handler.SeatHandler, jwtSecret string, rdb *redis.Client) {
	api := e.Group("/api")
	api.Use(middleware.JWTAuth(jwtSecret))
	api.Use(middleware.RequireRole("OPERATOR", "INSPECTOR"))
	api.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	operator := middleware.RequireRole("OPERATOR")
	api.POST("/add-seat", h.AddSeat, operator)
	api.POST("/verify-seat", h.VerifySeat, operator)
	api.POST("/mark-no-show/:trainId", h.MarkNoShow, operator)
	api.POST("/rebook-seat", h.RebookSeat, operator)

	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	api.GET("/empty-seats/:trainId/:station", h.EmptySeats, cache)
}
