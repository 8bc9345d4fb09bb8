package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-reservation/internal/handler"
	"github.com/iliyamo/hotel-reservation/internal/middleware"
	"github.com/iliyamo/hotel-reservation/internal/model"
)

// RegisterManager registers MANAGER-scoped endpoints under /v1/manage:
// room inventory, staff accounts, reports and a manual nightly run.
func RegisterManager(e *echo.Echo, rooms *handler.RoomHandler, n *handler.NightlyHandler, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group(
		"/v1/manage",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleManager),
	)

	// ---- Rooms ----
	g.POST("/rooms", rooms.Create)
	g.PUT("/rooms/:id", rooms.Update)
	g.DELETE("/rooms/:id", rooms.Delete)
	g.POST("/rooms/:id/maintenance", rooms.SetMaintenance)

	// ---- Staff ----
	g.POST("/users", a.CreateStaff)

	// ---- Nightly ----
	g.GET("/reports", n.Reports)
	g.GET("/no-show-charges", n.NoShowCharges)
	g.POST("/nightly/run", n.Run)
}

// RegisterCron registers the trigger an external scheduler calls with the
// shared secret instead of a user token.
func RegisterCron(e *echo.Echo, n *handler.NightlyHandler, secret string) {
	e.POST("/v1/cron/nightly", n.Run, middleware.CronToken(secret))
}
