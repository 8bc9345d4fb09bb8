package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-reservation/internal/handler"
	"github.com/iliyamo/hotel-reservation/internal/middleware"
	"github.com/iliyamo/hotel-reservation/internal/model"
)

// every role may hold a reservation; ownership is enforced in the handler
var bookers = []model.Role{model.RoleCustomer, model.RoleTravel, model.RoleClerk, model.RoleManager}

// RegisterReservations registers the guest-facing booking endpoints under
// /v1/reservations.  Guests and travel agents can only see and change
// their own bookings; staff can act on any.
func RegisterReservations(e *echo.Echo, h *handler.ReservationHandler, jwtSecret string) {
	g := e.Group(
		"/v1/reservations",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(bookers...),
	)
	g.POST("", h.Create)
	g.GET("/mine", h.ListMine)
	g.GET("/:id", h.Get)
	g.PATCH("/:id", h.Update)
	g.POST("/:id/cancel", h.Cancel)

	// Block bookings for travel companies.
	t := e.Group(
		"/v1/travel",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleTravel),
	)
	t.POST("/bulk-bookings", h.BulkCreate)
}
