package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-reservation/internal/handler"
	"github.com/iliyamo/hotel-reservation/internal/middleware"
	"github.com/iliyamo/hotel-reservation/internal/model"
)

// Desk bundles the handlers mounted for front desk staff.
type Desk struct {
	Desk         *handler.DeskHandler
	Reservations *handler.ReservationHandler
	Rooms        *handler.RoomHandler
}

// RegisterDesk registers the front desk endpoints under /v1/desk.  Clerks
// and managers may use all of them.
func RegisterDesk(e *echo.Echo, d Desk, jwtSecret string) {
	g := e.Group(
		"/v1/desk",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleClerk, model.RoleManager),
	)

	// ---- Reservations ----
	g.GET("/reservations", d.Reservations.List)
	g.GET("/reservations/pending", d.Reservations.Pending)
	g.GET("/in-house", d.Desk.InHouse)
	g.POST("/walk-ins", d.Desk.WalkIn)
	g.POST("/reservations/:id/check-in", d.Desk.CheckIn)
	g.POST("/reservations/:id/check-out", d.Desk.CheckOut)
	g.GET("/reservations/:id/summary", d.Desk.Summary)

	// ---- Folio ----
	g.POST("/reservations/:id/charges", d.Desk.AddCharge)
	g.GET("/reservations/:id/charges", d.Desk.Charges)
	g.POST("/reservations/:id/payments", d.Desk.AddPayment)
	g.GET("/reservations/:id/payments", d.Desk.Payments)
	g.GET("/reservations/:id/balance", d.Desk.Balance)
	g.POST("/payments/:id/refunds", d.Desk.Refund)

	// ---- Housekeeping ----
	g.GET("/rooms", d.Rooms.List)
	g.GET("/rooms/available", d.Rooms.Available)
	g.POST("/rooms/:id/clean", d.Rooms.MarkCleaned)
}
