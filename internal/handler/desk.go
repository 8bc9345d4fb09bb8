package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-reservation/internal/middleware"
	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/service"
)

// DeskHandler serves the clerk workflows: arrivals, departures, walk-ins
// and the folio of a stay.
type DeskHandler struct {
	Desk   FrontDesk
	Ledger Ledger
}

func NewDeskHandler(d FrontDesk, l Ledger) *DeskHandler {
	return &DeskHandler{Desk: d, Ledger: l}
}

type checkInReq struct {
	RoomID string `json:"room_id" validate:"required,uuid"`
}

type chargeReq struct {
	ServiceType string `json:"service_type" validate:"required,oneof=restaurant room_service laundry telephone club_access key_issuing other"`
	Description string `json:"description" validate:"max=255"`
	Amount      string `json:"amount" validate:"required,money"`
}

func (r chargeReq) input() service.ChargeInput {
	return service.ChargeInput{ServiceType: model.ServiceType(r.ServiceType), Description: r.Description, Amount: money(r.Amount)}
}

type checkOutReq struct {
	PaymentMethod  string      `json:"payment_method" validate:"required,oneof=cash credit_card bank_transfer travel_company"`
	Amount         string      `json:"amount" validate:"required,money"`
	ServiceCharges []chargeReq `json:"service_charges" validate:"dive"`
}

type paymentReq struct {
	Amount        string  `json:"amount" validate:"required,money"`
	PaymentMethod string  `json:"payment_method" validate:"required,oneof=cash credit_card bank_transfer travel_company"`
	TransactionID *string `json:"transaction_id" validate:"omitempty,max=100"`
	Notes         *string `json:"notes" validate:"omitempty,max=500"`
}

type refundReq struct {
	Amount string `json:"amount" validate:"required,money"`
	Reason string `json:"reason" validate:"required,max=500"`
}

type walkInReq struct {
	Name    string  `json:"name" validate:"required,max=100"`
	Email   string  `json:"email" validate:"required,email"`
	Phone   *string `json:"phone" validate:"omitempty,max=30"`
	Address *string `json:"address" validate:"omitempty,max=255"`
	createReservationReq
}

// actorAndID resolves the acting clerk and the :id path parameter.  ok is
// false when a response has already been written.
func actorAndID(c echo.Context) (actor, id uuid.UUID, ok bool, err error) {
	actor, _, ok = middleware.Principal(c)
	if !ok {
		return uuid.Nil, uuid.Nil, false, unauthorized(c, "unauthorized")
	}
	id, ok = pathID(c)
	if !ok {
		return uuid.Nil, uuid.Nil, false, badRequest(c, "invalid id")
	}
	return actor, id, true, nil
}

func (h *DeskHandler) CheckIn(c echo.Context) error {
	actor, id, ok, err := actorAndID(c)
	if !ok {
		return err
	}
	var req checkInReq
	if err := bindValid(c, &req); err != nil {
		return badRequest(c, err.Error())
	}
	out, err := h.Desk.CheckIn(c.Request().Context(), id, uuid.MustParse(req.RoomID), actor)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"reservation": toReservationView(out.Reservation),
		"room":        toRoomView(out.Room),
		"assignment":  toAssignmentView(out.Assignment),
	})
}

func (h *DeskHandler) CheckOut(c echo.Context) error {
	actor, id, ok, err := actorAndID(c)
	if !ok {
		return err
	}
	var req checkOutReq
	if err := bindValid(c, &req); err != nil {
		return badRequest(c, err.Error())
	}
	in := service.CheckOutInput{
		ReservationID: id,
		PaymentMethod: model.PaymentMethod(req.PaymentMethod),
		Amount:        money(req.Amount),
	}
	for _, ch := range req.ServiceCharges {
		in.ServiceCharges = append(in.ServiceCharges, ch.input())
	}
	out, err := h.Desk.CheckOut(c.Request().Context(), in, actor)
	if err != nil {
		return respondError(c, err)
	}
	charges := make([]chargeView, 0, len(out.Charges))
	for _, ch := range out.Charges {
		charges = append(charges, toChargeView(ch))
	}
	resp := echo.Map{
		"reservation":     toReservationView(out.Reservation),
		"payment":         toPaymentView(out.Payment),
		"service_charges": charges,
		"balance":         toBalanceView(out.Balance),
	}
	if out.Room != nil {
		resp["room"] = toRoomView(out.Room)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *DeskHandler) WalkIn(c echo.Context) error {
	actor, _, ok := middleware.Principal(c)
	if !ok {
		return unauthorized(c, "unauthorized")
	}
	var req walkInReq
	if err := bindValid(c, &req); err != nil {
		return badRequest(c, err.Error())
	}
	guest := service.GuestInput{Name: req.Name, Email: req.Email, Phone: req.Phone, Address: req.Address}
	in := req.createReservationReq.input()
	in.IsWalkIn = true

	out, err := h.Desk.CreateWalkIn(c.Request().Context(), guest, in, actor)
	if err != nil {
		return respondError(c, err)
	}
	resp := echo.Map{
		"guest":       toUserView(out.Guest),
		"reservation": toReservationView(out.Reservation),
		"checked_in":  out.Room != nil,
	}
	if out.Room != nil {
		resp["room"] = toRoomView(out.Room)
		resp["assignment"] = toAssignmentView(out.Assignment)
	}
	return c.JSON(http.StatusCreated, resp)
}

func (h *DeskHandler) Summary(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "invalid id")
	}
	out, err := h.Desk.CheckoutSummary(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"reservation":     toDetailView(out.Reservation),
		"service_charges": toChargeViews(out.Charges),
		"payments":        toPaymentViews(out.Payments),
		"balance":         toBalanceView(out.Balance),
	})
}

func (h *DeskHandler) InHouse(c echo.Context) error {
	out, err := h.Desk.InHouse(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"reservations": toDetailViews(out)})
}

func (h *DeskHandler) AddCharge(c echo.Context) error {
	actor, id, ok, err := actorAndID(c)
	if !ok {
		return err
	}
	var req chargeReq
	if err := bindValid(c, &req); err != nil {
		return badRequest(c, err.Error())
	}
	out, err := h.Ledger.AddServiceCharge(c.Request().Context(), id, req.input(), actor)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, toChargeView(out))
}

func (h *DeskHandler) Charges(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "invalid id")
	}
	out, err := h.Ledger.ServiceCharges(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"service_charges": toChargeViews(out)})
}

func (h *DeskHandler) AddPayment(c echo.Context) error {
	actor, id, ok, err := actorAndID(c)
	if !ok {
		return err
	}
	var req paymentReq
	if err := bindValid(c, &req); err != nil {
		return badRequest(c, err.Error())
	}
	out, err := h.Ledger.ProcessPayment(c.Request().Context(), service.PaymentInput{
		ReservationID: id,
		Amount:        money(req.Amount),
		Method:        model.PaymentMethod(req.PaymentMethod),
		TransactionID: req.TransactionID,
		Notes:         req.Notes,
	}, actor)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, toPaymentView(out))
}

func (h *DeskHandler) Payments(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "invalid id")
	}
	out, err := h.Ledger.Payments(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"payments": toPaymentViews(out)})
}

func (h *DeskHandler) Balance(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "invalid id")
	}
	out, err := h.Ledger.Balance(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, toBalanceView(out))
}

// Refund reverses part or all of the payment named by :id.
func (h *DeskHandler) Refund(c echo.Context) error {
	actor, id, ok, err := actorAndID(c)
	if !ok {
		return err
	}
	var req refundReq
	if err := bindValid(c, &req); err != nil {
		return badRequest(c, err.Error())
	}
	out, err := h.Ledger.Refund(c.Request().Context(), id, money(req.Amount), req.Reason, actor)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, toPaymentView(out))
}
