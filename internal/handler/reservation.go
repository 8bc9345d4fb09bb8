package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-reservation/internal/middleware"
	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/service"
)

// ReservationHandler serves guests and travel agents booking for
// themselves, plus the public room-type and availability reads.
type ReservationHandler struct {
	Reservations Reservations
}

func NewReservationHandler(r Reservations) *ReservationHandler {
	return &ReservationHandler{Reservations: r}
}

type createReservationReq struct {
	RoomTypeID          string  `json:"room_type_id" validate:"required,uuid"`
	CheckInDate         string  `json:"check_in_date" validate:"required,datetime=2006-01-02"`
	CheckOutDate        string  `json:"check_out_date" validate:"required,datetime=2006-01-02"`
	NumGuests           int     `json:"num_guests" validate:"required,min=1"`
	HasCreditCard       bool    `json:"has_credit_card"`
	CreditCardLast4     *string `json:"credit_card_last4" validate:"omitempty,len=4,numeric"`
	IsResidential       bool    `json:"is_residential"`
	ResidentialDuration *string `json:"residential_duration" validate:"omitempty,oneof=weekly monthly"`
	SpecialRequests     *string `json:"special_requests" validate:"omitempty,max=1000"`
}

func (r createReservationReq) input() service.CreateReservationInput {
	in := service.CreateReservationInput{
		RoomTypeID:      uuid.MustParse(r.RoomTypeID),
		CheckInDate:     parseDate(r.CheckInDate),
		CheckOutDate:    parseDate(r.CheckOutDate),
		NumGuests:       r.NumGuests,
		HasCreditCard:   r.HasCreditCard,
		CreditCardLast4: r.CreditCardLast4,
		IsResidential:   r.IsResidential,
		SpecialRequests: r.SpecialRequests,
	}
	if r.ResidentialDuration != nil {
		d := model.ResidentialDuration(*r.ResidentialDuration)
		in.ResidentialDuration = &d
	}
	return in
}

type updateReservationReq struct {
	CheckOutDate    *string `json:"check_out_date" validate:"omitempty,datetime=2006-01-02"`
	NumGuests       *int    `json:"num_guests" validate:"omitempty,min=1"`
	SpecialRequests *string `json:"special_requests" validate:"omitempty,max=1000"`
	HasCreditCard   *bool   `json:"has_credit_card"`
	CreditCardLast4 *string `json:"credit_card_last4" validate:"omitempty,len=4,numeric"`
	Status          *string `json:"status" validate:"omitempty,oneof=pending confirmed cancelled no-show"`
	CheckinStatus   *string `json:"checkin_status" validate:"omitempty,oneof=not_checked_in checked_in checked_out"`
}

func (r updateReservationReq) input() service.UpdateReservationInput {
	in := service.UpdateReservationInput{
		NumGuests:       r.NumGuests,
		SpecialRequests: r.SpecialRequests,
		HasCreditCard:   r.HasCreditCard,
		CreditCardLast4: r.CreditCardLast4,
	}
	if r.CheckOutDate != nil {
		d := parseDate(*r.CheckOutDate)
		in.CheckOutDate = &d
	}
	if r.Status != nil {
		st := model.ReservationStatus(*r.Status)
		in.Status = &st
	}
	if r.CheckinStatus != nil {
		ci := model.CheckinStatus(*r.CheckinStatus)
		in.CheckinStatus = &ci
	}
	return in
}

type bulkBookingReq struct {
	RoomTypeID    string `json:"room_type_id" validate:"required,uuid"`
	CheckInDate   string `json:"check_in_date" validate:"required,datetime=2006-01-02"`
	CheckOutDate  string `json:"check_out_date" validate:"required,datetime=2006-01-02"`
	Rooms         int    `json:"rooms" validate:"required,min=1,max=50"`
	GuestsPerRoom int    `json:"guests_per_room" validate:"required,min=1"`
	HasCreditCard bool   `json:"has_credit_card"`
}

// Create books a stay for the authenticated principal.
func (h *ReservationHandler) Create(c echo.Context) error {
	uid, _, ok := middleware.Principal(c)
	if !ok {
		return unauthorized(c, "unauthorized")
	}
	var req createReservationReq
	if err := bindValid(c, &req); err != nil {
		return badRequest(c, err.Error())
	}
	res, err := h.Reservations.Create(c.Request().Context(), uid, req.input())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, toReservationView(res))
}

// BulkCreate books several rooms at once for a travel agent.
func (h *ReservationHandler) BulkCreate(c echo.Context) error {
	uid, _, ok := middleware.Principal(c)
	if !ok {
		return unauthorized(c, "unauthorized")
	}
	var req bulkBookingReq
	if err := bindValid(c, &req); err != nil {
		return badRequest(c, err.Error())
	}
	out, err := h.Reservations.CreateBulk(c.Request().Context(), uid, service.BulkBookingInput{
		RoomTypeID:    uuid.MustParse(req.RoomTypeID),
		CheckInDate:   parseDate(req.CheckInDate),
		CheckOutDate:  parseDate(req.CheckOutDate),
		Rooms:         req.Rooms,
		GuestsPerRoom: req.GuestsPerRoom,
		HasCreditCard: req.HasCreditCard,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"reservations": toReservationViews(out)})
}

// ListMine returns the principal's own reservations.
func (h *ReservationHandler) ListMine(c echo.Context) error {
	uid, _, ok := middleware.Principal(c)
	if !ok {
		return unauthorized(c, "unauthorized")
	}
	out, err := h.Reservations.ListForGuest(c.Request().Context(), uid)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"reservations": toDetailViews(out)})
}

func (h *ReservationHandler) Get(c echo.Context) error {
	d, err := h.owned(c)
	if err != nil || d == nil {
		return err
	}
	return c.JSON(http.StatusOK, toDetailView(d))
}

func (h *ReservationHandler) Update(c echo.Context) error {
	d, err := h.owned(c)
	if err != nil || d == nil {
		return err
	}
	var req updateReservationReq
	if err := bindValid(c, &req); err != nil {
		return badRequest(c, err.Error())
	}
	res, err := h.Reservations.Update(c.Request().Context(), d.ID, req.input())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, toReservationView(res))
}

func (h *ReservationHandler) Cancel(c echo.Context) error {
	d, err := h.owned(c)
	if err != nil || d == nil {
		return err
	}
	res, err := h.Reservations.Cancel(c.Request().Context(), d.ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, toReservationView(res))
}

// owned loads the reservation named in the path.  Guests and agents only
// see their own bookings; anything else is reported as not found.  A nil
// detail means the response has been written.
func (h *ReservationHandler) owned(c echo.Context) (*model.ReservationDetail, error) {
	uid, role, ok := middleware.Principal(c)
	if !ok {
		return nil, unauthorized(c, "unauthorized")
	}
	id, ok := pathID(c)
	if !ok {
		return nil, badRequest(c, "invalid reservation id")
	}
	d, err := h.Reservations.Get(c.Request().Context(), id)
	if err != nil {
		return nil, respondError(c, err)
	}
	if !isStaff(role) && d.UserID != uid {
		return nil, notFound(c, service.CodeReservationNotFound, "reservation not found")
	}
	return d, nil
}

func isStaff(r model.Role) bool { return r == model.RoleClerk || r == model.RoleManager }

// RoomTypes lists the bookable room types.
func (h *ReservationHandler) RoomTypes(c echo.Context) error {
	out, err := h.Reservations.ListRoomTypes(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"room_types": toRoomTypeViews(out)})
}

// Availability reports how many rooms of a type are free for a stay:
// GET /v1/room-types/:id/availability?check_in=YYYY-MM-DD&check_out=YYYY-MM-DD
func (h *ReservationHandler) Availability(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "invalid room type id")
	}
	in, err := optionalDate(c.QueryParam("check_in"))
	if err != nil || in == nil {
		return badRequest(c, "check_in must be YYYY-MM-DD")
	}
	out, err := optionalDate(c.QueryParam("check_out"))
	if err != nil || out == nil {
		return badRequest(c, "check_out must be YYYY-MM-DD")
	}
	n, err := h.Reservations.Availability(c.Request().Context(), id, *in, *out)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"room_type_id":    id,
		"check_in_date":   in.Format(dateLayout),
		"check_out_date":  out.Format(dateLayout),
		"available_rooms": n,
	})
}

// List is the staff search over all reservations.  Query parameters:
// status, checkin_status, room_type_id, user_id, from, to, sort, order,
// limit.
func (h *ReservationHandler) List(c echo.Context) error {
	f, err := reservationFilter(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	out, err := h.Reservations.List(c.Request().Context(), f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"reservations": toDetailViews(out)})
}

// Pending lists bookings waiting for payment or a card.
func (h *ReservationHandler) Pending(c echo.Context) error {
	return h.list(c, h.Reservations.ListPending)
}

func (h *ReservationHandler) list(c echo.Context, fn func(context.Context) ([]model.ReservationDetail, error)) error {
	out, err := fn(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"reservations": toDetailViews(out)})
}

func reservationFilter(c echo.Context) (model.ReservationFilter, error) {
	var (
		f   model.ReservationFilter
		err error
	)
	if s := c.QueryParam("status"); s != "" {
		st, err := model.ParseReservationStatus(s)
		if err != nil {
			return f, err
		}
		f.Status = &st
	}
	if s := c.QueryParam("checkin_status"); s != "" {
		ci, err := model.ParseCheckinStatus(s)
		if err != nil {
			return f, err
		}
		f.CheckinStatus = &ci
	}
	if f.RoomTypeID, err = optionalUUID(c.QueryParam("room_type_id")); err != nil {
		return f, err
	}
	if f.UserID, err = optionalUUID(c.QueryParam("user_id")); err != nil {
		return f, err
	}
	if f.From, err = optionalDate(c.QueryParam("from")); err != nil {
		return f, err
	}
	if f.To, err = optionalDate(c.QueryParam("to")); err != nil {
		return f, err
	}
	f.SortBy = c.QueryParam("sort")
	f.Descending = c.QueryParam("order") == "desc"
	if s := c.QueryParam("limit"); s != "" {
		if f.Limit, err = strconv.Atoi(s); err != nil || f.Limit < 0 {
			return f, strconv.ErrSyntax
		}
	}
	return f, nil
}
