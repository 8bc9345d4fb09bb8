package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/service"
)

// RoomHandler exposes the room inventory: housekeeping for clerks and
// maintenance for managers.
type RoomHandler struct {
	Rooms Rooms
}

func NewRoomHandler(r Rooms) *RoomHandler { return &RoomHandler{Rooms: r} }

type roomReq struct {
	RoomNumber    string `json:"room_number" validate:"required,max=10"`
	RoomTypeID    string `json:"room_type_id" validate:"required,uuid"`
	Floor         *int   `json:"floor" validate:"omitempty,min=0,max=200"`
	IsResidential bool   `json:"is_residential"`
}

func (r roomReq) input() service.RoomInput {
	return service.RoomInput{
		RoomNumber:    r.RoomNumber,
		RoomTypeID:    uuid.MustParse(r.RoomTypeID),
		Floor:         r.Floor,
		IsResidential: r.IsResidential,
	}
}

type maintenanceReq struct {
	On *bool `json:"on" validate:"required"`
}

// List filters by ?room_type_id= and ?status=.
func (h *RoomHandler) List(c echo.Context) error {
	var f model.RoomFilter
	id, err := optionalUUID(c.QueryParam("room_type_id"))
	if err != nil {
		return badRequest(c, "invalid room_type_id")
	}
	f.RoomTypeID = id
	if s := c.QueryParam("status"); s != "" {
		st, err := model.ParseRoomStatus(s)
		if err != nil {
			return badRequest(c, err.Error())
		}
		f.Status = &st
	}
	out, err := h.Rooms.ListRooms(c.Request().Context(), f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"rooms": toRoomViews(out)})
}

func (h *RoomHandler) Available(c echo.Context) error {
	id, err := optionalUUID(c.QueryParam("room_type_id"))
	if err != nil {
		return badRequest(c, "invalid room_type_id")
	}
	out, err := h.Rooms.ListAvailable(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"rooms": toRoomViews(out)})
}

// MarkCleaned returns a room from housekeeping to service.
func (h *RoomHandler) MarkCleaned(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "invalid room id")
	}
	rm, err := h.Rooms.MarkCleaned(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, toRoomView(rm))
}

func (h *RoomHandler) SetMaintenance(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "invalid room id")
	}
	var req maintenanceReq
	if err := bindValid(c, &req); err != nil {
		return badRequest(c, err.Error())
	}
	rm, err := h.Rooms.SetMaintenance(c.Request().Context(), id, *req.On)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, toRoomView(rm))
}

func (h *RoomHandler) Create(c echo.Context) error {
	var req roomReq
	if err := bindValid(c, &req); err != nil {
		return badRequest(c, err.Error())
	}
	rm, err := h.Rooms.CreateRoom(c.Request().Context(), req.input())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, toRoomView(rm))
}

func (h *RoomHandler) Update(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "invalid room id")
	}
	var req roomReq
	if err := bindValid(c, &req); err != nil {
		return badRequest(c, err.Error())
	}
	rm, err := h.Rooms.UpdateRoom(c.Request().Context(), id, req.input())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, toRoomView(rm))
}

func (h *RoomHandler) Delete(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "invalid room id")
	}
	if err := h.Rooms.DeleteRoom(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
