package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-reservation/internal/service"
)

// conflictCodes are business failures caused by the current state of a
// resource rather than by the request itself.
var conflictCodes = map[service.Code]bool{
	service.CodeAlreadyCancelled:    true,
	service.CodeAlreadyCheckedIn:    true,
	service.CodeRoomAlreadyAssigned: true,
	service.CodeRoomNotAvailable:    true,
	service.CodeNoRoomsAvailable:    true,
	service.CodeEmailExists:         true,
	service.CodeReportExists:        true,
	service.CodeRoomOccupied:        true,
	service.CodeRoomNumberExists:    true,
}

func statusOf(code service.Code) int {
	switch {
	case code == service.CodeInternal:
		return http.StatusInternalServerError
	case strings.HasSuffix(string(code), "_NOT_FOUND"):
		return http.StatusNotFound
	case conflictCodes[code]:
		return http.StatusConflict
	}
	return http.StatusBadRequest
}

// respondError writes err as {"error", "code"} with the status its code
// maps to.  Internal faults are reported without detail.
func respondError(c echo.Context, err error) error {
	e := service.AsError(err)
	return c.JSON(statusOf(e.Code), echo.Map{"error": e.Message, "code": e.Code})
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"error": msg, "code": service.CodeInvalidInput})
}

func notFound(c echo.Context, code service.Code, msg string) error {
	return c.JSON(http.StatusNotFound, echo.Map{"error": msg, "code": code})
}
