package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

// Context keys set by JWTAuth.
const (
	ctxUserID = "user_id"
	ctxRole   = "role"
)

// Principal returns the authenticated user's id and role.  ok is false when
// JWTAuth did not run or the token carried no usable subject.
func Principal(c echo.Context) (id uuid.UUID, role model.Role, ok bool) {
	id, ok = c.Get(ctxUserID).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, "", false
	}
	role, _ = c.Get(ctxRole).(model.Role)
	return id, role, true
}

// userID is the principal as a rate-limit key component; "anon" when the
// request is unauthenticated.
func userID(c echo.Context) string {
	if id, _, ok := Principal(c); ok {
		return id.String()
	}
	return "anon"
}
