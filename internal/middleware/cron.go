package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
)

// CronToken guards the scheduler trigger endpoint with a shared bearer
// secret.  An empty secret disables the endpoint entirely.
func CronToken(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if secret == "" {
				return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "cron trigger not configured", "code": "CRON_DISABLED"})
			}
			raw, ok := bearer(c)
			if !ok || subtle.ConstantTimeCompare([]byte(raw), []byte(secret)) != 1 {
				return unauthorized(c, "invalid cron token")
			}
			return next(c)
		}
	}
}
