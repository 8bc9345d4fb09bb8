package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-reservation/internal/scheduler"
)

// NightlyHandler exposes the reconciliation run and its outputs.
type NightlyHandler struct {
	Nightly Nightly
}

func NewNightlyHandler(n Nightly) *NightlyHandler { return &NightlyHandler{Nightly: n} }

// Run executes the nightly batch synchronously.  It is mounted twice: for
// managers and for an external cron caller holding the shared secret.
// The run is detached from the request so a client disconnect does not
// abandon it half way.
func (h *NightlyHandler) Run(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(c.Request().Context()), scheduler.RunTimeout)
	defer cancel()
	return c.JSON(http.StatusOK, toNightlyView(h.Nightly.RunNightly(ctx)))
}

// Reports lists recent daily reports, newest first (?limit=, default 30).
func (h *NightlyHandler) Reports(c echo.Context) error {
	limit := 30
	if s := c.QueryParam("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 || n > 365 {
			return badRequest(c, "limit must be between 1 and 365")
		}
		limit = n
	}
	out, err := h.Nightly.Reports(c.Request().Context(), limit)
	if err != nil {
		return respondError(c, err)
	}
	views := make([]*reportView, 0, len(out))
	for i := range out {
		views = append(views, toReportView(&out[i]))
	}
	return c.JSON(http.StatusOK, echo.Map{"reports": views})
}

func (h *NightlyHandler) NoShowCharges(c echo.Context) error {
	out, err := h.Nightly.NoShowCharges(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"billing_records": toBillingViews(out)})
}
