package config

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// NightlyConfig controls the end-of-day reconciliation run.
type NightlyConfig struct {
	Enabled         bool
	Hour, Minute    uint           // local wall-clock time of the run
	Location        *time.Location // hotel timezone; "today" is computed here
	AutoCancelAfter time.Duration  // age after which unpaid bookings for today are cancelled
	NoShowWindow    time.Duration
	NoShowFeeRate   decimal.Decimal
}

func LoadNightlyConfig() (NightlyConfig, error) {
	loc, err := time.LoadLocation(envStr("HOTEL_TIMEZONE", "UTC"))
	if err != nil {
		return NightlyConfig{}, fmt.Errorf("HOTEL_TIMEZONE: %w", err)
	}
	hour, minute, err := parseClock(envStr("NIGHTLY_RUN_AT", "19:00"))
	if err != nil {
		return NightlyConfig{}, fmt.Errorf("NIGHTLY_RUN_AT: %w", err)
	}
	rate, err := decimal.NewFromString(envStr("NO_SHOW_FEE_RATE", "0.5"))
	if err != nil || rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
		return NightlyConfig{}, fmt.Errorf("NO_SHOW_FEE_RATE: want a fraction between 0 and 1")
	}
	return NightlyConfig{
		Enabled:         envBool("NIGHTLY_ENABLED", true),
		Hour:            hour,
		Minute:          minute,
		Location:        loc,
		AutoCancelAfter: envDur("AUTO_CANCEL_AFTER", 12*time.Hour),
		NoShowWindow:    envDur("NO_SHOW_WINDOW", 24*time.Hour),
		NoShowFeeRate:   rate,
	}, nil
}

// parseClock parses "HH:MM" in 24-hour form.
func parseClock(s string) (uint, uint, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, 0, fmt.Errorf("want HH:MM, got %q", s)
	}
	return uint(t.Hour()), uint(t.Minute()), nil
}
