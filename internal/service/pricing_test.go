package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestQuoteStay(t *testing.T) {
	in := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	weekly := model.DurationWeekly
	monthly := model.DurationMonthly
	weekRate := dec("90000")

	standard := model.RoomType{BasePrice: dec("15000")}
	resi := model.RoomType{BasePrice: dec("15000"), IsResidential: true, WeeklyRate: &weekRate}

	tests := []struct {
		name     string
		rt       model.RoomType
		out      time.Time
		resi     bool
		duration *model.ResidentialDuration
		pct      string
		total    string
		discount string
		final    string
	}{
		{"four nights", standard, in.AddDate(0, 0, 4), false, nil, "0", "60000", "0", "60000"},
		{"loyalty discount", standard, in.AddDate(0, 0, 4), false, nil, "10", "60000", "6000", "54000"},
		{"weekly flat rate", resi, in.AddDate(0, 0, 7), true, &weekly, "0", "90000", "0", "90000"},
		{"monthly falls back to base x30", resi, in.AddDate(0, 1, 0), true, &monthly, "0", "450000", "0", "450000"},
		{"residential on non-residential type is nightly", standard, in.AddDate(0, 0, 7), true, &weekly, "0", "105000", "0", "105000"},
		{"residential without duration is nightly", resi, in.AddDate(0, 0, 2), true, nil, "0", "30000", "0", "30000"},
		{"partial day rounds up", standard, in.Add(36 * time.Hour), false, nil, "0", "30000", "0", "30000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := QuoteStay(tt.rt, in, tt.out, tt.resi, tt.duration, dec(tt.pct))
			assert.True(t, dec(tt.total).Equal(q.Total), "total %s", q.Total)
			assert.True(t, dec(tt.discount).Equal(q.Discount), "discount %s", q.Discount)
			assert.True(t, dec(tt.final).Equal(q.Final), "final %s", q.Final)
		})
	}
}
