package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

var hundred = decimal.NewFromInt(100)

// Quote is the priced result for a stay.
type Quote struct {
	Nights   int
	Total    decimal.Decimal
	Discount decimal.Decimal
	Final    decimal.Decimal
}

// QuoteStay prices a stay in room type rt.  Residential requests on a
// residential type use the flat weekly or monthly rate, falling back to
// seven or thirty nights at the base price; every other request is
// priced per night.  discountPct is a percentage such as 10 for 10%.
func QuoteStay(rt model.RoomType, checkIn, checkOut time.Time, residential bool, duration *model.ResidentialDuration, discountPct decimal.Decimal) Quote {
	nights := model.StayNights(checkIn, checkOut)
	total := rt.BasePrice.Mul(decimal.NewFromInt(int64(nights)))

	if residential && rt.IsResidential && duration != nil {
		switch *duration {
		case model.DurationWeekly:
			total = rateOr(rt.WeeklyRate, rt.BasePrice, 7)
		case model.DurationMonthly:
			total = rateOr(rt.MonthlyRate, rt.BasePrice, 30)
		}
	}

	discount := decimal.Zero
	if discountPct.IsPositive() {
		discount = total.Mul(discountPct).Div(hundred).Round(2)
	}
	return Quote{Nights: nights, Total: total, Discount: discount, Final: total.Sub(discount)}
}

func rateOr(rate *decimal.Decimal, base decimal.Decimal, nights int64) decimal.Decimal {
	if rate != nil {
		return *rate
	}
	return base.Mul(decimal.NewFromInt(nights))
}
