package handler

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/service"
)

// JSON shapes returned by the API.  Models carry no json tags; the
// conversion lives here.

type reservationView struct {
	ID                  uuid.UUID       `json:"id"`
	UserID              uuid.UUID       `json:"user_id"`
	RoomTypeID          uuid.UUID       `json:"room_type_id"`
	CheckInDate         string          `json:"check_in_date"`
	CheckOutDate        string          `json:"check_out_date"`
	Nights              int             `json:"nights"`
	NumGuests           int             `json:"num_guests"`
	Status              string          `json:"status"`
	CheckinStatus       string          `json:"checkin_status"`
	TotalPrice          decimal.Decimal `json:"total_price"`
	DiscountAmount      decimal.Decimal `json:"discount_amount"`
	FinalPrice          decimal.Decimal `json:"final_price"`
	HasCreditCard       bool            `json:"has_credit_card"`
	CreditCardLast4     *string         `json:"credit_card_last4,omitempty"`
	IsWalkIn            bool            `json:"is_walk_in"`
	IsTravelCompany     bool            `json:"is_travel_company"`
	TravelCompanyID     *uuid.UUID      `json:"travel_company_id,omitempty"`
	IsResidential       bool            `json:"is_residential"`
	ResidentialDuration *string         `json:"residential_duration,omitempty"`
	SpecialRequests     *string         `json:"special_requests,omitempty"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

func toReservationView(r *model.Reservation) reservationView {
	v := reservationView{
		ID:              r.ID,
		UserID:          r.UserID,
		RoomTypeID:      r.RoomTypeID,
		CheckInDate:     r.CheckInDate.Format(dateLayout),
		CheckOutDate:    r.CheckOutDate.Format(dateLayout),
		Nights:          r.Nights(),
		NumGuests:       r.NumGuests,
		Status:          string(r.State.Status()),
		CheckinStatus:   string(r.State.CheckinStatus()),
		TotalPrice:      r.TotalPrice,
		DiscountAmount:  r.DiscountAmount,
		FinalPrice:      r.FinalPrice,
		HasCreditCard:   r.HasCreditCard,
		CreditCardLast4: r.CreditCardLast4,
		IsWalkIn:        r.IsWalkIn,
		IsTravelCompany: r.IsTravelCompany,
		TravelCompanyID: nullUUID(r.TravelCompanyID),
		IsResidential:   r.IsResidential,
		SpecialRequests: r.SpecialRequests,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
	if r.ResidentialDuration != nil {
		d := string(*r.ResidentialDuration)
		v.ResidentialDuration = &d
	}
	return v
}

func toReservationViews(rs []*model.Reservation) []reservationView {
	out := make([]reservationView, 0, len(rs))
	for _, r := range rs {
		out = append(out, toReservationView(r))
	}
	return out
}

type reservationDetailView struct {
	reservationView
	GuestName          string          `json:"guest_name"`
	GuestEmail         string          `json:"guest_email"`
	RoomTypeName       string          `json:"room_type_name"`
	RoomID             *uuid.UUID      `json:"room_id,omitempty"`
	RoomNumber         *string         `json:"room_number,omitempty"`
	TotalPaid          decimal.Decimal `json:"total_paid"`
	ServiceCharges     decimal.Decimal `json:"service_charges"`
	OutstandingBalance decimal.Decimal `json:"outstanding_balance"`
}

func toDetailView(d *model.ReservationDetail) reservationDetailView {
	return reservationDetailView{
		reservationView:    toReservationView(&d.Reservation),
		GuestName:          d.GuestName,
		GuestEmail:         d.GuestEmail,
		RoomTypeName:       d.RoomTypeName,
		RoomID:             nullUUID(d.RoomID),
		RoomNumber:         d.RoomNumber,
		TotalPaid:          d.TotalPaid,
		ServiceCharges:     d.ServiceCharges,
		OutstandingBalance: d.OutstandingBalance(),
	}
}

func toDetailViews(ds []model.ReservationDetail) []reservationDetailView {
	out := make([]reservationDetailView, 0, len(ds))
	for i := range ds {
		out = append(out, toDetailView(&ds[i]))
	}
	return out
}

type roomTypeView struct {
	ID            uuid.UUID        `json:"id"`
	TypeName      string           `json:"type_name"`
	Description   *string          `json:"description,omitempty"`
	BasePrice     decimal.Decimal  `json:"base_price"`
	Capacity      int              `json:"capacity"`
	Amenities     *string          `json:"amenities,omitempty"`
	IsResidential bool             `json:"is_residential"`
	WeeklyRate    *decimal.Decimal `json:"weekly_rate,omitempty"`
	MonthlyRate   *decimal.Decimal `json:"monthly_rate,omitempty"`
}

func toRoomTypeViews(ts []model.RoomType) []roomTypeView {
	out := make([]roomTypeView, 0, len(ts))
	for _, t := range ts {
		out = append(out, roomTypeView{
			ID: t.ID, TypeName: t.TypeName, Description: t.Description, BasePrice: t.BasePrice,
			Capacity: t.Capacity, Amenities: t.Amenities, IsResidential: t.IsResidential,
			WeeklyRate: t.WeeklyRate, MonthlyRate: t.MonthlyRate,
		})
	}
	return out
}

type roomView struct {
	ID            uuid.UUID        `json:"id"`
	RoomNumber    string           `json:"room_number"`
	RoomTypeID    uuid.UUID        `json:"room_type_id"`
	TypeName      string           `json:"type_name,omitempty"`
	BasePrice     *decimal.Decimal `json:"base_price,omitempty"`
	Status        string           `json:"status"`
	Floor         *int             `json:"floor,omitempty"`
	IsResidential bool             `json:"is_residential"`
}

func toRoomView(r *model.Room) roomView {
	return roomView{
		ID: r.ID, RoomNumber: r.RoomNumber, RoomTypeID: r.RoomTypeID,
		Status: string(r.Status), Floor: r.Floor, IsResidential: r.IsResidential,
	}
}

func toRoomViews(rs []model.RoomWithType) []roomView {
	out := make([]roomView, 0, len(rs))
	for i := range rs {
		v := toRoomView(&rs[i].Room)
		v.TypeName = rs[i].TypeName
		price := rs[i].BasePrice
		v.BasePrice = &price
		out = append(out, v)
	}
	return out
}

type assignmentView struct {
	ID         uuid.UUID `json:"id"`
	RoomID     uuid.UUID `json:"room_id"`
	AssignedBy uuid.UUID `json:"assigned_by"`
	AssignedAt time.Time `json:"assigned_at"`
}

func toAssignmentView(a *model.RoomAssignment) *assignmentView {
	if a == nil {
		return nil
	}
	return &assignmentView{ID: a.ID, RoomID: a.RoomID, AssignedBy: a.AssignedBy, AssignedAt: a.AssignedAt}
}

type paymentView struct {
	ID            uuid.UUID       `json:"id"`
	ReservationID uuid.UUID       `json:"reservation_id"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentDate   time.Time       `json:"payment_date"`
	Method        string          `json:"payment_method"`
	TransactionID *string         `json:"transaction_id,omitempty"`
	Status        string          `json:"status"`
	ProcessedBy   *uuid.UUID      `json:"processed_by,omitempty"`
	Notes         *string         `json:"notes,omitempty"`
}

func toPaymentView(p *model.Payment) *paymentView {
	if p == nil {
		return nil
	}
	return &paymentView{
		ID: p.ID, ReservationID: p.ReservationID, Amount: p.Amount, PaymentDate: p.PaymentDate,
		Method: string(p.Method), TransactionID: p.TransactionID, Status: string(p.Status),
		ProcessedBy: nullUUID(p.ProcessedBy), Notes: p.Notes,
	}
}

func toPaymentViews(ps []model.Payment) []*paymentView {
	out := make([]*paymentView, 0, len(ps))
	for i := range ps {
		out = append(out, toPaymentView(&ps[i]))
	}
	return out
}

type chargeView struct {
	ID          uuid.UUID       `json:"id"`
	ServiceType string          `json:"service_type"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	ChargedAt   time.Time       `json:"charged_at"`
	ChargedBy   uuid.UUID       `json:"charged_by"`
	IsPaid      bool            `json:"is_paid"`
}

func toChargeView(s *model.ServiceCharge) chargeView {
	return chargeView{
		ID: s.ID, ServiceType: string(s.ServiceType), Description: s.Description,
		Amount: s.Amount, ChargedAt: s.ChargedAt, ChargedBy: s.ChargedBy, IsPaid: s.IsPaid,
	}
}

func toChargeViews(cs []model.ServiceCharge) []chargeView {
	out := make([]chargeView, 0, len(cs))
	for i := range cs {
		out = append(out, toChargeView(&cs[i]))
	}
	return out
}

type balanceView struct {
	FinalPrice     decimal.Decimal `json:"final_price"`
	TotalPaid      decimal.Decimal `json:"total_paid"`
	ServiceCharges decimal.Decimal `json:"service_charges"`
	Outstanding    decimal.Decimal `json:"outstanding"`
}

func toBalanceView(b model.Balance) balanceView {
	return balanceView{FinalPrice: b.FinalPrice, TotalPaid: b.TotalPaid, ServiceCharges: b.ServiceCharges, Outstanding: b.Outstanding}
}

type reportView struct {
	ReportDate         string          `json:"report_date"`
	TotalOccupancy     int             `json:"total_occupancy"`
	TotalRooms         int             `json:"total_rooms"`
	OccupancyRate      decimal.Decimal `json:"occupancy_rate"`
	TotalRevenue       decimal.Decimal `json:"total_revenue"`
	TotalReservations  int             `json:"total_reservations"`
	TotalCheckIns      int             `json:"total_check_ins"`
	TotalCheckOuts     int             `json:"total_check_outs"`
	TotalCancellations int             `json:"total_cancellations"`
	TotalNoShows       int             `json:"total_no_shows"`
	GeneratedAt        time.Time       `json:"generated_at"`
}

func toReportView(r *model.DailyReport) *reportView {
	if r == nil {
		return nil
	}
	return &reportView{
		ReportDate: r.ReportDate.Format(dateLayout), TotalOccupancy: r.TotalOccupancy, TotalRooms: r.TotalRooms,
		OccupancyRate: r.OccupancyRate, TotalRevenue: r.TotalRevenue, TotalReservations: r.TotalReservations,
		TotalCheckIns: r.TotalCheckIns, TotalCheckOuts: r.TotalCheckOuts,
		TotalCancellations: r.TotalCancellations, TotalNoShows: r.TotalNoShows, GeneratedAt: r.GeneratedAt,
	}
}

type billingView struct {
	ID            uuid.UUID       `json:"id"`
	ReservationID uuid.UUID       `json:"reservation_id"`
	BillingType   string          `json:"billing_type"`
	Amount        decimal.Decimal `json:"amount"`
	Description   *string         `json:"description,omitempty"`
	BilledAt      time.Time       `json:"billed_at"`
	Status        string          `json:"status"`
	GuestName     string          `json:"guest_name"`
	GuestEmail    string          `json:"guest_email"`
	CheckInDate   string          `json:"check_in_date"`
	CheckOutDate  string          `json:"check_out_date"`
}

func toBillingViews(bs []model.BillingRecordDetail) []billingView {
	out := make([]billingView, 0, len(bs))
	for _, b := range bs {
		out = append(out, billingView{
			ID: b.ID, ReservationID: b.ReservationID, BillingType: string(b.BillingType), Amount: b.Amount,
			Description: b.Description, BilledAt: b.BilledAt, Status: string(b.Status),
			GuestName: b.GuestName, GuestEmail: b.GuestEmail,
			CheckInDate: b.CheckInDate.Format(dateLayout), CheckOutDate: b.CheckOutDate.Format(dateLayout),
		})
	}
	return out
}

type taskErrorView struct {
	ReservationID *uuid.UUID   `json:"reservation_id,omitempty"`
	Code          service.Code `json:"code"`
	Message       string       `json:"message"`
}

type taskView struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	Processed []uuid.UUID     `json:"processed"`
	Errors    []taskErrorView `json:"errors"`
}

func toTaskView(t service.TaskResult) taskView {
	v := taskView{Success: t.Success, Message: t.Message, Processed: t.Processed, Errors: []taskErrorView{}}
	if v.Processed == nil {
		v.Processed = []uuid.UUID{}
	}
	for _, e := range t.Errors {
		ev := taskErrorView{Code: e.Code, Message: e.Message}
		if e.ReservationID != uuid.Nil {
			id := e.ReservationID
			ev.ReservationID = &id
		}
		v.Errors = append(v.Errors, ev)
	}
	return v
}

type nightlyView struct {
	StartedAt   time.Time   `json:"started_at"`
	AutoCancel  taskView    `json:"auto_cancel"`
	NoShow      taskView    `json:"no_show"`
	DailyReport taskView    `json:"daily_report"`
	Report      *reportView `json:"report,omitempty"`
}

func toNightlyView(r service.NightlyResult) nightlyView {
	return nightlyView{
		StartedAt:   r.StartedAt,
		AutoCancel:  toTaskView(r.AutoCancel),
		NoShow:      toTaskView(r.NoShow),
		DailyReport: toTaskView(r.DailyReport.TaskResult),
		Report:      toReportView(r.DailyReport.Report),
	}
}

type userView struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

func toUserView(u *model.User) userView {
	return userView{ID: u.ID, Name: u.Name, Email: u.Email, Role: string(u.Role)}
}

func nullUUID(n uuid.NullUUID) *uuid.UUID {
	if !n.Valid {
		return nil
	}
	id := n.UUID
	return &id
}
