package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/service"
)

func TestRunNightlyReportsEachTask(t *testing.T) {
	cancelled := uuid.New()
	broken := uuid.New()
	n := &fakeNightly{}
	n.On("RunNightly").Return(service.NightlyResult{
		StartedAt: time.Date(2026, 3, 1, 19, 0, 0, 0, time.UTC),
		AutoCancel: service.TaskResult{Success: true, Message: "cancelled 1", Processed: []uuid.UUID{cancelled},
			Errors: []service.TaskError{{ReservationID: broken, Code: service.CodeInternal, Message: "internal error"}}},
		NoShow: service.TaskResult{Success: true, Message: "no candidates"},
		DailyReport: service.ReportResult{
			TaskResult: service.TaskResult{Success: false, Message: "report exists",
				Errors: []service.TaskError{{Code: service.CodeReportExists, Message: "report exists"}}},
		},
	})

	rec := call{method: http.MethodPost}.do(t, NewNightlyHandler(n).Run)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody(t, rec.Body.Bytes())

	auto := got["auto_cancel"].(map[string]any)
	assert.Equal(t, []any{cancelled.String()}, auto["processed"])
	assert.Equal(t, broken.String(), auto["errors"].([]any)[0].(map[string]any)["reservation_id"])

	noShow := got["no_show"].(map[string]any)
	assert.Equal(t, []any{}, noShow["processed"])

	report := got["daily_report"].(map[string]any)
	assert.Equal(t, false, report["success"])
	assert.NotContains(t, report["errors"].([]any)[0].(map[string]any), "reservation_id")
	assert.NotContains(t, got, "report")
}

func TestReportsLimit(t *testing.T) {
	n := &fakeNightly{}
	n.On("Reports", 30).Return([]model.DailyReport{{ReportDate: time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC), TotalRooms: 10}}, nil)
	h := NewNightlyHandler(n)

	rec := call{}.do(t, h.Reports)
	require.Equal(t, http.StatusOK, rec.Code)
	reports := decodeBody(t, rec.Body.Bytes())["reports"].([]any)
	assert.Equal(t, "2026-02-28", reports[0].(map[string]any)["report_date"])

	rec = call{query: "limit=0"}.do(t, h.Reports)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	n.AssertNumberOfCalls(t, "Reports", 1)
}

func TestSetMaintenanceRequiresFlag(t *testing.T) {
	rooms := &fakeRooms{}
	id := uuid.New()
	rooms.On("SetMaintenance", id, false).Return(&model.Room{ID: id, Status: model.RoomAvailable}, nil)
	h := NewRoomHandler(rooms)

	rec := call{method: http.MethodPost, id: id.String(), body: `{}`}.do(t, h.SetMaintenance)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = call{method: http.MethodPost, id: id.String(), body: `{"on":false}`}.do(t, h.SetMaintenance)
	assert.Equal(t, http.StatusOK, rec.Code)
	rooms.AssertExpectations(t)
}

func TestDeleteOccupiedRoom(t *testing.T) {
	rooms := &fakeRooms{}
	rooms.On("DeleteRoom", mock.Anything).Return(&service.Error{Code: service.CodeRoomOccupied, Message: "room 101 is occupied"})

	rec := call{method: http.MethodDelete, id: uuid.NewString()}.do(t, NewRoomHandler(rooms).Delete)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestListRoomsByStatus(t *testing.T) {
	rooms := &fakeRooms{}
	rooms.On("ListRooms", mock.MatchedBy(func(f model.RoomFilter) bool {
		return f.Status != nil && *f.Status == model.RoomCleaning && f.RoomTypeID == nil
	})).Return([]model.RoomWithType{{Room: model.Room{RoomNumber: "101", Status: model.RoomCleaning}, TypeName: "Deluxe", BasePrice: dec("150")}}, nil)
	h := NewRoomHandler(rooms)

	rec := call{query: "status=cleaning"}.do(t, h.List)
	require.Equal(t, http.StatusOK, rec.Code)
	first := decodeBody(t, rec.Body.Bytes())["rooms"].([]any)[0].(map[string]any)
	assert.Equal(t, "Deluxe", first["type_name"])
	assert.Equal(t, "150", first["base_price"])

	rec = call{query: "status=flooded"}.do(t, h.List)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
