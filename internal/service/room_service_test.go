package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/repository"
)

func roomIn(status model.RoomStatus) *model.Room {
	return &model.Room{ID: uuid.New(), RoomNumber: "204", RoomTypeID: standardRoomType().ID, Status: status}
}

func TestMarkCleaned(t *testing.T) {
	f := newFixture(t)
	rm := roomIn(model.RoomCleaning)
	f.commits()
	f.rooms.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), rm.ID).Return(rm, nil)
	f.rooms.EXPECT().UpdateStatusTx(gomock.Any(), gomock.Any(), rm.ID, model.RoomAvailable).Return(nil)

	out, err := f.roomService().MarkCleaned(context.Background(), rm.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RoomAvailable, out.Status)
}

func TestMarkCleanedRequiresCleaningRoom(t *testing.T) {
	f := newFixture(t)
	rm := roomIn(model.RoomOccupied)
	f.rollsBack()
	f.rooms.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), rm.ID).Return(rm, nil)

	_, err := f.roomService().MarkCleaned(context.Background(), rm.ID)
	requireCode(t, err, CodeInvalidRoomStatus)
}

func TestSetMaintenance(t *testing.T) {
	tests := []struct {
		name string
		from model.RoomStatus
		on   bool
		to   model.RoomStatus
		code Code
	}{
		{"take available room out", model.RoomAvailable, true, model.RoomMaintenance, ""},
		{"return room to service", model.RoomMaintenance, false, model.RoomAvailable, ""},
		{"occupied room stays in service", model.RoomOccupied, true, "", CodeRoomOccupied},
		{"room not under maintenance", model.RoomAvailable, false, "", CodeInvalidRoomStatus},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			rm := roomIn(tt.from)
			f.rooms.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), rm.ID).Return(rm, nil)
			if tt.code == "" {
				f.commits()
				f.rooms.EXPECT().UpdateStatusTx(gomock.Any(), gomock.Any(), rm.ID, tt.to).Return(nil)
			} else {
				f.rollsBack()
			}

			out, err := f.roomService().SetMaintenance(context.Background(), rm.ID, tt.on)
			if tt.code != "" {
				requireCode(t, err, tt.code)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.to, out.Status)
		})
	}
}

func TestDeleteOccupiedRoomIsBlocked(t *testing.T) {
	f := newFixture(t)
	rm := roomIn(model.RoomOccupied)
	f.rollsBack()
	f.rooms.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), rm.ID).Return(rm, nil)

	err := f.roomService().DeleteRoom(context.Background(), rm.ID)
	requireCode(t, err, CodeRoomOccupied)
}

func TestDeleteRoom(t *testing.T) {
	f := newFixture(t)
	rm := roomIn(model.RoomAvailable)
	f.commits()
	f.rooms.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), rm.ID).Return(rm, nil)
	f.assignments.EXPECT().GetByRoomTx(gomock.Any(), gomock.Any(), rm.ID).Return(nil, repository.ErrNotFound)
	f.rooms.EXPECT().DeleteTx(gomock.Any(), gomock.Any(), rm.ID).Return(nil)

	require.NoError(t, f.roomService().DeleteRoom(context.Background(), rm.ID))
}

func TestCreateRoomDuplicateNumber(t *testing.T) {
	f := newFixture(t)
	rt := standardRoomType()
	f.rollsBack()
	f.rooms.EXPECT().GetRoomTypeTx(gomock.Any(), gomock.Any(), rt.ID).Return(rt, nil)
	f.rooms.EXPECT().CreateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(repository.ErrDuplicate)

	_, err := f.roomService().CreateRoom(context.Background(), RoomInput{RoomNumber: "101", RoomTypeID: rt.ID})
	requireCode(t, err, CodeRoomNumberExists)
}

func TestUpdateOccupiedRoomKeepsType(t *testing.T) {
	f := newFixture(t)
	rm := roomIn(model.RoomOccupied)
	f.rollsBack()
	f.rooms.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), rm.ID).Return(rm, nil)

	_, err := f.roomService().UpdateRoom(context.Background(), rm.ID, RoomInput{RoomNumber: rm.RoomNumber, RoomTypeID: uuid.New()})
	requireCode(t, err, CodeRoomOccupied)
}

func TestErrorHelpers(t *testing.T) {
	err := fail(CodeRoomNotFound, "room %d", 7)
	assert.Equal(t, CodeRoomNotFound, CodeOf(err))
	assert.Equal(t, "ROOM_NOT_FOUND: room 7", err.Error())
	assert.Equal(t, CodeInternal, CodeOf(assert.AnError))
	assert.Equal(t, "internal error", AsError(assert.AnError).Message)
	assert.Same(t, err, AsError(err))
}
