package get_room_plan

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvmanh/SpaDesk-BookingService/internal/domain"
	"github.com/nvmanh/SpaDesk-BookingService/pkg/types"
)

func planBooking(start types.TimeString, durationMinutes int) *domain.Booking {
	return &domain.Booking{
		ID:              uuid.New(),
		StartTime:       start,
		DurationMinutes: durationMinutes,
		Status:          domain.StatusConfirmed,
	}
}

func TestAllocateRooms_FirstFreeRoom(t *testing.T) {
	a := planBooking("10:00", 60) // комната 1
	b := planBooking("10:30", 60) // комната 2
	c := planBooking("11:00", 60) // комната 1 освободилась к 11:00

	rooms := allocateRooms([]*domain.Booking{a, b, c})

	assert.Equal(t, 1, rooms[a.ID.String()])
	assert.Equal(t, 2, rooms[b.ID.String()])
	assert.Equal(t, 1, rooms[c.ID.String()])
}

func TestAllocateRooms_BoundaryTouchReusesRoom(t *testing.T) {
	a := planBooking("10:00", 60) // до 11:00
	b := planBooking("11:00", 60) // начинается ровно в 11:00

	rooms := allocateRooms([]*domain.Booking{a, b})

	assert.Equal(t, 1, rooms[a.ID.String()])
	assert.Equal(t, 1, rooms[b.ID.String()])
}

func TestAllocateRooms_OverflowUnassigned(t *testing.T) {
	var bookings []*domain.Booking
	for i := 0; i < domain.TotalRooms; i++ {
		bookings = append(bookings, planBooking("12:00", 90))
	}
	extra := planBooking("12:30", 60)
	bookings = append(bookings, extra)

	rooms := allocateRooms(bookings)

	require.Len(t, rooms, domain.TotalRooms)
	_, assigned := rooms[extra.ID.String()]
	assert.False(t, assigned)
}

func TestAllocateRooms_Deterministic(t *testing.T) {
	bookings := []*domain.Booking{
		planBooking("10:00", 120),
		planBooking("10:00", 60),
		planBooking("10:30", 30),
		planBooking("11:00", 90),
		planBooking("12:00", 60),
	}

	first := allocateRooms(bookings)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, allocateRooms(bookings))
	}
}

func TestAllocateRooms_StableOrderOnEqualStart(t *testing.T) {
	// При одинаковом времени начала порядок следования (порядок создания)
	// определяет номера комнат
	a := planBooking("14:00", 60)
	b := planBooking("14:00", 60)
	c := planBooking("14:00", 60)

	rooms := allocateRooms([]*domain.Booking{a, b, c})

	assert.Equal(t, 1, rooms[a.ID.String()])
	assert.Equal(t, 2, rooms[b.ID.String()])
	assert.Equal(t, 3, rooms[c.ID.String()])
}
