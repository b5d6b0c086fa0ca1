package find_next_slot

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvmanh/SpaDesk-BookingService/internal/domain"
	"github.com/nvmanh/SpaDesk-BookingService/pkg/types"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) ListWithFilter(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testDate() time.Time {
	return time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
}

func blockingBooking(start types.TimeString, durationMinutes int, staffIDs ...int64) *domain.Booking {
	return &domain.Booking{
		ID:              uuid.New(),
		StartTime:       start,
		DurationMinutes: durationMinutes,
		StaffIDs:        staffIDs,
		Status:          domain.StatusConfirmed,
	}
}

func TestExecute_EmptyDayReturnsOpening(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date:            testDate(),
		DurationMinutes: 60,
	})
	require.NoError(t, err)

	assert.True(t, resp.Found)
	require.NotNil(t, resp.StartTime)
	assert.Equal(t, domain.OpeningTime, *resp.StartTime)
}

func TestExecute_RoomsFullUntilBoundary(t *testing.T) {
	repo := &fakeBookingRepo{}
	// Все комнаты заняты 10:00-11:00; слот 11:00 граничит и уже свободен
	for i := 0; i < domain.TotalRooms; i++ {
		repo.bookings = append(repo.bookings, blockingBooking("10:00", 60, int64(i+1)))
	}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date:            testDate(),
		DurationMinutes: 60,
	})
	require.NoError(t, err)

	assert.True(t, resp.Found)
	require.NotNil(t, resp.StartTime)
	assert.Equal(t, types.TimeString("11:00"), *resp.StartTime)
}

func TestExecute_FromTimeRespected(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date:            testDate(),
		FromTime:        "15:30",
		DurationMinutes: 30,
	})
	require.NoError(t, err)

	assert.True(t, resp.Found)
	require.NotNil(t, resp.StartTime)
	assert.Equal(t, types.TimeString("15:30"), *resp.StartTime)
}

func TestExecute_RoomAndStaffScope(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		blockingBooking("10:00", 120, 7), // мастер занят до 12:00
	}}
	uc := NewUseCase(repo, nopLogger{})

	// Комната есть с 10:00, но мастер освобождается только к 12:00
	resp, err := uc.Execute(context.Background(), &Request{
		Date:            testDate(),
		DurationMinutes: 60,
		Scope:           ScopeRoomAndStaff,
		StaffIDs:        []int64{7},
	})
	require.NoError(t, err)

	assert.True(t, resp.Found)
	require.NotNil(t, resp.StartTime)
	assert.Equal(t, types.TimeString("12:00"), *resp.StartTime)
}

func TestExecute_RoomAndStaffScope_AnyFreeStaffQualifies(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		blockingBooking("10:00", 720, 1), // мастер 1 занят весь день
	}}
	uc := NewUseCase(repo, nopLogger{})

	// Мастер 2 свободен весь день - слот пригоден с открытия,
	// занятость мастера 1 его не блокирует
	resp, err := uc.Execute(context.Background(), &Request{
		Date:            testDate(),
		DurationMinutes: 60,
		Scope:           ScopeRoomAndStaff,
		StaffIDs:        []int64{1, 2},
	})
	require.NoError(t, err)

	assert.True(t, resp.Found)
	require.NotNil(t, resp.StartTime)
	assert.Equal(t, domain.OpeningTime, *resp.StartTime)
}

func TestExecute_RoomAndStaffScope_AllStaffBusy(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		blockingBooking("10:00", 120, 1), // мастер 1 занят до 12:00
		blockingBooking("10:00", 180, 2), // мастер 2 занят до 13:00
	}}
	uc := NewUseCase(repo, nopLogger{})

	// Первый слот, где освобождается хотя бы один из двух - 12:00 (мастер 1)
	resp, err := uc.Execute(context.Background(), &Request{
		Date:            testDate(),
		DurationMinutes: 60,
		Scope:           ScopeRoomAndStaff,
		StaffIDs:        []int64{1, 2},
	})
	require.NoError(t, err)

	assert.True(t, resp.Found)
	require.NotNil(t, resp.StartTime)
	assert.Equal(t, types.TimeString("12:00"), *resp.StartTime)
}

func TestExecute_NoSlotLeft(t *testing.T) {
	repo := &fakeBookingRepo{}
	// Весь день занят по всем комнатам
	for i := 0; i < domain.TotalRooms; i++ {
		repo.bookings = append(repo.bookings, blockingBooking("10:00", 720, int64(i+1)))
	}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date:            testDate(),
		DurationMinutes: 60,
	})
	require.NoError(t, err)

	assert.False(t, resp.Found)
	assert.Nil(t, resp.StartTime)
}

func TestExecute_DurationMustFitBusinessDay(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, nopLogger{})

	// 90 минут с 21:00 не помещаются, последний подходящий слот - 20:30
	resp, err := uc.Execute(context.Background(), &Request{
		Date:            testDate(),
		FromTime:        "21:00",
		DurationMinutes: 90,
	})
	require.NoError(t, err)

	assert.False(t, resp.Found)
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{DurationMinutes: 60})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Date: testDate(), DurationMinutes: 0})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		Date:            testDate(),
		DurationMinutes: 60,
		Scope:           ScopeRoomAndStaff,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		Date:            testDate(),
		DurationMinutes: 60,
		Scope:           "staff_only",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
