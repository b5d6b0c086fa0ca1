package get_room_plan

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvmanh/SpaDesk-BookingService/internal/domain"
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

func TestExecute_CancelledExcludedCompletedVisible(t *testing.T) {
	cancelled := planBooking("10:00", 60)
	cancelled.Status = domain.StatusCancelled
	completed := planBooking("10:00", 60)
	completed.Status = domain.StatusCompleted
	confirmed := planBooking("11:00", 60)

	repo := &fakeBookingRepo{bookings: []*domain.Booking{cancelled, completed, confirmed}}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date: time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	require.Len(t, resp.Assignments, 2)
	assert.Equal(t, domain.TotalRooms, resp.TotalRooms)
	assert.Equal(t, "2026-08-24", resp.Date)

	ids := []string{resp.Assignments[0].BookingID, resp.Assignments[1].BookingID}
	assert.NotContains(t, ids, cancelled.ID.String())
	assert.Contains(t, ids, completed.ID.String())
}

func TestExecute_OverflowHasNilRoomNumber(t *testing.T) {
	var bookings []*domain.Booking
	for i := 0; i < domain.TotalRooms; i++ {
		bookings = append(bookings, planBooking("12:00", 90))
	}
	overflow := planBooking("12:30", 60)
	bookings = append(bookings, overflow)

	uc := NewUseCase(&fakeBookingRepo{bookings: bookings}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date: time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Len(t, resp.Assignments, domain.TotalRooms+1)

	unassigned := 0
	for _, a := range resp.Assignments {
		if a.RoomNumber == nil {
			unassigned++
			assert.Equal(t, overflow.ID.String(), a.BookingID)
		} else {
			assert.GreaterOrEqual(t, *a.RoomNumber, 1)
			assert.LessOrEqual(t, *a.RoomNumber, domain.TotalRooms)
		}
	}
	assert.Equal(t, 1, unassigned)
}

func TestExecute_DateRequired(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
