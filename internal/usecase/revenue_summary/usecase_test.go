package revenue_summary

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvmanh/SpaDesk-BookingService/internal/domain"
)

type fakeBookingRepo struct {
	bookings   []*domain.Booking
	lastFilter domain.BookingsFilter
}

func (f *fakeBookingRepo) ListWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	f.lastFilter = filter

	// Повторяет фильтрацию хранилища по периоду и статусу
	result := make([]*domain.Booking, 0, len(f.bookings))
	for _, b := range f.bookings {
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		if filter.StartDate != nil && b.BookingDate.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && b.BookingDate.After(*filter.EndDate) {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func completed(date time.Time, amount float64) *domain.Booking {
	return &domain.Booking{
		ID:          uuid.New(),
		BookingDate: date,
		TotalAmount: amount,
		Status:      domain.StatusCompleted,
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestExecute_Buckets(t *testing.T) {
	// Опорная дата: среда 19 августа 2026, неделя 17.08-23.08
	ref := day(2026, time.August, 19)

	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		completed(ref, 100),                      // день, неделя, месяц, год
		completed(day(2026, time.August, 17), 50),  // неделя, месяц, год
		completed(day(2026, time.August, 23), 30),  // неделя, месяц, год
		completed(day(2026, time.August, 1), 200),  // месяц, год
		completed(day(2026, time.March, 10), 1000), // только год
		completed(day(2025, time.August, 19), 999), // прошлый год - не учитывается
	}}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: ref})
	require.NoError(t, err)

	assert.Equal(t, "2026-08-19", resp.Date)
	assert.Equal(t, Bucket{Revenue: 100, Bookings: 1}, resp.Day)
	assert.Equal(t, Bucket{Revenue: 180, Bookings: 3}, resp.Week)
	assert.Equal(t, Bucket{Revenue: 380, Bookings: 4}, resp.Month)
	assert.Equal(t, Bucket{Revenue: 1380, Bookings: 5}, resp.Year)
}

func TestExecute_OnlyCompletedCounted(t *testing.T) {
	ref := day(2026, time.August, 19)

	pending := completed(ref, 500)
	pending.Status = domain.StatusPending
	cancelled := completed(ref, 500)
	cancelled.Status = domain.StatusCancelled

	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		completed(ref, 100),
		pending,
		cancelled,
	}}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: ref})
	require.NoError(t, err)

	require.NotNil(t, repo.lastFilter.Status)
	assert.Equal(t, domain.StatusCompleted, *repo.lastFilter.Status)
	assert.Equal(t, Bucket{Revenue: 100, Bookings: 1}, resp.Day)
	assert.Equal(t, Bucket{Revenue: 100, Bookings: 1}, resp.Year)
}

func TestExecute_MondayWeekStart(t *testing.T) {
	// Воскресенье 23 августа 2026: неделя 17.08-23.08
	ref := day(2026, time.August, 23)

	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		completed(day(2026, time.August, 17), 10), // понедельник этой недели
		completed(day(2026, time.August, 16), 20), // воскресенье прошлой недели
		completed(day(2026, time.August, 24), 40), // понедельник следующей недели
	}}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: ref})
	require.NoError(t, err)

	assert.Equal(t, Bucket{Revenue: 10, Bookings: 1}, resp.Week)
}

func TestExecute_WeekCrossingYearBoundary(t *testing.T) {
	// 1 января 2027 - пятница, неделя 28.12.2026-03.01.2027
	ref := day(2027, time.January, 1)

	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		completed(day(2026, time.December, 28), 70), // та же неделя, прошлый год
		completed(ref, 30),
	}}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: ref})
	require.NoError(t, err)

	// Неделя захватывает декабрь, но год и месяц - только 2027
	assert.Equal(t, Bucket{Revenue: 100, Bookings: 2}, resp.Week)
	assert.Equal(t, Bucket{Revenue: 30, Bookings: 1}, resp.Month)
	assert.Equal(t, Bucket{Revenue: 30, Bookings: 1}, resp.Year)
}

func TestExecute_DateRequired(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
