package revenue_summary

import (
	"context"
	"fmt"
	"time"

	"github.com/nvmanh/SpaDesk-BookingService/internal/domain"
	"github.com/nvmanh/SpaDesk-BookingService/pkg/ptr"
)

// UseCase use case для сводки выручки.
// Выручка считается только по завершенным бронированиям: ожидающие,
// подтвержденные и идущие процедуры - это еще не деньги, отмененные -
// уже не деньги
type UseCase struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute выполняет use case сводки выручки.
// Одним запросом выбираются завершенные бронирования за год, агрегаты
// по дню, неделе и месяцу вычисляются в памяти
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RevenueSummary: date=%s", req.Date.Format(domain.DateFormat))

	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	date := truncateToDay(req.Date)

	yearStart := time.Date(date.Year(), time.January, 1, 0, 0, 0, 0, date.Location())
	yearEnd := time.Date(date.Year(), time.December, 31, 0, 0, 0, 0, date.Location())

	weekStart := mondayOf(date)
	weekEnd := weekStart.AddDate(0, 0, 6)

	// Неделя на стыке годов может выходить за границы года
	rangeStart := yearStart
	if weekStart.Before(rangeStart) {
		rangeStart = weekStart
	}
	rangeEnd := yearEnd
	if weekEnd.After(rangeEnd) {
		rangeEnd = weekEnd
	}

	filter := domain.BookingsFilter{
		StartDate: &rangeStart,
		EndDate:   &rangeEnd,
		Status:    ptr.Ptr(domain.StatusCompleted),
	}

	bookings, err := uc.bookingRepo.ListWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("RevenueSummary: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	var day, week, month, year Bucket

	for _, booking := range bookings {
		bookingDate := truncateToDay(booking.BookingDate)

		if bookingDate.Year() == date.Year() {
			year.add(booking.TotalAmount)
		}

		if bookingDate.Year() == date.Year() && bookingDate.Month() == date.Month() {
			month.add(booking.TotalAmount)
		}

		if !bookingDate.Before(weekStart) && !bookingDate.After(weekEnd) {
			week.add(booking.TotalAmount)
		}

		if bookingDate.Equal(date) {
			day.add(booking.TotalAmount)
		}
	}

	uc.logger.Info("RevenueSummary: date=%s, day=%.2f, week=%.2f, month=%.2f, year=%.2f",
		date.Format(domain.DateFormat), day.Revenue, week.Revenue, month.Revenue, year.Revenue)

	return &Response{
		Date:  date.Format(domain.DateFormat),
		Day:   day,
		Week:  week,
		Month: month,
		Year:  year,
	}, nil
}

// add накапливает выручку и счетчик бронирований
func (b *Bucket) add(amount float64) {
	b.Revenue += amount
	b.Bookings++
}

// mondayOf возвращает понедельник недели, содержащей дату
func mondayOf(date time.Time) time.Time {
	weekday := int(date.Weekday())
	if weekday == 0 {
		weekday = 7 // воскресенье
	}
	return date.AddDate(0, 0, -(weekday - 1))
}

// truncateToDay обнуляет компонент времени
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
