package find_next_slot

import (
	"context"
	"fmt"

	"github.com/nvmanh/SpaDesk-BookingService/internal/domain"
	"github.com/nvmanh/SpaDesk-BookingService/pkg/types"
)

// UseCase use case для поиска ближайшего свободного слота.
// Линейный проход по канонической сетке времени: первый слот, на котором
// найдется свободная комната (и, при необходимости, хотя бы один свободный
// мастер из списка), становится ответом
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

// Execute выполняет use case поиска ближайшего свободного слота
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("FindNextSlot: date=%s, from=%s, duration=%d, scope=%s, staff=%v",
		req.Date.Format(domain.DateFormat), req.FromTime, req.DurationMinutes, req.Scope, req.StaffIDs)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("FindNextSlot: validation failed: %v", err)
		return nil, err
	}

	fromTime := req.FromTime
	if fromTime.IsZero() {
		fromTime = domain.OpeningTime
	}

	scope := req.Scope
	if scope == "" {
		scope = ScopeRoom
	}

	filter := domain.BookingsFilter{
		StartDate: &req.Date,
		EndDate:   &req.Date,
	}

	bookings, err := uc.bookingRepo.ListWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("FindNextSlot: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	for _, slot := range domain.TimeGrid() {
		if slot.IsBefore(fromTime) {
			continue
		}
		if !domain.FitsBusinessDay(slot, req.DurationMinutes) {
			// Дальше по сетке слоты только позже - интервал уже не поместится
			break
		}

		if countOccupiedRooms(slot, req.DurationMinutes, bookings) >= domain.TotalRooms {
			continue
		}

		if scope == ScopeRoomAndStaff && !anyStaffFree(slot, req.DurationMinutes, req.StaffIDs, bookings) {
			continue
		}

		uc.logger.Info("FindNextSlot: found slot %s on %s", slot, req.Date.Format(domain.DateFormat))
		s := slot
		return &Response{Found: true, StartTime: &s}, nil
	}

	uc.logger.Info("FindNextSlot: no free slot on %s", req.Date.Format(domain.DateFormat))
	return &Response{Found: false}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.DurationMinutes <= 0 {
		return fmt.Errorf("%w: durationMinutes must be positive", ErrInvalidInput)
	}

	if !req.FromTime.IsZero() {
		if err := req.FromTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid fromTime format: %v", ErrInvalidInput, err)
		}
	}

	switch req.Scope {
	case "", ScopeRoom:
	case ScopeRoomAndStaff:
		if len(req.StaffIDs) == 0 {
			return fmt.Errorf("%w: staffIDs are required for scope=%s", ErrInvalidInput, ScopeRoomAndStaff)
		}
	default:
		return fmt.Errorf("%w: unknown scope %q", ErrInvalidInput, req.Scope)
	}

	return nil
}

// countOccupiedRooms подсчитывает количество блокирующих бронирований,
// пересекающихся с интервалом [start, start+duration)
func countOccupiedRooms(start types.TimeString, durationMinutes int, bookings []*domain.Booking) int {
	end, err := start.AddMinutes(durationMinutes)
	if err != nil {
		return 0
	}

	count := 0

	for _, booking := range bookings {
		if !booking.IsBlocking() {
			continue
		}

		bookingEnd, err := booking.EndTime()
		if err != nil {
			continue
		}

		// Строгие неравенства: граничащие интервалы не пересекаются
		if booking.StartTime.IsBefore(end) && bookingEnd.IsAfter(start) {
			count++
		}
	}

	return count
}

// anyStaffFree возвращает true, если хотя бы один из мастеров не занят
// ни в одном блокирующем бронировании, пересекающемся с интервалом
// [start, start+duration). Слот пригоден, пока остается хоть один
// свободный кандидат - занятость остальных его не блокирует
func anyStaffFree(start types.TimeString, durationMinutes int, staffIDs []int64, bookings []*domain.Booking) bool {
	end, err := start.AddMinutes(durationMinutes)
	if err != nil {
		return false
	}

	for _, id := range staffIDs {
		busy := false

		for _, booking := range bookings {
			if !booking.IsBlocking() {
				continue
			}
			if !booking.HasStaff(id) {
				continue
			}

			bookingEnd, err := booking.EndTime()
			if err != nil {
				continue
			}

			if booking.StartTime.IsBefore(end) && bookingEnd.IsAfter(start) {
				busy = true
				break
			}
		}

		if !busy {
			return true
		}
	}

	return false
}
