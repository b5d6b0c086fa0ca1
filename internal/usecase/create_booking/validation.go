package create_booking

import (
	"fmt"

	"github.com/nvmanh/SpaDesk-BookingService/internal/domain"
	"github.com/nvmanh/SpaDesk-BookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CustomerName == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}

	if req.CustomerPhone == "" {
		return fmt.Errorf("%w: customerPhone is required", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	// Пустой список мастеров допустим: достаточность состава проверяет
	// validateStaff по requiredStaffCount услуги
	seen := make(map[int64]struct{}, len(req.StaffIDs))
	for _, id := range req.StaffIDs {
		if id <= 0 {
			return fmt.Errorf("%w: staff id must be positive", ErrInvalidInput)
		}
		if _, ok := seen[id]; ok {
			return fmt.Errorf("%w: duplicate staff id=%d", ErrInvalidInput, id)
		}
		seen[id] = struct{}{}
	}

	if req.DiscountAmount < 0 {
		return fmt.Errorf("%w: discountAmount must not be negative", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем, что время начала указано
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	// Валидируем формат времени
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	// Время начала должно лежать на канонической сетке
	if !domain.OnGrid(req.StartTime) {
		return fmt.Errorf("%w: startTime must be on the 10-minute grid within business hours", ErrInvalidInput)
	}

	return nil
}

// validateStaff проверяет, что все мастера найдены, доступны для назначения
// и что их достаточно для услуги
func validateStaff(requested []int64, found []*domain.Employee, requiredStaffCount int) error {
	if len(found) != len(requested) {
		return ErrEmployeeNotFound
	}

	for _, emp := range found {
		if !emp.IsBookable() {
			return fmt.Errorf("%w: employee id=%d", ErrEmployeeNotBookable, emp.ID)
		}
	}

	if requiredStaffCount > 0 && len(found) < requiredStaffCount {
		return fmt.Errorf("%w: service requires %d, got %d", ErrInsufficientStaff, requiredStaffCount, len(found))
	}

	return nil
}

// findStaffConflict ищет блокирующее бронирование, в котором занят хотя бы
// один из указанных мастеров и которое пересекается с интервалом
// [start, start+duration). Возвращает nil, если конфликта нет.
//
// Пересечение по строгим неравенствам: бронирования, граничащие по времени
// (конец одного == начало другого), конфликтом не считаются.
func findStaffConflict(
	start types.TimeString,
	durationMinutes int,
	staffIDs []int64,
	bookings []*domain.Booking,
) *domain.Booking {
	end, err := start.AddMinutes(durationMinutes)
	if err != nil {
		return nil
	}

	for _, booking := range bookings {
		if !booking.IsBlocking() {
			continue
		}

		shared := false
		for _, id := range staffIDs {
			if booking.HasStaff(id) {
				shared = true
				break
			}
		}
		if !shared {
			continue
		}

		bookingEnd, err := booking.EndTime()
		if err != nil {
			continue
		}

		if booking.StartTime.IsBefore(end) && bookingEnd.IsAfter(start) {
			return booking
		}
	}

	return nil
}

// countOccupiedRooms подсчитывает количество блокирующих бронирований,
// пересекающихся с интервалом [start, start+duration). Каждое такое
// бронирование занимает одну комнату.
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

		if booking.StartTime.IsBefore(end) && bookingEnd.IsAfter(start) {
			count++
		}
	}

	return count
}

// totalAmount вычисляет итоговую сумму: цена минус скидка, не ниже нуля
func totalAmount(price, discount float64) float64 {
	total := price - discount
	if total < 0 {
		return 0
	}
	return total
}
