package check_availability

import (
	"github.com/google/uuid"

	"github.com/nvmanh/SpaDesk-BookingService/internal/domain"
	"github.com/nvmanh/SpaDesk-BookingService/pkg/types"
)

// countOccupiedRooms подсчитывает количество блокирующих бронирований,
// пересекающихся с интервалом [start, start+duration). Каждое такое
// бронирование занимает одну комнату.
//
// Пересечение по строгим неравенствам: интервалы, граничащие по времени
// (конец одного == начало другого), пересечением не считаются.
//
// Примеры:
// - Интервал 11:30-12:00, бронирование 11:20-11:40 → ЕСТЬ пересечение (11:30-11:40)
// - Интервал 11:30-12:00, бронирование 11:00-11:30 → НЕТ пересечения (граничат)
// - Интервал 11:30-12:00, бронирование 12:00-12:30 → НЕТ пересечения (граничат)
func countOccupiedRooms(
	start types.TimeString,
	durationMinutes int,
	bookings []*domain.Booking,
	excludeID *uuid.UUID,
) int {
	end, err := start.AddMinutes(durationMinutes)
	if err != nil {
		// Если не можем вычислить конец интервала, считаем что пересечений нет
		return 0
	}

	count := 0

	for _, booking := range bookings {
		if excludeID != nil && booking.ID == *excludeID {
			continue
		}
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

// staffBusyUntil проверяет занятость мастера на интервале [start, start+duration).
// Возвращает время, до которого мастер занят (конец самого позднего
// пересекающегося бронирования), или nil, если мастер свободен
func staffBusyUntil(
	start types.TimeString,
	durationMinutes int,
	staffID int64,
	bookings []*domain.Booking,
	excludeID *uuid.UUID,
) *types.TimeString {
	end, err := start.AddMinutes(durationMinutes)
	if err != nil {
		return nil
	}

	var busyUntil *types.TimeString

	for _, booking := range bookings {
		if excludeID != nil && booking.ID == *excludeID {
			continue
		}
		if !booking.IsBlocking() {
			continue
		}
		if !booking.HasStaff(staffID) {
			continue
		}

		bookingEnd, err := booking.EndTime()
		if err != nil {
			continue
		}

		if booking.StartTime.IsBefore(end) && bookingEnd.IsAfter(start) {
			if busyUntil == nil || bookingEnd.IsAfter(*busyUntil) {
				be := bookingEnd
				busyUntil = &be
			}
		}
	}

	return busyUntil
}
