package get_room_plan

import (
	"sort"

	"github.com/nvmanh/SpaDesk-BookingService/internal/domain"
)

// allocateRooms раскладывает бронирования дня по комнатам жадным алгоритмом.
//
// Бронирования обрабатываются в порядке времени начала (стабильная
// сортировка: при равном времени порядок создания сохраняется). Каждому
// бронированию назначается первая по номеру комната, освободившаяся к его
// началу. Если все комнаты заняты, бронирование остается без комнаты -
// это только отображение, сверхплановые бронирования не отклоняются.
//
// Алгоритм детерминирован: одинаковый набор бронирований всегда дает
// одинаковую раскладку.
func allocateRooms(bookings []*domain.Booking) map[string]int {
	ordered := make([]*domain.Booking, len(bookings))
	copy(ordered, bookings)

	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].StartTime.Minutes() < ordered[j].StartTime.Minutes()
	})

	// freeAt[i] - минута, начиная с которой комната i свободна
	var freeAt [domain.TotalRooms]int

	assignments := make(map[string]int, len(ordered))

	for _, booking := range ordered {
		start := booking.StartTime.Minutes()
		end := start + booking.DurationMinutes

		for room := 0; room < domain.TotalRooms; room++ {
			if freeAt[room] <= start {
				assignments[booking.ID.String()] = room + 1
				freeAt[room] = end
				break
			}
		}
	}

	return assignments
}
