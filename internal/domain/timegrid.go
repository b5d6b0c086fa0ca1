package domain

import "github.com/nvmanh/SpaDesk-BookingService/pkg/types"

// TimeGrid возвращает каноническую последовательность меток времени рабочего
// дня: от 10:00 до 22:00 включительно с шагом 10 минут. Последний элемент -
// ровно "22:00". Эта последовательность используется для всех выпадающих
// списков, заголовков расписания и линейного поиска свободного слота.
func TimeGrid() []types.TimeString {
	open := OpeningTime.Minutes()
	close := ClosingTime.Minutes()

	grid := make([]types.TimeString, 0, (close-open)/SlotStepMinutes+1)
	for m := open; m <= close; m += SlotStepMinutes {
		grid = append(grid, types.NewTimeStringFromMinutes(m))
	}

	return grid
}

// OnGrid возвращает true, если время лежит на канонической сетке
func OnGrid(t types.TimeString) bool {
	m := t.Minutes()
	if m < OpeningTime.Minutes() || m > ClosingTime.Minutes() {
		return false
	}
	return (m-OpeningTime.Minutes())%SlotStepMinutes == 0
}

// FitsBusinessDay возвращает true, если интервал [start, start+duration)
// начинается на сетке и заканчивается не позже закрытия
func FitsBusinessDay(start types.TimeString, durationMinutes int) bool {
	if !OnGrid(start) {
		return false
	}
	return start.Minutes()+durationMinutes <= ClosingTime.Minutes()
}
