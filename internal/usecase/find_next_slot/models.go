package find_next_slot

import (
	"time"

	"github.com/nvmanh/SpaDesk-BookingService/pkg/types"
)

// Scope определяет, какие ресурсы должны быть свободны в найденном слоте
type Scope string

const (
	// ScopeRoom требует только свободную комнату
	ScopeRoom Scope = "room"

	// ScopeRoomAndStaff требует свободную комнату и хотя бы одного
	// свободного мастера из переданного списка
	ScopeRoomAndStaff Scope = "room_and_staff"
)

// Request модель запроса поиска ближайшего свободного слота
type Request struct {
	Date            time.Time        // Дата поиска
	FromTime        types.TimeString // Искать начиная с этого времени (пусто - с открытия)
	DurationMinutes int              // Требуемая длительность
	Scope           Scope            // Какие ресурсы проверять (пусто - только комнату)
	StaffIDs        []int64          // Мастера для scope=room_and_staff
}

// Response результат поиска.
// Found == false означает, что до конца рабочего дня свободного слота нет
type Response struct {
	Found     bool              `json:"found"`
	StartTime *types.TimeString `json:"startTime,omitempty"`
}
