package check_availability

import (
	"time"

	"github.com/google/uuid"

	"github.com/nvmanh/SpaDesk-BookingService/pkg/types"
)

// RoomRequest запрос проверки занятости комнат на интервал
type RoomRequest struct {
	Date             time.Time        // Дата
	StartTime        types.TimeString // Время начала интервала
	DurationMinutes  int              // Длительность интервала
	ExcludeBookingID *uuid.UUID       // Не учитывать это бронирование (при редактировании)
}

// RoomResponse результат проверки занятости комнат
type RoomResponse struct {
	Available     bool `json:"available"`     // Есть ли свободная комната
	OccupiedRooms int  `json:"occupiedRooms"` // Занято комнат на интервал
	TotalRooms    int  `json:"totalRooms"`    // Всего комнат в салоне
}

// StaffRequest запрос проверки занятости мастера на интервал
type StaffRequest struct {
	StaffID          int64            // ID мастера
	Date             time.Time        // Дата
	StartTime        types.TimeString // Время начала интервала
	DurationMinutes  int              // Длительность интервала
	ExcludeBookingID *uuid.UUID       // Не учитывать это бронирование (при редактировании)
}

// StaffResponse результат проверки занятости мастера.
// ConflictEndTime заполняется только при занятости - это время, до которого
// мастер занят (конец последнего пересекающегося бронирования)
type StaffResponse struct {
	Available       bool              `json:"available"`
	ConflictEndTime *types.TimeString `json:"conflictEndTime,omitempty"`
}
