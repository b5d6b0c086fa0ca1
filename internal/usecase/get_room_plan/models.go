package get_room_plan

import (
	"time"

	"github.com/nvmanh/SpaDesk-BookingService/pkg/types"
)

// Request модель запроса плана комнат на день
type Request struct {
	Date time.Time // Дата (без времени)
}

// Assignment бронирование с назначенной комнатой.
// RoomNumber == nil означает, что свободной комнаты не нашлось -
// бронирование отображается в строке переполнения
type Assignment struct {
	BookingID       string           `json:"bookingId"`
	Code            string           `json:"code"`
	StartTime       types.TimeString `json:"startTime"`
	EndTime         types.TimeString `json:"endTime"`
	DurationMinutes int              `json:"durationMinutes"`
	CustomerName    string           `json:"customerName"`
	ServiceName     string           `json:"serviceName"`
	StaffNames      string           `json:"staffNames"`
	Status          string           `json:"status"`
	RoomNumber      *int             `json:"roomNumber"` // 1..TotalRooms или null
}

// Response план комнат на день
type Response struct {
	Date        string       `json:"date"`
	TotalRooms  int          `json:"totalRooms"`
	Assignments []Assignment `json:"assignments"`
}
