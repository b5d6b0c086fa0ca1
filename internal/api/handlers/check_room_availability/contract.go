package check_room_availability

import (
	"context"

	checkAvailability "github.com/nvmanh/SpaDesk-BookingService/internal/usecase/check_availability"
)

type CheckAvailabilityUseCase interface {
	CheckRoom(ctx context.Context, req *checkAvailability.RoomRequest) (*checkAvailability.RoomResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
